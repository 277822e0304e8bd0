package nn

import (
	"math"
	"testing"

	"neurograph/internal/graph"
	"neurograph/internal/model"
)

func TestSigmoid(t *testing.T) {
	tests := []struct {
		x    float64
		want float64
	}{
		{x: 0, want: 0.5},
		{x: 0.5, want: 0.6224593312018546},
		{x: -0.5, want: 0.3775406687981454},
	}
	for _, tc := range tests {
		if got := Sigmoid(tc.x); math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("sigmoid(%f): got=%f want=%f", tc.x, got, tc.want)
		}
	}
}

func TestPredictSingleHiddenNeuron(t *testing.T) {
	s := graph.New(graph.NewSeededRand(3))
	in := s.AddNeuron(100, 150, model.Input)
	hidden := s.AddNeuron(300, 100, model.Hidden)
	conn, ok := s.AddConnection(in, hidden)
	if !ok || in != 1 || hidden != 2 || conn != 1 {
		t.Fatalf("unexpected ids: in=%d hidden=%d conn=%d ok=%t", in, hidden, conn, ok)
	}
	s.SetBias(hidden, 0)
	s.SetWeight(conn, 1)

	outputs := Predict(s, []float64{0.5})
	if len(outputs) != 0 {
		t.Fatalf("expected no outputs, got %v", outputs)
	}
	if got := s.Activation(hidden); math.Abs(got-0.622459) > 1e-6 {
		t.Fatalf("unexpected hidden activation: %f", got)
	}
}

func TestPredictOutputLengthMatchesOutputNeurons(t *testing.T) {
	s := graph.New(graph.NewSeededRand(11))
	graph.BuildSample(s)
	s.AddNeuron(0, 0, model.Output)

	for _, inputs := range [][]float64{nil, {1}, {1, 0}, {1, 0, 0.3, 0.9}} {
		outputs := Predict(s, inputs)
		if len(outputs) != 2 {
			t.Fatalf("inputs %v: unexpected output count %d", inputs, len(outputs))
		}
		for _, v := range outputs {
			if v <= 0 || v >= 1 || math.IsNaN(v) {
				t.Fatalf("output out of range: %f", v)
			}
		}
	}
}

func TestPredictLeavesUnassignedInputs(t *testing.T) {
	s := graph.New(graph.NewSeededRand(1))
	a := s.AddNeuron(0, 0, model.Input)
	b := s.AddNeuron(0, 0, model.Input)
	s.SetActivation(b, 0.25)

	Predict(s, []float64{0.9})

	if s.Activation(a) != 0.9 {
		t.Fatalf("unexpected first input: %f", s.Activation(a))
	}
	if s.Activation(b) != 0.25 {
		t.Fatalf("second input should keep its prior activation: %f", s.Activation(b))
	}
}

func TestPredictFollowsIDOrderNotDepth(t *testing.T) {
	s := graph.New(graph.ConstRand(0.5))
	in := s.AddNeuron(0, 0, model.Input)
	late := s.AddNeuron(0, 0, model.Hidden)  // id 2, fed by id 3
	early := s.AddNeuron(0, 0, model.Hidden) // id 3, fed by the input
	out := s.AddNeuron(0, 0, model.Output)

	c1, _ := s.AddConnection(in, early)
	c2, _ := s.AddConnection(early, late)
	c3, _ := s.AddConnection(late, out)
	for _, c := range []int{c1, c2, c3} {
		s.SetWeight(c, 1)
	}

	Predict(s, []float64{1})

	// Neuron 2 is evaluated before neuron 3 and reads its initial zero activation.
	if got := s.Activation(late); math.Abs(got-0.5) > 1e-12 {
		t.Fatalf("expected stale read for neuron %d, got %f", late, got)
	}
	if got := s.Activation(early); math.Abs(got-Sigmoid(1)) > 1e-12 {
		t.Fatalf("unexpected activation for neuron %d: %f", early, got)
	}
}

func TestPredictSiblingReadsUpdatedActivation(t *testing.T) {
	s := graph.New(graph.ConstRand(0.5))
	h1 := s.AddNeuron(0, 0, model.Hidden)
	h2 := s.AddNeuron(0, 0, model.Hidden)
	c, _ := s.AddConnection(h1, h2)
	s.SetWeight(c, 2)

	Predict(s, nil)

	want := Sigmoid(2 * Sigmoid(0))
	if got := s.Activation(h2); math.Abs(got-want) > 1e-12 {
		t.Fatalf("got=%f want=%f", got, want)
	}
}
