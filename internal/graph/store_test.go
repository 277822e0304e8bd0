package graph

import (
	"testing"

	"neurograph/internal/model"
)

func TestAddNeuronMintsSequentialIDs(t *testing.T) {
	s := New(NewSeededRand(7))
	for want := 1; want <= 5; want++ {
		if got := s.AddNeuron(0, 0, model.Hidden); got != want {
			t.Fatalf("unexpected id: got=%d want=%d", got, want)
		}
	}

	s.Clear()
	if got := s.AddNeuron(0, 0, model.Input); got != 1 {
		t.Fatalf("expected id 1 after clear, got %d", got)
	}
	if got := s.NextConnectionID(); got != 1 {
		t.Fatalf("expected connection counter reset, got %d", got)
	}
}

func TestAddNeuronAppearance(t *testing.T) {
	tests := []struct {
		typ    model.NeuronType
		color  string
		symbol string
	}{
		{typ: model.Input, color: "#4CAF50", symbol: "I"},
		{typ: model.Hidden, color: "#2196F3", symbol: "H"},
		{typ: model.Output, color: "#FF9800", symbol: "O"},
		{typ: "bias", color: "#9E9E9E", symbol: "?"},
	}

	s := New(NewSeededRand(1))
	for _, tc := range tests {
		t.Run(string(tc.typ), func(t *testing.T) {
			id := s.AddNeuron(10, 20, tc.typ)
			n, ok := s.Neuron(id)
			if !ok {
				t.Fatalf("neuron %d missing", id)
			}
			if n.Color != tc.color || n.Symbol != tc.symbol {
				t.Fatalf("unexpected appearance: %s %s", n.Color, n.Symbol)
			}
			if n.Activation != 0 {
				t.Fatalf("expected zero activation, got %f", n.Activation)
			}
			if n.Bias < -1 || n.Bias > 1 {
				t.Fatalf("bias out of range: %f", n.Bias)
			}
			if n.Position != (model.Position{X: 10, Y: 20}) {
				t.Fatalf("unexpected position: %+v", n.Position)
			}
		})
	}
}

func TestAddConnectionMissingEndpoint(t *testing.T) {
	s := New(NewSeededRand(1))
	a := s.AddNeuron(0, 0, model.Input)

	if _, ok := s.AddConnection(a, 99); ok {
		t.Fatal("expected missing target to be refused")
	}
	if _, ok := s.AddConnection(42, a); ok {
		t.Fatal("expected missing source to be refused")
	}
	if s.ConnectionCount() != 0 {
		t.Fatalf("expected no connections, got %d", s.ConnectionCount())
	}
	if s.NextConnectionID() != 1 {
		t.Fatalf("refused connection consumed an id: next=%d", s.NextConnectionID())
	}

	b := s.AddNeuron(0, 0, model.Output)
	id, ok := s.AddConnection(a, b)
	if !ok || id != 1 {
		t.Fatalf("unexpected connection result: id=%d ok=%t", id, ok)
	}
	c, _ := s.Connection(id)
	if c.Weight < -1 || c.Weight > 1 || c.Active {
		t.Fatalf("unexpected connection: %+v", c)
	}
}

func TestAddConnectionAllowsSelfLoop(t *testing.T) {
	s := New(NewSeededRand(1))
	a := s.AddNeuron(0, 0, model.Hidden)
	if _, ok := s.AddConnection(a, a); !ok {
		t.Fatal("expected self loop to be accepted")
	}
}

func TestEnumerationIsDetachedAndOrdered(t *testing.T) {
	s := New(ConstRand(0.75))
	for i := 0; i < 4; i++ {
		s.AddNeuron(float64(i), 0, model.Hidden)
	}

	neurons := s.Neurons()
	for i, n := range neurons {
		if n.ID != i+1 {
			t.Fatalf("unexpected order at %d: %d", i, n.ID)
		}
		if n.Bias != 0.5 {
			t.Fatalf("unexpected bias: %f", n.Bias)
		}
	}

	neurons[0].Activation = 9
	if s.Activation(1) != 0 {
		t.Fatal("enumeration leaked a live reference")
	}
}

func TestBuildSample(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 99} {
		s := New(NewSeededRand(seed))
		s.AddNeuron(0, 0, model.Output)
		BuildSample(s)

		if got := len(s.NeuronsOfType(model.Input)); got != 2 {
			t.Fatalf("seed %d: inputs=%d", seed, got)
		}
		if got := len(s.NeuronsOfType(model.Hidden)); got != 3 {
			t.Fatalf("seed %d: hidden=%d", seed, got)
		}
		if got := len(s.NeuronsOfType(model.Output)); got != 1 {
			t.Fatalf("seed %d: outputs=%d", seed, got)
		}
		if s.ConnectionCount() != 7 {
			t.Fatalf("seed %d: connections=%d", seed, s.ConnectionCount())
		}
		if s.NextNeuronID() != 7 {
			t.Fatalf("seed %d: sample did not start from a cleared store", seed)
		}
	}
}
