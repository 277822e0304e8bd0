package nn

import (
	"neurograph/internal/graph"
	"neurograph/internal/model"
)

// Predict runs one synchronous forward sweep over the store and returns the
// output activations in ascending neuron id order.
//
// Inputs are assigned to input neurons by ascending id; surplus values on
// either side are ignored. Hidden neurons and then output neurons are
// evaluated in ascending id order, each written back before the next one
// reads. Evaluation follows id order, not topological depth: a hidden neuron
// fed by a higher-numbered hidden neuron reads that neuron's previous
// activation.
func Predict(s *graph.Store, inputs []float64) []float64 {
	for i, id := range s.NeuronsOfType(model.Input) {
		if i >= len(inputs) {
			break
		}
		s.SetActivation(id, inputs[i])
	}

	for _, id := range s.NeuronsOfType(model.Hidden) {
		s.SetActivation(id, activate(s, id))
	}

	outputs := make([]float64, 0)
	for _, id := range s.NeuronsOfType(model.Output) {
		value := activate(s, id)
		s.SetActivation(id, value)
		outputs = append(outputs, value)
	}
	return outputs
}

func activate(s *graph.Store, id int) float64 {
	neuron, _ := s.Neuron(id)
	incoming := s.Incoming(id)

	weights := make([]float64, len(incoming))
	activations := make([]float64, len(incoming))
	for i, c := range incoming {
		weights[i] = c.Weight
		activations[i] = s.Activation(c.From)
	}
	return Sigmoid(weightedSum(neuron.Bias, weights, activations))
}
