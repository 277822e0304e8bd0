package nn

import "math"

// Sigmoid is the logistic function 1 / (1 + e^-x).
func Sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// weightedSum returns bias plus the weighted activations feeding a neuron.
func weightedSum(bias float64, weights, activations []float64) float64 {
	total := bias
	for i, w := range weights {
		total += w * activations[i]
	}
	return total
}
