// Package animation drives the cosmetic, time-based state of a network:
// oscillating activations and an orbital layout. Neither is related to the
// values computed by nn.Predict.
package animation

import (
	"math"

	"neurograph/internal/graph"
	"neurograph/internal/model"
)

const (
	activeSourceThreshold = 0.5
	activeTargetThreshold = 0.3
)

// Stepper holds the animation clock.
type Stepper struct {
	clock float64
}

func NewStepper() *Stepper {
	return &Stepper{}
}

func (a *Stepper) Clock() float64 { return a.clock }

func (a *Stepper) Reset() { a.clock = 0 }

// Step advances the clock by dt, overwrites every activation with the
// oscillator value and recomputes every connection's active flag.
func (a *Stepper) Step(s *graph.Store, dt float64) {
	a.clock += dt

	for _, n := range s.Neurons() {
		s.SetActivation(n.ID, Oscillate(a.clock, n.Type, n.ID))
	}

	for _, c := range s.Connections() {
		if !s.HasNeuron(c.From) || !s.HasNeuron(c.To) {
			continue
		}
		active := s.Activation(c.From) > activeSourceThreshold && s.Activation(c.To) > activeTargetThreshold
		s.SetActive(c.ID, active)
	}
}

// Oscillate returns (sin(clock*freq + id) + 1) / 2.
func Oscillate(clock float64, t model.NeuronType, id int) float64 {
	return (math.Sin(clock*Frequency(t)+float64(id)) + 1) / 2
}

func Frequency(t model.NeuronType) float64 {
	switch t {
	case model.Hidden:
		return 2.0
	case model.Output:
		return 0.5
	default:
		return 1.0
	}
}
