package animation

import (
	"math"

	"neurograph/internal/graph"
)

const (
	OrbitCenterX = 400.0
	OrbitCenterY = 300.0
	OrbitRadius  = 200.0
	orbitSpeed   = 0.001
)

// Orbit places every neuron on a circle. Neurons are enumerated in ascending
// id order so repeated calls with the same time give the same layout.
func Orbit(s *graph.Store, time float64) {
	neurons := s.Neurons()
	count := float64(len(neurons))
	for i, n := range neurons {
		angle := time*orbitSpeed + float64(i)*2*math.Pi/count
		s.SetPosition(n.ID, OrbitCenterX+OrbitRadius*math.Cos(angle), OrbitCenterY+OrbitRadius*math.Sin(angle))
	}
}
