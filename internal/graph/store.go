package graph

import (
	"slices"

	"neurograph/internal/model"
)

// Store owns the neurons and connections of one network.
//
// Neurons and connections are held in id order; ids are minted by the store
// and only restart after Clear. The store is not safe for concurrent use.
type Store struct {
	rng RandSource

	neurons     []model.Neuron
	neuronIndex map[int]int

	connections []model.Connection
	connIndex   map[int]int

	nextNeuronID     int
	nextConnectionID int
}

func New(rng RandSource) *Store {
	if rng == nil {
		rng = NewSeededRand(1)
	}
	s := &Store{rng: rng}
	s.Clear()
	return s
}

// AddNeuron inserts a neuron with a random bias in [-1, 1] and returns its id.
func (s *Store) AddNeuron(x, y float64, t model.NeuronType) int {
	id := s.nextNeuronID
	s.nextNeuronID++

	color, symbol := t.Appearance()
	s.neuronIndex[id] = len(s.neurons)
	s.neurons = append(s.neurons, model.Neuron{
		ID:       id,
		Position: model.Position{X: x, Y: y},
		Type:     t,
		Bias:     symmetric(s.rng),
		Color:    color,
		Symbol:   symbol,
	})
	return id
}

// AddConnection links two existing neurons with a random weight in [-1, 1].
// It reports false and leaves the id counter untouched when either endpoint
// is missing.
func (s *Store) AddConnection(from, to int) (int, bool) {
	if !s.HasNeuron(from) || !s.HasNeuron(to) {
		return 0, false
	}

	id := s.nextConnectionID
	s.nextConnectionID++

	s.connIndex[id] = len(s.connections)
	s.connections = append(s.connections, model.Connection{
		ID:     id,
		From:   from,
		To:     to,
		Weight: symmetric(s.rng),
	})
	return id, true
}

// Clear removes every neuron and connection and restarts both id counters at 1.
func (s *Store) Clear() {
	s.neurons = nil
	s.neuronIndex = make(map[int]int)
	s.connections = nil
	s.connIndex = make(map[int]int)
	s.nextNeuronID = 1
	s.nextConnectionID = 1
}

func (s *Store) HasNeuron(id int) bool {
	_, ok := s.neuronIndex[id]
	return ok
}

func (s *Store) Neuron(id int) (model.Neuron, bool) {
	i, ok := s.neuronIndex[id]
	if !ok {
		return model.Neuron{}, false
	}
	return s.neurons[i], true
}

func (s *Store) Connection(id int) (model.Connection, bool) {
	i, ok := s.connIndex[id]
	if !ok {
		return model.Connection{}, false
	}
	return s.connections[i], true
}

// Neurons returns a copy of all neurons in ascending id order.
func (s *Store) Neurons() []model.Neuron {
	return slices.Clone(s.neurons)
}

// Connections returns a copy of all connections in ascending id order.
func (s *Store) Connections() []model.Connection {
	return slices.Clone(s.connections)
}

func (s *Store) NeuronCount() int     { return len(s.neurons) }
func (s *Store) ConnectionCount() int { return len(s.connections) }

// NeuronsOfType returns the ids of neurons tagged t in ascending order.
func (s *Store) NeuronsOfType(t model.NeuronType) []int {
	var ids []int
	for _, n := range s.neurons {
		if n.Type == t {
			ids = append(ids, n.ID)
		}
	}
	return ids
}

// Incoming returns the connections targeting id in ascending connection id.
func (s *Store) Incoming(id int) []model.Connection {
	var in []model.Connection
	for _, c := range s.connections {
		if c.To == id {
			in = append(in, c)
		}
	}
	return in
}

func (s *Store) NextNeuronID() int     { return s.nextNeuronID }
func (s *Store) NextConnectionID() int { return s.nextConnectionID }

// Activation returns the activation of id, or 0 when the neuron is absent.
func (s *Store) Activation(id int) float64 {
	if i, ok := s.neuronIndex[id]; ok {
		return s.neurons[i].Activation
	}
	return 0
}

func (s *Store) SetActivation(id int, v float64) {
	if i, ok := s.neuronIndex[id]; ok {
		s.neurons[i].Activation = v
	}
}

func (s *Store) SetPosition(id int, x, y float64) {
	if i, ok := s.neuronIndex[id]; ok {
		s.neurons[i].Position = model.Position{X: x, Y: y}
	}
}

func (s *Store) SetActive(connID int, active bool) {
	if i, ok := s.connIndex[connID]; ok {
		s.connections[i].Active = active
	}
}

// SetBias overrides the creation-time bias. Only tests and fixtures use it.
func (s *Store) SetBias(id int, v float64) {
	if i, ok := s.neuronIndex[id]; ok {
		s.neurons[i].Bias = v
	}
}

// SetWeight overrides the creation-time weight. Only tests and fixtures use it.
func (s *Store) SetWeight(connID int, v float64) {
	if i, ok := s.connIndex[connID]; ok {
		s.connections[i].Weight = v
	}
}
