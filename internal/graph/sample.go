package graph

import "neurograph/internal/model"

// BuildSample clears s and builds the 2-3-1 demonstration network.
func BuildSample(s *Store) {
	s.Clear()

	input1 := s.AddNeuron(100, 150, model.Input)
	input2 := s.AddNeuron(100, 250, model.Input)

	hidden1 := s.AddNeuron(300, 100, model.Hidden)
	hidden2 := s.AddNeuron(300, 200, model.Hidden)
	hidden3 := s.AddNeuron(300, 300, model.Hidden)

	output := s.AddNeuron(500, 200, model.Output)

	s.AddConnection(input1, hidden1)
	s.AddConnection(input1, hidden2)
	s.AddConnection(input2, hidden2)
	s.AddConnection(input2, hidden3)

	s.AddConnection(hidden1, output)
	s.AddConnection(hidden2, output)
	s.AddConnection(hidden3, output)
}
