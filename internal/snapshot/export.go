package snapshot

import (
	"neurograph/internal/graph"
	"neurograph/internal/model"
)

// Export copies the store state and computes aggregate statistics. The
// result shares no memory with the store.
func Export(s *graph.Store) model.Snapshot {
	neurons := s.Neurons()
	connections := s.Connections()
	if neurons == nil {
		neurons = []model.Neuron{}
	}
	if connections == nil {
		connections = []model.Connection{}
	}

	return model.Snapshot{
		Neurons:     neurons,
		Connections: connections,
		Stats:       ComputeStats(neurons, len(connections)),
	}
}

func ComputeStats(neurons []model.Neuron, connections int) model.Stats {
	stats := model.Stats{
		TotalNeurons:     len(neurons),
		TotalConnections: connections,
	}

	var sum float64
	for _, n := range neurons {
		switch n.Type {
		case model.Input:
			stats.InputNeurons++
		case model.Hidden:
			stats.HiddenNeurons++
		case model.Output:
			stats.OutputNeurons++
		}
		sum += n.Activation
	}
	if len(neurons) > 0 {
		stats.AverageActivation = sum / float64(len(neurons))
	}
	return stats
}
