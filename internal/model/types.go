package model

import "strings"

// VersionedRecord captures schema and codec evolution for recorded data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

type NeuronType string

const (
	Input  NeuronType = "input"
	Hidden NeuronType = "hidden"
	Output NeuronType = "output"
)

// ParseNeuronType normalizes case and surrounding whitespace. Tags outside
// the known set are preserved and behave as unknown neurons.
func ParseNeuronType(s string) NeuronType {
	t := NeuronType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case Input, Hidden, Output:
		return t
	default:
		return NeuronType(s)
	}
}

// Appearance returns the display color and symbol for a neuron type.
func (t NeuronType) Appearance() (color, symbol string) {
	switch t {
	case Input:
		return "#4CAF50", "I"
	case Hidden:
		return "#2196F3", "H"
	case Output:
		return "#FF9800", "O"
	default:
		return "#9E9E9E", "?"
	}
}

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Neuron struct {
	ID         int        `json:"id"`
	Position   Position   `json:"position"`
	Type       NeuronType `json:"neuron_type"`
	Activation float64    `json:"activation"`
	Bias       float64    `json:"bias"`
	Color      string     `json:"color"`
	Symbol     string     `json:"symbol"`
}

type Connection struct {
	ID     int     `json:"id"`
	From   int     `json:"from_id"`
	To     int     `json:"to_id"`
	Weight float64 `json:"weight"`
	// Active is display state recomputed on every animation step.
	Active bool `json:"active"`
}

type Stats struct {
	TotalNeurons      int     `json:"total_neurons"`
	TotalConnections  int     `json:"total_connections"`
	InputNeurons      int     `json:"input_neurons"`
	HiddenNeurons     int     `json:"hidden_neurons"`
	OutputNeurons     int     `json:"output_neurons"`
	AverageActivation float64 `json:"average_activation"`
}

// Snapshot is a detached copy of the network state.
type Snapshot struct {
	Neurons     []Neuron     `json:"neurons"`
	Connections []Connection `json:"connections"`
	Stats       Stats        `json:"stats"`
}

// Frame is a snapshot recorded by a host at a point of the animation clock.
type Frame struct {
	VersionedRecord
	SessionID string   `json:"session_id"`
	Index     int      `json:"index"`
	Clock     float64  `json:"clock"`
	Snapshot  Snapshot `json:"snapshot"`
}
