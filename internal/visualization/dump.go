// Package visualization renders network state as text for consoles and
// Graphviz.
package visualization

import (
	"fmt"
	"io"
	"strings"
	"time"

	"neurograph/internal/model"
)

const rule = "====================================="

// DumpState is everything printed by Dump.
type DumpState struct {
	Snapshot         model.Snapshot
	NextNeuronID     int
	NextConnectionID int
	AnimationTime    float64
	GeneratedAt      time.Time
}

// Dump writes a human-readable listing of the network to w.
func Dump(w io.Writer, st DumpState) error {
	var b strings.Builder

	b.WriteString("Neural Network Console Dump\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Total Neurons: %d\n", st.Snapshot.Stats.TotalNeurons)
	fmt.Fprintf(&b, "Total Connections: %d\n", st.Snapshot.Stats.TotalConnections)
	fmt.Fprintf(&b, "Next Neuron ID: %d\n", st.NextNeuronID)
	fmt.Fprintf(&b, "Next Connection ID: %d\n", st.NextConnectionID)
	fmt.Fprintf(&b, "Animation Time: %.2f\n\n", st.AnimationTime)

	b.WriteString("NEURON DETAILS:\n")
	for _, n := range st.Snapshot.Neurons {
		fmt.Fprintf(&b, "  Neuron %d [%s]: pos(%.1f, %.1f), activation=%.3f, bias=%.3f\n",
			n.ID, n.Type, n.Position.X, n.Position.Y, n.Activation, n.Bias)
	}

	b.WriteString("\nCONNECTION DETAILS:\n")
	for _, c := range st.Snapshot.Connections {
		fmt.Fprintf(&b, "  Connection %d: %d -> %d (weight=%.3f, active=%t)\n",
			c.ID, c.From, c.To, c.Weight, c.Active)
	}

	fmt.Fprintf(&b, "\nDump generated at: %s\n", st.GeneratedAt.UTC().Format(time.RFC3339))
	b.WriteString(rule + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func DumpString(st DumpState) string {
	var b strings.Builder
	_ = Dump(&b, st)
	return b.String()
}
