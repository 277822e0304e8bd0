package visualization

import (
	"fmt"
	"strings"

	"neurograph/internal/model"
)

// RenderDOT produces a Graphviz digraph of the snapshot. Neuron positions are
// pinned so `neato -n` reproduces the on-screen layout; active connections
// are drawn bold.
func RenderDOT(snap model.Snapshot) string {
	var b strings.Builder
	b.WriteString("digraph neurograph {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  node [shape=circle, style=filled, fontname=\"Helvetica\"];\n")
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")

	for _, n := range snap.Neurons {
		fmt.Fprintf(&b, "  n%d [label=%q, fillcolor=%q, pos=\"%.1f,%.1f!\", tooltip=\"activation=%.3f bias=%.3f\"];\n",
			n.ID, fmt.Sprintf("%s%d", n.Symbol, n.ID), n.Color, n.Position.X, n.Position.Y, n.Activation, n.Bias)
	}
	if len(snap.Neurons) > 0 {
		b.WriteString("\n")
	}

	for _, c := range snap.Connections {
		style := "solid"
		if c.Active {
			style = "bold"
		}
		fmt.Fprintf(&b, "  n%d -> n%d [label=\"%.2f\", style=%s];\n", c.From, c.To, c.Weight, style)
	}

	b.WriteString("}\n")
	return b.String()
}
