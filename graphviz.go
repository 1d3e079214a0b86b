package fsm

import "github.com/enetx/g"

// edges groups the transitions of a state by destination, keeping declaration order.
func (c *Config) edges(from State) (g.Slice[State], g.Map[State, g.Slice[g.String]]) {
	order := g.NewSlice[State]()
	labels := g.NewMap[State, g.Slice[g.String]]()

	for _, t := range c.transitions[from] {
		if !labels.Contains(t.To) {
			order.Push(t.To)
		}

		labels[t.To] = append(labels[t.To], g.String(t.Event))
	}

	return order, labels
}

// visited reports whether the state is recorded in the history.
func (f *FSM) visited(s State) bool {
	for _, e := range f.history {
		if e.Name == s {
			return true
		}
	}

	return false
}

// ToDOT generates a DOT language string representation of the FSM for visualization.
// The current state and the states recorded in the history are highlighted.
func (f *FSM) ToDOT() g.String {
	b := g.NewBuilder()

	b.WriteString("digraph FSM {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString(
		"  node [shape=circle, style=filled, fillcolor=\"#f8f8f8\", color=\"#444444\", fontname=\"Helvetica\"];\n",
	)
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")

	b.WriteString("  __start [shape=point, style=invis];\n")
	b.WriteString(g.Format("  __start -> \"{}\" [label=\" initial\"];\n\n", f.config.Initial()))

	for _, state := range f.states {
		var attrs g.Slice[g.String]
		attrs.Push(g.Format("label=\"{}\"", state))

		switch {
		case state == f.current:
			attrs.Push("fillcolor=\"#90ee90\"", "shape=doublecircle")
		case f.config.transitions[state].Empty():
			attrs.Push("fillcolor=\"#d3d3d3\"", "shape=doublecircle")
		case f.visited(state):
			attrs.Push("fillcolor=\"#add8e6\"")
		}

		b.WriteString(g.Format("  \"{}\" [{}];\n", state, attrs.Join(", ")))
	}

	b.WriteByte('\n')

	for _, from := range f.states {
		order, labels := f.config.edges(from)
		for _, to := range order {
			b.WriteString(g.Format("  \"{}\" -> \"{}\" [label=\" {} \"];\n", from, to, labels[to].Join("\\n")))
		}
	}

	b.WriteString("\n  subgraph cluster_legend {\n")
	b.WriteString("    label = \"Legend\";\n")
	b.WriteString("    style = dashed;\n")
	b.WriteString(`    key [label=<
      <table border="0" cellpadding="4" cellspacing="0" cellborder="0">
        <tr><td align="right">●</td><td>Regular state</td></tr>
        <tr><td align="right"><font color="green">◎</font></td><td>Current state</td></tr>
        <tr><td align="right"><font color="lightblue">●</font></td><td>Visited state</td></tr>
        <tr><td align="right"><font color="gray">◎</font></td><td>Final state</td></tr>
      </table>
    >, shape=none];`)

	b.WriteString("  }\n")
	b.WriteString("}\n")

	return b.String()
}
