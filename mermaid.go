package fsm

import (
	"strings"

	"github.com/enetx/g"
)

// ToMermaid generates a Mermaid flowchart of the transition table.
// The initial state is drawn as a circle; visited and current states get overlay classes.
func (f *FSM) ToMermaid() g.String {
	b := g.NewBuilder()
	b.WriteString("graph LR\n")

	for _, state := range f.states {
		id := mermaidID(state)

		opener, closer := "[", "]"
		if state == f.config.Initial() {
			opener, closer = "((", "))"
		}

		b.WriteString(g.Format("    {}{}\"{}\"{}\n", id, opener, state, closer))

		order, labels := f.config.edges(state)
		for _, to := range order {
			label := strings.ReplaceAll(string(labels[to].Join(", ")), "\"", "'")
			b.WriteString(g.Format("    {} -- \"{}\" --> {}\n", id, label, mermaidID(to)))
		}
	}

	b.WriteString("\n    %% History\n")
	b.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
	b.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

	for _, state := range f.states {
		if state != f.current && f.visited(state) {
			b.WriteString(g.Format("    class {} visited;\n", mermaidID(state)))
		}
	}

	b.WriteString(g.Format("    class {} current;\n", mermaidID(f.current)))

	return b.String()
}

var mermaidReplacer = strings.NewReplacer(".", "_", "-", "_", "/", "_", "\\", "_", " ", "_")

func mermaidID(s State) string {
	return mermaidReplacer.Replace(string(s))
}
