package pipeline

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteDOT writes the pipeline's topology in Graphviz DOT form: one
// quoted "<id> <name>" line per node in ascending ID order, a blank
// line, then one quoted arrow line per connection, grouped by source
// and ordered by consumer ID. A node wired into the same consumer on
// two slots yields the same arrow line twice.
func (p *Pipeline) WriteDOT(w io.Writer) error {
	ids := p.ids()

	var b strings.Builder
	b.WriteString("digraph G {\n")
	for _, id := range ids {
		b.WriteString("  " + strconv.Quote(p.label(id)) + "\n")
	}
	b.WriteString("\n")
	for _, id := range ids {
		deps, _ := p.Dependents(id)
		for _, d := range deps {
			b.WriteString("  " + strconv.Quote(p.label(id)) + " -> " + strconv.Quote(p.label(d.Node)) + "\n")
		}
	}
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// String renders the DOT export, implementing fmt.Stringer.
func (p *Pipeline) String() string {
	var b strings.Builder
	_ = p.WriteDOT(&b)
	return b.String()
}

func (p *Pipeline) label(id NodeID) string {
	return fmt.Sprintf("%d %s", id, p.nodes[id].node.Name())
}
