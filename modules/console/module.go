// Package console provides the "print" sink node, which writes every
// number it receives to an output stream, one per line.
package console

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"strconv"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/flowgrid/internal/pipeline"
	"github.com/vk/flowgrid/internal/registry"
)

// Module registers the "print" node kind. Out defaults to standard
// output; the application injects its own writer so output can be
// captured in tests.
type Module struct {
	Out io.Writer
}

// Register implements the registry.Module interface.
func (m *Module) Register(r *registry.Registry) {
	out := m.Out
	if out == nil {
		out = os.Stdout
	}
	r.RegisterNode("print", func(name string, args map[string]cty.Value) (pipeline.Node, error) {
		return New(name, out), nil
	})
}

// Node consumes one number input and prints it.
type Node struct {
	name  string
	out   io.Writer
	input pipeline.Producer
}

// New creates a print sink writing to out.
func New(name string, out io.Writer) *Node {
	return &Node{name: name, out: out}
}

func (n *Node) Name() string {
	return fmt.Sprintf("Print(%s)", n.name)
}

func (n *Node) InputTypes() []cty.Type {
	return []cty.Type{cty.Number}
}

func (n *Node) OutputType() cty.Type { return cty.NilType }

func (n *Node) Bind(slot int, source pipeline.Node) {
	if source == nil {
		n.input = nil
		return
	}
	n.input = source.(pipeline.Producer)
}

func (n *Node) Poll() pipeline.Poll {
	fmt.Fprintln(n.out, FormatNumber(n.input.Value()))
	return pipeline.Ready
}

// FormatNumber renders a cty number without a trailing fractional part
// for integers.
func FormatNumber(v cty.Value) string {
	f := v.AsBigFloat()
	if i, acc := f.Int64(); acc == big.Exact {
		return strconv.FormatInt(i, 10)
	}
	return f.Text('g', -1)
}
