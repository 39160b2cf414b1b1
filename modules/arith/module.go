// Package arith provides two-input arithmetic combinator nodes over
// numbers: sum, diff and product.
package arith

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/flowgrid/internal/pipeline"
	"github.com/vk/flowgrid/internal/registry"
)

// Op selects the arithmetic operation a node applies.
type Op int

const (
	Add Op = iota
	Sub
	Mul
)

func (op Op) String() string {
	switch op {
	case Add:
		return "Sum"
	case Sub:
		return "Diff"
	case Mul:
		return "Product"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Module registers the "sum", "diff" and "product" node kinds.
type Module struct{}

// Register implements the registry.Module interface.
func (m *Module) Register(r *registry.Registry) {
	register := func(kind string, op Op) {
		r.RegisterNode(kind, func(name string, args map[string]cty.Value) (pipeline.Node, error) {
			return New(name, op), nil
		})
	}
	register("sum", Add)
	register("diff", Sub)
	register("product", Mul)
}

// Node combines two number inputs into one number output.
type Node struct {
	name   string
	op     Op
	inputs [2]pipeline.Producer
	value  cty.Value
}

// New creates an arithmetic node applying op to its two inputs.
func New(name string, op Op) *Node {
	return &Node{name: name, op: op}
}

func (n *Node) Name() string {
	return fmt.Sprintf("%s(%s)", n.op, n.name)
}

func (n *Node) InputTypes() []cty.Type {
	return []cty.Type{cty.Number, cty.Number}
}

func (n *Node) OutputType() cty.Type { return cty.Number }

func (n *Node) Bind(slot int, source pipeline.Node) {
	if source == nil {
		n.inputs[slot] = nil
		return
	}
	n.inputs[slot] = source.(pipeline.Producer)
}

// Poll is only called once both inputs reported Ready for the tick, so
// reading their values here is safe.
func (n *Node) Poll() pipeline.Poll {
	a := n.inputs[0].Value()
	b := n.inputs[1].Value()
	switch n.op {
	case Add:
		n.value = a.Add(b)
	case Sub:
		n.value = a.Subtract(b)
	case Mul:
		n.value = a.Multiply(b)
	}
	return pipeline.Ready
}

// Value returns the result computed by the last Ready poll.
func (n *Node) Value() cty.Value {
	return n.value
}

var _ pipeline.Producer = (*Node)(nil)
