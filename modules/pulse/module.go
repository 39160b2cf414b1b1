// Package pulse provides a source node that emits on every other poll,
// reporting an empty tick in between. It exists to exercise downstream
// behavior under intermittent input.
package pulse

import (
	"errors"
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/flowgrid/internal/pipeline"
	"github.com/vk/flowgrid/internal/registry"
)

// Module registers the "pulse" node kind.
type Module struct{}

// Register implements the registry.Module interface.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterNode("pulse", newFromArgs)
}

func newFromArgs(name string, args map[string]cty.Value) (pipeline.Node, error) {
	limitVal, ok := args["limit"]
	if !ok {
		return nil, errors.New("missing required argument \"limit\"")
	}
	var limit int64
	if err := gocty.FromCtyValue(limitVal, &limit); err != nil {
		return nil, fmt.Errorf("argument \"limit\": %w", err)
	}
	if limit < 0 {
		return nil, fmt.Errorf("argument \"limit\" must not be negative, got %d", limit)
	}
	return New(name, limit), nil
}

// Node counts up from 1 like a counter but yields a value only on even
// counts, so consumers see every other tick empty.
type Node struct {
	name    string
	limit   int64
	current int64
}

// New creates a pulse source that counts up to limit.
func New(name string, limit int64) *Node {
	return &Node{name: name, limit: limit}
}

func (n *Node) Name() string {
	return fmt.Sprintf("Pulse(%s)", n.name)
}

func (n *Node) InputTypes() []cty.Type { return nil }

func (n *Node) OutputType() cty.Type { return cty.Number }

func (n *Node) Bind(slot int, source pipeline.Node) {}

func (n *Node) Poll() pipeline.Poll {
	if n.current >= n.limit {
		return pipeline.Closed
	}
	n.current++
	if n.current%2 != 0 {
		return pipeline.Empty
	}
	return pipeline.Ready
}

// Value returns the integer produced by the last Ready poll.
func (n *Node) Value() cty.Value {
	return cty.NumberIntVal(n.current)
}

var _ pipeline.Producer = (*Node)(nil)
