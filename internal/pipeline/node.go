package pipeline

import "github.com/zclconf/go-cty/cty"

// Node is the contract every processing unit in a pipeline satisfies.
// The three shapes are conventions over the same interface: a pure
// source declares zero input slots, a pure sink declares cty.NilType as
// its output, and everything else is a transform.
type Node interface {
	// Name identifies the node in logs and in the DOT export. It has no
	// semantic meaning to the engine.
	Name() string

	// InputTypes declares one type tag per input slot, in slot order.
	// The engine reads only its length and elements; a pure source
	// returns an empty list.
	InputTypes() []cty.Type

	// OutputType declares the type tag of the node's output, or
	// cty.NilType for a pure sink.
	OutputType() cty.Type

	// Bind records source as the upstream feeding the given slot. A nil
	// source releases the slot. Bind is called only by the wiring
	// engine, after it has validated the connection.
	Bind(slot int, source Node)

	// Poll advances the node by one tick. It may read values from
	// currently bound upstreams but must not mutate wiring.
	Poll() Poll
}

// Producer is implemented by nodes whose OutputType is not cty.NilType.
// Downstream nodes read the most recently produced value through it;
// the engine itself never does.
type Producer interface {
	Node

	// Value returns the value produced by the node's latest Ready poll.
	Value() cty.Value
}

// isSink reports whether n is a pure sink (no declared output).
func isSink(n Node) bool {
	return n.OutputType() == cty.NilType
}

// isSource reports whether n is a pure source (no declared inputs).
func isSource(n Node) bool {
	return len(n.InputTypes()) == 0
}
