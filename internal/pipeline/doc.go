// Package pipeline implements a typed dataflow graph: nodes with
// slot-addressed inputs wired together under type checks, validated for
// structural soundness, and advanced one cooperative tick at a time by
// pull-based polling.
//
// The engine never inspects the values flowing through a graph. Nodes
// declare cty.Type tags for their input slots and output; compatibility
// is checked once, at Connect time, by tag equality. Value handoff
// happens between the concrete nodes themselves through the Producer
// interface.
//
// A Pipeline is owned by a single goroutine. Mutation and stepping must
// not be interleaved from multiple threads without external
// synchronization.
package pipeline
