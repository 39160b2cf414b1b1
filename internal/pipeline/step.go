package pipeline

import (
	"context"
	"sort"

	"github.com/vk/flowgrid/internal/ctxlog"
)

// Step advances the pipeline by one logical tick, resolving the state
// of every sink exactly once, and reports whether all sinks are now
// Closed. Nothing is cached across ticks: a branch that was closed only
// because of a since-erased upstream becomes live again once a
// replacement is connected.
func (p *Pipeline) Step() bool {
	resolved := make(map[NodeID]Poll, len(p.nodes))
	allClosed := true
	for _, id := range p.ids() {
		if !isSink(p.nodes[id].node) {
			continue
		}
		if p.resolve(id, resolved) != Closed {
			allClosed = false
		}
	}
	return allClosed
}

// resolve computes a node's state for the current tick, depth-first
// over its upstream slots in slot order. An upstream Closed dominates
// Empty, and either one short-circuits the node: its own Poll runs only
// when every upstream resolved Ready. The per-tick memo guarantees each
// node is polled at most once regardless of fan-out.
func (p *Pipeline) resolve(id NodeID, resolved map[NodeID]Poll) Poll {
	if state, ok := resolved[id]; ok {
		return state
	}
	e := p.nodes[id]

	slots := make([]int, 0, len(e.inputs))
	for slot := range e.inputs {
		slots = append(slots, slot)
	}
	sort.Ints(slots)

	upstream := Ready
	for _, slot := range slots {
		switch p.resolve(e.inputs[slot], resolved) {
		case Closed:
			upstream = Closed
		case Empty:
			if upstream == Ready {
				upstream = Empty
			}
		}
	}

	state := upstream
	if upstream == Ready {
		state = e.node.Poll()
	}
	resolved[id] = state
	return state
}

// Run steps the pipeline until every sink is Closed. A pipeline whose
// sources never close runs until the context is canceled; that is the
// caller's bargain, not a graph error.
func (p *Pipeline) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	ticks := 0
	for {
		ticks++
		if p.Step() {
			break
		}
		if err := ctx.Err(); err != nil {
			logger.Debug("Pipeline run canceled.", "ticks", ticks)
			return err
		}
	}
	logger.Debug("All sinks closed.", "ticks", ticks)
	return nil
}
