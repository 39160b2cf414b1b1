package pipeline

// Valid reports whether the pipeline is structurally sound:
//
//   - every node has all of its declared input slots wired,
//   - every node that produces a value has at least one consumer,
//   - at least one pure source and one pure sink exist,
//   - no cycle exists along consumes-from edges, and
//   - the graph forms a single component when edges are read as
//     undirected.
//
// Valid is read-only and may be called at any point, including on
// partially wired or freshly mutated graphs.
func (p *Pipeline) Valid() bool {
	hasSource, hasSink := false, false
	for _, e := range p.nodes {
		if len(e.inputs) != len(e.node.InputTypes()) {
			return false
		}
		if !isSink(e.node) && len(e.dependents) == 0 {
			return false
		}
		if isSink(e.node) {
			hasSink = true
		}
		if isSource(e.node) {
			hasSource = true
		}
	}
	// This also rejects the empty graph, before the traversals below
	// could pass vacuously.
	if !hasSource || !hasSink {
		return false
	}

	return !p.hasCycle() && p.isConnected()
}

// hasCycle runs a depth-first search from every sink along slot
// bindings, with the classic unvisited / in-progress / done coloring.
// Meeting an in-progress node again means a consumption cycle.
func (p *Pipeline) hasCycle() bool {
	const (
		inProgress = 1
		done       = 2
	)
	color := make(map[NodeID]int, len(p.nodes))

	var visit func(NodeID) bool
	visit = func(id NodeID) bool {
		switch color[id] {
		case inProgress:
			return true
		case done:
			return false
		}
		color[id] = inProgress
		for _, upstream := range p.nodes[id].inputs {
			if visit(upstream) {
				return true
			}
		}
		color[id] = done
		return false
	}

	for id, e := range p.nodes {
		if isSink(e.node) && visit(id) {
			return true
		}
	}
	return false
}

// isConnected treats every edge as undirected and floods from one
// arbitrary node; any unreached node belongs to a disjoint
// sub-pipeline.
func (p *Pipeline) isConnected() bool {
	seen := make(map[NodeID]bool, len(p.nodes))

	var flood func(NodeID)
	flood = func(id NodeID) {
		if seen[id] {
			return
		}
		seen[id] = true
		e := p.nodes[id]
		for _, upstream := range e.inputs {
			flood(upstream)
		}
		for _, d := range e.dependents {
			flood(d.Node)
		}
	}

	for id := range p.nodes {
		flood(id)
		break
	}
	return len(seen) == len(p.nodes)
}
