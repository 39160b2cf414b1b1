package pipeline

import (
	"sort"

	"github.com/zclconf/go-cty/cty"
)

// NodeID identifies a node within one Pipeline. IDs are assigned in
// creation order starting at 1 and are never reused, so a stale ID
// reliably fails lookup instead of silently aliasing a newer node.
type NodeID int

// Dependent is the consumer-side endpoint of one connection: the node
// and input slot a producer's output is wired into.
type Dependent struct {
	Node NodeID
	Slot int
}

// entry is the store's per-node bookkeeping. The inputs maps and the
// dependents lists across the whole graph are exact transposes of each
// other; every mutation maintains both sides together.
type entry struct {
	node       Node
	inputs     map[int]NodeID
	dependents []Dependent
}

// Pipeline owns a set of nodes and the wiring between them.
type Pipeline struct {
	nodes  map[NodeID]*entry
	nextID NodeID
}

// New returns an empty pipeline.
func New() *Pipeline {
	return &Pipeline{
		nodes:  make(map[NodeID]*entry),
		nextID: 1,
	}
}

// CreateNode takes ownership of n and returns its fresh ID. It never
// fails; a newly created node has no bindings and no dependents.
func (p *Pipeline) CreateNode(n Node) NodeID {
	id := p.nextID
	p.nextID++
	p.nodes[id] = &entry{
		node:   n,
		inputs: make(map[int]NodeID),
	}
	return id
}

// Node returns the node instance behind id, or nil if id is not
// present.
func (p *Pipeline) Node(id NodeID) Node {
	e, ok := p.nodes[id]
	if !ok {
		return nil
	}
	return e.node
}

// Len returns the number of nodes currently in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.nodes)
}

// Connect wires src's output into dst's input slot. The checks run in a
// fixed order: both IDs must exist, the slot must be free, the slot
// must exist on dst, and the declared types must match. On any failure
// nothing is recorded on either side.
func (p *Pipeline) Connect(src, dst NodeID, slot int) error {
	srcEntry, ok := p.nodes[src]
	if !ok {
		return newError(ErrInvalidNodeID, "source node %d", src)
	}
	dstEntry, ok := p.nodes[dst]
	if !ok {
		return newError(ErrInvalidNodeID, "destination node %d", dst)
	}
	if bound, used := dstEntry.inputs[slot]; used {
		return newError(ErrSlotAlreadyUsed, "slot %d of node %d is already fed by node %d", slot, dst, bound)
	}
	inputs := dstEntry.node.InputTypes()
	if slot < 0 || slot >= len(inputs) {
		return newError(ErrNoSuchSlot, "node %d declares %d input slots, got slot %d", dst, len(inputs), slot)
	}
	out := srcEntry.node.OutputType()
	if !typesEqual(inputs[slot], out) {
		return newError(ErrTypeMismatch, "slot %d of node %d wants %s, node %d outputs %s",
			slot, dst, typeName(inputs[slot]), src, typeName(out))
	}

	dstEntry.node.Bind(slot, srcEntry.node)
	dstEntry.inputs[slot] = src
	srcEntry.dependents = append(srcEntry.dependents, Dependent{Node: dst, Slot: slot})
	return nil
}

// Disconnect removes every connection running from src into dst,
// releasing the affected slots on dst's node. Disconnecting two nodes
// that are not connected is a no-op, not an error.
func (p *Pipeline) Disconnect(src, dst NodeID) error {
	srcEntry, ok := p.nodes[src]
	if !ok {
		return newError(ErrInvalidNodeID, "source node %d", src)
	}
	dstEntry, ok := p.nodes[dst]
	if !ok {
		return newError(ErrInvalidNodeID, "destination node %d", dst)
	}
	for slot, bound := range dstEntry.inputs {
		if bound == src {
			dstEntry.node.Bind(slot, nil)
			delete(dstEntry.inputs, slot)
		}
	}
	srcEntry.dependents = withoutConsumer(srcEntry.dependents, dst)
	return nil
}

// EraseNode detaches id from every neighbor on both sides and releases
// it. Surviving consumers have their slots unbound, so no concrete node
// is left holding a reference to the erased instance. Missing neighbors
// are tolerated, so erase stays safe on leftover bookkeeping.
func (p *Pipeline) EraseNode(id NodeID) error {
	e, ok := p.nodes[id]
	if !ok {
		return newError(ErrInvalidNodeID, "node %d", id)
	}
	for _, supplier := range e.inputs {
		if s, ok := p.nodes[supplier]; ok {
			s.dependents = withoutConsumer(s.dependents, id)
		}
	}
	for _, dep := range e.dependents {
		d, ok := p.nodes[dep.Node]
		if !ok {
			continue
		}
		if d.inputs[dep.Slot] == id {
			d.node.Bind(dep.Slot, nil)
			delete(d.inputs, dep.Slot)
		}
	}
	delete(p.nodes, id)
	return nil
}

// Dependents returns a copy of the (consumer, slot) pairs fed by id's
// output, sorted by consumer ID. Slot order between equal consumers
// follows connection order, and one pair is reported per connection, so
// a double connection shows up twice.
func (p *Pipeline) Dependents(id NodeID) ([]Dependent, error) {
	e, ok := p.nodes[id]
	if !ok {
		return nil, newError(ErrInvalidNodeID, "node %d", id)
	}
	deps := make([]Dependent, len(e.dependents))
	copy(deps, e.dependents)
	sort.SliceStable(deps, func(i, j int) bool {
		return deps[i].Node < deps[j].Node
	})
	return deps, nil
}

// ids returns every node ID in ascending order.
func (p *Pipeline) ids() []NodeID {
	out := make([]NodeID, 0, len(p.nodes))
	for id := range p.nodes {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// withoutConsumer filters the pairs pointing at the given consumer out
// of a dependents list, in place.
func withoutConsumer(deps []Dependent, consumer NodeID) []Dependent {
	kept := deps[:0]
	for _, d := range deps {
		if d.Node != consumer {
			kept = append(kept, d)
		}
	}
	return kept
}

// typesEqual compares two declared type tags, treating the cty.NilType
// sink sentinel as equal only to itself.
func typesEqual(a, b cty.Type) bool {
	if a == cty.NilType || b == cty.NilType {
		return a == b
	}
	return a.Equals(b)
}
