package pipeline

import "fmt"

// Poll is the result of advancing a node by one tick.
type Poll int

const (
	// Ready means the node produced or consumed a value this tick.
	Ready Poll = iota
	// Empty means no value was available this tick, but one may arrive
	// on a later tick.
	Empty
	// Closed means the node is permanently exhausted: every future poll
	// reports Closed again.
	Closed
)

func (p Poll) String() string {
	switch p {
	case Ready:
		return "ready"
	case Empty:
		return "empty"
	case Closed:
		return "closed"
	default:
		return fmt.Sprintf("poll(%d)", int(p))
	}
}
