package pipeline

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// ErrorKind enumerates the ways a wiring mutation can fail. Every
// failure is signaled synchronously and leaves the graph untouched.
type ErrorKind int

const (
	// ErrInvalidNodeID means an identifier does not currently exist in
	// the pipeline: it never existed, or its node was erased.
	ErrInvalidNodeID ErrorKind = iota
	// ErrNoSuchSlot means a slot index is outside the destination
	// node's declared input range.
	ErrNoSuchSlot
	// ErrSlotAlreadyUsed means a connect targeted a slot that already
	// has an upstream bound to it.
	ErrSlotAlreadyUsed
	// ErrTypeMismatch means the source's declared output type differs
	// from the destination slot's declared input type.
	ErrTypeMismatch
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidNodeID:
		return "invalid node ID"
	case ErrNoSuchSlot:
		return "no such slot"
	case ErrSlotAlreadyUsed:
		return "slot already used"
	case ErrTypeMismatch:
		return "connection type mismatch"
	default:
		return fmt.Sprintf("pipeline error(%d)", int(k))
	}
}

// Error is the error type returned by the wiring operations. Callers
// that need to branch on the failure mode use errors.As and inspect
// Kind.
type Error struct {
	Kind   ErrorKind
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Detail
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// typeName renders a declared type tag for error messages and logs,
// naming the sink sentinel explicitly.
func typeName(t cty.Type) string {
	if t == cty.NilType {
		return "none"
	}
	return t.FriendlyName()
}
