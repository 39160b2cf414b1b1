package config

import "github.com/zclconf/go-cty/cty"

// Model is the unified, format-agnostic representation of everything
// loaded from the user's grid files.
type Model struct {
	Grid *Grid
}

// Grid is the user's pipeline definition: node instances plus the
// explicit wires between them.
type Grid struct {
	Nodes       []*NodeDef
	Connections []*Connection
}

// NodeDef declares one instance of a registered node kind. Arguments
// are already evaluated to values: grid files are self-contained, so
// expressions resolve at load time.
type NodeDef struct {
	Kind      string
	Name      string
	Arguments map[string]cty.Value
}

// Connection wires the From instance's output into input slot Slot of
// the To instance.
type Connection struct {
	From string
	To   string
	Slot int
}
