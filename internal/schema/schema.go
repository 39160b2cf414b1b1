// Package schema declares the HCL block structures of grid files.
package schema

import "github.com/hashicorp/hcl/v2"

// NodeArgs represents the content of the 'arguments' block within a
// node block. Its attributes are kind-specific and decoded by the
// node's factory.
type NodeArgs struct {
	Body hcl.Body `hcl:",remain"`
}

// Node represents a `node` block from a user's grid file: one instance
// of a registered node kind.
type Node struct {
	Kind      string    `hcl:"kind,label"`
	Name      string    `hcl:"instance_name,label"`
	Arguments *NodeArgs `hcl:"arguments,block"`
}

// Connect represents a `connect` block: one wire from a producer
// instance into a numbered input slot of a consumer instance.
type Connect struct {
	From string `hcl:"from"`
	To   string `hcl:"to"`
	Slot int    `hcl:"slot"`
}

// GridConfig represents the top-level structure of a grid file,
// containing all declared nodes and the wiring between them.
type GridConfig struct {
	Nodes    []*Node    `hcl:"node,block"`
	Connects []*Connect `hcl:"connect,block"`
	Body     hcl.Body   `hcl:",remain"`
}
