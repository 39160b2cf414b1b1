package hcl

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/flowgrid/internal/config"
	"github.com/vk/flowgrid/internal/schema"
)

// translate converts the raw HCL schema into the format-agnostic
// config model, evaluating node arguments to values along the way.
func translate(gridConfig *schema.GridConfig) (*config.Grid, error) {
	grid := &config.Grid{}

	for _, node := range gridConfig.Nodes {
		args, err := evalArguments(node.Arguments)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", node.Name, err)
		}
		grid.Nodes = append(grid.Nodes, &config.NodeDef{
			Kind:      node.Kind,
			Name:      node.Name,
			Arguments: args,
		})
	}

	for _, connect := range gridConfig.Connects {
		grid.Connections = append(grid.Connections, &config.Connection{
			From: connect.From,
			To:   connect.To,
			Slot: connect.Slot,
		})
	}

	return grid, nil
}

// evalArguments evaluates every attribute of an arguments block.
// Grid files are self-contained, so expressions are evaluated without
// any variables or functions in scope.
func evalArguments(argsBlock *schema.NodeArgs) (map[string]cty.Value, error) {
	args := make(map[string]cty.Value)
	if argsBlock == nil {
		return args, nil
	}

	attrs, diags := argsBlock.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("reading arguments: %w", diags)
	}
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("evaluating argument %q: %w", name, diags)
		}
		args[name] = val
	}
	return args, nil
}
