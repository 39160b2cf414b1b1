// Package builder turns a loaded grid definition into a live pipeline.
//
// Construction is two-pass: every node instance is created first, then
// every connection is wired. Wiring errors therefore always refer to
// instances that exist, and the pipeline's own checks catch bad slots
// and type mismatches.
package builder

import (
	"context"
	"fmt"

	"github.com/vk/flowgrid/internal/config"
	"github.com/vk/flowgrid/internal/ctxlog"
	"github.com/vk/flowgrid/internal/pipeline"
	"github.com/vk/flowgrid/internal/registry"
)

// Build instantiates every node the grid declares and wires every
// connection into p. It returns the instance name to node ID mapping
// so callers can report on specific instances.
func Build(ctx context.Context, grid *config.Grid, reg *registry.Registry, p *pipeline.Pipeline) (map[string]pipeline.NodeID, error) {
	logger := ctxlog.FromContext(ctx)

	ids := make(map[string]pipeline.NodeID)
	for _, def := range grid.Nodes {
		if _, exists := ids[def.Name]; exists {
			return nil, fmt.Errorf("duplicate node instance name %q", def.Name)
		}
		factory, ok := reg.Factory(def.Kind)
		if !ok {
			return nil, fmt.Errorf("node %q: unknown kind %q", def.Name, def.Kind)
		}
		node, err := factory(def.Name, def.Arguments)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", def.Name, err)
		}
		id := p.CreateNode(node)
		ids[def.Name] = id
		logger.Debug("Created node.", "name", def.Name, "kind", def.Kind, "id", id)
	}

	for _, conn := range grid.Connections {
		from, ok := ids[conn.From]
		if !ok {
			return nil, fmt.Errorf("connection from unknown node %q", conn.From)
		}
		to, ok := ids[conn.To]
		if !ok {
			return nil, fmt.Errorf("connection to unknown node %q", conn.To)
		}
		if err := p.Connect(from, to, conn.Slot); err != nil {
			return nil, fmt.Errorf("connecting %q to %q slot %d: %w", conn.From, conn.To, conn.Slot, err)
		}
		logger.Debug("Connected nodes.", "from", conn.From, "to", conn.To, "slot", conn.Slot)
	}

	return ids, nil
}
