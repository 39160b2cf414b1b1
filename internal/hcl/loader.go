package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/flowgrid/internal/config"
	"github.com/vk/flowgrid/internal/ctxlog"
	"github.com/vk/flowgrid/internal/fsutil"
	"github.com/vk/flowgrid/internal/schema"
)

// Loader loads grid definitions from HCL files.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a new HCL loader.
func NewLoader() *Loader {
	return &Loader{
		parser: hclparse.NewParser(),
	}
}

// Load implements the config.Loader interface. Each path may be a
// single grid file or a directory, which is searched recursively for
// *.hcl files.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	model := &config.Model{Grid: &config.Grid{}}
	for _, path := range paths {
		files, err := resolveFiles(path)
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			logger.Debug("Loading grid file.", "path", file)
			grid, err := l.loadFile(file)
			if err != nil {
				return nil, err
			}
			model.Grid.Nodes = append(model.Grid.Nodes, grid.Nodes...)
			model.Grid.Connections = append(model.Grid.Connections, grid.Connections...)
		}
	}
	return model, nil
}

func (l *Loader) loadFile(path string) (*config.Grid, error) {
	hclFile, diags := l.parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing %s: %w", path, diags)
	}

	var gridConfig schema.GridConfig
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &gridConfig); diags.HasErrors() {
		return nil, fmt.Errorf("decoding %s: %w", path, diags)
	}

	return translate(&gridConfig)
}

func resolveFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("accessing grid path %q: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	files, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("searching grid directory %q: %w", path, err)
	}
	return files, nil
}

var _ config.Loader = (*Loader)(nil)
