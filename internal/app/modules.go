package app

import (
	"io"

	"github.com/vk/flowgrid/internal/registry"
	"github.com/vk/flowgrid/modules/arith"
	"github.com/vk/flowgrid/modules/console"
	"github.com/vk/flowgrid/modules/counter"
	"github.com/vk/flowgrid/modules/pulse"
)

// coreModules is the definitive list of all node modules that are
// compiled into the flowgrid binary. Sinks print to outW so the
// application's output stream stays testable.
func coreModules(outW io.Writer) []registry.Module {
	return []registry.Module{
		&counter.Module{},
		&pulse.Module{},
		&arith.Module{},
		&console.Module{Out: outW},
	}
}
