package interp

import (
	"github.com/cwbudde/algo-subpel/internal/cpu"
	"github.com/cwbudde/algo-subpel/internal/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "tile8",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		TileWidth: 8,
	})
}
