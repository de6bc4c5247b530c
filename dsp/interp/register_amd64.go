//go:build amd64 && !purego

package interp

import (
	"github.com/cwbudde/algo-subpel/internal/cpu"
	"github.com/cwbudde/algo-subpel/internal/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "tile16",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,
		TileWidth: 16,
	})
	registry.Global.Register(registry.OpEntry{
		Name:      "tile32",
		SIMDLevel: cpu.SIMDAVX512,
		Priority:  30,
		TileWidth: 32,
	})
}
