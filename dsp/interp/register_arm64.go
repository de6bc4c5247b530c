//go:build arm64 && !purego

package interp

import (
	"github.com/cwbudde/algo-subpel/internal/cpu"
	"github.com/cwbudde/algo-subpel/internal/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "tile16",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,
		TileWidth: 16,
	})
}
