package interp

import (
	"sync"

	"github.com/cwbudde/algo-subpel/internal/cpu"
	"github.com/cwbudde/algo-subpel/internal/registry"
)

var (
	tilingImpl     registry.OpEntry
	tilingInitOnce sync.Once
)

func defaultTileWidth() int {
	tilingInitOnce.Do(initTiling)
	return tilingImpl.TileWidth
}

func initTiling() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("interp: no tiling variant registered (missing generic fallback?)")
	}
	if entry.TileWidth <= 0 || entry.TileWidth > maxLanes || entry.TileWidth%8 != 0 {
		panic("interp: selected variant has invalid tile width")
	}
	tilingImpl = *entry
}

// Implementation returns the name of the tiling variant the package-level
// passes use on this CPU.
func Implementation() string {
	tilingInitOnce.Do(initTiling)
	return tilingImpl.Name
}

// variant resolves a variant by name, or the CPU default for "".
func variant(name string) (registry.OpEntry, error) {
	if name == "" {
		tilingInitOnce.Do(initTiling)
		return tilingImpl, nil
	}
	entry, ok := registry.Global.Find(name)
	if !ok {
		return registry.OpEntry{}, ErrImplementation
	}
	return entry, nil
}
