//go:build purego

package interp

import (
	"testing"

	"github.com/cwbudde/algo-subpel/internal/cpu"
	"github.com/cwbudde/algo-subpel/internal/registry"
)

func TestDispatchPuregoUsesGeneric(t *testing.T) {
	entry := registry.Global.Lookup(cpu.Features{
		HasAVX2:      true,
		HasAVX512:    true,
		Architecture: "amd64",
	})
	if entry == nil {
		t.Fatal("Lookup returned nil")
	}
	if entry.Name != "tile8" {
		t.Fatalf("expected tile8 in purego, got %q", entry.Name)
	}
}
