// Package registry holds the tiling variants available to the interpolation
// passes.
//
// A variant fixes the wide-path tile width: the number of output columns a
// vertical tile covers and the number of output columns a horizontal tile
// advances per step. Every variant produces identical samples; wider tiles
// only pay off where the CPU has wide vector registers, so each entry names
// the SIMD level it is tuned for and Lookup picks the highest-priority entry
// the CPU supports.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-subpel/internal/cpu"
)

// OpEntry is one registered tiling variant.
type OpEntry struct {
	// Name identifies the variant (e.g. "tile8").
	Name string

	// SIMDLevel is the vector unit the variant is tuned for.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible entries; higher wins. Suggested values:
	//   - generic (SIMDNone): 0
	//   - NEON: 15
	//   - AVX2: 20
	//   - AVX-512: 30
	Priority int

	// TileWidth is the wide-path tile width in samples. It must be a
	// positive multiple of 8.
	TileWidth int
}

// OpRegistry stores available variants.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the registry used by package interp.
var Global = &OpRegistry{}

// Register adds a variant. Registrations normally happen in init functions
// and must complete before the first Lookup.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority variant supported by features, or nil
// if none is (which means the generic entry is missing).
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// Find returns the entry registered under name, regardless of CPU support.
func (r *OpRegistry) Find(name string) (OpEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.Name == name {
			return e, true
		}
	}
	return OpEntry{}, false
}

func (r *OpRegistry) ensureSorted() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sorted {
		return
	}
	// Insertion sort, descending priority. The registry holds a handful of entries.
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
	r.sorted = true
}

// ListEntries returns a copy of the entries sorted by priority.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
