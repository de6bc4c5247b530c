package buffer

import (
	"sync"

	"github.com/cwbudde/algo-subpel/dsp/core"
)

// PlanePool provides sync.Pool-based Plane reuse for prediction loops that
// need scratch blocks of varying sizes.
type PlanePool struct {
	pool sync.Pool
}

// NewPlanePool returns a PlanePool ready for use.
func NewPlanePool() *PlanePool {
	return &PlanePool{
		pool: sync.Pool{
			New: func() any {
				return &Plane{}
			},
		},
	}
}

// Get returns a zeroed w×h plane with the given margin. Negative sizes are
// treated as zero. Callers must return it via Put when done.
func (pp *PlanePool) Get(w, h, margin int) *Plane {
	w, h, margin = max(w, 0), max(h, 0), max(margin, 0)

	p := pp.pool.Get().(*Plane)
	p.layout(w, h, margin)
	p.Pix = core.EnsureLen(p.Pix, p.Stride*(h+2*margin))
	core.Fill(p.Pix, 0)
	return p
}

// Put returns a plane to the pool. The caller must not use it afterwards.
func (pp *PlanePool) Put(p *Plane) {
	if p == nil {
		return
	}
	pp.pool.Put(p)
}
