package buffer

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-subpel/dsp/core"
)

// ErrInvalidSize is returned for negative plane dimensions or margins.
var ErrInvalidSize = errors.New("buffer: invalid plane size")

// Plane is a 2D view of samples addressed by (x, y) relative to an origin.
//
// Sample (x, y) lives at Pix[Origin + y*Stride + x]. x and y may be negative
// as long as the resulting index is inside Pix.
type Plane struct {
	Pix    []uint16
	Stride int
	Origin int

	// Width and Height are the logical size of the plane. They are
	// informational for the filters, which take explicit block sizes, and
	// bound ExtendBorders.
	Width, Height int
}

// NewPlane allocates a zeroed w×h plane surrounded by margin samples on
// every side.
func NewPlane(w, h, margin int) (Plane, error) {
	if w < 0 || h < 0 || margin < 0 {
		return Plane{}, fmt.Errorf("%w: %dx%d margin %d", ErrInvalidSize, w, h, margin)
	}
	var p Plane
	p.layout(w, h, margin)
	p.Pix = make([]uint16, p.Stride*(h+2*margin))
	return p, nil
}

// FromSlice wraps pix without copying; (0, 0) is pix[0].
func FromSlice(pix []uint16, stride, w, h int) Plane {
	return Plane{Pix: pix, Stride: stride, Width: w, Height: h}
}

func (p *Plane) layout(w, h, margin int) {
	p.Stride = w + 2*margin
	p.Origin = margin*p.Stride + margin
	p.Width = w
	p.Height = h
}

// Offset returns the index of sample (x, y) in Pix.
func (p Plane) Offset(x, y int) int {
	return p.Origin + y*p.Stride + x
}

// At returns sample (x, y).
func (p Plane) At(x, y int) uint16 {
	return p.Pix[p.Offset(x, y)]
}

// Set stores v at (x, y).
func (p Plane) Set(x, y int, v uint16) {
	p.Pix[p.Offset(x, y)] = v
}

// Row returns the Width samples of row y.
func (p Plane) Row(y int) []uint16 {
	i := p.Offset(0, y)
	return p.Pix[i : i+p.Width]
}

// Sub returns the w×h sub-plane whose origin is (x, y) of p. It shares Pix.
func (p Plane) Sub(x, y, w, h int) Plane {
	return Plane{
		Pix:    p.Pix,
		Stride: p.Stride,
		Origin: p.Offset(x, y),
		Width:  w,
		Height: h,
	}
}

// Fill sets every sample of the logical area to v.
func (p Plane) Fill(v uint16) {
	for y := 0; y < p.Height; y++ {
		core.Fill(p.Row(y), v)
	}
}

// margins returns the number of addressable samples around the logical area.
func (p Plane) margins() (left, top, right, bottom int) {
	if p.Stride == 0 {
		return 0, 0, 0, 0
	}
	left = p.Origin % p.Stride
	top = p.Origin / p.Stride
	right = p.Stride - left - p.Width
	bottom = len(p.Pix)/p.Stride - top - p.Height
	return left, top, right, bottom
}

// ExtendBorders replicates the edge samples of the logical area into the
// surrounding margin, the way codec reference frames are padded so that
// motion vectors pointing slightly outside the picture still find samples.
func (p Plane) ExtendBorders() {
	if p.Width == 0 || p.Height == 0 {
		return
	}
	left, top, right, bottom := p.margins()

	for y := 0; y < p.Height; y++ {
		row := p.Offset(0, y)
		l, r := p.Pix[row], p.Pix[row+p.Width-1]
		core.Fill(p.Pix[row-left:row], l)
		core.Fill(p.Pix[row+p.Width:row+p.Width+right], r)
	}

	first := p.Pix[p.Offset(-left, 0) : p.Offset(-left, 0)+p.Stride]
	for y := -top; y < 0; y++ {
		i := p.Offset(-left, y)
		copy(p.Pix[i:i+p.Stride], first)
	}
	last := p.Pix[p.Offset(-left, p.Height-1) : p.Offset(-left, p.Height-1)+p.Stride]
	for y := p.Height; y < p.Height+bottom; y++ {
		i := p.Offset(-left, y)
		copy(p.Pix[i:i+p.Stride], last)
	}
}

// Clone returns a deep copy of p, including its margins.
func (p Plane) Clone() Plane {
	c := p
	c.Pix = make([]uint16, len(p.Pix))
	copy(c.Pix, p.Pix)
	return c
}
