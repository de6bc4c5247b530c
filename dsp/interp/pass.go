package interp

import (
	"github.com/cwbudde/algo-subpel/dsp/buffer"
	"github.com/cwbudde/algo-subpel/dsp/core"
	"github.com/cwbudde/algo-subpel/dsp/kernel"
)

// Tile geometry shared by all variants.
const (
	// maxLanes bounds the lanes of one tile (the widest registered tile).
	maxLanes = 32

	// maxSpan bounds the outputs one tile produces per lane.
	maxSpan = 32

	// narrowWidth is the widest block handled by the narrow paths.
	narrowWidth = 4

	// tileRows is the height of a vertical tile and of a wide horizontal tile.
	tileRows = 4

	// narrowRows is the height of a narrow horizontal tile.
	narrowRows = 2
)

type direction int

const (
	vertical direction = iota
	horizontal
)

func (d direction) String() string {
	if d == vertical {
		return "vertical"
	}
	return "horizontal"
}

// tiling is the tile shape of one pass: lanes are filtered side by side and
// each produces span outputs per step along the filtered axis. Tiles at the
// right and bottom edges are cut to what remains.
type tiling struct {
	lanes int
	span  int
}

// selectTiling picks the tile shape for a block of width w. The narrow paths
// serve blocks at most 4 wide: vertical tiles of 4x4 and horizontal tiles of
// 2 rows by the block width. Wider blocks use vertical tiles of 4 rows by
// tileWidth columns and horizontal tiles of 4 rows by tileWidth columns.
func selectTiling(dir direction, w, tileWidth int) tiling {
	narrow := w <= narrowWidth
	switch {
	case dir == vertical && narrow:
		return tiling{lanes: narrowWidth, span: tileRows}
	case dir == vertical:
		return tiling{lanes: tileWidth, span: tileRows}
	case narrow:
		return tiling{lanes: narrowRows, span: narrowWidth}
	default:
		return tiling{lanes: tileRows, span: tileWidth}
	}
}

// rounding converts an accumulated sum to a sample: two round-half-up shifts
// followed by saturation to [0, max].
type rounding struct {
	first  int
	second int
	max    int32
}

func verticalRounding(filterBits, bd int) rounding {
	return rounding{first: filterBits, max: core.MaxPixel(bd)}
}

func horizontalRounding(filterBits, round0, bd int) rounding {
	return rounding{first: round0, second: filterBits - round0, max: core.MaxPixel(bd)}
}

func (r rounding) apply(sum int32) uint16 {
	return core.ClampPixel(core.RoundShift(core.RoundShift(sum, r.first), r.second), r.max)
}

// pass is one single-axis filtering run over a w x h block. Positions are
// flat indices; "along" steps follow the filtered axis and "across" steps
// move between lanes.
type pass struct {
	src       []uint16
	srcPos    int // first input of lane 0, already moved back by the kernel offset
	srcAlong  int
	srcAcross int

	dst       []uint16
	dstPos    int
	dstAlong  int
	dstAcross int

	lanes  int // columns for vertical passes, rows for horizontal ones
	length int // outputs per lane

	taps  int
	coeff [kernel.MaxTaps]int32
	acc   accumulator
	tile  tiling
	round rounding

	// loads counts source samples read.
	loads int
}

func newPass(dir direction, dst, src buffer.Plane, w, h int, k kernel.Kernel, tileWidth int) *pass {
	k = k.Compact()
	p := &pass{
		src:    src.Pix,
		dst:    dst.Pix,
		taps:   k.Len(),
		acc:    selectAccumulator(k.Len()),
		tile:   selectTiling(dir, w, tileWidth),
		dstPos: dst.Origin,
	}
	for i, t := range k.Taps {
		p.coeff[i] = int32(t)
	}

	off := k.Offset()
	if dir == vertical {
		p.srcPos = src.Offset(0, -off)
		p.srcAlong, p.srcAcross = src.Stride, 1
		p.dstAlong, p.dstAcross = dst.Stride, 1
		p.lanes, p.length = w, h
	} else {
		p.srcPos = src.Offset(-off, 0)
		p.srcAlong, p.srcAcross = 1, src.Stride
		p.dstAlong, p.dstAcross = 1, dst.Stride
		p.lanes, p.length = h, w
	}
	return p
}

// run filters the block tile by tile. For each group of lanes it primes a
// window with the first taps-1 input lines, then per step loads only the
// span new lines, filters against window plus fresh lines and keeps the
// newest taps-1 lines for the next step.
func (p *pass) run() {
	var (
		win   window
		fresh [maxSpan][maxLanes]int32
		line  [kernel.MaxTaps - 1 + maxSpan]int32
	)
	ctx := p.taps - 1

	for lane0 := 0; lane0 < p.lanes; lane0 += p.tile.lanes {
		nl := min(p.tile.lanes, p.lanes-lane0)
		base := p.srcPos + lane0*p.srcAcross

		win.reset(ctx, nl)
		for i := range ctx {
			p.load(fresh[0][:nl], base+i*p.srcAlong)
			win.push(fresh[0][:nl])
		}

		for pos := 0; pos < p.length; pos += p.tile.span {
			n := min(p.tile.span, p.length-pos)
			for j := range n {
				p.load(fresh[j][:nl], base+(pos+ctx+j)*p.srcAlong)
			}

			for l := range nl {
				for i := range ctx {
					line[i] = win.at(i, l)
				}
				for j := range n {
					line[ctx+j] = fresh[j][l]
				}
				out := p.dstPos + (lane0+l)*p.dstAcross + pos*p.dstAlong
				for j := range n {
					p.dst[out+j*p.dstAlong] = p.round.apply(p.acc(line[j:j+p.taps], &p.coeff))
				}
			}

			for j := max(0, n-ctx); j < n; j++ {
				win.push(fresh[j][:nl])
			}
		}
	}
}

// load widens one input line of len(dst) lanes starting at pos.
func (p *pass) load(dst []int32, pos int) {
	for l := range dst {
		dst[l] = int32(p.src[pos+l*p.srcAcross])
	}
	p.loads += len(dst)
}
