package interp

import "github.com/cwbudde/algo-subpel/dsp/kernel"

// window is the sliding-window tile cache: the last size input lines of a
// tile column, each holding one sample per lane, kept in a ring indexed
// modulo size. Pushing a line evicts the oldest once the ring is full.
type window struct {
	size  int
	lanes int
	head  int // slot of the oldest line
	count int
	slots [kernel.MaxTaps - 1][maxLanes]int32
}

func (w *window) reset(size, lanes int) {
	w.size = size
	w.lanes = lanes
	w.head = 0
	w.count = 0
}

func (w *window) push(line []int32) {
	var slot int
	if w.count < w.size {
		slot = (w.head + w.count) % w.size
		w.count++
	} else {
		slot = w.head
		w.head = (w.head + 1) % w.size
	}
	copy(w.slots[slot][:w.lanes], line)
}

// at returns lane of the i-th oldest line.
func (w *window) at(i, lane int) int32 {
	return w.slots[(w.head+i)%w.size][lane]
}

func (w *window) full() bool {
	return w.count == w.size
}
