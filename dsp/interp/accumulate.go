package interp

import "github.com/cwbudde/algo-subpel/dsp/kernel"

// accumulator returns sum(taps[k] * line[k]) for a fixed tap count. line
// holds at least that many widened samples.
type accumulator func(line []int32, taps *[kernel.MaxTaps]int32) int32

func selectAccumulator(n int) accumulator {
	switch n {
	case kernel.Taps6:
		return accumulate6
	case kernel.Taps12:
		return accumulate12
	default:
		return accumulate8
	}
}

func accumulate6(line []int32, taps *[kernel.MaxTaps]int32) int32 {
	_ = line[5]
	return taps[0]*line[0] + taps[1]*line[1] + taps[2]*line[2] +
		taps[3]*line[3] + taps[4]*line[4] + taps[5]*line[5]
}

func accumulate8(line []int32, taps *[kernel.MaxTaps]int32) int32 {
	_ = line[7]
	return taps[0]*line[0] + taps[1]*line[1] + taps[2]*line[2] + taps[3]*line[3] +
		taps[4]*line[4] + taps[5]*line[5] + taps[6]*line[6] + taps[7]*line[7]
}

// accumulate12 sums taps 0-7 and 8-11 separately and adds the halves.
func accumulate12(line []int32, taps *[kernel.MaxTaps]int32) int32 {
	_ = line[11]
	lo := accumulate8(line, taps)
	hi := taps[8]*line[8] + taps[9]*line[9] + taps[10]*line[10] + taps[11]*line[11]
	return lo + hi
}
