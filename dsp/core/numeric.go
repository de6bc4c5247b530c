package core

// Bit-depth limits for high-bit-depth samples.
const (
	MinBitDepth = 8
	MaxBitDepth = 16
)

// FilterBits is the fixed-point scale of the codec's interpolation kernels:
// the taps of a unity-gain kernel sum to 1<<FilterBits.
const FilterBits = 7

// Round0Bits is the minimum first-stage shift of the two-pass pipeline.
const Round0Bits = 3

// intermediateBits bounds the intermediate representation of the two-pass
// pipeline; DefaultRound0 raises round_0 until the intermediate fits.
const intermediateBits = 16

// RoundShift returns x shifted right by s with rounding half up:
// (x + 1<<(s-1)) >> s. A zero shift returns x unchanged. The shift is
// arithmetic, so negative values round toward +Inf at the half.
func RoundShift(x int32, s int) int32 {
	if s == 0 {
		return x
	}
	return (x + 1<<(s-1)) >> s
}

// MaxPixel returns the largest sample value at bit depth bd, 1<<bd - 1.
func MaxPixel(bd int) int32 {
	return 1<<bd - 1
}

// ClampPixel saturates v to [0, max] and narrows it to a sample. max is
// normally MaxPixel(bd).
func ClampPixel(v, max int32) uint16 {
	if v < 0 {
		return 0
	}
	if v > max {
		return uint16(max)
	}
	return uint16(v)
}

// ValidBitDepth reports whether bd lies in [MinBitDepth, MaxBitDepth].
func ValidBitDepth(bd int) bool {
	return bd >= MinBitDepth && bd <= MaxBitDepth
}

// DefaultRound0 returns the first-stage shift the two-pass pipeline uses at
// bit depth bd: Round0Bits, raised so that the horizontal intermediate
// (bd + FilterBits - round_0 + 2 bits) stays within 16 bits. That is 3 for
// 8- and 10-bit video and 5 for 12-bit video. The result never exceeds
// FilterBits.
func DefaultRound0(bd int) int {
	round0 := Round0Bits
	if r := bd + FilterBits - round0 + 2; r > intermediateBits {
		round0 += r - intermediateBits
	}
	return min(round0, FilterBits)
}
