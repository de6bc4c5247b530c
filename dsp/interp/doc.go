// Package interp implements high-bit-depth sub-pixel interpolation for
// motion-compensated prediction: single-axis FIR filtering of a reference
// block with round-half-up arithmetic and saturation to the sample range.
//
// Two passes are provided:
//
//   - [ConvolveY]: filters along columns; each output is
//     clamp(round(sum, FilterBits)).
//   - [ConvolveX]: filters along rows with the two-stage rounding of the
//     two-pass pipeline; each output is
//     clamp(round(round(sum, round0), FilterBits-round0)).
//
// Kernels have 6, 8 or 12 taps. The source plane must provide Offset() =
// taps/2-1 samples of context before the block along the filtered axis and
// taps/2 after it; [buffer.Plane.ExtendBorders] pads reference frames that
// way.
//
// # Tiling
//
// Both passes share one engine. Outputs are produced in tiles: a vertical
// tile is up to 4 rows by either the block width (blocks at most 4 wide) or
// the wide tile width; a horizontal tile is 2 rows (narrow blocks) or 4 rows
// by the wide tile width. While a tile column advances along the filtered
// axis, a ring buffer of the last taps-1 input lines carries the overlap
// forward, so every source sample is read exactly once per pass. The wide
// tile width is chosen at run time from the CPU's vector width and never
// changes the output.
//
// [DirectY] and [DirectX] compute every sample independently and serve as
// the reference the tiled engine is tested against.
//
// # Preconditions
//
// The passes do not return errors. Invalid kernels, bit depths, round0 values
// or insufficient margins are caller bugs; building with -tags interpdebug
// turns them into panics. [Convolver] offers checked construction and
// sub-pixel phase lookup through a [kernel.Selector].
package interp
