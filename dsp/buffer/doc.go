// Package buffer provides the high-bit-depth sample planes the interpolation
// passes read and write, plus a pool for reusing them.
//
// A [Plane] is a window into a []uint16 with a row pitch and an origin. The
// origin may sit inside a larger allocation, so that the rows and columns in
// front of the logical (0, 0) sample are addressable: interpolation reads up
// to Offset() samples of context before the block it predicts.
package buffer
