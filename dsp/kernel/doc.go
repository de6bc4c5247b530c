// Package kernel describes the FIR kernels used for sub-pixel interpolation.
//
// A [Kernel] is an ordered sequence of signed integer taps (6, 8 or 12 of
// them) expressed at a fixed-point scale of FilterBits: the taps of a
// unity-gain kernel sum to 1<<FilterBits. The interpolation passes consume
// kernels as plain signed integers and never inspect their values beyond
// that.
//
// Kernels are looked up by filter type and sub-pixel phase through a
// [Selector]. [Table] and [Bank] hold caller-supplied coefficients;
// [Standard] returns the codec's regular, smooth and sharp 8-tap families.
//
// # Analysis
//
// [Response] and [Analyze] inspect a kernel in the frequency domain, which is
// useful when authoring or auditing coefficient tables:
//
//	a, err := kernel.Analyze(k)
//	fmt.Println(a.DCGain, a.Centroid, a.WorstCaseGain)
package kernel
