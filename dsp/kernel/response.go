package kernel

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// ErrResponseSize is returned when the FFT size cannot hold the kernel.
var ErrResponseSize = errors.New("kernel: response size must be a power of two >= tap count")

// DefaultResponseSize is the FFT size Analyze uses.
const DefaultResponseSize = 64

// Analysis summarizes a kernel's behaviour as an interpolator.
type Analysis struct {
	// DCGain is the gain for flat input, Sum() / 2^FilterBits. Unity-gain
	// kernels have exactly 1.
	DCGain float64

	// NyquistGain is the gain for an alternating input.
	NyquistGain float64

	// PeakGain is the largest magnitude over the sampled response.
	PeakGain float64

	// WorstCaseGain is AbsSum() / 2^FilterBits. Values above 1 mean the
	// filter can overshoot the sample range and relies on clamping.
	WorstCaseGain float64

	// Centroid is the tap-weighted position relative to the centering
	// offset: roughly the sub-pixel shift the kernel implements, in samples.
	Centroid float64

	// HighBandEnergy is the fraction of response energy above half Nyquist.
	HighBandEnergy float64
}

// Response returns the magnitude response of k at n/2+1 evenly spaced
// frequencies from DC to Nyquist, normalized so that a unity-gain kernel has
// magnitude 1 at DC. n must be a power of two no smaller than the tap count.
func Response(k Kernel, n int) ([]float64, error) {
	re, im, err := spectrum(k, n)
	if err != nil {
		return nil, err
	}

	mag := make([]float64, len(re))
	vecmath.Magnitude(mag, re, im)
	return mag, nil
}

// Analyze computes an [Analysis] of k using a DefaultResponseSize-point FFT.
func Analyze(k Kernel) (Analysis, error) {
	if err := k.Validate(); err != nil {
		return Analysis{}, err
	}

	re, im, err := spectrum(k, DefaultResponseSize)
	if err != nil {
		return Analysis{}, err
	}

	mag := make([]float64, len(re))
	vecmath.Magnitude(mag, re, im)
	pow := make([]float64, len(re))
	vecmath.Power(pow, re, im)

	scale := float64(int64(1) << k.FilterBits)
	a := Analysis{
		DCGain:        float64(k.Sum()) / scale,
		WorstCaseGain: float64(k.AbsSum()) / scale,
	}

	var alt int64
	for i, t := range k.Taps {
		if i%2 == 0 {
			alt += int64(t)
		} else {
			alt -= int64(t)
		}
	}
	a.NyquistGain = math.Abs(float64(alt)) / scale

	for _, m := range mag {
		a.PeakGain = math.Max(a.PeakGain, m)
	}

	var total, high float64
	half := len(pow) / 2
	for i, p := range pow {
		total += p
		if i > half {
			high += p
		}
	}
	if total > 0 {
		a.HighBandEnergy = high / total
	}

	if sum := k.Sum(); sum != 0 {
		var moment int64
		for i, t := range k.Taps {
			moment += int64(i) * int64(t)
		}
		a.Centroid = float64(moment)/float64(sum) - float64(k.Offset())
	}

	return a, nil
}

// spectrum returns the real and imaginary parts of the first n/2+1 bins of
// the kernel's DFT, taps scaled to unit gain.
func spectrum(k Kernel, n int) (re, im []float64, err error) {
	if n < len(k.Taps) || n < 2 || n&(n-1) != 0 {
		return nil, nil, fmt.Errorf("%w: n=%d taps=%d", ErrResponseSize, n, len(k.Taps))
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, nil, fmt.Errorf("kernel: failed to create FFT plan: %w", err)
	}

	scale := 1 / float64(int64(1)<<k.FilterBits)
	in := make([]complex128, n)
	for i, t := range k.Taps {
		in[i] = complex(float64(t)*scale, 0)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, nil, fmt.Errorf("kernel: forward FFT failed: %w", err)
	}

	bins := n/2 + 1
	re = make([]float64, bins)
	im = make([]float64, bins)
	for i := range bins {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}
	return re, im, nil
}
