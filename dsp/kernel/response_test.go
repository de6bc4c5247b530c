package kernel

import (
	"errors"
	"math"
	"testing"
)

func TestResponseIdentityIsFlat(t *testing.T) {
	mag, err := Response(Identity(8, 7), 32)
	if err != nil {
		t.Fatalf("Response: %v", err)
	}
	if len(mag) != 17 {
		t.Fatalf("len = %d, want 17", len(mag))
	}
	for i, m := range mag {
		if math.Abs(m-1) > 1e-12 {
			t.Fatalf("mag[%d] = %v, want 1", i, m)
		}
	}
}

func TestResponseAveragingKernel(t *testing.T) {
	avg := Kernel{Taps: []int16{0, 0, 0, 64, 64, 0, 0, 0}, FilterBits: 7}
	mag, err := Response(avg, 16)
	if err != nil {
		t.Fatalf("Response: %v", err)
	}
	if math.Abs(mag[0]-1) > 1e-12 {
		t.Fatalf("DC magnitude = %v, want 1", mag[0])
	}
	if nyq := mag[len(mag)-1]; math.Abs(nyq) > 1e-12 {
		t.Fatalf("Nyquist magnitude = %v, want 0", nyq)
	}
	for i := 1; i < len(mag); i++ {
		if mag[i] > mag[i-1]+1e-12 {
			t.Fatalf("averaging response not monotone at bin %d", i)
		}
	}
}

func TestResponseSizeErrors(t *testing.T) {
	k := Identity(12, 7)
	for _, n := range []int{0, 8, 24} {
		if _, err := Response(k, n); !errors.Is(err, ErrResponseSize) {
			t.Errorf("Response(n=%d) err = %v, want ErrResponseSize", n, err)
		}
	}
}

func TestAnalyze(t *testing.T) {
	avg := Kernel{Taps: []int16{0, 0, 0, 64, 64, 0, 0, 0}, FilterBits: 7}
	a, err := Analyze(avg)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if a.DCGain != 1 {
		t.Errorf("DCGain = %v, want 1", a.DCGain)
	}
	if a.NyquistGain != 0 {
		t.Errorf("NyquistGain = %v, want 0", a.NyquistGain)
	}
	if a.WorstCaseGain != 1 {
		t.Errorf("WorstCaseGain = %v, want 1", a.WorstCaseGain)
	}
	if math.Abs(a.Centroid-0.5) > 1e-12 {
		t.Errorf("Centroid = %v, want 0.5", a.Centroid)
	}
	if math.Abs(a.PeakGain-1) > 1e-12 {
		t.Errorf("PeakGain = %v, want 1", a.PeakGain)
	}
	if a.HighBandEnergy <= 0 || a.HighBandEnergy >= 0.5 {
		t.Errorf("HighBandEnergy = %v, want in (0, 0.5)", a.HighBandEnergy)
	}
}

func TestAnalyzeSharpKernelOvershoots(t *testing.T) {
	sharp := Kernel{Taps: []int16{-4, 12, -24, 80, 80, -24, 12, -4}, FilterBits: 7}
	a, err := Analyze(sharp)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if a.WorstCaseGain <= 1 {
		t.Fatalf("WorstCaseGain = %v, want > 1", a.WorstCaseGain)
	}
	if a.PeakGain < a.DCGain {
		t.Fatalf("PeakGain %v below DCGain %v", a.PeakGain, a.DCGain)
	}
}

func TestAnalyzeRejectsInvalid(t *testing.T) {
	if _, err := Analyze(Kernel{Taps: []int16{128}, FilterBits: 7}); !errors.Is(err, ErrTapCount) {
		t.Fatalf("Analyze err = %v, want ErrTapCount", err)
	}
}
