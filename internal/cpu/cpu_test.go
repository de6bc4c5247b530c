package cpu

import (
	"runtime"
	"testing"
)

func TestDetectFeaturesArchitecture(t *testing.T) {
	ResetDetection()
	defer ResetDetection()

	f := DetectFeatures()
	if f.Architecture != runtime.GOARCH {
		t.Fatalf("Architecture = %q, want %q", f.Architecture, runtime.GOARCH)
	}
	if f.ForceGeneric {
		t.Fatal("ForceGeneric must not be set by detection")
	}
}

func TestForcedFeatures(t *testing.T) {
	defer ResetDetection()

	SetForcedFeatures(Features{HasAVX2: true, Architecture: "amd64"})
	if !DetectFeatures().HasAVX2 {
		t.Fatal("forced AVX2 not reported")
	}

	ResetDetection()
	if got := DetectFeatures().Architecture; got != runtime.GOARCH {
		t.Fatalf("after reset Architecture = %q, want %q", got, runtime.GOARCH)
	}
}

func TestSupports(t *testing.T) {
	tests := []struct {
		name     string
		features Features
		level    SIMDLevel
		want     bool
	}{
		{"none always", Features{}, SIMDNone, true},
		{"avx2 missing", Features{}, SIMDAVX2, false},
		{"avx2 present", Features{HasAVX2: true}, SIMDAVX2, true},
		{"avx512 present", Features{HasAVX512: true}, SIMDAVX512, true},
		{"neon present", Features{HasNEON: true}, SIMDNEON, true},
		{"forced generic hides avx2", Features{HasAVX2: true, ForceGeneric: true}, SIMDAVX2, false},
		{"forced generic keeps none", Features{HasAVX2: true, ForceGeneric: true}, SIMDNone, true},
		{"unknown level", Features{HasAVX2: true}, SIMDLevel(99), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Supports(tt.features, tt.level); got != tt.want {
				t.Fatalf("Supports(%+v, %v) = %v, want %v", tt.features, tt.level, got, tt.want)
			}
		})
	}
}

func TestSIMDLevelString(t *testing.T) {
	for level, want := range map[SIMDLevel]string{
		SIMDNone:      "None",
		SIMDAVX2:      "AVX2",
		SIMDAVX512:    "AVX-512",
		SIMDNEON:      "NEON",
		SIMDLevel(42): "Unknown",
	} {
		if got := level.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(level), got, want)
		}
	}
}
