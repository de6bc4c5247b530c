// Package cpu detects vector units that influence convolution tile selection.
//
// The interpolation kernels are portable Go, but wider vector units make wider
// output tiles profitable. Detection runs once and is cached; tests can pin a
// feature set with SetForcedFeatures.
package cpu

import (
	"sync"
)

// SIMDLevel names a vector instruction set a tiling variant is tuned for.
type SIMDLevel int

const (
	// SIMDNone means no vector unit is assumed.
	SIMDNone SIMDLevel = iota

	// SIMDAVX2 is x86-64 AVX2 (256-bit integer lanes).
	SIMDAVX2

	// SIMDAVX512 is x86-64 AVX-512BW (512-bit integer lanes).
	SIMDAVX512

	// SIMDNEON is ARM Advanced SIMD (128-bit lanes, 32 registers).
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDAVX2:
		return "AVX2"
	case SIMDAVX512:
		return "AVX-512"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes the CPU capabilities relevant to tile selection.
type Features struct {
	HasAVX2   bool
	HasAVX512 bool // AVX-512F and AVX-512BW
	HasNEON   bool

	// ForceGeneric restricts selection to SIMDNone variants.
	ForceGeneric bool

	// Architecture is runtime.GOARCH.
	Architecture string
}

var (
	detectedFeatures Features
	detectOnce       sync.Once
	detectMutex      sync.Mutex

	forcedFeatures *Features
	forcedMutex    sync.RWMutex
)

// DetectFeatures returns the features of the current CPU, or the forced
// feature set if one is installed.
//
// Safe for concurrent use.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// SetForcedFeatures overrides detection. Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection drops forced features and the detection cache.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports reports whether features satisfy level.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDAVX512:
		return features.HasAVX512
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
