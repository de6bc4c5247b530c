//go:build amd64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl reads CPUID through golang.org/x/sys/cpu.
//
// The 16-bit sample tiles need byte/word AVX-512 instructions, so AVX-512 is
// only reported when both the foundation and BW subsets are present.
func detectFeaturesImpl() Features {
	return Features{
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW,
		Architecture: runtime.GOARCH,
	}
}
