//go:build !amd64 && !arm64

package cpu

import "runtime"

// detectFeaturesImpl reports no vector units on other architectures.
func detectFeaturesImpl() Features {
	return Features{
		Architecture: runtime.GOARCH,
	}
}
