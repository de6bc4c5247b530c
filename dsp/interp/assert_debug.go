//go:build interpdebug

package interp

const debugChecks = true
