//go:build (ppc64 || ppc64le) && !noasm

package bytesearch

import (
	"golang.org/x/sys/cpu"
)

// hasSIMD returns true on POWER8 or later, where the runtime search uses VSX.
func hasSIMD() bool {
	return cpu.PPC64.IsPOWER8
}

// chunkSize returns the width of the vector registers in use.
func chunkSize() int {
	if hasSIMD() {
		return vsxChunkSize
	}
	return wordSize
}
