//go:build arm64 && !noasm

package bytesearch

import (
	"golang.org/x/sys/cpu"
)

// hasSIMD returns true if ARM64 NEON (ASIMD) is available.
func hasSIMD() bool {
	return cpu.ARM64.HasASIMD
}

// chunkSize returns the width of the widest vector register in use.
func chunkSize() int {
	if hasSIMD() {
		return neonChunkSize
	}
	return wordSize
}
