//go:build s390x && !noasm

package bytesearch

import (
	"golang.org/x/sys/cpu"
)

// hasSIMD returns true if the z/Architecture vector facility is available.
func hasSIMD() bool {
	return cpu.S390X.HasVX
}

// chunkSize returns the width of the vector registers in use.
func chunkSize() int {
	if hasSIMD() {
		return vxChunkSize
	}
	return wordSize
}
