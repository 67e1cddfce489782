//go:build loong64 && !noasm

package bytesearch

import (
	"golang.org/x/sys/cpu"
)

// hasSIMD returns true if the LoongArch 128-bit vector extension is available.
func hasSIMD() bool {
	return cpu.Loong64.HasLSX
}

// chunkSize returns the width of the vector registers in use.
func chunkSize() int {
	if hasSIMD() {
		return lsxChunkSize
	}
	return wordSize
}
