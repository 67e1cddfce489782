//go:build amd64 && !noasm

package bytesearch

import (
	"golang.org/x/sys/cpu"
)

func hasAVX2() bool {
	return cpu.X86.HasAVX2
}

func hasSSE2() bool {
	return cpu.X86.HasSSE2
}

func hasSIMD() bool {
	return hasAVX2() || hasSSE2()
}

// chunkSize returns the width of the widest vector register in use.
func chunkSize() int {
	if hasAVX2() {
		return avx2ChunkSize
	}
	if hasSSE2() {
		return sse2ChunkSize
	}
	return wordSize
}
