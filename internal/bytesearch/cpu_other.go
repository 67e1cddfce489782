//go:build (!amd64 && !arm64 && !s390x && !ppc64 && !ppc64le && !loong64) || noasm

package bytesearch

// hasSIMD returns false for architectures without a vectorized runtime
// search and for noasm builds.
func hasSIMD() bool {
	return false
}

// chunkSize returns the number of bytes the portable search compares per step.
func chunkSize() int {
	return wordSize
}
