package bytesearch

import "bytes"

// indexVector uses the runtime's assembly search, which runs on SSE2/AVX2
// on amd64 and NEON on arm64.
func indexVector(b []byte, c byte) int {
	return bytes.IndexByte(b, c)
}
