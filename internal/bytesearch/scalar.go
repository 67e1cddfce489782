package bytesearch

// indexScalar is the reference implementation. Every other strategy must
// agree with it.
func indexScalar(b []byte, c byte) int {
	for i := 0; i < len(b); i++ {
		if b[i] == c {
			return i
		}
	}
	return -1
}
