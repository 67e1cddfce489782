package bytesearch

import (
	"encoding/binary"
	"math/bits"
)

// indexSWAR compares eight bytes per step inside a uint64.
//
// XOR against the broadcast target turns matches into zero bytes. The
// expression (v - 0x01..) &^ v & 0x80.. then flags zero bytes. A flag can be
// spurious only above a genuine zero byte (borrow propagation runs upward),
// so with little-endian loads the lowest flag is always the first match.
func indexSWAR(b []byte, c byte) int {
	n := len(b)
	i := 0

	head := alignHead(b, wordSize)
	for ; i < head; i++ {
		if b[i] == c {
			return i
		}
	}

	pattern := lowBits * uint64(c)
	for ; i+wordSize <= n; i += wordSize {
		v := binary.LittleEndian.Uint64(b[i:]) ^ pattern
		if t := (v - lowBits) &^ v & highBits; t != 0 {
			return i + bits.TrailingZeros64(t)/8
		}
	}

	for ; i < n; i++ {
		if b[i] == c {
			return i
		}
	}
	return -1
}
