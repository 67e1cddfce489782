package bytesearch

import (
	"testing"
)

// FuzzIndex checks that every strategy agrees with the scalar search.
func FuzzIndex(f *testing.F) {
	f.Add([]byte(""), byte('a'), uint8(0))
	f.Add([]byte("hello world"), byte(' '), uint8(0))
	f.Add([]byte("hello world"), byte('h'), uint8(3))
	f.Add([]byte("hello"), byte('z'), uint8(1))
	f.Add([]byte("\x00\x01\x80\xff\x7f"), byte(0x80), uint8(2))

	f.Fuzz(func(t *testing.T, data []byte, target byte, offset uint8) {
		// Shift the slice start to exercise unaligned heads.
		off := int(offset) % wordSize
		if off > len(data) {
			off = len(data)
		}
		data = data[off:]

		want := indexScalar(data, target)
		for _, s := range Available() {
			if got := s.Index(data, target); got != want {
				t.Fatalf("%s: expected %d, got %d", s.Name, want, got)
			}
		}
	})
}
