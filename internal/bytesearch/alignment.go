package bytesearch

import "unsafe"

// alignHead returns how many leading bytes of b must be consumed before the
// remainder starts on an alignment boundary, capped at len(b).
func alignHead(b []byte, alignment int) int {
	if len(b) == 0 {
		return 0
	}
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	off := int((uintptr(alignment) - addr&uintptr(alignment-1)) & uintptr(alignment-1))
	return min(off, len(b))
}

// isAligned reports whether the first byte of b sits on the specified boundary.
func isAligned(b []byte, alignment int) bool {
	if len(b) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))&uintptr(alignment-1) == 0
}
