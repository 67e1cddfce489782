package peekseek

import (
	"fmt"

	"github.com/biggeezerdevelopment/peekseek-go/internal/bytesearch"
)

// ByteCursor is a cursor over a byte slice.
//
// Slices returned by ByteCursor alias the original buffer. Their capacity is
// capped at their length, so appending to one reallocates rather than
// overwriting the bytes that follow it. The caller must not modify the buffer
// while the cursor or any returned slice is in use.
type ByteCursor struct {
	src   []byte
	n     int
	index func([]byte, byte) int
}

var _ Cursor[byte] = (*ByteCursor)(nil)

// NewByteCursor returns a cursor positioned at the start of src.
func NewByteCursor(src []byte) *ByteCursor {
	// Cap the capacity so no index or slice can reach past len(src).
	return &ByteCursor{src: src[:len(src):len(src)], index: bytesearch.Index}
}

func (c *ByteCursor) Peek() (byte, bool) {
	if c.n < len(c.src) {
		return c.src[c.n], true
	}
	return 0, false
}

func (c *ByteCursor) Next() (byte, bool) {
	if c.n < len(c.src) {
		b := c.src[c.n]
		c.n++
		return b, true
	}
	return 0, false
}

func (c *ByteCursor) CheckNext(target byte) bool {
	if c.n < len(c.src) && c.src[c.n] == target {
		c.n++
		return true
	}
	return false
}

func (c *ByteCursor) CheckNextFunc(f func(byte) bool) bool {
	return CheckNextFunc[byte](c, f)
}

func (c *ByteCursor) PeekNext(target byte) bool {
	return c.n < len(c.src) && c.src[c.n] == target
}

func (c *ByteCursor) PeekNextFunc(f func(byte) bool) bool {
	return PeekNextFunc[byte](c, f)
}

// Skip advances up to n bytes in a single step.
func (c *ByteCursor) Skip(n int) int {
	if n <= 0 {
		return 0
	}
	skipped := min(n, len(c.src)-c.n)
	c.n += skipped
	return skipped
}

func (c *ByteCursor) SkipUntil(f func(byte) bool) int {
	start := c.n
	for c.n < len(c.src) && !f(c.src[c.n]) {
		c.n++
	}
	return c.n - start
}

// SkipUntilByte advances to the next occurrence of target, or to the end if
// there is none, and returns the number of bytes skipped. The target byte is
// not consumed. It behaves like SkipUntil with an equality test but searches
// with the fastest vectorized primitive the machine supports.
func (c *ByteCursor) SkipUntilByte(target byte) int {
	index := c.index
	if index == nil {
		index = bytesearch.Index
	}
	rest := c.src[c.n:]
	i := index(rest, target)
	if i < 0 {
		i = len(rest)
	}
	c.n += i
	return i
}

func (c *ByteCursor) IsEmpty() bool {
	return c.n == len(c.src)
}

func (c *ByteCursor) Offset() int {
	return c.n
}

// Len returns the length of the whole underlying buffer.
func (c *ByteCursor) Len() int {
	return len(c.src)
}

// Take returns up to n bytes starting at the current position and advances
// past them. Fewer bytes are returned only at the end of the buffer.
func (c *ByteCursor) Take(n int) []byte {
	start := c.n
	c.Skip(n)
	return c.src[start:c.n:c.n]
}

// Rest returns the bytes not yet consumed.
func (c *ByteCursor) Rest() []byte {
	return c.src[c.n:]
}

// Consumed returns the bytes consumed so far.
func (c *ByteCursor) Consumed() []byte {
	return c.src[:c.n:c.n]
}

// Bytes returns the whole underlying buffer regardless of the position.
func (c *ByteCursor) Bytes() []byte {
	return c.src
}

// At returns the byte at absolute index i. Like a slice index expression it
// panics if i is out of range.
func (c *ByteCursor) At(i int) byte {
	return c.src[i]
}

// Slice returns src[lo:hi] using absolute indices, independent of the
// current position. Like a slice expression it panics if the bounds are
// invalid.
func (c *ByteCursor) Slice(lo, hi int) []byte {
	return c.src[lo:hi:hi]
}

// SliceFrom returns src[lo:] using an absolute index. It panics if lo is
// out of range.
func (c *ByteCursor) SliceFrom(lo int) []byte {
	return c.src[lo:]
}

// SliceTo returns src[:hi] using an absolute index. It panics if hi is out
// of range.
func (c *ByteCursor) SliceTo(hi int) []byte {
	return c.src[:hi:hi]
}

// String formats the cursor for debugging, for example
// ByteCursor(n=1, head=101/'e', s="hello").
func (c *ByteCursor) String() string {
	head := "None"
	if b, ok := c.Peek(); ok {
		if b > ' ' && b < 0x7f {
			head = fmt.Sprintf("%d/'%c'", b, b)
		} else {
			head = fmt.Sprintf("%d", b)
		}
	}
	return fmt.Sprintf("ByteCursor(n=%d, head=%s, s=%q)", c.n, head, c.src)
}
