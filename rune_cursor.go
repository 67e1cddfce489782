package peekseek

import (
	"fmt"
	"unicode/utf8"
)

// RuneCursor is a cursor over the runes of a UTF-8 string.
//
// The next rune is decoded ahead of time, so Peek does not decode. The
// offset is a byte offset that always falls on a rune boundary. Invalid
// UTF-8 decodes as utf8.RuneError one byte at a time, like a range loop.
//
// RuneCursor does not expose slicing by offset. To extract text, record
// Offset values and slice the original string.
type RuneCursor struct {
	s     string
	n     int
	head  rune
	width int // byte length of head, 0 once exhausted
}

var _ Cursor[rune] = (*RuneCursor)(nil)

// NewRuneCursor returns a cursor positioned at the start of s.
func NewRuneCursor(s string) *RuneCursor {
	c := &RuneCursor{s: s}
	c.fill()
	return c
}

func (c *RuneCursor) fill() {
	if c.n >= len(c.s) {
		c.head, c.width = 0, 0
		return
	}
	c.head, c.width = utf8.DecodeRuneInString(c.s[c.n:])
}

func (c *RuneCursor) Peek() (rune, bool) {
	return c.head, c.width > 0
}

func (c *RuneCursor) Next() (rune, bool) {
	if c.width == 0 {
		return 0, false
	}
	r := c.head
	c.n += c.width
	c.fill()
	return r, true
}

func (c *RuneCursor) CheckNext(target rune) bool {
	return CheckNext[rune](c, target)
}

func (c *RuneCursor) CheckNextFunc(f func(rune) bool) bool {
	return CheckNextFunc[rune](c, f)
}

func (c *RuneCursor) PeekNext(target rune) bool {
	return PeekNext[rune](c, target)
}

func (c *RuneCursor) PeekNextFunc(f func(rune) bool) bool {
	return PeekNextFunc[rune](c, f)
}

func (c *RuneCursor) Skip(n int) int {
	return Skip[rune](c, n)
}

func (c *RuneCursor) SkipUntil(f func(rune) bool) int {
	return SkipUntil[rune](c, f)
}

func (c *RuneCursor) IsEmpty() bool {
	return c.width == 0
}

func (c *RuneCursor) Offset() int {
	return c.n
}

// String formats the cursor for debugging, for example
// RuneCursor(n=1, head='é', s="héllo").
func (c *RuneCursor) String() string {
	head := "None"
	if r, ok := c.Peek(); ok {
		head = fmt.Sprintf("%q", r)
	}
	return fmt.Sprintf("RuneCursor(n=%d, head=%s, s=%q)", c.n, head, c.s)
}
