package peekseek

import (
	"github.com/rivo/uniseg"
)

// GraphemeCursor is a cursor over the extended grapheme clusters of a UTF-8
// string, i.e. what a reader perceives as single characters. Each item is a
// substring of the original string.
//
// Like RuneCursor it keeps the next cluster cached, and its offset is a
// byte offset that never falls inside a cluster.
type GraphemeCursor struct {
	s     string
	n     int
	head  string
	width int
	rest  string
	state int
}

var _ Cursor[string] = (*GraphemeCursor)(nil)

// NewGraphemeCursor returns a cursor positioned at the start of s.
func NewGraphemeCursor(s string) *GraphemeCursor {
	c := &GraphemeCursor{s: s, rest: s, state: -1}
	c.fill()
	return c
}

func (c *GraphemeCursor) fill() {
	if c.rest == "" {
		c.head, c.width = "", 0
		return
	}
	c.head, c.rest, c.width, c.state = uniseg.FirstGraphemeClusterInString(c.rest, c.state)
}

func (c *GraphemeCursor) Peek() (string, bool) {
	return c.head, c.head != ""
}

func (c *GraphemeCursor) Next() (string, bool) {
	if c.head == "" {
		return "", false
	}
	g := c.head
	c.n += len(g)
	c.fill()
	return g, true
}

func (c *GraphemeCursor) CheckNext(target string) bool {
	return CheckNext[string](c, target)
}

func (c *GraphemeCursor) CheckNextFunc(f func(string) bool) bool {
	return CheckNextFunc[string](c, f)
}

func (c *GraphemeCursor) PeekNext(target string) bool {
	return PeekNext[string](c, target)
}

func (c *GraphemeCursor) PeekNextFunc(f func(string) bool) bool {
	return PeekNextFunc[string](c, f)
}

func (c *GraphemeCursor) Skip(n int) int {
	return Skip[string](c, n)
}

func (c *GraphemeCursor) SkipUntil(f func(string) bool) int {
	return SkipUntil[string](c, f)
}

func (c *GraphemeCursor) IsEmpty() bool {
	return c.head == ""
}

func (c *GraphemeCursor) Offset() int {
	return c.n
}

// Width returns the monospace display width of the current cluster, or 0
// once the cursor is exhausted.
func (c *GraphemeCursor) Width() int {
	return c.width
}
