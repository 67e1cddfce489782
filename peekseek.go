// Package peekseek provides forward-only cursors for hand-written lexers and
// parsers.
//
// A cursor walks an immutable sequence, either raw bytes ([ByteCursor]),
// decoded runes ([RuneCursor]) or grapheme clusters ([GraphemeCursor]). It
// tracks a byte offset, can preview the next item without consuming it, and
// can skip runs of items that match a predicate or a specific value. Cursors
// never copy or modify the sequence; every slice they return aliases it.
//
// Basic usage:
//
//	c := peekseek.NewByteCursor([]byte("key = value"))
//	c.SkipUntilByte(' ')
//	key := c.Consumed()                 // "key"
//	c.SkipUntil(func(b byte) bool { return b != ' ' && b != '=' })
//	value := c.Rest()                   // "value"
//
// A cursor is not safe for concurrent use. Independent cursors over the same
// sequence may be used from different goroutines.
package peekseek

// Stepper is the minimal set of operations a cursor must provide. All other
// cursor operations can be derived from it; see the package-level helpers.
type Stepper[T comparable] interface {
	// Peek returns the item at the current position without advancing.
	// The boolean is false once the cursor is exhausted.
	Peek() (T, bool)

	// Next returns the item at the current position and advances past it.
	// It is a no-op returning false once the cursor is exhausted.
	Next() (T, bool)
}

// Cursor is the capability set shared by every cursor type.
//
// No operation fails or panics: absence of data is reported as false or 0.
// Every mutating operation only moves the position forward.
type Cursor[T comparable] interface {
	Stepper[T]

	// CheckNext consumes the current item if it equals target and reports
	// whether it did.
	CheckNext(target T) bool

	// CheckNextFunc consumes the current item if it satisfies f and reports
	// whether it did.
	CheckNextFunc(f func(T) bool) bool

	// PeekNext reports whether the current item equals target.
	PeekNext(target T) bool

	// PeekNextFunc reports whether the current item satisfies f.
	PeekNextFunc(f func(T) bool) bool

	// Skip advances up to n items and returns how many were skipped.
	Skip(n int) int

	// SkipUntil advances while f is false for the current item and returns
	// the number of items skipped. The item that satisfied f is not consumed.
	SkipUntil(f func(T) bool) int

	// IsEmpty reports whether the cursor is exhausted.
	IsEmpty() bool

	// Offset returns the number of bytes consumed so far.
	Offset() int
}

// CheckNext consumes the current item of s if it equals target.
func CheckNext[T comparable](s Stepper[T], target T) bool {
	if c, ok := s.Peek(); ok && c == target {
		s.Next()
		return true
	}
	return false
}

// CheckNextFunc consumes the current item of s if it satisfies f.
func CheckNextFunc[T comparable](s Stepper[T], f func(T) bool) bool {
	if c, ok := s.Peek(); ok && f(c) {
		s.Next()
		return true
	}
	return false
}

// PeekNext reports whether the current item of s equals target.
func PeekNext[T comparable](s Stepper[T], target T) bool {
	c, ok := s.Peek()
	return ok && c == target
}

// PeekNextFunc reports whether the current item of s satisfies f.
func PeekNextFunc[T comparable](s Stepper[T], f func(T) bool) bool {
	c, ok := s.Peek()
	return ok && f(c)
}

// Skip advances s one item at a time, up to n items, and returns the number
// of items actually skipped. Cursors with random access override this with
// a single jump.
func Skip[T comparable](s Stepper[T], n int) int {
	for i := 0; i < n; i++ {
		if _, ok := s.Next(); !ok {
			return i
		}
	}
	return max(n, 0)
}

// SkipUntil advances s until f holds for the current item, without consuming
// that item, and returns the number of items skipped.
func SkipUntil[T comparable](s Stepper[T], f func(T) bool) int {
	n := 0
	for {
		c, ok := s.Peek()
		if !ok || f(c) {
			return n
		}
		s.Next()
		n++
	}
}

// IsEmpty reports whether s is exhausted.
func IsEmpty[T comparable](s Stepper[T]) bool {
	_, ok := s.Peek()
	return !ok
}
