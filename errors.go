package peekseek

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedEOF = errors.New("peekseek: unexpected end of input")
	ErrUnexpected    = errors.New("peekseek: unexpected item")
)

// EOFError reports that an item was required but the input was exhausted.
type EOFError struct {
	Offset int
}

func (e *EOFError) Error() string {
	return fmt.Sprintf("%s at offset %d", ErrUnexpectedEOF, e.Offset)
}

func (e *EOFError) Unwrap() error {
	return ErrUnexpectedEOF
}

// UnexpectedError reports an item that did not match what was required.
// Item holds the item actually found and Offset where it starts.
type UnexpectedError[T comparable] struct {
	Item   T
	Offset int
}

func (e *UnexpectedError[T]) Error() string {
	return fmt.Sprintf("peekseek: unexpected %s at offset %d", formatItem(e.Item), e.Offset)
}

func (e *UnexpectedError[T]) Unwrap() error {
	return ErrUnexpected
}

func formatItem(item any) string {
	switch v := item.(type) {
	case byte:
		if v >= ' ' && v < 0x7f {
			return fmt.Sprintf("%q", rune(v))
		}
		return fmt.Sprintf("byte 0x%02x", v)
	case rune:
		return fmt.Sprintf("%q", v)
	case string:
		return fmt.Sprintf("%q", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// OffsetErrors is the default ErrorFactory. It stamps errors with the
// cursor's offset at the time they are built.
type OffsetErrors[T comparable] struct {
	Cursor Cursor[T]
}

func (f OffsetErrors[T]) EOFError() error {
	return &EOFError{Offset: f.Cursor.Offset()}
}

func (f OffsetErrors[T]) UnexpectedError(item T) error {
	return &UnexpectedError[T]{Item: item, Offset: f.Cursor.Offset()}
}
