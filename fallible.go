package peekseek

// ErrorFactory builds the two errors a Fallible cursor can report.
type ErrorFactory[T comparable] interface {
	// EOFError is returned when an item is required at the end of input.
	EOFError() error

	// UnexpectedError is returned when the item found does not match.
	UnexpectedError(item T) error
}

// Fallible wraps a cursor with operations that report a missing or wrong
// item as an error instead of a boolean. All Cursor methods remain available.
type Fallible[T comparable] struct {
	Cursor[T]
	errs ErrorFactory[T]
}

// NewFallible wraps c. If errs is nil, errors are built by OffsetErrors.
func NewFallible[T comparable](c Cursor[T], errs ErrorFactory[T]) *Fallible[T] {
	if errs == nil {
		errs = OffsetErrors[T]{Cursor: c}
	}
	return &Fallible[T]{Cursor: c, errs: errs}
}

// Expect consumes and returns the current item, failing at end of input.
func (f *Fallible[T]) Expect() (T, error) {
	return f.ExpectNextFunc(func(T) bool { return true })
}

// ExpectNext consumes the current item and returns it if it equals target.
func (f *Fallible[T]) ExpectNext(target T) (T, error) {
	return f.ExpectNextFunc(func(c T) bool { return c == target })
}

// ExpectNextFunc consumes the current item and returns it if it satisfies
// fn. The item is consumed even when it does not match. The error factory
// is called before the cursor advances, so it sees the offset of the
// offending item.
func (f *Fallible[T]) ExpectNextFunc(fn func(T) bool) (T, error) {
	c, ok := f.Peek()
	if !ok {
		var zero T
		return zero, f.errs.EOFError()
	}
	if !fn(c) {
		err := f.errs.UnexpectedError(c)
		f.Next()
		var zero T
		return zero, err
	}
	f.Next()
	return c, nil
}
