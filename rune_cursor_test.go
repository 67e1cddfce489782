package peekseek

import (
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestRuneCursor_Basic(t *testing.T) {
	input := "hello world"
	c := NewRuneCursor(input)
	require.Equal(t, input, input[c.Offset():])

	r, ok := c.Peek()
	require.True(t, ok)
	require.Equal(t, 'h', r)

	r, ok = c.Next()
	require.True(t, ok)
	require.Equal(t, 'h', r)
	require.Equal(t, 1, c.Offset())
	require.Equal(t, "h", input[:c.Offset()])

	for i := 0; i < 4; i++ {
		c.Next()
	}
	r, _ = c.Peek()
	require.Equal(t, ' ', r)

	for i := 0; i < 10; i++ {
		c.Next()
	}
	_, ok = c.Peek()
	require.False(t, ok)
	require.Equal(t, len(input), c.Offset())
	require.Equal(t, "", input[c.Offset():])
}

func TestRuneCursor_MultiByteOffsets(t *testing.T) {
	tests := []struct {
		name  string
		input string
		first rune
		width int
	}{
		{"two bytes", "éa", 'é', 2},
		{"three bytes", "世a", '世', 3},
		{"four bytes", "😀a", '😀', 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewRuneCursor(tt.input)
			r, ok := c.Next()
			require.True(t, ok)
			require.Equal(t, tt.first, r)
			require.Equal(t, tt.width, c.Offset())

			r, _ = c.Peek()
			require.Equal(t, 'a', r)
		})
	}
}

func TestRuneCursor_SkipUntil(t *testing.T) {
	input := "naïve café = ok"
	c := NewRuneCursor(input)

	n := c.SkipUntil(unicode.IsSpace)
	require.Equal(t, 5, n)
	require.Equal(t, len("naïve"), c.Offset())
	require.True(t, c.PeekNext(' '))

	c.Next()
	require.Equal(t, 4, c.SkipUntil(unicode.IsSpace))
	require.Equal(t, "naïve café", input[:c.Offset()])
	require.True(t, utf8.ValidString(input[c.Offset():]))
}

func TestRuneCursor_InvalidUTF8(t *testing.T) {
	c := NewRuneCursor("a\xffb")
	c.Next()

	r, ok := c.Next()
	require.True(t, ok)
	require.Equal(t, utf8.RuneError, r)
	require.Equal(t, 2, c.Offset())

	r, _ = c.Next()
	require.Equal(t, 'b', r)
	require.True(t, c.IsEmpty())
}

func TestRuneCursor_String(t *testing.T) {
	c := NewRuneCursor("héllo")
	c.Next()
	require.Equal(t, `RuneCursor(n=1, head='é', s="héllo")`, c.String())

	c.Skip(10)
	require.Equal(t, `RuneCursor(n=6, head=None, s="héllo")`, c.String())
}
