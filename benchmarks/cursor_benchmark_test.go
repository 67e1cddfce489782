package benchmarks

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	peekseek "github.com/biggeezerdevelopment/peekseek-go"
	"github.com/biggeezerdevelopment/peekseek-go/internal/bytesearch"
)

var (
	// Test data for cursor benchmarks
	lineData  = []byte("GET /index.html HTTP/1.1\r\nHost: example.com\r\nAccept: */*\r\n\r\n")
	asciiText = strings.Repeat("the quick brown fox jumps over the lazy dog ", 64)
	mixedText = strings.Repeat("naïve café, 世界 😀 é 🇩🇪 ", 64)
	largeData []byte
)

func init() {
	// Generate 1MB of data with the target only at the end
	largeData = bytes.Repeat([]byte("abcdefghijklmnopqrstuvwxyz012345"), 32*1024)
	largeData[len(largeData)-1] = '\n'
}

// Benchmark the predicate search against the specialized byte search.
func BenchmarkSkipUntil_Predicate(b *testing.B) {
	b.SetBytes(int64(len(largeData)))
	for i := 0; i < b.N; i++ {
		c := peekseek.NewByteCursor(largeData)
		c.SkipUntil(func(c byte) bool { return c == '\n' })
	}
}

func BenchmarkSkipUntil_Byte(b *testing.B) {
	b.Logf("strategy: %s", peekseek.SearchStrategy())
	b.SetBytes(int64(len(largeData)))
	for i := 0; i < b.N; i++ {
		c := peekseek.NewByteCursor(largeData)
		c.SkipUntilByte('\n')
	}
}

// Benchmark each search strategy at different distances to the target.
func BenchmarkSearchStrategies(b *testing.B) {
	distances := []int{8, 64, 512, 4096, 1 << 20}

	for _, s := range bytesearch.Available() {
		for _, d := range distances {
			data := largeData[len(largeData)-d:]
			b.Run(fmt.Sprintf("%s/Distance%d", s.Name, d), func(b *testing.B) {
				b.SetBytes(int64(len(data)))
				for i := 0; i < b.N; i++ {
					s.Index(data, '\n')
				}
			})
		}
	}
}

// Benchmark splitting short lines, where call overhead dominates.
func BenchmarkLines(b *testing.B) {
	b.SetBytes(int64(len(lineData)))
	for i := 0; i < b.N; i++ {
		c := peekseek.NewByteCursor(lineData)
		for !c.IsEmpty() {
			c.SkipUntilByte('\n')
			c.Next()
		}
	}
}

func BenchmarkRuneCursor(b *testing.B) {
	inputs := map[string]string{"ASCII": asciiText, "Mixed": mixedText}
	for name, text := range inputs {
		b.Run(name, func(b *testing.B) {
			b.SetBytes(int64(len(text)))
			for i := 0; i < b.N; i++ {
				c := peekseek.NewRuneCursor(text)
				for {
					if _, ok := c.Next(); !ok {
						break
					}
				}
			}
		})
	}
}

func BenchmarkGraphemeCursor(b *testing.B) {
	inputs := map[string]string{"ASCII": asciiText, "Mixed": mixedText}
	for name, text := range inputs {
		b.Run(name, func(b *testing.B) {
			b.SetBytes(int64(len(text)))
			for i := 0; i < b.N; i++ {
				c := peekseek.NewGraphemeCursor(text)
				for {
					if _, ok := c.Next(); !ok {
						break
					}
				}
			}
		})
	}
}

// Benchmark the overridden bulk skip against the one-at-a-time default.
func BenchmarkSkip(b *testing.B) {
	b.Run("Override", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			c := peekseek.NewByteCursor(largeData)
			c.Skip(len(largeData))
		}
	})

	b.Run("Default", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			c := peekseek.NewByteCursor(largeData)
			peekseek.Skip[byte](c, len(largeData))
		}
	})
}
