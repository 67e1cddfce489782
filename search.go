package peekseek

import (
	"github.com/biggeezerdevelopment/peekseek-go/internal/bytesearch"
)

// SearchStrategy returns the name of the byte search used by
// ByteCursor.SkipUntilByte on this machine: "vector", "swar" or "scalar".
func SearchStrategy() string {
	return bytesearch.Best().Name
}

// HasSIMD returns true if SkipUntilByte runs on a vector unit.
func HasSIMD() bool {
	return bytesearch.HasSIMD()
}
