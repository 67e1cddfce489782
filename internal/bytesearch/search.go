// Package bytesearch finds the first occurrence of a byte in a slice.
//
// Several strategies are provided. They all return the same result for every
// input; they only differ in speed. The fastest one the current machine
// supports is picked once, at package initialization.
package bytesearch

// Strategy is one implementation of first-occurrence byte search.
type Strategy struct {
	Name string

	// Index returns the index of the first c in b, or -1 if c is not present.
	Index func(b []byte, c byte) int
}

var (
	Scalar = Strategy{Name: "scalar", Index: indexScalar}
	SWAR   = Strategy{Name: "swar", Index: indexSWAR}
	Vector = Strategy{Name: "vector", Index: indexVector}
)

var (
	best = selectBest()

	// Inputs shorter than one vector register are searched with the scalar
	// loop, where setting up the wide compare costs more than it saves.
	shortInput = chunkSize()
)

func selectBest() Strategy {
	if hasSIMD() {
		return Vector
	}
	return SWAR
}

// Best returns the strategy used by Index.
func Best() Strategy {
	return best
}

// Index returns the index of the first c in b, or -1 if c is not present.
func Index(b []byte, c byte) int {
	if len(b) < shortInput {
		return indexScalar(b, c)
	}
	return best.Index(b, c)
}

// HasSIMD returns true if a vector unit was detected.
func HasSIMD() bool {
	return hasSIMD()
}

// Available returns every strategy usable on this machine, slowest first.
func Available() []Strategy {
	s := []Strategy{Scalar, SWAR}
	if hasSIMD() {
		s = append(s, Vector)
	}
	return s
}
