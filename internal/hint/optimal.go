// Package hint suggests strategy parameters for a level domain, together
// with the worst-case probe count they are expected to reach.
package hint

import (
	"fmt"
	"math"

	"svw.info/eggdrop/internal/domain"
	"svw.info/eggdrop/internal/strategy"
)

// Suggestion pairs tuned parameters with their expected worst case.
type Suggestion struct {
	Kind   domain.Kind
	Params strategy.Params
	Bound  int
	Reason string
}

// OptimalChunkSize returns the chunk size minimising n/size + size.
func OptimalChunkSize(n int) int {
	if n <= 1 {
		return 1
	}
	return int(math.Ceil(math.Sqrt(float64(n))))
}

// ChunkedBound is the worst-case probe count of a chunked scan over n levels.
func ChunkedBound(n, size int) int {
	return (n+size-1)/size + size - 1
}

// OptimalFirstSize returns the smallest k with k(k+1)/2 >= n: the first step
// of a scan shrinking by one that covers n levels.
func OptimalFirstSize(n int) int {
	k := 0
	for k*(k+1)/2 < n {
		k++
	}
	return max(k, 1)
}

// Suggest returns tuned chunked and shrinking parameters for n levels.
func Suggest(n int) []Suggestion {
	size := OptimalChunkSize(n)
	first := OptimalFirstSize(n)
	return []Suggestion{
		{
			Kind:   domain.Chunked,
			Params: strategy.Params{ChunkSize: size},
			Bound:  ChunkedBound(n, size),
			Reason: fmt.Sprintf("size ceil(sqrt(%d)) balances coarse and fine probes", n),
		},
		{
			Kind:   domain.ShrinkingChunked,
			Params: strategy.Params{FirstSize: first, ShrinkBy: 1},
			Bound:  first + 1,
			Reason: fmt.Sprintf("%d is the least k with k(k+1)/2 >= %d", first, n),
		},
	}
}
