// Package generator produces the ascending first-phase candidate levels used
// by the chunked strategies. Every sequence is finite, bounded by the level
// domain, and computed lazily; calling the returned iter.Seq again starts a
// fresh pass with no state carried over.
package generator

import "iter"

// Chunks yields size-1, 2*size-1, ... while the level stays below levels.
// A non-positive size yields nothing.
func Chunks(size, levels int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if size <= 0 {
			return
		}
		for level := size - 1; level < levels; level += size {
			if !yield(level) {
				return
			}
		}
	}
}
