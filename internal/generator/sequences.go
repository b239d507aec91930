package generator

import "iter"

// Shrinking yields cumulative levels whose steps start at first and shrink
// by shrinkBy after each candidate: first, first+(first-shrinkBy), ...
// It stops once the next step would not be positive or a level reaches
// levels.
func Shrinking(first, shrinkBy, levels int) iter.Seq[int] {
	return func(yield func(int) bool) {
		level, step := 0, first
		for step > 0 {
			level += step
			step -= shrinkBy
			if level >= levels {
				return
			}
			if !yield(level) {
				return
			}
		}
	}
}
