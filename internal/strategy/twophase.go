package strategy

import (
	"iter"

	"svw.info/eggdrop/internal/domain"
	"svw.info/eggdrop/internal/tester"
)

// TwoPhase spends the first item on the coarse candidates and the second on a
// linear walk of the gap the threshold was narrowed to. candidates must be
// ascending and inside the level domain; they are pulled one at a time and
// the walk starts as soon as one triggers.
func TwoPhase(candidates iter.Seq[int], t *tester.Tester) int {
	lo, hi := 0, domain.Levels
	for level := range candidates {
		if t.Probe(level) {
			hi = level
			break
		}
		lo = level + 1
	}
	return firstTriggered(t, lo, hi)
}
