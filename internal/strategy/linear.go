// Package strategy holds the threshold search policies. Each one probes a
// tester and returns the threshold it discovered.
package strategy

import (
	"svw.info/eggdrop/internal/domain"
	"svw.info/eggdrop/internal/tester"
)

// Linear probes every level in increasing order.
type Linear struct{}

func NewLinear() *Linear { return &Linear{} }

func (s *Linear) Solve(t *tester.Tester) int {
	return firstTriggered(t, 0, domain.Levels)
}

func (s *Linear) Kind() domain.Kind { return domain.Linear }

func (s *Linear) String() string { return "Linear" }

// --- helpers shared by every strategy ---

// firstTriggered probes [lo, hi) in order and returns the first level that
// triggers, or hi when none does.
func firstTriggered(t *tester.Tester, lo, hi int) int {
	for level := lo; level < hi; level++ {
		if t.Probe(level) {
			return level
		}
	}
	return hi
}
