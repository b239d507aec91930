// Package tester models a single trial against a hidden threshold with a
// limited supply of breakable items.
package tester

import (
	"errors"
	"fmt"

	"svw.info/eggdrop/internal/domain"
)

// ErrItemsExhausted is wrapped by the value a Tester panics with when a
// strategy probes after both items are gone.
var ErrItemsExhausted = errors.New("no items left")

// ExhaustedError reports the probe that was attempted with no items left.
type ExhaustedError struct {
	Level  int
	Probes int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("probe %d at level %d: %v", e.Probes+1, e.Level, ErrItemsExhausted)
}

func (e *ExhaustedError) Unwrap() error { return ErrItemsExhausted }

// Tester hides a threshold and counts the probes made against it.
type Tester struct {
	threshold int
	probes    int
	items     int
}

func New(threshold int) *Tester {
	return &Tester{threshold: threshold, items: domain.Items}
}

// Probe reports whether level is at or above the hidden threshold. A
// triggering probe consumes one item. Probing with no items left is a bug in
// the caller and panics with *ExhaustedError.
func (t *Tester) Probe(level int) bool {
	if t.items <= 0 {
		panic(&ExhaustedError{Level: level, Probes: t.probes})
	}
	t.probes++
	if level >= t.threshold {
		t.items--
		return true
	}
	return false
}

// Probes returns how many probes have been issued so far.
func (t *Tester) Probes() int { return t.probes }

// ItemsRemaining returns how many items are still intact.
func (t *Tester) ItemsRemaining() int { return t.items }
