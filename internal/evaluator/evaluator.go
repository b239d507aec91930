// Package evaluator scores strategies by running one trial per possible
// hidden threshold and keeping the most expensive one.
package evaluator

import (
	"errors"
	"fmt"

	"svw.info/eggdrop/internal/domain"
	"svw.info/eggdrop/internal/ports"
	"svw.info/eggdrop/internal/tester"
)

// ErrIncorrectAnswer is wrapped by the value the evaluator panics with when a
// strategy reports the wrong threshold.
var ErrIncorrectAnswer = errors.New("strategy guess was not correct")

// IncorrectAnswerError identifies the strategy and the trial it got wrong.
type IncorrectAnswerError struct {
	Strategy string
	Expected int
	Actual   int
}

func (e *IncorrectAnswerError) Error() string {
	return fmt.Sprintf("strategy %s: %v: expected threshold %d, got %d", e.Strategy, ErrIncorrectAnswer, e.Expected, e.Actual)
}

func (e *IncorrectAnswerError) Unwrap() error { return ErrIncorrectAnswer }

// TrialFunc is called after every checked trial.
type TrialFunc func(s ports.Strategy, c domain.Case)

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithTrialFunc registers fn to observe every trial.
func WithTrialFunc(fn TrialFunc) Option {
	return func(e *Evaluator) { e.onTrial = append(e.onTrial, fn) }
}

var _ ports.Evaluator = (*Evaluator)(nil)

// Evaluator runs strategies against every threshold in [0, domain.Levels].
type Evaluator struct {
	onTrial []TrialFunc
}

func New(opts ...Option) *Evaluator {
	e := &Evaluator{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Trial runs s against a fresh tester hiding threshold. A wrong answer panics
// with *IncorrectAnswerError.
func (e *Evaluator) Trial(s ports.Strategy, threshold int) domain.Case {
	t := tester.New(threshold)
	if got := s.Solve(t); got != threshold {
		panic(&IncorrectAnswerError{Strategy: s.String(), Expected: threshold, Actual: got})
	}
	c := domain.Case{Threshold: threshold, Probes: t.Probes()}
	for _, fn := range e.onTrial {
		fn(s, c)
	}
	return c
}

// Sweep returns one case per threshold in ascending order, including the
// threshold at Levels where nothing ever triggers.
func (e *Evaluator) Sweep(s ports.Strategy) []domain.Case {
	cases := make([]domain.Case, 0, domain.Levels+1)
	for threshold := 0; threshold <= domain.Levels; threshold++ {
		cases = append(cases, e.Trial(s, threshold))
	}
	return cases
}

// FindWorstCase returns the case with the most probes. Ties go to the higher
// threshold.
func (e *Evaluator) FindWorstCase(s ports.Strategy) domain.Case {
	return Worst(e.Sweep(s))
}

// Worst reduces cases to the one with the most probes, preferring later
// entries on ties. It returns the zero Case for an empty slice.
func Worst(cases []domain.Case) domain.Case {
	var worst domain.Case
	for i, c := range cases {
		if i == 0 || c.Probes >= worst.Probes {
			worst = c
		}
	}
	return worst
}
