package ports

import (
	"io"

	"svw.info/eggdrop/internal/domain"
	"svw.info/eggdrop/internal/tester"
)

// Strategy finds a tester's hidden threshold by probing it. Implementations
// hold only their tuning parameters and must not exhaust the tester's items.
type Strategy interface {
	Solve(t *tester.Tester) int
	Kind() domain.Kind
	String() string
}

// Evaluator scores a strategy across every possible threshold.
type Evaluator interface {
	FindWorstCase(s Strategy) domain.Case
	Sweep(s Strategy) []domain.Case
}

// Reporter writes evaluation results to an output stream.
type Reporter interface {
	Results(w io.Writer, results []domain.Result) error
	Sweep(w io.Writer, strategy string, cases []domain.Case) error
}
