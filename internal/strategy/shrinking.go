package strategy

import (
	"fmt"

	"svw.info/eggdrop/internal/domain"
	"svw.info/eggdrop/internal/generator"
	"svw.info/eggdrop/internal/tester"
	"svw.info/eggdrop/internal/validator"
)

// ShrinkingChunked is Chunked with a coarse step that drops by ShrinkBy after
// every probe. Each coarse probe already spent is paid back by one fewer level
// to walk afterwards, which evens out the probe count across thresholds.
type ShrinkingChunked struct {
	FirstSize int `validate:"gte=1"`
	ShrinkBy  int `validate:"gte=0"`
}

func NewShrinkingChunked(firstSize, shrinkBy int) (*ShrinkingChunked, error) {
	s := &ShrinkingChunked{FirstSize: firstSize, ShrinkBy: shrinkBy}
	if err := validator.Struct(s); err != nil {
		return nil, fmt.Errorf("shrinking strategy: %w", err)
	}
	return s, nil
}

func (s *ShrinkingChunked) Solve(t *tester.Tester) int {
	return TwoPhase(generator.Shrinking(s.FirstSize, s.ShrinkBy, domain.Levels), t)
}

func (s *ShrinkingChunked) Kind() domain.Kind { return domain.ShrinkingChunked }

func (s *ShrinkingChunked) String() string {
	return fmt.Sprintf("ShrinkingChunked{first_size: %d, shrink_by: %d}", s.FirstSize, s.ShrinkBy)
}
