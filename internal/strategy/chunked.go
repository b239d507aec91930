package strategy

import (
	"fmt"

	"svw.info/eggdrop/internal/domain"
	"svw.info/eggdrop/internal/generator"
	"svw.info/eggdrop/internal/tester"
	"svw.info/eggdrop/internal/validator"
)

// Chunked probes the last level of each fixed-size chunk, then walks the
// chunk that triggered. Worst case is about Levels/Size + Size probes.
type Chunked struct {
	Size int `validate:"gte=1"`
}

func NewChunked(size int) (*Chunked, error) {
	s := &Chunked{Size: size}
	if err := validator.Struct(s); err != nil {
		return nil, fmt.Errorf("chunked strategy: %w", err)
	}
	return s, nil
}

func (s *Chunked) Solve(t *tester.Tester) int {
	return TwoPhase(generator.Chunks(s.Size, domain.Levels), t)
}

func (s *Chunked) Kind() domain.Kind { return domain.Chunked }

func (s *Chunked) String() string { return fmt.Sprintf("Chunked{size: %d}", s.Size) }
