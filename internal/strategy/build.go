package strategy

import (
	"fmt"

	"svw.info/eggdrop/internal/domain"
	"svw.info/eggdrop/internal/ports"
)

var (
	_ ports.Strategy = (*Linear)(nil)
	_ ports.Strategy = (*Chunked)(nil)
	_ ports.Strategy = (*ShrinkingChunked)(nil)
)

// Params carries the tuning knobs for every kind; each kind reads only its own.
type Params struct {
	ChunkSize int
	FirstSize int
	ShrinkBy  int
}

// Build returns the strategy of the given kind configured from p.
func Build(kind domain.Kind, p Params) (ports.Strategy, error) {
	switch kind {
	case domain.Linear:
		return NewLinear(), nil
	case domain.Chunked:
		return NewChunked(p.ChunkSize)
	case domain.ShrinkingChunked:
		return NewShrinkingChunked(p.FirstSize, p.ShrinkBy)
	}
	return nil, fmt.Errorf("build strategy: unsupported kind %v", kind)
}
