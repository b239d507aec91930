package domain

import (
	"fmt"
	"strings"
)

// Kind names one of the built-in search strategies.
type Kind int

const (
	Linear           Kind = iota // probe every level in order
	Chunked                      // fixed-size coarse scan, then linear refinement
	ShrinkingChunked             // coarse scan with decreasing steps, then linear refinement
)

func (k Kind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Chunked:
		return "chunked"
	case ShrinkingChunked:
		return "shrinking"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind maps a config or CLI name onto a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear":
		return Linear, nil
	case "chunked", "chunks":
		return Chunked, nil
	case "shrinking", "shrinking-chunked", "shrinking_chunked", "shrinkingchunks":
		return ShrinkingChunked, nil
	}
	return 0, fmt.Errorf("unknown strategy %q", s)
}

// MarshalText lets Kind appear by name in JSON reports.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
