package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type params struct {
	Size  int      `validate:"gte=1"`
	Names []string `validate:"min=1,dive,strategy"`
}

func TestStruct(t *testing.T) {
	assert.NoError(t, Struct(params{Size: 1, Names: []string{"linear", "Shrinking"}}))

	err := Struct(params{Size: 0, Names: []string{"linear"}})
	require.ErrorIs(t, err, ErrInvalidParameter)
	assert.Contains(t, err.Error(), "params.Size=0 fails gte=1")

	err = Struct(params{Size: 3, Names: []string{"binary"}})
	require.ErrorIs(t, err, ErrInvalidParameter)
	assert.Contains(t, err.Error(), "strategy")

	assert.ErrorIs(t, Struct(params{Size: 3}), ErrInvalidParameter)
}

func TestStructRejectsNonStruct(t *testing.T) {
	assert.ErrorIs(t, Struct(42), ErrInvalidParameter)
}
