package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	got, err := NormalizePhone(" (11) 98765-4321 ")
	require.NoError(t, err)
	assert.Equal(t, "11987654321", got)

	got, err = NormalizePhone("+55 11 98765 4321")
	require.NoError(t, err)
	assert.Equal(t, "+5511987654321", got)

	_, err = NormalizePhone("123")
	assert.ErrorIs(t, err, ErrInvalidPhone)

	_, err = NormalizePhone("")
	assert.ErrorIs(t, err, ErrInvalidPhone)
}
