package hasher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/error"
)

func TestHashAndCompare(t *testing.T) {
	h := NewBcryptHasher(4)

	hash, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.NoError(t, h.Compare(hash, "s3cret"))
}

func TestCompareWrongPassword(t *testing.T) {
	h := NewBcryptHasher(4)

	hash, err := h.Hash("s3cret")
	require.NoError(t, err)

	assert.ErrorIs(t, h.Compare(hash, "wrong"), errs.ErrInvalidCredentials)
}

func TestInvalidCostFallsBack(t *testing.T) {
	h := NewBcryptHasher(99)

	hash, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NoError(t, h.Compare(hash, "s3cret"))
}
