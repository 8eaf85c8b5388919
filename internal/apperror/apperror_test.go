package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := New(KindOrderConflict, "order %d is taken", 2)
	wrapped := fmt.Errorf("add song: %w", err)

	assert.Equal(t, KindOrderConflict, KindOf(wrapped))
	assert.Equal(t, "order 2 is taken", MessageOf(wrapped))
	assert.True(t, errors.Is(wrapped, ErrOrderConflict))
	assert.False(t, errors.Is(wrapped, ErrDuplicateSong))
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
	assert.Equal(t, "internal error", MessageOf(errors.New("boom")))
}

func TestTransactionFailure(t *testing.T) {
	assert.NoError(t, TransactionFailure(nil, "create event"))

	raw := errors.New("connection reset")
	err := TransactionFailure(raw, "create event")
	assert.Equal(t, KindTransactionFailure, KindOf(err))
	assert.ErrorIs(t, err, raw)
	assert.Equal(t, "create event failed", MessageOf(err))

	domain := NotFound("event not found")
	assert.Same(t, domain, TransactionFailure(domain, "create event"))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "duplicate_song", KindDuplicateSong.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
