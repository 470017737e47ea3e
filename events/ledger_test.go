package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryLedger_ReserveOncePerID(t *testing.T) {
	l := NewMemoryLedger()
	ctx := context.Background()

	first, err := l.Reserve(ctx, "evt_1")
	assert.NoError(t, err)
	assert.True(t, first)

	again, err := l.Reserve(ctx, "evt_1")
	assert.NoError(t, err)
	assert.False(t, again)

	other, err := l.Reserve(ctx, "evt_2")
	assert.NoError(t, err)
	assert.True(t, other)
}

func TestMemoryLedger_ReleaseAllowsRetry(t *testing.T) {
	l := NewMemoryLedger()
	ctx := context.Background()

	_, _ = l.Reserve(ctx, "evt_1")
	assert.NoError(t, l.Release(ctx, "evt_1"))

	first, err := l.Reserve(ctx, "evt_1")
	assert.NoError(t, err)
	assert.True(t, first)
}
