package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_SetGet(t *testing.T) {
	c := New(8, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "snapshot:a", []byte(`{"empty":false}`)))

	value, ok, err := c.Get(ctx, "snapshot:a")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"empty":false}`), value)

	_, ok, err = c.Get(ctx, "snapshot:b")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestCache_Expiry(t *testing.T) {
	c := New(8, 20*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "snapshot:a", []byte("x")))

	assert.Eventually(t, func() bool {
		_, ok, _ := c.Get(ctx, "snapshot:a")
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestCache_Close(t *testing.T) {
	c := New(8, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "snapshot:a", []byte("x")))
	require.NoError(t, c.Close())

	_, ok, _ := c.Get(ctx, "snapshot:a")
	assert.False(t, ok)
}
