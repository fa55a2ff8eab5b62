package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetAbsentKey(t *testing.T) {
	store := NewMemoryStore()

	v, err := store.Get(context.Background(), "user:missing")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestMemoryStore_SetGetDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "user:1", []byte(`{"id":"1"}`)))

	v, err := store.Get(ctx, "user:1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"id":"1"}`), v)

	require.NoError(t, store.Delete(ctx, "user:1"))

	v, err = store.Get(ctx, "user:1")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestMemoryStore_DeleteAbsentKeyIsNoop(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Delete(context.Background(), "user:missing"))
}

func TestMemoryStore_GetByPrefix(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "appointment:a", []byte("1")))
	require.NoError(t, store.Set(ctx, "user:1", []byte("2")))
	require.NoError(t, store.Set(ctx, "appointment:b", []byte("3")))

	entries, err := store.GetByPrefix(ctx, "appointment:")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "appointment:a", entries[0].Key)
	assert.Equal(t, "appointment:b", entries[1].Key)
}

func TestMemoryStore_GetByPrefixPreservesInsertionOrderAfterOverwrite(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "education:1", []byte("a")))
	require.NoError(t, store.Set(ctx, "education:2", []byte("b")))
	require.NoError(t, store.Set(ctx, "education:1", []byte("c")))

	entries, err := store.GetByPrefix(ctx, "education:")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "education:1", entries[0].Key)
	assert.Equal(t, []byte("c"), entries[0].Value)
	assert.Equal(t, "education:2", entries[1].Key)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte("abc")))

	v, err := store.Get(ctx, "k")
	require.NoError(t, err)
	v[0] = 'x'

	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}
