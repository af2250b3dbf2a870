package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-datapipeline/internal/store"
)

func TestOrderedAddGet(t *testing.T) {
	t.Parallel()

	str := store.NewOrdered[string, int]()

	require.NoError(t, str.Add("a", 1))
	require.NoError(t, str.Add("b", 2))

	got, ok := str.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, got)

	_, ok = str.Get("missing")
	assert.False(t, ok)

	assert.True(t, str.Has("b"))
	assert.False(t, str.Has("c"))
	assert.Equal(t, 2, str.Len())
}

func TestOrderedDuplicate(t *testing.T) {
	t.Parallel()

	str := store.NewOrdered[string, int]()

	require.NoError(t, str.Add("a", 1))

	err := str.Add("a", 2)
	require.ErrorIs(t, err, store.ErrDuplicateKey)

	got, ok := str.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, got)
	assert.Equal(t, 1, str.Len())
}

func TestOrderedInsertionOrder(t *testing.T) {
	t.Parallel()

	str := store.NewOrdered[string, int]()

	keys := []string{"z", "m", "a", "q", "b"}
	for i, key := range keys {
		require.NoError(t, str.Add(key, i))
	}

	assert.Equal(t, keys, str.Keys())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, str.Values())
}

func TestOrderedKeysIsACopy(t *testing.T) {
	t.Parallel()

	str := store.NewOrdered[string, int]()
	require.NoError(t, str.Add("a", 1))
	require.NoError(t, str.Add("b", 2))

	keys := str.Keys()
	keys[0] = "mutated"

	assert.Equal(t, []string{"a", "b"}, str.Keys())
}
