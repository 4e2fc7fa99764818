package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberfi/ember/errors"
)

func TestBTreeCacheGetSet(t *testing.T) {
	base := MemStore()

	k, v := []byte("french"), []byte("fry")
	set(t, base, k, v)

	// now layer another btree on top and see what happens
	cache := base.CacheWrap()
	assertValue(t, cache, k, v)

	k2, v2 := []byte("LA"), []byte("Dodgers")
	set(t, cache, k2, v2)
	assertValue(t, cache, k2, v2)
	assertValue(t, base, k2, nil)

	// writing the cache pushes the data down
	require.NoError(t, cache.Write())
	assertValue(t, base, k2, v2)
}

func TestBTreeCacheDiscard(t *testing.T) {
	base := MemStore()
	k, v := []byte("sate"), []byte("babi")
	set(t, base, k, v)

	cache := base.CacheWrap()
	set(t, cache, []byte("new"), []byte("value"))
	require.NoError(t, cache.Delete(k))
	assertValue(t, cache, k, nil)

	cache.Discard()

	// neither the write nor the delete survived
	assertValue(t, base, k, v)
	assertValue(t, base, []byte("new"), nil)
}

func TestBTreeCacheDelete(t *testing.T) {
	base := MemStore()
	k := []byte("mark")
	set(t, base, k, []byte("twain"))

	cache := base.CacheWrap()
	require.NoError(t, cache.Delete(k))
	assertValue(t, cache, k, nil)
	has, err := cache.Has(k)
	require.NoError(t, err)
	assert.False(t, has)

	// still in the backing store until written
	assertValue(t, base, k, []byte("twain"))
	require.NoError(t, cache.Write())
	assertValue(t, base, k, nil)
}

func TestBTreeCacheIterator(t *testing.T) {
	base := MemStore()
	set(t, base, []byte("a"), []byte{1})
	set(t, base, []byte("c"), []byte{3})
	set(t, base, []byte("e"), []byte{5})

	cache := base.CacheWrap()
	set(t, cache, []byte("b"), []byte{2})
	set(t, cache, []byte("d"), []byte{4})
	require.NoError(t, cache.Delete([]byte("c")))

	// ascending merge of cache and backing store, without the deleted key
	assert.Equal(t, []string{"a", "b", "d", "e"}, drain(t, cache, false))
	// descending
	assert.Equal(t, []string{"e", "d", "b", "a"}, drain(t, cache, true))
}

func TestBTreeCacheIteratorRange(t *testing.T) {
	db := MemStore()
	for _, k := range []string{"1", "2", "3", "4", "5"} {
		set(t, db, []byte(k), []byte(k))
	}

	it, err := db.Iterator([]byte("2"), []byte("4"))
	require.NoError(t, err)
	defer it.Release()

	key, _, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), key)
	key, _, err = it.Next()
	require.NoError(t, err)
	assert.Equal(t, []byte("3"), key)
	_, _, err = it.Next()
	assert.True(t, errors.ErrIteratorDone.Is(err))
}

func set(t testing.TB, db KVStore, key, value []byte) {
	t.Helper()
	require.NoError(t, db.Set(key, value))
}

func assertValue(t testing.TB, db ReadOnlyKVStore, key, want []byte) {
	t.Helper()
	got, err := db.Get(key)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func drain(t testing.TB, db ReadOnlyKVStore, reverse bool) []string {
	t.Helper()
	var (
		it  Iterator
		err error
	)
	if reverse {
		it, err = db.ReverseIterator(nil, nil)
	} else {
		it, err = db.Iterator(nil, nil)
	}
	require.NoError(t, err)
	defer it.Release()

	var keys []string
	for {
		key, _, err := it.Next()
		if errors.ErrIteratorDone.Is(err) {
			return keys
		}
		require.NoError(t, err)
		keys = append(keys, string(key))
	}
}
