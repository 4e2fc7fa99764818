package store

import "github.com/emberfi/ember"

// Move references for all storage types into this package for shorter names
// everywhere.

type ReadOnlyKVStore = ember.ReadOnlyKVStore
type KVStore = ember.KVStore
type Iterator = ember.Iterator
type Batch = ember.Batch
type CacheableKVStore = ember.CacheableKVStore
type KVCacheWrap = ember.KVCacheWrap

// SetDeleter is a subset of the KVStore methods a batch flushes into.
type SetDeleter interface {
	Set(key, value []byte) error
	Delete(key []byte) error
}

// Model groups a key and a value for iteration results.
type Model struct {
	Key   []byte
	Value []byte
}
