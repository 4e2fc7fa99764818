package ember

// ReadOnlyKVStore is a subset of the store methods needed for queries and
// other code paths that must not mutate state.
type ReadOnlyKVStore interface {
	// Get returns nil iff key doesn't exist. Panics on nil key.
	Get(key []byte) ([]byte, error)

	// Has checks if a key exists. Panics on nil key.
	Has(key []byte) (bool, error)

	// Iterator over a domain of keys in ascending order. End is exclusive.
	// Start must be less than end, or the Iterator is invalid.
	// CONTRACT: No writes may happen within a domain while an iterator
	// exists over it.
	Iterator(start, end []byte) (Iterator, error)

	// ReverseIterator over a domain of keys in descending order. End is
	// exclusive. Start must be greater than end, or the Iterator is
	// invalid.
	ReverseIterator(start, end []byte) (Iterator, error)
}

// KVStore is a simple interface to get/set data.
//
// For simplicity, we require all backing stores to implement this interface.
// They *may* implement other methods as well, but at least these are
// required.
type KVStore interface {
	ReadOnlyKVStore

	// Set sets the key. Panics on nil key.
	Set(key, value []byte) error

	// Delete deletes the key. Panics on nil key.
	Delete(key []byte) error

	// NewBatch returns a batch that can write multiple ops atomically.
	NewBatch() Batch
}

// Iterator allows us to access a set of items within a range of keys. These
// may all be preloaded, or loaded on demand.
//
//	var itr Iterator = ...
//	defer itr.Release()
//
//	for {
//	    k, v, err := itr.Next()
//	    if err != nil {
//	        break  // or handle iterator.Done
//	    }
//	    ...
//	}
type Iterator interface {
	// Next moves the iterator to the next sequential key in the database,
	// as defined by order of iteration. Returns (nil, nil, errors.ErrIteratorDone)
	// when done.
	Next() (key, value []byte, err error)

	// Release releases the Iterator.
	Release()
}

// Batch can write multiple operations to an underlying store and will only
// flush them on Write.
type Batch interface {
	Set(key, value []byte) error
	Delete(key []byte) error
	Write() error
}

// CacheableKVStore is a KVStore that supports CacheWrapping
//
//	CacheWrap() CacheWrap
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap allows us to maintain a scratch-pad of uncommitted data that we
// can view with all queries, and then can Write to the backing store, or
// Discard all changes.
type KVCacheWrap interface {
	// CacheableKVStore allows cache wraps to be layered.
	CacheableKVStore

	// Write syncs with the underlying store.
	Write() error

	// Discard invalidates this CacheWrap and releases all data.
	Discard()
}
