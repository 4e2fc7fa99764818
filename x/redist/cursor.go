package redist

import (
	"github.com/emberfi/ember"
	"github.com/emberfi/ember/orm"
)

// Cursor is the persisted scan position of a distributor. It survives
// across calls so that an interrupted pass resumes where it stopped. The
// value is 0-based and interpreted modulo the current roster length.
type Cursor struct {
	seq orm.Sequence
}

// NewCursor returns the cursor of the named distributor.
func NewCursor(name string) Cursor {
	return Cursor{seq: orm.NewSequence("redist", name)}
}

// Get returns the persisted position, zero if never written.
func (c Cursor) Get(db ember.ReadOnlyKVStore) (int64, error) {
	val, _, err := c.seq.Latest(db)
	return val, err
}

// Set persists the position.
func (c Cursor) Set(db ember.KVStore, val int64) error {
	return c.seq.Set(db, val)
}
