package redist

import (
	"github.com/emberfi/ember"
	"github.com/emberfi/ember/errors"
	"github.com/emberfi/ember/orm"
)

// Roster is the read side of an append-only account list. Positions are
// 1-based and stable: once an account is appended it keeps its position
// forever, there is no removal.
type Roster interface {
	// Length returns the number of accounts appended so far.
	Length(db ember.ReadOnlyKVStore) (int64, error)
	// At returns the account stored at the given 1-based position.
	At(db ember.ReadOnlyKVStore, pos int64) (ember.Address, error)
}

// roster persists an append-only account list. Entries live in a bucket
// keyed by their big-endian encoded position. A raw index key per address
// maps back to the position so that membership checks do not scan.
type roster struct {
	bucket orm.Bucket
	index  []byte
	count  orm.Sequence
}

func newRoster(name string, proto orm.Cloneable) roster {
	b := orm.NewBucket(name, proto)
	return roster{
		bucket: b,
		index:  []byte("_i." + name + ":"),
		count:  b.Sequence("count"),
	}
}

func (r roster) indexKey(addr ember.Address) []byte {
	out := make([]byte, len(r.index)+len(addr))
	copy(out, r.index)
	copy(out[len(r.index):], addr)
	return out
}

// position returns the 1-based position of the address, or 0 if it was
// never appended.
func (r roster) position(db ember.ReadOnlyKVStore, addr ember.Address) (int64, error) {
	raw, err := db.Get(r.indexKey(addr))
	if err != nil {
		return 0, err
	}
	return orm.DecodeSequence(raw), nil
}

// length returns the number of appended entries.
func (r roster) length(db ember.ReadOnlyKVStore) (int64, error) {
	val, _, err := r.count.Latest(db)
	return val, err
}

// append stores the entry under the next position and indexes the address.
// The caller must have checked that the address is not present yet.
func (r roster) append(db ember.KVStore, addr ember.Address, value orm.CloneableData) (int64, error) {
	key, err := r.count.NextVal(db)
	if err != nil {
		return 0, err
	}
	if err := r.bucket.Save(db, orm.NewSimpleObj(key, value)); err != nil {
		return 0, err
	}
	if err := db.Set(r.indexKey(addr), key); err != nil {
		return 0, err
	}
	return orm.DecodeSequence(key), nil
}

// at loads the entry stored at the given 1-based position.
func (r roster) at(db ember.ReadOnlyKVStore, pos int64) (orm.Object, error) {
	if pos < 1 {
		return nil, errors.Wrapf(errors.ErrInput, "position %d", pos)
	}
	obj, err := r.bucket.Get(db, orm.EncodeSequence(pos))
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "position %d", pos)
	}
	return obj, nil
}

// save overwrites the entry at an occupied position.
func (r roster) save(db ember.KVStore, pos int64, value orm.CloneableData) error {
	return r.bucket.Save(db, orm.NewSimpleObj(orm.EncodeSequence(pos), value))
}
