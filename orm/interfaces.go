package orm

import (
	"github.com/emberfi/ember"
)

// Object is what is stored in the bucket. Key is joined with the bucket
// prefix to set the full key. Value is the data stored.
//
// This can be a light wrapper around a serializable type.
type Object interface {
	Keyed
	Cloneable

	// Validate returns error if the object is not in a valid state to
	// save to the db (eg. field missing, out of range, ...).
	Validate() error

	Value() ember.Persistent
}

// Keyed is anything that can identify itself.
type Keyed interface {
	Key() []byte
	SetKey([]byte)
}

// Cloneable will create a new object that can be loaded into.
type Cloneable interface {
	Clone() Object
}

// CloneableData is an intelligent Value that can be embedded in a simple
// object to handle much of the details.
type CloneableData interface {
	ember.Persistent
	Validate() error
	Copy() CloneableData
}

// Reader defines an interface that allows reading objects from the db.
type Reader interface {
	Get(db ember.ReadOnlyKVStore, key []byte) (Object, error)
}
