package cash

import (
	"github.com/emberfi/ember"
	"github.com/emberfi/ember/coin"
	"github.com/emberfi/ember/errors"
	"github.com/emberfi/ember/orm"
)

// BucketName is where we store the balances.
const BucketName = "cash"

var _ orm.CloneableData = (*Set)(nil)

// Validate requires the balance to never go negative.
func (s *Set) Validate() error {
	return s.Balance.Validate()
}

// Copy makes a new Set with the same balance.
func (s *Set) Copy() orm.CloneableData {
	return &Set{Balance: s.Balance}
}

//--- Wallet (Set object, value + key)

// Wallet is the actual object that we want to pass around in our code. It
// contains a balance, as well as the address. It is connected to the Bucket
// to easily manipulate state.
type Wallet struct {
	key   []byte
	value *Set
}

var _ orm.Object = (*Wallet)(nil)

// NewWallet creates an empty wallet with this address.
func NewWallet(key ember.Address) *Wallet {
	return &Wallet{
		key:   key,
		value: new(Set),
	}
}

// Value gets the value stored in the object.
func (w Wallet) Value() ember.Persistent {
	return w.value
}

// Key returns the key to store the object under.
func (w Wallet) Key() []byte {
	return w.key
}

// Validate makes sure the fields aren't empty. And delegates to the value
// validator.
func (w Wallet) Validate() error {
	if err := ember.Address(w.key).Validate(); err != nil {
		return err
	}
	return w.value.Validate()
}

// SetKey may be used to update a wallet key.
func (w *Wallet) SetKey(key []byte) {
	w.key = key
}

// Clone will make a copy of this object.
func (w *Wallet) Clone() orm.Object {
	res := &Wallet{
		value: w.value.Copy().(*Set),
	}
	// only copy key if non-nil
	if len(w.key) > 0 {
		res.key = append([]byte(nil), w.key...)
	}
	return res
}

// Balance returns the amount stored in the wallet.
func (w Wallet) Balance() coin.Amount {
	return w.value.Balance
}

// Add modifies the wallet balance by the given amount, which may be
// negative. The result must not be negative.
func (w *Wallet) Add(c coin.Amount) error {
	sum, err := w.value.Balance.Add(c)
	if err != nil {
		return err
	}
	if sum < 0 {
		return errors.Wrap(errors.ErrAmount, "negative balance")
	}
	w.value.Balance = sum
	return nil
}

// AsWallet safely extracts a Wallet from an object, may return nil.
func AsWallet(obj orm.Object) *Wallet {
	if obj == nil {
		return nil
	}
	wal, ok := obj.(*Wallet)
	if !ok {
		return nil
	}
	return wal
}

//--- cash.Bucket - type-safe bucket

// Bucket is a type-safe wrapper around orm.Bucket.
type Bucket struct {
	orm.Bucket
}

// NewBucket initializes a cash.Bucket with the default name.
func NewBucket() Bucket {
	return Bucket{
		Bucket: orm.NewBucket(BucketName, NewWallet(nil)),
	}
}

// GetOrCreate will return the wallet for the given address, creating an
// empty one if it was not present.
func (b Bucket) GetOrCreate(db ember.KVStore, key ember.Address) (orm.Object, error) {
	obj, err := b.Get(db, key)
	if err == nil && obj == nil {
		obj = NewWallet(key)
	}
	return obj, err
}
