package redist

import (
	"github.com/emberfi/ember"
	"github.com/emberfi/ember/coin"
	"github.com/emberfi/ember/errors"
	"github.com/emberfi/ember/orm"
)

// WeightSource is the view of the receipt token the pair issues. The engine
// only ever reads it.
type WeightSource interface {
	// WeightOf returns the live weight of an account, zero if it holds
	// none.
	WeightOf(db ember.ReadOnlyKVStore, addr ember.Address) (coin.Amount, error)
	// TotalWeight returns the total issued weight.
	TotalWeight(db ember.ReadOnlyKVStore) (coin.Amount, error)
}

// key holding the total issued receipt weight
var receiptTotalKey = []byte("_receipt:total")

// ReceiptBook is a kvstore backed weight source. Genesis and the simulator
// use it to mirror receipt token balances the real pair would report.
type ReceiptBook struct {
	bucket orm.Bucket
}

var _ WeightSource = ReceiptBook{}

// NewReceiptBook returns a weight source backed by the "receipt" bucket.
func NewReceiptBook() ReceiptBook {
	return ReceiptBook{bucket: orm.NewBucket("receipt", orm.NewSimpleObj(nil, &WeightInfo{}))}
}

// SetWeight overwrites the weight of an account and adjusts the total by
// the difference.
func (r ReceiptBook) SetWeight(db ember.KVStore, addr ember.Address, weight coin.Amount) error {
	if err := addr.Validate(); err != nil {
		return err
	}
	if err := weight.Validate(); err != nil {
		return err
	}

	prev, err := r.WeightOf(db, addr)
	if err != nil {
		return err
	}
	total, err := r.TotalWeight(db)
	if err != nil {
		return err
	}
	total, err = total.Subtract(prev)
	if err != nil {
		return err
	}
	total, err = total.Add(weight)
	if err != nil {
		return err
	}

	obj := orm.NewSimpleObj(addr, &WeightInfo{Weight: weight})
	if err := r.bucket.Save(db, obj); err != nil {
		return err
	}
	return db.Set(receiptTotalKey, orm.EncodeSequence(int64(total)))
}

// WeightOf implements WeightSource.
func (r ReceiptBook) WeightOf(db ember.ReadOnlyKVStore, addr ember.Address) (coin.Amount, error) {
	obj, err := r.bucket.Get(db, addr)
	if err != nil {
		return 0, err
	}
	if obj == nil {
		return 0, nil
	}
	return obj.Value().(*WeightInfo).Weight, nil
}

// TotalWeight implements WeightSource.
func (r ReceiptBook) TotalWeight(db ember.ReadOnlyKVStore) (coin.Amount, error) {
	raw, err := db.Get(receiptTotalKey)
	if err != nil {
		return 0, err
	}
	return coin.Amount(orm.DecodeSequence(raw)), nil
}

// Validate implements orm.CloneableData.
func (w *WeightInfo) Validate() error {
	if w.Weight < 0 {
		return errors.Wrap(errors.ErrAmount, "negative weight")
	}
	return nil
}

// Copy implements orm.CloneableData.
func (w *WeightInfo) Copy() orm.CloneableData {
	return &WeightInfo{Weight: w.Weight}
}
