package cash

import (
	"github.com/emberfi/ember"
	"github.com/emberfi/ember/coin"
	"github.com/emberfi/ember/errors"
)

// Controller is the functionality needed by other extensions to move funds
// around. This is implemented by CashController and mocked in tests.
type Controller interface {
	MoveCoins(db ember.KVStore, src, dest ember.Address, amount coin.Amount) error
	IssueCoins(db ember.KVStore, dest ember.Address, amount coin.Amount) error
	BurnCoins(db ember.KVStore, src ember.Address, amount coin.Amount) error
	Balance(db ember.ReadOnlyKVStore, addr ember.Address) (coin.Amount, error)
	TotalSupply(db ember.ReadOnlyKVStore) (coin.Amount, error)
}

// supplyKey is the singleton key the issued supply counter is stored under.
var supplyKey = []byte("_cash:supply")

// CashController is the standard implementation of the Controller interface
// operating on a cash.Bucket.
type CashController struct {
	bucket Bucket
}

var _ Controller = CashController{}

// NewController returns a controller backed by the given bucket.
func NewController(bucket Bucket) CashController {
	return CashController{bucket: bucket}
}

// MoveCoins moves the given amount from src to dest. If src doesn't exist,
// or doesn't have sufficient funds, it fails.
func (c CashController) MoveCoins(db ember.KVStore, src, dest ember.Address, amount coin.Amount) error {
	if !amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "non-positive transfer")
	}
	if err := src.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}

	obj, err := c.bucket.Get(db, src)
	if err != nil {
		return err
	}
	sender := AsWallet(obj)
	if sender == nil {
		return errors.Wrapf(errors.ErrNotFound, "source %s", src)
	}
	if !sender.Balance().IsGTE(amount) {
		return errors.Wrapf(errors.ErrAmount, "insufficient funds in %s", src)
	}

	// A transfer within one account holds the preconditions above but
	// moves nothing.
	if src.Equals(dest) {
		return nil
	}

	robj, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return err
	}
	recipient := AsWallet(robj)

	if err := sender.Add(-amount); err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}

	if err := c.bucket.Save(db, sender); err != nil {
		return err
	}
	return c.bucket.Save(db, recipient)
}

// IssueCoins attempts to add the given amount of funds to the destination
// address, increasing the issued supply. Fails if it overflows the wallet or
// the supply counter.
func (c CashController) IssueCoins(db ember.KVStore, dest ember.Address, amount coin.Amount) error {
	if !amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "non-positive issue")
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}

	obj, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return err
	}
	recipient := AsWallet(obj)
	if err := recipient.Add(amount); err != nil {
		return err
	}

	supply, err := c.TotalSupply(db)
	if err != nil {
		return err
	}
	total, err := supply.Add(amount)
	if err != nil {
		return err
	}
	if err := c.setSupply(db, total); err != nil {
		return err
	}

	return c.bucket.Save(db, recipient)
}

// BurnCoins removes the given amount of funds from the source address,
// decreasing the issued supply. Fails on a missing wallet or insufficient
// balance.
func (c CashController) BurnCoins(db ember.KVStore, src ember.Address, amount coin.Amount) error {
	if !amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "non-positive burn")
	}
	if err := src.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}

	obj, err := c.bucket.Get(db, src)
	if err != nil {
		return err
	}
	wallet := AsWallet(obj)
	if wallet == nil {
		return errors.Wrapf(errors.ErrNotFound, "source %s", src)
	}
	if !wallet.Balance().IsGTE(amount) {
		return errors.Wrapf(errors.ErrAmount, "insufficient funds in %s", src)
	}
	if err := wallet.Add(-amount); err != nil {
		return err
	}

	supply, err := c.TotalSupply(db)
	if err != nil {
		return err
	}
	total, err := supply.Subtract(amount)
	if err != nil {
		return err
	}
	if err := c.setSupply(db, total); err != nil {
		return err
	}

	return c.bucket.Save(db, wallet)
}

// Balance returns the balance of the given wallet, or ErrNotFound for a
// wallet that was never funded.
func (c CashController) Balance(db ember.ReadOnlyKVStore, addr ember.Address) (coin.Amount, error) {
	obj, err := c.bucket.Get(db, addr)
	if err != nil {
		return 0, err
	}
	wallet := AsWallet(obj)
	if wallet == nil {
		return 0, errors.Wrapf(errors.ErrNotFound, "no wallet for %s", addr)
	}
	return wallet.Balance(), nil
}

// TotalSupply returns the amount of tokens issued so far. Tokens parked in
// the burn sink are still part of the issued supply.
func (c CashController) TotalSupply(db ember.ReadOnlyKVStore) (coin.Amount, error) {
	raw, err := db.Get(supplyKey)
	if err != nil {
		return 0, err
	}
	if raw == nil {
		return 0, nil
	}
	var supply Supply
	if err := supply.Unmarshal(raw); err != nil {
		return 0, errors.Wrap(err, "supply")
	}
	return supply.Total, nil
}

func (c CashController) setSupply(db ember.KVStore, total coin.Amount) error {
	supply := Supply{Total: total}
	raw, err := supply.Marshal()
	if err != nil {
		return err
	}
	return db.Set(supplyKey, raw)
}
