package token

import (
	"github.com/emberfi/ember"
	"github.com/emberfi/ember/coin"
	"github.com/emberfi/ember/errors"
)

// TransferClass names which side of the pair a transfer touches.
type TransferClass uint8

const (
	// ClassPlain is a transfer not involving the pair.
	ClassPlain TransferClass = iota
	// ClassSell sends towards the pair. Only sells pay fees.
	ClassSell
	// ClassBuy receives from the pair.
	ClassBuy
)

// Classify returns the class of a transfer between two accounts.
func (c *Configuration) Classify(src, dest ember.Address) TransferClass {
	switch {
	case dest.Equals(c.Pair):
		return ClassSell
	case src.Equals(c.Pair):
		return ClassBuy
	default:
		return ClassPlain
	}
}

// Fees is the breakdown of one sell transfer.
type Fees struct {
	// Lp goes to the LP reward pool.
	Lp coin.Amount
	// Burn goes to the non recoverable sink.
	Burn coin.Amount
	// BurnLp goes to the burn reward pool.
	BurnLp coin.Amount
	// Fund goes to the treasury.
	Fund coin.Amount
}

// Total returns the sum of all components.
func (f Fees) Total() (coin.Amount, error) {
	total, err := f.Lp.Add(f.Burn)
	if err != nil {
		return 0, err
	}
	if total, err = total.Add(f.BurnLp); err != nil {
		return 0, err
	}
	return total.Add(f.Fund)
}

// Net returns what is left of the given amount after all components are
// deducted. The result is negative when the rates sum above 1000.
func (f Fees) Net(amount coin.Amount) (coin.Amount, error) {
	total, err := f.Total()
	if err != nil {
		return 0, err
	}
	return amount.Subtract(total)
}

// IsZero returns true if no component carries a value.
func (f Fees) IsZero() bool {
	return f.Lp.IsZero() && f.Burn.IsZero() && f.BurnLp.IsZero() && f.Fund.IsZero()
}

// SplitFees computes the fee breakdown of a transfer. Buys and plain
// transfers carry no fee. Sells carve floor(amount * rate / 1000) per
// component.
func SplitFees(amount coin.Amount, class TransferClass, conf *Configuration) (Fees, error) {
	if class != ClassSell {
		return Fees{}, nil
	}
	var (
		fees Fees
		err  error
	)
	if fees.Lp, err = amount.Permille(conf.LpRate); err != nil {
		return Fees{}, errors.Wrap(err, "lp fee")
	}
	if fees.Burn, err = amount.Permille(conf.BurnRate); err != nil {
		return Fees{}, errors.Wrap(err, "burn fee")
	}
	if fees.BurnLp, err = amount.Permille(conf.BurnLpRate); err != nil {
		return Fees{}, errors.Wrap(err, "burn lp fee")
	}
	if fees.Fund, err = amount.Permille(conf.FundRate); err != nil {
		return Fees{}, errors.Wrap(err, "fund fee")
	}
	return fees, nil
}
