package coin

import (
	"math"
	"math/big"

	"github.com/emberfi/ember/errors"
)

// Amount is a quantity of the ledger token, expressed in indivisible base
// units. The engine operates on a single token, so no ticker is attached.
//
// All arithmetic helpers are overflow checked. A computation that cannot be
// represented returns ErrOverflow instead of silently wrapping around.
type Amount int64

const (
	// MaxAmount is the largest value we accept.
	MaxAmount Amount = math.MaxInt64
	// MinAmount is the lowest value we accept.
	MinAmount Amount = math.MinInt64

	// PermilleBase is the denominator of all fee rates. A rate of 1000
	// permille equals the full amount.
	PermilleBase = 1000
)

// Add returns the sum of two amounts. This method can fail if the result
// would overflow.
func (a Amount) Add(o Amount) (Amount, error) {
	sum := a + o
	if (o > 0 && sum < a) || (o < 0 && sum > a) {
		return 0, errors.Wrap(errors.ErrOverflow, "addition")
	}
	return sum, nil
}

// Subtract returns the difference of two amounts. This method can fail if
// the result would overflow.
func (a Amount) Subtract(o Amount) (Amount, error) {
	diff := a - o
	if (o < 0 && diff < a) || (o > 0 && diff > a) {
		return 0, errors.Wrap(errors.ErrOverflow, "subtraction")
	}
	return diff, nil
}

// Multiply returns the result of an amount value multiplication. This method
// can fail if the result would overflow.
func (a Amount) Multiply(times int64) (Amount, error) {
	if times == 0 || a == 0 {
		return 0, nil
	}
	res := int64(a) * times
	if res/times != int64(a) {
		return 0, errors.Wrap(errors.ErrOverflow, "multiplication")
	}
	return Amount(res), nil
}

// Permille returns floor(a * rate / 1000). This is the fee arithmetic every
// rate parameter of the engine is expressed in. The rate must not be
// negative; a rate above 1000 yields a value greater than a.
func (a Amount) Permille(rate int32) (Amount, error) {
	if rate < 0 {
		return 0, errors.Wrapf(errors.ErrInput, "negative rate %d", rate)
	}
	if a < 0 {
		return 0, errors.Wrap(errors.ErrAmount, "negative amount")
	}
	return MulDiv(a, Amount(rate), PermilleBase)
}

// MulDiv returns floor(a * b / div) computed without intermediate overflow.
// Payout shares are weight-proportional fractions of a pool and the
// intermediate product routinely exceeds 64 bits, hence big.Int.
func MulDiv(a, b, div Amount) (Amount, error) {
	if div == 0 {
		return 0, errors.Wrap(errors.ErrInput, "division by zero")
	}
	prod := new(big.Int).Mul(big.NewInt(int64(a)), big.NewInt(int64(b)))
	prod.Quo(prod, big.NewInt(int64(div)))
	if !prod.IsInt64() {
		return 0, errors.Wrap(errors.ErrOverflow, "mul-div")
	}
	return Amount(prod.Int64()), nil
}

// Min returns the smaller of two amounts.
func Min(a, b Amount) Amount {
	if a < b {
		return a
	}
	return b
}

// IsZero returns true if this amount is zero.
func (a Amount) IsZero() bool {
	return a == 0
}

// IsPositive returns true if this amount is greater than zero.
func (a Amount) IsPositive() bool {
	return a > 0
}

// IsNonNegative returns true if this amount is greater or equal to zero.
func (a Amount) IsNonNegative() bool {
	return a >= 0
}

// IsGTE returns true if this amount is greater or equal to the other.
func (a Amount) IsGTE(o Amount) bool {
	return a >= o
}

// Validate returns an error if this amount cannot be used as a balance or a
// transfer value.
func (a Amount) Validate() error {
	if a < 0 {
		return errors.Wrap(errors.ErrAmount, "negative amount")
	}
	return nil
}
