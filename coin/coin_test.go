package coin

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emberfi/ember/errors"
)

func TestAmountAdd(t *testing.T) {
	cases := map[string]struct {
		a, b    Amount
		want    Amount
		wantErr *errors.Error
	}{
		"plain addition": {
			a: 100, b: 23, want: 123,
		},
		"negative operand": {
			a: 100, b: -40, want: 60,
		},
		"overflow": {
			a: MaxAmount, b: 1, wantErr: errors.ErrOverflow,
		},
		"underflow": {
			a: MinAmount, b: -1, wantErr: errors.ErrOverflow,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := tc.a.Add(tc.b)
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err), "unexpected error: %v", err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAmountSubtract(t *testing.T) {
	got, err := Amount(1000).Subtract(60)
	assert.NoError(t, err)
	assert.Equal(t, Amount(940), got)

	// A result may be negative. Balance checks happen in the ledger, not
	// in the arithmetic.
	got, err = Amount(10).Subtract(25)
	assert.NoError(t, err)
	assert.Equal(t, Amount(-15), got)

	_, err = MinAmount.Subtract(1)
	assert.True(t, errors.ErrOverflow.Is(err))
}

func TestPermille(t *testing.T) {
	cases := map[string]struct {
		amount  Amount
		rate    int32
		want    Amount
		wantErr *errors.Error
	}{
		"twenty permille of one thousand": {
			amount: 1000, rate: 20, want: 20,
		},
		"rounds down": {
			amount: 999, rate: 20, want: 19,
		},
		"zero rate": {
			amount: 1000, rate: 0, want: 0,
		},
		"full rate": {
			amount: 1000, rate: 1000, want: 1000,
		},
		"small amount rounds to zero": {
			amount: 49, rate: 20, want: 0,
		},
		"huge amount does not overflow": {
			amount: math.MaxInt64 / 2, rate: 500, want: math.MaxInt64 / 4,
		},
		"negative rate rejected": {
			amount: 1000, rate: -1, wantErr: errors.ErrInput,
		},
		"negative amount rejected": {
			amount: -1000, rate: 20, wantErr: errors.ErrAmount,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := tc.amount.Permille(tc.rate)
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err), "unexpected error: %v", err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMulDiv(t *testing.T) {
	// The intermediate product exceeds 64 bits.
	big := Amount(math.MaxInt64 / 3)
	got, err := MulDiv(big, 3, 3)
	assert.NoError(t, err)
	assert.Equal(t, big, got)

	got, err = MulDiv(1000, 7, 3)
	assert.NoError(t, err)
	assert.Equal(t, Amount(2333), got)

	_, err = MulDiv(1, 1, 0)
	assert.True(t, errors.ErrInput.Is(err))

	_, err = MulDiv(math.MaxInt64, 2, 1)
	assert.True(t, errors.ErrOverflow.Is(err))
}

func TestMin(t *testing.T) {
	assert.Equal(t, Amount(3), Min(3, 8))
	assert.Equal(t, Amount(3), Min(8, 3))
	assert.Equal(t, Amount(-1), Min(-1, 0))
}
