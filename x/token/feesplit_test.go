package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberfi/ember/coin"
	"github.com/emberfi/ember/embertest"
)

func TestClassify(t *testing.T) {
	pair := embertest.NewAddress()
	trader := embertest.NewAddress()
	other := embertest.NewAddress()
	conf := &Configuration{Pair: pair}

	assert.Equal(t, ClassSell, conf.Classify(trader, pair))
	assert.Equal(t, ClassBuy, conf.Classify(pair, trader))
	assert.Equal(t, ClassPlain, conf.Classify(trader, other))
}

func TestSplitFees(t *testing.T) {
	conf := &Configuration{
		LpRate:     20,
		BurnRate:   5,
		BurnLpRate: 20,
		FundRate:   15,
	}

	cases := map[string]struct {
		amount coin.Amount
		class  TransferClass
		want   Fees
	}{
		"reference sell": {
			amount: 1000,
			class:  ClassSell,
			want:   Fees{Lp: 20, Burn: 5, BurnLp: 20, Fund: 15},
		},
		"components round down independently": {
			amount: 999,
			class:  ClassSell,
			want:   Fees{Lp: 19, Burn: 4, BurnLp: 19, Fund: 14},
		},
		"small sell rounds to zero": {
			amount: 30,
			class:  ClassSell,
			want:   Fees{},
		},
		"buy carries no fee": {
			amount: 1000,
			class:  ClassBuy,
			want:   Fees{},
		},
		"plain transfer carries no fee": {
			amount: 1000,
			class:  ClassPlain,
			want:   Fees{},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := SplitFees(tc.amount, tc.class, conf)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSplitFeesNetAmount(t *testing.T) {
	conf := &Configuration{LpRate: 20, BurnRate: 5, BurnLpRate: 20, FundRate: 15}

	fees, err := SplitFees(1000, ClassSell, conf)
	require.NoError(t, err)

	total, err := fees.Total()
	require.NoError(t, err)
	assert.Equal(t, coin.Amount(60), total)

	net, err := fees.Net(1000)
	require.NoError(t, err)
	assert.Equal(t, coin.Amount(940), net)
}

func TestSplitFeesUnconstrainedRateSum(t *testing.T) {
	// Rates summing above 1000 are not rejected by validation. The split
	// then exceeds the amount and the transfer fails later on the
	// negative net.
	conf := &Configuration{LpRate: 400, BurnRate: 400, BurnLpRate: 400, FundRate: 0}

	fees, err := SplitFees(1000, ClassSell, conf)
	require.NoError(t, err)
	total, err := fees.Total()
	require.NoError(t, err)
	assert.Equal(t, coin.Amount(1200), total)

	net, err := fees.Net(1000)
	require.NoError(t, err)
	assert.Equal(t, coin.Amount(-200), net)
}
