package vesting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberfi/ember"
	"github.com/emberfi/ember/coin"
	"github.com/emberfi/ember/embertest"
	"github.com/emberfi/ember/orm"
	"github.com/emberfi/ember/store"
	"github.com/emberfi/ember/x/cash"
)

var start = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

type testEnv struct {
	db   ember.CacheableKVStore
	cash cash.Controller
	vest Controller
}

func newTestEnv(t *testing.T, allocs ...*Allocation) *testEnv {
	t.Helper()

	env := &testEnv{
		db:   store.MemStore(),
		cash: cash.NewController(cash.NewBucket()),
	}
	env.vest = NewController(env.cash)

	require.NoError(t, env.vest.setStart(env.db, ember.AsUnixTime(start)))

	var locked coin.Amount
	for _, a := range allocs {
		require.NoError(t, env.vest.bucket.Save(env.db, orm.NewSimpleObj(a.Beneficiary, a)))
		locked += a.Total
	}
	if locked > 0 {
		require.NoError(t, env.cash.IssueCoins(env.db, env.vest.Pool(), locked))
	}
	return env
}

func (env *testEnv) process(t *testing.T, at time.Time) {
	t.Helper()
	require.NoError(t, env.vest.ProcessLock(env.db, ember.AsUnixTime(at)))
}

func (env *testEnv) balance(t *testing.T, addr ember.Address) coin.Amount {
	t.Helper()
	got, err := env.cash.Balance(env.db, addr)
	if err != nil {
		return 0
	}
	return got
}

func TestLinearRelease(t *testing.T) {
	beneficiary := embertest.NewAddress()
	env := newTestEnv(t, &Allocation{
		Beneficiary: beneficiary,
		Total:       3000,
		CycleDays:   30,
	})

	// ten days in, a third is released
	env.process(t, start.AddDate(0, 0, 10))
	assert.Equal(t, coin.Amount(1000), env.balance(t, beneficiary))

	// re-checking within the same day pays nothing more
	env.process(t, start.AddDate(0, 0, 10).Add(6*time.Hour))
	assert.Equal(t, coin.Amount(1000), env.balance(t, beneficiary))

	// five days later, the difference to the new target
	env.process(t, start.AddDate(0, 0, 15))
	assert.Equal(t, coin.Amount(1500), env.balance(t, beneficiary))

	// far past the cycle end, exactly the total and not a unit more
	env.process(t, start.AddDate(0, 0, 45))
	assert.Equal(t, coin.Amount(3000), env.balance(t, beneficiary))
	env.process(t, start.AddDate(0, 0, 60))
	assert.Equal(t, coin.Amount(3000), env.balance(t, beneficiary))

	// the pool is fully drained
	assert.Equal(t, coin.Amount(0), env.balance(t, env.vest.Pool()))
}

func TestReleaseRoundsDown(t *testing.T) {
	beneficiary := embertest.NewAddress()
	env := newTestEnv(t, &Allocation{
		Beneficiary: beneficiary,
		Total:       1000,
		CycleDays:   30,
	})

	// floor(1000 * 7 / 30) = 233
	env.process(t, start.AddDate(0, 0, 7))
	assert.Equal(t, coin.Amount(233), env.balance(t, beneficiary))

	// completion is still exact
	env.process(t, start.AddDate(0, 0, 30))
	assert.Equal(t, coin.Amount(1000), env.balance(t, beneficiary))
}

func TestNoReleaseBeforeStart(t *testing.T) {
	beneficiary := embertest.NewAddress()
	env := newTestEnv(t, &Allocation{
		Beneficiary: beneficiary,
		Total:       1000,
		CycleDays:   30,
	})

	env.process(t, start.Add(-time.Hour))
	assert.Equal(t, coin.Amount(0), env.balance(t, beneficiary))

	// the first day is not over yet
	env.process(t, start.Add(23*time.Hour))
	assert.Equal(t, coin.Amount(0), env.balance(t, beneficiary))
}

func TestIndependentCycles(t *testing.T) {
	fast := embertest.NewAddress()
	slow := embertest.NewAddress()
	env := newTestEnv(t,
		&Allocation{Beneficiary: fast, Total: 1000, CycleDays: 10},
		&Allocation{Beneficiary: slow, Total: 1000, CycleDays: 100},
	)

	env.process(t, start.AddDate(0, 0, 10))
	assert.Equal(t, coin.Amount(1000), env.balance(t, fast))
	assert.Equal(t, coin.Amount(100), env.balance(t, slow))

	env.process(t, start.AddDate(0, 0, 50))
	assert.Equal(t, coin.Amount(1000), env.balance(t, fast))
	assert.Equal(t, coin.Amount(500), env.balance(t, slow))
}

func TestUnconfiguredScheduleIsNoOp(t *testing.T) {
	db := store.MemStore()
	vest := NewController(cash.NewController(cash.NewBucket()))

	// no start time recorded, nothing to do
	require.NoError(t, vest.ProcessLock(db, ember.AsUnixTime(start.AddDate(0, 0, 10))))
}
