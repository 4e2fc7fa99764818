package cash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberfi/ember"
	"github.com/emberfi/ember/coin"
	"github.com/emberfi/ember/embertest"
	"github.com/emberfi/ember/errors"
	"github.com/emberfi/ember/store"
)

func TestIssueCoins(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController(NewBucket())

	addr := embertest.NewAddress()
	addr2 := embertest.NewAddress()

	require.NoError(t, ctrl.IssueCoins(db, addr, 500))
	require.NoError(t, ctrl.IssueCoins(db, addr, 120))
	require.NoError(t, ctrl.IssueCoins(db, addr2, 80))

	assertBalance(t, ctrl, db, addr, 620)
	assertBalance(t, ctrl, db, addr2, 80)

	supply, err := ctrl.TotalSupply(db)
	require.NoError(t, err)
	assert.Equal(t, coin.Amount(700), supply)

	err = ctrl.IssueCoins(db, addr, 0)
	assert.True(t, errors.ErrAmount.Is(err), "unexpected error: %v", err)
}

func TestBurnCoins(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController(NewBucket())

	addr := embertest.NewAddress()
	require.NoError(t, ctrl.IssueCoins(db, addr, 500))

	require.NoError(t, ctrl.BurnCoins(db, addr, 200))
	assertBalance(t, ctrl, db, addr, 300)

	supply, err := ctrl.TotalSupply(db)
	require.NoError(t, err)
	assert.Equal(t, coin.Amount(300), supply)

	// cannot burn more than held
	err = ctrl.BurnCoins(db, addr, 301)
	assert.True(t, errors.ErrAmount.Is(err), "unexpected error: %v", err)

	// cannot burn from a wallet that was never funded
	err = ctrl.BurnCoins(db, embertest.NewAddress(), 1)
	assert.True(t, errors.ErrNotFound.Is(err), "unexpected error: %v", err)
}

func TestMoveCoins(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController(NewBucket())

	addr := embertest.NewAddress()
	addr2 := embertest.NewAddress()
	addr3 := embertest.NewAddress()

	require.NoError(t, ctrl.IssueCoins(db, addr, 1000))

	// plain move
	require.NoError(t, ctrl.MoveCoins(db, addr, addr2, 300))
	assertBalance(t, ctrl, db, addr, 700)
	assertBalance(t, ctrl, db, addr2, 300)

	// insufficient funds
	err := ctrl.MoveCoins(db, addr2, addr3, 301)
	assert.True(t, errors.ErrAmount.Is(err), "unexpected error: %v", err)

	// missing source wallet
	err = ctrl.MoveCoins(db, addr3, addr, 1)
	assert.True(t, errors.ErrNotFound.Is(err), "unexpected error: %v", err)

	// non-positive amount
	err = ctrl.MoveCoins(db, addr, addr2, 0)
	assert.True(t, errors.ErrAmount.Is(err), "unexpected error: %v", err)

	// self transfer is a validated no-op
	require.NoError(t, ctrl.MoveCoins(db, addr, addr, 100))
	assertBalance(t, ctrl, db, addr, 700)

	// supply is unchanged by moves
	supply, err := ctrl.TotalSupply(db)
	require.NoError(t, err)
	assert.Equal(t, coin.Amount(1000), supply)
}

func TestBalanceMissingWallet(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController(NewBucket())

	_, err := ctrl.Balance(db, embertest.NewAddress())
	assert.True(t, errors.ErrNotFound.Is(err), "unexpected error: %v", err)
}

func assertBalance(t testing.TB, ctrl Controller, db ember.ReadOnlyKVStore, addr ember.Address, want coin.Amount) {
	t.Helper()
	got, err := ctrl.Balance(db, addr)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
