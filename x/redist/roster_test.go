package redist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberfi/ember"
	"github.com/emberfi/ember/coin"
	"github.com/emberfi/ember/embertest"
	"github.com/emberfi/ember/store"
)

// fixedExcluder implements Excluder on static address lists.
type fixedExcluder struct {
	excluded  []ember.Address
	contracts []ember.Address
}

func (e fixedExcluder) IsExcluded(addr ember.Address) bool {
	return containsAddr(e.excluded, addr)
}

func (e fixedExcluder) IsContract(addr ember.Address) bool {
	return containsAddr(e.contracts, addr)
}

func containsAddr(set []ember.Address, addr ember.Address) bool {
	for _, a := range set {
		if a.Equals(addr) {
			return true
		}
	}
	return false
}

func TestHolderRegistryAdd(t *testing.T) {
	db := store.MemStore()
	registry := NewHolderRegistry()

	holder := embertest.NewAddress()
	excluded := embertest.NewAddress()
	contract := embertest.NewAddress()
	excl := fixedExcluder{
		excluded:  []ember.Address{excluded},
		contracts: []ember.Address{contract},
	}

	require.NoError(t, registry.Add(db, holder, excl))

	// adding the same account again must not create a second entry
	require.NoError(t, registry.Add(db, holder, excl))

	// excluded and contract accounts are silently skipped
	require.NoError(t, registry.Add(db, excluded, excl))
	require.NoError(t, registry.Add(db, contract, excl))

	length, err := registry.Length(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), length)

	got, err := registry.At(db, 1)
	require.NoError(t, err)
	assert.True(t, holder.Equals(got))

	is, err := registry.IsHolder(db, holder)
	require.NoError(t, err)
	assert.True(t, is)
	is, err = registry.IsHolder(db, excluded)
	require.NoError(t, err)
	assert.False(t, is)
}

func TestHolderRegistryPositionsAreStable(t *testing.T) {
	db := store.MemStore()
	registry := NewHolderRegistry()
	excl := fixedExcluder{}

	var addrs []ember.Address
	for i := 0; i < 5; i++ {
		addr := embertest.NewAddress()
		addrs = append(addrs, addr)
		require.NoError(t, registry.Add(db, addr, excl))
	}

	for i, addr := range addrs {
		got, err := registry.At(db, int64(i+1))
		require.NoError(t, err)
		assert.True(t, addr.Equals(got), "position %d", i+1)
	}
}

func TestBurnLedgerRecord(t *testing.T) {
	db := store.MemStore()
	ledger := NewBurnLedger()

	first := embertest.NewAddress()
	second := embertest.NewAddress()

	require.NoError(t, ledger.Record(db, first, 100))
	require.NoError(t, ledger.Record(db, second, 40))
	// repeated contribution accumulates, no second roster entry
	require.NoError(t, ledger.Record(db, first, 25))
	// zero contribution is ignored
	require.NoError(t, ledger.Record(db, first, 0))

	length, err := ledger.Length(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), length)

	got, err := ledger.Contribution(db, first)
	require.NoError(t, err)
	assert.Equal(t, coin.Amount(125), got)

	got, err = ledger.Contribution(db, second)
	require.NoError(t, err)
	assert.Equal(t, coin.Amount(40), got)

	// an account that never contributed weighs zero
	got, err = ledger.Contribution(db, embertest.NewAddress())
	require.NoError(t, err)
	assert.Equal(t, coin.Amount(0), got)

	total, err := ledger.TotalContributed(db)
	require.NoError(t, err)
	assert.Equal(t, coin.Amount(165), total)
}
