package redist

import (
	"github.com/emberfi/ember"
	"github.com/emberfi/ember/orm"
)

// Excluder reports accounts that must stay out of the reward population.
// The token extension implements it on top of its configuration sets.
type Excluder interface {
	// IsExcluded returns true for accounts barred from receiving rewards.
	IsExcluded(addr ember.Address) bool
	// IsContract returns true for accounts flagged as bearing executable
	// code. Such accounts are never registered as holders.
	IsContract(addr ember.Address) bool
}

// HolderRegistry is the append-only roster of accounts ever observed
// holding weight in the receipt token. Accounts are appended lazily by the
// transfer path and never removed; exclusion is re-checked at payout time
// instead.
type HolderRegistry struct {
	r roster
}

// NewHolderRegistry returns a registry backed by the "holder" bucket.
func NewHolderRegistry() HolderRegistry {
	return HolderRegistry{r: newRoster("holder", orm.NewSimpleObj(nil, &HolderInfo{}))}
}

// Add appends the account to the roster. It is a no-op if the account is
// already registered, excluded from rewards or flagged as a contract.
func (h HolderRegistry) Add(db ember.KVStore, addr ember.Address, excl Excluder) error {
	if err := addr.Validate(); err != nil {
		return err
	}
	if excl.IsExcluded(addr) || excl.IsContract(addr) {
		return nil
	}
	pos, err := h.r.position(db, addr)
	if err != nil {
		return err
	}
	if pos > 0 {
		return nil
	}
	_, err = h.r.append(db, addr, &HolderInfo{Address: addr.Clone()})
	return err
}

// IsHolder returns true if the account was ever appended.
func (h HolderRegistry) IsHolder(db ember.ReadOnlyKVStore, addr ember.Address) (bool, error) {
	pos, err := h.r.position(db, addr)
	return pos > 0, err
}

// Length implements Roster.
func (h HolderRegistry) Length(db ember.ReadOnlyKVStore) (int64, error) {
	return h.r.length(db)
}

// At implements Roster.
func (h HolderRegistry) At(db ember.ReadOnlyKVStore, pos int64) (ember.Address, error) {
	obj, err := h.r.at(db, pos)
	if err != nil {
		return nil, err
	}
	return obj.Value().(*HolderInfo).Address, nil
}
