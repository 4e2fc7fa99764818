package cash

import (
	"github.com/emberfi/ember"
	"github.com/emberfi/ember/coin"
	"github.com/emberfi/ember/errors"
)

// Initializer fulfils the Initializer interface to load initial wallets from
// genesis file.
type Initializer struct{}

var _ ember.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial account balances from genesis and issue the
// funds, so the initial supply matches the sum of all wallets.
func (Initializer) FromGenesis(opts ember.Options, db ember.KVStore) error {
	accounts := []struct {
		Address ember.Address `json:"address"`
		Balance coin.Amount   `json:"balance"`
	}{}
	if err := opts.ReadOptions("cash", &accounts); err != nil {
		return errors.Wrap(err, "cannot load cash options")
	}

	ctrl := NewController(NewBucket())
	for i, acc := range accounts {
		if err := acc.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account #%d address", i)
		}
		if acc.Balance.IsZero() {
			continue
		}
		if err := ctrl.IssueCoins(db, acc.Address, acc.Balance); err != nil {
			return errors.Wrapf(err, "account #%d issue", i)
		}
	}
	return nil
}
