package token

import (
	"github.com/emberfi/ember"
	"github.com/emberfi/ember/coin"
	"github.com/emberfi/ember/errors"
	"github.com/emberfi/ember/gconf"
	"github.com/emberfi/ember/x/cash"
)

// Initializer fulfils the Initializer interface to load the token
// configuration and mint the initial supply from genesis.
type Initializer struct{}

var _ ember.Initializer = (*Initializer)(nil)

// FromGenesis stores the configuration singleton and issues the initial
// supply to the configuration owner.
func (Initializer) FromGenesis(opts ember.Options, db ember.KVStore) error {
	var conf Configuration
	if err := gconf.InitConfig(db, opts, "token", &conf); err != nil {
		return err
	}

	var token struct {
		InitialSupply coin.Amount `json:"initial_supply"`
	}
	if err := opts.ReadOptions("token", &token); err != nil {
		return errors.Wrap(err, "cannot load token options")
	}
	if token.InitialSupply.IsZero() {
		return nil
	}
	ctrl := cash.NewController(cash.NewBucket())
	return ctrl.IssueCoins(db, conf.Owner, token.InitialSupply)
}
