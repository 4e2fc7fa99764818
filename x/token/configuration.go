package token

import (
	"github.com/emberfi/ember"
	"github.com/emberfi/ember/errors"
	"github.com/emberfi/ember/gconf"
	"github.com/emberfi/ember/x/redist"
)

var _ gconf.OwnedConfig = (*Configuration)(nil)
var _ redist.Excluder = (*Configuration)(nil)

// Validate checks every field on its own. The sum of the four rates is not
// constrained; rates summing above 1000 make every sell fail when the net
// amount turns negative.
func (c *Configuration) Validate() error {
	if err := c.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner address")
	}
	if err := c.Pair.Validate(); err != nil {
		return errors.Wrap(err, "pair address")
	}
	if err := c.Treasury.Validate(); err != nil {
		return errors.Wrap(err, "treasury address")
	}
	rates := []struct {
		name string
		rate int32
	}{
		{"lp rate", c.LpRate},
		{"burn rate", c.BurnRate},
		{"burn lp rate", c.BurnLpRate},
		{"fund rate", c.FundRate},
	}
	for _, r := range rates {
		if r.rate < 0 || r.rate > 1000 {
			return errors.Wrapf(errors.ErrState, "%s outside [0, 1000]: %d", r.name, r.rate)
		}
	}
	if err := c.LaunchAt.Validate(); err != nil {
		return errors.Wrap(err, "launch time")
	}
	if err := c.LpThreshold.Validate(); err != nil {
		return errors.Wrap(err, "lp threshold")
	}
	if err := c.BurnThreshold.Validate(); err != nil {
		return errors.Wrap(err, "burn threshold")
	}
	if err := c.MinHolderWeight.Validate(); err != nil {
		return errors.Wrap(err, "min holder weight")
	}
	if c.IterationBudget < 1 {
		return errors.Wrap(errors.ErrState, "iteration budget must be positive")
	}
	for i, addr := range c.FeeExempt {
		if err := addr.Validate(); err != nil {
			return errors.Wrapf(err, "fee exempt #%d", i)
		}
	}
	for i, addr := range c.RewardExcluded {
		if err := addr.Validate(); err != nil {
			return errors.Wrapf(err, "reward excluded #%d", i)
		}
	}
	for i, addr := range c.Contracts {
		if err := addr.Validate(); err != nil {
			return errors.Wrapf(err, "contract #%d", i)
		}
	}
	return nil
}

// IsFeeExempt returns true if the account never pays transfer fees.
func (c *Configuration) IsFeeExempt(addr ember.Address) bool {
	return containsAddress(c.FeeExempt, addr)
}

// IsExcluded implements redist.Excluder.
func (c *Configuration) IsExcluded(addr ember.Address) bool {
	return containsAddress(c.RewardExcluded, addr)
}

// IsContract implements redist.Excluder.
func (c *Configuration) IsContract(addr ember.Address) bool {
	return containsAddress(c.Contracts, addr)
}

func containsAddress(set []ember.Address, addr ember.Address) bool {
	for _, a := range set {
		if a.Equals(addr) {
			return true
		}
	}
	return false
}

func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, "token", &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}
