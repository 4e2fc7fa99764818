package vesting

import (
	"github.com/emberfi/ember"
	"github.com/emberfi/ember/coin"
	"github.com/emberfi/ember/errors"
	"github.com/emberfi/ember/orm"
	"github.com/emberfi/ember/x/cash"
)

// Initializer fulfils the Initializer interface to seed the allocation
// roster from genesis. The roster is fixed afterwards, there is no message
// to add or change allocations.
type Initializer struct{}

var _ ember.Initializer = (*Initializer)(nil)

// FromGenesis parses the vesting options, stores the start time and every
// allocation, and mints the sum of all grants into the vesting pool.
func (Initializer) FromGenesis(opts ember.Options, db ember.KVStore) error {
	var conf struct {
		Start       ember.UnixTime `json:"start"`
		Allocations []struct {
			Beneficiary ember.Address `json:"beneficiary"`
			Total       coin.Amount   `json:"total"`
			CycleDays   int64         `json:"cycle_days"`
		} `json:"allocations"`
	}
	if err := opts.ReadOptions("vesting", &conf); err != nil {
		return errors.Wrap(err, "cannot load vesting options")
	}
	if len(conf.Allocations) == 0 {
		return nil
	}
	if err := conf.Start.Validate(); err != nil {
		return errors.Wrap(err, "start time")
	}

	ctrl := NewController(cash.NewController(cash.NewBucket()))
	if err := ctrl.setStart(db, conf.Start); err != nil {
		return err
	}

	var locked coin.Amount
	for i, row := range conf.Allocations {
		a := Allocation{
			Beneficiary: row.Beneficiary,
			Total:       row.Total,
			CycleDays:   row.CycleDays,
		}
		if err := ctrl.bucket.Save(db, orm.NewSimpleObj(a.Beneficiary, &a)); err != nil {
			return errors.Wrapf(err, "allocation #%d", i)
		}
		var err error
		if locked, err = locked.Add(a.Total); err != nil {
			return errors.Wrapf(err, "allocation #%d total", i)
		}
	}

	return ctrl.ctrl.IssueCoins(db, ctrl.pool, locked)
}
