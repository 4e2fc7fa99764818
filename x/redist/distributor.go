package redist

import (
	"github.com/emberfi/ember"
	"github.com/emberfi/ember/coin"
	"github.com/emberfi/ember/errors"
	"github.com/emberfi/ember/x/cash"
)

// Distributor pays accrued pool funds out to a roster population in
// weight-proportional shares. A run is bounded by an iteration budget and
// resumes from a persisted cursor, so the cost of a single run stays flat
// no matter how long the roster grows.
type Distributor struct {
	roster  Roster
	weights WeightSource
	pool    ember.Address
	cursor  Cursor
	ctrl    cash.Controller
}

// NewDistributor wires a distributor. The name keys the persisted cursor
// and must be unique among distributors sharing a kvstore.
func NewDistributor(name string, roster Roster, weights WeightSource, pool ember.Address, ctrl cash.Controller) *Distributor {
	return &Distributor{
		roster:  roster,
		weights: weights,
		pool:    pool,
		cursor:  NewCursor(name),
		ctrl:    ctrl,
	}
}

// Pool returns the address funds are paid from.
func (d *Distributor) Pool() ember.Address {
	return d.pool
}

// Run performs one bounded distribution round. It visits at most budget
// accounts, never more than one full roster pass, starting at the persisted
// cursor. Each visited account that is not excluded and meets the minimum
// weight receives floor(payable * weight / totalWeight) where payable is
// the pool balance capped at threshold. The cursor advances per visited
// account regardless of payout outcome.
//
// An empty roster, a zero total weight or a pool balance below threshold
// make the run a silent no-op. Run returns the number of visited accounts.
func (d *Distributor) Run(db ember.KVStore, budget int64, threshold, minWeight coin.Amount, excl Excluder) (int64, error) {
	if budget <= 0 {
		return 0, nil
	}

	length, err := d.roster.Length(db)
	if err != nil {
		return 0, err
	}
	if length == 0 {
		return 0, nil
	}

	total, err := d.weights.TotalWeight(db)
	if err != nil {
		return 0, err
	}
	if !total.IsPositive() {
		return 0, nil
	}

	balance, err := d.ctrl.Balance(db, d.pool)
	if err != nil && !errors.ErrNotFound.Is(err) {
		return 0, err
	}
	if balance < threshold || !balance.IsPositive() {
		return 0, nil
	}
	payable := coin.Min(balance, threshold)

	cur, err := d.cursor.Get(db)
	if err != nil {
		return 0, err
	}
	if cur < 0 || cur >= length {
		cur = 0
	}

	steps := budget
	if steps > length {
		steps = length
	}

	var visited int64
	for ; visited < steps; visited++ {
		addr, err := d.roster.At(db, cur+1)
		if err != nil {
			return visited, err
		}
		cur = (cur + 1) % length

		if excl.IsExcluded(addr) {
			continue
		}
		weight, err := d.weights.WeightOf(db, addr)
		if err != nil {
			return visited, err
		}
		if !weight.IsPositive() || weight < minWeight {
			continue
		}
		share, err := coin.MulDiv(payable, weight, total)
		if err != nil {
			return visited, err
		}
		if !share.IsPositive() {
			continue
		}
		if err := d.ctrl.MoveCoins(db, d.pool, addr, share); err != nil {
			return visited, err
		}
	}

	return visited, d.cursor.Set(db, cur)
}
