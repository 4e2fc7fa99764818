package vesting

import (
	"github.com/emberfi/ember"
	"github.com/emberfi/ember/calendar"
	"github.com/emberfi/ember/coin"
	"github.com/emberfi/ember/errors"
	"github.com/emberfi/ember/orm"
	"github.com/emberfi/ember/x/cash"
)

var (
	// key holding the release start time
	startKey = []byte("_vest:start")
	// key holding the elapsed day count of the last processed release
	elapsedKey = []byte("_vest:elapsed")
)

// PoolCondition guards the account funding all releases.
var PoolCondition = ember.NewCondition("vesting", "pool", []byte("locked"))

// Controller drives the day gated release of all allocations.
type Controller struct {
	bucket orm.Bucket
	ctrl   cash.Controller
	pool   ember.Address
}

// NewController returns a controller paying releases from the vesting pool
// account through the given cash controller.
func NewController(ctrl cash.Controller) Controller {
	return Controller{
		bucket: orm.NewBucket("vest", orm.NewSimpleObj(nil, &Allocation{})),
		ctrl:   ctrl,
		pool:   PoolCondition.Address(),
	}
}

// Pool returns the account releases are paid from.
func (c Controller) Pool() ember.Address {
	return c.pool
}

// Allocation returns the grant of a beneficiary, nil if it has none.
func (c Controller) Allocation(db ember.ReadOnlyKVStore, beneficiary ember.Address) (*Allocation, error) {
	obj, err := c.bucket.Get(db, beneficiary)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}
	return obj.Value().(*Allocation), nil
}

// ProcessLock runs one release check at the given ledger time. It is a
// no-op before the start time, and within a day that was already processed.
// Otherwise every allocation not fully released receives the difference
// between floor(total * min(elapsed, cycleDays) / cycleDays) and what was
// already released, paid from the vesting pool.
func (c Controller) ProcessLock(db ember.KVStore, now ember.UnixTime) error {
	start, err := c.loadMark(db, startKey)
	if err != nil {
		return err
	}
	if start == 0 || int64(now) < start {
		return nil
	}

	elapsed, err := calendar.DiffDays(ember.UnixTime(start).Time(), now.Time())
	if err != nil {
		return errors.Wrap(err, "elapsed days")
	}
	last, err := c.loadMark(db, elapsedKey)
	if err != nil {
		return err
	}
	if elapsed <= last {
		return nil
	}

	allocs, err := c.loadAll(db)
	if err != nil {
		return err
	}
	for _, a := range allocs {
		if a.Released >= a.Total {
			continue
		}
		capped := elapsed
		if capped > a.CycleDays {
			capped = a.CycleDays
		}
		target, err := coin.MulDiv(a.Total, coin.Amount(capped), coin.Amount(a.CycleDays))
		if err != nil {
			return errors.Wrap(err, "release target")
		}
		due, err := target.Subtract(a.Released)
		if err != nil {
			return err
		}
		if !due.IsPositive() {
			continue
		}
		if err := c.ctrl.MoveCoins(db, c.pool, a.Beneficiary, due); err != nil {
			return errors.Wrapf(err, "release to %s", a.Beneficiary)
		}
		a.Released = target
		if err := c.bucket.Save(db, orm.NewSimpleObj(a.Beneficiary, a)); err != nil {
			return err
		}
	}

	return db.Set(elapsedKey, orm.EncodeSequence(elapsed))
}

// loadAll collects every allocation before any mutation, so that writes do
// not race the open iterator.
func (c Controller) loadAll(db ember.KVStore) ([]*Allocation, error) {
	prefix := []byte("vest:")
	it, err := db.Iterator(prefix, prefixEnd(prefix))
	if err != nil {
		return nil, err
	}
	defer it.Release()

	var allocs []*Allocation
	for {
		_, value, err := it.Next()
		if errors.ErrIteratorDone.Is(err) {
			return allocs, nil
		}
		if err != nil {
			return nil, err
		}
		var a Allocation
		if err := a.Unmarshal(value); err != nil {
			return nil, errors.Wrap(err, "parse allocation")
		}
		allocs = append(allocs, &a)
	}
}

func (c Controller) loadMark(db ember.ReadOnlyKVStore, key []byte) (int64, error) {
	raw, err := db.Get(key)
	if err != nil {
		return 0, err
	}
	return orm.DecodeSequence(raw), nil
}

func (c Controller) setStart(db ember.KVStore, start ember.UnixTime) error {
	return db.Set(startKey, orm.EncodeSequence(int64(start)))
}

// prefixEnd returns the smallest key that is larger than every key with
// the given prefix.
func prefixEnd(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}
