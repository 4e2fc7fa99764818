package redist

import (
	"github.com/emberfi/ember"
	"github.com/emberfi/ember/coin"
	"github.com/emberfi/ember/orm"
)

// key holding the sum of all recorded burn contributions
var burnTotalKey = []byte("_burn:total")

// BurnLedger is the append-only roster of accounts that routed tokens into
// the burn sink, with the accumulated contribution per account and a global
// running total. Contributions only ever grow.
type BurnLedger struct {
	r roster
}

// NewBurnLedger returns a ledger backed by the "burner" bucket.
func NewBurnLedger() BurnLedger {
	return BurnLedger{r: newRoster("burner", orm.NewSimpleObj(nil, &BurnInfo{}))}
}

// Record accounts a contribution. The first contribution of an account
// appends it to the roster; every contribution increments the per-account
// amount and the global total.
func (b BurnLedger) Record(db ember.KVStore, addr ember.Address, amount coin.Amount) error {
	if err := addr.Validate(); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return nil
	}

	pos, err := b.r.position(db, addr)
	if err != nil {
		return err
	}
	if pos == 0 {
		if _, err := b.r.append(db, addr, &BurnInfo{Address: addr.Clone(), Contributed: amount}); err != nil {
			return err
		}
	} else {
		obj, err := b.r.at(db, pos)
		if err != nil {
			return err
		}
		info := obj.Value().(*BurnInfo)
		info.Contributed, err = info.Contributed.Add(amount)
		if err != nil {
			return err
		}
		if err := b.r.save(db, pos, info); err != nil {
			return err
		}
	}

	total, err := b.TotalContributed(db)
	if err != nil {
		return err
	}
	total, err = total.Add(amount)
	if err != nil {
		return err
	}
	return db.Set(burnTotalKey, orm.EncodeSequence(int64(total)))
}

// Contribution returns the accumulated contribution of an account, zero if
// it never contributed.
func (b BurnLedger) Contribution(db ember.ReadOnlyKVStore, addr ember.Address) (coin.Amount, error) {
	pos, err := b.r.position(db, addr)
	if err != nil || pos == 0 {
		return 0, err
	}
	obj, err := b.r.at(db, pos)
	if err != nil {
		return 0, err
	}
	return obj.Value().(*BurnInfo).Contributed, nil
}

// TotalContributed returns the sum of all recorded contributions.
func (b BurnLedger) TotalContributed(db ember.ReadOnlyKVStore) (coin.Amount, error) {
	raw, err := db.Get(burnTotalKey)
	if err != nil {
		return 0, err
	}
	return coin.Amount(orm.DecodeSequence(raw)), nil
}

// Length implements Roster.
func (b BurnLedger) Length(db ember.ReadOnlyKVStore) (int64, error) {
	return b.r.length(db)
}

// At implements Roster.
func (b BurnLedger) At(db ember.ReadOnlyKVStore, pos int64) (ember.Address, error) {
	obj, err := b.r.at(db, pos)
	if err != nil {
		return nil, err
	}
	return obj.Value().(*BurnInfo).Address, nil
}

// Weights exposes the ledger as a weight source where an account weighs its
// recorded contribution and the denominator is the global total.
func (b BurnLedger) Weights() WeightSource {
	return burnWeights{ledger: b}
}

type burnWeights struct {
	ledger BurnLedger
}

func (w burnWeights) WeightOf(db ember.ReadOnlyKVStore, addr ember.Address) (coin.Amount, error) {
	return w.ledger.Contribution(db, addr)
}

func (w burnWeights) TotalWeight(db ember.ReadOnlyKVStore) (coin.Amount, error) {
	return w.ledger.TotalContributed(db)
}
