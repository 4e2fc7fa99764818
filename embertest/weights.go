package embertest

import (
	"github.com/emberfi/ember"
	"github.com/emberfi/ember/coin"
)

// Weights is a mock implementing the redist.WeightSource interface with
// fixed in memory values. The interface is satisfied structurally, no
// import of the redist package here so that its own tests can use this
// double.
type Weights struct {
	// Accounts maps address strings to weights.
	Accounts map[string]coin.Amount
	// Total is the total issued weight. If zero, the sum of all account
	// weights is reported instead.
	Total coin.Amount
	// Err if set is returned by any method call.
	Err error
}

func (w *Weights) WeightOf(db ember.ReadOnlyKVStore, addr ember.Address) (coin.Amount, error) {
	if w.Err != nil {
		return 0, w.Err
	}
	return w.Accounts[addr.String()], nil
}

func (w *Weights) TotalWeight(db ember.ReadOnlyKVStore) (coin.Amount, error) {
	if w.Err != nil {
		return 0, w.Err
	}
	if w.Total != 0 {
		return w.Total, nil
	}
	var sum coin.Amount
	for _, weight := range w.Accounts {
		sum += weight
	}
	return sum, nil
}
