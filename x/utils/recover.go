package utils

import (
	"github.com/emberfi/ember"
	"github.com/emberfi/ember/errors"
)

// Recovery is a decorator to recover from panics in transactions, so we can
// return them as normal errors.
type Recovery struct{}

var _ ember.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator.
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors.
func (r Recovery) Check(ctx ember.Context, store ember.KVStore, tx ember.Tx, next ember.Checker) (_ *ember.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, store, tx)
}

// Deliver turns panics into normal errors.
func (r Recovery) Deliver(ctx ember.Context, store ember.KVStore, tx ember.Tx, next ember.Deliverer) (_ *ember.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, store, tx)
}
