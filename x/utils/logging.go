package utils

import (
	"time"

	"github.com/emberfi/ember"
)

// Logging is a decorator to log messages as they pass through.
type Logging struct{}

var _ ember.Decorator = Logging{}

// NewLogging creates a Logging decorator.
func NewLogging() Logging {
	return Logging{}
}

// Check logs error -> warn, success -> debug.
func (r Logging) Check(ctx ember.Context, store ember.KVStore, tx ember.Tx, next ember.Checker) (*ember.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, tx, start, resLog, err, true)
	return res, err
}

// Deliver logs error -> warn, success -> info.
func (r Logging) Deliver(ctx ember.Context, store ember.KVStore, tx ember.Tx, next ember.Deliverer) (*ember.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, tx, start, resLog, err, false)
	return res, err
}

// logDuration writes information about the time and result to the logger.
func logDuration(ctx ember.Context, tx ember.Tx, start time.Time, msg string, err error, lowPrio bool) {
	delta := time.Since(start)
	logger := ember.GetLogger(ctx).With(
		"path", ember.GetPath(tx),
		"duration", delta/time.Microsecond,
	)

	// Although message can be empty, we still want to emit a log entry
	// because it contains other relevant information beside the message.
	switch {
	case err != nil:
		logger.Warn(msg, "err", err)
	case lowPrio:
		logger.Debug(msg)
	default:
		logger.Info(msg)
	}
}
