package token

import (
	"github.com/emberfi/ember"
	"github.com/emberfi/ember/coin"
	"github.com/emberfi/ember/errors"
	"github.com/emberfi/ember/gconf"
	"github.com/emberfi/ember/x/cash"
	"github.com/emberfi/ember/x/redist"
	"github.com/emberfi/ember/x/vesting"
)

// Module accounts. Derived from conditions, no key controls them.
var (
	// LpPoolCondition guards the pool accruing LP reward fees.
	LpPoolCondition = ember.NewCondition("token", "pool", []byte("lp"))
	// BurnPoolCondition guards the pool accruing burn reward fees.
	BurnPoolCondition = ember.NewCondition("token", "pool", []byte("burn"))
	// SinkCondition guards the non recoverable burn sink.
	SinkCondition = ember.NewCondition("token", "sink", []byte("burn"))
)

// key holding the interceptor engine state
var stateKey = []byte("_token:state")

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r ember.Registry, auth ember.Authenticator, ctrl cash.Controller, weights redist.WeightSource) {
	r.Handle("token/send", NewSendHandler(auth, ctrl, weights))
	r.Handle("token/update_configuration", NewConfigHandler(auth))
}

// SendHandler intercepts every token transfer. Besides moving the net
// amount it applies sell fees, maintains the reward rosters, runs one of
// the two distributors and triggers the vesting release check.
//
// The handler is stateful: it refuses a call entering while another call
// is still being processed.
type SendHandler struct {
	auth     ember.Authenticator
	ctrl     cash.Controller
	weights  redist.WeightSource
	registry redist.HolderRegistry
	burns    redist.BurnLedger
	lpDist   *redist.Distributor
	burnDist *redist.Distributor
	vest     vesting.Controller
	inFlight bool
}

var _ ember.Handler = (*SendHandler)(nil)

// NewSendHandler creates a handler for SendMsg. The weight source is the
// view of the receipt token issued by the pair.
func NewSendHandler(auth ember.Authenticator, ctrl cash.Controller, weights redist.WeightSource) *SendHandler {
	registry := redist.NewHolderRegistry()
	burns := redist.NewBurnLedger()
	return &SendHandler{
		auth:     auth,
		ctrl:     ctrl,
		weights:  weights,
		registry: registry,
		burns:    burns,
		lpDist:   redist.NewDistributor("lp", registry, weights, LpPoolCondition.Address(), ctrl),
		burnDist: redist.NewDistributor("burn", burns, burns.Weights(), BurnPoolCondition.Address(), ctrl),
		vest:     vesting.NewController(ctrl),
	}
}

// Check verifies the message is properly formed and signed, and returns
// the cost of executing it.
func (h *SendHandler) Check(ctx ember.Context, store ember.KVStore, tx ember.Tx) (*ember.CheckResult, error) {
	var msg SendMsg
	if err := ember.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, msg.Src) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "account owner signature missing")
	}
	return &ember.CheckResult{GasAllocated: sendTxCost}, nil
}

// Deliver runs the full interception sequence. The caller must wrap this
// handler with the savepoint decorator so that a failing step discards
// every write, fee sub transfers included.
func (h *SendHandler) Deliver(ctx ember.Context, store ember.KVStore, tx ember.Tx) (*ember.DeliverResult, error) {
	if h.inFlight {
		return nil, errors.Wrap(errors.ErrReentrancy, "transfer in progress")
	}
	h.inFlight = true
	defer func() { h.inFlight = false }()

	var msg SendMsg
	if err := ember.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, msg.Src) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "account owner signature missing")
	}

	conf, err := loadConf(store)
	if err != nil {
		return nil, err
	}
	state, err := loadState(store)
	if err != nil {
		return nil, err
	}

	if err := h.registerHolders(store, conf, state, &msg); err != nil {
		return nil, err
	}

	net, err := h.applyFees(ctx, store, conf, &msg)
	if err != nil {
		return nil, err
	}

	if err := h.distribute(ctx, store, conf, state, &msg); err != nil {
		return nil, err
	}

	if err := saveState(store, state); err != nil {
		return nil, err
	}

	if err := h.ctrl.MoveCoins(store, msg.Src, msg.Dest, net); err != nil {
		return nil, errors.Wrap(err, "net transfer")
	}
	return &ember.DeliverResult{
		Tags: []ember.Tag{
			{Key: []byte("token:src"), Value: []byte(msg.Src.String())},
			{Key: []byte("token:dest"), Value: []byte(msg.Dest.String())},
		},
	}, nil
}

// registerHolders settles the candidate observed in the previous call and
// remembers the current sender when it sells. Registration of a pair
// counterparty is deferred one call so that the exchange settlement is
// complete before the weight check runs.
func (h *SendHandler) registerHolders(store ember.KVStore, conf *Configuration, state *EngineState, msg *SendMsg) error {
	if len(state.PendingHolder) != 0 {
		weight, err := h.weights.WeightOf(store, state.PendingHolder)
		if err != nil {
			return errors.Wrap(err, "pending holder weight")
		}
		if weight.IsPositive() {
			if err := h.registry.Add(store, state.PendingHolder, conf); err != nil {
				return errors.Wrap(err, "register holder")
			}
		}
		state.PendingHolder = nil
	}
	if msg.Dest.Equals(conf.Pair) {
		state.PendingHolder = msg.Src.Clone()
	}
	return nil
}

// applyFees carves the sell fee components out of the amount, forwards
// each to its destination and returns the net amount. Non sell transfers
// and transfers with a fee exempt party pass through untouched.
func (h *SendHandler) applyFees(ctx ember.Context, store ember.KVStore, conf *Configuration, msg *SendMsg) (coin.Amount, error) {
	class := conf.Classify(msg.Src, msg.Dest)
	if class != ClassSell || conf.IsFeeExempt(msg.Src) || conf.IsFeeExempt(msg.Dest) {
		return msg.Amount, nil
	}

	if !ember.IsExpired(ctx, conf.LaunchAt) {
		return 0, errors.Wrapf(errors.ErrExpired, "trading opens at %s", conf.LaunchAt)
	}
	if conf.IsContract(msg.Src) {
		return 0, errors.Wrap(errors.ErrUnauthorized, "contract accounts cannot sell")
	}

	fees, err := SplitFees(msg.Amount, class, conf)
	if err != nil {
		return 0, err
	}
	forwards := []struct {
		dest   ember.Address
		amount coin.Amount
	}{
		{LpPoolCondition.Address(), fees.Lp},
		{SinkCondition.Address(), fees.Burn},
		{BurnPoolCondition.Address(), fees.BurnLp},
		{conf.Treasury, fees.Fund},
	}
	for _, f := range forwards {
		if f.amount.IsZero() {
			continue
		}
		if err := h.ctrl.MoveCoins(store, msg.Src, f.dest, f.amount); err != nil {
			return 0, errors.Wrap(err, "fee transfer")
		}
	}
	if fees.Burn.IsPositive() {
		if err := h.burns.Record(store, msg.Src, fees.Burn); err != nil {
			return 0, errors.Wrap(err, "record burn")
		}
	}

	return fees.Net(msg.Amount)
}

// distribute runs one reward distributor and the vesting check. It is
// skipped when a party is fee exempt or the treasury itself is sending.
func (h *SendHandler) distribute(ctx ember.Context, store ember.KVStore, conf *Configuration, state *EngineState, msg *SendMsg) error {
	if conf.IsFeeExempt(msg.Src) || conf.IsFeeExempt(msg.Dest) || msg.Src.Equals(conf.Treasury) {
		return nil
	}

	var err error
	if state.Alternate {
		_, err = h.burnDist.Run(store, conf.IterationBudget, conf.BurnThreshold, 0, conf)
	} else {
		_, err = h.lpDist.Run(store, conf.IterationBudget, conf.LpThreshold, conf.MinHolderWeight, conf)
	}
	if err != nil {
		return errors.Wrap(err, "distributor run")
	}
	state.Alternate = !state.Alternate

	blockTime, err := ember.BlockTime(ctx)
	if err != nil {
		return errors.Wrap(err, "block time")
	}
	if err := h.vest.ProcessLock(store, ember.AsUnixTime(blockTime)); err != nil {
		return errors.Wrap(err, "vesting")
	}
	return nil
}

func loadState(db ember.ReadOnlyKVStore) (*EngineState, error) {
	raw, err := db.Get(stateKey)
	if err != nil {
		return nil, err
	}
	var state EngineState
	if raw != nil {
		if err := state.Unmarshal(raw); err != nil {
			return nil, errors.Wrap(err, "engine state")
		}
	}
	return &state, nil
}

func saveState(db ember.KVStore, state *EngineState) error {
	raw, err := state.Marshal()
	if err != nil {
		return err
	}
	return db.Set(stateKey, raw)
}

// NewConfigHandler returns the owner guarded configuration update handler.
func NewConfigHandler(auth ember.Authenticator) ember.Handler {
	var conf Configuration
	return gconf.NewUpdateConfigurationHandler("token", &conf, auth)
}
