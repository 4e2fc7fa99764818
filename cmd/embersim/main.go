// Command embersim runs the token engine against an in memory store,
// simulating market activity day by day on a fake clock. It prints how the
// sell fees accrue, how the two reward pools pay out and how the vesting
// allocations release over time.
package main

import (
	stdcontext "context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/lmittmann/tint"
	flag "github.com/spf13/pflag"

	"github.com/emberfi/ember"
	"github.com/emberfi/ember/app"
	"github.com/emberfi/ember/bech32"
	"github.com/emberfi/ember/coin"
	"github.com/emberfi/ember/store"
	"github.com/emberfi/ember/x/cash"
	"github.com/emberfi/ember/x/redist"
	"github.com/emberfi/ember/x/token"
	"github.com/emberfi/ember/x/utils"
	"github.com/emberfi/ember/x/vesting"
)

func main() {
	var (
		days    = flag.Int("days", 30, "number of simulated days")
		sells   = flag.Int("sells", 5, "sell transfers per day")
		traders = flag.Int("traders", 12, "number of trading accounts")
		seed    = flag.Int64("seed", 42, "random source seed")
		verbose = flag.Bool("verbose", false, "log every transfer")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	}))

	if err := run(logger, *days, *sells, *traders, *seed); err != nil {
		logger.Error("simulation failed", "err", err)
		os.Exit(1)
	}
}

type sim struct {
	logger  *slog.Logger
	clock   clockwork.FakeClock
	db      ember.CacheableKVStore
	handler ember.Handler
	ctrl    cash.Controller
	vest    vesting.Controller
	rnd     *rand.Rand

	owner    ember.Address
	pair     ember.Address
	treasury ember.Address
	traders  []ember.Address
}

func run(logger *slog.Logger, days, sells, traders int, seed int64) error {
	launch := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	s := &sim{
		logger:   logger,
		clock:    clockwork.NewFakeClockAt(launch),
		db:       store.MemStore(),
		ctrl:     cash.NewController(cash.NewBucket()),
		vest:     vesting.NewController(cash.NewController(cash.NewBucket())),
		rnd:      rand.New(rand.NewSource(seed)),
		owner:    ember.NewCondition("sim", "account", []byte("owner")).Address(),
		pair:     ember.NewCondition("sim", "account", []byte("pair")).Address(),
		treasury: ember.NewCondition("sim", "account", []byte("treasury")).Address(),
	}
	for i := 0; i < traders; i++ {
		addr := ember.NewCondition("sim", "trader", []byte{byte(i)}).Address()
		s.traders = append(s.traders, addr)
	}

	if err := s.genesis(launch); err != nil {
		return fmt.Errorf("genesis: %w", err)
	}
	s.buildStack()

	for day := 1; day <= days; day++ {
		s.clock.Advance(24 * time.Hour)
		for i := 0; i < sells; i++ {
			if err := s.oneSell(); err != nil {
				return fmt.Errorf("day %d: %w", day, err)
			}
		}
		s.report(day)
	}
	return nil
}

// genesis seeds configuration, balances, receipt weights and vesting rows
// the same way a deployment genesis file would.
func (s *sim) genesis(launch time.Time) error {
	receipts := redist.NewReceiptBook()
	for _, addr := range s.traders {
		weight := coin.Amount(1000 + s.rnd.Int63n(9000))
		if err := receipts.SetWeight(s.db, addr, weight); err != nil {
			return err
		}
	}

	conf := map[string]interface{}{
		"owner":             s.owner,
		"pair":              s.pair,
		"treasury":          s.treasury,
		"lp_rate":           20,
		"burn_rate":         5,
		"burn_lp_rate":      20,
		"fund_rate":         15,
		"launch_at":         launch.Unix(),
		"lp_threshold":      500,
		"burn_threshold":    500,
		"min_holder_weight": 100,
		"iteration_budget":  4,
	}

	accounts := []map[string]interface{}{
		{"address": s.pair, "balance": 10_000_000},
	}
	for _, addr := range s.traders {
		accounts = append(accounts, map[string]interface{}{
			"address": addr, "balance": 100_000,
		})
	}

	allocations := []map[string]interface{}{}
	for i, addr := range s.traders[:3] {
		allocations = append(allocations, map[string]interface{}{
			"beneficiary": addr,
			"total":       (i + 1) * 30_000,
			"cycle_days":  30,
		})
	}

	opts, err := buildOptions(map[string]interface{}{
		"conf":    map[string]interface{}{"token": conf},
		"token":   map[string]interface{}{"initial_supply": 1_000_000},
		"cash":    accounts,
		"vesting": map[string]interface{}{"start": launch.Unix(), "allocations": allocations},
	})
	if err != nil {
		return err
	}

	inits := []ember.Initializer{
		token.Initializer{},
		cash.Initializer{},
		vesting.Initializer{},
	}
	for _, init := range inits {
		if err := init.FromGenesis(opts, s.db); err != nil {
			return err
		}
	}
	return nil
}

func (s *sim) buildStack() {
	router := app.NewRouter()
	auth := openAuth{}
	weights := redist.NewReceiptBook()
	token.RegisterRoutes(router, auth, s.ctrl, weights)

	s.handler = app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewSavepoint().OnDeliver(),
	).WithHandler(router)
}

func (s *sim) oneSell() error {
	src := s.traders[s.rnd.Intn(len(s.traders))]
	amount := coin.Amount(500 + s.rnd.Int63n(4500))

	balance, err := s.ctrl.Balance(s.db, src)
	if err != nil || balance < amount {
		return nil
	}

	ctx := ember.WithBlockTime(ember.WithLogger(baseContext(), s.logger), s.clock.Now())
	tx := &simTx{msg: &token.SendMsg{Src: src, Dest: s.pair, Amount: amount}}
	if _, err := s.handler.Deliver(ctx, s.db, tx); err != nil {
		return err
	}
	s.logger.Debug("sell", "src", pretty(src), "amount", amount)
	return nil
}

func (s *sim) report(day int) {
	lpPool, _ := s.ctrl.Balance(s.db, token.LpPoolCondition.Address())
	burnPool, _ := s.ctrl.Balance(s.db, token.BurnPoolCondition.Address())
	sink, _ := s.ctrl.Balance(s.db, token.SinkCondition.Address())
	treasury, _ := s.ctrl.Balance(s.db, s.treasury)
	vestPool, _ := s.ctrl.Balance(s.db, s.vest.Pool())

	s.logger.Info("day closed",
		"day", day,
		"lp_pool", lpPool,
		"burn_pool", burnPool,
		"sink", sink,
		"treasury", treasury,
		"vesting_pool", vestPool,
	)
}

// pretty renders an address in its bech32 form for log output.
func pretty(addr ember.Address) string {
	enc, err := bech32.Encode("ember", addr)
	if err != nil {
		return addr.String()
	}
	return enc
}

func buildOptions(src map[string]interface{}) (ember.Options, error) {
	opts := ember.Options{}
	for key, value := range src {
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("marshal %q: %w", key, err)
		}
		opts[key] = raw
	}
	return opts, nil
}

func baseContext() ember.Context {
	return ember.WithChainID(stdcontext.Background(), "embersim")
}

// openAuth authorizes everyone. The simulator does not exercise signature
// checks.
type openAuth struct{}

func (openAuth) GetConditions(ember.Context) []ember.Condition { return nil }
func (openAuth) HasAddress(ember.Context, ember.Address) bool  { return true }

type simTx struct {
	msg ember.Msg
}

func (tx *simTx) GetMsg() (ember.Msg, error) { return tx.msg, nil }
func (tx *simTx) Marshal() ([]byte, error)   { return nil, nil }
func (tx *simTx) Unmarshal([]byte) error     { return nil }
