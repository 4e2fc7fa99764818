package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberfi/ember"
	"github.com/emberfi/ember/embertest"
	"github.com/emberfi/ember/errors"
	"github.com/emberfi/ember/store"
)

type countingHandler struct {
	called int
	err    error
}

func (h *countingHandler) Check(ember.Context, ember.KVStore, ember.Tx) (*ember.CheckResult, error) {
	h.called++
	return &ember.CheckResult{}, h.err
}

func (h *countingHandler) Deliver(ember.Context, ember.KVStore, ember.Tx) (*ember.DeliverResult, error) {
	h.called++
	return &ember.DeliverResult{}, h.err
}

func TestRouter(t *testing.T) {
	router := NewRouter()
	handler := &countingHandler{}
	router.Handle("test/good", handler)

	ctx := context.Background()
	db := store.MemStore()

	tx := &embertest.Tx{Msg: &embertest.Msg{RoutePath: "test/good"}}
	_, err := router.Deliver(ctx, db, tx)
	require.NoError(t, err)
	_, err = router.Check(ctx, db, tx)
	require.NoError(t, err)
	assert.Equal(t, 2, handler.called)

	// an unknown path is rejected, not panicking
	missing := &embertest.Tx{Msg: &embertest.Msg{RoutePath: "test/missing"}}
	_, err = router.Deliver(ctx, db, missing)
	assert.True(t, errors.ErrNotFound.Is(err), "unexpected error: %v", err)
}

func TestRouterDuplicatePathPanics(t *testing.T) {
	router := NewRouter()
	router.Handle("test/dup", &countingHandler{})
	assert.Panics(t, func() {
		router.Handle("test/dup", &countingHandler{})
	})
}

func TestRouterInvalidPathPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewRouter().Handle("not a path!", &countingHandler{})
	})
}
