package app

import (
	"fmt"
	"regexp"

	"github.com/emberfi/ember"
	"github.com/emberfi/ember/errors"
)

// RouterKeyFormat describes allowed message paths.
var isPath = regexp.MustCompile(`^[a-zA-Z0-9_/]+$`).MatchString

// Router allows us to register many handlers with different paths and then
// direct each message to the proper handler.
//
// Minimal interface modeled after net/http.ServeMux.
type Router struct {
	routes map[string]ember.Handler
}

var _ ember.Registry = (*Router)(nil)
var _ ember.Handler = (*Router)(nil)

// NewRouter initializes a router with no routes.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]ember.Handler),
	}
}

// Handle adds a new handler for the given path. Panics on duplicate or
// invalid path to ensure misconfiguration dies loud at startup.
func (r *Router) Handle(path string, h ember.Handler) {
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %s", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.routes[path] = h
}

// handler returns the registered Handler for this path. If no path is found,
// returns a noSuchPathHandler.
func (r *Router) handler(tx ember.Tx) ember.Handler {
	path := ember.GetPath(tx)
	if h, ok := r.routes[path]; ok {
		return h
	}
	return noSuchPathHandler{path}
}

// Check dispatches to the proper handler based on path.
func (r *Router) Check(ctx ember.Context, store ember.KVStore, tx ember.Tx) (*ember.CheckResult, error) {
	return r.handler(tx).Check(ctx, store, tx)
}

// Deliver dispatches to the proper handler based on path.
func (r *Router) Deliver(ctx ember.Context, store ember.KVStore, tx ember.Tx) (*ember.DeliverResult, error) {
	return r.handler(tx).Deliver(ctx, store, tx)
}

type noSuchPathHandler struct {
	path string
}

var _ ember.Handler = noSuchPathHandler{}

func (h noSuchPathHandler) Check(ember.Context, ember.KVStore, ember.Tx) (*ember.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", h.path)
}

func (h noSuchPathHandler) Deliver(ember.Context, ember.KVStore, ember.Tx) (*ember.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", h.path)
}
