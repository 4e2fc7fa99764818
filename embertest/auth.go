package embertest

import (
	"context"

	"github.com/emberfi/ember"
)

// Auth is a mock implementing the ember.Authenticator interface.
//
// This structure authenticates any of the referenced conditions. You can
// use either Signer or Signers (or both) attributes to reference
// conditions.
type Auth struct {
	// Signer represents an authentication of a single signer.
	Signer ember.Condition

	// Signers represents an authentication of multiple signers.
	Signers []ember.Condition
}

var _ ember.Authenticator = (*Auth)(nil)

func (a *Auth) GetConditions(ember.Context) []ember.Condition {
	if a.Signer != nil {
		return append(a.Signers, a.Signer)
	}
	return a.Signers
}

func (a *Auth) HasAddress(ctx ember.Context, addr ember.Address) bool {
	for _, s := range a.Signers {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	if a.Signer == nil {
		return false
	}
	return addr.Equals(a.Signer.Address())
}

type ctxAuthKey string

// CtxAuth is a mock implementing the ember.Authenticator interface that is
// using the context to store and retrieve permissions.
type CtxAuth struct {
	// Key used to set and retrieve conditions from the context.
	Key string
}

var _ ember.Authenticator = (*CtxAuth)(nil)

func (a *CtxAuth) SetConditions(ctx ember.Context, permissions ...ember.Condition) ember.Context {
	return context.WithValue(ctx, ctxAuthKey(a.Key), permissions)
}

func (a *CtxAuth) GetConditions(ctx ember.Context) []ember.Condition {
	val, ok := ctx.Value(ctxAuthKey(a.Key)).([]ember.Condition)
	if !ok {
		return nil
	}
	return val
}

func (a *CtxAuth) HasAddress(ctx ember.Context, addr ember.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
