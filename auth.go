package ember

// Authenticator tells us who is authorized to perform the action wrapped in
// the current context. Cryptographic signature checking happens outside of
// the engine; by the time a transaction reaches a handler the authenticated
// identities are attached to the context.
type Authenticator interface {
	// GetConditions returns all conditions authenticated on the context.
	GetConditions(Context) []Condition

	// HasAddress returns true iff the given address is authenticated on
	// the context.
	HasAddress(Context, Address) bool
}

// MainSigner returns the first authenticated identity, or nil if there is
// none. By convention this is the account paying for the action.
func MainSigner(ctx Context, auth Authenticator) Condition {
	signers := auth.GetConditions(ctx)
	if len(signers) == 0 {
		return nil
	}
	return signers[0]
}
