package token

import (
	"github.com/emberfi/ember"
	"github.com/emberfi/ember/errors"
)

var _ ember.Msg = (*SendMsg)(nil)
var _ ember.Msg = (*UpdateConfigurationMsg)(nil)

const (
	sendTxCost int64 = 100

	maxMemoSize = 128
)

// Path returns the routing path for this message.
func (SendMsg) Path() string {
	return "token/send"
}

// Validate makes sure that this is sensible.
func (m *SendMsg) Validate() error {
	if err := m.Src.Validate(); err != nil {
		return errors.Wrap(err, "src")
	}
	if err := m.Dest.Validate(); err != nil {
		return errors.Wrap(err, "dest")
	}
	if !m.Amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive amount: %d", m.Amount)
	}
	if len(m.Memo) > maxMemoSize {
		return errors.Wrap(errors.ErrState, "memo too long")
	}
	return nil
}

// Path returns the routing path for this message.
func (UpdateConfigurationMsg) Path() string {
	return "token/update_configuration"
}

// Validate only requires a patch to be present. Field checks run against
// the patched configuration, not the sparse patch.
func (m *UpdateConfigurationMsg) Validate() error {
	if m.Patch == nil {
		return errors.Wrap(errors.ErrEmpty, "patch")
	}
	return nil
}
