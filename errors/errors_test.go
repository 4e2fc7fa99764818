package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIs(t *testing.T) {
	wrapped := Wrap(ErrNotFound, "wallet")
	doubly := Wrap(wrapped, "load state")

	assert.True(t, ErrNotFound.Is(wrapped))
	assert.True(t, ErrNotFound.Is(doubly))
	assert.False(t, ErrUnauthorized.Is(doubly))
	assert.False(t, ErrNotFound.Is(stderrors.New("not found")))
	assert.False(t, ErrNotFound.Is(nil))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "whatever"))
	assert.Nil(t, Wrapf(nil, "whatever %d", 42))
}

func TestWrapMessage(t *testing.T) {
	err := Wrap(ErrAmount, "fee component")
	assert.Equal(t, "fee component: invalid amount", err.Error())
}

func TestStdlibUnwrap(t *testing.T) {
	err := Wrap(ErrState, "engine")
	assert.True(t, stderrors.Is(err, ErrState))
}

func TestRecover(t *testing.T) {
	fn := func() (err error) {
		defer Recover(&err)
		panic("worker exploded")
	}
	err := fn()
	assert.True(t, ErrPanic.Is(err))
	assert.Contains(t, err.Error(), "worker exploded")
}
