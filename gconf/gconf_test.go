package gconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberfi/ember/errors"
	"github.com/emberfi/ember/store"
)

type confMock struct {
	Raw      string
	ValidErr error
}

func (c *confMock) Marshal() ([]byte, error) {
	return []byte(c.Raw), nil
}

func (c *confMock) Unmarshal(raw []byte) error {
	c.Raw = string(raw)
	return nil
}

func (c *confMock) Validate() error {
	return c.ValidErr
}

func TestSaveLoad(t *testing.T) {
	db := store.MemStore()

	src := &confMock{Raw: "foobar"}
	require.NoError(t, Save(db, "mypkg", src))

	var dst confMock
	require.NoError(t, Load(db, "mypkg", &dst))
	assert.Equal(t, "foobar", dst.Raw)

	// configurations are namespaced by package
	err := Load(db, "otherpkg", &dst)
	assert.True(t, errors.ErrNotFound.Is(err), "unexpected error: %v", err)
}

func TestSaveRejectsInvalid(t *testing.T) {
	db := store.MemStore()

	src := &confMock{Raw: "x", ValidErr: errors.ErrState}
	err := Save(db, "mypkg", src)
	assert.True(t, errors.ErrState.Is(err), "unexpected error: %v", err)
}
