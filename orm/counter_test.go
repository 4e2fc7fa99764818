package orm

import (
	"github.com/emberfi/ember/errors"
)

// Counter is a minimal CloneableData implementation backing the package
// tests. It stores a single integer as 8 big-endian bytes.
type Counter struct {
	Count int64
}

var _ CloneableData = (*Counter)(nil)

func (c *Counter) Marshal() ([]byte, error) {
	return EncodeSequence(c.Count), nil
}

func (c *Counter) Unmarshal(raw []byte) error {
	if len(raw) != 8 {
		return errors.Wrapf(errors.ErrInput, "invalid length: %d", len(raw))
	}
	c.Count = DecodeSequence(raw)
	return nil
}

func (c *Counter) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrState, "negative counter")
	}
	return nil
}

func (c *Counter) Copy() CloneableData {
	return &Counter{Count: c.Count}
}
