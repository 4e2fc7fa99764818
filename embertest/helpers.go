package embertest

import (
	"crypto/rand"
	"fmt"

	"github.com/emberfi/ember"
)

// NewCondition returns a random test condition. Each call returns a unique
// one.
func NewCondition() ember.Condition {
	data := make([]byte, 16)
	if _, err := rand.Read(data); err != nil {
		panic(fmt.Sprintf("cannot read random data: %s", err))
	}
	return ember.NewCondition("test", "rnd", data)
}

// NewAddress returns a random test address.
func NewAddress() ember.Address {
	return NewCondition().Address()
}
