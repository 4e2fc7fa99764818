package bech32

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	payload := bytes.Repeat([]byte{0xab, 0x12}, 10)

	enc, err := Encode("ember", payload)
	require.NoError(t, err)

	hrp, got, err := Decode(enc)
	require.NoError(t, err)
	assert.Equal(t, "ember", hrp)
	assert.Equal(t, payload, got)
}

func TestDecodeGarbage(t *testing.T) {
	_, _, err := Decode("notbech32atall")
	assert.Error(t, err)
}
