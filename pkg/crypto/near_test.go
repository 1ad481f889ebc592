package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearPublicKey(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	encoded, err := NearPublicKey(HexAddress(pub))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "ed25519:"))

	_, err = NearPublicKey("0xnothex")
	assert.Error(t, err)
}

func TestVerifyNearSignature(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	message := NonceMessage(987654321)
	signature := ed25519.Sign(priv, message)

	address := HexAddress(pub)
	assert.True(t, VerifyNearSignature(address, message, signature))
	assert.False(t, VerifyNearSignature(address, []byte("tampered"), signature))
	assert.False(t, VerifyNearSignature(address, message, signature[:10]))
	assert.False(t, VerifyNearSignature("0xdead", message, signature))
}
