package crypto

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"
)

// NearPublicKey converts a 0x-prefixed hex public address into the NEAR
// "ed25519:<base58>" public key representation.
func NearPublicKey(publicAddress string) (string, error) {
	raw, err := DecodeHexAddress(publicAddress)
	if err != nil {
		return "", err
	}
	return "ed25519:" + base58.Encode(raw), nil
}

// VerifyNearSignature checks an ed25519 signature made by the holder of the
// given hex public address.
func VerifyNearSignature(publicAddress string, message, signature []byte) bool {
	pub, err := DecodeHexAddress(publicAddress)
	if err != nil {
		return false
	}
	if len(pub) != ed25519.PublicKeySize || len(signature) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pub), message, signature)
}
