package crypto

import (
	"encoding/hex"
	"fmt"
	"strings"

	subkey "github.com/vedhavyas/go-subkey/v2"
	"github.com/vedhavyas/go-subkey/v2/sr25519"
)

// MyriadNetworkPrefix is the SS58 address prefix registered for the Myriad chain.
const MyriadNetworkPrefix uint16 = 214

// PolkadotKeyPair derives an sr25519 keypair from a mnemonic phrase or secret URI.
func PolkadotKeyPair(mnemonic string) (subkey.KeyPair, error) {
	if mnemonic == "" {
		return nil, fmt.Errorf("empty mnemonic")
	}
	return subkey.DeriveKeyPair(sr25519.Scheme{}, mnemonic)
}

// PolkadotKeyPairFromURI derives an sr25519 keypair from a derivation URI such
// as "//escrow-token". Used for escrow wallet addresses.
func PolkadotKeyPairFromURI(uri string) (subkey.KeyPair, error) {
	return subkey.DeriveKeyPair(sr25519.Scheme{}, uri)
}

// HexAddress returns the 0x-prefixed hex encoding of a public key.
func HexAddress(pub []byte) string {
	return "0x" + hex.EncodeToString(pub)
}

// SS58Address renders a public key as an SS58 address on the Myriad network.
func SS58Address(pub []byte) string {
	return subkey.SS58Encode(pub, MyriadNetworkPrefix)
}

// DecodeHexAddress decodes a 0x-prefixed hex public address.
func DecodeHexAddress(address string) ([]byte, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(address, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid hex address: %w", err)
	}
	return raw, nil
}

// VerifyPolkadotSignature checks an sr25519 signature made by the holder of
// the given hex public address.
func VerifyPolkadotSignature(publicAddress string, message, signature []byte) bool {
	pub, err := DecodeHexAddress(publicAddress)
	if err != nil {
		return false
	}

	pk, err := sr25519.Scheme{}.FromPublicKey(pub)
	if err != nil {
		return false
	}

	return pk.Verify(message, signature)
}

// NonceMessage renders a login nonce the way wallet extensions sign it:
// the hex string representation of the number.
func NonceMessage(nonce int64) []byte {
	return []byte(fmt.Sprintf("0x%x", nonce))
}
