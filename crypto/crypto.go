package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"

	"github.com/pkg/errors"
)

const (
	// AddressLength is the byte length of the raw address, the first 20
	// bytes of SHA-256 over the public key.
	AddressLength = 20
)

// GenerateKey creates a fresh Ed25519 key pair.
func GenerateKey() (ed25519.PublicKey, ed25519.PrivateKey, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to generate ed25519 key")
	}
	return pub, priv, nil
}

// PubkeyToAddress derives the account address for a public key: the hex
// encoding of the first 20 bytes of SHA-256(pubkey), a 40-character string.
// The derivation is part of the external collaborator contract and must not
// change; existing genesis allocations reference these strings.
func PubkeyToAddress(pub ed25519.PublicKey) string {
	h := Hash(pub)
	return hex.EncodeToString(h[:AddressLength])
}

// ValidatePubkey rejects byte slices that cannot be Ed25519 public keys.
func ValidatePubkey(pub []byte) error {
	if len(pub) != ed25519.PublicKeySize {
		return errors.Errorf("invalid public key size: %d", len(pub))
	}
	return nil
}
