package types

import (
	"bytes"
	"crypto/ed25519"
	"encoding/binary"
	"encoding/hex"
	"sync/atomic"

	"github.com/netchain-network/netchain-go/crypto"
	"github.com/pkg/errors"
)

var (
	InvalidSignatureSize = errors.New("invalid signature size")
	InvalidPubkeySize    = errors.New("invalid public key size")
	SignatureMismatch    = errors.New("signature does not match transaction")
)

// Transaction is the unsigned transfer record. Fields are never mutated
// after construction; the canonical byte form below is what gets signed and
// hashed, so field order and integer widths are frozen.
type Transaction struct {
	Sender       string `json:"sender"`
	Receiver     string `json:"receiver"`
	Amount       uint64 `json:"amount"`
	Fee          uint64 `json:"fee"`
	AccountNonce uint64 `json:"nonce"`
	Timestamp    uint64 `json:"timestamp"`
	Memo         string `json:"memo,omitempty"`

	// caches
	hash atomic.Value
}

// ToSignatureBytes produces the canonical byte form used for signing and
// hashing. Layout, in order: sender, receiver (uint32 big-endian length plus
// bytes), amount, fee, nonce, timestamp (uint64 big-endian), memo (uint32
// big-endian length plus bytes). Changing the order or a width invalidates
// every existing signature on the network.
func (tx *Transaction) ToSignatureBytes() ([]byte, error) {
	var buf bytes.Buffer

	writeString := func(s string) {
		var l [4]byte
		binary.BigEndian.PutUint32(l[:], uint32(len(s)))
		buf.Write(l[:])
		buf.WriteString(s)
	}
	writeUint64 := func(v uint64) {
		var b [8]byte
		binary.BigEndian.PutUint64(b[:], v)
		buf.Write(b[:])
	}

	writeString(tx.Sender)
	writeString(tx.Receiver)
	writeUint64(tx.Amount)
	writeUint64(tx.Fee)
	writeUint64(tx.AccountNonce)
	writeUint64(tx.Timestamp)
	writeString(tx.Memo)

	return buf.Bytes(), nil
}

// Hash returns the SHA-256 of the canonical byte form.
func (tx *Transaction) Hash() [32]byte {
	if hash := tx.hash.Load(); hash != nil {
		return hash.([32]byte)
	}
	v := crypto.SignatureHash(tx)
	tx.hash.Store(v)
	return v
}

func (tx *Transaction) HashHex() string {
	h := tx.Hash()
	return hex.EncodeToString(h[:])
}

// SignedTransaction carries a transaction together with its Ed25519
// signature and the signer's public key. The ledger core never inspects the
// signature bytes; it only calls Verify.
type SignedTransaction struct {
	Tx        *Transaction `json:"tx"`
	Signature []byte       `json:"signature"`
	PubKey    []byte       `json:"pubkey"`
}

// SignTx signs the canonical byte form of tx with the given private key.
func SignTx(tx *Transaction, key ed25519.PrivateKey) (*SignedTransaction, error) {
	msg, err := tx.ToSignatureBytes()
	if err != nil {
		return nil, err
	}
	return &SignedTransaction{
		Tx:        tx,
		Signature: ed25519.Sign(key, msg),
		PubKey:    append([]byte(nil), key.Public().(ed25519.PublicKey)...),
	}, nil
}

// Verify checks the Ed25519 signature over the canonical byte form.
// Malformed key or signature encodings surface as errors, never panics.
func (s *SignedTransaction) Verify() error {
	if err := crypto.ValidatePubkey(s.PubKey); err != nil {
		return InvalidPubkeySize
	}
	if len(s.Signature) != ed25519.SignatureSize {
		return InvalidSignatureSize
	}
	msg, err := s.Tx.ToSignatureBytes()
	if err != nil {
		return err
	}
	if !ed25519.Verify(ed25519.PublicKey(s.PubKey), msg, s.Signature) {
		return SignatureMismatch
	}
	return nil
}

func (s *SignedTransaction) Hash() [32]byte {
	return s.Tx.Hash()
}

func (s *SignedTransaction) HashHex() string {
	return s.Tx.HashHex()
}
