package types

import (
	"encoding/hex"
	"testing"

	"github.com/netchain-network/netchain-go/crypto"
	"github.com/stretchr/testify/require"
)

func TestTransaction_ToSignatureBytes(t *testing.T) {
	require := require.New(t)

	tx := &Transaction{
		Sender:       "ab",
		Receiver:     "cd",
		Amount:       1,
		Fee:          2,
		AccountNonce: 3,
		Timestamp:    4,
		Memo:         "hi",
	}

	b, err := tx.ToSignatureBytes()
	require.NoError(err)

	// golden layout: any change here breaks all existing signatures
	require.Equal(
		"0000000261620000000263640000000000000001000000000000000200000000000000030000000000000004000000026869",
		hex.EncodeToString(b))
	require.Equal("0a0d3d12f9d61a0e29a33777c474981e50b3aaa0d3ec913f873195be6c4c9697", tx.HashHex())

	// stable across calls
	b2, err := tx.ToSignatureBytes()
	require.NoError(err)
	require.Equal(b, b2)
}

func TestTransaction_HashChangesWithFields(t *testing.T) {
	base := Transaction{Sender: "a", Receiver: "b", Amount: 10, Fee: 1, AccountNonce: 0, Timestamp: 100}

	hashOf := func(mutate func(tx *Transaction)) [32]byte {
		tx := base
		mutate(&tx)
		return tx.Hash()
	}

	orig := hashOf(func(tx *Transaction) {})
	require.NotEqual(t, orig, hashOf(func(tx *Transaction) { tx.Amount = 11 }))
	require.NotEqual(t, orig, hashOf(func(tx *Transaction) { tx.Fee = 2 }))
	require.NotEqual(t, orig, hashOf(func(tx *Transaction) { tx.AccountNonce = 1 }))
	require.NotEqual(t, orig, hashOf(func(tx *Transaction) { tx.Receiver = "c" }))
	require.NotEqual(t, orig, hashOf(func(tx *Transaction) { tx.Memo = "x" }))
}

func TestSignedTransaction_Verify(t *testing.T) {
	require := require.New(t)

	pub, priv, err := crypto.GenerateKey()
	require.NoError(err)
	sender := crypto.PubkeyToAddress(pub)

	tx := &Transaction{
		Sender:       sender,
		Receiver:     "receiver_address_example",
		Amount:       1000,
		Fee:          10,
		AccountNonce: 0,
		Timestamp:    1700000000,
		Memo:         "test payment",
	}

	signed, err := SignTx(tx, priv)
	require.NoError(err)
	require.NoError(signed.Verify())
	require.Equal(tx.Hash(), signed.Hash())

	// tampering with any signed field must break verification
	tampered := *tx
	tampered.Amount = 999999
	bad := &SignedTransaction{Tx: &tampered, Signature: signed.Signature, PubKey: signed.PubKey}
	require.Equal(SignatureMismatch, bad.Verify())
}

func TestSignedTransaction_VerifyMalformed(t *testing.T) {
	require := require.New(t)

	_, priv, err := crypto.GenerateKey()
	require.NoError(err)
	signed, err := SignTx(&Transaction{Sender: "a", Receiver: "b", Amount: 1}, priv)
	require.NoError(err)

	truncatedKey := &SignedTransaction{Tx: signed.Tx, Signature: signed.Signature, PubKey: signed.PubKey[:16]}
	require.Equal(InvalidPubkeySize, truncatedKey.Verify())

	truncatedSig := &SignedTransaction{Tx: signed.Tx, Signature: signed.Signature[:10], PubKey: signed.PubKey}
	require.Equal(InvalidSignatureSize, truncatedSig.Verify())

	noSig := &SignedTransaction{Tx: signed.Tx, PubKey: signed.PubKey}
	require.Equal(InvalidSignatureSize, noSig.Verify())
}
