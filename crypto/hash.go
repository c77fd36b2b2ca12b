package crypto

import (
	"crypto/sha256"
	"hash"
	"sync"
)

// SignatureHasher is implemented by types that expose a canonical byte form
// for signing and hashing.
type SignatureHasher interface {
	ToSignatureBytes() ([]byte, error)
}

var sha256Pool = sync.Pool{New: func() interface{} {
	return sha256.New()
}}

// Hash returns SHA-256 of data. SHA-256 is the consensus hash of the chain;
// every node must derive seeds and transaction hashes from it identically.
func Hash(data []byte) [32]byte {
	h, ok := sha256Pool.Get().(hash.Hash)
	if !ok {
		h = sha256.New()
	}
	defer sha256Pool.Put(h)
	h.Reset()

	var b [32]byte

	h.Write(data)
	h.Sum(b[:0])

	return b
}

// Hash128 returns the first 16 bytes of SHA-256 of data. Used for lottery
// seeds, which are 128-bit unsigned integers on the wire.
func Hash128(data []byte) [16]byte {
	full := Hash(data)

	var b [16]byte
	copy(b[:], full[:16])
	return b
}

func SignatureHash(h SignatureHasher) [32]byte {
	b, err := h.ToSignatureBytes()
	if err != nil {
		return [32]byte{}
	}
	return Hash(b)
}
