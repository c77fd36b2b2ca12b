package poi

import (
	"encoding/binary"
	"encoding/hex"
	"math/big"

	"github.com/netchain-network/netchain-go/crypto"
)

// Seed is the unsigned 128-bit big-endian integer that parameterizes the
// proposer lottery. It must be derived identically on every node.
type Seed [16]byte

// DeriveSeed computes the lottery seed for an epoch: the first 16 bytes of
// SHA-256(previousBlockHash ‖ big-endian uint64 epoch).
func DeriveSeed(previousBlockHash []byte, epoch uint64) Seed {
	data := make([]byte, 0, len(previousBlockHash)+8)
	data = append(data, previousBlockHash...)

	var e [8]byte
	binary.BigEndian.PutUint64(e[:], epoch)
	data = append(data, e[:]...)

	return Seed(crypto.Hash128(data))
}

func (s Seed) Bytes() []byte { return s[:] }

func (s Seed) Hex() string { return hex.EncodeToString(s[:]) }

// Uint128 returns the seed as two 64-bit halves, most significant first.
func (s Seed) Uint128() (hi, lo uint64) {
	hi = binary.BigEndian.Uint64(s[:8])
	lo = binary.BigEndian.Uint64(s[8:])
	return
}

// Fraction maps the seed into the unit interval. Both halves convert
// through float64 in a fixed expression, so every node computes the
// identical fraction.
func (s Seed) Fraction() float64 {
	hi, lo := s.Uint128()
	return (float64(hi)*0x1p64 + float64(lo)) / 0x1p128
}

// Mod reduces the seed modulo n. n must be positive.
func (s Seed) Mod(n int) int {
	v := new(big.Int).SetBytes(s[:])
	return int(v.Mod(v, big.NewInt(int64(n))).Int64())
}
