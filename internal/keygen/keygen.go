// Package keygen maps 32-bit seeds to deterministic keypairs.
package keygen

import (
	"encoding/binary"

	"vanityseek/internal/hashcore"
)

// Diversification constants for the private-key block (HMAC pad words and
// the golden-ratio word).
const (
	keyMix1 = 0x36363636
	keyMix2 = 0x5c5c5c5c
	keyMix3 = 0x9e3779b9
)

// Deriver turns a seed into a keypair. Implementations must be total and
// deterministic over all uint32 seed values.
type Deriver interface {
	Derive(seed uint32) (priv, pub [32]byte)
}

// PrivateKeyBytes derives the 32-byte private key for a seed: one
// compression of a block holding the seed and three fixed XOR variants,
// serialized as big-endian state words. Shared by every Deriver so that
// the seed-to-private-key contract is independent of the public-key
// scheme.
func PrivateKeyBytes(seed uint32) [32]byte {
	var block [16]uint32
	block[0] = seed
	block[1] = seed ^ keyMix1
	block[2] = seed ^ keyMix2
	block[3] = seed ^ keyMix3
	// words 4..15 stay zero

	state := hashcore.IV
	hashcore.Transform(&state, &block)

	var priv [32]byte
	for i, word := range state {
		binary.BigEndian.PutUint32(priv[i*4:], word)
	}
	return priv
}

// HashDeriver produces the public key with a fixed byte-wise transform of
// the private key. This is not an asymmetric operation; it exists to keep
// the search pipeline cheap and fully deterministic. Use ECDeriver when
// real keypairs are required.
type HashDeriver struct{}

func (HashDeriver) Derive(seed uint32) (priv, pub [32]byte) {
	priv = PrivateKeyBytes(seed)
	for i := range pub {
		pub[i] = priv[31-i] ^ 0x5a
	}
	return priv, pub
}
