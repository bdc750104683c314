package keygen

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
)

// ECDeriver derives genuine secp256k1 keypairs. The private key bytes are
// the same as HashDeriver's (same seed, same private key); the public key
// is the 32-byte x-only serialization of the scalar-multiplied point.
type ECDeriver struct{}

func (ECDeriver) Derive(seed uint32) (priv, pub [32]byte) {
	priv = PrivateKeyBytes(seed)

	// PrivKeyFromBytes reduces the scalar mod the curve order, so every
	// seed yields a usable key.
	privKey, _ := btcec.PrivKeyFromBytes(priv[:])
	copy(pub[:], schnorr.SerializePubKey(privKey.PubKey()))
	return priv, pub
}
