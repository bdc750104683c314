// Package address encodes public keys into the 58-symbol alphabet and
// matches encoded addresses against prefix/suffix patterns.
package address

import "github.com/btcsuite/btcd/btcutil/base58"

// Alphabet is the Base58 character set, excluding 0, O, I and l.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// EncodedLen is the fixed length of a search-form address.
const EncodedLen = 32

// Encode maps each public-key byte independently to an alphabet symbol.
// This fixed-length form drives the search; it is not an arbitrary-
// precision base conversion and does not match wallet-format strings.
func Encode(pub [32]byte) [EncodedLen]byte {
	var addr [EncodedLen]byte
	for i, b := range pub {
		addr[i] = Alphabet[int(b)%len(Alphabet)]
	}
	return addr
}

// EncodeBase58 performs the exact base-58 conversion of a key, for
// operator-facing output (persisted matches, logs).
func EncodeBase58(key [32]byte) string {
	return base58.Encode(key[:])
}
