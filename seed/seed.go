// Package seed turns raw entropy into mnemonic-ready bytes and stretches a
// mnemonic sentence into the 40-byte account seed the P-256 key derivation
// consumes.
package seed

import (
	"crypto/rand"
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"

	"github.com/xuperchain/crypto-core/cryptoerr"
	"github.com/xuperchain/crypto-core/mnemonic"
)

// pbkdf2Rounds and seedLength match the original implementation's seed
// stretch exactly; changing either breaks compatibility with existing
// accounts.
const (
	pbkdf2Rounds = 2048
	seedLength   = 40
)

// GenerateEntropy returns bitSize/8 cryptographically random bytes, after
// validating that bitSize is a valid raw (pre-tag) entropy size.
func GenerateEntropy(bitSize int) ([]byte, error) {
	if err := mnemonic.ValidateRawEntropyBitSize(bitSize); err != nil {
		return nil, err
	}

	entropy := make([]byte, bitSize/8)
	if _, err := rand.Read(entropy); err != nil {
		return nil, cryptoerr.Newf(cryptoerr.ErrEmptyArray, "reading random entropy: %v", err)
	}
	return entropy, nil
}

// GenerateSeedFromMnemonic stretches sentence into a 40-byte seed via
// PBKDF2-HMAC-SHA512, using the mnemonic itself as the PBKDF2 password and
// "mnemonic"+password as the salt, exactly as the BIP-39 seed derivation
// does but with an injectable password rather than a user-supplied
// passphrase baked into the salt literal.
func GenerateSeedFromMnemonic(sentence, password string) [seedLength]byte {
	salt := "mnemonic" + password
	derived := pbkdf2.Key([]byte(sentence), []byte(salt), pbkdf2Rounds, seedLength, sha512.New)

	var out [seedLength]byte
	copy(out[:], derived)
	return out
}
