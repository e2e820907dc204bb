// Package config carries the settings the original source compiled in as
// constants — the seed-stretching password and the crypto-algorithm tag
// assignments — as explicit, injectable inputs to the account factory.
package config

// CryptoType names the elliptic-curve/signature combination an account was
// created for. The nibble values below are load-bearing: they are packed
// into the mnemonic's trailing tag byte and into the address version byte,
// and must not be renumbered.
type CryptoType uint8

const (
	// NistP256 selects the P-256 curve with ECDSA signatures.
	NistP256 CryptoType = 1
	// Secp256k1 selects the secp256k1 curve with ECDSA signatures.
	Secp256k1 CryptoType = 2
	// Gm selects the Chinese national cryptography (SM2) curve.
	Gm CryptoType = 3
	// Curve25519 selects Curve25519 with EdDSA signatures.
	Curve25519 CryptoType = 4
)

// Valid reports whether t is one of the defined CryptoType values.
func (t CryptoType) Valid() bool {
	switch t {
	case NistP256, Secp256k1, Gm, Curve25519:
		return true
	default:
		return false
	}
}

// Account holds the configuration inputs to the P-256 account factory that
// the original source hard-coded as constants.
type Account struct {
	// SeedPassword is mixed into the PBKDF2 salt as "mnemonic" + SeedPassword
	// when stretching a mnemonic into the 40-byte account seed.
	SeedPassword string
}

// historicalSeedPassword is the literal the source compiled in. It is kept
// only as the default for DefaultAccount, so that accounts created without
// an explicit configuration remain interoperable with accounts created by
// the original implementation.
const historicalSeedPassword = "jingbo is handsome!"

// DefaultAccount returns the configuration that reproduces the original
// implementation's fixed seed password. Callers that don't need
// interoperability with it should supply their own config.Account instead.
func DefaultAccount() Account {
	return Account{SeedPassword: historicalSeedPassword}
}
