// Package single implements plain (non-threshold) BLS signatures, the
// simpler companion to the bls package's threshold scheme. It is built on
// herumi's BLS12-381 bindings rather than gnark-crypto: the threshold
// scheme's hash-to-G1 is a hash-to-scalar-then-multiply trick kept for
// compatibility with an existing deployment, but a single-party scheme has
// no such constraint, so this package uses the library's standards-based
// hash-and-map-to-curve instead.
package single

import (
	"sync"

	"github.com/herumi/bls-eth-go-binary/bls"

	"github.com/xuperchain/crypto-core/cryptoerr"
)

var initOnce sync.Once
var initErr error

func ensureInit() error {
	initOnce.Do(func() {
		if err := bls.Init(bls.BLS12_381); err != nil {
			initErr = err
			return
		}
		if err := bls.SetETHmode(bls.EthModeDraft07); err != nil {
			initErr = err
			return
		}
		bls.VerifyPublicKeyOrder(true)
		bls.VerifySignatureOrder(true)
	})
	return initErr
}

// PrivateKey and PublicKey alias herumi's types so callers don't need to
// import the binding package directly.
type (
	PrivateKey = bls.SecretKey
	PublicKey  = bls.PublicKey
	Signature  = bls.Sign
)

// GenerateKeyPair samples a fresh private key and derives its public key.
func GenerateKeyPair() (*PrivateKey, *PublicKey, error) {
	if err := ensureInit(); err != nil {
		return nil, nil, cryptoerr.Newf(cryptoerr.ErrInvalidStringFormat, "initializing bls library: %v", err)
	}

	var sk PrivateKey
	sk.SetByCSPRNG()
	pk := sk.GetPublicKey()
	return &sk, pk, nil
}

// Sign signs message with a private key.
func Sign(privateKey *PrivateKey, message []byte) (*Signature, error) {
	if err := ensureInit(); err != nil {
		return nil, cryptoerr.Newf(cryptoerr.ErrInvalidStringFormat, "initializing bls library: %v", err)
	}
	return privateKey.SignByte(message), nil
}

// Verify checks signature over message against publicKey.
func Verify(publicKey *PublicKey, message []byte, signature *Signature) (bool, error) {
	if err := ensureInit(); err != nil {
		return false, cryptoerr.Newf(cryptoerr.ErrInvalidStringFormat, "initializing bls library: %v", err)
	}
	if !signature.VerifyByte(publicKey, message) {
		return false, cryptoerr.New(cryptoerr.ErrInvalidEcdsaSig)
	}
	return true, nil
}

// AggregateSignatures combines several signatures over possibly-distinct
// messages into one, in the order they were produced.
func AggregateSignatures(signatures []*Signature) *Signature {
	values := make([]Signature, len(signatures))
	for i, sig := range signatures {
		values[i] = *sig
	}

	var agg Signature
	agg.Aggregate(values)
	return &agg
}
