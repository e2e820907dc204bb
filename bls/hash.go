// Package bls implements the BLS12-381 threshold DKG/DSG scheme: parties
// generate independent key shares, combine their public keys into a group
// key, and later combine partial signatures into one verifiable under that
// group key.
//
// The hash-to-G1 construction below is deliberately not a hash-to-curve in
// the RFC 9380 sense: it hashes the message to a scalar and multiplies the
// G1 generator by it, which means the discrete log of every hashed point is
// known (it is the scalar itself). That is intentional here — the scheme
// only needs H(x) to be unpredictable and identical for every party, not to
// resist a discrete-log oracle — and changing it would break compatibility
// with accounts and signatures produced by the original implementation.
package bls

import (
	"crypto/sha512"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

var g1Gen, g2Gen = func() (bls12381.G1Affine, bls12381.G2Affine) {
	_, _, g1, g2 := bls12381.Generators()
	return g1, g2
}()

// scalarFromWideHash reduces a 64-byte hash, read as a little-endian
// integer, modulo the scalar field order, mirroring the upstream bls12_381
// crate's Scalar::from_bytes_wide.
func scalarFromWideHash(wide [64]byte) fr.Element {
	reversed := make([]byte, 64)
	for i, b := range wide {
		reversed[63-i] = b
	}

	value := new(big.Int).SetBytes(reversed)
	value.Mod(value, fr.Modulus())

	var out fr.Element
	out.SetBigInt(value)
	return out
}

// hashToScalar hashes data with SHA-512 and reduces the digest into a
// scalar field element.
func hashToScalar(data []byte) fr.Element {
	return scalarFromWideHash(sha512.Sum512(data))
}

// HashToG1 hashes data to a point on G1 by hashing it to a scalar and
// multiplying the G1 generator by that scalar.
func HashToG1(data []byte) bls12381.G1Affine {
	scalar := hashToScalar(data)
	var scalarInt big.Int
	scalar.BigInt(&scalarInt)

	var point bls12381.G1Affine
	point.ScalarMultiplication(&g1Gen, &scalarInt)
	return point
}
