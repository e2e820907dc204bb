package bls

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/xuperchain/crypto-core/cryptoerr"
	"github.com/xuperchain/crypto-core/internal/bytesutil"
)

// SignaturePart is one party's contribution to a threshold signature:
// S(i) = pk(i)*H(P, m) + MK(i).
type SignaturePart struct {
	Index     *big.Int
	PublicKey bls12381.G2Affine
	Sig       bls12381.G1Affine
}

// ThresholdSignature is the combination of enough signature parts to meet
// the scheme's threshold: S' = sum(S(i)), P' = sum(P(i)) over the signing
// set.
type ThresholdSignature struct {
	PartIndexes      []*big.Int
	PartPublicKeySum bls12381.G2Affine
	Sig              bls12381.G1Affine
}

// Sign computes a party's signature fragment over msg under the group's
// combined public key.
func Sign(private PartnerPrivate, msg []byte) SignaturePart {
	pBytes := private.ThresholdPublicKey.P.RawBytes()
	data := bytesutil.Combine(pBytes[:], msg)
	h := HashToG1(data)

	var xInt big.Int
	private.X.BigInt(&xInt)

	var part1 bls12381.G1Affine
	part1.ScalarMultiplication(&h, &xInt)

	sig := part1
	sig.Add(&sig, &private.MKi)

	return SignaturePart{
		Index:     private.Public.Index,
		PublicKey: private.Public.PublicKey.P,
		Sig:       sig,
	}
}

// CombineSign combines signature parts from enough parties into a single
// threshold signature.
func CombineSign(parts []SignaturePart) (ThresholdSignature, error) {
	if len(parts) == 0 {
		return ThresholdSignature{}, cryptoerr.New(cryptoerr.ErrEmptyArray)
	}

	indexes := make([]*big.Int, 0, len(parts))
	publicKeySum := parts[0].PublicKey
	sig := parts[0].Sig

	indexes = append(indexes, parts[0].Index)
	for _, part := range parts[1:] {
		indexes = append(indexes, part.Index)
		publicKeySum.Add(&publicKeySum, &part.PublicKey)
		sig.Add(&sig, &part.Sig)
	}

	return ThresholdSignature{
		PartIndexes:      indexes,
		PartPublicKeySum: publicKeySum,
		Sig:              sig,
	}, nil
}

// VerifySign checks e(G, S') == e(P', H(P, m)) * e(P, sum(H(P, i))) against
// the group's combined public key, batching every pairing in the right-hand
// side into a single Miller loop and final exponentiation.
func VerifySign(publicKey PublicKey, sig ThresholdSignature, msg []byte) (bool, error) {
	if len(sig.PartIndexes) == 0 {
		return false, nil
	}

	left, err := millerLoopAndFinalExponentiate(
		[]bls12381.G1Affine{sig.Sig},
		[]bls12381.G2Affine{g2Gen},
	)
	if err != nil {
		return false, err
	}

	pBytes := publicKey.P.RawBytes()
	msgData := bytesutil.Combine(pBytes[:], msg)
	hMsg := HashToG1(msgData)

	indexSum := HashToG1(bytesutil.Combine(pBytes[:], sig.PartIndexes[0].Bytes()))
	for _, index := range sig.PartIndexes[1:] {
		h := HashToG1(bytesutil.Combine(pBytes[:], index.Bytes()))
		indexSum.Add(&indexSum, &h)
	}

	right, err := millerLoopAndFinalExponentiate(
		[]bls12381.G1Affine{hMsg, indexSum},
		[]bls12381.G2Affine{sig.PartPublicKeySum, publicKey.P},
	)
	if err != nil {
		return false, err
	}

	return left.Equal(&right), nil
}
