// Package wire is the JSON+base64 marshaling layer the original
// implementation exposed across its C-ABI: every BLS DKG/DSG operation
// takes and returns the same JSON shapes that crossed that boundary, so
// that callers speaking that wire format (decimal-string party indexes,
// base64 compressed points, little-endian scalar byte arrays) need no
// translation layer of their own.
package wire

import (
	"encoding/base64"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/xuperchain/crypto-core/bls"
	"github.com/xuperchain/crypto-core/cryptoerr"
)

// PublicKey is the wire shape of a bls.PublicKey: a base64-encoded
// compressed G2 point.
type PublicKey struct {
	P string `json:"p"`
}

// PrivateKey is the wire shape of a bls.PrivateKey: a base64-encoded
// canonical scalar.
type PrivateKey struct {
	X string `json:"x"`
}

// M is the wire shape of a bls.M: a base64-encoded compressed G1 point.
type M struct {
	P string `json:"p"`
}

// Account is the wire shape returned by CreateNewBlsAccount.
type Account struct {
	Index      string     `json:"index"`
	PublicKey  PublicKey  `json:"public_key"`
	PrivateKey PrivateKey `json:"private_key"`
}

// Scalar is the wire shape of a 32-byte little-endian scalar, as produced by
// GetBlsK and consumed by GetBlsPublicKeyPart/GetBlsM.
type Scalar [32]byte

// SignaturePart is the wire shape of a bls.SignaturePart.
type SignaturePart struct {
	Index     string `json:"index"`
	PublicKey string `json:"public_key"`
	Sig       string `json:"sig"`
}

// ThresholdSignature is the wire shape of a bls.ThresholdSignature.
type ThresholdSignature struct {
	PartIndexes      []string `json:"part_indexs"`
	PartPublicKeySum string   `json:"part_public_key_sum"`
	Sig              string   `json:"sig"`
}

func encodeG1(p bls12381.G1Affine) string {
	b := p.Bytes()
	return base64.StdEncoding.EncodeToString(b[:])
}

func decodeG1(s string) (bls12381.G1Affine, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return bls12381.G1Affine{}, cryptoerr.New(cryptoerr.ErrInvalidStringFormat)
	}
	var p bls12381.G1Affine
	if _, err := p.SetBytes(raw); err != nil {
		return bls12381.G1Affine{}, cryptoerr.New(cryptoerr.ErrInvalidStringFormat)
	}
	return p, nil
}

func encodeG2(p bls12381.G2Affine) string {
	b := p.Bytes()
	return base64.StdEncoding.EncodeToString(b[:])
}

func decodeG2(s string) (bls12381.G2Affine, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return bls12381.G2Affine{}, cryptoerr.New(cryptoerr.ErrInvalidStringFormat)
	}
	var p bls12381.G2Affine
	if _, err := p.SetBytes(raw); err != nil {
		return bls12381.G2Affine{}, cryptoerr.New(cryptoerr.ErrInvalidStringFormat)
	}
	return p, nil
}

func encodeIndex(index *big.Int) string {
	return index.String()
}

func decodeIndex(s string) (*big.Int, error) {
	index, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, cryptoerr.New(cryptoerr.ErrInvalidStringFormat)
	}
	return index, nil
}

func scalarToLE(s fr.Element) Scalar {
	var value big.Int
	s.BigInt(&value)

	be := value.Bytes()
	var out Scalar
	for i, b := range be {
		out[len(be)-1-i] = b
	}
	return out
}

func scalarFromLE(s Scalar) fr.Element {
	be := make([]byte, len(s))
	for i, b := range s {
		be[len(s)-1-i] = b
	}

	var out fr.Element
	out.SetBigInt(new(big.Int).SetBytes(be))
	return out
}

func fromPublicKeyWire(w PublicKey) (bls.PublicKey, error) {
	p, err := decodeG2(w.P)
	if err != nil {
		return bls.PublicKey{}, err
	}
	return bls.PublicKey{P: p}, nil
}

func toPublicKeyWire(pk bls.PublicKey) PublicKey {
	return PublicKey{P: encodeG2(pk.P)}
}

func fromMWire(w M) (bls.M, error) {
	p, err := decodeG1(w.P)
	if err != nil {
		return bls.M{}, err
	}
	return bls.M{P: p}, nil
}

func toMWire(m bls.M) M {
	return M{P: encodeG1(m.P)}
}

// CreateNewBlsAccount generates a fresh party index and BLS key pair.
func CreateNewBlsAccount() (Account, error) {
	acc, err := bls.CreateNewAccount()
	if err != nil {
		return Account{}, err
	}

	x := scalarToLE(acc.PrivateKey.X)
	return Account{
		Index:      encodeIndex(acc.Index),
		PublicKey:  toPublicKeyWire(acc.PublicKey),
		PrivateKey: PrivateKey{X: base64.StdEncoding.EncodeToString(x[:])},
	}, nil
}

// SumBlsPublicKey combines every party's public key into the group key.
func SumBlsPublicKey(publicKeys []PublicKey) (PublicKey, error) {
	parsed := make([]bls.PublicKey, len(publicKeys))
	for i, w := range publicKeys {
		pk, err := fromPublicKeyWire(w)
		if err != nil {
			return PublicKey{}, err
		}
		parsed[i] = pk
	}

	sum, err := bls.SumPublicKey(parsed)
	if err != nil {
		return PublicKey{}, err
	}
	return toPublicKeyWire(sum), nil
}

// GetBlsK computes a party's deviation coefficient.
func GetBlsK(publicKey, publicKeySum PublicKey) (Scalar, error) {
	pk, err := fromPublicKeyWire(publicKey)
	if err != nil {
		return Scalar{}, err
	}
	pkSum, err := fromPublicKeyWire(publicKeySum)
	if err != nil {
		return Scalar{}, err
	}
	return scalarToLE(bls.GetK(pk, pkSum)), nil
}

// GetBlsPublicKeyPart computes a party's public key fragment.
func GetBlsPublicKeyPart(publicKey PublicKey, k Scalar) (PublicKey, error) {
	pk, err := fromPublicKeyWire(publicKey)
	if err != nil {
		return PublicKey{}, err
	}
	part := bls.GetPublicKeyPart(pk, scalarFromLE(k))
	return toPublicKeyWire(part), nil
}

func decodePrivateKeyX(privateKey PrivateKey) (Scalar, error) {
	xBytes, err := base64.StdEncoding.DecodeString(privateKey.X)
	if err != nil || len(xBytes) != 32 {
		return Scalar{}, cryptoerr.New(cryptoerr.ErrInvalidStringFormat)
	}
	var xScalar Scalar
	copy(xScalar[:], xBytes)
	return xScalar, nil
}

// GetBlsM computes the signature fragment a party owes another party's
// index under the group's combined public key.
func GetBlsM(k Scalar, privateKey PrivateKey, index string, thresholdPublicKey PublicKey) (M, error) {
	xScalar, err := decodePrivateKeyX(privateKey)
	if err != nil {
		return M{}, err
	}

	idx, err := decodeIndex(index)
	if err != nil {
		return M{}, err
	}

	pk, err := fromPublicKeyWire(thresholdPublicKey)
	if err != nil {
		return M{}, err
	}

	m := bls.GetM(scalarFromLE(k), scalarFromLE(xScalar), idx, pk)
	return toMWire(m), nil
}

// GetBlsMK combines M(i) fragments into one party's MK(i).
func GetBlsMK(ms []M) (M, error) {
	parsed := make([]bls.M, len(ms))
	for i, w := range ms {
		m, err := fromMWire(w)
		if err != nil {
			return M{}, err
		}
		parsed[i] = m
	}

	mk, err := bls.GetMK(parsed)
	if err != nil {
		return M{}, err
	}
	return toMWire(mk), nil
}

// VerifyBlsMK checks a party's MK(i) against the group public key.
func VerifyBlsMK(publicKey PublicKey, index string, mk M) (bool, error) {
	pk, err := fromPublicKeyWire(publicKey)
	if err != nil {
		return false, err
	}
	idx, err := decodeIndex(index)
	if err != nil {
		return false, err
	}
	mkParsed, err := fromMWire(mk)
	if err != nil {
		return false, err
	}
	return bls.VerifyMK(pk, idx, mkParsed)
}

// BlsSign computes a party's threshold signature fragment over msg.
func BlsSign(private bls.PartnerPrivate, msg []byte) SignaturePart {
	part := bls.Sign(private, msg)
	return SignaturePart{
		Index:     encodeIndex(part.Index),
		PublicKey: encodeG2(part.PublicKey),
		Sig:       encodeG1(part.Sig),
	}
}

// BlsCombineSign combines signature parts into a threshold signature.
func BlsCombineSign(parts []SignaturePart) (ThresholdSignature, error) {
	parsed := make([]bls.SignaturePart, len(parts))
	for i, w := range parts {
		idx, err := decodeIndex(w.Index)
		if err != nil {
			return ThresholdSignature{}, err
		}
		pk, err := decodeG2(w.PublicKey)
		if err != nil {
			return ThresholdSignature{}, err
		}
		sig, err := decodeG1(w.Sig)
		if err != nil {
			return ThresholdSignature{}, err
		}
		parsed[i] = bls.SignaturePart{Index: idx, PublicKey: pk, Sig: sig}
	}

	combined, err := bls.CombineSign(parsed)
	if err != nil {
		return ThresholdSignature{}, err
	}

	indexes := make([]string, len(combined.PartIndexes))
	for i, idx := range combined.PartIndexes {
		indexes[i] = encodeIndex(idx)
	}

	return ThresholdSignature{
		PartIndexes:      indexes,
		PartPublicKeySum: encodeG2(combined.PartPublicKeySum),
		Sig:              encodeG1(combined.Sig),
	}, nil
}

// BlsVerifySign verifies a combined threshold signature over msg.
func BlsVerifySign(publicKey PublicKey, sig ThresholdSignature, msg []byte) (bool, error) {
	pk, err := fromPublicKeyWire(publicKey)
	if err != nil {
		return false, err
	}

	indexes := make([]*big.Int, len(sig.PartIndexes))
	for i, s := range sig.PartIndexes {
		idx, err := decodeIndex(s)
		if err != nil {
			return false, err
		}
		indexes[i] = idx
	}

	partPublicKeySum, err := decodeG2(sig.PartPublicKeySum)
	if err != nil {
		return false, err
	}
	sigPoint, err := decodeG1(sig.Sig)
	if err != nil {
		return false, err
	}

	parsed := bls.ThresholdSignature{
		PartIndexes:      indexes,
		PartPublicKeySum: partPublicKeySum,
		Sig:              sigPoint,
	}
	return bls.VerifySign(pk, parsed, msg)
}
