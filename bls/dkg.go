package bls

import (
	"crypto/rand"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/xuperchain/crypto-core/cryptoerr"
	"github.com/xuperchain/crypto-core/internal/bytesutil"
)

// PrivateKey is a party's BLS scalar secret.
type PrivateKey struct {
	X fr.Element
}

// PublicKey is a party's (or the group's) public point on G2.
type PublicKey struct {
	P bls12381.G2Affine
}

// M is a signature fragment, a point on G1.
type M struct {
	P bls12381.G1Affine
}

// PartnerPublic is what a party publishes to the rest of the group: its
// index and its raw public key.
type PartnerPublic struct {
	Index     *big.Int
	PublicKey PublicKey
}

// PartnerPrivate is everything a party holds after the DKG round completes:
// its own index and public key, the group's combined public key, its
// private scalar, and its combined MK(i) fragment, ready for signing.
type PartnerPrivate struct {
	Public             PartnerPublic
	ThresholdPublicKey PublicKey
	X                  fr.Element
	MKi                bls12381.G1Affine
}

// Account is a freshly generated BLS key pair with a random party index.
type Account struct {
	Index      *big.Int
	PublicKey  PublicKey
	PrivateKey PrivateKey
}

// CreateNewAccount generates a random party index and BLS key pair: step 1
// of the DKG round.
func CreateNewAccount() (*Account, error) {
	indexBytes := make([]byte, 64)
	if _, err := rand.Read(indexBytes); err != nil {
		return nil, cryptoerr.Newf(cryptoerr.ErrEmptyArray, "reading random party index: %v", err)
	}
	index := new(big.Int).SetBytes(indexBytes)

	var x fr.Element
	if _, err := x.SetRandom(); err != nil {
		return nil, cryptoerr.Newf(cryptoerr.ErrEmptyArray, "sampling private key: %v", err)
	}

	var xInt big.Int
	x.BigInt(&xInt)

	var p bls12381.G2Affine
	p.ScalarMultiplication(&g2Gen, &xInt)

	return &Account{
		Index:      index,
		PublicKey:  PublicKey{P: p},
		PrivateKey: PrivateKey{X: x},
	}, nil
}

// SumPublicKey combines every party's public key into the group's combined
// public key P = sum(P(i)): step 2 of the DKG round.
func SumPublicKey(publicKeys []PublicKey) (PublicKey, error) {
	if len(publicKeys) == 0 {
		return PublicKey{}, cryptoerr.New(cryptoerr.ErrEmptyArray)
	}

	sum := publicKeys[0].P
	for _, pk := range publicKeys[1:] {
		sum.Add(&sum, &pk.P)
	}
	return PublicKey{P: sum}, nil
}

// GetK computes a party's deviation coefficient K(i) = H(P(i) || P): step 3
// of the DKG round.
func GetK(publicKey, publicKeySum PublicKey) fr.Element {
	pBytes := publicKey.P.RawBytes()
	sumBytes := publicKeySum.P.RawBytes()
	data := bytesutil.Combine(pBytes[:], sumBytes[:])
	return hashToScalar(data)
}

// GetPublicKeyPart computes a party's public key fragment P'(i) = K(i)*P(i):
// step 4 of the DKG round.
func GetPublicKeyPart(publicKey PublicKey, k fr.Element) PublicKey {
	var kInt big.Int
	k.BigInt(&kInt)

	var p bls12381.G2Affine
	p.ScalarMultiplication(&publicKey.P, &kInt)
	return PublicKey{P: p}
}

// GetM computes the signature fragment a party owes party index under the
// group's combined public key part-sum: M(i) = K*X*H(P' || i), step 6 of
// the DKG round.
func GetM(k, x fr.Element, index *big.Int, thresholdPublicKey PublicKey) M {
	pBytes := thresholdPublicKey.P.RawBytes()
	data := bytesutil.Combine(pBytes[:], index.Bytes())
	h := HashToG1(data)

	var kx fr.Element
	kx.Mul(&k, &x)

	var kxInt big.Int
	kx.BigInt(&kxInt)

	var m bls12381.G1Affine
	m.ScalarMultiplication(&h, &kxInt)
	return M{P: m}
}

// GetMK combines the M(i) fragments every other party computed for one
// party's index into that party's MK(i): steps 7-8 of the DKG round.
func GetMK(ms []M) (M, error) {
	if len(ms) == 0 {
		return M{}, cryptoerr.New(cryptoerr.ErrEmptyArray)
	}

	sum := ms[0].P
	for _, m := range ms[1:] {
		sum.Add(&sum, &m.P)
	}
	return M{P: sum}, nil
}

// VerifyMK checks e(G, MK(i)) == e(P, H(P, i)) via a single pairing call
// per side, confirming a party's MK(i) was assembled correctly.
func VerifyMK(publicKey PublicKey, index *big.Int, mk M) (bool, error) {
	left, err := bls12381.Pair([]bls12381.G1Affine{mk.P}, []bls12381.G2Affine{g2Gen})
	if err != nil {
		return false, cryptoerr.Newf(cryptoerr.ErrInvalidStringFormat, "pairing: %v", err)
	}

	pBytes := publicKey.P.RawBytes()
	data := bytesutil.Combine(pBytes[:], index.Bytes())
	h := HashToG1(data)

	right, err := bls12381.Pair([]bls12381.G1Affine{h}, []bls12381.G2Affine{publicKey.P})
	if err != nil {
		return false, cryptoerr.Newf(cryptoerr.ErrInvalidStringFormat, "pairing: %v", err)
	}

	return left.Equal(&right), nil
}

// VerifyMKByMultiMillerLoop checks the same equation as VerifyMK but batches
// both pairings into a single Miller loop followed by one final
// exponentiation, testing e(MK(i), G) * e(-H(P, i), P) == 1.
func VerifyMKByMultiMillerLoop(publicKey PublicKey, index *big.Int, mk M) (bool, error) {
	pBytes := publicKey.P.RawBytes()
	data := bytesutil.Combine(pBytes[:], index.Bytes())
	h := HashToG1(data)

	var negH bls12381.G1Affine
	negH.Neg(&h)

	result, err := millerLoopAndFinalExponentiate(
		[]bls12381.G1Affine{mk.P, negH},
		[]bls12381.G2Affine{g2Gen, publicKey.P},
	)
	if err != nil {
		return false, err
	}

	var one bls12381.GT
	one.SetOne()
	return result.Equal(&one), nil
}

func millerLoopAndFinalExponentiate(g1s []bls12381.G1Affine, g2s []bls12381.G2Affine) (bls12381.GT, error) {
	ml, err := bls12381.MillerLoop(g1s, g2s)
	if err != nil {
		return bls12381.GT{}, cryptoerr.Newf(cryptoerr.ErrInvalidStringFormat, "miller loop: %v", err)
	}
	return bls12381.FinalExponentiation(&ml), nil
}
