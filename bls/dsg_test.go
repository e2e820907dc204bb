package bls

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// setUpGroup runs a full DKG round for n parties and returns each party's
// PartnerPrivate, ready to sign, plus the group's threshold public key.
func setUpGroup(t *testing.T, n int) ([]PartnerPrivate, PublicKey) {
	t.Helper()

	accounts := make([]*Account, n)
	for i := range accounts {
		acc, err := CreateNewAccount()
		if err != nil {
			t.Fatalf("CreateNewAccount: %v", err)
		}
		accounts[i] = acc
	}

	publicKeys := make([]PublicKey, n)
	for i, acc := range accounts {
		publicKeys[i] = acc.PublicKey
	}
	publicKeySum, err := SumPublicKey(publicKeys)
	if err != nil {
		t.Fatalf("SumPublicKey: %v", err)
	}

	kCoeffs := make([]fr.Element, n)
	for i, acc := range accounts {
		kCoeffs[i] = GetK(acc.PublicKey, publicKeySum)
	}

	publicKeyParts := make([]PublicKey, n)
	for i, acc := range accounts {
		publicKeyParts[i] = GetPublicKeyPart(acc.PublicKey, kCoeffs[i])
	}
	thresholdPublicKey, err := SumPublicKey(publicKeyParts)
	if err != nil {
		t.Fatalf("SumPublicKey of parts: %v", err)
	}

	privates := make([]PartnerPrivate, n)
	for target := 0; target < n; target++ {
		var fragments []M
		for i, acc := range accounts {
			fragments = append(fragments, GetM(kCoeffs[i], acc.PrivateKey.X, accounts[target].Index, thresholdPublicKey))
		}
		mk, err := GetMK(fragments)
		if err != nil {
			t.Fatalf("GetMK: %v", err)
		}

		privates[target] = PartnerPrivate{
			Public: PartnerPublic{
				Index:     accounts[target].Index,
				PublicKey: accounts[target].PublicKey,
			},
			ThresholdPublicKey: thresholdPublicKey,
			X:                  accounts[target].PrivateKey.X,
			MKi:                mk.P,
		}
	}

	return privates, thresholdPublicKey
}

func TestThresholdSignRoundTrip(t *testing.T) {
	privates, groupKey := setUpGroup(t, 3)
	msg := []byte("transfer 10 tokens to bob")

	parts := make([]SignaturePart, len(privates))
	for i, priv := range privates {
		parts[i] = Sign(priv, msg)
	}

	combined, err := CombineSign(parts)
	if err != nil {
		t.Fatalf("CombineSign: %v", err)
	}

	ok, err := VerifySign(groupKey, combined, msg)
	if err != nil {
		t.Fatalf("VerifySign: %v", err)
	}
	if !ok {
		t.Fatal("VerifySign rejected a correctly combined threshold signature")
	}
}

func TestThresholdSignRejectsTamperedMessage(t *testing.T) {
	privates, groupKey := setUpGroup(t, 2)
	msg := []byte("original message")

	parts := make([]SignaturePart, len(privates))
	for i, priv := range privates {
		parts[i] = Sign(priv, msg)
	}
	combined, err := CombineSign(parts)
	if err != nil {
		t.Fatalf("CombineSign: %v", err)
	}

	ok, err := VerifySign(groupKey, combined, []byte("tampered message"))
	if err != nil {
		t.Fatalf("VerifySign: %v", err)
	}
	if ok {
		t.Fatal("VerifySign accepted a signature over the wrong message")
	}
}

func TestCombineSignRejectsEmpty(t *testing.T) {
	if _, err := CombineSign(nil); err == nil {
		t.Fatal("expected error for empty signature part list")
	}
}

func TestVerifySignRejectsEmptyIndexSet(t *testing.T) {
	_, groupKey := setUpGroup(t, 1)
	empty := ThresholdSignature{PartIndexes: nil}
	ok, err := VerifySign(groupKey, empty, []byte("msg"))
	if err != nil {
		t.Fatalf("VerifySign: %v", err)
	}
	if ok {
		t.Fatal("VerifySign accepted a signature with no part indexes")
	}
}

func TestThresholdSignSinglePartyDegeneratesToOwnMK(t *testing.T) {
	privates, groupKey := setUpGroup(t, 1)
	msg := []byte("solo signer")

	sig := Sign(privates[0], msg)
	combined, err := CombineSign([]SignaturePart{sig})
	if err != nil {
		t.Fatalf("CombineSign: %v", err)
	}
	if combined.PartIndexes[0].Cmp(new(big.Int).Set(privates[0].Public.Index)) != 0 {
		t.Fatal("combined signature lost the sole party's index")
	}

	ok, err := VerifySign(groupKey, combined, msg)
	if err != nil {
		t.Fatalf("VerifySign: %v", err)
	}
	if !ok {
		t.Fatal("VerifySign rejected single-party threshold signature")
	}
}
