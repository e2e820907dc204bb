package bls

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

func TestCreateNewAccountDistinct(t *testing.T) {
	a, err := CreateNewAccount()
	if err != nil {
		t.Fatalf("CreateNewAccount: %v", err)
	}
	b, err := CreateNewAccount()
	if err != nil {
		t.Fatalf("CreateNewAccount: %v", err)
	}
	if a.Index.Cmp(b.Index) == 0 {
		t.Fatal("two accounts got the same random index")
	}
	if a.PrivateKey.X.Equal(&b.PrivateKey.X) {
		t.Fatal("two accounts got the same private key")
	}
}

func TestSumPublicKeyRejectsEmpty(t *testing.T) {
	if _, err := SumPublicKey(nil); err == nil {
		t.Fatal("expected error for empty public key list")
	}
}

func TestDKGRoundProducesVerifiableMK(t *testing.T) {
	const parties = 3

	accounts := make([]*Account, parties)
	for i := range accounts {
		acc, err := CreateNewAccount()
		if err != nil {
			t.Fatalf("CreateNewAccount: %v", err)
		}
		accounts[i] = acc
	}

	publicKeys := make([]PublicKey, parties)
	for i, acc := range accounts {
		publicKeys[i] = acc.PublicKey
	}

	publicKeySum, err := SumPublicKey(publicKeys)
	if err != nil {
		t.Fatalf("SumPublicKey: %v", err)
	}

	kCoeffs := make([]fr.Element, parties)
	for i, acc := range accounts {
		kCoeffs[i] = GetK(acc.PublicKey, publicKeySum)
	}

	publicKeyParts := make([]PublicKey, parties)
	for i, acc := range accounts {
		publicKeyParts[i] = GetPublicKeyPart(acc.PublicKey, kCoeffs[i])
	}

	thresholdPublicKey, err := SumPublicKey(publicKeyParts)
	if err != nil {
		t.Fatalf("SumPublicKey of parts: %v", err)
	}

	for target := 0; target < parties; target++ {
		var fragments []M
		for i, acc := range accounts {
			fragments = append(fragments, GetM(kCoeffs[i], acc.PrivateKey.X, accounts[target].Index, thresholdPublicKey))
		}

		mk, err := GetMK(fragments)
		if err != nil {
			t.Fatalf("GetMK: %v", err)
		}

		ok, err := VerifyMK(thresholdPublicKey, accounts[target].Index, mk)
		if err != nil {
			t.Fatalf("VerifyMK: %v", err)
		}
		if !ok {
			t.Fatalf("VerifyMK failed for party %d", target)
		}

		ok, err = VerifyMKByMultiMillerLoop(thresholdPublicKey, accounts[target].Index, mk)
		if err != nil {
			t.Fatalf("VerifyMKByMultiMillerLoop: %v", err)
		}
		if !ok {
			t.Fatalf("VerifyMKByMultiMillerLoop failed for party %d", target)
		}
	}
}
