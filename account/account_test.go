package account

import (
	"crypto/elliptic"
	"testing"

	"github.com/xuperchain/crypto-core/config"
	"github.com/xuperchain/crypto-core/wordlist"
)

func TestCreateAndRetrieveRoundTrip(t *testing.T) {
	cfg := config.DefaultAccount()

	created, err := CreateNewAccountWithMnemonic(wordlist.English, StrengthEasy, config.NistP256, cfg)
	if err != nil {
		t.Fatalf("CreateNewAccountWithMnemonic: %v", err)
	}

	retrieved, err := RetrieveAccountByMnemonic(created.Mnemonic, wordlist.English, cfg)
	if err != nil {
		t.Fatalf("RetrieveAccountByMnemonic: %v", err)
	}

	if retrieved.Address != created.Address {
		t.Fatalf("address mismatch: got %s, want %s", retrieved.Address, created.Address)
	}
	if retrieved.PrivateKey != created.PrivateKey {
		t.Fatal("private key mismatch after retrieval")
	}
	if retrieved.PublicKey != created.PublicKey {
		t.Fatal("public key mismatch after retrieval")
	}
}

// TestScenarioS2KnownAddress checks a known mnemonic/address pair recorded
// by the original implementation's own test suite: this is the only test in
// this package that can catch a wrong curve-order constant, since every
// other test here only checks internal self-consistency.
func TestScenarioS2KnownAddress(t *testing.T) {
	sentence := "pilot soft canal assault once puppy pole cross defy extend civil camp"
	wantAddress := "ZXG4hvkFjB5yJ71wNo6YT5uR93fuHSuzo"

	acc, err := RetrieveAccountByMnemonic(sentence, wordlist.English, config.DefaultAccount())
	if err != nil {
		t.Fatalf("RetrieveAccountByMnemonic: %v", err)
	}
	if acc.Address != wantAddress {
		t.Fatalf("got address %s, want %s", acc.Address, wantAddress)
	}
}

func TestCreateRejectsInvalidCryptoType(t *testing.T) {
	cfg := config.DefaultAccount()
	if _, err := CreateNewAccountWithMnemonic(wordlist.English, StrengthEasy, config.CryptoType(99), cfg); err == nil {
		t.Fatal("expected error for invalid crypto type")
	}
}

func TestSignAndVerify(t *testing.T) {
	cfg := config.DefaultAccount()
	acc, err := CreateNewAccountWithMnemonic(wordlist.English, StrengthMiddle, config.NistP256, cfg)
	if err != nil {
		t.Fatalf("CreateNewAccountWithMnemonic: %v", err)
	}

	message := []byte("an important transaction")
	sig, err := EcdsaSign(acc.PrivateKey, message)
	if err != nil {
		t.Fatalf("EcdsaSign: %v", err)
	}

	ok, err := EcdsaVerify(acc.PublicKey, message, sig)
	if err != nil {
		t.Fatalf("EcdsaVerify: %v", err)
	}
	if !ok {
		t.Fatal("signature did not verify")
	}
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	cfg := config.DefaultAccount()
	acc, err := CreateNewAccountWithMnemonic(wordlist.English, StrengthEasy, config.NistP256, cfg)
	if err != nil {
		t.Fatalf("CreateNewAccountWithMnemonic: %v", err)
	}

	sig, err := EcdsaSign(acc.PrivateKey, []byte("original"))
	if err != nil {
		t.Fatalf("EcdsaSign: %v", err)
	}

	if _, err := EcdsaVerify(acc.PublicKey, []byte("tampered"), sig); err == nil {
		t.Fatal("expected verification error for tampered message")
	}
}

func TestGetCryptoByteFromMnemonic(t *testing.T) {
	cfg := config.DefaultAccount()
	acc, err := CreateNewAccountWithMnemonic(wordlist.English, StrengthHard, config.NistP256, cfg)
	if err != nil {
		t.Fatalf("CreateNewAccountWithMnemonic: %v", err)
	}

	got, err := GetCryptoByteFromMnemonic(acc.Mnemonic, wordlist.English)
	if err != nil {
		t.Fatalf("GetCryptoByteFromMnemonic: %v", err)
	}
	if got != config.NistP256 {
		t.Fatalf("GetCryptoByteFromMnemonic = %v, want %v", got, config.NistP256)
	}
}

func TestAddressIsStableForSameKey(t *testing.T) {
	cfg := config.DefaultAccount()
	acc, err := CreateNewAccountWithMnemonic(wordlist.English, StrengthEasy, config.NistP256, cfg)
	if err != nil {
		t.Fatalf("CreateNewAccountWithMnemonic: %v", err)
	}

	pub, err := GetEcdsaPublicKeyFromPem(acc.PublicKey)
	if err != nil {
		t.Fatalf("GetEcdsaPublicKeyFromPem: %v", err)
	}

	sec1 := elliptic.Marshal(pub.Curve, pub.X, pub.Y)
	address := GetAddressFromPublicKey(sec1, config.NistP256)
	if address != acc.Address {
		t.Fatalf("recomputed address %s does not match %s", address, acc.Address)
	}
}
