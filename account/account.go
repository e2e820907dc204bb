// Package account implements the P-256 account factory: deriving a signing
// key pair and address from a mnemonic sentence, and recovering the same
// pair later from the sentence alone.
package account

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"encoding/asn1"
	"encoding/hex"
	"encoding/pem"
	"math/big"

	"github.com/btcsuite/btcd/btcutil/base58"
	"golang.org/x/crypto/ripemd160"

	"github.com/xuperchain/crypto-core/config"
	"github.com/xuperchain/crypto-core/cryptoerr"
	"github.com/xuperchain/crypto-core/mnemonic"
	"github.com/xuperchain/crypto-core/seed"
	"github.com/xuperchain/crypto-core/wordlist"
)

// MnemonicStrength selects the mnemonic sentence length, and with it the
// amount of raw entropy backing the account.
type MnemonicStrength int

const (
	// StrengthEasy produces a 12-word sentence.
	StrengthEasy MnemonicStrength = iota
	// StrengthMiddle produces an 18-word sentence.
	StrengthMiddle
	// StrengthHard produces a 24-word sentence.
	StrengthHard
)

// rawEntropyBits maps a strength to the entropy bit length fed to the
// mnemonic codec before the trailing crypto-algorithm tag byte is appended.
var rawEntropyBits = map[MnemonicStrength]int{
	StrengthEasy:   120,
	StrengthMiddle: 184,
	StrengthHard:   248,
}

// Account is a complete derived account: the entropy and sentence it came
// from, its address, and its PEM-encoded SEC1 key pair.
type Account struct {
	Entropy    []byte
	Mnemonic   string
	Address    string
	PrivateKey string
	PublicKey  string
}

// p256Order is the order of the P-256 base point, taken directly from
// FIPS 186-4; it is not exported by crypto/elliptic.
var p256Order, _ = new(big.Int).SetString("ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551", 16)

// CreateNewAccountWithMnemonic generates fresh entropy sized for strength,
// tags it with cryptography, and derives a full account in language.
func CreateNewAccountWithMnemonic(language wordlist.LanguageType, strength MnemonicStrength, cryptography config.CryptoType, cfg config.Account) (*Account, error) {
	if !cryptography.Valid() {
		return nil, cryptoerr.New(cryptoerr.MnemonicWordInvalid)
	}

	entropy, err := seed.GenerateEntropy(rawEntropyBits[strength])
	if err != nil {
		return nil, err
	}

	tagged := append(append([]byte{}, entropy...), byte(cryptography)<<4)

	sentence, err := mnemonic.GenerateSentenceFromEntropy(tagged, language)
	if err != nil {
		return nil, err
	}

	account, err := deriveAccount(sentence, tagged, cryptography, cfg)
	if err != nil {
		return nil, err
	}
	return account, nil
}

// RetrieveAccountByMnemonic recovers the account that sentence was generated
// for, re-deriving the same key pair and address.
func RetrieveAccountByMnemonic(sentence string, language wordlist.LanguageType, cfg config.Account) (*Account, error) {
	cryptography, err := GetCryptoByteFromMnemonic(sentence, language)
	if err != nil {
		return nil, err
	}

	entropy, err := mnemonic.GetEntropyFromMnemonicSentence(sentence, language)
	if err != nil {
		return nil, err
	}

	return deriveAccount(sentence, entropy, cryptography, cfg)
}

func deriveAccount(sentence string, entropy []byte, cryptography config.CryptoType, cfg config.Account) (*Account, error) {
	eSeed := seed.GenerateSeedFromMnemonic(sentence, cfg.SeedPassword)

	privateKeyPEM, publicKeyPEM, sec1Point, err := createNistP256KeyPair(eSeed)
	if err != nil {
		return nil, err
	}

	return &Account{
		Entropy:    entropy,
		Mnemonic:   sentence,
		Address:    GetAddressFromPublicKey(sec1Point, cryptography),
		PrivateKey: privateKeyPEM,
		PublicKey:  publicKeyPEM,
	}, nil
}

// createNistP256KeyPair derives a P-256 key pair from a 40-byte seed by
// reducing the seed modulo the curve order minus one and adding one back,
// so the resulting scalar always lies in [1, order-1].
func createNistP256KeyPair(eSeed [40]byte) (privateKeyPEM, publicKeyPEM string, sec1Point []byte, err error) {
	seedInt := new(big.Int).SetBytes(eSeed[:])
	order := new(big.Int).Sub(p256Order, big.NewInt(1))

	scalar := new(big.Int).Mod(seedInt, order)
	scalar.Add(scalar, big.NewInt(1))

	curve := elliptic.P256()
	priv := new(ecdsa.PrivateKey)
	priv.PublicKey.Curve = curve
	priv.D = scalar
	priv.PublicKey.X, priv.PublicKey.Y = curve.ScalarBaseMult(scalar.Bytes())

	der, err := x509.MarshalECPrivateKey(priv)
	if err != nil {
		return "", "", nil, cryptoerr.Newf(cryptoerr.ErrInvalidStringFormat, "marshaling EC private key: %v", err)
	}
	privateKeyPEM = string(pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: der}))

	sec1Point = elliptic.Marshal(curve, priv.PublicKey.X, priv.PublicKey.Y)
	publicKeyPEM = string(pem.EncodeToMemory(&pem.Block{Type: "EC PUBLIC KEY", Bytes: sec1Point}))

	return privateKeyPEM, publicKeyPEM, sec1Point, nil
}

// GetCryptoByteFromMnemonic recovers the crypto-algorithm tag embedded in
// sentence's entropy. Only the NistP256 tag corresponds to an account this
// module can actually derive; the others are reserved for algorithms this
// implementation doesn't yet support.
func GetCryptoByteFromMnemonic(sentence string, language wordlist.LanguageType) (config.CryptoType, error) {
	entropy, err := mnemonic.GetEntropyFromMnemonicSentence(sentence, language)
	if err != nil {
		return 0, err
	}

	tag := entropy[len(entropy)-1] >> 4
	cryptography := config.CryptoType(tag)
	if !cryptography.Valid() {
		return 0, cryptoerr.New(cryptoerr.MnemonicWordInvalid)
	}
	return cryptography, nil
}

// GetAddressFromPublicKey derives a Base58Check address from an uncompressed
// SEC1-encoded public key point: SHA-256, then RIPEMD-160, prefixed with the
// algorithm's version byte and suffixed with a double-SHA256 checksum.
func GetAddressFromPublicKey(sec1Point []byte, cryptography config.CryptoType) string {
	sha := sha256.Sum256(sec1Point)

	ripemd := ripemd160.New()
	ripemd.Write(sha[:])
	digest := ripemd.Sum(nil)

	payload := make([]byte, 0, 1+len(digest))
	payload = append(payload, byte(cryptography))
	payload = append(payload, digest...)

	checksum1 := sha256.Sum256(payload)
	checksum2 := sha256.Sum256(checksum1[:])

	full := append(append([]byte{}, payload...), checksum2[:4]...)
	return base58.Encode(full)
}

// GetEcdsaPrivateKeyFromPem parses a PEM-encoded SEC1 EC private key.
func GetEcdsaPrivateKeyFromPem(keyPEM string) (*ecdsa.PrivateKey, error) {
	block, _ := pem.Decode([]byte(keyPEM))
	if block == nil {
		return nil, cryptoerr.New(cryptoerr.ErrInvalidStringFormat)
	}
	priv, err := x509.ParseECPrivateKey(block.Bytes)
	if err != nil {
		return nil, cryptoerr.New(cryptoerr.ErrInvalidStringFormat)
	}
	return priv, nil
}

// GetEcdsaPublicKeyFromPem parses the raw-point SEC1 EC public key PEM this
// package produces.
func GetEcdsaPublicKeyFromPem(keyPEM string) (*ecdsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(keyPEM))
	if block == nil {
		return nil, cryptoerr.New(cryptoerr.ErrInvalidStringFormat)
	}
	curve := elliptic.P256()
	x, y := elliptic.Unmarshal(curve, block.Bytes)
	if x == nil {
		return nil, cryptoerr.New(cryptoerr.ErrInvalidStringFormat)
	}
	return &ecdsa.PublicKey{Curve: curve, X: x, Y: y}, nil
}

type ecdsaSignature struct {
	R, S *big.Int
}

// EcdsaSign signs data with the PEM-encoded SEC1 private key privateKeyPEM,
// returning a hex-encoded ASN.1 DER signature.
func EcdsaSign(privateKeyPEM string, data []byte) (string, error) {
	priv, err := GetEcdsaPrivateKeyFromPem(privateKeyPEM)
	if err != nil {
		return "", err
	}

	r, s, err := ecdsa.Sign(rand.Reader, priv, data)
	if err != nil {
		return "", cryptoerr.Newf(cryptoerr.ErrInvalidEcdsaSig, "signing: %v", err)
	}

	der, err := asn1.Marshal(ecdsaSignature{R: r, S: s})
	if err != nil {
		return "", cryptoerr.Newf(cryptoerr.ErrInvalidEcdsaSig, "encoding signature: %v", err)
	}
	return hex.EncodeToString(der), nil
}

// EcdsaVerify verifies signature (hex-encoded ASN.1 DER, as produced by
// EcdsaSign) over data against the PEM-encoded SEC1 public key publicKeyPEM.
func EcdsaVerify(publicKeyPEM string, data []byte, signature string) (bool, error) {
	pub, err := GetEcdsaPublicKeyFromPem(publicKeyPEM)
	if err != nil {
		return false, err
	}

	der, err := hex.DecodeString(signature)
	if err != nil {
		return false, cryptoerr.New(cryptoerr.ErrInvalidStringFormat)
	}

	var sig ecdsaSignature
	if _, err := asn1.Unmarshal(der, &sig); err != nil {
		return false, cryptoerr.New(cryptoerr.ErrInvalidStringFormat)
	}

	if !ecdsa.Verify(pub, data, sig.R, sig.S) {
		return false, cryptoerr.New(cryptoerr.ErrInvalidEcdsaSig)
	}
	return true, nil
}
