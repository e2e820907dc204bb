// Command cryptocore-demo walks through the account factory and the
// threshold BLS scheme end to end: generate a mnemonic account, sign and
// verify with it, then run a small DKG/DSG round and verify the combined
// threshold signature.
package main

import (
	"fmt"
	"os"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xuperchain/crypto-core/account"
	"github.com/xuperchain/crypto-core/bls"
	"github.com/xuperchain/crypto-core/config"
	"github.com/xuperchain/crypto-core/wordlist"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := run(); err != nil {
		log.Error().Err(err).Msg("demo failed")
		os.Exit(1)
	}
}

func run() error {
	if err := demoAccount(); err != nil {
		return fmt.Errorf("account demo: %w", err)
	}
	if err := demoThresholdSignature(3); err != nil {
		return fmt.Errorf("threshold signature demo: %w", err)
	}
	return nil
}

func demoAccount() error {
	acc, err := account.CreateNewAccountWithMnemonic(wordlist.English, account.StrengthMiddle, config.NistP256, config.DefaultAccount())
	if err != nil {
		return err
	}
	log.Info().Str("mnemonic", acc.Mnemonic).Str("address", acc.Address).Msg("created account")

	msg := []byte("hello from cryptocore-demo")
	sig, err := account.EcdsaSign(acc.PrivateKey, msg)
	if err != nil {
		return err
	}

	ok, err := account.EcdsaVerify(acc.PublicKey, msg, sig)
	if err != nil {
		return err
	}
	log.Info().Bool("verified", ok).Msg("signed and verified with the derived key")

	retrieved, err := account.RetrieveAccountByMnemonic(acc.Mnemonic, wordlist.English, config.DefaultAccount())
	if err != nil {
		return err
	}
	log.Info().Bool("address_matches", retrieved.Address == acc.Address).Msg("retrieved account from its own mnemonic")
	return nil
}

func demoThresholdSignature(parties int) error {
	accounts := make([]*bls.Account, parties)
	for i := range accounts {
		acc, err := bls.CreateNewAccount()
		if err != nil {
			return err
		}
		accounts[i] = acc
	}

	publicKeys := make([]bls.PublicKey, parties)
	for i, acc := range accounts {
		publicKeys[i] = acc.PublicKey
	}
	publicKeySum, err := bls.SumPublicKey(publicKeys)
	if err != nil {
		return err
	}

	kCoeffs := make([]fr.Element, parties)
	for i, acc := range accounts {
		kCoeffs[i] = bls.GetK(acc.PublicKey, publicKeySum)
	}

	publicKeyParts := make([]bls.PublicKey, parties)
	for i, acc := range accounts {
		publicKeyParts[i] = bls.GetPublicKeyPart(acc.PublicKey, kCoeffs[i])
	}
	thresholdPublicKey, err := bls.SumPublicKey(publicKeyParts)
	if err != nil {
		return err
	}

	privates := make([]bls.PartnerPrivate, parties)
	for target := 0; target < parties; target++ {
		var fragments []bls.M
		for i, acc := range accounts {
			fragments = append(fragments, bls.GetM(kCoeffs[i], acc.PrivateKey.X, accounts[target].Index, thresholdPublicKey))
		}
		mk, err := bls.GetMK(fragments)
		if err != nil {
			return err
		}
		privates[target] = bls.PartnerPrivate{
			Public: bls.PartnerPublic{
				Index:     accounts[target].Index,
				PublicKey: accounts[target].PublicKey,
			},
			ThresholdPublicKey: thresholdPublicKey,
			X:                  accounts[target].PrivateKey.X,
			MKi:                mk.P,
		}
	}

	msg := []byte("threshold-signed by cryptocore-demo")
	parts := make([]bls.SignaturePart, parties)
	for i, priv := range privates {
		parts[i] = bls.Sign(priv, msg)
	}

	combined, err := bls.CombineSign(parts)
	if err != nil {
		return err
	}

	ok, err := bls.VerifySign(thresholdPublicKey, combined, msg)
	if err != nil {
		return err
	}
	log.Info().Int("parties", parties).Bool("verified", ok).Msg("combined threshold signature verified")
	return nil
}
