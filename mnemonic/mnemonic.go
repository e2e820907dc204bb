// Package mnemonic implements the BIP-39-shaped entropy/sentence codec the
// account factory builds on. The checksum construction intentionally departs
// from BIP-39 in one place (it takes the second byte of the SHA-256 digest,
// not the first) so that sentences generated by the original implementation
// remain verifiable; see DESIGN.md.
package mnemonic

import (
	"crypto/sha256"
	"math/big"
	"strings"

	"github.com/xuperchain/crypto-core/cryptoerr"
	"github.com/xuperchain/crypto-core/internal/bytesutil"
	"github.com/xuperchain/crypto-core/wordlist"
)

var validWordCounts = map[int]bool{12: true, 15: true, 18: true, 21: true, 24: true}

var (
	last11BitsMask        = big.NewInt(2047)
	rightShift11BitsDivisor = big.NewInt(2048)
)

// ValidateEntropyBitSize reports an error unless bitSize is a multiple of 32
// between 128 and 256 inclusive, the sizes the sentence lengths 12..24 map
// to.
func ValidateEntropyBitSize(bitSize int) error {
	if bitSize%32 != 0 || bitSize < 128 || bitSize > 256 {
		return cryptoerr.New(cryptoerr.ErrInvalidEntropyLength)
	}
	return nil
}

// ValidateRawEntropyBitSize reports an error unless bitSize+8 (the extra
// byte being the account factory's crypto-algorithm tag) is a valid entropy
// bit size.
func ValidateRawEntropyBitSize(bitSize int) error {
	if (bitSize+8)%32 != 0 || bitSize+8 < 128 || bitSize+8 > 256 {
		return cryptoerr.New(cryptoerr.ErrInvalidRawEntropyLength)
	}
	return nil
}

// GenerateSentenceFromEntropy encodes entropy (raw entropy from
// seed.GenerateEntropy with the account factory's one-byte tag appended, so
// that its bit size passes ValidateEntropyBitSize) into a space-separated
// mnemonic sentence in the given language.
func GenerateSentenceFromEntropy(entropy []byte, language wordlist.LanguageType) (string, error) {
	entropyBitLength := len(entropy) * 8
	if err := ValidateEntropyBitSize(entropyBitLength); err != nil {
		return "", err
	}

	list, err := wordlist.Load(language)
	if err != nil {
		return "", err
	}

	checksumBitLength := entropyBitLength / 32
	sentenceLength := (entropyBitLength + checksumBitLength) / 11

	withChecksum := addChecksum(entropy)
	value := new(big.Int).SetBytes(withChecksum)

	words := make([]string, 0, sentenceLength)
	chunk := new(big.Int)
	for i := 0; i < sentenceLength; i++ {
		chunk.And(value, last11BitsMask)
		value.Div(value, rightShift11BitsDivisor)

		wordBytes := bytesutil.Pad(chunk.Bytes(), 2)
		index := uint16(wordBytes[0])<<8 | uint16(wordBytes[1])

		word, ok := list.Word(index)
		if !ok {
			return "", cryptoerr.New(cryptoerr.MnemonicWordInvalid)
		}
		words = append(words, word)
	}

	reverse(words)
	return strings.Join(words, " "), nil
}

// GetEntropyFromMnemonicSentence recovers the original entropy from a
// mnemonic sentence, validating word membership, sentence length and
// checksum along the way.
func GetEntropyFromMnemonicSentence(sentence string, language wordlist.LanguageType) ([]byte, error) {
	words, err := getWordsFromValidMnemonicSentence(sentence, language)
	if err != nil {
		return nil, err
	}

	mnemonicBitSize := len(words) * 11
	checksumBitSize := mnemonicBitSize % 32

	list, err := wordlist.Load(language)
	if err != nil {
		return nil, err
	}

	value := new(big.Int)
	for _, word := range words {
		index, ok := list.Index(word)
		if !ok {
			return nil, cryptoerr.New(cryptoerr.MnemonicWordInvalid)
		}
		value.Mul(value, rightShift11BitsDivisor)
		value.Or(value, big.NewInt(int64(index)))
	}

	checksumModulo := new(big.Int).Lsh(big.NewInt(1), uint(checksumBitSize))
	entropy := new(big.Int).Div(value, checksumModulo)

	entropyByteSize := (mnemonicBitSize - checksumBitSize) / 8
	fullByteSize := entropyByteSize + 1

	entropyBytes := bytesutil.Pad(entropy.Bytes(), entropyByteSize)
	withChecksumFromSentence := bytesutil.Pad(value.Bytes(), fullByteSize)
	withChecksumRecomputed := bytesutil.Pad(addChecksum(entropyBytes), fullByteSize)

	if !bytesutil.Compare(withChecksumFromSentence, withChecksumRecomputed) {
		return nil, cryptoerr.New(cryptoerr.MnemonicChecksumInvalid)
	}
	return bytesutil.Pad(entropyBytes, entropyByteSize), nil
}

func getWordsFromValidMnemonicSentence(sentence string, language wordlist.LanguageType) ([]string, error) {
	words, err := getWordsFromMnemonicSentence(sentence)
	if err != nil {
		return nil, err
	}

	list, err := wordlist.Load(language)
	if err != nil {
		return nil, err
	}

	return checkWordsWithinLanguageWordlist(words, list)
}

func getWordsFromMnemonicSentence(sentence string) ([]string, error) {
	words := strings.Split(sentence, " ")
	if !validWordCounts[len(words)] {
		return nil, cryptoerr.New(cryptoerr.MnemonicNumInvalid)
	}
	return words, nil
}

func checkWordsWithinLanguageWordlist(words []string, list *wordlist.Wordlist) ([]string, error) {
	for _, word := range words {
		found := false
		for _, candidate := range list.Words {
			if candidate == word {
				found = true
				break
			}
		}
		if !found {
			return nil, cryptoerr.New(cryptoerr.MnemonicWordInvalid)
		}
	}
	return words, nil
}

// addChecksum appends sha256(data)[1]'s top len(data)/4 bits to data, one bit
// per iteration from the most-significant end. The checksum byte index is 1,
// not 0: this is not a BIP-39 sentence codec, it is a bit-compatible replica
// of one, and this is the detail that distinguishes the two.
func addChecksum(data []byte) []byte {
	hash := sha256.Sum256(data)
	checksumByte := hash[1]

	checksumBitLength := len(data) / 4

	value := new(big.Int).SetBytes(data)
	for i := 0; i < checksumBitLength; i++ {
		value.Lsh(value, 1)
		if checksumByte&(1<<(7-uint(i))) > 0 {
			value.Or(value, big.NewInt(1))
		}
	}
	return value.Bytes()
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
