// Package wordlist loads the BIP-39-style word lists the mnemonic codec
// checks tokens against, mirroring the source's GetWord trait: a language
// selects a word list, and the word list builds its own reverse lookup map.
package wordlist

import (
	"strings"

	"github.com/xuperchain/crypto-core/cryptoerr"
)

// LanguageType selects which embedded word list a Wordlist loads.
type LanguageType int

const (
	English LanguageType = iota
	SimplifiedChinese
)

// wordCount is the canonical BIP-39 word list size. A list embedded with a
// different length is treated as not fully populated.
const wordCount = 2048

// Wordlist holds a loaded language's words and their index lookup map.
type Wordlist struct {
	Language LanguageType
	Words    []string
	indexOf  map[string]uint16
}

// New returns a Wordlist for language with nothing loaded yet; call
// LoadWords and then LoadIndex (or Load) before using it.
func New(language LanguageType) *Wordlist {
	return &Wordlist{Language: language}
}

// Load loads both the word list and its reverse index in one call.
func Load(language LanguageType) (*Wordlist, error) {
	w := New(language)
	if err := w.LoadWords(); err != nil {
		return nil, err
	}
	if err := w.LoadIndex(); err != nil {
		return nil, err
	}
	return w, nil
}

// LoadWords populates w.Words from the embedded data for w.Language.
func (w *Wordlist) LoadWords() error {
	var raw string
	switch w.Language {
	case English:
		raw = englishWords
	case SimplifiedChinese:
		raw = simplifiedChineseWords
	default:
		return cryptoerr.New(cryptoerr.LanguageNotSupportedYet)
	}
	w.Words = strings.Split(strings.TrimRight(raw, "\n"), "\n")
	return nil
}

// LoadIndex builds the word-to-index reverse map from the already-loaded
// word list. It fails if LoadWords has not run yet.
func (w *Wordlist) LoadIndex() error {
	if len(w.Words) == 0 {
		return cryptoerr.New(cryptoerr.WordlistNotInitiatedYet)
	}
	index := make(map[string]uint16, len(w.Words))
	for i, word := range w.Words {
		index[word] = uint16(i)
	}
	w.indexOf = index
	return nil
}

// Complete reports whether the loaded list has the full canonical 2048
// entries. A language can be loaded with a partial list without error;
// Complete lets callers decide whether that is acceptable for their use.
func (w *Wordlist) Complete() bool {
	return len(w.Words) == wordCount
}

// Index returns the position of word in the list and true, or false if word
// is absent (including when no list has been loaded).
func (w *Wordlist) Index(word string) (uint16, bool) {
	if w.indexOf == nil {
		return 0, false
	}
	i, ok := w.indexOf[word]
	return i, ok
}

// Word returns the list entry at i, or an empty string and false if i is out
// of range.
func (w *Wordlist) Word(i uint16) (string, bool) {
	if int(i) >= len(w.Words) {
		return "", false
	}
	return w.Words[i], true
}
