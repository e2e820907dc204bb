// Package cryptoerr defines the single tagged-union error type shared by
// every fallible operation in the crypto core, replacing the source's
// struct-with-enum pattern (kind + message) with one Go error type.
package cryptoerr

import "fmt"

// Kind identifies the category of failure. Stable across releases; the
// string form is informational only.
type Kind int

const (
	// LanguageNotSupportedYet is raised for an unknown language enumerant.
	LanguageNotSupportedYet Kind = iota + 1
	// WordlistNotInitiatedYet is raised when a reverse-map lookup is
	// requested before the word list has been loaded.
	WordlistNotInitiatedYet
	// MnemonicNumInvalid is raised when a mnemonic's word count is not one
	// of 12, 15, 18, 21, 24.
	MnemonicNumInvalid
	// MnemonicWordInvalid is raised when a token is absent from the
	// language word list, or an embedded algorithm tag is unrecognized.
	MnemonicWordInvalid
	// MnemonicChecksumInvalid is raised when the recomputed checksum bits
	// disagree with the ones embedded in the mnemonic.
	MnemonicChecksumInvalid
	// ErrInvalidEntropyLength is raised when padded entropy bit length is
	// not one of 128, 160, 192, 224, 256.
	ErrInvalidEntropyLength
	// ErrInvalidRawEntropyLength is raised when raw (pre-tag) entropy bit
	// length is not one of 120, 152, 184, 216, 248.
	ErrInvalidRawEntropyLength
	// ErrInvalidStringFormat is raised on PEM/SEC1 parse failure.
	ErrInvalidStringFormat
	// ErrInvalidEcdsaSig is raised when ECDSA verification fails
	// cryptographically.
	ErrInvalidEcdsaSig
	// ErrEmptyArray is raised when an aggregation input is empty.
	ErrEmptyArray
)

var messages = map[Kind]string{
	LanguageNotSupportedYet:    "the language is not supported yet",
	WordlistNotInitiatedYet:    "word list not initiated yet",
	MnemonicNumInvalid:         "mnemonic word count invalid",
	MnemonicWordInvalid:        "mnemonic contains an unrecognized word",
	MnemonicChecksumInvalid:    "mnemonic checksum invalid",
	ErrInvalidEntropyLength:    "entropy length invalid",
	ErrInvalidRawEntropyLength: "raw entropy length invalid",
	ErrInvalidStringFormat:     "invalid string format",
	ErrInvalidEcdsaSig:         "invalid ecdsa signature",
	ErrEmptyArray:              "empty array",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if msg, ok := messages[k]; ok {
		return msg
	}
	return "unknown error"
}

// Error is the single error type returned by every fallible operation in
// this module.
type Error struct {
	Kind    Kind
	Message string
}

// New builds an Error for kind, using the kind's default message.
func New(kind Kind) *Error {
	return &Error{Kind: kind, Message: kind.String()}
}

// Newf builds an Error for kind with a custom, formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Is reports whether err carries the given Kind, so callers can branch with
// errors.Is(err, cryptoerr.New(cryptoerr.MnemonicNumInvalid)) or, more
// directly, by comparing the kind returned by cryptoerr.KindOf(err) against
// cryptoerr.MnemonicNumInvalid.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// KindOf extracts the Kind from err, if err is a *Error produced by this
// package; ok is false otherwise.
func KindOf(err error) (kind Kind, ok bool) {
	e, isErr := err.(*Error)
	if !isErr {
		return 0, false
	}
	return e.Kind, true
}
