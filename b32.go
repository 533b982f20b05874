// Package b32 implements a configurable base32 codec.
//
// The bit-packing scheme is the one of RFC 4648: bytes are processed in
// groups of 5, split into 5-bit values and mapped through a 32-symbol
// alphabet, most significant bits first. Unlike the stdlib
// `encoding/base32`, the codec is configurable on the axes that differ
// between base32 dialects in the wild:
//
//   - the alphabet itself, e.g. [StdAlphabet] or [ZBase32Alphabet], or
//     any other 32-symbol string;
//   - padding, off by default, enabled with [Encoding.WithPadding];
//   - case sensitivity, off by default: "mzxw6" and "MZXW6" decode to
//     the same bytes unless [Encoding.CaseSensitive] says otherwise;
//   - whitespace tolerance on decode, for input that arrives wrapped or
//     indented, via [Encoding.IgnoreWhitespace].
//
// Encoding and decoding operate on whole in-memory buffers and are safe
// for concurrent use. Decoding goes through a process-wide table cache,
// so constructing many [Encoding] values sharing an alphabet costs one
// table build in total.
package b32

// Alphabets this package ships with. Any other 32-symbol string works
// as well; see [NewEncoding].
const (
	// StdAlphabet is the RFC 4648 base32 alphabet.
	StdAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

	// ZBase32Alphabet is the z-base-32 alphabet, chosen by its authors
	// to be easier for humans to read and transcribe.
	ZBase32Alphabet = "ybndrfg8ejkmcpqxot1uwisza345h769"
)

const (
	// StdPadding is the conventional '=' padding character.
	StdPadding rune = '='
	// NoPadding disables padding.
	NoPadding rune = -1
)

// ConfigError is returned by [NewEncoding] when the requested
// configuration is not a usable codec.
type ConfigError string

func (e ConfigError) Error() string {
	return "b32: invalid configuration: " + string(e)
}

// FormatError is returned by the decoding functions when the input is
// not valid for the configured encoding.
type FormatError string

func (e FormatError) Error() string {
	return "b32: " + string(e)
}

func errInvalidChar(c byte, alphabet string) FormatError {
	return FormatError("invalid character '" + string(c) + "', valid characters are: " + alphabet)
}

// Encoding is a base32 codec for one alphabet and one set of options.
// The zero value is not usable; construct values with [NewEncoding] or
// start from [StdEncoding] or [ZBase32Encoding]. An Encoding is
// immutable: the With* and option methods return modified copies, and
// any Encoding may be used from multiple goroutines concurrently.
type Encoding struct {
	alphabet         string
	padChar          rune
	caseSensitive    bool
	ignoreWhitespace bool
	cache            *IndexCache
}

// NewEncoding builds an Encoding over the given 32-symbol alphabet,
// with defaults: no padding, case-insensitive, whitespace not ignored.
// It returns a [ConfigError] if the alphabet is not exactly 32 symbols
// long.
//
// Symbol uniqueness is not checked: an alphabet that repeats a symbol
// (or, case-insensitively, contains both cases of one letter) encodes
// fine but decodes ambiguously, with the symbol's last position
// winning. Don't do that.
func NewEncoding(alphabet string) (*Encoding, error) {
	if len(alphabet) != 32 {
		return nil, ConfigError("alphabet must be exactly 32 symbols")
	}
	return &Encoding{
		alphabet: alphabet,
		padChar:  NoPadding,
		cache:    defaultCache,
	}, nil
}

// WithPadding returns an Encoding identical to enc except that its
// padding character is padding, or padding disabled for [NoPadding].
// When padding is on, encoded output is right-padded to a multiple of
// 8 symbols, and decoding requires input length to be a multiple of 8.
func (enc Encoding) WithPadding(padding rune) *Encoding {
	enc.padChar = padding
	return &enc
}

// CaseSensitive returns an Encoding identical to enc except for
// whether decoding distinguishes ASCII letter case.
func (enc Encoding) CaseSensitive(sensitive bool) *Encoding {
	enc.caseSensitive = sensitive
	return &enc
}

// IgnoreWhitespace returns an Encoding identical to enc except for
// whether decoding strips ASCII whitespace from its input first.
func (enc Encoding) IgnoreWhitespace(ignore bool) *Encoding {
	enc.ignoreWhitespace = ignore
	return &enc
}

// WithIndexCache returns an Encoding identical to enc but using c as
// its decode table cache instead of the process-wide one. Mostly
// useful in tests.
func (enc Encoding) WithIndexCache(c *IndexCache) *Encoding {
	enc.cache = c
	return &enc
}

// StdEncoding is the codec most interchange formats want: RFC 4648
// alphabet, no padding, case-insensitive, whitespace ignored on
// decode.
var StdEncoding = &Encoding{
	alphabet:         StdAlphabet,
	padChar:          NoPadding,
	ignoreWhitespace: true,
	cache:            defaultCache,
}

// ZBase32Encoding is [StdEncoding] with the z-base-32 alphabet.
var ZBase32Encoding = &Encoding{
	alphabet:         ZBase32Alphabet,
	padChar:          NoPadding,
	ignoreWhitespace: true,
	cache:            defaultCache,
}

// EncodeToString returns the [StdEncoding] encoding of src.
func EncodeToString(src []byte) string {
	return StdEncoding.EncodeToString(src)
}

// DecodeString returns the bytes represented by the [StdEncoding]
// string s.
func DecodeString(s string) ([]byte, error) {
	return StdEncoding.DecodeString(s)
}
