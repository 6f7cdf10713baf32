package base32

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Decode returns the text encoded in s. White space anywhere in s is ignored,
// letters are matched case-insensitively and the trailing '=' run is dropped.
//
// It fails with a *DecodeError of type InvalidCharacter on the first symbol not
// in the alphabet, or InvalidUTF8 when the decoded bytes are not UTF-8 text.
func Decode(s string, useHex bool) (string, error) {
	b, err := decode(AlphabetFor(useHex), normalize(s))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", newInvalidUTF8Error()
	}
	return string(b), nil
}

// normalize removes white space, uppercases and trims the padding run.
// Uppercasing uses full case mapping, so 'ß' becomes "SS".
func normalize(s string) string {
	s = strings.Map(func(r rune) rune {
		if isSpace(r) {
			return -1
		}
		return r
	}, s)
	// A Caser is stateful and must not be shared between goroutines.
	s = cases.Upper(language.Und).String(s)
	return strings.TrimRight(s, string(padChar))
}

// isSpace reports Unicode white space and the byte order mark, except NEL.
func isSpace(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return unicode.IsSpace(r) || r == '\uFEFF'
}

func decode(a *Alphabet, s string) ([]byte, error) {
	dst := make([]byte, 0, len(s)*5/8)

	var buf uint32
	var bits uint
	for _, r := range s {
		v, ok := a.Index(r)
		if !ok {
			return nil, newInvalidCharacterError(r)
		}
		buf = buf<<5 | uint32(v)
		bits += 5
		if bits >= 8 {
			bits -= 8
			dst = append(dst, byte(buf>>bits))
		}
	}
	// The remaining bits < 8 are encoder padding and are discarded.
	return dst, nil
}
