// Package base32 converts text to and from RFC 4648 Base32, using either the
// standard or the extended hex alphabet.
//
// Encoded output is padded with '=' until its length is a multiple of 8.
// Decoding ignores white space and letter case, and drops the trailing bits that
// do not fill a whole byte without checking they are zero.
package base32

import (
	"strings"
	"unicode/utf8"
)

// Encode returns the Base32 form of the UTF-8 bytes of text. Invalid UTF-8 in
// text is replaced with U+FFFD before encoding.
func Encode(text string, useHex bool) string {
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, string(utf8.RuneError))
	}
	return encode(AlphabetFor(useHex), []byte(text))
}

func encode(a *Alphabet, src []byte) string {
	if len(src) == 0 {
		return ""
	}
	n := (len(src)*8 + 4) / 5
	var sb strings.Builder
	sb.Grow((n + 7) / 8 * 8)

	var buf uint32
	var bits uint
	for _, b := range src {
		buf = buf<<8 | uint32(b)
		bits += 8
		for bits >= 5 {
			bits -= 5
			sb.WriteByte(a.Symbol(byte(buf>>bits) & 0x1F))
		}
	}
	if bits > 0 {
		sb.WriteByte(a.Symbol(byte(buf<<(5-bits)) & 0x1F))
	}
	for sb.Len()%8 != 0 {
		sb.WriteByte(padChar)
	}
	return sb.String()
}
