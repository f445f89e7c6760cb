// Package textenc decides the character encoding of raw novel bytes and
// decodes them to a Go string.
//
// Candidates are tried in a fixed priority order: Unicode first (UTF-8,
// honoring UTF-8 and UTF-16 byte-order marks), then the simplified-Chinese
// encodings in descending coverage order, GB18030 before GBK. The first
// successful decode wins; bytes that happen to be valid under several
// candidates deliberately resolve to the widest-coverage one.
package textenc

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

// Encoding labels reported by Detect
const (
	EncodingUTF8    = "UTF-8"
	EncodingUTF16   = "UTF-16"
	EncodingGB18030 = "GB18030"
	EncodingGBK     = "GBK"
)

// EncodingError reports bytes that could not be decoded under any
// candidate encoding.
type EncodingError struct {
	Tried []string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("unreadable bytes: no candidate encoding succeeded (tried %v)", e.Tried)
}

var (
	utf8BOM    = []byte{0xEF, 0xBB, 0xBF}
	utf16BEBOM = []byte{0xFE, 0xFF}
	utf16LEBOM = []byte{0xFF, 0xFE}
)

// Detect decodes data and reports which encoding was used.
// Empty input is valid and decodes to the empty string under UTF-8.
func Detect(data []byte) (string, string, error) {
	// Byte-order marks decide unambiguously.
	if bytes.HasPrefix(data, utf8BOM) {
		rest := data[len(utf8BOM):]
		if utf8.Valid(rest) {
			return string(rest), EncodingUTF8, nil
		}
	} else if bytes.HasPrefix(data, utf16BEBOM) || bytes.HasPrefix(data, utf16LEBOM) {
		if text, ok := decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), data); ok {
			return text, EncodingUTF16, nil
		}
	} else if utf8.Valid(data) {
		return string(data), EncodingUTF8, nil
	}

	if text, ok := decodeWith(simplifiedchinese.GB18030, data); ok {
		return text, EncodingGB18030, nil
	}
	if text, ok := decodeWith(simplifiedchinese.GBK, data); ok {
		return text, EncodingGBK, nil
	}

	return "", "", &EncodingError{
		Tried: []string{EncodingUTF8, EncodingGB18030, EncodingGBK},
	}
}

// decodeWith runs one candidate decoder. x/text decoders substitute
// U+FFFD for undecodable input instead of failing, so the presence of a
// replacement rune in the output marks the candidate as unsuccessful.
func decodeWith(enc encoding.Encoding, data []byte) (string, bool) {
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", false
	}
	if bytes.ContainsRune(out, utf8.RuneError) {
		return "", false
	}
	return string(out), true
}
