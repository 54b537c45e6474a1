/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package textencoding

import (
	"errors"

	"golang.org/x/text/encoding/unicode"
	xtransform "golang.org/x/text/transform"
)

// ToUTF8 is the to_utf8 primitive (§4.A): if data starts with the UTF-16BE
// byte-order mark, decode the remainder as UTF-16BE strict; otherwise map
// each byte through table to a UTF-16 code unit and decode that sequence. An
// unpaired surrogate code unit is reported as an error, matching every
// caller except the ToUnicode-map builder (see ToUTF8Lenient).
func ToUTF8(table EncodingTable, data []byte) (string, error) {
	var u16 []byte
	if len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF {
		u16 = data[2:]
	} else {
		u16 = tableToUTF16BEBytes(table, data)
	}
	if len(dropUnpairedSurrogates(u16)) != len(u16)&^1 {
		return "", errors.New("textencoding: unpaired UTF-16 surrogate")
	}
	return decodeUTF16BE(u16)
}

// ToUTF8Lenient behaves like ToUTF8 but silently drops unpaired surrogate
// code units instead of erroring, the relaxed mode §4.A reserves for the
// ToUnicode-map builder ingesting bfchar/bfrange values.
func ToUTF8Lenient(data []byte) (string, error) {
	return decodeUTF16BE(dropUnpairedSurrogates(data))
}

func tableToUTF16BEBytes(table EncodingTable, data []byte) []byte {
	buf := make([]byte, 0, len(data)*2)
	for _, b := range data {
		u := table[b]
		buf = append(buf, byte(u>>8), byte(u))
	}
	return buf
}

func decodeUTF16BE(data []byte) (string, error) {
	dec := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	out, _, err := xtransform.Bytes(dec, data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// dropUnpairedSurrogates removes any UTF-16 code unit in the surrogate
// range that is not part of a valid high/low pair, so that decodeUTF16BE
// never trips over them (x/text's decoder would otherwise substitute
// U+FFFD rather than drop the unit, per §4.A "silently skips surrogate
// ranges").
func dropUnpairedSurrogates(data []byte) []byte {
	out := make([]byte, 0, len(data))
	i := 0
	for i+1 < len(data) {
		u := uint16(data[i])<<8 | uint16(data[i+1])
		switch {
		case u >= 0xD800 && u <= 0xDBFF:
			if i+3 < len(data) {
				u2 := uint16(data[i+2])<<8 | uint16(data[i+3])
				if u2 >= 0xDC00 && u2 <= 0xDFFF {
					out = append(out, data[i], data[i+1], data[i+2], data[i+3])
					i += 4
					continue
				}
			}
			i += 2 // unpaired high surrogate, dropped
		case u >= 0xDC00 && u <= 0xDFFF:
			i += 2 // stray low surrogate, dropped
		default:
			out = append(out, data[i], data[i+1])
			i += 2
		}
	}
	return out
}
