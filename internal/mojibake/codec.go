package mojibake

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// candidate is one step of the round-trip fallback chain.
type candidate struct {
	name   string
	encode func(chunk string) ([]byte, bool)
	decode func(raw []byte) (string, bool)
}

// cp1252Undefined holds the code points Windows-1252 leaves unassigned.
// The charmap table maps those bytes to C1 controls; a strict cp1252 codec
// refuses them, and so do we.
var cp1252Undefined = map[rune]bool{
	0x81: true,
	0x8D: true,
	0x8F: true,
	0x90: true,
	0x9D: true,
}

// candidates is tried in order; the first encoding that round-trips wins.
var candidates = []candidate{
	{name: "cp1252", encode: encodeWith(charmap.Windows1252, cp1252Undefined), decode: decodeUTF8},
	{name: "latin1", encode: encodeWith(charmap.ISO8859_1, nil), decode: decodeUTF8},
}

func encodeWith(cm *charmap.Charmap, undefined map[rune]bool) func(string) ([]byte, bool) {
	return func(chunk string) ([]byte, bool) {
		raw := make([]byte, 0, len(chunk))
		for _, r := range chunk {
			if undefined[r] {
				return nil, false
			}
			b, ok := cm.EncodeRune(r)
			if !ok {
				return nil, false
			}
			raw = append(raw, b)
		}
		return raw, true
	}
}

func decodeUTF8(raw []byte) (string, bool) {
	if !utf8.Valid(raw) {
		return "", false
	}
	return string(raw), true
}

// TryDecode re-encodes chunk as cp1252, then latin1, and returns the first
// byte sequence that is valid UTF-8. It reports false when no candidate
// encoding can represent chunk or none of the results decode.
func TryDecode(chunk string) (string, bool) {
	for _, c := range candidates {
		raw, ok := c.encode(chunk)
		if !ok {
			continue
		}
		decoded, ok := c.decode(raw)
		if !ok {
			continue
		}
		return decoded, true
	}
	return "", false
}
