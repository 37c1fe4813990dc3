package mojibake

import "unicode/utf8"

// specialSequences maps garbled three-character sequences that the round trip
// cannot recover to their intended character. "❌" is E2 9D 8C in UTF-8 and
// 0x9D has no cp1252 mapping, so it surfaces as "â", U+009D, "Œ".
var specialSequences = map[string]string{
	"â\u009dŒ": "❌",
}

// SpecialSequences returns a copy of the built-in special-sequence table.
func SpecialSequences() map[string]string {
	out := make(map[string]string, len(specialSequences))
	for k, v := range specialSequences {
		out[k] = v
	}
	return out
}

// ValidSpecialKey reports whether key can be used in the special-sequence
// table: valid UTF-8, exactly three characters.
func ValidSpecialKey(key string) bool {
	return utf8.ValidString(key) && utf8.RuneCountInString(key) == 3
}
