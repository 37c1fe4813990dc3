package mojibake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestCandidates_Order(t *testing.T) {
	require.Len(t, candidates, 2)
	assert.Equal(t, "cp1252", candidates[0].name)
	assert.Equal(t, "latin1", candidates[1].name)
}

func TestTryDecode(t *testing.T) {
	tests := []struct {
		name   string
		chunk  string
		want   string
		wantOK bool
	}{
		{"two-byte sequence", "Ã©", "é", true},
		{"three-byte sequence", "â€™", "’", true},
		{"latin1 only", "Ã\u0081", "Á", true},
		{"ascii round-trips", "abc", "abc", true},
		{"invalid utf-8 under both", "Âx", "", false},
		{"lone continuation byte", "€", "", false},
		{"not encodable", "中文", "", false},
		{"undefined cp1252 byte and non-latin1 char", "â€\u009d", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TryDecode(tt.chunk)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeWith_StrictCP1252(t *testing.T) {
	cp1252 := encodeWith(charmap.Windows1252, cp1252Undefined)
	latin1 := encodeWith(charmap.ISO8859_1, nil)

	for r := range cp1252Undefined {
		_, ok := cp1252(string(r))
		assert.False(t, ok, "cp1252 should refuse U+%04X", r)

		raw, ok := latin1(string(r))
		require.True(t, ok, "latin1 should encode U+%04X", r)
		assert.Equal(t, []byte{byte(r)}, raw)
	}

	raw, ok := cp1252("€™")
	require.True(t, ok)
	assert.Equal(t, []byte{0x80, 0x99}, raw)

	_, ok = latin1("€")
	assert.False(t, ok)
}

func TestDecodeUTF8(t *testing.T) {
	s, ok := decodeUTF8([]byte{0xC3, 0xA9})
	assert.True(t, ok)
	assert.Equal(t, "é", s)

	_, ok = decodeUTF8([]byte{0xC3})
	assert.False(t, ok)

	// surrogate halves are not valid UTF-8
	_, ok = decodeUTF8([]byte{0xED, 0xA0, 0x80})
	assert.False(t, ok)
}
