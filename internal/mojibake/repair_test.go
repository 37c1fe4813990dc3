package mojibake

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixText_SpecialSequence(t *testing.T) {
	require.Equal(t, "❌", FixText("â\u009dŒ"))
	require.Equal(t, "Status: ❌ failed", FixText("Status: â\u009dŒ failed"))
	require.Equal(t, "❌❌", FixText("â\u009dŒâ\u009dŒ"))
}

func TestFixText_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"e acute", "cafÃ©", "café"},
		{"u umlaut", "Ã¼ber", "über"},
		{"i diaeresis", "naÃ¯ve", "naïve"},
		{"no-break space", "a\u00c2\u00a0b", "a\u00a0b"},
		{"right single quote", "itâ€™s", "it’s"},
		{"left double quote", "â€œhi", "“hi"},
		{"em dash", "aâ€”b", "a—b"},
		{"euro sign", "5â‚¬", "5€"},
		{"byte order mark", "\u00ef\u00bb\u00bf<html>", "\ufeff<html>"},
		{"latin1 fallback for byte cp1252 leaves undefined", "Ã\u0081", "Á"},
		{"several on one line", "Ã©tÃ© â€” ok", "été — ok"},
		{"marker in second slot of window", "xÃ©", "xé"},
		{"two-char rule before three-char rule", "Ã©â€™", "é’"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FixText(tt.input))
		})
	}
}

func TestFixText_FallsThrough(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"marker followed by ascii", "Âx"},
		{"french word with capital A circumflex", "Âme"},
		{"two markers", "ÂÂ"},
		{"lone marker at end", "abcÃ"},
		{"three-byte prefix cut short", "â€"},
		{"right double quote with undefined cp1252 byte", "â€\u009d"},
		{"i diaeresis in prose", "naïve"},
		{"a circumflex in prose", "pâte"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.input, FixText(tt.input))
		})
	}
}

func TestFixText_NoBacktracking(t *testing.T) {
	// "Ãâ€" fails as a whole, so Ã is copied and the scan resumes at â.
	assert.Equal(t, "Ã’", FixText("Ãâ€™"))
}

func TestFixText_InvalidBytesCopied(t *testing.T) {
	assert.Equal(t, "a\xffé", FixText("a\xffÃ©"))
	assert.Equal(t, "\xff\xfe", FixText("\xff\xfe"))
}

func TestFixText_IdentityOnCleanText(t *testing.T) {
	alphabet := []rune("abcXYZ 019<>/&;=\"'\n\téüñçÀ€—’“”…中文😀")
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		var b strings.Builder
		length := rng.Intn(40)
		for j := 0; j < length; j++ {
			b.WriteRune(alphabet[rng.Intn(len(alphabet))])
		}
		s := b.String()
		require.Equal(t, s, FixText(s), "clean input %q was modified", s)
	}
}

func TestFixText_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"<p>plain ascii</p>",
		"<p>cafÃ© and crÃ¨me brÃ»lÃ©e</p>",
		"itâ€™s â€œquotedâ€\u009d",
		"Status: â\u009dŒ",
		"Âx Ã",
		"naÃ¯ve naïve",
	}

	for _, s := range inputs {
		once := FixText(s)
		assert.Equal(t, once, FixText(once), "input %q", s)
	}
}

func TestRepairer_MaxPasses(t *testing.T) {
	doubled := "ÃƒÂ©" // "é" garbled twice

	single, n := New().FixCount(doubled)
	assert.Equal(t, "Ã©", single)
	assert.Equal(t, 2, n)

	multi, n := New(WithMaxPasses(5)).FixCount(doubled)
	assert.Equal(t, "é", multi)
	assert.Equal(t, 3, n)

	r := New(WithMaxPasses(5))
	assert.Equal(t, r.Fix(doubled), r.Fix(r.Fix(doubled)))
}

func TestRepairer_MaxPassesBelowOne(t *testing.T) {
	r := New(WithMaxPasses(0))
	assert.Equal(t, 1, r.maxPasses)
}

func TestRepairer_FixCount(t *testing.T) {
	fixed, n := New().FixCount("cafÃ© â€” â\u009dŒ")
	assert.Equal(t, "café — ❌", fixed)
	assert.Equal(t, 3, n)

	fixed, n = New().FixCount("clean")
	assert.Equal(t, "clean", fixed)
	assert.Zero(t, n)
}

func TestRepairer_ExtraSpecialSequences(t *testing.T) {
	r := New(WithSpecialSequences(map[string]string{
		"â€\u009d": "”",
	}))

	assert.Equal(t, "“quoted”", r.Fix("â€œquotedâ€\u009d"))
	assert.Equal(t, "❌", r.Fix("â\u009dŒ"), "built-in entries are kept")

	// The package default is untouched.
	assert.Equal(t, "â€\u009d", FixText("â€\u009d"))
}

func TestNew_InvalidSpecialSequences(t *testing.T) {
	tests := []struct {
		name  string
		extra map[string]string
	}{
		{"key too short", map[string]string{"ab": "x"}},
		{"key too long", map[string]string{"abcd": "x"}},
		{"key not utf-8", map[string]string{"a\xffb": "x"}},
		{"empty replacement", map[string]string{"abc": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, func() { New(WithSpecialSequences(tt.extra)) })
		})
	}
}

func TestSpecialSequences_ReturnsCopy(t *testing.T) {
	table := SpecialSequences()
	require.Equal(t, "❌", table["â\u009dŒ"])

	table["â\u009dŒ"] = "changed"
	assert.Equal(t, "❌", SpecialSequences()["â\u009dŒ"])
}

func TestValidSpecialKey(t *testing.T) {
	assert.True(t, ValidSpecialKey("â\u009dŒ"))
	assert.True(t, ValidSpecialKey("abc"))
	assert.False(t, ValidSpecialKey("ab"))
	assert.False(t, ValidSpecialKey("abcd"))
	assert.False(t, ValidSpecialKey("a\xffc"))
}

func BenchmarkFixText_Clean(b *testing.B) {
	text := strings.Repeat("<p>The quick brown fox jumps over the lazy dog.</p>\n", 200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FixText(text)
	}
}

func BenchmarkFixText_Garbled(b *testing.B) {
	text := strings.Repeat("<p>cafÃ© â€” itâ€™s</p>\n", 200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FixText(text)
	}
}
