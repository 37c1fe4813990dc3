package mojibake

import (
	"fmt"
	"strings"
)

const (
	twoByteMarkers   = "ÃÂ"
	threeByteMarkers = "âï"
)

// Repairer scans text for mojibake and substitutes the recovered characters.
// A Repairer is immutable after New and safe for concurrent use.
type Repairer struct {
	special   map[string]string
	maxPasses int
}

// Option configures a Repairer.
type Option func(*Repairer)

// WithSpecialSequences merges extra entries over the built-in table.
// Every key must satisfy ValidSpecialKey and every value must be non-empty;
// New panics otherwise.
func WithSpecialSequences(extra map[string]string) Option {
	return func(r *Repairer) {
		for k, v := range extra {
			r.special[k] = v
		}
	}
}

// WithMaxPasses lets Fix rescan its own output up to n times, stopping early
// once a pass substitutes nothing. Values below 1 mean a single pass.
func WithMaxPasses(n int) Option {
	return func(r *Repairer) {
		if n < 1 {
			n = 1
		}
		r.maxPasses = n
	}
}

// New creates a Repairer with the built-in special-sequence table and a
// single pass.
func New(opts ...Option) *Repairer {
	r := &Repairer{
		special:   SpecialSequences(),
		maxPasses: 1,
	}
	for _, opt := range opts {
		opt(r)
	}
	for k, v := range r.special {
		if !ValidSpecialKey(k) {
			panic(fmt.Sprintf("special sequence %q must be exactly 3 characters", k))
		}
		if v == "" {
			panic(fmt.Sprintf("special sequence %q has an empty replacement", k))
		}
	}
	return r
}

var defaultRepairer = New()

// FixText repairs text with the default Repairer. It never fails: text with
// nothing to repair comes back unchanged.
func FixText(text string) string {
	return defaultRepairer.Fix(text)
}

// Fix returns text with every recoverable garbled sequence replaced.
func (r *Repairer) Fix(text string) string {
	fixed, _ := r.FixCount(text)
	return fixed
}

// FixCount is Fix that also reports how many sequences were substituted
// across all passes.
func (r *Repairer) FixCount(text string) (string, int) {
	total := 0
	for pass := 0; pass < r.maxPasses; pass++ {
		fixed, n := r.scan(text)
		if n == 0 {
			break
		}
		text = fixed
		total += n
	}
	return text, total
}

// scan is one forward pass. Windows are measured in characters; bytes that
// are not valid UTF-8 count as one character each and are copied as-is.
func (r *Repairer) scan(text string) (string, int) {
	if !r.mayContainMojibake(text) {
		return text, 0
	}

	bounds := charBounds(text)
	n := len(bounds) - 1
	window := func(i, size int) string {
		return text[bounds[i]:bounds[i+size]]
	}

	var b strings.Builder
	b.Grow(len(text))
	count := 0

	for i := 0; i < n; {
		if i+3 <= n {
			if repl, ok := r.special[window(i, 3)]; ok {
				b.WriteString(repl)
				count++
				i += 3
				continue
			}
		}

		if i+2 <= n {
			chunk := window(i, 2)
			if strings.ContainsAny(chunk, twoByteMarkers) {
				if decoded, ok := TryDecode(chunk); ok {
					b.WriteString(decoded)
					count++
					i += 2
					continue
				}
			}
		}

		if i+3 <= n {
			chunk := window(i, 3)
			if strings.ContainsAny(chunk, threeByteMarkers) {
				if decoded, ok := TryDecode(chunk); ok {
					b.WriteString(decoded)
					count++
					i += 3
					continue
				}
			}
		}

		b.WriteString(window(i, 1))
		i++
	}

	return b.String(), count
}

// mayContainMojibake is a cheap pre-check that lets clean text skip the scan.
func (r *Repairer) mayContainMojibake(text string) bool {
	if strings.ContainsAny(text, twoByteMarkers+threeByteMarkers) {
		return true
	}
	for k := range r.special {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// charBounds returns the byte offset of every character in s followed by
// len(s).
func charBounds(s string) []int {
	bounds := make([]int, 0, len(s)+1)
	for i := range s {
		bounds = append(bounds, i)
	}
	return append(bounds, len(s))
}
