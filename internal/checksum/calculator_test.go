package checksum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSHA256_Calculate(t *testing.T) {
	calc := New()

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "empty content",
			content:  "",
			expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:     "ascii",
			content:  "abc",
			expected: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, calc.Calculate([]byte(tt.content)))
		})
	}
}

func TestSHA256_DistinguishesRepairs(t *testing.T) {
	calc := New()

	garbled := calc.Calculate([]byte("<p>cafÃ©</p>"))
	fixed := calc.Calculate([]byte("<p>café</p>"))

	assert.Len(t, garbled, 64)
	assert.NotEqual(t, garbled, fixed)
	assert.Equal(t, fixed, calc.Calculate([]byte("<p>café</p>")))
}
