package invitecode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := Generate()
		assert.Len(t, code, Length)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(charset, r), "unexpected rune %q in code %s", r, code)
		}
		seen[code] = true
	}
	// 100次生成全部撞车的概率可以忽略
	assert.Greater(t, len(seen), 1)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lowercase is upper-cased", input: "abc123", expected: "ABC123"},
		{name: "surrounding spaces are trimmed", input: "  XYZ789 ", expected: "XYZ789"},
		{name: "mixed case", input: "aB3k9Z", expected: "AB3K9Z"},
		{name: "already normalized", input: "QWERTY", expected: "QWERTY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}
