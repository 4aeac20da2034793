package sanitizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripPolicy(t *testing.T) {
	s := New().Policy(PolicyStrip)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"clean text", "hello world", "hello world"},
		{"control bytes removed", "non-printable \x01\x02\x03 chars", "non-printable  chars"},
		{"tab survives", "col1\tcol2", "col1\tcol2"},
		{"space survives", "a b", "a b"},
		{"newline removed", "line1\nline2", "line1line2"},
		{"del removed", "a\x7fb", "ab"},
		{"unicode preserved", "héllo wörld", "héllo wörld"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, s.Sanitize(tt.input))
		})
	}
}

func TestHexPolicy(t *testing.T) {
	s := New().Policy(PolicyHex)

	assert.Equal(t, "a<01>b", s.Sanitize("a\x01b"))
	assert.Equal(t, "clean", s.Sanitize("clean"))
}

func TestRawPolicy(t *testing.T) {
	s := New().Policy(PolicyRaw)

	input := "anything \x01 goes\n"
	assert.Equal(t, input, s.Sanitize(input))
}

func TestCustomRule(t *testing.T) {
	s := New().Rule(FilterControl, TransformStrip)

	// Control filter has no tab exemption
	assert.Equal(t, "ab", s.Sanitize("a\tb"))
	assert.Equal(t, "ab", s.Sanitize("a\nb"))
}

func TestRuleOrder(t *testing.T) {
	// First matching rule wins
	s := New().
		Rule(FilterNonPrintable, TransformHexEncode).
		Rule(FilterControl, TransformStrip)

	assert.Equal(t, "a<01>b", s.Sanitize("a\x01b"))
}

func TestAppendReusesBuffer(t *testing.T) {
	s := New().Policy(PolicyStrip)

	buf := make([]byte, 0, 64)
	buf = s.Append(buf, "one\x01")
	buf = s.Append(buf, " two")
	assert.Equal(t, "one two", string(buf))
}
