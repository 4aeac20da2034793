// Package sanitizer scrubs rendered log lines before they reach a sink,
// using composable filter and transform rules.
package sanitizer

import (
	"encoding/hex"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Filter flags for character matching
const (
	// FilterNonPrintable matches runes not classified as printable by
	// strconv.IsPrint. Tab is exempt: log payloads may legitimately carry it.
	FilterNonPrintable uint64 = 1 << iota
	// FilterControl matches control characters (unicode.IsControl)
	FilterControl
)

// Transform flags for matched characters
const (
	TransformStrip     uint64 = 1 << iota // Removes the character
	TransformHexEncode                    // Encodes the character's UTF-8 bytes as "<XXYY>"
)

// PolicyPreset selects a pre-configured rule set
type PolicyPreset string

const (
	PolicyRaw   PolicyPreset = "raw"   // Passthrough
	PolicyStrip PolicyPreset = "strip" // Drop non-printable runes
	PolicyHex   PolicyPreset = "hex"   // Hex-encode non-printable runes
)

type rule struct {
	filter    uint64
	transform uint64
}

var policyRules = map[PolicyPreset][]rule{
	PolicyRaw:   {},
	PolicyStrip: {{filter: FilterNonPrintable, transform: TransformStrip}},
	PolicyHex:   {{filter: FilterNonPrintable, transform: TransformHexEncode}},
}

var filterCheckers = map[uint64]func(rune) bool{
	FilterNonPrintable: func(r rune) bool { return r != '\t' && !strconv.IsPrint(r) },
	FilterControl:      unicode.IsControl,
}

// Sanitizer applies its rules in order, first match wins. Not safe for
// concurrent use; each worker owns its own instance.
type Sanitizer struct {
	rules []rule
	buf   []byte
}

// New creates an empty Sanitizer. Without rules it is a passthrough.
func New() *Sanitizer {
	return &Sanitizer{
		buf: make([]byte, 0, 256),
	}
}

// Rule appends a custom rule.
func (s *Sanitizer) Rule(filter, transform uint64) *Sanitizer {
	s.rules = append(s.rules, rule{filter: filter, transform: transform})
	return s
}

// Policy appends the rules of a preset.
func (s *Sanitizer) Policy(preset PolicyPreset) *Sanitizer {
	if rules, ok := policyRules[preset]; ok {
		s.rules = append(s.rules, rules...)
	}
	return s
}

// Sanitize applies all rules to the input and returns the result.
func (s *Sanitizer) Sanitize(data string) string {
	s.buf = s.Append(s.buf[:0], data)
	return string(s.buf)
}

// Append applies all rules to src and appends the result to dst. This is the
// allocation-free path used on every log line.
func (s *Sanitizer) Append(dst []byte, src string) []byte {
	for _, r := range src {
		matched := false
		for _, rl := range s.rules {
			if matchesFilter(r, rl.filter) {
				dst = applyTransform(dst, r, rl.transform)
				matched = true
				break
			}
		}
		if !matched {
			dst = utf8.AppendRune(dst, r)
		}
	}
	return dst
}

func matchesFilter(r rune, filterMask uint64) bool {
	for flag, checker := range filterCheckers {
		if filterMask&flag != 0 && checker(r) {
			return true
		}
	}
	return false
}

func applyTransform(buf []byte, r rune, transformMask uint64) []byte {
	switch {
	case transformMask&TransformStrip != 0:
		// Drop the rune
	case transformMask&TransformHexEncode != 0:
		var runeBytes [utf8.UTFMax]byte
		n := utf8.EncodeRune(runeBytes[:], r)
		buf = append(buf, '<')
		buf = append(buf, hex.EncodeToString(runeBytes[:n])...)
		buf = append(buf, '>')
	}
	return buf
}
