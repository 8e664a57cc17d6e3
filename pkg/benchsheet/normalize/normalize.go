// Package normalize provides the comparison key used to match free-form
// input text against known spellings in any supported language.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Key returns the normalized comparison key of s.
//
// Only letters and digits survive. Letters are lower-cased and diacritics on
// Latin letters are dropped, so "Écart", "ecart" and "E-CART" share a key.
// Marks on other scripts (kana voicing marks, for example) are kept, and
// caseless scripts pass through unchanged.
func Key(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	keepMarks := false
	for _, r := range norm.NFD.String(s) {
		switch {
		case unicode.Is(unicode.Mn, r):
			if keepMarks {
				b.WriteRune(r)
			}
		case unicode.IsLetter(r):
			b.WriteRune(unicode.ToLower(r))
			keepMarks = !unicode.Is(unicode.Latin, r)
		case unicode.IsNumber(r):
			b.WriteRune(r)
			keepMarks = false
		default:
			keepMarks = false
		}
	}
	return norm.NFC.String(b.String())
}

// Equal reports whether a and b normalize to the same key.
func Equal(a, b string) bool {
	return Key(a) == Key(b)
}

// Set is a membership set of normalized keys.
type Set map[string]struct{}

// NewSet normalizes every value and collects the non-empty keys.
func NewSet(values ...string) Set {
	s := make(Set, len(values))
	s.Add(values...)
	return s
}

// Add normalizes and inserts values. Values that normalize to "" are skipped.
func (s Set) Add(values ...string) {
	for _, v := range values {
		if k := Key(v); k != "" {
			s[k] = struct{}{}
		}
	}
}

// Has reports whether the already-normalized key is in the set.
func (s Set) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Contains normalizes raw and tests membership.
func (s Set) Contains(raw string) bool {
	k := Key(raw)
	if k == "" {
		return false
	}
	return s.Has(k)
}
