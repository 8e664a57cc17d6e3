// Package detect infers the output language from free text.
//
// Detection is deliberately conservative: whenever the signal is weak or
// ambiguous the catalog's default locale is returned instead of a guess.
package detect

import (
	"strings"

	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/locale"
)

// Thresholds of the script heuristics.
const (
	// AmbiguityRatio is the minimum lead of the top script over the runner-up,
	// as a share of all script-bearing characters.
	AmbiguityRatio = 0.10
	// MinKana is the kana count that classifies text as Japanese.
	MinKana = 6
	// MinHangul is the hangul count that classifies text as Korean.
	MinHangul = 6
	// MinIdeographs is the ideograph count that classifies text as Chinese.
	MinIdeographs = 10
	// MinHintScore is the stop-word hits a Latin-script locale needs to win.
	MinHintScore = 2
)

// Source selects which text feeds automatic detection.
type Source string

const (
	SourceBrief Source = "brief"
	SourceInput Source = "input"
	SourceBoth  Source = "both"
)

// ParseSource validates a --lang-source value.
func ParseSource(s string) (Source, bool) {
	switch Source(strings.ToLower(strings.TrimSpace(s))) {
	case SourceBrief:
		return SourceBrief, true
	case SourceInput:
		return SourceInput, true
	case SourceBoth, "":
		return SourceBoth, true
	}
	return "", false
}

// Text assembles the detection text from the brief and the serialized input
// according to src.
func Text(brief, input string, src Source) string {
	var parts []string
	if (src == SourceBrief || src == SourceBoth) && strings.TrimSpace(brief) != "" {
		parts = append(parts, brief)
	}
	if (src == SourceInput || src == SourceBoth) && input != "" {
		parts = append(parts, input)
	}
	return strings.Join(parts, "\n")
}

// ScriptCounts holds per-script character counts of a text.
type ScriptCounts struct {
	Han    int
	Kana   int
	Hangul int
	Latin  int
}

// Total returns the number of script-bearing characters.
func (c ScriptCounts) Total() int {
	return c.Han + c.Kana + c.Hangul + c.Latin
}

// ambiguous reports whether the two most frequent scripts are too close to call.
func (c ScriptCounts) ambiguous() bool {
	total := c.Total()
	if total == 0 {
		return false
	}
	top, second := 0, 0
	for _, n := range []int{c.Han, c.Kana, c.Hangul, c.Latin} {
		switch {
		case n > top:
			top, second = n, top
		case n > second:
			second = n
		}
	}
	return float64(top-second)/float64(total) < AmbiguityRatio
}

// CountScripts tallies ideographs, kana, hangul and ASCII letters in text.
func CountScripts(text string) ScriptCounts {
	var c ScriptCounts
	for _, r := range text {
		switch {
		case r >= 0x3040 && r <= 0x30FF:
			c.Kana++
		case r >= 0xAC00 && r <= 0xD7AF:
			c.Hangul++
		case r >= 0x4E00 && r <= 0x9FFF:
			c.Han++
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			c.Latin++
		}
	}
	return c
}

// Detector picks a locale code from text using a catalog's scripts and stop words.
type Detector struct {
	catalog *locale.Catalog
	scripts map[locale.Script]string
	hints   []hintSet
}

type hintSet struct {
	code  string
	words map[string]struct{}
}

// New builds a detector over the catalog's locales.
func New(catalog *locale.Catalog) *Detector {
	d := &Detector{
		catalog: catalog,
		scripts: make(map[locale.Script]string),
	}
	for _, l := range catalog.Locales() {
		if l.Script != locale.ScriptLatin && l.Script != "" {
			if _, seen := d.scripts[l.Script]; !seen {
				d.scripts[l.Script] = l.Code
			}
		}
		if len(l.StopWords) == 0 {
			continue
		}
		hs := hintSet{code: l.Code, words: make(map[string]struct{}, len(l.StopWords))}
		for _, w := range l.StopWords {
			hs.words[w] = struct{}{}
		}
		d.hints = append(d.hints, hs)
	}
	return d
}

// Detect returns the locale code inferred from text.
func (d *Detector) Detect(text string) string {
	def := d.catalog.DefaultCode()
	if strings.TrimSpace(text) == "" {
		return def
	}

	c := CountScripts(text)
	if c.ambiguous() {
		return def
	}

	if c.Kana >= MinKana {
		return d.scriptOr(locale.ScriptKana, def)
	}
	if c.Hangul >= MinHangul {
		return d.scriptOr(locale.ScriptHangul, def)
	}
	if c.Han >= MinIdeographs {
		return d.scriptOr(locale.ScriptHan, def)
	}

	if c.Latin == 0 {
		return def
	}

	best, bestScore := "", 0
	tokens := tokenize(text)
	for _, hs := range d.hints {
		score := 0
		for _, tok := range tokens {
			if _, ok := hs.words[tok]; ok {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = hs.code, score
		}
	}
	if bestScore >= MinHintScore {
		return best
	}
	return def
}

func (d *Detector) scriptOr(s locale.Script, def string) string {
	if code, ok := d.scripts[s]; ok {
		return code
	}
	return def
}

// tokenize splits lower-cased text into runs of a-z and Latin-1 letters (À-ÿ).
func tokenize(text string) []string {
	text = strings.ToLower(text)
	var tokens []string
	start := -1
	for i, r := range text {
		if isTokenRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, text[start:i])
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, text[start:])
	}
	return tokens
}

func isTokenRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 0xC0 && r <= 0xFF)
}
