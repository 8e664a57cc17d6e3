package schema

import (
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/locale"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/models"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/normalize"
)

// EnumEntry lists the recognized surface forms of one canonical token.
type EnumEntry struct {
	Token    string
	Variants []string
}

// enumVariants are the spellings recognized in addition to every locale's own
// rendering of a token. Entry order is the match order.
var enumVariants = map[models.EnumKind][]EnumEntry{
	models.EnumThreat: {
		{models.ThreatHigh, []string{"high", "高", "높음", "alto", "élevé", "hoch"}},
		{models.ThreatMedium, []string{"medium", "med", "中", "중간", "medio", "moyen", "mittel"}},
		{models.ThreatLow, []string{"low", "低", "낮음", "bajo", "faible", "niedrig"}},
	},
	models.EnumCategory: {
		{"direct", []string{"direct", "直接", "直接競合", "직접", "directo", "direkt"}},
		{"adjacent", []string{"adjacent", "邻近", "隣接", "인접", "adyacente", "angrenzend"}},
		{"substitute", []string{"substitute", "替代", "代替", "대체", "sustituto", "ersatz", "substitut"}},
	},
	models.EnumConfidence: {
		{"high", []string{"high", "高", "높음", "alta", "haut", "hoch"}},
		{"med", []string{"med", "medium", "中", "중간", "media", "moyen", "mittel"}},
		{"low", []string{"low", "低", "낮음", "baja", "bas", "niedrig"}},
	},
	models.EnumOurStatus: {
		{"none", []string{"none", "无", "未対応", "없음", "ninguno", "aucun", "kein"}},
		{"planned", []string{"planned", "规划", "計画", "계획", "planificado", "planifié", "geplant"}},
		{"live", []string{"live", "已上线", "提供中", "운영", "activo", "enligne"}},
	},
	models.EnumParityGap: {
		{"lead", []string{"lead", "领先", "優位", "우위", "lidera", "avance", "vorsprung"}},
		{"parity", []string{"parity", "同等", "동등", "paridad", "parité", "parität"}},
		{"partial", []string{"partial", "部分", "부분", "parcial", "partiel", "teilweise"}},
		{"gap", []string{"gap", "差距", "ギャップ", "격차", "brecha", "écart", "lücke"}},
	},
}

// EnumKinds lists every enum kind in a stable order.
var EnumKinds = []models.EnumKind{
	models.EnumThreat,
	models.EnumCategory,
	models.EnumConfidence,
	models.EnumOurStatus,
	models.EnumParityGap,
}

type compiledEntry struct {
	token string
	keys  normalize.Set
}

// EnumTable resolves free-text enum values to canonical tokens.
// It is immutable after construction.
type EnumTable struct {
	kinds map[models.EnumKind][]compiledEntry
}

// NewEnumTable compiles the built-in variant lists together with every
// locale's rendering of each token, so localized output maps back to its token.
func NewEnumTable(catalog *locale.Catalog) *EnumTable {
	t := &EnumTable{kinds: make(map[models.EnumKind][]compiledEntry, len(enumVariants))}
	for kind, entries := range enumVariants {
		compiled := make([]compiledEntry, 0, len(entries))
		for _, e := range entries {
			keys := normalize.NewSet(e.Token)
			keys.Add(e.Variants...)
			for _, l := range catalog.Locales() {
				if s, ok := l.Enums[kind][e.Token]; ok {
					keys.Add(s)
				}
			}
			compiled = append(compiled, compiledEntry{token: e.Token, keys: keys})
		}
		t.kinds[kind] = compiled
	}
	return t
}

// Tokens returns the canonical tokens of kind in match order.
func (t *EnumTable) Tokens(kind models.EnumKind) []string {
	entries := t.kinds[kind]
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.token
	}
	return out
}

// Canonicalize maps raw onto a canonical token of kind. First match wins.
func (t *EnumTable) Canonicalize(kind models.EnumKind, raw string) (string, bool) {
	key := normalize.Key(raw)
	if key == "" {
		return "", false
	}
	for _, e := range t.kinds[kind] {
		if e.keys.Has(key) {
			return e.token, true
		}
	}
	return "", false
}

// Overlap describes a surface form recognized for two tokens of one enum.
type Overlap struct {
	Kind   models.EnumKind
	Key    string
	Tokens [2]string
}

// Overlaps reports normalized variants shared by different tokens of the same
// kind. Such input resolves to whichever token comes first.
func (t *EnumTable) Overlaps() []Overlap {
	var out []Overlap
	for _, kind := range EnumKinds {
		owner := make(map[string]string)
		for _, e := range t.kinds[kind] {
			for key := range e.keys {
				if prev, ok := owner[key]; ok && prev != e.token {
					out = append(out, Overlap{Kind: kind, Key: key, Tokens: [2]string{prev, e.token}})
					continue
				}
				owner[key] = e.token
			}
		}
	}
	return out
}
