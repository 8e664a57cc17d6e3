package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/models"
)

func TestBuiltinIsComplete(t *testing.T) {
	c := Builtin()
	require.Equal(t, []string{"en", "zh", "ja", "ko", "es", "fr", "de"}, c.Codes())

	for _, l := range c.Locales() {
		for _, kind := range models.SheetOrder {
			title, ok := l.SheetTitles[kind]
			assert.Truef(t, ok && title != "", "%s: missing title for %s", l.Code, kind)
			assert.LessOrEqualf(t, len([]rune(title)), 31, "%s: sheet title %q too long", l.Code, title)

			for _, col := range models.Layouts[kind].Columns {
				h, ok := l.Headers[col]
				assert.Truef(t, ok && h != "", "%s: missing header for %s.%s", l.Code, kind, col)
			}
		}
		assert.Lenf(t, l.SummaryTemplates, 3, "%s: summary templates", l.Code)
		for _, kind := range []models.EnumKind{
			models.EnumThreat, models.EnumCategory, models.EnumConfidence,
			models.EnumOurStatus, models.EnumParityGap,
		} {
			assert.NotEmptyf(t, l.Enums[kind], "%s: missing enum %s", l.Code, kind)
		}
		assert.NotEmpty(t, l.Warnings.Title)
		assert.NotEmpty(t, l.Warnings.SourcesBelowMinimum)
		assert.NotEmpty(t, l.Warnings.MissingOfficial)
		assert.NotEmpty(t, l.Warnings.MissingThirdParty)
	}
}

func TestHeaderAndTitleNeverFallBackToRawID(t *testing.T) {
	c := Builtin()
	for _, code := range c.Codes() {
		for _, kind := range models.SheetOrder {
			assert.NotEqual(t, string(kind), c.SheetTitle(code, kind))
			for _, col := range models.Layouts[kind].Columns {
				assert.NotEqual(t, string(col), c.Header(code, col), "%s/%s", code, col)
			}
		}
	}
}

func TestFallbackChain(t *testing.T) {
	partial := &Locale{
		Code:        "xx",
		SheetTitles: map[models.SheetKind]string{models.SheetSummary: "Sommaire"},
		Headers:     map[models.Column]string{models.ColRank: "Rg"},
	}
	base := &Locale{
		Code:        "en",
		SheetTitles: map[models.SheetKind]string{models.SheetSummary: "Summary", models.SheetSources: "Sources"},
		Headers:     map[models.Column]string{models.ColRank: "Rank", models.ColURL: "URL"},
	}
	c, err := NewCatalog("en", base, partial)
	require.NoError(t, err)

	assert.Equal(t, "Sommaire", c.SheetTitle("xx", models.SheetSummary))
	assert.Equal(t, "Sources", c.SheetTitle("xx", models.SheetSources))
	assert.Equal(t, "benchmark", c.SheetTitle("xx", models.SheetBenchmark))
	assert.Equal(t, "Rg", c.Header("xx", models.ColRank))
	assert.Equal(t, "URL", c.Header("xx", models.ColURL))
	assert.Equal(t, "claim", c.Header("xx", models.ColClaim))
	assert.Equal(t, "Rank", c.Header("unknown", models.ColRank))
}

func TestNewCatalogRejectsBadInput(t *testing.T) {
	_, err := NewCatalog("fr", english)
	assert.Error(t, err)

	_, err = NewCatalog("en", english, english)
	assert.Error(t, err)
}

func TestLocaleFallsBackToDefault(t *testing.T) {
	c := Builtin()
	assert.Equal(t, "en", c.Locale("pt").Code)
	assert.Equal(t, "ko", c.Locale("ko").Code)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"en", "en", true},
		{"EN", "en", true},
		{"zh-CN", "zh", true},
		{"zh_Hant_TW", "zh", true},
		{"de-AT", "de", true},
		{"ja-JP", "ja", true},
		{"pt-BR", "", false},
		{"", "", false},
		{"not a tag", "", false},
	}

	c := Builtin()
	for _, tt := range tests {
		got, ok := c.Resolve(tt.input)
		if got != tt.expected || ok != tt.ok {
			t.Errorf("Resolve(%q) = (%q, %v), expected (%q, %v)", tt.input, got, ok, tt.expected, tt.ok)
		}
	}
}

func TestWarningRendering(t *testing.T) {
	c := Builtin()
	w := models.Warning{Product: "Acme", Kind: models.WarnMissingOfficial}
	assert.Equal(t, "[WARN] Acme: missing official source", c.Warning("en", w))
	assert.Equal(t, "[WARN] Acme: 缺少官方来源", c.Warning("zh", w))
	assert.Equal(t, "[WARN] Acme: sources < 3", c.Warning("fr", models.Warning{Product: "Acme", Kind: models.WarnSourcesBelowMinimum}))
	assert.Equal(t, "Warnungen:", c.WarningTitle("de"))
	assert.Equal(t, "Warnings:", c.WarningTitle("??"))
}

func TestEnum(t *testing.T) {
	c := Builtin()
	s, ok := c.Enum("ko", models.EnumThreat, models.ThreatHigh)
	assert.True(t, ok)
	assert.Equal(t, "높음", s)

	_, ok = c.Enum("en", models.EnumThreat, "critical")
	assert.False(t, ok)
}
