// Package locale holds the static display strings of every supported output
// language: sheet titles, column headers, enum renderings, summary templates
// and warning messages.
package locale

import (
	"fmt"
	"strings"
	"sync"

	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/models"
	"golang.org/x/text/language"
)

// DefaultCode is the locale used when detection is inconclusive or a code is unknown.
const DefaultCode = "en"

// Script is the dominant writing system of a locale.
type Script string

const (
	ScriptLatin  Script = "latin"
	ScriptHan    Script = "han"
	ScriptKana   Script = "kana"
	ScriptHangul Script = "hangul"
)

// WarningTemplates are printf templates taking the product name.
type WarningTemplates struct {
	// Title heads the warning list in console output.
	Title               string
	SourcesBelowMinimum string
	MissingOfficial     string
	MissingThirdParty   string
}

// Locale is the bundle of display strings for one output language.
type Locale struct {
	// Code is the short language code (en, zh, ...).
	Code string
	// Name is the English language name.
	Name string
	// Script is the writing system used to detect the language.
	Script Script
	// StopWords are frequent function words used to tell Latin-script languages apart.
	StopWords []string
	// SheetTitles maps sheet kinds to tab titles.
	SheetTitles map[models.SheetKind]string
	// Headers maps column identifiers to header labels.
	Headers map[models.Column]string
	// Enums maps enum kind -> canonical token -> display text.
	Enums map[models.EnumKind]map[string]string
	// SummaryTemplates are the boilerplate rows of the summary sheet.
	SummaryTemplates []map[models.Column]string
	// Warnings are the source coverage messages.
	Warnings WarningTemplates
}

// Catalog is an immutable registry of locales.
// It is safe for concurrent use.
type Catalog struct {
	locales     map[string]*Locale
	order       []string
	defaultCode string
}

// NewCatalog builds a catalog from locales, in the given order.
// defaultCode must name one of them.
func NewCatalog(defaultCode string, locales ...*Locale) (*Catalog, error) {
	c := &Catalog{
		locales:     make(map[string]*Locale, len(locales)),
		defaultCode: defaultCode,
	}
	for _, l := range locales {
		if l == nil || l.Code == "" {
			return nil, fmt.Errorf("locale without code")
		}
		if _, dup := c.locales[l.Code]; dup {
			return nil, fmt.Errorf("duplicate locale %q", l.Code)
		}
		c.locales[l.Code] = l
		c.order = append(c.order, l.Code)
	}
	if _, ok := c.locales[defaultCode]; !ok {
		return nil, fmt.Errorf("default locale %q not in catalog", defaultCode)
	}
	return c, nil
}

var (
	builtinOnce sync.Once
	builtin     *Catalog
)

// Builtin returns the catalog of the seven built-in locales.
func Builtin() *Catalog {
	builtinOnce.Do(func() {
		c, err := NewCatalog(DefaultCode, english, chinese, japanese, korean, spanish, french, german)
		if err != nil {
			panic(err)
		}
		builtin = c
	})
	return builtin
}

// Codes returns the supported codes in catalog order.
func (c *Catalog) Codes() []string {
	return append([]string(nil), c.order...)
}

// Locales returns the locales in catalog order.
func (c *Catalog) Locales() []*Locale {
	out := make([]*Locale, len(c.order))
	for i, code := range c.order {
		out[i] = c.locales[code]
	}
	return out
}

// DefaultCode returns the fallback locale code.
func (c *Catalog) DefaultCode() string {
	return c.defaultCode
}

// Has reports whether code is a supported locale.
func (c *Catalog) Has(code string) bool {
	_, ok := c.locales[code]
	return ok
}

// Locale returns the locale for code, or the default locale.
func (c *Catalog) Locale(code string) *Locale {
	if l, ok := c.locales[code]; ok {
		return l
	}
	return c.locales[c.defaultCode]
}

// Resolve maps a language tag such as "zh-CN", "de_AT" or "EN" to a
// supported locale code.
func (c *Catalog) Resolve(tag string) (string, bool) {
	tag = strings.TrimSpace(strings.ReplaceAll(tag, "_", "-"))
	if tag == "" {
		return "", false
	}
	if c.Has(strings.ToLower(tag)) {
		return strings.ToLower(tag), true
	}
	t, err := language.Parse(tag)
	if err != nil {
		return "", false
	}
	base, _ := t.Base()
	code := base.String()
	if !c.Has(code) {
		return "", false
	}
	return code, true
}

// Header returns the localized header of col, falling back to the default
// locale and then to the raw column identifier.
func (c *Catalog) Header(code string, col models.Column) string {
	if h := c.Locale(code).Headers[col]; h != "" {
		return h
	}
	if h := c.locales[c.defaultCode].Headers[col]; h != "" {
		return h
	}
	return string(col)
}

// SheetTitle returns the localized title of kind with the same fallback
// chain as Header.
func (c *Catalog) SheetTitle(code string, kind models.SheetKind) string {
	if t := c.Locale(code).SheetTitles[kind]; t != "" {
		return t
	}
	if t := c.locales[c.defaultCode].SheetTitles[kind]; t != "" {
		return t
	}
	return string(kind)
}

// Enum returns the localized rendering of a canonical enum token.
func (c *Catalog) Enum(code string, kind models.EnumKind, token string) (string, bool) {
	s, ok := c.Locale(code).Enums[kind][token]
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// Warning renders w in the given locale.
func (c *Catalog) Warning(code string, w models.Warning) string {
	t := c.Locale(code).Warnings
	var tpl string
	switch w.Kind {
	case models.WarnSourcesBelowMinimum:
		tpl = t.SourcesBelowMinimum
	case models.WarnMissingOfficial:
		tpl = t.MissingOfficial
	case models.WarnMissingThirdParty:
		tpl = t.MissingThirdParty
	}
	if tpl == "" {
		return fmt.Sprintf("[WARN] %s: %s", w.Product, w.Kind)
	}
	return fmt.Sprintf(tpl, w.Product)
}

// WarningTitle returns the heading printed above warnings.
func (c *Catalog) WarningTitle(code string) string {
	if t := c.Locale(code).Warnings.Title; t != "" {
		return t
	}
	return c.locales[c.defaultCode].Warnings.Title
}
