// Package validate checks per-product evidence coverage on the sources sheet.
package validate

import (
	"strings"

	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/models"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/normalize"
)

// SourceType is a class of evidence source.
type SourceType string

const (
	SourceOfficial SourceType = "official"
	SourceStore    SourceType = "store"
	SourceReview   SourceType = "review"
	SourceMedia    SourceType = "media"
	SourceResearch SourceType = "research"
)

// MinSources is the number of source rows expected per product.
const MinSources = 3

// sourceTypeOrder is the classification order.
var sourceTypeOrder = []SourceType{
	SourceOfficial,
	SourceStore,
	SourceReview,
	SourceMedia,
	SourceResearch,
}

// thirdParty are the source types that count as independent evidence.
var thirdParty = []SourceType{SourceStore, SourceReview, SourceMedia, SourceResearch}

// sourceKeywords are matched as substrings of the normalized source_type text.
var sourceKeywords = map[SourceType][]string{
	SourceOfficial: {"official", "官网", "官方", "公式", "공식", "oficial", "officiel", "offiziell"},
	SourceStore:    {"store", "appstore", "play", "商店", "스토어", "ストア"},
	SourceReview:   {"review", "评测", "レビュー", "리뷰"},
	SourceMedia:    {"media", "媒体", "メディア", "미디어", "medios"},
	SourceResearch: {"research", "报告", "研究", "リサーチ", "연구", "調査"},
}

var compiledKeywords = compileKeywords()

func compileKeywords() map[SourceType][]string {
	out := make(map[SourceType][]string, len(sourceKeywords))
	for t, words := range sourceKeywords {
		keys := make([]string, 0, len(words))
		for _, w := range words {
			if k := normalize.Key(w); k != "" {
				keys = append(keys, k)
			}
		}
		out[t] = keys
	}
	return out
}

// Classify returns every source type whose keyword occurs in the normalized
// text. A value may belong to several types.
func Classify(text string) map[SourceType]bool {
	found := make(map[SourceType]bool)
	key := normalize.Key(text)
	if key == "" {
		return found
	}
	for _, t := range sourceTypeOrder {
		for _, kw := range compiledKeywords[t] {
			if strings.Contains(key, kw) {
				found[t] = true
				break
			}
		}
	}
	return found
}

type coverage struct {
	rows  int
	types map[SourceType]bool
}

// Sources groups rows by trimmed product name and reports, per product, too
// few source rows, no official source and no third-party source. Rows without
// a product are ignored. Products are reported in order of first appearance.
// Message is left empty for the caller to localize.
func Sources(rows []models.Row) []models.Warning {
	var order []string
	byProduct := make(map[string]*coverage)
	for _, row := range rows {
		name := strings.TrimSpace(row.Get(models.ColProduct).String())
		if name == "" {
			continue
		}
		c, ok := byProduct[name]
		if !ok {
			c = &coverage{types: make(map[SourceType]bool)}
			byProduct[name] = c
			order = append(order, name)
		}
		c.rows++
		for t := range Classify(row.Get(models.ColSourceType).String()) {
			c.types[t] = true
		}
	}

	var out []models.Warning
	for _, name := range order {
		c := byProduct[name]
		if c.rows < MinSources {
			out = append(out, models.Warning{Product: name, Kind: models.WarnSourcesBelowMinimum})
		}
		if !c.types[SourceOfficial] {
			out = append(out, models.Warning{Product: name, Kind: models.WarnMissingOfficial})
		}
		if !c.hasAny(thirdParty) {
			out = append(out, models.Warning{Product: name, Kind: models.WarnMissingThirdParty})
		}
	}
	return out
}

func (c *coverage) hasAny(types []SourceType) bool {
	for _, t := range types {
		if c.types[t] {
			return true
		}
	}
	return false
}
