// Package schema maps loosely shaped, possibly localized input onto the fixed
// report schema: section names to sheet kinds, row keys to canonical columns
// and free-text enum values to canonical tokens.
package schema

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/locale"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/models"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/normalize"
)

// Mapper resolves input identifiers and values against the schema.
// Alias tables are built once in NewMapper; a Mapper is safe for concurrent use.
type Mapper struct {
	catalog *locale.Catalog
	enums   *EnumTable
	log     zerolog.Logger

	sheetAliases  map[models.SheetKind]normalize.Set
	columnAliases map[models.SheetKind]map[models.Column][]string
}

// NewMapper builds the sheet and column alias sets from the catalog.
func NewMapper(catalog *locale.Catalog, log zerolog.Logger) *Mapper {
	m := &Mapper{
		catalog:       catalog,
		enums:         NewEnumTable(catalog),
		log:           log,
		sheetAliases:  make(map[models.SheetKind]normalize.Set, len(models.SheetOrder)),
		columnAliases: make(map[models.SheetKind]map[models.Column][]string, len(models.SheetOrder)),
	}

	for _, kind := range models.SheetOrder {
		id := string(kind)
		aliases := normalize.NewSet(id, strings.ReplaceAll(id, "_", "-"), strings.ReplaceAll(id, "_", ""))
		for _, l := range catalog.Locales() {
			aliases.Add(l.SheetTitles[kind])
		}
		m.sheetAliases[kind] = aliases

		cols := make(map[models.Column][]string)
		for _, col := range models.Layouts[kind].Columns {
			cols[col] = columnAliases(catalog, col)
		}
		m.columnAliases[kind] = cols
	}
	return m
}

// columnAliases returns the normalized aliases of col: the identifier, the
// default header, then every locale's header, without duplicates.
func columnAliases(catalog *locale.Catalog, col models.Column) []string {
	candidates := []string{string(col), catalog.Header(catalog.DefaultCode(), col)}
	for _, l := range catalog.Locales() {
		candidates = append(candidates, l.Headers[col])
	}

	seen := make(map[string]bool, len(candidates))
	var out []string
	for _, c := range candidates {
		k := normalize.Key(c)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// Enums returns the enum table used by the mapper.
func (m *Mapper) Enums() *EnumTable {
	return m.enums
}

// ResolveSheetKey maps an input section name onto a sheet kind.
func (m *Mapper) ResolveSheetKey(raw string) (models.SheetKind, bool) {
	key := normalize.Key(raw)
	if key == "" {
		return "", false
	}
	for _, kind := range models.SheetOrder {
		if m.sheetAliases[kind].Has(key) {
			return kind, true
		}
	}
	return "", false
}

// Sections assigns payload sections to sheet kinds. When several sections
// resolve to the same kind the first one in payload order wins.
func (m *Mapper) Sections(p models.Payload) map[models.SheetKind][]models.RawRow {
	out := make(map[models.SheetKind][]models.RawRow)
	for _, s := range p.Sections {
		kind, ok := m.ResolveSheetKey(s.Key)
		if !ok {
			m.log.Debug().Str("section", s.Key).Msg("unrecognized input section ignored")
			continue
		}
		if _, taken := out[kind]; taken {
			m.log.Debug().Str("section", s.Key).Str("sheet", string(kind)).Msg("duplicate section ignored")
			continue
		}
		rows := s.Rows
		if rows == nil {
			rows = []models.RawRow{}
		}
		out[kind] = rows
	}
	return out
}

// MapRow narrows a raw record to the columns of kind. Keys are matched after
// normalization; unmatched columns are left empty and unknown keys dropped.
func (m *Mapper) MapRow(raw models.RawRow, kind models.SheetKind) models.Row {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	byKey := make(map[string]any, len(raw))
	for _, k := range keys {
		nk := normalize.Key(k)
		if nk == "" {
			continue
		}
		if _, dup := byKey[nk]; !dup {
			byKey[nk] = raw[k]
		}
	}

	row := make(models.Row, len(models.Layouts[kind].Columns))
	for _, col := range models.Layouts[kind].Columns {
		v := models.Empty()
		for _, alias := range m.columnAliases[kind][col] {
			if rv, ok := byKey[alias]; ok {
				v = models.ValueOf(rv)
				break
			}
		}
		if models.NumericColumns[col] && v.Kind == models.ValueText {
			if f, ok := v.Float(); ok {
				v = models.Number(f)
			}
		}
		row[col] = v
	}
	return row
}

// MapRows maps every raw record of a section.
func (m *Mapper) MapRows(raws []models.RawRow, kind models.SheetKind) []models.Row {
	rows := make([]models.Row, 0, len(raws))
	for _, raw := range raws {
		rows = append(rows, m.MapRow(raw, kind))
	}
	return rows
}

// Canonicalize resolves a free-text enum value to its canonical token.
func (m *Mapper) Canonicalize(kind models.EnumKind, raw string) (string, bool) {
	return m.enums.Canonicalize(kind, raw)
}

// Localize renders an enum value in the target locale. Values that do not
// resolve, or have no rendering, are returned unchanged.
func (m *Mapper) Localize(kind models.EnumKind, v models.Value, code string) models.Value {
	if v.IsEmpty() {
		return v
	}
	token, ok := m.enums.Canonicalize(kind, v.String())
	if !ok {
		m.log.Debug().Str("enum", string(kind)).Str("value", v.String()).Msg("enum value passed through")
		return v
	}
	s, ok := m.catalog.Enum(code, kind, token)
	if !ok {
		return v
	}
	return models.Text(s)
}

// LocalizeRows rewrites the enum columns of kind in place.
func (m *Mapper) LocalizeRows(rows []models.Row, kind models.SheetKind, code string) {
	cols := models.EnumColumns[kind]
	if len(cols) == 0 {
		return
	}
	for _, row := range rows {
		for col, enum := range cols {
			row[col] = m.Localize(enum, row.Get(col), code)
		}
	}
}
