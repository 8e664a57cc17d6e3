package input

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/models"
	"github.com/xuri/excelize/v2"
)

// LoadWorkbookFile reads every sheet of an XLSX workbook as a section.
func LoadWorkbookFile(path string) (models.Payload, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return models.Payload{}, malformed(FormatXLSX, err)
	}
	defer f.Close()
	return LoadWorkbook(f)
}

// LoadWorkbook converts each sheet, in tab order, into a section keyed by the
// sheet name. Within a sheet the first non-empty row is the header; every
// following non-empty row becomes a record keyed by those headers. Columns
// with a blank header are ignored.
func LoadWorkbook(f *excelize.File) (models.Payload, error) {
	dates := newDateCells(f)
	var p models.Payload
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			return models.Payload{}, malformed(FormatXLSX, fmt.Errorf("sheet %q: %w", name, err))
		}
		if err := dates.convert(name, rows); err != nil {
			return models.Payload{}, malformed(FormatXLSX, fmt.Errorf("sheet %q: %w", name, err))
		}
		p.Sections = append(p.Sections, models.Section{Key: name, Rows: sheetRecords(rows)})
	}
	return p, nil
}

// dateCells rewrites date-formatted serial numbers as ISO dates.
type dateCells struct {
	f        *excelize.File
	date1904 bool
	styles   map[int]bool
}

func newDateCells(f *excelize.File) *dateCells {
	d := &dateCells{f: f, styles: map[int]bool{}}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		d.date1904 = *props.Date1904
	}
	return d
}

// convert replaces, in place, every numeric cell of sheet whose number
// format is a date or time format. Dates without a time of day become
// "2006-01-02", others RFC 3339.
func (d *dateCells) convert(sheet string, rows [][]string) error {
	for r, row := range rows {
		for c, cell := range row {
			serial, err := strconv.ParseFloat(cell, 64)
			if err != nil || math.IsInf(serial, 0) || math.IsNaN(serial) {
				continue
			}
			ref, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			styleID, err := d.f.GetCellStyle(sheet, ref)
			if err != nil {
				return err
			}
			if !d.isDateStyle(styleID) {
				continue
			}
			t, err := excelize.ExcelDateToTime(serial, d.date1904)
			if err != nil {
				continue
			}
			rows[r][c] = formatDate(t)
		}
	}
	return nil
}

func (d *dateCells) isDateStyle(styleID int) bool {
	if styleID == 0 {
		return false
	}
	if is, ok := d.styles[styleID]; ok {
		return is
	}
	is := false
	if style, err := d.f.GetStyle(styleID); err == nil {
		if style.CustomNumFmt != nil {
			is = isDateFormat(*style.CustomNumFmt)
		} else {
			is = builtinDateFormats[style.NumFmt]
		}
	}
	d.styles[styleID] = is
	return is
}

// builtinDateFormats lists the built-in number format IDs that render dates
// or times, including the East Asian variants.
var builtinDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true, 21: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true, 32: true, 33: true, 34: true, 35: true, 36: true,
	45: true, 46: true, 47: true,
	50: true, 51: true, 52: true, 53: true, 54: true, 55: true, 56: true, 57: true, 58: true,
}

// isDateFormat reports whether a custom number format code has date or time
// tokens outside quoted literals, escapes and bracketed sections.
func isDateFormat(code string) bool {
	var b strings.Builder
	quoted, bracket := false, false
	for i := 0; i < len(code); i++ {
		ch := code[i]
		switch {
		case quoted:
			quoted = ch != '"'
		case bracket:
			bracket = ch != ']'
		case ch == '"':
			quoted = true
		case ch == '[':
			bracket = true
		case ch == '\\' || ch == '_' || ch == '*':
			i++
		default:
			b.WriteByte(ch)
		}
	}
	return strings.ContainsAny(strings.ToLower(b.String()), "ydhms")
}

func formatDate(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(time.DateOnly)
	}
	return t.Format(time.RFC3339)
}

// sheetRecords turns a cell grid into records under its header row.
func sheetRecords(rows [][]string) []models.RawRow {
	records := []models.RawRow{}
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return records
	}

	header := rows[minRow]
	keys := make([]string, maxCol+1)
	for c := minCol; c <= maxCol && c < len(header); c++ {
		keys[c] = strings.TrimSpace(header[c])
	}

	for r := minRow + 1; r <= maxRow; r++ {
		rec := models.RawRow{}
		for c := minCol; c <= maxCol && c < len(rows[r]); c++ {
			cell := rows[r][c]
			if keys[c] == "" || cell == "" {
				continue
			}
			if _, dup := rec[keys[c]]; !dup {
				rec[keys[c]] = parseValue(cell)
			}
		}
		if len(rec) > 0 {
			records = append(records, rec)
		}
	}
	return records
}

// parseValue attempts to parse a cell value as a number.
// Returns int64 for integers, float64 for finite decimals, or the original string.
func parseValue(s string) any {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return f
	}
	// Return as string
	return s
}

// findDataBounds finds the bounding box of non-empty cells. All four results
// are -1 when the grid is empty.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if strings.TrimSpace(cell) != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}
