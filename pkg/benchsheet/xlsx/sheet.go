package xlsx

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultColumnWidth is used for columns without a width hint.
const DefaultColumnWidth = 24.0

// MaxSheetNameLength is the longest sheet name spreadsheet applications accept.
const MaxSheetNameLength = 31

var (
	// ErrNoSheets is returned when a package would contain no worksheet.
	ErrNoSheets = errors.New("no sheets")
	// ErrInvalidSheetName is returned for names that are empty, too long or
	// contain characters reserved by the workbook format.
	ErrInvalidSheetName = errors.New("invalid sheet name")
	// ErrDuplicateSheetName is returned when two names differ only by case.
	ErrDuplicateSheetName = errors.New("duplicate sheet name")
)

// SheetError reports a problem with one sheet of a package.
type SheetError struct {
	Index int
	Name  string
	Err   error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %d %q: %v", e.Index+1, e.Name, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// Sheet is one worksheet: a styled header row followed by data rows.
type Sheet struct {
	// Name is the tab title.
	Name string
	// Widths are column width hints in character units, by column position.
	Widths []float64
	// Header holds the column titles written to row 1.
	Header []string
	// Rows are the data rows, written from row 2.
	Rows [][]Cell
}

// ColumnCount returns the number of columns spanned by the header and rows,
// at least 1.
func (s *Sheet) ColumnCount() int {
	n := len(s.Header)
	for _, r := range s.Rows {
		if len(r) > n {
			n = len(r)
		}
	}
	if n < 1 {
		n = 1
	}
	return n
}

// RowCount returns the number of sheet rows including the header.
func (s *Sheet) RowCount() int {
	return len(s.Rows) + 1
}

// Ref returns the A1 range covering the header and every data row.
func (s *Sheet) Ref() string {
	return RangeName(1, 1, s.ColumnCount(), s.RowCount())
}

func (s *Sheet) width(col int) float64 {
	if col < len(s.Widths) && s.Widths[col] > 0 {
		return s.Widths[col]
	}
	return DefaultColumnWidth
}

// ValidateSheetName checks name against the workbook naming rules.
func ValidateSheetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty", ErrInvalidSheetName)
	}
	if n := utf8.RuneCountInString(name); n > MaxSheetNameLength {
		return fmt.Errorf("%w: %d characters, at most %d allowed", ErrInvalidSheetName, n, MaxSheetNameLength)
	}
	if i := strings.IndexAny(name, `:\/?*[]`); i >= 0 {
		return fmt.Errorf("%w: reserved character %q", ErrInvalidSheetName, name[i])
	}
	if strings.HasPrefix(name, "'") || strings.HasSuffix(name, "'") {
		return fmt.Errorf("%w: leading or trailing apostrophe", ErrInvalidSheetName)
	}
	return nil
}

func validateSheets(sheets []Sheet) error {
	if len(sheets) == 0 {
		return ErrNoSheets
	}
	seen := make(map[string]bool, len(sheets))
	for i := range sheets {
		name := sheets[i].Name
		if err := ValidateSheetName(name); err != nil {
			return &SheetError{Index: i, Name: name, Err: err}
		}
		key := strings.ToLower(name)
		if seen[key] {
			return &SheetError{Index: i, Name: name, Err: ErrDuplicateSheetName}
		}
		seen[key] = true
	}
	return nil
}
