package xlsx

import (
	"bytes"
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/models"
)

const (
	rowHeight = "22"

	styleBody   = "1"
	styleHeader = "2"
)

// renderWorksheet writes the worksheet part of s. Child elements follow the
// order required by the worksheet schema.
func renderWorksheet(s *Sheet) []byte {
	cols := s.ColumnCount()
	ref := s.Ref()

	var b bytes.Buffer
	b.WriteString(xmlHeader)
	b.WriteString(`<worksheet xmlns="` + nsMain + `" xmlns:r="` + nsRelationships + `">` + "\n")
	b.WriteString(`  <dimension ref="` + ref + `"/>` + "\n")
	b.WriteString(`  <sheetViews><sheetView workbookViewId="0"><pane ySplit="1" topLeftCell="A2" activePane="bottomLeft" state="frozen"/></sheetView></sheetViews>` + "\n")
	b.WriteString(`  <sheetFormatPr defaultRowHeight="` + rowHeight + `"/>` + "\n")

	b.WriteString("  <cols>")
	for i := 0; i < cols; i++ {
		n := strconv.Itoa(i + 1)
		b.WriteString(`<col min="` + n + `" max="` + n + `" width="` + models.FormatNumber(s.width(i)) + `" customWidth="1"/>`)
	}
	b.WriteString("</cols>\n")

	b.WriteString("  <sheetData>\n")
	header := make([]Cell, len(s.Header))
	for i, h := range s.Header {
		header[i] = TextCell(h)
	}
	writeRow(&b, 1, header, cols, styleHeader)
	for i, row := range s.Rows {
		writeRow(&b, i+2, row, cols, styleBody)
	}
	b.WriteString("  </sheetData>\n")

	b.WriteString(`  <autoFilter ref="` + ref + `"/>` + "\n")
	b.WriteString("</worksheet>\n")
	return b.Bytes()
}

// writeRow writes one row, padding it with empty cells up to cols.
func writeRow(b *bytes.Buffer, num int, cells []Cell, cols int, style string) {
	b.WriteString(`    <row r="` + strconv.Itoa(num) + `" ht="` + rowHeight + `" customHeight="1">`)
	for i := 0; i < cols; i++ {
		var c Cell
		if i < len(cells) {
			c = cells[i]
		}
		writeCell(b, CellName(i+1, num), c, style)
	}
	b.WriteString("</row>\n")
}

func writeCell(b *bytes.Buffer, ref string, c Cell, style string) {
	attrs := `r="` + ref + `" s="` + style + `"`
	switch c.Kind {
	case CellNumber:
		b.WriteString(`<c ` + attrs + `><v>` + models.FormatNumber(c.Number) + `</v></c>`)
	case CellFormula:
		b.WriteString(`<c ` + attrs + `><f>`)
		escape(b, c.Formula)
		b.WriteString(`</f>`)
		if c.Cached {
			b.WriteString(`<v>` + models.FormatNumber(c.Number) + `</v>`)
		}
		b.WriteString(`</c>`)
	case CellText:
		b.WriteString(`<c r="` + ref + `" t="inlineStr" s="` + style + `"><is><t`)
		if preserveSpace(c.Text) {
			b.WriteString(` xml:space="preserve"`)
		}
		b.WriteByte('>')
		escape(b, c.Text)
		b.WriteString(`</t></is></c>`)
	default:
		b.WriteString(`<c ` + attrs + `/>`)
	}
}

// preserveSpace reports whether s needs xml:space="preserve" to survive a
// round trip: leading or trailing whitespace, or a line break.
func preserveSpace(s string) bool {
	if s == "" {
		return false
	}
	return strings.TrimSpace(s[:1]) == "" ||
		strings.TrimSpace(s[len(s)-1:]) == "" ||
		strings.ContainsAny(s, "\n\r")
}

func escape(b *bytes.Buffer, s string) {
	// bytes.Buffer writes never fail.
	_ = xml.EscapeText(b, []byte(s))
}
