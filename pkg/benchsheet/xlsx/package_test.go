package xlsx

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var fixedTime = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func testSheets() []Sheet {
	return []Sheet{
		{
			Name:   "Summary",
			Widths: []float64{18, 36, 20},
			Header: []string{"Problem", "Scope", "Score"},
			Rows: [][]Cell{
				{TextCell("Market"), TextCell(" region=global "), NumberCell(4.5)},
				{TextCell("a<b & c"), TextCell("line1\nline2"), FormulaCellWithValue("C2*2", 9)},
				{TextCell("=1+1")},
			},
		},
		{
			Name:   "竞品基准",
			Header: []string{"公司/产品"},
		},
	}
}

func testMeta() Meta {
	return Meta{Created: fixedTime, Identifier: "urn:uuid:test"}
}

func mustBytes(t *testing.T, sheets []Sheet, meta Meta) []byte {
	t.Helper()
	pkg, err := Assemble(sheets, meta)
	require.NoError(t, err)
	data, err := pkg.Bytes()
	require.NoError(t, err)
	return data
}

func TestAssemblePartLayout(t *testing.T) {
	pkg, err := Assemble(testSheets(), testMeta())
	require.NoError(t, err)

	var names []string
	for _, p := range pkg.Parts() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"xl/workbook.xml",
		"xl/_rels/workbook.xml.rels",
		"xl/styles.xml",
		"xl/worksheets/sheet1.xml",
		"xl/worksheets/sheet2.xml",
		"docProps/core.xml",
		"docProps/app.xml",
	}, names)

	ct, ok := pkg.Part(PartContentTypes)
	require.True(t, ok)
	for _, name := range names[1:] {
		if strings.HasSuffix(name, ".rels") {
			continue
		}
		assert.Contains(t, string(ct), `PartName="/`+name+`"`)
	}

	rels, _ := pkg.Part(PartWorkbookRels)
	assert.Contains(t, string(rels), `Id="rId1" Type="`+relWorksheet+`" Target="worksheets/sheet1.xml"`)
	assert.Contains(t, string(rels), `Id="rId2" Type="`+relWorksheet+`" Target="worksheets/sheet2.xml"`)
	assert.Contains(t, string(rels), `Id="rId3" Type="`+relStyles+`" Target="styles.xml"`)

	root, _ := pkg.Part(PartRootRels)
	assert.Contains(t, string(root), `Id="rId1" Type="`+relOfficeDocument+`" Target="xl/workbook.xml"`)
	assert.Contains(t, string(root), `Id="rId2" Type="`+relCoreProps+`" Target="docProps/core.xml"`)
	assert.Contains(t, string(root), `Id="rId3" Type="`+relExtendedProps+`" Target="docProps/app.xml"`)

	wb, _ := pkg.Part(PartWorkbook)
	assert.Contains(t, string(wb), `<sheet name="竞品基准" sheetId="2" r:id="rId2"/>`)
	assert.Contains(t, string(wb), `localSheetId="0" hidden="1">&#39;Summary&#39;!$A$1:$C$4</definedName>`)

	_, ok = pkg.Part("xl/missing.xml")
	assert.False(t, ok)
}

func TestAssembleReadBack(t *testing.T) {
	data := mustBytes(t, testSheets(), testMeta())

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary", "竞品基准"}, f.GetSheetList())

	rows, err := f.GetRows("Summary")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Problem", "Scope", "Score"}, rows[0])
	assert.Equal(t, []string{"Market", " region=global ", "4.5"}, rows[1])
	assert.Equal(t, "a<b & c", rows[2][0])
	assert.Equal(t, "line1\nline2", rows[2][1])
	assert.Equal(t, "=1+1", rows[3][0])

	formula, err := f.GetCellFormula("Summary", "C3")
	require.NoError(t, err)
	assert.Equal(t, "C2*2", formula)
	value, err := f.GetCellValue("Summary", "C3")
	require.NoError(t, err)
	assert.Equal(t, "9", value)

	formula, err = f.GetCellFormula("Summary", "A4")
	require.NoError(t, err)
	assert.Empty(t, formula, "text starting with = must not become a formula")

	headerStyle, err := f.GetCellStyle("Summary", "A1")
	require.NoError(t, err)
	assert.Equal(t, 2, headerStyle)
	bodyStyle, err := f.GetCellStyle("Summary", "B2")
	require.NoError(t, err)
	assert.Equal(t, 1, bodyStyle)

	width, err := f.GetColWidth("Summary", "B")
	require.NoError(t, err)
	assert.Equal(t, 36.0, width)

	header, err := f.GetCellValue("竞品基准", "A1")
	require.NoError(t, err)
	assert.Equal(t, "公司/产品", header)

	props, err := f.GetDocProps()
	require.NoError(t, err)
	assert.Equal(t, DefaultApplication, props.Creator)
	assert.Equal(t, "urn:uuid:test", props.Identifier)
	assert.Equal(t, "2026-03-14T09:26:53Z", props.Created)

	app, err := f.GetAppProps()
	require.NoError(t, err)
	assert.Equal(t, DefaultApplication, app.Application)
}

func TestAssembleDeterministic(t *testing.T) {
	a := mustBytes(t, testSheets(), testMeta())
	b := mustBytes(t, testSheets(), testMeta())
	assert.Equal(t, a, b)
}

func TestAssembleUsesDeflate(t *testing.T) {
	data := mustBytes(t, testSheets(), testMeta())
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range r.File {
		assert.Equal(t, zip.Deflate, f.Method, f.Name)
		assert.True(t, f.Modified.Equal(fixedTime), f.Name)
	}
}

func TestWriteToCountsBytes(t *testing.T) {
	pkg, err := Assemble(testSheets(), testMeta())
	require.NoError(t, err)
	var buf bytes.Buffer
	n, err := pkg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
}

func TestMetaDefaults(t *testing.T) {
	m := Meta{}.withDefaults()
	assert.Equal(t, DefaultApplication, m.Application)
	assert.Equal(t, DefaultApplication, m.Creator)
	assert.False(t, m.Created.IsZero())
	assert.Equal(t, m.Created, m.Modified)
	_, err := uuid.Parse(m.Identifier)
	assert.NoError(t, err)

	m = Meta{Application: "acme", Created: fixedTime}.withDefaults()
	assert.Equal(t, "acme", m.Creator)
}

func TestCoreXMLOptionalFields(t *testing.T) {
	out := string(coreXML(Meta{Title: "Q&A", Language: "ja", Creator: "x", Identifier: "id"}.withDefaults()))
	assert.Contains(t, out, "<dc:title>Q&amp;A</dc:title>")
	assert.Contains(t, out, "<dc:language>ja</dc:language>")
	assert.NotContains(t, string(coreXML(testMeta().withDefaults())), "dc:title")
}

func TestAssembleRejectsBadSheets(t *testing.T) {
	tests := []struct {
		name   string
		sheets []Sheet
		err    error
	}{
		{"none", nil, ErrNoSheets},
		{"empty name", []Sheet{{Name: " "}}, ErrInvalidSheetName},
		{"too long", []Sheet{{Name: strings.Repeat("x", 32)}}, ErrInvalidSheetName},
		{"reserved", []Sheet{{Name: "Q1/Q2"}}, ErrInvalidSheetName},
		{"apostrophe", []Sheet{{Name: "'quoted"}}, ErrInvalidSheetName},
		{"duplicate", []Sheet{{Name: "Sources"}, {Name: "SOURCES"}}, ErrDuplicateSheetName},
	}

	for _, tt := range tests {
		_, err := Assemble(tt.sheets, testMeta())
		if !errors.Is(err, tt.err) {
			t.Errorf("%s: Assemble() error = %v, expected %v", tt.name, err, tt.err)
		}
	}

	_, err := Assemble([]Sheet{{Name: "ok"}, {Name: "bad?"}}, testMeta())
	var sheetErr *SheetError
	require.ErrorAs(t, err, &sheetErr)
	assert.Equal(t, 1, sheetErr.Index)
	assert.Equal(t, "bad?", sheetErr.Name)
}

func TestValidateSheetNameLength(t *testing.T) {
	assert.NoError(t, ValidateSheetName(strings.Repeat("名", MaxSheetNameLength)))
	assert.ErrorIs(t, ValidateSheetName(strings.Repeat("名", MaxSheetNameLength+1)), ErrInvalidSheetName)
	assert.NoError(t, ValidateSheetName("Prix-GTM"))
	assert.NoError(t, ValidateSheetName("価格・GTM"))
}
