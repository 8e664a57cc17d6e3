package xlsx

import (
	"bytes"
	"strconv"
	"time"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// XML namespaces used by the package parts.
const (
	nsMain          = "http://schemas.openxmlformats.org/spreadsheetml/2006/main"
	nsRelationships = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPackageRels   = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsCoreProps     = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsExtendedProps = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"
	nsDocPropsTypes = "http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes"
)

// Relationship types.
const (
	relOfficeDocument = nsRelationships + "/officeDocument"
	relWorksheet      = nsRelationships + "/worksheet"
	relStyles         = nsRelationships + "/styles"
	relExtendedProps  = nsRelationships + "/extended-properties"
	relCoreProps      = nsPackageRels + "/metadata/core-properties"
)

// Content types.
const (
	ctRelationships = "application/vnd.openxmlformats-package.relationships+xml"
	ctXML           = "application/xml"
	ctWorkbook      = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"
	ctWorksheet     = "application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"
	ctStyles        = "application/vnd.openxmlformats-officedocument.spreadsheetml.styles+xml"
	ctCoreProps     = "application/vnd.openxmlformats-package.core-properties+xml"
	ctExtendedProps = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
)

// Part names.
const (
	PartContentTypes  = "[Content_Types].xml"
	PartRootRels      = "_rels/.rels"
	PartWorkbook      = "xl/workbook.xml"
	PartWorkbookRels  = "xl/_rels/workbook.xml.rels"
	PartStyles        = "xl/styles.xml"
	PartCoreProps     = "docProps/core.xml"
	PartExtendedProps = "docProps/app.xml"
)

// WorksheetPart returns the part name of the n-th worksheet, 1-based.
func WorksheetPart(n int) string {
	return "xl/worksheets/sheet" + strconv.Itoa(n) + ".xml"
}

// sheetRelID returns the workbook relationship id of the n-th worksheet.
// Worksheets take rId1..rIdN; the styles part follows them.
func sheetRelID(n int) string {
	return "rId" + strconv.Itoa(n)
}

func contentTypesXML(sheetCount int) []byte {
	var b bytes.Buffer
	b.WriteString(xmlHeader)
	b.WriteString(`<Types xmlns="` + nsContentTypes + `">` + "\n")
	b.WriteString(`  <Default Extension="rels" ContentType="` + ctRelationships + `"/>` + "\n")
	b.WriteString(`  <Default Extension="xml" ContentType="` + ctXML + `"/>` + "\n")
	override := func(part, ct string) {
		b.WriteString(`  <Override PartName="/` + part + `" ContentType="` + ct + `"/>` + "\n")
	}
	override(PartWorkbook, ctWorkbook)
	override(PartStyles, ctStyles)
	override(PartCoreProps, ctCoreProps)
	override(PartExtendedProps, ctExtendedProps)
	for i := 1; i <= sheetCount; i++ {
		override(WorksheetPart(i), ctWorksheet)
	}
	b.WriteString("</Types>\n")
	return b.Bytes()
}

func rootRelsXML() []byte {
	var b bytes.Buffer
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="` + nsPackageRels + `">` + "\n")
	writeRel(&b, "rId1", relOfficeDocument, PartWorkbook)
	writeRel(&b, "rId2", relCoreProps, PartCoreProps)
	writeRel(&b, "rId3", relExtendedProps, PartExtendedProps)
	b.WriteString("</Relationships>\n")
	return b.Bytes()
}

func workbookRelsXML(sheetCount int) []byte {
	var b bytes.Buffer
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="` + nsPackageRels + `">` + "\n")
	for i := 1; i <= sheetCount; i++ {
		writeRel(&b, sheetRelID(i), relWorksheet, "worksheets/sheet"+strconv.Itoa(i)+".xml")
	}
	writeRel(&b, sheetRelID(sheetCount+1), relStyles, "styles.xml")
	b.WriteString("</Relationships>\n")
	return b.Bytes()
}

func writeRel(b *bytes.Buffer, id, typ, target string) {
	b.WriteString(`  <Relationship Id="` + id + `" Type="` + typ + `" Target="` + target + `"/>` + "\n")
}

// workbookXML lists the sheets in order and declares the hidden filter range
// of each sheet's autoFilter.
func workbookXML(sheets []Sheet) []byte {
	var b bytes.Buffer
	b.WriteString(xmlHeader)
	b.WriteString(`<workbook xmlns="` + nsMain + `" xmlns:r="` + nsRelationships + `">` + "\n")
	b.WriteString("  <sheets>\n")
	for i := range sheets {
		n := strconv.Itoa(i + 1)
		b.WriteString(`    <sheet name="`)
		escape(&b, sheets[i].Name)
		b.WriteString(`" sheetId="` + n + `" r:id="` + sheetRelID(i+1) + `"/>` + "\n")
	}
	b.WriteString("  </sheets>\n")
	b.WriteString("  <definedNames>\n")
	for i := range sheets {
		s := &sheets[i]
		b.WriteString(`    <definedName name="_xlnm._FilterDatabase" localSheetId="` + strconv.Itoa(i) + `" hidden="1">`)
		escape(&b, quoteSheetName(s.Name)+"!"+absoluteRange(1, 1, s.ColumnCount(), s.RowCount()))
		b.WriteString("</definedName>\n")
	}
	b.WriteString("  </definedNames>\n")
	b.WriteString("</workbook>\n")
	return b.Bytes()
}

// quoteSheetName wraps name in apostrophes for use in a formula reference.
func quoteSheetName(name string) string {
	var b bytes.Buffer
	b.WriteByte('\'')
	for _, r := range name {
		if r == '\'' {
			b.WriteByte('\'')
		}
		b.WriteRune(r)
	}
	b.WriteByte('\'')
	return b.String()
}

// stylesXML declares two fonts and three cell formats: 0 default, 1 centered
// and wrapped, 2 the same in bold for headers.
func stylesXML() []byte {
	return []byte(xmlHeader + `<styleSheet xmlns="` + nsMain + `">
  <fonts count="2">
    <font><sz val="11"/><color theme="1"/><name val="Calibri"/><family val="2"/></font>
    <font><b/><sz val="11"/><color theme="1"/><name val="Calibri"/><family val="2"/></font>
  </fonts>
  <fills count="2">
    <fill><patternFill patternType="none"/></fill>
    <fill><patternFill patternType="gray125"/></fill>
  </fills>
  <borders count="1">
    <border><left/><right/><top/><bottom/><diagonal/></border>
  </borders>
  <cellStyleXfs count="1">
    <xf numFmtId="0" fontId="0" fillId="0" borderId="0"/>
  </cellStyleXfs>
  <cellXfs count="3">
    <xf numFmtId="0" fontId="0" fillId="0" borderId="0" xfId="0"/>
    <xf numFmtId="0" fontId="0" fillId="0" borderId="0" xfId="0" applyAlignment="1"><alignment horizontal="center" vertical="center" wrapText="1"/></xf>
    <xf numFmtId="0" fontId="1" fillId="0" borderId="0" xfId="0" applyFont="1" applyAlignment="1"><alignment horizontal="center" vertical="center" wrapText="1"/></xf>
  </cellXfs>
  <cellStyles count="1">
    <cellStyle name="Normal" xfId="0" builtinId="0"/>
  </cellStyles>
</styleSheet>
`)
}

// w3cdtf formats t in the W3C date-time profile used by core properties.
func w3cdtf(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05Z")
}

func coreXML(m Meta) []byte {
	var b bytes.Buffer
	b.WriteString(xmlHeader)
	b.WriteString(`<cp:coreProperties xmlns:cp="` + nsCoreProps + `" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:dcmitype="http://purl.org/dc/dcmitype/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">` + "\n")
	element := func(name, value string) {
		b.WriteString("  <" + name + ">")
		escape(&b, value)
		b.WriteString("</" + name + ">\n")
	}
	if m.Title != "" {
		element("dc:title", m.Title)
	}
	element("dc:creator", m.Creator)
	element("cp:lastModifiedBy", m.Creator)
	element("dc:identifier", m.Identifier)
	if m.Language != "" {
		element("dc:language", m.Language)
	}
	b.WriteString(`  <dcterms:created xsi:type="dcterms:W3CDTF">` + w3cdtf(m.Created) + "</dcterms:created>\n")
	b.WriteString(`  <dcterms:modified xsi:type="dcterms:W3CDTF">` + w3cdtf(m.Modified) + "</dcterms:modified>\n")
	b.WriteString("</cp:coreProperties>\n")
	return b.Bytes()
}

func appXML(m Meta) []byte {
	var b bytes.Buffer
	b.WriteString(xmlHeader)
	b.WriteString(`<Properties xmlns="` + nsExtendedProps + `" xmlns:vt="` + nsDocPropsTypes + `">` + "\n")
	b.WriteString("  <Application>")
	escape(&b, m.Application)
	b.WriteString("</Application>\n")
	b.WriteString("</Properties>\n")
	return b.Bytes()
}
