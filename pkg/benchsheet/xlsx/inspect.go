package xlsx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrMissingPart indicates a part referenced by the package is absent.
var ErrMissingPart = errors.New("missing package part")

// SheetInfo describes one worksheet found in a package.
type SheetInfo struct {
	Name      string `json:"name"`
	RelID     string `json:"rel_id"`
	Path      string `json:"path"`
	Dimension string `json:"dimension"`
	// Rows counts row elements, header included.
	Rows     int `json:"rows"`
	Formulas int `json:"formulas"`
}

// Summary is the structure of a package as read back from its archive.
type Summary struct {
	Parts       []string    `json:"parts"`
	Sheets      []SheetInfo `json:"sheets"`
	Application string      `json:"application,omitempty"`
	Creator     string      `json:"creator,omitempty"`
}

// InspectFile reads the package at path.
func InspectFile(path string) (*Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Inspect(data)
}

// Inspect reads a package back: the workbook sheet list in order, each
// sheet's part with its dimension and row count, and the producer metadata.
// Relationship targets that do not exist in the archive yield ErrMissingPart.
func Inspect(data []byte) (*Summary, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}

	s := &Summary{}
	for _, f := range r.File {
		s.Parts = append(s.Parts, f.Name)
	}

	workbook, err := readZipFile(r, PartWorkbook)
	if err != nil {
		return nil, err
	}
	rels, err := readZipFile(r, PartWorkbookRels)
	if err != nil {
		return nil, err
	}

	sheets := parseWorkbookSheets(workbook)
	paths := parseWorkbookRels(rels)
	for _, sh := range sheets {
		path, ok := paths[sh.RelID]
		if !ok {
			return nil, fmt.Errorf("%w: relationship %s for sheet %q", ErrMissingPart, sh.RelID, sh.Name)
		}
		sh.Path = path
		part, err := readZipFile(r, path)
		if err != nil {
			return nil, err
		}
		sh.Dimension, sh.Rows, sh.Formulas = scanWorksheet(part)
		s.Sheets = append(s.Sheets, sh)
	}

	if app, err := readZipFile(r, PartExtendedProps); err == nil {
		s.Application = firstElementText(app, "Application")
	}
	if core, err := readZipFile(r, PartCoreProps); err == nil {
		s.Creator = firstElementText(core, "creator")
	}
	return s, nil
}

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrMissingPart, name)
}

func readElementText(decoder *xml.Decoder) (string, error) {
	var text strings.Builder
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return text.String(), err
		}
		switch t := token.(type) {
		case xml.CharData:
			text.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return text.String(), nil
}

func firstElementText(data []byte, local string) string {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if err != nil {
			return ""
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == local {
			text, _ := readElementText(decoder)
			return text
		}
	}
}

func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "../") {
		clean := target
		for strings.HasPrefix(clean, "../") {
			clean = strings.TrimPrefix(clean, "../")
		}
		return clean
	}
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return baseDir + "/" + target
}

// parseWorkbookSheets returns the sheets in workbook order.
func parseWorkbookSheets(data []byte) []SheetInfo {
	var result []SheetInfo
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			var info SheetInfo
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "name":
					info.Name = attr.Value
				case "id":
					info.RelID = attr.Value
				}
			}
			if info.Name != "" && info.RelID != "" {
				result = append(result, info)
			}
		}
	}

	return result
}

// parseWorkbookRels maps worksheet relationship ids to part names.
func parseWorkbookRels(data []byte) map[string]string {
	result := make(map[string]string) // rId -> part name
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			var rID, target, relType string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "Id":
					rID = attr.Value
				case "Target":
					target = attr.Value
				case "Type":
					relType = attr.Value
				}
			}
			if rID != "" && strings.HasSuffix(relType, "/worksheet") {
				result[rID] = resolveRelativePath(target, "xl")
			}
		}
	}

	return result
}

// scanWorksheet returns the dimension ref, the number of rows and the number
// of formula cells of a worksheet part.
func scanWorksheet(data []byte) (dimension string, rows, formulas int) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if err != nil {
			return dimension, rows, formulas
		}
		se, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "dimension":
			for _, attr := range se.Attr {
				if attr.Name.Local == "ref" {
					dimension = attr.Value
				}
			}
		case "row":
			rows++
		case "f":
			formulas++
		}
	}
}
