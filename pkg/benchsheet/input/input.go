// Package input loads report payloads from JSON, YAML, XLSX and SQLite
// sources. Every loader keeps sections in source order.
package input

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/models"
)

// ErrUnsupportedFormat indicates the input file extension is not recognized.
var ErrUnsupportedFormat = errors.New("unsupported input format")

// ErrMalformedInput indicates the input could not be parsed into sections.
var ErrMalformedInput = errors.New("malformed input")

// Format identifies an input encoding.
type Format string

const (
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatXLSX   Format = "xlsx"
	FormatSQLite Format = "sqlite"
)

var extensions = map[string]Format{
	".json":    FormatJSON,
	".yaml":    FormatYAML,
	".yml":     FormatYAML,
	".xlsx":    FormatXLSX,
	".xlsm":    FormatXLSX,
	".db":      FormatSQLite,
	".sqlite":  FormatSQLite,
	".sqlite3": FormatSQLite,
}

// DetectFormat infers the format of path from its extension.
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

// Load reads the payload stored at path in the format given by its extension.
func Load(path string) (models.Payload, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return models.Payload{}, err
	}
	return LoadFormat(path, format)
}

// LoadFormat reads the payload stored at path in the given format.
func LoadFormat(path string, format Format) (models.Payload, error) {
	switch format {
	case FormatXLSX:
		return LoadWorkbookFile(path)
	case FormatSQLite:
		return LoadSQLite(path)
	case FormatJSON, FormatYAML:
	default:
		return models.Payload{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	f, err := os.Open(path)
	if err != nil {
		return models.Payload{}, err
	}
	defer f.Close()

	if format == FormatYAML {
		return LoadYAML(f)
	}
	return LoadJSON(f)
}

func malformed(format Format, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrMalformedInput, format, err)
}

// documentText serializes a decoded document as compact JSON with non-ASCII
// text kept verbatim. It returns "" when v cannot be encoded.
func documentText(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return ""
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
