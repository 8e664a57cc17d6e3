package input

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/models"
)

// LoadJSON decodes a top-level object whose values are arrays of row objects.
// Keys keep their document order. Values that are not arrays, and array items
// that are not objects, are skipped but still reach Payload.Text. Numbers are
// kept as json.Number.
func LoadJSON(r io.Reader) (models.Payload, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return models.Payload{}, malformed(FormatJSON, err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return models.Payload{}, malformed(FormatJSON, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return models.Payload{}, malformed(FormatJSON, fmt.Errorf("top level must be an object, got %v", tok))
	}

	var p models.Payload
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return models.Payload{}, malformed(FormatJSON, err)
		}
		key, _ := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return models.Payload{}, malformed(FormatJSON, err)
		}
		rows, ok, err := jsonRows(raw)
		if err != nil {
			return models.Payload{}, malformed(FormatJSON, err)
		}
		if ok {
			p.Sections = append(p.Sections, models.Section{Key: key, Rows: rows})
		}
	}

	if _, err := dec.Token(); err != nil {
		return models.Payload{}, malformed(FormatJSON, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return models.Payload{}, malformed(FormatJSON, errors.New("trailing data after top-level object"))
	}

	var doc any
	full := json.NewDecoder(bytes.NewReader(data))
	full.UseNumber()
	if err := full.Decode(&doc); err != nil {
		return models.Payload{}, malformed(FormatJSON, err)
	}
	p.Text = documentText(doc)
	return p, nil
}

// jsonRows decodes raw as a list of row objects. ok is false when raw is not
// an array.
func jsonRows(raw json.RawMessage) (rows []models.RawRow, ok bool, err error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, false, nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	var items []any
	if err := dec.Decode(&items); err != nil {
		return nil, false, err
	}

	rows = make([]models.RawRow, 0, len(items))
	for _, item := range items {
		if obj, isObj := item.(map[string]any); isObj {
			rows = append(rows, models.RawRow(obj))
		}
	}
	return rows, true, nil
}
