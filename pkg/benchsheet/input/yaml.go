package input

import (
	"errors"
	"fmt"
	"io"

	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/models"
	"gopkg.in/yaml.v3"
)

// LoadYAML decodes a top-level mapping of section names to sequences of row
// mappings, with the same skipping rules as LoadJSON. Scalars keep their
// written form unless tagged as numbers, booleans or null. Payload.Text is
// left empty when the document has non-string keys.
func LoadYAML(r io.Reader) (models.Payload, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return models.Payload{}, malformed(FormatYAML, errors.New("empty document"))
		}
		return models.Payload{}, malformed(FormatYAML, err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return models.Payload{}, malformed(FormatYAML, fmt.Errorf("top level must be a mapping (line %d)", root.Line))
	}

	var p models.Payload
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if value.Kind != yaml.SequenceNode {
			continue
		}
		rows := make([]models.RawRow, 0, len(value.Content))
		for _, item := range value.Content {
			if item.Kind != yaml.MappingNode {
				continue
			}
			row, err := yamlRow(item)
			if err != nil {
				return models.Payload{}, malformed(FormatYAML, err)
			}
			rows = append(rows, row)
		}
		p.Sections = append(p.Sections, models.Section{Key: key.Value, Rows: rows})
	}

	var tree any
	if err := root.Decode(&tree); err == nil {
		p.Text = documentText(tree)
	}
	return p, nil
}

func yamlRow(n *yaml.Node) (models.RawRow, error) {
	row := make(models.RawRow, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		val, err := yamlScalar(v)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", v.Line, err)
		}
		if _, dup := row[k.Value]; !dup {
			row[k.Value] = val
		}
	}
	return row, nil
}

func yamlScalar(n *yaml.Node) (any, error) {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	if n.Kind != yaml.ScalarNode {
		var v any
		err := n.Decode(&v)
		return v, err
	}
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return n.Value, nil
		}
		return f, nil
	case "!!bool":
		var b bool
		err := n.Decode(&b)
		return b, err
	}
	return n.Value, nil
}
