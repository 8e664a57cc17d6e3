package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ValueKind tags the variant held by a Value.
type ValueKind int

const (
	// ValueEmpty is an absent value; no cell content is emitted.
	ValueEmpty ValueKind = iota
	// ValueNumber is a finite float64.
	ValueNumber
	// ValueText is a string, rendered verbatim.
	ValueText
)

// Value is a scalar cell value: empty, number or text.
type Value struct {
	// Kind is the variant tag.
	Kind ValueKind `json:"kind"`
	// Number holds the value when Kind is ValueNumber.
	Number float64 `json:"number,omitempty"`
	// Text holds the value when Kind is ValueText.
	Text string `json:"text,omitempty"`
}

// Empty returns the empty value.
func Empty() Value {
	return Value{}
}

// Number returns a numeric value.
func Number(f float64) Value {
	return Value{Kind: ValueNumber, Number: f}
}

// Text returns a text value. The empty string yields Empty.
func Text(s string) Value {
	if s == "" {
		return Value{}
	}
	return Value{Kind: ValueText, Text: s}
}

// IsEmpty reports whether v carries no content.
func (v Value) IsEmpty() bool {
	return v.Kind == ValueEmpty
}

// IsBlank reports whether v is empty or whitespace-only text.
func (v Value) IsBlank() bool {
	switch v.Kind {
	case ValueEmpty:
		return true
	case ValueText:
		return strings.TrimSpace(v.Text) == ""
	}
	return false
}

// String returns the display form of v.
func (v Value) String() string {
	switch v.Kind {
	case ValueNumber:
		return FormatNumber(v.Number)
	case ValueText:
		return v.Text
	}
	return ""
}

// Float returns v as a finite number. Text is trimmed and parsed.
func (v Value) Float() (float64, bool) {
	switch v.Kind {
	case ValueNumber:
		return v.Number, true
	case ValueText:
		return parseFloat(v.Text)
	}
	return 0, false
}

// FormatNumber renders f in plain decimal notation without a trailing ".0".
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ValueOf converts a loosely typed input scalar into a Value.
// Numbers stay numbers, strings stay text, nil and "" become Empty;
// anything else is rendered as text.
func ValueOf(raw any) Value {
	switch x := raw.(type) {
	case nil:
		return Empty()
	case Value:
		return x
	case string:
		return Text(x)
	case []byte:
		return Text(string(x))
	case json.Number:
		if f, ok := parseFloat(x.String()); ok {
			return Number(f)
		}
		return Text(x.String())
	case float64:
		return finite(x)
	case float32:
		return finite(float64(x))
	case int:
		return Number(float64(x))
	case int8:
		return Number(float64(x))
	case int16:
		return Number(float64(x))
	case int32:
		return Number(float64(x))
	case int64:
		return Number(float64(x))
	case uint:
		return Number(float64(x))
	case uint8:
		return Number(float64(x))
	case uint16:
		return Number(float64(x))
	case uint32:
		return Number(float64(x))
	case uint64:
		return Number(float64(x))
	case bool:
		return Text(strconv.FormatBool(x))
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return Empty()
	}
	return Text(string(data))
}

func finite(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Empty()
	}
	return Number(f)
}
