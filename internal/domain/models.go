package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// DisplayGeometry describes one physical display in virtual-desktop coordinates
type DisplayGeometry struct {
	// Index is the 0-based position in the listing order
	Index int
	// X and Y are the top-left corner of the display
	X int
	Y int
	// Width and Height are always positive
	Width  int
	Height int
	// IsMain marks the primary display
	IsMain bool
	// Name and ID are empty when the source does not report them
	Name string
	ID   string
}

// Contains reports whether the point lies inside the half-open box of the display
func (g DisplayGeometry) Contains(x, y int) bool {
	return x >= g.X && x < g.X+g.Width && y >= g.Y && y < g.Y+g.Height
}

// CursorPosition is a pointer location in virtual-desktop coordinates
type CursorPosition struct {
	X int
	Y int
}

// DisplayValue is the value written into a capture input to select a display.
// It is either a string identifier or a number.
type DisplayValue struct {
	str     string
	num     float64
	numeric bool
}

// StringValue returns a string display selection
func StringValue(s string) DisplayValue {
	return DisplayValue{str: s}
}

// NumberValue returns a numeric display selection
func NumberValue(n float64) DisplayValue {
	return DisplayValue{num: n, numeric: true}
}

// IsNumber reports whether the value was built from a number
func (v DisplayValue) IsNumber() bool {
	return v.numeric
}

// Number returns the numeric form; only meaningful when IsNumber is true
func (v DisplayValue) Number() float64 {
	return v.num
}

// String returns the textual form of the value
func (v DisplayValue) String() string {
	if v.numeric {
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	return v.str
}

// Setting is a single key/value pair of a capture input's settings
type Setting struct {
	Key   string
	Value any
}

// Settings is an ordered view of a capture input's settings object.
// Key order follows the order the controller sent them in.
type Settings []Setting

// Get returns the value stored under key
func (s Settings) Get(key string) (any, bool) {
	for _, kv := range s {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return nil, false
}

// Keys returns the keys in order
func (s Settings) Keys() []string {
	keys := make([]string, 0, len(s))
	for _, kv := range s {
		keys = append(keys, kv.Key)
	}
	return keys
}

// MarshalJSON encodes the settings as a JSON object, keeping key order
func (s Settings) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, kv := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(kv.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(kv.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode setting %q: %w", kv.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object and records its keys in document order.
// Nested objects and arrays are kept as generic values.
func (s *Settings) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*s = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("settings must be a JSON object, got %v", tok)
	}

	out := Settings{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected settings key %v", keyTok)
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("failed to decode setting %q: %w", key, err)
		}
		out = append(out, Setting{Key: key, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*s = out
	return nil
}
