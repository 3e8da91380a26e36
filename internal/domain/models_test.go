package domain

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"
)

func TestSettings_UnmarshalKeepsOrder(t *testing.T) {
	raw := `{"capture_cursor":true,"monitor_id":"DP-1","display":2,"nested":{"a":1}}`

	var s Settings
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"capture_cursor", "monitor_id", "display", "nested"}
	if got := s.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("keys: want %v, got %v", want, got)
	}

	v, ok := s.Get("display")
	if !ok || v != float64(2) {
		t.Errorf("display: want 2, got %v (found=%v)", v, ok)
	}
}

func TestSettings_UnmarshalRejectsNonObject(t *testing.T) {
	var s Settings
	if err := json.Unmarshal([]byte(`[1,2]`), &s); err == nil {
		t.Error("expected error for JSON array")
	}
}

func TestSettings_Marshal(t *testing.T) {
	s := Settings{{Key: "b", Value: "x"}, {Key: "a", Value: float64(3)}}

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `{"b":"x","a":3}` {
		t.Errorf("unexpected encoding: %s", data)
	}

	if _, err := json.Marshal(Settings{{Key: "n", Value: math.NaN()}}); err == nil {
		t.Error("expected error when encoding NaN")
	}
}

func TestDisplayValue_String(t *testing.T) {
	tests := []struct {
		name  string
		value DisplayValue
		want  string
	}{
		{name: "String", value: StringValue("HDMI-1"), want: "HDMI-1"},
		{name: "Integer", value: NumberValue(1), want: "1"},
		{name: "Fraction", value: NumberValue(1.5), want: "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.String(); got != tt.want {
				t.Errorf("want %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDisplayGeometry_Contains(t *testing.T) {
	g := DisplayGeometry{X: -1920, Y: 0, Width: 1920, Height: 1080}

	if !g.Contains(-1920, 0) {
		t.Error("top-left corner should be inside")
	}
	if g.Contains(0, 0) {
		t.Error("right edge is exclusive")
	}
	if g.Contains(-1, 1080) {
		t.Error("bottom edge is exclusive")
	}
}
