package capture

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/genricoloni/displayfollow/internal/domain"
)

// ErrFieldNotFound is returned when no setting looks like a display selector
var ErrFieldNotFound = errors.New("no display selection field in input settings")

// Substrings that mark a display selection key, matched against the lowercased key
var fieldHints = []string{"display", "screen", "monitor"}

// IsDisplayField reports whether key names a display selection setting
func IsDisplayField(key string) bool {
	k := strings.ToLower(key)
	for _, hint := range fieldHints {
		if strings.Contains(k, hint) {
			return true
		}
	}
	return false
}

// FindDisplayField returns the first display-like key in settings and its current value
func FindDisplayField(settings domain.Settings) (string, any, error) {
	for _, kv := range settings {
		if IsDisplayField(kv.Key) {
			return kv.Key, kv.Value, nil
		}
	}
	return "", nil, ErrFieldNotFound
}

// IsNumeric reports whether v is a number. NaN counts as a number.
func IsNumeric(v any) bool {
	switch v.(type) {
	case float64, float32, int, int32, int64, uint, uint32, uint64:
		return true
	default:
		return false
	}
}

// ToNumber converts the desired value to a number.
// Strings must hold a finite decimal number; blank strings, NaN and infinities are rejected.
func ToNumber(v domain.DisplayValue) (float64, bool) {
	if v.IsNumber() {
		n := v.Number()
		return n, !math.IsNaN(n) && !math.IsInf(n, 0)
	}

	s := strings.TrimSpace(v.String())
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// CoerceValue picks the value to write so that it keeps the type of the current one.
// A numeric current value gets a number: the desired value when it parses, otherwise
// fallback when given, otherwise 0. Any other current value gets the desired value as a string.
func CoerceValue(current any, desired domain.DisplayValue, fallback *int) any {
	if IsNumeric(current) {
		if n, ok := ToNumber(desired); ok {
			return n
		}
		if fallback != nil {
			return float64(*fallback)
		}
		return float64(0)
	}
	return desired.String()
}
