package design

import (
	"math"
	"sort"
)

// Style is a flattened set of concrete style properties keyed by property name.
type Style map[string]any

// Clone returns a shallow copy of the style.
func (s Style) Clone() Style {
	if s == nil {
		return nil
	}
	out := make(Style, len(s))
	for key, value := range s {
		out[key] = value
	}
	return out
}

// Keys returns the property names in sorted order.
func (s Style) Keys() []string {
	keys := make([]string, 0, len(s))
	for key := range s {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// String returns the named property when it holds a string.
func (s Style) String(key string) (string, bool) {
	value, ok := s[key].(string)
	return value, ok
}

// Number returns the named property when it holds a numeric value.
func (s Style) Number(key string) (float64, bool) {
	value, ok := s[key]
	if !ok {
		return 0, false
	}
	return toFloat(value)
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		if math.IsNaN(v) {
			return 0, false
		}
		return v, true
	default:
		return 0, false
	}
}
