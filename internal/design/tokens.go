package design

import (
	"fmt"
	"sort"
	"strings"
)

// Category names a group of design tokens.
type Category string

const (
	CategorySpace      Category = "space"
	CategoryColor      Category = "color"
	CategoryFontSize   Category = "fontSize"
	CategoryLineHeight Category = "lineHeight"
	CategoryFontFamily Category = "fontFamily"
)

// Tokens maps a category to its named primitive values. Values are ints,
// float64s or strings.
type Tokens map[Category]map[string]any

// Lookup resolves a single token.
func (t Tokens) Lookup(category Category, key string) (any, error) {
	values, ok := t[category]
	if !ok {
		return nil, &UnknownTokenError{Category: category, Key: key}
	}
	value, ok := values[key]
	if !ok {
		return nil, &UnknownTokenError{Category: category, Key: key}
	}
	return value, nil
}

// Clone returns a deep copy of the token set.
func (t Tokens) Clone() Tokens {
	if t == nil {
		return nil
	}
	out := make(Tokens, len(t))
	for category, values := range t {
		out[category] = cloneValues(values)
	}
	return out
}

// Categories returns the category names in sorted order.
func (t Tokens) Categories() []Category {
	out := make([]Category, 0, len(t))
	for category := range t {
		out = append(out, category)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func cloneValues(values map[string]any) map[string]any {
	if values == nil {
		return nil
	}
	out := make(map[string]any, len(values))
	for key, value := range values {
		out[key] = value
	}
	return out
}

// TokenRef is a symbolic reference to a token, substituted during resolution.
type TokenRef struct {
	Category Category
	Key      string
}

// Token builds a reference to tokens[category][key].
func Token(category Category, key string) TokenRef {
	return TokenRef{Category: category, Key: key}
}

func (r TokenRef) String() string {
	return fmt.Sprintf("$%s.%s", r.Category, r.Key)
}

// ParseTokenRef parses the textual "$category.key" form. The boolean reports
// whether s used the token syntax at all; a malformed reference returns an error.
func ParseTokenRef(s string) (TokenRef, bool, error) {
	if !strings.HasPrefix(s, "$") {
		return TokenRef{}, false, nil
	}
	category, key, found := strings.Cut(strings.TrimPrefix(s, "$"), ".")
	if !found || category == "" || key == "" {
		return TokenRef{}, true, fmt.Errorf("malformed token reference %q, expected $category.key", s)
	}
	return TokenRef{Category: Category(category), Key: key}, true, nil
}

func lightTokens() Tokens {
	scale := func() map[string]any {
		return map[string]any{
			"xxs": 10,
			"xs":  12,
			"s":   14,
			"m":   16,
			"l":   24,
			"xl":  32,
			"xxl": 48,
		}
	}

	return Tokens{
		CategorySpace: {
			"s": 10,
			"m": 16,
			"l": 24,
		},
		CategoryColor:      lightColors(),
		CategoryFontSize:   scale(),
		CategoryLineHeight: scale(),
		CategoryFontFamily: {
			"inter":  "sans-serif",
			"roboto": "monospace",
		},
	}
}

func lightColors() map[string]any {
	return map[string]any{
		"surface":      "#fff",
		"text":         "#000",
		"textInverted": "#fff",
		"textLink":     "#0085ff",
		"border":       "#f0e9e9",
	}
}

func darkColors() map[string]any {
	return map[string]any{
		"surface":      "#000",
		"text":         "#fff",
		"textInverted": "#000",
		"textLink":     "#0085ff",
		"border":       "#f0e9e9",
	}
}
