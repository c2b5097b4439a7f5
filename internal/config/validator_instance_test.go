package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetValidator(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	// Should return the same instance (singleton pattern)
	require.Same(t, v1, v2)
}

func TestCustomRules(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name     string
		tag      string
		value    string
		expected bool
	}{
		{"light mode", "mode", "light", true},
		{"dark mode upper", "mode", "DARK", true},
		{"empty mode", "mode", "", true},
		{"unknown mode", "mode", "sepia", false},

		{"camel breakpoint", "breakpoint_name", "gtPhone", true},
		{"digits breakpoint", "breakpoint_name", "gt1024", true},
		{"dashed breakpoint", "breakpoint_name", "gt-phone", false},
		{"leading digit breakpoint", "breakpoint_name", "1024", false},

		{"plain alias", "alias_name", "gap", true},
		{"macro alias", "alias_name", "jcb", false},
		{"font macro alias", "alias_name", "font", false},
		{"blank alias", "alias_name", " ", false},
		{"breakpoint key alias", "alias_name", "bp", false},
		{"style key alias", "alias_name", "style", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.value, tt.tag)
			require.Equal(t, tt.expected, err == nil, "value %q", tt.value)
		})
	}
}

func TestYamlishFieldName(t *testing.T) {
	require.Equal(t, "cell_width", snakeCase("CellWidth"))
	require.Equal(t, "linkmeta", snakeCase("LinkMeta"))
	require.Equal(t, "user_agent", snakeCase("UserAgent"))
}
