package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	skyerrors "github.com/alexisbeaulieu97/skyui/pkg/errors"
)

// Validate checks a decoded configuration against its schema.
func Validate(cfg *Config) error {
	if cfg == nil {
		return skyerrors.NewValidationError("config", "configuration is nil", nil)
	}
	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// convertValidationError normalizes validator errors into skyui validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return skyerrors.NewValidationError(field, msg, err)
	}

	return skyerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName turns "Config.LinkMeta.UserAgent" into
// "linkmeta.user_agent" and "Config.Theme.Colors[text]" into "theme.colors[text]".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		name, index := part, ""
		if i := strings.IndexByte(part, '['); i >= 0 {
			name, index = part[:i], part[i:]
		}
		out = append(out, snakeCase(name)+index)
	}
	return strings.Join(out, ".")
}

func snakeCase(s string) string {
	if s == "LinkMeta" {
		return "linkmeta"
	}
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
