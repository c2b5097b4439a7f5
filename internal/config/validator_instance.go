package config

import (
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/skyui/internal/design"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	identPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("mode", func(fl validator.FieldLevel) bool {
			_, err := design.ParseMode(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("breakpoint_name", func(fl validator.FieldLevel) bool {
			return identPattern.MatchString(fl.Field().String())
		})

		// Aliases share the directive namespace with macros and the reserved
		// document keys.
		_ = v.RegisterValidation("alias_name", func(fl validator.FieldLevel) bool {
			name := fl.Field().String()
			if strings.TrimSpace(name) == "" || design.IsMacro(name) || design.IsReservedKey(name) {
				return false
			}
			return identPattern.MatchString(name)
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
