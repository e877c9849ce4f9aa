package config

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/themetools/vsixpack/internal/theme"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	// Marketplace identity segments: dotted version with 2 to 4 groups, and
	// an identifier that starts alphanumeric.
	pkgVersionPattern = regexp.MustCompile(`^\d+(\.\d+){1,3}$`)
	identifierPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)
)

// validatorInstance configures and returns the shared validator instance used
// across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("pkgversion", func(fl validator.FieldLevel) bool {
			return pkgVersionPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("identifier", func(fl validator.FieldLevel) bool {
			return identifierPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("guidstr", func(fl validator.FieldLevel) bool {
			_, err := theme.ParseGUID(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}
