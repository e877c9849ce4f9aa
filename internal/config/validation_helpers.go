package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	vsixerrors "github.com/themetools/vsixpack/pkg/errors"
)

// convertValidationError normalizes validator errors into the packager's
// validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return vsixerrors.NewValidationError(field, msg, err)
	}

	return vsixerrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
