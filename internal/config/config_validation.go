package config

import (
	"fmt"
	"unicode"

	"github.com/themetools/vsixpack/internal/theme"
	vsixerrors "github.com/themetools/vsixpack/pkg/errors"
)

// ValidateConfig performs structural and per-entry validation on an entire
// theme configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return vsixerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]struct{}, len(cfg.Sections))
	for _, section := range cfg.Sections {
		if _, exists := seen[section.Name]; exists {
			return vsixerrors.NewValidationError("sections", fmt.Sprintf("duplicate section %q", section.Name), nil)
		}
		seen[section.Name] = struct{}{}

		if err := validateSection(section); err != nil {
			return err
		}
	}

	return nil
}

func validateSection(section Section) error {
	if section.GUID == "" {
		return vsixerrors.NewValidationError(fieldForSection(section.Name, "guid"), "section guid is required", nil)
	}
	if _, err := theme.ParseGUID(section.GUID); err != nil {
		return vsixerrors.NewValidationError(fieldForSection(section.Name, "guid"), err.Error(), err)
	}

	seen := make(map[string]struct{}, len(section.Entries))
	for _, entry := range section.Entries {
		if _, exists := seen[entry.Name]; exists {
			return vsixerrors.NewValidationError(fieldForSection(section.Name, entry.Name), "duplicate entry name", nil)
		}
		seen[entry.Name] = struct{}{}

		if err := validateEntry(section.Name, entry); err != nil {
			return err
		}
	}

	return nil
}

func validateEntry(section string, entry Entry) error {
	if entry.Name == "" {
		return vsixerrors.NewValidationError(fieldForSection(section, "entries"), "entry name must not be empty", nil)
	}
	// Entry names are length-prefixed ASCII in the theme-definition blob.
	for _, r := range entry.Name {
		if r > unicode.MaxASCII {
			return vsixerrors.NewValidationError(fieldForSection(section, entry.Name), "entry name must be ASCII", nil)
		}
	}

	for _, slot := range []*string{entry.Foreground, entry.Background} {
		if slot == nil {
			continue
		}
		if _, err := theme.ParseValue(*slot); err != nil {
			return vsixerrors.NewValidationError(fieldForSection(section, entry.Name), err.Error(), err)
		}
	}

	return nil
}

func fieldForSection(section, field string) string {
	return fmt.Sprintf("sections[%s].%s", section, field)
}
