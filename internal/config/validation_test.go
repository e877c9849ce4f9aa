package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	vsixerrors "github.com/themetools/vsixpack/pkg/errors"
)

func strptr(s string) *string { return &s }

func baseConfig() *Config {
	return &Config{
		Name:       "One Dark",
		Identifier: "OneDark",
		Version:    "1.2.0",
		Author:     "Acme Themes",
		GUID:       "8e2a3f4c-1c7e-4f0b-9a6d-3f2b1c0d9e8f",
		BaseGUID:   "1ded0138-47ce-435e-84ef-9ec1f439b749",
		Sections: SectionList{
			{
				Name: "Editor",
				GUID: "624ed9c3-bdfd-41fa-96c3-7c824ea32e3d",
				Entries: []Entry{
					{Name: "Background", Foreground: strptr("#282C34")},
				},
			},
		},
	}
}

func requireValidationError(t *testing.T, err error, contains string) {
	t.Helper()
	require.Error(t, err)

	var validationErr *vsixerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Contains(t, err.Error(), contains)
}

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	t.Run("accepts a valid configuration", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, ValidateConfig(baseConfig()))
	})

	t.Run("rejects nil configuration", func(t *testing.T) {
		t.Parallel()
		requireValidationError(t, ValidateConfig(nil), "configuration is nil")
	})

	t.Run("rejects missing identifier", func(t *testing.T) {
		t.Parallel()
		cfg := baseConfig()
		cfg.Identifier = ""
		requireValidationError(t, ValidateConfig(cfg), "identifier")
	})

	t.Run("rejects malformed version", func(t *testing.T) {
		t.Parallel()
		cfg := baseConfig()
		cfg.Version = "one-point-oh"
		requireValidationError(t, ValidateConfig(cfg), "version")
	})

	t.Run("rejects malformed theme guid", func(t *testing.T) {
		t.Parallel()
		cfg := baseConfig()
		cfg.GUID = "not-a-guid"
		requireValidationError(t, ValidateConfig(cfg), "guid")
	})

	t.Run("rejects empty sections", func(t *testing.T) {
		t.Parallel()
		cfg := baseConfig()
		cfg.Sections = nil
		requireValidationError(t, ValidateConfig(cfg), "sections")
	})

	t.Run("rejects duplicate section names", func(t *testing.T) {
		t.Parallel()
		cfg := baseConfig()
		cfg.Sections = append(cfg.Sections, cfg.Sections[0])
		requireValidationError(t, ValidateConfig(cfg), "duplicate section")
	})

	t.Run("rejects section without guid", func(t *testing.T) {
		t.Parallel()
		cfg := baseConfig()
		cfg.Sections[0].GUID = ""
		requireValidationError(t, ValidateConfig(cfg), "section guid is required")
	})

	t.Run("rejects malformed section guid", func(t *testing.T) {
		t.Parallel()
		cfg := baseConfig()
		cfg.Sections[0].GUID = "zz4ed9c3"
		requireValidationError(t, ValidateConfig(cfg), "sections[Editor].guid")
	})

	t.Run("rejects duplicate entry names within a section", func(t *testing.T) {
		t.Parallel()
		cfg := baseConfig()
		cfg.Sections[0].Entries = append(cfg.Sections[0].Entries, Entry{
			Name:       "Background",
			Foreground: strptr("#FFFFFF"),
		})
		requireValidationError(t, ValidateConfig(cfg), "duplicate entry name")
	})

	t.Run("rejects malformed color values", func(t *testing.T) {
		t.Parallel()
		cfg := baseConfig()
		cfg.Sections[0].Entries[0].Foreground = strptr("#28ZC34")
		requireValidationError(t, ValidateConfig(cfg), "sections[Editor].Background")
	})

	t.Run("rejects reserved flag bytes", func(t *testing.T) {
		t.Parallel()
		cfg := baseConfig()
		cfg.Sections[0].Entries[0].Foreground = strptr("01x00000001")
		requireValidationError(t, ValidateConfig(cfg), "reserved flag")
	})

	t.Run("rejects non-ascii entry names", func(t *testing.T) {
		t.Parallel()
		cfg := baseConfig()
		cfg.Sections[0].Entries[0].Name = "Hintergrundfärbung"
		requireValidationError(t, ValidateConfig(cfg), "ASCII")
	})

	t.Run("allows entries with both slots unset", func(t *testing.T) {
		t.Parallel()
		cfg := baseConfig()
		cfg.Sections[0].Entries = append(cfg.Sections[0].Entries, Entry{Name: "Caret"})
		require.NoError(t, ValidateConfig(cfg))
	})
}
