// Package manifest generates the metadata files the host extension system
// reads out of the archive: the vsixmanifest, the content-type map, and the
// JSON catalogs.
package manifest

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/themetools/vsixpack/internal/config"
	"github.com/themetools/vsixpack/internal/theme"
)

// TargetVersionRange is the IDE version span the produced extension installs
// into.
const TargetVersionRange = "[17.0,19.0)"

// Identity carries every derived field the manifest files share.
type Identity struct {
	ID            string
	Version       string
	Publisher     string
	DisplayName   string
	Description   string
	Tags          string
	Icon          string // archive-relative icon name, empty when unset
	TargetVersion string
	ExtensionDir  string
	ArchiveName   string
}

// NewIdentity derives the package identity from a validated configuration.
// archiveName is the base name of the archive being produced.
func NewIdentity(cfg *config.Config, archiveName string) (Identity, error) {
	guid, err := theme.ParseGUID(cfg.GUID)
	if err != nil {
		return Identity{}, err
	}

	icon := ""
	if cfg.Icon != "" {
		icon = filepath.Base(cfg.Icon)
	}

	return Identity{
		ID:            fmt.Sprintf("%s.%s", strings.ReplaceAll(cfg.Author, " ", "-"), cfg.Identifier),
		Version:       cfg.Version,
		Publisher:     cfg.Author,
		DisplayName:   cfg.Name,
		Description:   cfg.Description,
		Tags:          cfg.Tags,
		Icon:          icon,
		TargetVersion: TargetVersionRange,
		ExtensionDir:  extensionDir(guid.String()),
		ArchiveName:   archiveName,
	}, nil
}

// extensionDir derives a stable install directory name from the theme GUID.
// The reversed GUID keeps the name unique per theme without another
// configuration knob.
func extensionDir(guid string) string {
	reversed := reverse(guid)
	return `[installdir]\Common7\IDE\Extensions\` + reversed[0:8] + "." + reversed[8:11]
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
