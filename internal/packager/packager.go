// Package packager turns a validated theme configuration into a single
// distributable archive: load config, render the payload files in memory,
// then commit the archive in one write.
package packager

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/themetools/vsixpack/internal/config"
	"github.com/themetools/vsixpack/internal/logger"
	"github.com/themetools/vsixpack/internal/manifest"
	"github.com/themetools/vsixpack/internal/pkgdef"
	"github.com/themetools/vsixpack/internal/vsix"
	vsixerrors "github.com/themetools/vsixpack/pkg/errors"
)

// Options configures a single packaging run.
type Options struct {
	// ConfigPath locates the theme configuration document.
	ConfigPath string
	// OutputName is the archive base name; the archive extension is appended.
	OutputName string
	// Logger receives progress output. Nil disables logging.
	Logger *logger.Logger
}

// Result summarizes a successful packaging run.
type Result struct {
	ArchivePath string
	Size        int64
	Sections    int
	Entries     int
}

// Package loads, validates, and packages the configuration at
// opts.ConfigPath. Exactly one archive file is written on success.
func Package(opts Options) (*Result, error) {
	cfg, err := config.ParseConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	return Build(cfg, opts)
}

// Build packages an already-parsed configuration.
func Build(cfg *config.Config, opts Options) (*Result, error) {
	archivePath := opts.OutputName + vsix.Extension

	id, err := manifest.NewIdentity(cfg, filepath.Base(archivePath))
	if err != nil {
		return nil, vsixerrors.NewValidationError("guid", err.Error(), err)
	}

	files, err := renderPayload(cfg, id, opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	size, err := vsix.Write(archivePath, files)
	if err != nil {
		return nil, err
	}

	result := &Result{
		ArchivePath: archivePath,
		Size:        size,
		Sections:    len(cfg.Sections),
		Entries:     cfg.Sections.EntryCount(),
	}

	opts.Logger.WithFields(map[string]any{
		"archive":  result.ArchivePath,
		"size":     humanize.Bytes(uint64(result.Size)),
		"sections": result.Sections,
		"entries":  result.Entries,
	}).Info("archive written")

	return result, nil
}

// renderPayload assembles every archive entry in memory so the output file
// is only opened once the whole payload is known good.
func renderPayload(cfg *config.Config, id manifest.Identity, configPath string) ([]vsix.File, error) {
	var files []vsix.File

	if cfg.Icon != "" {
		data, err := readIcon(configPath, cfg.Icon)
		if err != nil {
			return nil, err
		}
		files = append(files, vsix.File{Name: id.Icon, Data: data})
	}

	definition, err := pkgdef.Render(cfg)
	if err != nil {
		return nil, vsixerrors.NewValidationError("sections", err.Error(), err)
	}
	files = append(files, vsix.File{Name: "extension.pkgdef", Data: []byte(definition)})

	contentTypes, err := manifest.ContentTypes()
	if err != nil {
		return nil, err
	}
	files = append(files, vsix.File{Name: "[Content_Types].xml", Data: contentTypes})

	vsixManifest, err := manifest.VsixManifest(id)
	if err != nil {
		return nil, err
	}
	files = append(files, vsix.File{Name: "extension.vsixmanifest", Data: vsixManifest})

	catalog, err := manifest.Catalog(id)
	if err != nil {
		return nil, err
	}
	files = append(files, vsix.File{Name: "catalog.json", Data: catalog})

	installManifest, err := manifest.InstallManifest(id)
	if err != nil {
		return nil, err
	}
	files = append(files, vsix.File{Name: "manifest.json", Data: installManifest})

	return files, nil
}

// IconPath resolves a configured icon reference, treating relative paths as
// relative to the configuration file's directory.
func IconPath(configPath, icon string) string {
	if filepath.IsAbs(icon) {
		return icon
	}
	return filepath.Join(filepath.Dir(configPath), icon)
}

func readIcon(configPath, icon string) ([]byte, error) {
	path := IconPath(configPath, icon)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, vsixerrors.NewAssetError(path, fmt.Errorf("file not found"))
		}
		return nil, vsixerrors.NewAssetError(path, err)
	}
	return data, nil
}
