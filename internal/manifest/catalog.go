package manifest

import (
	"encoding/json"
	"fmt"
)

const coreEditorComponent = "Microsoft.VisualStudio.Component.CoreEditor"

type catalog struct {
	ManifestVersion string           `json:"manifestVersion"`
	Info            catalogInfo      `json:"info"`
	Packages        []catalogPackage `json:"packages"`
}

type catalogInfo struct {
	ID           string `json:"id"`
	ManifestType string `json:"manifestType"`
}

type catalogPackage struct {
	ID                 string              `json:"id"`
	Version            string              `json:"version"`
	Type               string              `json:"type"`
	Extension          bool                `json:"extension,omitempty"`
	VsixID             string              `json:"vsixId,omitempty"`
	ExtensionDir       string              `json:"extensionDir,omitempty"`
	Dependencies       map[string]string   `json:"dependencies,omitempty"`
	LocalizedResources []localizedResource `json:"localizedResources,omitempty"`
	Payloads           []payload           `json:"payloads,omitempty"`
}

type localizedResource struct {
	Language    string `json:"language"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type payload struct {
	FileName string `json:"fileName"`
}

// Catalog renders catalog.json: the component/vsix package pair the
// installer's feed expects.
func Catalog(id Identity) ([]byte, error) {
	doc := catalog{
		ManifestVersion: "1.1",
		Info: catalogInfo{
			ID:           fmt.Sprintf("%s,version=%s", id.ID, id.Version),
			ManifestType: "Extension",
		},
		Packages: []catalogPackage{
			{
				ID:        "Component." + id.ID,
				Version:   id.Version,
				Type:      "Component",
				Extension: true,
				Dependencies: map[string]string{
					id.ID:               id.Version,
					coreEditorComponent: id.TargetVersion,
				},
				LocalizedResources: []localizedResource{
					{Language: "en-US", Title: id.DisplayName, Description: id.Description},
				},
			},
			{
				ID:           id.ID,
				Version:      id.Version,
				Type:         "Vsix",
				VsixID:       id.ID,
				ExtensionDir: id.ExtensionDir,
				Payloads:     []payload{{FileName: id.ArchiveName}},
			},
		},
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal catalog: %w", err)
	}
	return out, nil
}

type installManifest struct {
	ID           string            `json:"id"`
	Version      string            `json:"version"`
	Type         string            `json:"type"`
	VsixID       string            `json:"vsixId"`
	ExtensionDir string            `json:"extensionDir"`
	Dependencies map[string]string `json:"dependencies"`
	Files        []manifestFile    `json:"files"`
}

type manifestFile struct {
	FileName string  `json:"fileName"`
	Sha256   *string `json:"sha256"`
}

// InstallManifest renders manifest.json, listing the archive payload files.
func InstallManifest(id Identity) ([]byte, error) {
	files := []manifestFile{
		{FileName: "/extension.vsixmanifest"},
		{FileName: "/extension.pkgdef"},
	}
	if id.Icon != "" {
		files = append(files, manifestFile{FileName: "/" + id.Icon})
	}

	doc := installManifest{
		ID:           id.ID,
		Version:      id.Version,
		Type:         "Vsix",
		VsixID:       id.ID,
		ExtensionDir: id.ExtensionDir,
		Dependencies: map[string]string{coreEditorComponent: id.TargetVersion},
		Files:        files,
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal install manifest: %w", err)
	}
	return out, nil
}
