package manifest

import (
	"encoding/xml"
	"fmt"
)

const vsxSchema = "http://schemas.microsoft.com/developer/vsx-schema/2011"

type packageManifest struct {
	XMLName       xml.Name      `xml:"PackageManifest"`
	Version       string        `xml:"Version,attr"`
	Xmlns         string        `xml:"xmlns,attr"`
	Metadata      metadata      `xml:"Metadata"`
	Installation  installation  `xml:"Installation"`
	Dependencies  dependencies  `xml:"Dependencies"`
	Prerequisites prerequisites `xml:"Prerequisites"`
	Assets        assets        `xml:"Assets"`
}

type metadata struct {
	Identity    manifestIdentity `xml:"Identity"`
	DisplayName string           `xml:"DisplayName"`
	Description description      `xml:"Description"`
	Icon        string           `xml:"Icon,omitempty"`
	Tags        string           `xml:"Tags"`
}

type manifestIdentity struct {
	ID        string `xml:"Id,attr"`
	Version   string `xml:"Version,attr"`
	Language  string `xml:"Language,attr"`
	Publisher string `xml:"Publisher,attr"`
}

type description struct {
	Space string `xml:"xml:space,attr"`
	Text  string `xml:",chardata"`
}

type installation struct {
	Targets []installationTarget `xml:"InstallationTarget"`
}

type installationTarget struct {
	Version string `xml:"Version,attr"`
	ID      string `xml:"Id,attr"`
}

type dependencies struct {
	Dependency dependency `xml:"Dependency"`
}

type dependency struct {
	ID          string `xml:"Id,attr"`
	DisplayName string `xml:"DisplayName,attr"`
	Version     string `xml:"Version,attr"`
}

type prerequisites struct {
	Prerequisite prerequisite `xml:"Prerequisite"`
}

type prerequisite struct {
	ID          string `xml:"Id,attr"`
	Version     string `xml:"Version,attr"`
	DisplayName string `xml:"DisplayName,attr"`
}

type assets struct {
	Asset asset `xml:"Asset"`
}

type asset struct {
	Type string `xml:"Type,attr"`
	Path string `xml:"Path,attr"`
}

// installationTargetIDs mirrors the editions the original packaging targeted.
var installationTargetIDs = []string{
	"Microsoft.VisualStudio.Community",
	"Microsoft.VisualStudio.Enterprise",
	"Microsoft.VisualStudio.Pro",
}

// VsixManifest renders extension.vsixmanifest for the given identity.
func VsixManifest(id Identity) ([]byte, error) {
	targets := make([]installationTarget, 0, len(installationTargetIDs))
	for _, targetID := range installationTargetIDs {
		targets = append(targets, installationTarget{Version: id.TargetVersion, ID: targetID})
	}

	doc := packageManifest{
		Version: "2.0.0",
		Xmlns:   vsxSchema,
		Metadata: metadata{
			Identity: manifestIdentity{
				ID:        id.ID,
				Version:   id.Version,
				Language:  "en-US",
				Publisher: id.Publisher,
			},
			DisplayName: id.DisplayName,
			Description: description{Space: "preserve", Text: id.Description},
			Icon:        id.Icon,
			Tags:        id.Tags,
		},
		Installation: installation{Targets: targets},
		Dependencies: dependencies{
			Dependency: dependency{
				ID:          "Microsoft.Framework.NDP",
				DisplayName: "Microsoft .NET Framework",
				Version:     "[4.5,)",
			},
		},
		Prerequisites: prerequisites{
			Prerequisite: prerequisite{
				ID:          "Microsoft.VisualStudio.Component.CoreEditor",
				Version:     id.TargetVersion,
				DisplayName: "Visual Studio core editor",
			},
		},
		Assets: assets{
			Asset: asset{Type: "Microsoft.VisualStudio.ColorTheme", Path: "extension.pkgdef"},
		},
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal vsixmanifest: %w", err)
	}
	return out, nil
}
