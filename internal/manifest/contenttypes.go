package manifest

import (
	"encoding/xml"
	"fmt"
)

const contentTypesSchema = "http://schemas.openxmlformats.org/package/2006/content-types"

type contentTypes struct {
	XMLName  xml.Name           `xml:"Types"`
	Xmlns    string             `xml:"xmlns,attr"`
	Defaults []contentTypeEntry `xml:"Default"`
}

type contentTypeEntry struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// ContentTypes renders [Content_Types].xml, the archive's extension-to-MIME
// map.
func ContentTypes() ([]byte, error) {
	doc := contentTypes{
		Xmlns: contentTypesSchema,
		Defaults: []contentTypeEntry{
			{Extension: "vsixmanifest", ContentType: "text/xml"},
			{Extension: "pkgdef", ContentType: "text/plain"},
			{Extension: "png", ContentType: "application/octet-stream"},
			{Extension: "json", ContentType: "application/json"},
		},
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal content types: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}
