package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config represents the full theme configuration document.
type Config struct {
	Name        string      `yaml:"name" validate:"required,min=1,max=100"`
	Identifier  string      `yaml:"identifier" validate:"required,identifier"`
	Version     string      `yaml:"version" validate:"required,pkgversion"`
	Author      string      `yaml:"author,omitempty"`
	Description string      `yaml:"description,omitempty"`
	Tags        string      `yaml:"tags,omitempty"`
	GUID        string      `yaml:"guid" validate:"required,guidstr"`
	BaseGUID    string      `yaml:"base_guid" validate:"required,guidstr"`
	Icon        string      `yaml:"icon,omitempty"`
	Sections    SectionList `yaml:"sections" validate:"required,min=1"`
}

// SectionList preserves the document order of the sections mapping.
type SectionList []Section

// Section is one named color category with its own GUID and ordered entries.
type Section struct {
	Name    string
	GUID    string
	Entries []Entry
}

// Entry is a single named color assignment. Either slot may be nil when the
// document leaves it unset; values stay raw strings until validation.
type Entry struct {
	Name       string
	Foreground *string
	Background *string
}

// UnmarshalYAML decodes the sections mapping while preserving document order.
func (s *SectionList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("sections must be a mapping of section names, got %s", nodeKind(value))
	}

	out := make(SectionList, 0, len(value.Content)/2)
	for i := 0; i < len(value.Content); i += 2 {
		key := value.Content[i]
		section, err := decodeSection(key.Value, value.Content[i+1])
		if err != nil {
			return err
		}
		out = append(out, section)
	}

	*s = out
	return nil
}

func decodeSection(name string, node *yaml.Node) (Section, error) {
	if node.Kind != yaml.MappingNode {
		return Section{}, fmt.Errorf("section %q must be a mapping, got %s", name, nodeKind(node))
	}

	section := Section{Name: name}
	for i := 0; i < len(node.Content); i += 2 {
		key := node.Content[i]
		val := node.Content[i+1]

		if key.Value == "guid" {
			section.GUID = val.Value
			continue
		}

		entry, err := decodeEntry(name, key.Value, val)
		if err != nil {
			return Section{}, err
		}
		section.Entries = append(section.Entries, entry)
	}

	return section, nil
}

func decodeEntry(section, name string, node *yaml.Node) (Entry, error) {
	entry := Entry{Name: name}

	switch node.Kind {
	case yaml.ScalarNode:
		entry.Foreground = scalarValue(node)
	case yaml.SequenceNode:
		if len(node.Content) != 2 {
			return Entry{}, fmt.Errorf("entry %q in section %q must be a 2-element list, got %d elements", name, section, len(node.Content))
		}
		for _, elem := range node.Content {
			if elem.Kind != yaml.ScalarNode {
				return Entry{}, fmt.Errorf("entry %q in section %q must contain scalar values", name, section)
			}
		}
		entry.Foreground = scalarValue(node.Content[0])
		entry.Background = scalarValue(node.Content[1])
	default:
		return Entry{}, fmt.Errorf("entry %q in section %q must be a color string or a 2-element list", name, section)
	}

	return entry, nil
}

// scalarValue maps YAML nulls to nil so an unset slot survives decoding.
func scalarValue(node *yaml.Node) *string {
	if node.Tag == "!!null" {
		return nil
	}
	v := node.Value
	return &v
}

func nodeKind(node *yaml.Node) string {
	switch node.Kind {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	default:
		return "document"
	}
}

// Section returns the section with the given name, if present.
func (s SectionList) Section(name string) (Section, bool) {
	for _, section := range s {
		if section.Name == name {
			return section, true
		}
	}
	return Section{}, false
}

// EntryCount totals the entries across all sections.
func (s SectionList) EntryCount() int {
	total := 0
	for _, section := range s {
		total += len(section.Entries)
	}
	return total
}
