// Package pkgdef renders the theme-definition file (extension.pkgdef) the
// host IDE loads: registry-style section keys whose payload is a binary blob
// of named color entries.
package pkgdef

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/themetools/vsixpack/internal/config"
	"github.com/themetools/vsixpack/internal/theme"
)

// sectionVersion and sectionRevision are fixed words in the blob header the
// IDE expects verbatim.
const (
	sectionVersion  = 11
	sectionRevision = 1
)

// Render produces the full pkgdef text for a validated configuration.
func Render(cfg *config.Config) (string, error) {
	themeGUID, err := theme.ParseGUID(cfg.GUID)
	if err != nil {
		return "", err
	}
	baseGUID, err := theme.ParseGUID(cfg.BaseGUID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[$RootKey$\\Themes\\{%s}]\n", themeGUID)
	fmt.Fprintf(&b, "@=\"%s\"\n", cfg.Name)
	fmt.Fprintf(&b, "\"Name\"=\"%s\"\n", cfg.Name)
	fmt.Fprintf(&b, "\"Package\"=\"{%s}\"\n", themeGUID)
	fmt.Fprintf(&b, "\"FallbackId\"=\"{%s}\"", baseGUID)

	for _, section := range cfg.Sections {
		blob, err := encodeSection(section)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "\n\n[$RootKey$\\Themes\\{%s}\\%s]\n", themeGUID, section.Name)
		fmt.Fprintf(&b, "\"Data\"=hex:%s", hexList(blob))
	}

	return b.String(), nil
}

// encodeSection serializes one section into its binary blob: a length-prefixed
// header, the section GUID in registry byte order, and the ordered entries.
func encodeSection(section config.Section) ([]byte, error) {
	guid, err := theme.ParseGUID(section.GUID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writeUint32(&buf, 0) // total length, patched below
	writeUint32(&buf, sectionVersion)
	writeUint32(&buf, sectionRevision)
	buf.Write(theme.GUIDBytes(guid))
	writeUint32(&buf, uint32(len(section.Entries)))

	for _, entry := range section.Entries {
		if err := writeName(&buf, entry.Name); err != nil {
			return nil, fmt.Errorf("section %q: %w", section.Name, err)
		}
		for _, slot := range []*string{entry.Foreground, entry.Background} {
			value, err := parseSlot(slot)
			if err != nil {
				return nil, fmt.Errorf("section %q entry %q: %w", section.Name, entry.Name, err)
			}
			buf.Write(value.Encode())
		}
	}

	blob := buf.Bytes()
	binary.LittleEndian.PutUint32(blob[:4], uint32(len(blob)))
	return blob, nil
}

func parseSlot(slot *string) (theme.Value, error) {
	if slot == nil {
		return theme.Absent(), nil
	}
	return theme.ParseValue(*slot)
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var word [4]byte
	binary.LittleEndian.PutUint32(word[:], v)
	buf.Write(word[:])
}

func writeName(buf *bytes.Buffer, name string) error {
	for _, r := range name {
		if r > 0x7F {
			return fmt.Errorf("entry name must be ASCII: %q", name)
		}
	}
	writeUint32(buf, uint32(len(name)))
	buf.WriteString(name)
	return nil
}

func hexList(blob []byte) string {
	parts := make([]string, len(blob))
	for i, b := range blob {
		parts[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(parts, ",")
}

// DecodedEntry is one entry recovered from a section blob.
type DecodedEntry struct {
	Name       string
	Foreground theme.Value
	Background theme.Value
}

// DecodedSection is the result of parsing a section blob back out of a
// pkgdef payload.
type DecodedSection struct {
	GUID    uuid.UUID
	Entries []DecodedEntry
}

// DecodeSection parses a binary section blob. It is the inverse of the
// encoder and backs the round-trip guarantees of the packager.
func DecodeSection(blob []byte) (*DecodedSection, error) {
	if len(blob) < 32 {
		return nil, fmt.Errorf("section blob too short: %d bytes", len(blob))
	}

	total := binary.LittleEndian.Uint32(blob[:4])
	if int(total) != len(blob) {
		return nil, fmt.Errorf("section blob length mismatch: header says %d, have %d", total, len(blob))
	}
	if v := binary.LittleEndian.Uint32(blob[4:8]); v != sectionVersion {
		return nil, fmt.Errorf("unexpected section version %d", v)
	}

	guid, err := registryGUID(blob[12:28])
	if err != nil {
		return nil, err
	}

	count := binary.LittleEndian.Uint32(blob[28:32])
	out := &DecodedSection{GUID: guid, Entries: make([]DecodedEntry, 0, count)}

	rest := blob[32:]
	for i := uint32(0); i < count; i++ {
		if len(rest) < 4 {
			return nil, fmt.Errorf("truncated entry name length")
		}
		nameLen := binary.LittleEndian.Uint32(rest[:4])
		rest = rest[4:]
		if uint32(len(rest)) < nameLen {
			return nil, fmt.Errorf("truncated entry name")
		}
		name := string(rest[:nameLen])
		rest = rest[nameLen:]

		var slots [2]theme.Value
		for s := range slots {
			value, n, err := theme.DecodeValue(rest)
			if err != nil {
				return nil, fmt.Errorf("entry %q: %w", name, err)
			}
			slots[s] = value
			rest = rest[n:]
		}

		out.Entries = append(out.Entries, DecodedEntry{Name: name, Foreground: slots[0], Background: slots[1]})
	}

	if len(rest) != 0 {
		return nil, fmt.Errorf("%d trailing bytes after last entry", len(rest))
	}

	return out, nil
}

// registryGUID reverses the mixed-endian serialization used inside blobs.
func registryGUID(b []byte) (uuid.UUID, error) {
	if len(b) != 16 {
		return uuid.Nil, fmt.Errorf("guid field must be 16 bytes, got %d", len(b))
	}
	ordered := []byte{
		b[3], b[2], b[1], b[0],
		b[5], b[4],
		b[7], b[6],
		b[8], b[9], b[10], b[11], b[12], b[13], b[14], b[15],
	}
	return uuid.FromBytes(ordered)
}
