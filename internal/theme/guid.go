package theme

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ParseGUID normalizes a GUID string, tolerating surrounding braces and
// mixed case. The canonical lowercase dashed form is returned.
func ParseGUID(raw string) (uuid.UUID, error) {
	trimmed := strings.TrimSpace(raw)
	id, err := uuid.Parse(trimmed)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid GUID %q: %w", raw, err)
	}
	return id, nil
}

// GUIDBytes serializes a GUID in the mixed-endian layout the pkgdef blob
// expects: the first three groups little-endian, the rest as written.
func GUIDBytes(id uuid.UUID) []byte {
	b := id // uuid.UUID is a [16]byte in big-endian group order
	return []byte{
		b[3], b[2], b[1], b[0],
		b[5], b[4],
		b[7], b[6],
		b[8], b[9], b[10], b[11], b[12], b[13], b[14], b[15],
	}
}
