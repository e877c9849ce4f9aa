package theme

import (
	"encoding/binary"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ValueKind discriminates the encodings a section entry slot can take.
type ValueKind int

const (
	// KindAbsent marks an unset slot, encoded as a single zero byte.
	KindAbsent ValueKind = iota
	// KindColor is an RGBA color.
	KindColor
	// KindFlagMask is a raw flag byte plus a 32-bit mask word.
	KindFlagMask
)

var flagMaskPattern = regexp.MustCompile(`^([0-9a-fA-F]{2})x([0-9a-fA-F]{8})$`)

// Value is one slot of a theme entry: a color, a raw flag+mask word, or absent.
type Value struct {
	Kind ValueKind

	R, G, B, A uint8

	Flag uint8
	Mask uint32
}

// Absent returns the unset value.
func Absent() Value {
	return Value{Kind: KindAbsent}
}

// ParseValue interprets a configuration value string. Accepted forms are a
// hex color with optional leading '#' and optional alpha ("#RRGGBB",
// "RRGGBBAA") and a raw flag+mask word "FFxMMMMMMMM". Flags 0x00 and 0x01
// collide with the absent and color markers and are rejected.
func ParseValue(raw string) (Value, error) {
	raw = strings.TrimSpace(raw)

	if m := flagMaskPattern.FindStringSubmatch(raw); m != nil {
		flag, err := strconv.ParseUint(m[1], 16, 8)
		if err != nil {
			return Value{}, fmt.Errorf("invalid flag byte in %q: %w", raw, err)
		}
		if flag == 0x00 || flag == 0x01 {
			return Value{}, fmt.Errorf("flag+mask value %q may not use reserved flag 0x%02x", raw, flag)
		}
		mask, err := strconv.ParseUint(m[2], 16, 32)
		if err != nil {
			return Value{}, fmt.Errorf("invalid mask word in %q: %w", raw, err)
		}
		return Value{Kind: KindFlagMask, Flag: uint8(flag), Mask: uint32(mask)}, nil
	}

	hex := strings.TrimPrefix(raw, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Value{}, fmt.Errorf("color %q must be 6 or 8 hex digits", raw)
	}

	c, err := colorful.Hex("#" + hex[:6])
	if err != nil {
		return Value{}, fmt.Errorf("invalid color %q: %w", raw, err)
	}
	r, g, b := c.RGB255()

	a := uint8(255)
	if len(hex) == 8 {
		parsed, err := strconv.ParseUint(hex[6:8], 16, 8)
		if err != nil {
			return Value{}, fmt.Errorf("invalid alpha in color %q: %w", raw, err)
		}
		a = uint8(parsed)
	}

	return Value{Kind: KindColor, R: r, G: g, B: b, A: a}, nil
}

// Encode produces the wire form used inside pkgdef section blobs.
func (v Value) Encode() []byte {
	switch v.Kind {
	case KindColor:
		return []byte{0x01, v.R, v.G, v.B, v.A}
	case KindFlagMask:
		buf := make([]byte, 5)
		buf[0] = v.Flag
		binary.LittleEndian.PutUint32(buf[1:], v.Mask)
		return buf
	default:
		return []byte{0x00}
	}
}

// DecodeValue reads one encoded value from the front of b and reports how
// many bytes it consumed.
func DecodeValue(b []byte) (Value, int, error) {
	if len(b) == 0 {
		return Value{}, 0, fmt.Errorf("empty value encoding")
	}
	switch flag := b[0]; {
	case flag == 0x00:
		return Absent(), 1, nil
	case flag == 0x01:
		if len(b) < 5 {
			return Value{}, 0, fmt.Errorf("truncated color encoding")
		}
		return Value{Kind: KindColor, R: b[1], G: b[2], B: b[3], A: b[4]}, 5, nil
	default:
		if len(b) < 5 {
			return Value{}, 0, fmt.Errorf("truncated flag+mask encoding")
		}
		return Value{Kind: KindFlagMask, Flag: flag, Mask: binary.LittleEndian.Uint32(b[1:5])}, 5, nil
	}
}

// Hex renders a color value as "#RRGGBBAA". Other kinds render their raw form.
func (v Value) Hex() string {
	switch v.Kind {
	case KindColor:
		return fmt.Sprintf("#%02X%02X%02X%02X", v.R, v.G, v.B, v.A)
	case KindFlagMask:
		return fmt.Sprintf("%02xx%08x", v.Flag, v.Mask)
	default:
		return ""
	}
}
