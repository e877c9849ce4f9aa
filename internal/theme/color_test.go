package theme

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	t.Parallel()

	t.Run("parses six digit color with leading hash", func(t *testing.T) {
		t.Parallel()
		v, err := ParseValue("#282C34")
		require.NoError(t, err)
		require.Equal(t, KindColor, v.Kind)
		require.Equal(t, uint8(0x28), v.R)
		require.Equal(t, uint8(0x2C), v.G)
		require.Equal(t, uint8(0x34), v.B)
		require.Equal(t, uint8(0xFF), v.A)
	})

	t.Run("parses eight digit color without hash", func(t *testing.T) {
		t.Parallel()
		v, err := ParseValue("ABB2BF80")
		require.NoError(t, err)
		require.Equal(t, KindColor, v.Kind)
		require.Equal(t, uint8(0xAB), v.R)
		require.Equal(t, uint8(0x80), v.A)
	})

	t.Run("parses flag and mask word", func(t *testing.T) {
		t.Parallel()
		v, err := ParseValue("ffx0000001a")
		require.NoError(t, err)
		require.Equal(t, KindFlagMask, v.Kind)
		require.Equal(t, uint8(0xFF), v.Flag)
		require.Equal(t, uint32(0x1A), v.Mask)
	})

	t.Run("rejects reserved flags", func(t *testing.T) {
		t.Parallel()
		for _, raw := range []string{"00x00000001", "01x00000001"} {
			_, err := ParseValue(raw)
			require.Error(t, err)
			require.Contains(t, err.Error(), "reserved flag")
		}
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		t.Parallel()
		for _, raw := range []string{"#FFF", "12345", "#123456789"} {
			_, err := ParseValue(raw)
			require.Error(t, err)
		}
	})

	t.Run("rejects non hex digits", func(t *testing.T) {
		t.Parallel()
		_, err := ParseValue("#28ZC34")
		require.Error(t, err)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()
		v, err := ParseValue("  #FFFFFF ")
		require.NoError(t, err)
		require.Equal(t, uint8(0xFF), v.R)
	})
}

func TestValueEncodeDecode(t *testing.T) {
	t.Parallel()

	t.Run("absent encodes to single zero byte", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, []byte{0x00}, Absent().Encode())
	})

	t.Run("color encodes with marker byte", func(t *testing.T) {
		t.Parallel()
		v := Value{Kind: KindColor, R: 0x28, G: 0x2C, B: 0x34, A: 0xFF}
		require.Equal(t, []byte{0x01, 0x28, 0x2C, 0x34, 0xFF}, v.Encode())
	})

	t.Run("flag and mask encode little endian", func(t *testing.T) {
		t.Parallel()
		v := Value{Kind: KindFlagMask, Flag: 0xFF, Mask: 0x12345678}
		require.Equal(t, []byte{0xFF, 0x78, 0x56, 0x34, 0x12}, v.Encode())
	})

	t.Run("round trips every kind", func(t *testing.T) {
		t.Parallel()
		values := []Value{
			Absent(),
			{Kind: KindColor, R: 1, G: 2, B: 3, A: 4},
			{Kind: KindFlagMask, Flag: 0x20, Mask: 0xDEADBEEF},
		}
		for _, want := range values {
			got, n, err := DecodeValue(want.Encode())
			require.NoError(t, err)
			require.Equal(t, len(want.Encode()), n)
			require.Equal(t, want, got)
		}
	})

	t.Run("rejects truncated encodings", func(t *testing.T) {
		t.Parallel()
		_, _, err := DecodeValue([]byte{0x01, 0x28})
		require.Error(t, err)
		_, _, err = DecodeValue(nil)
		require.Error(t, err)
	})
}

func TestValueHex(t *testing.T) {
	t.Parallel()

	v, err := ParseValue("#282C34")
	require.NoError(t, err)
	require.Equal(t, "#282C34FF", v.Hex())
	require.Equal(t, "", Absent().Hex())
}
