package textenc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xll-gen/embedgen/internal/render"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		encoding string
		in       []byte
		want     string
	}{
		{"utf-8 passthrough", "utf-8", []byte("héllo"), "héllo"},
		{"utf-8 bom kept", "UTF8", []byte("\xEF\xBB\xBFabc"), "\xEF\xBB\xBFabc"},
		{"utf-8-bom strips bom", "utf-8-bom", []byte("\xEF\xBB\xBFabc"), "abc"},
		{"utf-8-bom without bom", "utf8bom", []byte("abc"), "abc"},
		{"empty name is utf-8", "", []byte("abc"), "abc"},
		{"utf-16le", "utf-16le", []byte{'h', 0, 0xE9, 0}, "hé"},
		{"utf-16be", "utf-16be", []byte{0, 'h', 0, 0xE9}, "hé"},
		{"utf-16 with le bom", "utf-16", []byte{0xFF, 0xFE, 'a', 0}, "a"},
		{"utf-16 with be bom", "utf-16", []byte{0xFE, 0xFF, 0, 'a'}, "a"},
		{"latin1", "latin1", []byte{'c', 'a', 'f', 0xE9}, "café"},
		{"windows-1252 euro", "cp1252", []byte{0x80}, "€"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.in, tt.encoding)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestDecode_InvalidUTF8PassesThrough(t *testing.T) {
	got, err := Decode([]byte{0xFF, 0xFE}, "utf-8")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xFE}, got)

	_, err = render.Render(got, render.Options{Symbol: "x", Mode: render.ModeText})
	assert.ErrorIs(t, err, render.ErrEncoding)
}

func TestDecode_OddUTF16(t *testing.T) {
	_, err := Decode([]byte{'a', 0, 'b'}, "utf-16le")
	require.Error(t, err)
	assert.ErrorIs(t, err, render.ErrEncoding)

	var encErr *render.EncodingError
	require.True(t, errors.As(err, &encErr))
	assert.Equal(t, 2, encErr.Offset)
	assert.Equal(t, "utf-16le", encErr.Encoding)
}

func TestDecode_UTF16MissingBOM(t *testing.T) {
	_, err := Decode([]byte{0, 'a'}, "utf-16")
	assert.ErrorIs(t, err, render.ErrEncoding)
}

func TestNormalize(t *testing.T) {
	n, err := Normalize(" UTF-16LE ")
	require.NoError(t, err)
	assert.Equal(t, "utf-16le", n)

	_, err = Normalize("ebcdic")
	assert.ErrorIs(t, err, ErrUnknownEncoding)
	assert.Contains(t, err.Error(), "windows-1252")
}
