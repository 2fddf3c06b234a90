// Package textenc converts text-mode input into UTF-8 before rendering.
package textenc

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/xll-gen/embedgen/internal/render"
)

// ErrUnknownEncoding is returned for encoding names Decode does not support.
var ErrUnknownEncoding = errors.New("unknown text encoding")

// Default is the encoding assumed when none is configured.
const Default = "utf-8"

var decoders = map[string]encoding.Encoding{
	"utf-8":        unicode.UTF8,
	"utf-8-bom":    unicode.UTF8BOM,
	"utf-16":       unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM),
	"utf-16le":     unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"utf-16be":     unicode.UTF16(unicode.BigEndian, unicode.UseBOM),
	"latin1":       charmap.ISO8859_1,
	"iso-8859-1":   charmap.ISO8859_1,
	"windows-1252": charmap.Windows1252,
}

var aliases = map[string]string{
	"utf8":    "utf-8",
	"utf8bom": "utf-8-bom",
	"utf16":   "utf-16",
	"utf16le": "utf-16le",
	"utf16be": "utf-16be",
	"cp1252":  "windows-1252",
}

// Names lists the supported encoding names.
func Names() []string {
	names := make([]string, 0, len(decoders))
	for n := range decoders {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Normalize canonicalises an encoding name, or fails with ErrUnknownEncoding.
func Normalize(name string) (string, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return Default, nil
	}
	if a, ok := aliases[n]; ok {
		n = a
	}
	if _, ok := decoders[n]; !ok {
		return "", fmt.Errorf("%w: %q (allowed: %s)", ErrUnknownEncoding, name, strings.Join(Names(), ", "))
	}
	return n, nil
}

// Decode converts data from the named encoding to UTF-8. UTF-8 input is
// returned unchanged, byte order mark included; "utf-8-bom" strips a leading
// one. UTF-8 is not validated here, that is left to render.Render so the
// offset reported matches the input. Decoding failures are returned as
// *render.EncodingError.
func Decode(data []byte, name string) ([]byte, error) {
	n, err := Normalize(name)
	if err != nil {
		return nil, err
	}
	switch n {
	case "utf-8":
		return data, nil
	case "utf-8-bom":
		return bytes.TrimPrefix(data, []byte("\xEF\xBB\xBF")), nil
	}
	if n == "utf-16" || n == "utf-16le" || n == "utf-16be" {
		if len(data)%2 != 0 {
			return nil, &render.EncodingError{Offset: len(data) - 1, Encoding: n, Err: errors.New("odd number of bytes")}
		}
	}

	out, _, err := transform.Bytes(decoders[n].NewDecoder(), data)
	if err != nil {
		return nil, &render.EncodingError{Offset: -1, Encoding: n, Err: err}
	}
	return out, nil
}
