package render

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	hexLiterals  [256]string
	octalEscapes [256]string
)

func init() {
	for i := range 256 {
		hexLiterals[i] = fmt.Sprintf("0x%02x", i)
		octalEscapes[i] = fmt.Sprintf(`\%03o`, i)
	}
}

// elements splits data into the per-element literals of the style.
// Array styles get one numeric literal per byte. String styles get one
// escape sequence per byte in binary mode and one escaped character per
// rune in text mode; data must already be valid UTF-8 in the latter case.
func elements(data []byte, opts Options) []string {
	switch {
	case !opts.Style.IsString():
		out := make([]string, len(data))
		for i, b := range data {
			out[i] = hexLiterals[b]
		}
		return out
	case opts.Mode == ModeBinary:
		out := make([]string, len(data))
		for i, b := range data {
			out[i] = octalEscapes[b]
		}
		return out
	default:
		out := make([]string, 0, utf8.RuneCount(data))
		for len(data) > 0 {
			r, size := utf8.DecodeRune(data)
			out = append(out, escapeRune(r, data[:size]))
			data = data[size:]
		}
		return out
	}
}

// escapeRune renders one character for a C++ narrow string literal.
// Printable ASCII passes through; everything else becomes octal escapes of
// its UTF-8 bytes so the literal does not depend on the compiler's
// execution character set.
func escapeRune(r rune, raw []byte) string {
	switch r {
	case '\n':
		return `\n`
	case '\t':
		return `\t`
	case '\r':
		return `\r`
	case '"':
		return `\"`
	case '\\':
		return `\\`
	case '?':
		// Avoids forming trigraphs such as ??= with the following characters.
		return `\?`
	}
	if r >= 0x20 && r < 0x7f {
		return string(r)
	}
	if len(raw) == 1 {
		return octalEscapes[raw[0]]
	}
	var b strings.Builder
	for _, c := range raw {
		b.WriteString(octalEscapes[c])
	}
	return b.String()
}

// chunk groups elements into body lines of at most width elements each.
func chunk(elems []string, width int, stringStyle bool) []string {
	if len(elems) == 0 {
		return nil
	}
	lines := make([]string, 0, (len(elems)+width-1)/width)
	for start := 0; start < len(elems); start += width {
		end := min(start+width, len(elems))
		run := elems[start:end]
		if stringStyle {
			lines = append(lines, "\t\""+strings.Join(run, "")+"\"")
		} else {
			lines = append(lines, "\t"+strings.Join(run, ", ")+",")
		}
	}
	return lines
}

// firstInvalidUTF8 returns the offset of the first byte that does not
// start a valid UTF-8 sequence, or -1.
func firstInvalidUTF8(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
