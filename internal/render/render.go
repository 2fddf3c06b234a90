// Package render turns a byte sequence into the lines of a C++ header that
// embeds those bytes as a compile-time constant.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xll-gen/embedgen/internal/templates"
)

const headerTemplate = "header.hpp.tmpl"

// Output is a rendered header, one entry per line without terminators.
type Output []string

// Bytes joins the lines with eol, terminating the last line as well.
func (o Output) Bytes(eol string) []byte {
	var buf bytes.Buffer
	for _, line := range o {
		buf.WriteString(line)
		buf.WriteString(eol)
	}
	return buf.Bytes()
}

type headerData struct {
	Source      string
	Pragma      bool
	GuardMacro  string
	Includes    []string
	Namespace   string
	Declaration []string
}

// Render formats data as a header according to opts. Zero-valued option
// fields are resolved to their defaults first. Text mode fails with an
// *EncodingError when data is not valid UTF-8. The result is deterministic.
func Render(data []byte, opts Options) (Output, error) {
	opts = opts.Resolve()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	if opts.Mode == ModeText {
		if off := firstInvalidUTF8(data); off >= 0 {
			return nil, &EncodingError{Offset: off, Encoding: "utf-8"}
		}
	}

	body := chunk(elements(data, opts), opts.LineWidth, opts.Style.IsString())

	hd := headerData{
		Source:      sanitizeComment(opts.Source),
		Pragma:      opts.Guard == GuardPragma,
		GuardMacro:  guardMacro(opts),
		Includes:    includesFor(opts.Style),
		Namespace:   opts.Namespace,
		Declaration: declaration(opts, body, len(data)),
	}

	var buf bytes.Buffer
	if err := templates.Execute(&buf, headerTemplate, hd); err != nil {
		return nil, fmt.Errorf("failed to render header: %w", err)
	}
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n"), nil
}

// sanitizeComment keeps a file name from breaking out of a line comment.
func sanitizeComment(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return ' '
		}
		return r
	}, s)
}
