package render

import (
	"fmt"
	"regexp"
	"strings"
)

// Mode selects how the input bytes are interpreted.
type Mode int

const (
	// ModeBinary embeds the bytes verbatim.
	ModeBinary Mode = iota
	// ModeText requires the input to be UTF-8 text.
	ModeText
)

func (m Mode) String() string {
	switch m {
	case ModeBinary:
		return "binary"
	case ModeText:
		return "text"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts "binary" or "text" into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "binary", "bin":
		return ModeBinary, nil
	case "text", "txt":
		return ModeText, nil
	default:
		return 0, invalidf("unknown mode %q (allowed: binary, text)", s)
	}
}

// Style is the C++ declaration syntax used for the embedded data.
type Style string

const (
	StyleArray      Style = "array"
	StyleCArray     Style = "c-array"
	StyleCString    Style = "cstring"
	StyleStringView Style = "string-view"
)

// IsString reports whether the style renders quoted string literals
// rather than a brace-enclosed list of numbers.
func (s Style) IsString() bool {
	return s == StyleCString || s == StyleStringView
}

// ParseStyle validates a style name. An empty name is returned as-is and
// resolved per mode by Options.Resolve.
func ParseStyle(s string) (Style, error) {
	st := Style(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case "", StyleArray, StyleCArray, StyleCString, StyleStringView:
		return st, nil
	case "string_view", "stringview":
		return StyleStringView, nil
	case "c-string", "cstr":
		return StyleCString, nil
	default:
		return "", invalidf("unknown style %q (allowed: %s)", s, strings.Join(styleNames(), ", "))
	}
}

// Guard selects the include-once directive.
type Guard string

const (
	GuardIfndef Guard = "ifndef"
	GuardPragma Guard = "pragma"
)

// ParseGuard validates a guard name. Empty means GuardIfndef.
func ParseGuard(s string) (Guard, error) {
	switch g := Guard(strings.ToLower(strings.TrimSpace(s))); g {
	case "":
		return GuardIfndef, nil
	case GuardIfndef, GuardPragma:
		return g, nil
	case "pragma-once", "once":
		return GuardPragma, nil
	default:
		return "", invalidf("unknown guard %q (allowed: ifndef, pragma)", s)
	}
}

const (
	// DefaultArrayLineWidth is the number of bytes per line for array styles.
	DefaultArrayLineWidth = 16
	// DefaultStringLineWidth is the number of characters per line for string styles.
	DefaultStringLineWidth = 64
)

// Options controls how Render formats its input.
type Options struct {
	// Symbol is the C++ identifier of the generated constant.
	Symbol string
	// Namespace optionally wraps the declaration, e.g. "assets::fonts".
	Namespace string
	Mode      Mode
	// Style selects the declaration syntax. Empty picks the mode default.
	Style Style
	// LineWidth caps the number of element literals per body line.
	// Zero picks the style default.
	LineWidth int
	Guard     Guard
	// Source is the input name shown in the generated banner. Optional.
	Source string
}

// Resolve returns a copy of o with zero-valued fields replaced by defaults.
func (o Options) Resolve() Options {
	if o.Style == "" {
		if o.Mode == ModeText {
			o.Style = StyleCString
		} else {
			o.Style = StyleArray
		}
	}
	if o.LineWidth == 0 {
		if o.Style.IsString() {
			o.LineWidth = DefaultStringLineWidth
		} else {
			o.LineWidth = DefaultArrayLineWidth
		}
	}
	if o.Guard == "" {
		o.Guard = GuardIfndef
	}
	return o
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// cppKeywords holds the C++20 keywords and alternative operator tokens a
// generated identifier must avoid.
var cppKeywords = map[string]bool{
	"alignas": true, "alignof": true, "and": true, "and_eq": true, "asm": true,
	"auto": true, "bitand": true, "bitor": true, "bool": true, "break": true,
	"case": true, "catch": true, "char": true, "char8_t": true, "char16_t": true,
	"char32_t": true, "class": true, "co_await": true, "co_return": true,
	"co_yield": true, "compl": true, "concept": true, "const": true,
	"consteval": true, "constexpr": true, "constinit": true, "const_cast": true,
	"continue": true, "decltype": true, "default": true, "delete": true,
	"do": true, "double": true, "dynamic_cast": true, "else": true, "enum": true,
	"explicit": true, "export": true, "extern": true, "false": true,
	"float": true, "for": true, "friend": true, "goto": true, "if": true,
	"inline": true, "int": true, "long": true, "mutable": true,
	"namespace": true, "new": true, "noexcept": true, "not": true,
	"not_eq": true, "nullptr": true, "operator": true, "or": true, "or_eq": true,
	"private": true, "protected": true, "public": true, "register": true,
	"reinterpret_cast": true, "requires": true, "return": true, "short": true,
	"signed": true, "sizeof": true, "static": true, "static_assert": true,
	"static_cast": true, "struct": true, "switch": true, "template": true,
	"this": true, "thread_local": true, "throw": true, "true": true, "try": true,
	"typedef": true, "typeid": true, "typename": true, "union": true,
	"unsigned": true, "using": true, "virtual": true, "void": true,
	"volatile": true, "wchar_t": true, "while": true, "xor": true, "xor_eq": true,
}

// ValidIdentifier reports whether s can be used as a C++ identifier.
func ValidIdentifier(s string) bool {
	return identRe.MatchString(s) && !cppKeywords[s]
}

// Validate checks a resolved Options value.
func (o Options) Validate() error {
	if o.Symbol == "" {
		return invalidf("symbol name is required")
	}
	if !ValidIdentifier(o.Symbol) {
		return invalidf("symbol %q is not a valid C++ identifier", o.Symbol)
	}
	if o.Namespace != "" {
		for _, part := range strings.Split(o.Namespace, "::") {
			if !ValidIdentifier(part) {
				return invalidf("namespace %q is not a valid C++ namespace", o.Namespace)
			}
		}
	}
	if o.Mode != ModeBinary && o.Mode != ModeText {
		return invalidf("unknown mode %v", o.Mode)
	}
	switch o.Style {
	case StyleArray, StyleCArray, StyleCString, StyleStringView:
	default:
		return invalidf("unknown style %q", o.Style)
	}
	if o.LineWidth < 1 {
		return invalidf("line width must be positive, got %d", o.LineWidth)
	}
	if o.Guard != GuardIfndef && o.Guard != GuardPragma {
		return invalidf("unknown guard %q", o.Guard)
	}
	return nil
}
