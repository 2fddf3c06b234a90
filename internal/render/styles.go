package render

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// StyleInfo describes a declaration style for listings and documentation.
type StyleInfo struct {
	Style       Style
	Declaration string
	Element     string
	Includes    []string
	DefaultFor  string
}

var styleTable = []StyleInfo{
	{
		Style:       StyleArray,
		Declaration: "constexpr std::array<std::uint8_t, N> sym{...};",
		Element:     "0xNN per byte",
		Includes:    []string{"array", "cstdint"},
		DefaultFor:  "binary",
	},
	{
		Style:       StyleCArray,
		Declaration: "constexpr unsigned char sym[] = {...}; sym_size",
		Element:     "0xNN per byte",
		Includes:    []string{"cstddef"},
	},
	{
		Style:       StyleCString,
		Declaration: `constexpr const char* sym = "..."; sym_size`,
		Element:     "escaped character (text) or \\ooo (binary)",
		Includes:    []string{"cstddef"},
		DefaultFor:  "text",
	},
	{
		Style:       StyleStringView,
		Declaration: `constexpr std::string_view sym{"...", N};`,
		Element:     "escaped character (text) or \\ooo (binary)",
		Includes:    []string{"string_view"},
	},
}

// Styles lists every supported declaration style.
func Styles() []StyleInfo {
	out := make([]StyleInfo, len(styleTable))
	for i, s := range styleTable {
		s.Includes = slices.Clone(s.Includes)
		out[i] = s
	}
	return out
}

func styleNames() []string {
	names := make([]string, len(styleTable))
	for i, s := range styleTable {
		names[i] = string(s.Style)
	}
	return names
}

func includesFor(s Style) []string {
	for _, info := range styleTable {
		if info.Style == s {
			return info.Includes
		}
	}
	return nil
}

// declaration wraps the body lines in the opening and closing lines of
// the style. size is the number of input bytes.
func declaration(opts Options, body []string, size int) []string {
	sym := opts.Symbol
	n := strconv.Itoa(size)
	lines := make([]string, 0, len(body)+4)

	switch opts.Style {
	case StyleArray:
		if len(body) == 0 {
			return append(lines, fmt.Sprintf("constexpr std::array<std::uint8_t, %s> %s{};", n, sym))
		}
		lines = append(lines, fmt.Sprintf("constexpr std::array<std::uint8_t, %s> %s{", n, sym))
		lines = append(lines, body...)
		lines = append(lines, "};")

	case StyleCArray:
		if len(body) == 0 {
			// Zero-length arrays are ill-formed; keep one zero element and report size 0.
			lines = append(lines, fmt.Sprintf("constexpr unsigned char %s[1] = {};", sym))
		} else {
			lines = append(lines, fmt.Sprintf("constexpr unsigned char %s[] = {", sym))
			lines = append(lines, body...)
			lines = append(lines, "};")
		}
		lines = append(lines, fmt.Sprintf("constexpr std::size_t %s_size = %s;", sym, n))

	case StyleCString:
		if len(body) == 0 {
			lines = append(lines, fmt.Sprintf(`constexpr const char* %s = "";`, sym))
		} else {
			lines = append(lines, fmt.Sprintf("constexpr const char* %s =", sym))
			lines = append(lines, body...)
			lines[len(lines)-1] += ";"
		}
		lines = append(lines, fmt.Sprintf("constexpr std::size_t %s_size = %s;", sym, n))

	case StyleStringView:
		if len(body) == 0 {
			return append(lines, fmt.Sprintf(`constexpr std::string_view %s{"", 0};`, sym))
		}
		lines = append(lines, fmt.Sprintf("constexpr std::string_view %s{", sym))
		lines = append(lines, body...)
		lines[len(lines)-1] += ","
		lines = append(lines, "\t"+n+"};")
	}
	return lines
}

// guardMacro derives the include guard macro from the qualified name.
// Every namespace component and the symbol keep their case and are
// length-prefixed, so a::b gives EMBEDGEN_1a_1b_H while a_b gives
// EMBEDGEN_3a_b_H and distinct names never share a guard.
func guardMacro(opts Options) string {
	var parts []string
	if opts.Namespace != "" {
		parts = strings.Split(opts.Namespace, "::")
	}
	parts = append(parts, opts.Symbol)

	var b strings.Builder
	b.WriteString("EMBEDGEN")
	for _, p := range parts {
		b.WriteByte('_')
		b.WriteString(strconv.Itoa(len(p)))
		b.WriteString(p)
	}
	b.WriteString("_H")
	return b.String()
}
