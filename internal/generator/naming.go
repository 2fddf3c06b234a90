package generator

import (
	"path/filepath"
	"strings"

	"github.com/xll-gen/embedgen/internal/render"
)

// DeriveSymbol turns the base name of path into a C++ identifier by
// replacing every character other than an ASCII letter or digit with '_'.
// "logo.png" becomes "logo_png" and "8x8.font" becomes "_8x8_font".
func DeriveSymbol(path string) string {
	base := filepath.Base(path)
	sym := strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, base)

	if sym[0] >= '0' && sym[0] <= '9' {
		sym = "_" + sym
	}
	if !render.ValidIdentifier(sym) {
		sym += "_"
	}
	return sym
}

// DeriveOutputPath places "<name>.hpp" in dir, where name is the base name
// of input with its last extension removed.
func DeriveOutputPath(input, dir string) string {
	base := filepath.Base(input)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" {
		name = base
	}
	return filepath.Join(dir, name+".hpp")
}
