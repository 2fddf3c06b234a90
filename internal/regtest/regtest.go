// Package regtest checks generated headers against a real C++ toolchain.
package regtest

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/xll-gen/embedgen/internal/render"
)

// FindCompiler returns the C++ compiler named by $CXX, or the first of
// c++, g++ and clang++ found in PATH.
func FindCompiler() (string, error) {
	candidates := []string{"c++", "g++", "clang++"}
	if cxx := os.Getenv("CXX"); cxx != "" {
		candidates = append([]string{cxx}, candidates...)
	}
	for _, c := range candidates {
		if path, err := exec.LookPath(c); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no C++ compiler found (tried %s)", strings.Join(candidates, ", "))
}

// accessors returns the expressions yielding a pointer to the embedded data
// and its length for a style.
func accessors(opts render.Options) (ptr, size string) {
	sym := opts.Symbol
	if opts.Namespace != "" {
		sym = opts.Namespace + "::" + sym
	}
	switch opts.Style {
	case render.StyleArray, render.StyleStringView:
		return sym + ".data()", sym + ".size()"
	default:
		return sym, sym + "_size"
	}
}

const dumpMain = `#include <cstdio>
#include <cstddef>
#include "embedded.hpp"

int main() {
	const unsigned char* p = reinterpret_cast<const unsigned char*>(%s);
	const std::size_t n = %s;
	for (std::size_t i = 0; i < n; ++i) {
		std::printf("%%02x", p[i]);
	}
	return 0;
}
`

// RoundTrip writes header to dir, compiles a program that hex-dumps the
// embedded data, runs it and returns the bytes it printed.
func RoundTrip(ctx context.Context, cxx, dir string, header render.Output, opts render.Options) ([]byte, error) {
	opts = opts.Resolve()
	if err := os.WriteFile(filepath.Join(dir, "embedded.hpp"), header.Bytes("\n"), 0644); err != nil {
		return nil, err
	}
	ptr, size := accessors(opts)
	src := filepath.Join(dir, "main.cpp")
	if err := os.WriteFile(src, []byte(fmt.Sprintf(dumpMain, ptr, size)), 0644); err != nil {
		return nil, err
	}

	exe := filepath.Join(dir, "dump")
	if runtime.GOOS == "windows" {
		exe += ".exe"
	}
	build := exec.CommandContext(ctx, cxx, "-std=c++17", "-o", exe, src)
	build.Dir = dir
	if out, err := build.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("compile failed: %w\n%s", err, out)
	}

	var stdout, stderr bytes.Buffer
	run := exec.CommandContext(ctx, exe)
	run.Stdout = &stdout
	run.Stderr = &stderr
	if err := run.Run(); err != nil {
		return nil, fmt.Errorf("run failed: %w\n%s", err, stderr.String())
	}

	data, err := hex.DecodeString(stdout.String())
	if err != nil {
		return nil, fmt.Errorf("bad dump output %q: %w", stdout.String(), err)
	}
	return data, nil
}
