package templates

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	for _, name := range []string{"header.hpp.tmpl", "embedgen.yaml.tmpl"} {
		content, err := Get(name)
		if err != nil {
			t.Fatalf("Get(%q) failed: %v", name, err)
		}
		if content == "" {
			t.Errorf("Get(%q) returned empty content", name)
		}
	}

	if _, err := Get("missing.tmpl"); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("Get(missing) error = %v", err)
	}
}

func TestExecute_Header(t *testing.T) {
	data := struct {
		Source      string
		Pragma      bool
		GuardMacro  string
		Includes    []string
		Namespace   string
		Declaration []string
	}{
		Pragma:      true,
		Includes:    []string{"cstddef"},
		Declaration: []string{"constexpr int x = 1;"},
	}

	var sb strings.Builder
	if err := Execute(&sb, "header.hpp.tmpl", data); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	want := "// Code generated by embedgen. DO NOT EDIT.\n" +
		"#pragma once\n" +
		"\n" +
		"#include <cstddef>\n" +
		"\n" +
		"constexpr int x = 1;\n"
	if sb.String() != want {
		t.Errorf("Execute() = %q, want %q", sb.String(), want)
	}

	if err := Execute(&sb, "missing.tmpl", data); err == nil {
		t.Error("Execute(missing) should fail")
	}
}
