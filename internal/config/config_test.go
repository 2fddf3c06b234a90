package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantError string
	}{
		{
			name:      "defaults",
			mutate:    func(c *Config) {},
			wantError: "",
		},
		{
			name:      "text mode with string view",
			mutate:    func(c *Config) { c.Render.Mode = "text"; c.Render.Style = "string-view" },
			wantError: "",
		},
		{
			name:      "unknown mode",
			mutate:    func(c *Config) { c.Render.Mode = "hex" },
			wantError: "invalid render mode: hex",
		},
		{
			name:      "unknown style",
			mutate:    func(c *Config) { c.Render.Style = "vector" },
			wantError: "invalid render style: vector",
		},
		{
			name:      "negative width",
			mutate:    func(c *Config) { c.Render.LineWidth = -4 },
			wantError: "invalid line width: -4",
		},
		{
			name:      "unknown guard",
			mutate:    func(c *Config) { c.Render.Guard = "module" },
			wantError: "invalid guard: module",
		},
		{
			name:      "unknown line ending",
			mutate:    func(c *Config) { c.Output.LineEnding = "cr" },
			wantError: "invalid line ending: cr",
		},
		{
			name:      "unknown log level",
			mutate:    func(c *Config) { c.Logging.Level = "trace" },
			wantError: "invalid logging level: trace",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantError != "" {
				if err == nil {
					t.Errorf("Validate() expected error containing %q, got nil", tt.wantError)
				} else if !strings.Contains(err.Error(), tt.wantError) {
					t.Errorf("Validate() error = %v, want substring %q", err, tt.wantError)
				}
			} else if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Render: RenderConfig{Guard: "Pragma"}}
	ApplyDefaults(cfg)

	if cfg.Render.Mode != "text" {
		t.Errorf("Mode = %q, want text", cfg.Render.Mode)
	}

	upper := &Config{Render: RenderConfig{Mode: "BINARY"}}
	ApplyDefaults(upper)
	if upper.Render.Mode != "binary" {
		t.Errorf("Mode = %q, want binary", upper.Render.Mode)
	}
	if cfg.Render.Guard != "pragma" {
		t.Errorf("Guard = %q, want pragma", cfg.Render.Guard)
	}
	if cfg.Output.LineEnding != "lf" {
		t.Errorf("LineEnding = %q, want lf", cfg.Output.LineEnding)
	}
	if cfg.Output.Encoding != "utf-8" {
		t.Errorf("Encoding = %q, want utf-8", cfg.Output.Encoding)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := `render:
  mode: text
  style: string-view
  line_width: 32
  namespace: assets::shaders
output:
  line_ending: crlf
  force: true
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Render.Mode != "text" || cfg.Render.Style != "string-view" || cfg.Render.LineWidth != 32 {
		t.Errorf("unexpected render config: %+v", cfg.Render)
	}
	if cfg.Render.Namespace != "assets::shaders" {
		t.Errorf("Namespace = %q", cfg.Render.Namespace)
	}
	if cfg.Render.Guard != "ifndef" {
		t.Errorf("Guard default not applied: %q", cfg.Render.Guard)
	}
	if !cfg.Output.Force || cfg.Output.LineEnding != "crlf" {
		t.Errorf("unexpected output config: %+v", cfg.Output)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of an explicit missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("render: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("Load() error = %v, want parse failure", err)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("render:\n  mode: octal\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil || !strings.Contains(err.Error(), "invalid render mode") {
		t.Errorf("Load() error = %v, want validation failure", err)
	}
}

func TestLoad_ImplicitFile(t *testing.T) {
	dir := t.TempDir()
	origWd, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(origWd)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() without a config file failed: %v", err)
	}
	if cfg.Render.Mode != "text" {
		t.Errorf("Mode = %q, want text", cfg.Render.Mode)
	}

	if err := os.WriteFile(FileName, []byte("render:\n  guard: pragma\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Render.Guard != "pragma" {
		t.Errorf("Guard = %q, want pragma", cfg.Render.Guard)
	}
}

func TestLineEndingString(t *testing.T) {
	cases := map[[2]string]string{
		{"lf", "windows"}:     "\n",
		{"crlf", "linux"}:     "\r\n",
		{"native", "linux"}:   "\n",
		{"native", "windows"}: "\r\n",
	}
	for in, want := range cases {
		if got := LineEndingString(in[0], in[1]); got != want {
			t.Errorf("LineEndingString(%q, %q) = %q, want %q", in[0], in[1], got, want)
		}
	}
}
