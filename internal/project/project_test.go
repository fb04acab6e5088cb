package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestFindManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeManifest(t, root, "")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, ok, err := FindManifest(nested)
	if err != nil || !ok {
		t.Fatalf("FindManifest: ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	dir, ok, err := FindProjectRoot(nested)
	if err != nil || !ok || dir != root {
		t.Fatalf("FindProjectRoot: %q ok=%v err=%v", dir, ok, err)
	}
}

func TestDiscoverWithoutManifest(t *testing.T) {
	m, ok, err := Discover(t.TempDir())
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	// t.TempDir() может оказаться внутри проекта с exprc.toml выше по дереву
	if ok {
		t.Skip("a manifest exists above the temp dir")
	}
	if *m != *DefaultManifest() {
		t.Fatalf("expected defaults, got %+v", m)
	}
}

func TestLoadManifestOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[pipeline]
trailing_eof = true

[output]
format = "JSON"
max_diagnostics = 5
min_severity = "warn"

[cache]
enabled = true
dir = "build/cache"
`)
	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if !m.Pipeline.StripTrivia {
		t.Error("strip_trivia should keep its default")
	}
	if !m.Pipeline.TrailingEOF || m.Pipeline.KeepErrorText {
		t.Errorf("unexpected pipeline: %+v", m.Pipeline)
	}
	if m.Output.Format != "json" || m.Output.Color != "auto" || m.Output.MaxDiagnostics != 5 {
		t.Errorf("unexpected output: %+v", m.Output)
	}
	if m.Output.MinSeverity != "warn" {
		t.Errorf("MinSeverity = %q", m.Output.MinSeverity)
	}
	if !m.Cache.Enabled || m.Cache.Dir != filepath.Join(dir, "build", "cache") {
		t.Errorf("unexpected cache: %+v", m.Cache)
	}
	if m.Path != path {
		t.Errorf("Path = %q", m.Path)
	}
}

func TestLoadManifestErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"unknown key", "[output]\nfromat = \"json\"\n", ErrUnknownKey},
		{"bad format", "[output]\nformat = \"xml\"\n", ErrInvalidValue},
		{"bad color", "[output]\ncolor = \"always\"\n", ErrInvalidValue},
		{"negative max", "[output]\nmax_diagnostics = -1\n", ErrInvalidValue},
		{"bad severity", "[output]\nmin_severity = \"fatal\"\n", ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tt.body)
			_, err := LoadManifest(path)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadManifestBadTOML(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[output\n")
	if _, err := LoadManifest(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestDiscoverPropagatesLoadError(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[cache]\nenabled = \"yes\"\n")
	_, ok, err := Discover(dir)
	if !ok || err == nil {
		t.Fatalf("expected load error for found manifest, ok=%v err=%v", ok, err)
	}
}
