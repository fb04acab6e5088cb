package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"exprc/internal/diag"
)

// PipelineConfig is the [pipeline] section.
type PipelineConfig struct {
	StripTrivia   bool `toml:"strip_trivia"`
	TrailingEOF   bool `toml:"trailing_eof"`
	KeepErrorText bool `toml:"keep_error_text"`
}

// OutputConfig is the [output] section.
type OutputConfig struct {
	Format         string `toml:"format"`
	Color          string `toml:"color"`
	MaxDiagnostics int    `toml:"max_diagnostics"`
	MinSeverity    string `toml:"min_severity"`
}

// CacheConfig is the [cache] section.
type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// Manifest is a decoded exprc.toml. Keys missing from the file keep their
// defaults.
type Manifest struct {
	// Path is empty for the built-in defaults.
	Path     string         `toml:"-"`
	Pipeline PipelineConfig `toml:"pipeline"`
	Output   OutputConfig   `toml:"output"`
	Cache    CacheConfig    `toml:"cache"`
}

var (
	// ErrUnknownKey is wrapped when the manifest has keys exprc does not know.
	ErrUnknownKey = errors.New("unknown manifest key")
	// ErrInvalidValue is wrapped when a known key has an unsupported value.
	ErrInvalidValue = errors.New("invalid manifest value")
)

var (
	outputFormats = []string{"pretty", "tree", "json", "yaml", "msgpack"}
	colorModes    = []string{"auto", "on", "off"}
)

// DefaultManifest returns the values used when no exprc.toml is found.
func DefaultManifest() *Manifest {
	return &Manifest{
		Pipeline: PipelineConfig{StripTrivia: true},
		Output: OutputConfig{
			Format:         "pretty",
			Color:          "auto",
			MaxDiagnostics: 100,
			MinSeverity:    "info",
		},
	}
}

// LoadManifest decodes path over the defaults and validates the result.
// A relative cache dir is resolved against the manifest's directory.
func LoadManifest(path string) (*Manifest, error) {
	m := DefaultManifest()
	meta, err := toml.DecodeFile(path, m)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
	}
	m.Path = path
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if m.Cache.Dir != "" && !filepath.IsAbs(m.Cache.Dir) {
		m.Cache.Dir = filepath.Join(filepath.Dir(path), filepath.FromSlash(m.Cache.Dir))
	}
	return m, nil
}

func (m *Manifest) validate() error {
	m.Output.Format = strings.ToLower(strings.TrimSpace(m.Output.Format))
	if !slices.Contains(outputFormats, m.Output.Format) {
		return fmt.Errorf("%w: [output].format %q (expected: %s)", ErrInvalidValue, m.Output.Format, strings.Join(outputFormats, "|"))
	}
	m.Output.Color = strings.ToLower(strings.TrimSpace(m.Output.Color))
	if !slices.Contains(colorModes, m.Output.Color) {
		return fmt.Errorf("%w: [output].color %q (expected: %s)", ErrInvalidValue, m.Output.Color, strings.Join(colorModes, "|"))
	}
	if _, err := diag.ParseSeverity(m.Output.MinSeverity); err != nil {
		return fmt.Errorf("%w: [output].min_severity: %w", ErrInvalidValue, err)
	}
	if m.Output.MaxDiagnostics < 0 {
		return fmt.Errorf("%w: [output].max_diagnostics must be >= 0, got %d", ErrInvalidValue, m.Output.MaxDiagnostics)
	}
	return nil
}

// Discover finds and loads the manifest for startDir. When none exists it
// returns the defaults and ok=false.
func Discover(startDir string) (m *Manifest, ok bool, err error) {
	path, ok, err := FindManifest(startDir)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return DefaultManifest(), false, nil
	}
	m, err = LoadManifest(path)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}
