// Package config loads quadra.toml.
//
// The file is optional. Without it every setting takes its default and the
// program behaves exactly like the plain interactive solver.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"

	"quadra/internal/trace"
)

// FileName is the name looked up by Find.
const FileName = "quadra.toml"

// MaxPrecision is the largest digit count accepted for [output].precision.
const MaxPrecision = 17

type Config struct {
	// Path is the file the config was read from, empty for defaults.
	Path    string        `toml:"-"`
	Input   InputConfig   `toml:"input"`
	Output  OutputConfig  `toml:"output"`
	UI      UIConfig      `toml:"ui"`
	Trace   TraceConfig   `toml:"trace"`
	Timings TimingsConfig `toml:"timings"`
}

type InputConfig struct {
	Policy  string  `toml:"policy"`
	Default float64 `toml:"default"`
}

type OutputConfig struct {
	Lang        string `toml:"lang"`
	Precision   int    `toml:"precision"`
	Color       string `toml:"color"`
	Diagnostics string `toml:"diagnostics"`
}

type UIConfig struct {
	Mode string `toml:"mode"`
}

type TraceConfig struct {
	Level  string `toml:"level"`
	Output string `toml:"output"`
	Format string `toml:"format"`
}

type TimingsConfig struct {
	Enabled bool `toml:"enabled"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		Input: InputConfig{
			Policy:  string(PolicySubstitute),
			Default: 0,
		},
		Output: OutputConfig{
			Lang:        "fr",
			Precision:   2,
			Color:       string(ModeAuto),
			Diagnostics: "pretty",
		},
		UI: UIConfig{
			Mode: string(ModeOff),
		},
		Trace: TraceConfig{
			Level:  "off",
			Output: "-",
			Format: "",
		},
	}
}

// Find walks from startDir towards the root looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover finds and loads the config for startDir; defaults when absent.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every enumerated setting.
func (c Config) Validate() error {
	if _, err := ParsePolicy(c.Input.Policy); err != nil {
		return err
	}
	if _, err := c.Digits(); err != nil {
		return err
	}
	switch strings.ToLower(c.Output.Lang) {
	case "fr", "en":
	default:
		return fmt.Errorf("invalid [output].lang %q (expected fr|en)", c.Output.Lang)
	}
	if _, err := ParseMode("[output].color", c.Output.Color); err != nil {
		return err
	}
	switch strings.ToLower(c.Output.Diagnostics) {
	case "pretty", "json":
	default:
		return fmt.Errorf("invalid [output].diagnostics %q (expected pretty|json)", c.Output.Diagnostics)
	}
	if _, err := ParseMode("[ui].mode", c.UI.Mode); err != nil {
		return err
	}
	if _, err := trace.ParseLevel(c.Trace.Level); err != nil {
		return fmt.Errorf("[trace].level: %w", err)
	}
	if _, err := trace.ParseFormat(c.Trace.Format); err != nil {
		return fmt.Errorf("[trace].format: %w", err)
	}
	return nil
}

// Digits returns [output].precision as a digit count.
func (c Config) Digits() (uint8, error) {
	d, err := safecast.Conv[uint8](c.Output.Precision)
	if err != nil || d > MaxPrecision {
		return 0, fmt.Errorf("invalid [output].precision %d (expected 0..%d)", c.Output.Precision, MaxPrecision)
	}
	return d, nil
}
