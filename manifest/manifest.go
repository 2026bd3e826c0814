// Package manifest handles siskin.toml project configuration.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manifest represents a siskin.toml project configuration.
type Manifest struct {
	Project Project       `toml:"project"`
	Image   ImageConfig   `toml:"image"`
	Runtime RuntimeConfig `toml:"runtime"`

	// Dir is the directory containing the siskin.toml file (set at load time).
	Dir string `toml:"-"`
}

// Project contains project metadata.
type Project struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// ImageConfig configures image snapshot output.
type ImageConfig struct {
	Output string `toml:"output"`
}

// RuntimeConfig configures runtime behavior.
type RuntimeConfig struct {
	Trace bool `toml:"trace"`
}

// Load parses a siskin.toml file from the given directory.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "siskin.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	m.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	// Defaults
	if m.Image.Output == "" {
		m.Image.Output = "siskin.image"
	}

	return &m, nil
}

// FindAndLoad walks up from startDir to find a siskin.toml file,
// then loads and returns the manifest. Returns nil if no manifest is found.
func FindAndLoad(startDir string) (*Manifest, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, "siskin.toml")
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return nil, nil
		}
		dir = parent
	}
}

// ImagePath returns the absolute path of the configured image output.
func (m *Manifest) ImagePath() string {
	if filepath.IsAbs(m.Image.Output) {
		return m.Image.Output
	}
	return filepath.Join(m.Dir, m.Image.Output)
}
