package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// File represents an advent.toml configuration file. Flags and environment
// variables override anything set here.
type File struct {
	Input    string       `toml:"input"`
	Days     []int        `toml:"days"`
	LogLevel string       `toml:"log-level"`
	Policy   string       `toml:"policy"`
	Arcade   ArcadeConfig `toml:"arcade"`

	// Dir is the directory containing the advent.toml file (set at load time).
	Dir string `toml:"-"`
}

// ArcadeConfig configures the playable arcade cabinet.
type ArcadeConfig struct {
	Autopilot bool `toml:"autopilot"`
	Speed     int  `toml:"speed"`
}

// LoadFile parses an advent.toml file from the given directory.
func LoadFile(dir string) (*File, error) {
	path := filepath.Join(dir, "advent.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	f.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	return &f, nil
}

// FindAndLoadFile walks up from startDir to find an advent.toml file, then
// loads and returns it. Returns nil if no file is found.
func FindAndLoadFile(startDir string) (*File, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, "advent.toml")
		if _, err := os.Stat(path); err == nil {
			return LoadFile(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return nil, nil
		}
		dir = parent
	}
}

// InputPath returns the input directory resolved against the file's
// location, so a relative `input` in advent.toml works from any cwd.
func (f *File) InputPath() string {
	if f.Input == "" || filepath.IsAbs(f.Input) {
		return f.Input
	}
	return filepath.Join(f.Dir, f.Input)
}
