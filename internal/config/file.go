package config

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig is the optional .rspecsum.yaml file. Every field is optional;
// empty values fall through to the defaults.
type FileConfig struct {
	Pattern  string `yaml:"pattern,omitempty"`
	Format   string `yaml:"format,omitempty"`
	Theme    string `yaml:"theme,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
	NoColor  *bool  `yaml:"no_color,omitempty"`
}

// LoadFile reads and parses a YAML config file. Unknown keys are rejected.
func LoadFile(path string) (*FileConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	defer f.Close()

	var fc FileConfig
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, &Error{Path: path, Err: err}
	}
	return &fc, nil
}

// loadFileConfig returns the config named by RSPECSUM_CONFIG, or the local
// .rspecsum.yaml when present. An explicitly named file must exist.
func loadFileConfig(getenv Getenv) (*FileConfig, string, error) {
	path := getenv(EnvConfigFile)
	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); errors.Is(err, fs.ErrNotExist) {
			return &FileConfig{}, "", nil
		}
		path = DefaultConfigFile
	}
	fc, err := LoadFile(path)
	if err != nil {
		return nil, "", err
	}
	return fc, path, nil
}
