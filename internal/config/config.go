package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Environment variable names.
const (
	EnvPattern     = "PATTERN"
	EnvServerURL   = "GITHUB_SERVER_URL"
	EnvRepository  = "GITHUB_REPOSITORY"
	EnvSHA         = "GITHUB_SHA"
	EnvStepSummary = "GITHUB_STEP_SUMMARY"
	EnvOutput      = "GITHUB_OUTPUT"
	EnvFormat      = "RSPECSUM_FORMAT"
	EnvTheme       = "RSPECSUM_THEME"
	EnvLogLevel    = "RSPECSUM_LOG_LEVEL"
	EnvConfigFile  = "RSPECSUM_CONFIG"
	EnvNoColor     = "NO_COLOR"
)

// Constants for default values.
const (
	DefaultPattern    = "*.json"
	DefaultFormat     = "auto"
	DefaultTheme      = "default"
	DefaultLogLevel   = "warning"
	DefaultConfigFile = ".rspecsum.yaml"
)

// Sources recorded for resolved values.
const (
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceDefault = "default"
)

var validFormats = map[string]bool{"auto": true, "terminal": true, "llm": true, "json": true, "none": true}

// Getenv looks up an environment variable, returning "" when unset.
type Getenv func(key string) string

// Config is the fully resolved configuration for one run.
type Config struct {
	Pattern     string
	ServerURL   string
	Repository  string
	SHA         string
	SummaryPath string
	OutputPath  string

	Format   string
	Theme    string
	LogLevel logrus.Level
	NoColor  bool

	// Resolution metadata (for debugging)
	ConfigFile    string // YAML file that was read, "" if none
	PatternSource string
	FormatSource  string
	ThemeSource   string
}

// MissingError lists required environment variables that were not set.
type MissingError struct {
	Vars []string
}

func (e *MissingError) Error() string {
	return "missing required environment variable(s): " + strings.Join(e.Vars, ", ")
}

// Load resolves configuration from getenv and the optional YAML file.
func Load(getenv Getenv) (*Config, error) {
	file, path, err := loadFileConfig(getenv)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ServerURL:   getenv(EnvServerURL),
		Repository:  getenv(EnvRepository),
		SHA:         getenv(EnvSHA),
		SummaryPath: getenv(EnvStepSummary),
		OutputPath:  getenv(EnvOutput),
		ConfigFile:  path,
	}

	var missing []string
	for _, kv := range []struct{ name, val string }{
		{EnvServerURL, cfg.ServerURL},
		{EnvRepository, cfg.Repository},
		{EnvSHA, cfg.SHA},
		{EnvStepSummary, cfg.SummaryPath},
		{EnvOutput, cfg.OutputPath},
	} {
		if kv.val == "" {
			missing = append(missing, kv.name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingError{Vars: missing}
	}

	cfg.Pattern, cfg.PatternSource = resolve(getenv(EnvPattern), file.Pattern, DefaultPattern)
	cfg.Format, cfg.FormatSource = resolve(getenv(EnvFormat), file.Format, DefaultFormat)
	cfg.Theme, cfg.ThemeSource = resolve(getenv(EnvTheme), file.Theme, DefaultTheme)
	level, _ := resolve(getenv(EnvLogLevel), file.LogLevel, DefaultLogLevel)

	if !validFormats[cfg.Format] {
		return nil, fmt.Errorf("unknown format %q (expected auto, terminal, llm, json, none)", cfg.Format)
	}
	if cfg.LogLevel, err = logrus.ParseLevel(level); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	if getenv(EnvNoColor) != "" {
		cfg.NoColor = true
	} else if file.NoColor != nil {
		cfg.NoColor = *file.NoColor
	}
	return cfg, nil
}

// BaseURL returns the blob root for the commit under test.
func (c *Config) BaseURL() string {
	return strings.TrimSuffix(c.ServerURL, "/") + "/" + c.Repository + "/blob/" + c.SHA
}

// resolve picks the first non-empty value: env, then file, then default.
func resolve(env, file, def string) (string, string) {
	if env != "" {
		return env, SourceEnv
	}
	if file != "" {
		return file, SourceFile
	}
	return def, SourceDefault
}

// OSGetenv adapts os.Getenv.
func OSGetenv(key string) string {
	return os.Getenv(key)
}

// Error wraps failures to read or parse a config file.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
