// Package config resolves rspecsum settings from the environment and an
// optional YAML file.
//
// # Configuration Precedence
//
// Values are resolved in the following order (highest to lowest priority):
//
//  1. Environment variables (PATTERN, RSPECSUM_FORMAT, RSPECSUM_THEME, ...)
//  2. YAML config file ($RSPECSUM_CONFIG, or .rspecsum.yaml in the working directory)
//  3. Hardcoded defaults
//
// The GitHub context (GITHUB_SERVER_URL, GITHUB_REPOSITORY, GITHUB_SHA) and
// the sink paths (GITHUB_STEP_SUMMARY, GITHUB_OUTPUT) come only from the
// environment and have no defaults. Load reports every missing one at once.
//
// # Environment Variables
//
//   - PATTERN: glob selecting result files (default "*.json", "**" supported)
//   - RSPECSUM_FORMAT: stdout echo format: auto, terminal, llm, json, none
//   - RSPECSUM_THEME: terminal theme: default, orca, mono
//   - RSPECSUM_LOG_LEVEL: logrus level for stderr diagnostics (default "warning")
//   - RSPECSUM_CONFIG: path to a YAML config file
//   - NO_COLOR: any non-empty value forces the mono theme
package config
