// Package config handles application configuration and command-line argument parsing.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/bmatcuk/doublestar/v4"

	"github.com/joe/list-files/pkg/filesystem"
)

// OutputFormat represents how enumerated paths are written to stdout.
type OutputFormat int

const (
	// Plain - one path per line
	Plain OutputFormat = iota
	// Nul - paths separated by NUL bytes, for xargs -0
	Nul
	// Pretty - styled output with a trailing summary line
	Pretty
)

// String returns the string representation of OutputFormat.
func (f OutputFormat) String() string {
	switch f {
	case Plain:
		return "plain"
	case Nul:
		return "nul"
	case Pretty:
		return "pretty"
	default:
		return "unknown"
	}
}

// ParseOutputFormat parses a string into an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "plain":
		return Plain, nil
	case "nul", "null", "print0":
		return Nul, nil
	case "pretty":
		return Pretty, nil
	default:
		return Plain, fmt.Errorf("invalid output format: %s (valid: plain, nul, pretty)", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for go-arg.
func (f *OutputFormat) UnmarshalText(text []byte) error {
	parsed, err := ParseOutputFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Config holds the application configuration.
type Config struct {
	Paths          []string     `arg:"positional,required" help:"files and directories to enumerate, local paths or sftp:// URLs"`
	FollowSymlinks bool         `arg:"-L,--follow-symlinks" help:"resolve symbolic links to their targets instead of skipping them"`
	Exclude        []string     `arg:"-x,--exclude,separate" help:"glob pattern to skip (repeatable); matched against entry names and full paths"`
	Format         OutputFormat `arg:"--format" default:"plain" help:"output format: plain|nul|pretty"`
	Verbose        bool         `arg:"-v,--verbose" help:"info-level logging on stderr"`
	Debug          bool         `arg:"--debug" help:"debug-level logging, including every skipped entry"`
}

// Description returns the program description for go-arg.
func (Config) Description() string {
	return "Lazily enumerates every regular file under the given paths, depth-first"
}

// Version returns the version string for go-arg.
func (Config) Version() string {
	return "list-files 1.0.0"
}

// Verbosity maps the logging flags onto a numeric level.
func (cfg *Config) Verbosity() int {
	switch {
	case cfg.Debug:
		return 2
	case cfg.Verbose:
		return 1
	default:
		return 0
	}
}

// ParseFlags parses command-line flags and returns configuration.
func ParseFlags() (*Config, error) {
	cfg := &Config{}

	arg.MustParse(cfg)

	return PostProcessConfig(cfg)
}

// PostProcessConfig validates a parsed config.
func PostProcessConfig(cfg *Config) (*Config, error) {
	if len(cfg.Paths) == 0 {
		return nil, fmt.Errorf("at least one path is required")
	}

	if err := cfg.ValidatePaths(); err != nil {
		return nil, err
	}

	if err := cfg.ValidateExcludes(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ValidatePaths checks that every local starting path exists. Remote paths
// are only checked for URL well-formedness; their existence is the remote
// server's to report.
func (cfg *Config) ValidatePaths() error {
	for _, p := range cfg.Paths {
		parsed, err := filesystem.ParsePath(p)
		if err != nil {
			return err
		}

		if parsed.IsRemote {
			continue
		}

		if _, err := os.Lstat(parsed.LocalPath); err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("path does not exist: %s", parsed.LocalPath)
			}
			return fmt.Errorf("cannot access path: %w", err)
		}
	}

	return nil
}

// ValidateExcludes checks that every exclude pattern is a valid glob.
func (cfg *Config) ValidateExcludes() error {
	for _, pattern := range cfg.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid exclude pattern: %s", pattern)
		}
	}

	return nil
}
