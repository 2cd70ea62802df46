package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"
)

// Tool identity shared by the reporters and the version command.
const (
	ToolName = "labkit"
	ToolURL  = "https://github.com/platewell/labkit"
)

// ToolVersion is overridden at release time with -ldflags.
var ToolVersion = "0.2.0"

// DefaultConfigFile is looked up in the working directory when no
// --config flag is given.
const DefaultConfigFile = ".labkit.toml"

// Config holds configuration for scanning and reporting
type Config struct {
	// Paths to scan for dependency manifests
	Paths []string

	// Output settings
	OutputFormat string // "terminal", "json", "sarif"
	OutputFile   string // Optional output file path

	// Behavior settings
	FailOnProblem   bool     // Exit with code 1 if problems found
	IncludeOutdated bool     // Query the package index for newer releases
	IncludeIndirect bool     // Keep indirect go.mod requirements
	DisabledRules   []string // Lint rules to suppress

	// Package index settings
	IndexURL string

	// Cache settings
	CacheTTL time.Duration
	NoCache  bool

	// API settings
	Timeout       time.Duration
	MaxConcurrent int

	// Directory names skipped during discovery
	SkipDirs []string

	// Catalog is an optional labware catalog file for the well commands
	Catalog string
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Paths:         []string{"."},
		OutputFormat:  "terminal",
		FailOnProblem: true,
		CacheTTL:      24 * time.Hour,
		NoCache:       false,
		Timeout:       30 * time.Second,
		MaxConcurrent: 10,
		SkipDirs: []string{
			".git", ".hg", ".svn",
			".venv", "venv", ".tox", ".eggs", "__pycache__",
			"node_modules", "vendor",
		},
	}
}

// RuleDisabled reports whether a lint rule was switched off in the
// configuration.
func (c *Config) RuleDisabled(rule string) bool {
	for _, r := range c.DisabledRules {
		if r == rule {
			return true
		}
	}
	return false
}

// fileConfig mirrors the .labkit.toml keys. Durations travel as
// strings so the file can say "24h" rather than nanoseconds.
type fileConfig struct {
	Paths         []string `toml:"paths"`
	Format        string   `toml:"format"`
	Output        string   `toml:"output"`
	FailOnProblem bool     `toml:"fail-on-problem"`
	Indirect      bool     `toml:"include-indirect"`
	DisabledRules []string `toml:"disable-rules"`
	IndexURL      string   `toml:"index-url"`
	CacheTTL      string   `toml:"cache-ttl"`
	NoCache       bool     `toml:"no-cache"`
	Timeout       string   `toml:"timeout"`
	MaxConcurrent int      `toml:"max-concurrent"`
	SkipDirs      []string `toml:"skip-dirs"`
	Catalog       string   `toml:"catalog"`
}

// LoadConfig reads a .labkit.toml file and layers it over the
// defaults. Keys absent from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	for _, key := range meta.Undecoded() {
		log.Warn().Str("config", path).Str("key", key.String()).Msg("unknown config key ignored")
	}

	if meta.IsDefined("paths") && len(raw.Paths) > 0 {
		cfg.Paths = raw.Paths
	}
	if meta.IsDefined("format") {
		cfg.OutputFormat = strings.TrimSpace(raw.Format)
	}
	if meta.IsDefined("output") {
		cfg.OutputFile = strings.TrimSpace(raw.Output)
	}
	if meta.IsDefined("fail-on-problem") {
		cfg.FailOnProblem = raw.FailOnProblem
	}
	if meta.IsDefined("include-indirect") {
		cfg.IncludeIndirect = raw.Indirect
	}
	if meta.IsDefined("disable-rules") {
		cfg.DisabledRules = raw.DisabledRules
	}
	if meta.IsDefined("index-url") {
		cfg.IndexURL = strings.TrimSpace(raw.IndexURL)
	}
	if meta.IsDefined("cache-ttl") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.CacheTTL))
		if err != nil {
			return nil, fmt.Errorf("config %s: parse cache-ttl: %w", path, err)
		}
		cfg.CacheTTL = d
	}
	if meta.IsDefined("no-cache") {
		cfg.NoCache = raw.NoCache
	}
	if meta.IsDefined("timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.Timeout))
		if err != nil {
			return nil, fmt.Errorf("config %s: parse timeout: %w", path, err)
		}
		cfg.Timeout = d
	}
	if meta.IsDefined("max-concurrent") {
		cfg.MaxConcurrent = raw.MaxConcurrent
	}
	if meta.IsDefined("skip-dirs") {
		cfg.SkipDirs = raw.SkipDirs
	}
	if meta.IsDefined("catalog") {
		cfg.Catalog = strings.TrimSpace(raw.Catalog)
	}

	return cfg, nil
}
