// Package config loads textquote settings from an optional YAML file and
// TEXTQUOTE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/jsnanigans/textquote/pkg/textquote"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "TEXTQUOTE_"

const maxConfigFileSize = 1024 * 1024 // 1MB

// Config holds all textquote settings.
type Config struct {
	ContextLength  int     `koanf:"context_length"`
	SliceLength    int     `koanf:"slice_length"`
	FoldDistance   int     `koanf:"fold_distance"`
	MatchThreshold float64 `koanf:"match_threshold"`
	Log            Log     `koanf:"log"`
	Server         Server  `koanf:"server"`
}

// Log configures the logger.
type Log struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Server configures the HTTP service.
type Server struct {
	Host         string `koanf:"host"`
	Port         int    `koanf:"port"`
	MaxDocuments int    `koanf:"max_documents"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		ContextLength: textquote.DefaultContextLength,
		SliceLength:   textquote.MaxPatternLength,
		FoldDistance:  textquote.DefaultFoldDistance,
		Log: Log{
			Level:  "info",
			Format: "console",
		},
		Server: Server{
			Host:         "localhost",
			Port:         8080,
			MaxDocuments: 256,
		},
	}
}

// Load builds the configuration.
//
// Precedence (highest to lowest):
//  1. Environment variables (TEXTQUOTE_CONTEXT_LENGTH, TEXTQUOTE_LOG_LEVEL, ...)
//  2. The YAML file at path, if path is not empty
//  3. Default()
//
// Environment variables map to keys by dropping the prefix, lowercasing and
// turning the first underscore after a section name into a dot:
//
//	TEXTQUOTE_LOG_LEVEL           -> log.level
//	TEXTQUOTE_SERVER_MAX_DOCUMENTS -> server.max_documents
//	TEXTQUOTE_CONTEXT_LENGTH      -> context_length
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		content, err := readFile(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file %s exceeds %d bytes", path, maxConfigFileSize)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return content, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	for _, section := range []string{"log_", "server_"} {
		if strings.HasPrefix(key, section) {
			return strings.TrimSuffix(section, "_") + "." + strings.TrimPrefix(key, section)
		}
	}
	return key
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	var errs []error
	if c.ContextLength < 0 || c.ContextLength > textquote.MaxPatternLength {
		errs = append(errs, fmt.Errorf("context_length must be between 0 and %d, got %d", textquote.MaxPatternLength, c.ContextLength))
	}
	if c.SliceLength < 1 || c.SliceLength > textquote.MaxPatternLength {
		errs = append(errs, fmt.Errorf("slice_length must be between 1 and %d, got %d", textquote.MaxPatternLength, c.SliceLength))
	}
	if c.ContextLength > c.SliceLength {
		errs = append(errs, fmt.Errorf("context_length %d must not exceed slice_length %d", c.ContextLength, c.SliceLength))
	}
	if c.FoldDistance < 1 {
		errs = append(errs, fmt.Errorf("fold_distance must be positive, got %d", c.FoldDistance))
	}
	if c.MatchThreshold < 0 || c.MatchThreshold > 1 {
		errs = append(errs, fmt.Errorf("match_threshold must be between 0 and 1, got %v", c.MatchThreshold))
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port))
	}
	if c.Server.MaxDocuments < 1 {
		errs = append(errs, fmt.Errorf("server.max_documents must be positive, got %d", c.Server.MaxDocuments))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// ResolverOptions returns the textquote options matching the settings.
func (c *Config) ResolverOptions() []textquote.Option {
	return []textquote.Option{
		textquote.WithSliceLength(c.SliceLength),
		textquote.WithFoldDistance(c.FoldDistance),
		textquote.WithMatcher(textquote.BitapMatcher{Threshold: c.MatchThreshold}),
	}
}
