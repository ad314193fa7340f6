// Package config loads tabproc settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vegasq/tabproc/output"
	"github.com/vegasq/tabproc/reader"
)

// ErrInvalidConfig is returned by Validate and Load for unusable settings
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the settings shared by every processed file
type Config struct {
	// Type forces the processor kind; empty means detect from the file extension
	Type string `yaml:"type"`

	// Format is the output formatter name
	Format string `yaml:"format"`

	// Separator is the single-character field delimiter for csv sources
	Separator string `yaml:"separator"`

	// Pattern is the regular expression splitting txt source fields
	Pattern string `yaml:"pattern"`

	// Encoding is the text encoding label of text sources
	Encoding string `yaml:"encoding"`

	// MaxWidth limits console grid cells; zero disables truncation
	MaxWidth int `yaml:"max_width"`

	// Runs is how many times run is applied to each file
	Runs int `yaml:"runs"`

	Debug bool `yaml:"debug"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Format:    output.FormatTable,
		Separator: string(reader.DefaultSeparator),
		Pattern:   reader.DefaultPattern,
		Encoding:  reader.DefaultEncoding,
		MaxWidth:  output.DefaultMaxWidth,
		Runs:      1,
	}
}

// Load reads a YAML file over the defaults. Keys absent from the file keep
// their default value.
func Load(path string) (Config, error) {
	cfg := Default()

	content, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks every field and reports the first problem found
func (c Config) Validate() error {
	if c.Type != "" {
		if _, err := reader.ParseFormat(c.Type); err != nil {
			return fmt.Errorf("%w: type: %v", ErrInvalidConfig, err)
		}
	}

	if _, err := output.NewFormatter(c.Format, nil); err != nil {
		return fmt.Errorf("%w: format: %v", ErrInvalidConfig, err)
	}

	if utf8.RuneCountInString(c.Separator) != 1 {
		return fmt.Errorf("%w: separator must be a single character, got %q", ErrInvalidConfig, c.Separator)
	}
	if sep := c.SeparatorRune(); sep == '\r' || sep == '\n' || sep == '"' || sep == utf8.RuneError {
		return fmt.Errorf("%w: separator %q is not allowed", ErrInvalidConfig, c.Separator)
	}

	if _, err := regexp.Compile(c.Pattern); err != nil {
		return fmt.Errorf("%w: pattern: %v", ErrInvalidConfig, err)
	}

	if err := reader.ValidateEncoding(c.Encoding); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if c.MaxWidth < 0 {
		return fmt.Errorf("%w: max_width must not be negative, got %d", ErrInvalidConfig, c.MaxWidth)
	}
	if c.Runs < 1 {
		return fmt.Errorf("%w: runs must be at least 1, got %d", ErrInvalidConfig, c.Runs)
	}

	return nil
}

// SeparatorRune returns the separator as a rune, zero when unset
func (c Config) SeparatorRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Separator)
	if r == utf8.RuneError && c.Separator == "" {
		return 0
	}
	return r
}

// ReaderOptions converts the parse settings for the reader package
func (c Config) ReaderOptions() reader.Options {
	return reader.Options{
		Separator: c.SeparatorRune(),
		Pattern:   c.Pattern,
		Encoding:  c.Encoding,
	}
}
