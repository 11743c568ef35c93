// Package config loads user configuration from the platform config
// directory, falling back to built-in defaults when no file exists.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/OpenPeeDeeP/xdg"
	yaml "github.com/goccy/go-yaml"
)

// Config holds all user-tunable options. Field names are PascalCase here
// and camelCase in the yaml file.
type Config struct {
	// LogLevel controls stderr diagnostics: trace, debug, info, warn,
	// error or fatal.
	LogLevel string `yaml:"logLevel,omitempty"`

	// BreakXOR tunes the repeating-key analysis behind the break-xor
	// command.
	BreakXOR BreakXORConfig `yaml:"breakXor,omitempty"`

	// GuessKey tunes the single-byte key search behind the guess-key
	// command.
	GuessKey GuessKeyConfig `yaml:"guessKey,omitempty"`
}

// BreakXORConfig bounds the repeating-key search.
type BreakXORConfig struct {
	// MinKeySize and MaxKeySize bound the key sizes that get ranked.
	MinKeySize int `yaml:"minKeySize,omitempty"`
	MaxKeySize int `yaml:"maxKeySize,omitempty"`

	// ChunkPairs is how many adjacent chunk pairs are compared when
	// scoring one key size.
	ChunkPairs int `yaml:"chunkPairs,omitempty"`

	// TryKeySizes is how many of the best-ranked key sizes are actually
	// attacked.
	TryKeySizes int `yaml:"tryKeySizes,omitempty"`

	// PreviewBytes caps how much recovered plaintext is printed per
	// attempted key size.
	PreviewBytes int `yaml:"previewBytes,omitempty"`
}

// GuessKeyConfig tunes single-byte key guessing.
type GuessKeyConfig struct {
	// Candidates is how many of the best candidates are printed.
	Candidates int `yaml:"candidates,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "warn",
		BreakXOR: BreakXORConfig{
			MinKeySize:   2,
			MaxKeySize:   50,
			ChunkPairs:   5,
			TryKeySizes:  4,
			PreviewBytes: 500,
		},
		GuessKey: GuessKeyConfig{
			Candidates: 10,
		},
	}
}

// Load looks up config.yml in the platform config directories and merges
// it over the defaults. A missing file just yields the defaults.
func Load() (Config, error) {
	return LoadFile(xdg.New("xmdhs", "go-cryptopals").QueryConfig("config.yml"))
}

// LoadFile merges the yaml file at path over the defaults. An empty path
// or a missing file yields the defaults; malformed yaml and out-of-range
// values are errors.
func LoadFile(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(content, &c); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := c.validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

func (c Config) validate() error {
	b := c.BreakXOR
	switch {
	case b.MinKeySize < 1:
		return fmt.Errorf("minKeySize must be at least 1, got %d", b.MinKeySize)
	case b.MaxKeySize < b.MinKeySize:
		return fmt.Errorf("maxKeySize %d is below minKeySize %d", b.MaxKeySize, b.MinKeySize)
	case b.ChunkPairs < 1:
		return fmt.Errorf("chunkPairs must be at least 1, got %d", b.ChunkPairs)
	case b.TryKeySizes < 1:
		return fmt.Errorf("tryKeySizes must be at least 1, got %d", b.TryKeySizes)
	case b.PreviewBytes < 0:
		return fmt.Errorf("previewBytes cannot be negative, got %d", b.PreviewBytes)
	}

	if c.GuessKey.Candidates < 1 {
		return fmt.Errorf("candidates must be at least 1, got %d", c.GuessKey.Candidates)
	}
	return nil
}
