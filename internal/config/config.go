package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hukkinj1/dotvanity/internal/ss58"
	"github.com/hukkinj1/dotvanity/pkg/types"
)

// Errors
var (
	ErrInvalidNetwork = errors.New("address type must be in range [0, 127]")
	ErrInvalidChars   = errors.New("matcher contains SS58 incompatible characters")
	ErrMainnetPrefix  = errors.New(`Polkadot mainnet addresses start with "1"; adjust --startswith`)
	ErrInvalidCount   = errors.New("number of addresses must be at least 1")
	ErrInvalidWorkers = errors.New("CPU count must be at least 1")
)

// Config holds the application configuration
type Config struct {
	StartsWith string
	EndsWith   string
	Contains   string
	MinLetters int
	MinDigits  int

	// NetworkType is the SS58 address type (0 = Polkadot mainnet, 2 = Kusama,
	// 42 = generic Substrate). Kept as int so out-of-range CLI input survives
	// long enough to be reported by Validate.
	NetworkType int

	Count       int // how many matching addresses to find
	Workers     int
	Mnemonic    bool
	Verbose     bool
	LogFile     string
	LogInterval int // logging interval in seconds
}

// NewConfig creates a new configuration with default values
func NewConfig() *Config {
	return &Config{
		NetworkType: 0, // Polkadot mainnet
		Count:       1,
		Workers:     1,
		LogInterval: 5,
	}
}

// Validate checks the configuration before any worker is spawned.
func (c *Config) Validate() error {
	if c.NetworkType < 0 || c.NetworkType > 127 {
		return fmt.Errorf("%w: got %d", ErrInvalidNetwork, c.NetworkType)
	}
	for _, s := range []string{c.StartsWith, c.EndsWith, c.Contains} {
		if !ss58.ValidChars(s) {
			return fmt.Errorf("%w: %q", ErrInvalidChars, s)
		}
	}
	// Mainnet addresses always begin with "1" (type byte 0x00 encodes to a
	// leading base58 zero), so any other --startswith can never match.
	if c.NetworkType == 0 && c.StartsWith != "" && !strings.HasPrefix(c.StartsWith, "1") {
		return ErrMainnetPrefix
	}
	if c.MinLetters < 0 || c.MinDigits < 0 {
		return errors.New("letter and digit thresholds must not be negative")
	}
	if c.Count < 1 {
		return ErrInvalidCount
	}
	if c.Workers < 1 {
		return ErrInvalidWorkers
	}
	return nil
}

// Criteria converts the validated configuration into matcher criteria.
func (c *Config) Criteria() types.Criteria {
	return types.Criteria{
		StartsWith: c.StartsWith,
		EndsWith:   c.EndsWith,
		Contains:   c.Contains,
		MinLetters: c.MinLetters,
		MinDigits:  c.MinDigits,
		Network:    uint16(c.NetworkType),
	}
}

// GetTargetDescription returns a human-readable description of the criteria
func (c *Config) GetTargetDescription() string {
	var parts []string
	if c.StartsWith != "" {
		parts = append(parts, "starts with "+c.StartsWith)
	}
	if c.EndsWith != "" {
		parts = append(parts, "ends with "+c.EndsWith)
	}
	if c.Contains != "" {
		parts = append(parts, "contains "+c.Contains)
	}
	if c.MinLetters > 0 {
		parts = append(parts, fmt.Sprintf("at least %d letters", c.MinLetters))
	}
	if c.MinDigits > 0 {
		parts = append(parts, fmt.Sprintf("at least %d digits", c.MinDigits))
	}
	if len(parts) == 0 {
		return "any address"
	}
	return strings.Join(parts, ", ")
}
