// Package pipelinecfg reads the optional cfgforge.toml configuration file
// that controls purely ambient pipeline tunables -- emission dialect and
// the two safety-valve constants from spec.md (GNF's head-terminalization
// iteration cap, the enumerator's anti-explosion length cutoff). None of
// these change which language a grammar generates; they only affect
// output formatting and termination safety margins.
package pipelinecfg

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/dekarrin/cfgforge/internal/cfgio"
)

// Config is the shape of cfgforge.toml. Every field has a spec.md-matching
// default and the file itself is entirely optional.
type Config struct {
	// Dialect is "colon" or "arrow"; selects the separator used when
	// emitting grammars. Defaults to "colon".
	Dialect string `toml:"dialect"`

	// GNFIterationCapOffset is added to 3*|rules| to form the
	// head-terminalization iteration cap (spec.md §4.11's "3*|rules|+50").
	// Defaults to 50.
	GNFIterationCapOffset int `toml:"gnf_iteration_cap_offset"`

	// EnumeratorLengthCutoffMultiplier scales L to form the enumerator's
	// anti-explosion length cutoff (spec.md §4.12's "2*L"). Defaults to 2.
	EnumeratorLengthCutoffMultiplier int `toml:"enumerator_length_cutoff_multiplier"`
}

// Default returns the spec.md-matching defaults.
func Default() Config {
	return Config{
		Dialect:                          "colon",
		GNFIterationCapOffset:            50,
		EnumeratorLengthCutoffMultiplier: 2,
	}
}

// Load reads path if it exists, overlaying any present fields onto
// Default(). A missing file is not an error. path may be empty, in which
// case "cfgforge.toml" in the working directory is tried.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = "cfgforge.toml"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// EmitDialect translates the configured dialect name into a cfgio.Dialect.
func (c Config) EmitDialect() cfgio.Dialect {
	if c.Dialect == "arrow" {
		return cfgio.DialectArrow
	}
	return cfgio.DialectColon
}
