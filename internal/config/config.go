// Package config loads the table generator's optional TOML configuration
// file, following the teacher's convention of decoding structured on-disk
// data with BurntSushi/toml (internal/tqw/tqw.go, internal/game/marshaling.go)
// rather than hand-rolling a parser.
package config

import (
	"github.com/BurntSushi/toml"
)

// Config holds settings the CLI will fall back to when the corresponding
// flag is not given explicitly.
type Config struct {
	// Output is the default GPF output path, used when -o is not given.
	Output string `toml:"output"`

	// Strict makes any reported diagnostic (ShiftReduceConflict,
	// ReduceReduceConflict, UnknownProduction) a non-zero exit, not just
	// GrammarInconsistent at load time.
	Strict bool `toml:"strict"`

	// Snapshot, if set, additionally writes a REZI-encoded snapshot of the
	// build to this path alongside the GPF artifact.
	Snapshot string `toml:"snapshot"`

	// HistoryFile is where the "trace" subcommand's readline history is
	// persisted between invocations.
	HistoryFile string `toml:"history_file"`
}

// Default returns the configuration used when no config file is given.
func Default() Config {
	return Config{
		Output:      "out.gpf",
		HistoryFile: ".bnflr_history",
	}
}

// Load decodes a TOML config file at path over top of Default().
func Load(path string) (Config, error) {
	cfg := Default()
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}
