package gpf

import (
	"fmt"

	"github.com/dekarrin/bnflr/internal/grammar"
	"github.com/dekarrin/rezi"
)

// snapshot is the full in-memory build context serialized by
// WriteSnapshot/ReadSnapshot: every production, the symbol table, and the
// assembled ACTION/GOTO tables, flattened to plain slices of entries (the
// same shapes Read/Write use for the GPF text format) so REZI only ever
// sees structs built from slices and basic types. It exists alongside the
// exact-format GPF writer as a binary sidecar written by the CLI's
// --snapshot flag (the "trace" subcommand reads the GPF text, not this),
// the way the teacher's session store round-trips a whole game.State through
// rezi.EncBinary/DecBinary (server/dao/sqlite/sqlite.go) rather than a
// hand-written format.
type snapshot struct {
	Productions []grammar.Production
	Symbols     []SymbolEntry
	Actions     []ActionEntry
	Gotos       []GotoEntry
}

// WriteSnapshot serializes a (as built by BuildArtifact) into a single REZI-encoded binary
// blob, suitable for the CLI's optional --snapshot flag. This is distinct
// from the fixed-format GPF artifact Write produces: it carries the same
// information but is not meant to be hand-parsed or to satisfy spec §6.2's
// byte format.
func WriteSnapshot(a *Artifact) []byte {
	snap := snapshot{
		Productions: a.Productions,
		Symbols:     a.Symbols,
		Actions:     a.Actions,
		Gotos:       a.Gotos,
	}
	return rezi.EncBinary(snap)
}

// ReadSnapshot decodes a blob produced by WriteSnapshot back into an
// Artifact, identical in contents to what parsing the corresponding GPF
// text file would have produced.
func ReadSnapshot(data []byte) (*Artifact, error) {
	var snap snapshot
	n, err := rezi.DecBinary(data, &snap)
	if err != nil {
		return nil, fmt.Errorf("gpf: REZI decode: %w", err)
	}
	if n != len(data) {
		return nil, fmt.Errorf("gpf: REZI decode consumed %d/%d bytes", n, len(data))
	}

	return &Artifact{
		Productions: snap.Productions,
		Symbols:     snap.Symbols,
		Actions:     snap.Actions,
		Gotos:       snap.Gotos,
	}, nil
}
