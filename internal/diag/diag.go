// Package diag provides the diagnostic sink used across the table generator.
//
// The source this generator is built from (see original_source in the
// retrieval pack, if present) reports problems by calling print() at the spot
// they occur and continuing. That is preserved here in spirit: nothing in
// this package aborts a build, but print is replaced with a Sink interface so
// tests can intercept diagnostics instead of scraping stdout.
package diag

import (
	"fmt"
	"os"
)

// Kind identifies the category of a Diagnostic. These correspond exactly to
// the error kinds named in the generator's design: a symbol classified both
// ways, a non-terminal with no productions, first() misused on a terminal,
// and the two flavors of LR(1) action conflict.
type Kind string

const (
	GrammarInconsistent  Kind = "GrammarInconsistent"
	UnknownProduction    Kind = "UnknownProduction"
	FirstOfTerminal      Kind = "FirstOfTerminal"
	ShiftReduceConflict  Kind = "ShiftReduceConflict"
	ReduceReduceConflict Kind = "ReduceReduceConflict"
)

// Diagnostic is a single reported problem. It is never fatal by itself; the
// generator always produces an artifact, possibly an imperfect one, and
// leaves rejection of that artifact to a caller that inspects the list of
// Diagnostics returned from a build.
type Diagnostic struct {
	Kind    Kind
	Message string

	// State is the canonical-collection state number the diagnostic was
	// raised against, or -1 if it is not state-scoped (e.g. a loader error).
	State int
}

func (d Diagnostic) String() string {
	if d.State < 0 {
		return fmt.Sprintf("%s: %s", d.Kind, d.Message)
	}
	return fmt.Sprintf("%s (state %d): %s", d.Kind, d.State, d.Message)
}

// Error lets a Diagnostic be handed anywhere an error is expected, such as
// the terminal GrammarInconsistent failure from the loader.
func (d Diagnostic) Error() string {
	return d.String()
}

// New builds a Diagnostic not scoped to any particular state.
func New(kind Kind, format string, a ...any) Diagnostic {
	return Diagnostic{Kind: kind, Message: fmt.Sprintf(format, a...), State: -1}
}

// NewInState builds a Diagnostic scoped to the given canonical-collection
// state number.
func NewInState(kind Kind, state int, format string, a ...any) Diagnostic {
	return Diagnostic{Kind: kind, Message: fmt.Sprintf(format, a...), State: state}
}

// Sink receives Diagnostics as they are produced. Implementations must not
// block and must not panic; a build that reports a thousand diagnostics must
// still complete.
type Sink interface {
	Report(d Diagnostic)
}

// StdoutSink is the default Sink, preserving the source's print-and-continue
// behavior for the CLI.
type StdoutSink struct{}

func (StdoutSink) Report(d Diagnostic) {
	fmt.Fprintln(os.Stdout, d.String())
}

// Collector is a Sink that records every Diagnostic it receives, in the
// order reported. Tests use this to assert on the exact diagnostics a build
// produced. The build entry points (lr1.Build, lrtable.Assemble) do not
// return diagnostics themselves; a caller that wants the list passes a
// Collector as their sink and reads it afterwards.
type Collector struct {
	items []Diagnostic
}

// NewCollector returns an empty Collector ready to receive Diagnostics.
func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Report(d Diagnostic) {
	c.items = append(c.items, d)
}

// All returns every Diagnostic reported so far, in report order.
func (c *Collector) All() []Diagnostic {
	return c.items
}

// Empty returns whether no Diagnostic has been reported.
func (c *Collector) Empty() bool {
	return len(c.items) == 0
}

// OfKind returns the subset of reported Diagnostics matching kind, in report
// order.
func (c *Collector) OfKind(kind Kind) []Diagnostic {
	var matches []Diagnostic
	for _, d := range c.items {
		if d.Kind == kind {
			matches = append(matches, d)
		}
	}
	return matches
}

// Multi combines several Sinks into one, reporting each Diagnostic to all of
// them in order. Used by the CLI to both print to stdout and collect into a
// Collector for the --strict exit-code check in one pass.
type Multi []Sink

func (m Multi) Report(d Diagnostic) {
	for _, s := range m {
		s.Report(d)
	}
}
