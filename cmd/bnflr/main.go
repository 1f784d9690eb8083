/*
Bnflr compiles a BNF grammar file into an LR(1) ACTION/GOTO parse table.

Usage:

	bnflr generate <input.bnf> [flags]
	bnflr trace <table.gpf> [flags]

The generate subcommand's flags are:

	-o, --output FILE
		Where to write the GPF artifact. Defaults to "out.gpf", or the
		config file's output setting if one is loaded.

	-c, --config FILE
		Load defaults from a TOML config file before applying flags.

	-s, --strict
		Exit non-zero if any diagnostic was reported during the build, not
		only a fatal GrammarInconsistent at load time.

	--snapshot FILE
		Additionally write a REZI-encoded snapshot of the full build
		alongside the GPF artifact.

	-d, --dump
		Print the ACTION/GOTO table as an ASCII grid to stdout before
		writing the GPF artifact.

The trace subcommand loads a previously generated .gpf file and opens an
interactive GNU-readline-backed session for stepping through its ACTION and
GOTO entries; see its own -h output once running. Its only flag is:

	-c, --config FILE
		Load a TOML config file for its history_file setting (where
		readline history is persisted between invocations).
*/
package main

import (
	"fmt"
	"os"

	"github.com/dekarrin/bnflr/internal/version"
	"github.com/spf13/pflag"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitUsageError indicates bad CLI arguments.
	ExitUsageError

	// ExitBuildError indicates an unsuccessful grammar build, whether due to
	// a fatal load error or, in --strict mode, a reported diagnostic.
	ExitBuildError

	// ExitIOError indicates a failure reading input or writing output.
	ExitIOError
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: bnflr <generate|trace> ...")
		os.Exit(ExitUsageError)
	}

	sub := os.Args[1]
	args := os.Args[2:]

	var code int
	switch sub {
	case "generate":
		code = runGenerate(args)
	case "trace":
		code = runTrace(args)
	case "-h", "--help", "help":
		pflag.Usage()
		code = ExitSuccess
	case "-v", "--version", "version":
		fmt.Printf("bnflr %s\n", version.Current)
		code = ExitSuccess
	default:
		fmt.Fprintf(os.Stderr, "bnflr: unknown subcommand %q\n", sub)
		code = ExitUsageError
	}

	os.Exit(code)
}
