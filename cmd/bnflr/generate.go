package main

import (
	"fmt"
	"os"

	"github.com/dekarrin/bnflr/internal/bnf"
	"github.com/dekarrin/bnflr/internal/config"
	"github.com/dekarrin/bnflr/internal/diag"
	"github.com/dekarrin/bnflr/internal/firstset"
	"github.com/dekarrin/bnflr/internal/gpf"
	"github.com/dekarrin/bnflr/internal/grammar"
	"github.com/dekarrin/bnflr/internal/lr1"
	"github.com/dekarrin/bnflr/internal/lrtable"
	"github.com/spf13/pflag"
)

func runGenerate(args []string) int {
	fs := pflag.NewFlagSet("generate", pflag.ContinueOnError)
	output := fs.StringP("output", "o", "", "where to write the GPF artifact")
	configPath := fs.StringP("config", "c", "", "TOML config file to load defaults from")
	strict := fs.BoolP("strict", "s", false, "exit non-zero on any reported diagnostic")
	snapshot := fs.String("snapshot", "", "also write a REZI-encoded snapshot to this path")
	dump := fs.BoolP("dump", "d", false, "print the ACTION/GOTO table as an ASCII grid to stdout")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitUsageError
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: bnflr generate <input.bnf> [flags]")
		return ExitUsageError
	}
	inputPath := fs.Arg(0)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bnflr: load config: %s\n", err)
			return ExitIOError
		}
		cfg = loaded
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *strict {
		cfg.Strict = true
	}
	if *snapshot != "" {
		cfg.Snapshot = *snapshot
	}

	in, err := os.Open(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bnflr: %s\n", err)
		return ExitIOError
	}
	records, err := bnf.Parse(in)
	in.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "bnflr: %s\n", err)
		return ExitBuildError
	}

	collector := diag.NewCollector()
	sink := diag.Multi{diag.StdoutSink{}, collector}

	g, err := grammar.Load(records, sink)
	if err != nil {
		buildErr := diag.WrapBuildError(err, "grammar could not be built, see diagnostics above", "")
		fmt.Fprintf(os.Stderr, "bnflr: %s\n", diag.OperatorMessage(buildErr))
		return ExitBuildError
	}

	fe := firstset.New(g, sink)
	coll := lr1.Build(g, fe, sink)
	table := lrtable.Assemble(g, coll, sink)

	if *dump {
		fmt.Println(table.String(coll.NumStates(), g.Symbols.Terminals(), g.NonTerminals()))
	}

	out, err := os.Create(cfg.Output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bnflr: %s\n", err)
		return ExitIOError
	}
	writeErr := gpf.Write(out, g, table)
	closeErr := out.Close()
	if writeErr != nil {
		fmt.Fprintf(os.Stderr, "bnflr: %s\n", writeErr)
		return ExitIOError
	}
	if closeErr != nil {
		fmt.Fprintf(os.Stderr, "bnflr: %s\n", closeErr)
		return ExitIOError
	}

	if cfg.Snapshot != "" {
		data := gpf.WriteSnapshot(gpf.BuildArtifact(g, table))
		if err := os.WriteFile(cfg.Snapshot, data, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "bnflr: write snapshot: %s\n", err)
			return ExitIOError
		}
	}

	if cfg.Strict && !collector.Empty() {
		return ExitBuildError
	}
	return ExitSuccess
}
