package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/dekarrin/bnflr/internal/config"
	"github.com/dekarrin/bnflr/internal/gpf"
	"github.com/spf13/pflag"
)

// runTrace opens an interactive session for stepping through a previously
// generated GPF artifact's ACTION and GOTO entries, in the style of the
// teacher's readline-backed InteractiveCommandReader
// (internal/input/input.go), rebuilt here as a standalone REPL rather than
// a game command reader. This is the Go-native replacement for the Python
// prototype's commented-out debug prints of can_collection/action_table.
func runTrace(args []string) int {
	fs := pflag.NewFlagSet("trace", pflag.ContinueOnError)
	configPath := fs.StringP("config", "c", "", "TOML config file to load defaults from")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitUsageError
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: bnflr trace <table.gpf> [flags]")
		return ExitUsageError
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bnflr: load config: %s\n", err)
			return ExitIOError
		}
		cfg = loaded
	}

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "bnflr: %s\n", err)
		return ExitIOError
	}
	artifact, err := gpf.Read(f)
	f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "bnflr: %s\n", err)
		return ExitBuildError
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "bnflr> ",
		HistoryFile: cfg.HistoryFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "bnflr: create readline: %s\n", err)
		return ExitIOError
	}
	defer rl.Close()

	fmt.Fprintf(rl.Stderr(), "loaded %d rules, %d symbols, %d ACTION entries, %d GOTO entries\n",
		len(artifact.Productions), len(artifact.Symbols), len(artifact.Actions), len(artifact.Gotos))
	fmt.Fprintln(rl.Stderr(), `commands: "action <state> <terminal>", "goto <state> <nonterminal>", "rule <index>", "quit"`)

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return ExitSuccess
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "bnflr: %s\n", err)
			return ExitIOError
		}

		if handleTraceCommand(rl, artifact, strings.TrimSpace(line)) {
			return ExitSuccess
		}
	}
}

func handleTraceCommand(rl *readline.Instance, a *gpf.Artifact, line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "quit", "exit":
		return true
	case "action":
		if len(fields) != 3 {
			fmt.Fprintln(rl.Stderr(), `usage: action <state> <terminal>`)
			return false
		}
		state, err := strconv.Atoi(fields[1])
		if err != nil {
			fmt.Fprintln(rl.Stderr(), "bad state number")
			return false
		}
		found := false
		for _, ae := range a.Actions {
			if ae.State == state && ae.Terminal == fields[2] {
				fmt.Fprintf(rl.Stderr(), "%s %d\n", ae.Kind.String(), ae.Payload)
				found = true
			}
		}
		if !found {
			fmt.Fprintln(rl.Stderr(), "no ACTION entry")
		}
	case "goto":
		if len(fields) != 3 {
			fmt.Fprintln(rl.Stderr(), `usage: goto <state> <nonterminal>`)
			return false
		}
		state, err := strconv.Atoi(fields[1])
		if err != nil {
			fmt.Fprintln(rl.Stderr(), "bad state number")
			return false
		}
		found := false
		for _, ge := range a.Gotos {
			if ge.State == state && ge.NonTerminal == fields[2] {
				fmt.Fprintf(rl.Stderr(), "%d\n", ge.NextState)
				found = true
			}
		}
		if !found {
			fmt.Fprintln(rl.Stderr(), "no GOTO entry")
		}
	case "rule":
		if len(fields) != 2 {
			fmt.Fprintln(rl.Stderr(), `usage: rule <index>`)
			return false
		}
		idx, err := strconv.Atoi(fields[1])
		if err != nil || idx < 0 || idx >= len(a.Productions) {
			fmt.Fprintln(rl.Stderr(), "bad rule index")
			return false
		}
		p := a.Productions[idx]
		fmt.Fprintf(rl.Stderr(), "%s -> %s\n", p.LHS, strings.Join(p.RHS, " "))
	default:
		fmt.Fprintf(rl.Stderr(), "unknown command %q\n", fields[0])
	}
	return false
}
