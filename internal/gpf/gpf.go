// Package gpf reads and writes the GPF table artifact described in the
// generator's design (spec §6.2): a plain-text, newline-delimited dump of a
// grammar's rules and symbol table alongside its assembled ACTION and GOTO
// tables. The format is fixed-order by section, so Write and Read are exact
// mirrors of each other; an artifact round-tripped through both must
// reproduce the same rule list, symbol list, and table mappings it was
// built from.
//
// Rule and symbol lines both encode terminal/non-terminal with the flag
// convention fixed by spec §6.2: 0 for terminal, 1 for non-terminal. The
// section carries a warning that this polarity must be reproduced exactly
// for compatibility even though, read literally, rule lines and symbol
// lines use the same polarity here — see DESIGN.md for why this is
// implemented as written rather than "corrected".
package gpf

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/dekarrin/bnflr/internal/grammar"
	"github.com/dekarrin/bnflr/internal/lrtable"
)

// SymbolEntry is one entry of the artifact's symbol table section.
type SymbolEntry struct {
	Name     string
	Terminal bool
}

// ActionEntry is one parsed ACTION line.
type ActionEntry struct {
	State    int
	Terminal string
	Kind     lrtable.ActionKind
	Payload  int
}

// GotoEntry is one parsed GOTO line.
type GotoEntry struct {
	State       int
	NonTerminal string
	NextState   int
}

// Artifact is the fully parsed contents of a GPF file.
type Artifact struct {
	Productions []grammar.Production
	Symbols     []SymbolEntry
	Actions     []ActionEntry
	Gotos       []GotoEntry
}

func flagOf(terminal bool) int {
	if terminal {
		return 0
	}
	return 1
}

// BuildArtifact flattens g and table into the same Artifact shape Read
// produces, without going through the GPF text format. WriteSnapshot uses
// this to serialize a build with REZI instead of the fixed GPF text layout.
func BuildArtifact(g *grammar.Grammar, table *lrtable.Table) *Artifact {
	a := &Artifact{Productions: g.AllProductions()}

	for _, name := range g.Symbols.Names() {
		terminal, _ := g.Symbols.IsTerminal(name)
		a.Symbols = append(a.Symbols, SymbolEntry{Name: name, Terminal: terminal})
	}
	for k, act := range table.Action {
		a.Actions = append(a.Actions, ActionEntry{State: k.State, Terminal: k.Terminal, Kind: act.Kind, Payload: payloadOf(act)})
	}
	for k, to := range table.Goto {
		a.Gotos = append(a.Gotos, GotoEntry{State: k.State, NonTerminal: k.NonTerminal, NextState: to})
	}
	return a
}

func payloadOf(act lrtable.Action) int {
	_, payload := actionLine(act)
	return payload
}

// Write emits g and table as a GPF artifact to w, in the exact section
// order spec §6.2 fixes. Rule lines are written in production-index order;
// symbol lines in the symbol table's first-sighting order. ACTION and GOTO
// lines are written sorted by (state, name), which is stricter than the
// format requires but keeps output byte-reproducible end to end.
func Write(w io.Writer, g *grammar.Grammar, table *lrtable.Table) error {
	bw := bufio.NewWriter(w)

	prods := g.AllProductions()
	if _, err := fmt.Fprintf(bw, "%d\n", len(prods)); err != nil {
		return err
	}
	for _, p := range prods {
		fields := make([]string, 0, 2+2*len(p.RHS))
		fields = append(fields, strconv.Itoa(1+len(p.RHS)), p.LHS)
		for _, sym := range p.RHS {
			terminal, _ := g.Symbols.IsTerminal(sym)
			fields = append(fields, strconv.Itoa(flagOf(terminal)), sym)
		}
		if _, err := fmt.Fprintf(bw, "%s\n", strings.Join(fields, " ")); err != nil {
			return err
		}
	}

	names := g.Symbols.Names()
	if _, err := fmt.Fprintf(bw, "%d\n", len(names)); err != nil {
		return err
	}
	for _, name := range names {
		terminal, _ := g.Symbols.IsTerminal(name)
		if _, err := fmt.Fprintf(bw, "%d %s\n", flagOf(terminal), name); err != nil {
			return err
		}
	}

	actionKeys := make([]lrtable.ActionKey, 0, len(table.Action))
	for k := range table.Action {
		actionKeys = append(actionKeys, k)
	}
	sort.Slice(actionKeys, func(i, j int) bool {
		if actionKeys[i].State != actionKeys[j].State {
			return actionKeys[i].State < actionKeys[j].State
		}
		return actionKeys[i].Terminal < actionKeys[j].Terminal
	})
	if _, err := fmt.Fprintf(bw, "%d\n", len(actionKeys)); err != nil {
		return err
	}
	for _, k := range actionKeys {
		act := table.Action[k]
		kind, payload := actionLine(act)
		if _, err := fmt.Fprintf(bw, "%d %s %s %d\n", k.State, k.Terminal, kind, payload); err != nil {
			return err
		}
	}

	gotoKeys := make([]lrtable.GotoKey, 0, len(table.Goto))
	for k := range table.Goto {
		gotoKeys = append(gotoKeys, k)
	}
	sort.Slice(gotoKeys, func(i, j int) bool {
		if gotoKeys[i].State != gotoKeys[j].State {
			return gotoKeys[i].State < gotoKeys[j].State
		}
		return gotoKeys[i].NonTerminal < gotoKeys[j].NonTerminal
	})
	if _, err := fmt.Fprintf(bw, "%d\n", len(gotoKeys)); err != nil {
		return err
	}
	for _, k := range gotoKeys {
		to := table.Goto[k]
		if _, err := fmt.Fprintf(bw, "%d %s %d\n", k.State, k.NonTerminal, to); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func actionLine(act lrtable.Action) (kind string, payload int) {
	switch act.Kind {
	case lrtable.Shift:
		return "s", act.ToState
	case lrtable.Reduce:
		return "r", act.Production.Index
	case lrtable.Accept:
		return "a", 0
	default:
		return "?", 0
	}
}

// Read parses a GPF artifact from r into an Artifact, validating each
// section's declared count against the number of lines actually present.
func Read(r io.Reader) (*Artifact, error) {
	sc := bufio.NewScanner(r)
	a := &Artifact{}

	n, err := readCount(sc, "rule count")
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		line, ok := nextLine(sc)
		if !ok {
			return nil, fmt.Errorf("gpf: expected %d rule lines, got %d", n, i)
		}
		p, err := parseRuleLine(line, i)
		if err != nil {
			return nil, err
		}
		a.Productions = append(a.Productions, p)
	}

	m, err := readCount(sc, "symbol count")
	if err != nil {
		return nil, err
	}
	for i := 0; i < m; i++ {
		line, ok := nextLine(sc)
		if !ok {
			return nil, fmt.Errorf("gpf: expected %d symbol lines, got %d", m, i)
		}
		se, err := parseSymbolLine(line)
		if err != nil {
			return nil, err
		}
		a.Symbols = append(a.Symbols, se)
	}

	na, err := readCount(sc, "ACTION count")
	if err != nil {
		return nil, err
	}
	for i := 0; i < na; i++ {
		line, ok := nextLine(sc)
		if !ok {
			return nil, fmt.Errorf("gpf: expected %d ACTION lines, got %d", na, i)
		}
		ae, err := parseActionLine(line)
		if err != nil {
			return nil, err
		}
		a.Actions = append(a.Actions, ae)
	}

	ng, err := readCount(sc, "GOTO count")
	if err != nil {
		return nil, err
	}
	for i := 0; i < ng; i++ {
		line, ok := nextLine(sc)
		if !ok {
			return nil, fmt.Errorf("gpf: expected %d GOTO lines, got %d", ng, i)
		}
		ge, err := parseGotoLine(line)
		if err != nil {
			return nil, err
		}
		a.Gotos = append(a.Gotos, ge)
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}
	return a, nil
}

func nextLine(sc *bufio.Scanner) (string, bool) {
	if !sc.Scan() {
		return "", false
	}
	return sc.Text(), true
}

func readCount(sc *bufio.Scanner, label string) (int, error) {
	line, ok := nextLine(sc)
	if !ok {
		return 0, fmt.Errorf("gpf: missing %s line", label)
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("gpf: bad %s line %q: %w", label, line, err)
	}
	return n, nil
}

func parseRuleLine(line string, index int) (grammar.Production, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return grammar.Production{}, fmt.Errorf("gpf: malformed rule line %q", line)
	}
	length, err := strconv.Atoi(fields[0])
	if err != nil {
		return grammar.Production{}, fmt.Errorf("gpf: bad rule length in %q: %w", line, err)
	}
	lhs := fields[1]
	rest := fields[2:]
	if len(rest) != 2*(length-1) {
		return grammar.Production{}, fmt.Errorf("gpf: rule line %q declares length %d but has %d rhs fields", line, length, len(rest))
	}
	rhs := make([]string, 0, length-1)
	for i := 0; i+1 < len(rest); i += 2 {
		// rest[i] is the terminal/non-terminal flag, unused for
		// reconstructing the bare symbol sequence.
		rhs = append(rhs, rest[i+1])
	}
	return grammar.Production{Index: index, LHS: lhs, RHS: rhs}, nil
}

func parseSymbolLine(line string) (SymbolEntry, error) {
	fields := strings.SplitN(strings.TrimSpace(line), " ", 2)
	if len(fields) != 2 {
		return SymbolEntry{}, fmt.Errorf("gpf: malformed symbol line %q", line)
	}
	flag, err := strconv.Atoi(fields[0])
	if err != nil {
		return SymbolEntry{}, fmt.Errorf("gpf: bad symbol flag in %q: %w", line, err)
	}
	return SymbolEntry{Name: fields[1], Terminal: flag == 0}, nil
}

func parseActionLine(line string) (ActionEntry, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return ActionEntry{}, fmt.Errorf("gpf: malformed ACTION line %q", line)
	}
	state, err := strconv.Atoi(fields[0])
	if err != nil {
		return ActionEntry{}, fmt.Errorf("gpf: bad ACTION state in %q: %w", line, err)
	}
	payload, err := strconv.Atoi(fields[3])
	if err != nil {
		return ActionEntry{}, fmt.Errorf("gpf: bad ACTION payload in %q: %w", line, err)
	}
	var kind lrtable.ActionKind
	switch fields[2] {
	case "s":
		kind = lrtable.Shift
	case "r":
		kind = lrtable.Reduce
	case "a":
		kind = lrtable.Accept
	default:
		return ActionEntry{}, fmt.Errorf("gpf: unknown ACTION kind %q in %q", fields[2], line)
	}
	return ActionEntry{State: state, Terminal: fields[1], Kind: kind, Payload: payload}, nil
}

func parseGotoLine(line string) (GotoEntry, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return GotoEntry{}, fmt.Errorf("gpf: malformed GOTO line %q", line)
	}
	state, err := strconv.Atoi(fields[0])
	if err != nil {
		return GotoEntry{}, fmt.Errorf("gpf: bad GOTO state in %q: %w", line, err)
	}
	next, err := strconv.Atoi(fields[2])
	if err != nil {
		return GotoEntry{}, fmt.Errorf("gpf: bad GOTO next-state in %q: %w", line, err)
	}
	return GotoEntry{State: state, NonTerminal: fields[1], NextState: next}, nil
}
