// Package bnf is the boundary tokenizer that turns a BNF source file into
// the grammar.RuleRecord values internal/grammar.Load expects. It is
// intentionally the thinnest layer in the generator: one rule per line, with
// no support for alternation ("|") within a line, grouping, or epsilon —
// those are all explicit Non-goals of the loader this package feeds.
//
// The line grammar and its regular expressions are grounded directly on the
// Python prototype this generator replaces
// (original_source/gb_compiler/grammar_parser/lr1_parser.py's `automata` and
// `right_matcher` patterns, and transform_to_dict/read_bnf_file): a rule
// line is "<LHS> ::= <rhs symbols>", where each right-hand symbol is either
// <a non-terminal> in angle brackets or "a terminal" in double quotes.
package bnf

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/dekarrin/bnflr/internal/grammar"
)

var (
	ruleLine  = regexp.MustCompile(`^\s*<(?P<left>\w+)>\s*::=\s*(?P<right>.+?)\s*$`)
	rhsSymbol = regexp.MustCompile(`<(?P<nonterm>[^>\n]+)>|"(?P<term>[^"\n]+)"`)
)

// ParseError reports a line of BNF source that could not be parsed as a
// rule.
type ParseError struct {
	Line int
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("bnf: line %d: not a valid rule: %q", e.Line, e.Text)
}

// Parse reads BNF source from r, one rule per non-blank, non-comment line,
// and returns the accumulated grammar.RuleRecord values in file order.
// Lines consisting only of whitespace, or starting with "#", are skipped.
// A line that does not match the "<LHS> ::= rhs" shape is a *ParseError.
func Parse(r io.Reader) ([]grammar.RuleRecord, error) {
	var records []grammar.RuleRecord

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		rec, err := parseLine(line)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: trimmed}
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func parseLine(line string) (grammar.RuleRecord, error) {
	m := ruleLine.FindStringSubmatch(line)
	if m == nil {
		return grammar.RuleRecord{}, fmt.Errorf("does not match <LHS> ::= rhs")
	}
	lhs := m[ruleLine.SubexpIndex("left")]
	rhsText := m[ruleLine.SubexpIndex("right")]

	var rhs []grammar.SymbolRecord
	matches := rhsSymbol.FindAllStringSubmatch(rhsText, -1)
	for _, sm := range matches {
		nonTerm := sm[rhsSymbol.SubexpIndex("nonterm")]
		term := sm[rhsSymbol.SubexpIndex("term")]
		if term != "" {
			rhs = append(rhs, grammar.SymbolRecord{Name: term, Terminal: true})
		} else if nonTerm != "" {
			rhs = append(rhs, grammar.SymbolRecord{Name: nonTerm, Terminal: false})
		}
	}

	return grammar.RuleRecord{LHS: lhs, RHS: rhs}, nil
}

// ParseString is a convenience wrapper around Parse for callers that already
// have the whole BNF source in memory, such as tests.
func ParseString(src string) ([]grammar.RuleRecord, error) {
	return Parse(strings.NewReader(src))
}
