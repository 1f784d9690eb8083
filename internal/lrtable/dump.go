package lrtable

import (
	"fmt"

	"github.com/dekarrin/rosed"
)

// String renders the ACTION/GOTO table as an ASCII grid, one row per state
// and one column per terminal (under ACTION) or non-terminal (under GOTO),
// in the style of the teacher's internal/ictiobus/parse table dumps
// (parse/slr.go's rosed.Edit("").InsertTableOpts call). Used by the CLI's
// "generate --dump" flag to print the table alongside writing the GPF
// artifact. numStates is the authoritative state count from the
// lr1.Collection the table was assembled from, not re-derived from the
// table's own map keys, since a state with no ACTION/GOTO entries at all
// (possible for an unreachable state) would otherwise be silently dropped.
func (t *Table) String(numStates int, terminals, nonTerminals []string) string {
	header := append([]string{"state", "|"}, terminals...)
	header = append(header, "|")
	header = append(header, nonTerminals...)

	data := [][]string{header}

	for state := 0; state < numStates; state++ {
		row := []string{fmt.Sprintf("%d", state), "|"}
		for _, term := range terminals {
			cell := ""
			if act, ok := t.Action[ActionKey{State: state, Terminal: term}]; ok {
				cell = act.String()
			}
			row = append(row, cell)
		}
		row = append(row, "|")
		for _, nt := range nonTerminals {
			cell := ""
			if to, ok := t.Goto[GotoKey{State: state, NonTerminal: nt}]; ok {
				cell = fmt.Sprintf("%d", to)
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 20, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}
