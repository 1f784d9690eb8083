package diag

import "strings"

// JoinNames renders items as a natural-language list ("a", "a and b", or
// "a, b, and c"), adapted from the teacher's internal/util.MakeTextList.
// Used when a diagnostic needs to name every action that piled up on a
// single ACTION table cell, not just the two most recent.
func JoinNames(items []string) string {
	if len(items) < 1 {
		return ""
	}
	if len(items) == 1 {
		return items[0]
	}
	if len(items) == 2 {
		return items[0] + " and " + items[1]
	}

	withOxfordComma := make([]string, len(items))
	copy(withOxfordComma, items)
	withOxfordComma[len(withOxfordComma)-1] = "and " + withOxfordComma[len(withOxfordComma)-1]
	return strings.Join(withOxfordComma, ", ")
}
