// Package reply renders correction lists as outgoing message text.
package reply

import "strings"

// furthermore joins items with Oxford-comma-aware listing grammar:
// one item stands alone, the last of several is introduced by
// ", and furthermore".
func furthermore(items []string) string {
	if len(items) == 1 {
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", and furthermore " + items[len(items)-1]
}

// Format renders one or more corrections as a single reply sentence.
// Each correction is wrapped in typographic quotes. corrections must be
// non-empty.
func Format(corrections []string) string {
	quoted := make([]string, len(corrections))
	for i, c := range corrections {
		quoted[i] = "“" + c + "”"
	}
	return "I think you mean " + furthermore(quoted)
}
