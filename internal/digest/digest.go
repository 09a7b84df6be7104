// Package digest assembles the per-cycle digest blob fed to summarization.
package digest

import "strings"

// Placeholder is the blob produced when no layer contributed a sentence.
const Placeholder = "No data selected."

// Join concatenates digest sentences with single spaces. Entries must
// already be in canonical layer order; Join never reorders them.
func Join(entries []string) string {
	if len(entries) == 0 {
		return Placeholder
	}
	return strings.Join(entries, " ")
}

// Truncate cuts s down to at most max characters, always at a character
// boundary. Earlier characters are never lost within the bound.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	n := 0
	for i := range s {
		if n == max {
			return s[:i]
		}
		n++
	}
	return s
}
