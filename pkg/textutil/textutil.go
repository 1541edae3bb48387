// Package textutil holds small text layout helpers for help output.
package textutil

import "strings"

// Wrap splits text into lines no longer than width, breaking only between words. Runs of
// whitespace collapse to a single space. A word longer than width gets a line of its own.
func Wrap(text string, width int) []string {
	var (
		lines []string
		line  strings.Builder
	)
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
