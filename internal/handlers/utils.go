package handlers

import (
	"iter"
	"strings"
)

// commandLines yields the trimmed, non-empty lines of a client message.
func commandLines(message string) iter.Seq[string] {
	return func(yield func(string) bool) {
		rest, found := message, true
		var line string
		for found {
			line, rest, found = strings.Cut(rest, "\n")
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if !yield(line) {
				return
			}
		}
	}
}
