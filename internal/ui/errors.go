package ui

import (
	"strings"
	"unicode/utf8"
)

const (
	maxErrorLines  = 2
	errorPrefix    = "Error: "
	truncationMark = "..."
)

// formatErrorForDisplay wraps an error message to maxWidth, keeping at most
// maxErrorLines lines. Overflowing text is cut and marked with "...".
func formatErrorForDisplay(message string, maxWidth int) string {
	message = strings.TrimSpace(message)
	if message == "" {
		return ""
	}
	if maxWidth < 20 {
		maxWidth = 20
	}

	words := strings.Fields(message)
	var lines []string
	var current strings.Builder
	limit := maxWidth - utf8.RuneCountInString(errorPrefix)
	truncated := false

	for _, word := range words {
		curLen := utf8.RuneCountInString(current.String())
		if curLen > 0 && curLen+1+utf8.RuneCountInString(word) > limit {
			lines = append(lines, current.String())
			current.Reset()
			limit = maxWidth
			if len(lines) == maxErrorLines {
				truncated = true
				break
			}
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}
	if !truncated && current.Len() > 0 {
		lines = append(lines, current.String())
	}

	if truncated {
		last := []rune(lines[len(lines)-1])
		keep := maxWidth - utf8.RuneCountInString(truncationMark)
		if len(last) > keep {
			last = last[:keep]
		}
		lines[len(lines)-1] = string(last) + truncationMark
	}

	return errorPrefix + strings.Join(lines, "\n")
}
