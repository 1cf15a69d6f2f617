package app

import "strings"

const maxTracedQueryLength = 512

// formatDBQueryForTrace collapses whitespace so multi-line queries read as one span attribute.
func formatDBQueryForTrace(query string) string {
	normalized := strings.Join(strings.Fields(query), " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}
	return normalized[:maxTracedQueryLength] + "..."
}
