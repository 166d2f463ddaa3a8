package sqlguard

import "strings"

// Result is the outcome of classifying a raw SQL string.
type Result struct {
	Allowed bool
	Reason  string
}

const (
	ReasonQueryRequired = "Query is required"
	ReasonOnlySelect    = "Only SELECT queries are allowed"
)

// writeKeywords are matched as plain substrings of the lowercased query.
// This is a lexical guard, not a parser: it rejects read-only queries that
// merely mention one of these words (a column named "created_at" contains
// "create"), and it does not catch writes that avoid these literals
// (stored procedures). Both limitations are intentional; changing them
// changes which queries are accepted.
var writeKeywords = []string{"insert", "update", "delete", "drop", "alter", "create"}

// Classify decides whether a raw SQL string may be executed.
// Pure function, no I/O.
func Classify(sqlText string) Result {
	if strings.TrimSpace(sqlText) == "" {
		return Result{Allowed: false, Reason: ReasonQueryRequired}
	}

	lowered := strings.ToLower(strings.TrimSpace(sqlText))
	for _, keyword := range writeKeywords {
		if strings.Contains(lowered, keyword) {
			return Result{Allowed: false, Reason: ReasonOnlySelect}
		}
	}

	return Result{Allowed: true}
}
