// extract.go pulls a bare SQL statement out of a model response.
//
// Models often wrap SQL in markdown code fences or surround it with
// narrative. ExtractSQL strips that down to the statement itself; the
// validator decides whether the result is acceptable.
package ai

import "strings"

// ExtractSQL returns the SQL statement contained in a model response.
func ExtractSQL(response string) string {
	text := strings.TrimSpace(response)

	if fenced, ok := extractFence(text, "```sql"); ok {
		return fenced
	}
	if fenced, ok := extractFence(text, "```"); ok {
		return fenced
	}

	return text
}

// extractFence returns the content of the first code fence opened by
// the given marker.
func extractFence(text, marker string) (string, bool) {
	idx := strings.Index(text, marker)
	if idx < 0 {
		return "", false
	}
	start := idx + len(marker)
	end := strings.Index(text[start:], "```")
	if end < 0 {
		return "", false
	}
	return strings.TrimSpace(text[start : start+end]), true
}
