package suggest

import (
	"encoding/json"
	"regexp"
	"strings"
)

// maxFallbackCandidates caps the line-based fallback. The structured
// path keeps whatever the model produced; the cap there is prompt-level
// guidance only.
const maxFallbackCandidates = 5

// jsonArrayPattern matches the first array-shaped substring in the raw
// text, non-greedy and spanning newlines.
var jsonArrayPattern = regexp.MustCompile(`(?s)\[.*?\]`)

// decorationCutset covers the quoting and bullet characters models wrap
// around list items.
const decorationCutset = " \t\"'`-*•<>"

// ParseCandidates extracts discrete completion candidates from free-form
// model text. It tries a JSON string array first and falls back to
// newline-delimited lines. It never fails: unparseable input yields an
// empty result, not an error.
func ParseCandidates(raw string) []string {
	if arr := jsonArrayPattern.FindString(raw); arr != "" {
		var elements []interface{}
		if err := json.Unmarshal([]byte(arr), &elements); err == nil {
			candidates := make([]string, 0, len(elements))
			for _, el := range elements {
				if s, ok := el.(string); ok {
					candidates = append(candidates, s)
				}
			}
			return candidates
		}
	}

	return parseLines(raw)
}

func parseLines(raw string) []string {
	var candidates []string
	for _, line := range strings.Split(raw, "\n") {
		cleaned := strings.Trim(line, decorationCutset)
		if cleaned == "" {
			continue
		}
		candidates = append(candidates, cleaned)
		if len(candidates) == maxFallbackCandidates {
			break
		}
	}
	return candidates
}
