package llm

import (
	"encoding/json"
	"strings"
)

// ExtractJSON strips a leading/trailing Markdown code fence (with an
// optional "json" language tag) and surrounding whitespace from a model
// response. Models routinely wrap JSON in fences even when told not to;
// callers run every free-text response through this before decoding.
func ExtractJSON(text string) json.RawMessage {
	s := strings.TrimSpace(text)

	if strings.HasPrefix(s, "```") {
		s = s[3:]
		s = strings.TrimPrefix(s, "json")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
	}

	return json.RawMessage(s)
}
