package extraction

import (
	"errors"
	"strings"
)

// errNoJSONObject means the model output contained no JSON object at all.
var errNoJSONObject = errors.New("no JSON object in model output")

// sanitizeJSON tolerates the common failure modes of JSON-mode models:
// markdown code fences around the object and prose before or after it.
func sanitizeJSON(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end < start {
		return "", errNoJSONObject
	}
	return s[start : end+1], nil
}
