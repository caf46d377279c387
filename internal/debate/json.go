package debate

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
)

var codeBlockRe = regexp.MustCompile("(?s)```(?:json)?\\s*\\n?(.*?)\\n?```")

// decodeStrict unmarshals raw LLM output into T, rejecting unknown fields.
// It tolerates markdown fencing and surrounding prose around the JSON object,
// but never fills in missing content; callers validate required fields.
func decodeStrict[T any](raw string) (T, bool) {
	candidates := []string{strings.TrimSpace(raw)}

	if matches := codeBlockRe.FindStringSubmatch(raw); len(matches) > 1 {
		candidates = append(candidates, strings.TrimSpace(matches[1]))
	}

	if start, end := strings.Index(raw, "{"), strings.LastIndex(raw, "}"); start >= 0 && end > start {
		candidates = append(candidates, raw[start:end+1])
	}

	for _, candidate := range candidates {
		var v T
		dec := json.NewDecoder(bytes.NewReader([]byte(candidate)))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&v); err == nil {
			return v, true
		}
	}

	var zero T
	return zero, false
}
