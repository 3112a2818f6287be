package analyses

import (
	"encoding/json"
	"strings"

	"strategy-backend/internal/shared/telemetry"
)

// ParseDocument interprets raw producer output as a structured document.
// It tries the whole text as JSON first, then the widest brace-delimited
// span (first '{' to last '}', spanning newlines), and finally wraps the
// text verbatim as {"raw_content": raw}. It never fails.
func ParseDocument(domain, raw string) Document {
	if doc, ok := parseMapping(raw); ok {
		return doc
	}

	if span, ok := braceSpan(raw); ok {
		if doc, ok := parseMapping(span); ok {
			return doc
		}
		telemetry.Warn("analysis.parse_fallback", map[string]any{
			"domain": domain,
			"reason": "embedded object did not parse",
		})
		return RawContent(raw)
	}

	telemetry.Warn("analysis.parse_fallback", map[string]any{
		"domain": domain,
		"reason": "no JSON content found",
	})
	return RawContent(raw)
}

func parseMapping(text string) (Document, bool) {
	var doc map[string]any
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil, false
	}
	// json.Unmarshal leaves the map nil for a literal "null".
	if doc == nil {
		return nil, false
	}
	return Document(doc), true
}

// braceSpan returns the substring from the first '{' to the last '}'.
func braceSpan(text string) (string, bool) {
	start := strings.Index(text, "{")
	if start < 0 {
		return "", false
	}
	end := strings.LastIndex(text, "}")
	if end <= start {
		return "", false
	}
	return text[start : end+1], true
}
