package llm

import "strings"

// CleanFences strips Markdown code-fence wrapping that models add around JSON
// payloads: leading/trailing backtick runs plus an optional leading "json"
// language marker (any case).
func CleanFences(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.Trim(text, "`")
	if len(text) >= 4 && strings.EqualFold(text[:4], "json") {
		text = text[4:]
	}
	return strings.TrimSpace(text)
}
