package completion

import (
	"encoding/json"
	"strings"
)

// ExtractObject pulls the first decodable JSON object out of model output.
// Responses are instructed to be JSON-only but may still carry markdown
// fences or surrounding prose, and the prose can itself embed example
// objects that are not valid JSON. The scan walks balanced brace-delimited
// spans in order and strict-parses each one; the first span that decodes
// wins. Returns false when no span decodes.
func ExtractObject(text string) (map[string]any, bool) {
	text = stripFences(text)

	for start := 0; ; {
		open := strings.Index(text[start:], "{")
		if open < 0 {
			return nil, false
		}
		open += start

		end, ok := balancedEnd(text, open)
		if !ok {
			return nil, false
		}

		var m map[string]any
		if err := json.Unmarshal([]byte(text[open:end+1]), &m); err == nil && m != nil {
			return m, true
		}

		start = open + 1
	}
}

// balancedEnd returns the index of the brace closing the object opened at
// open, honoring JSON string literals and escapes.
func balancedEnd(text string, open int) (int, bool) {
	depth := 0
	inString := false
	escaped := false

	for i := open; i < len(text); i++ {
		c := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}

	return 0, false
}

// stripFences removes a leading markdown code fence if present.
func stripFences(text string) string {
	text = strings.TrimSpace(text)

	for _, fence := range []string{"```json", "```"} {
		if strings.HasPrefix(text, fence) {
			text = strings.TrimPrefix(text, fence)
			if idx := strings.LastIndex(text, "```"); idx >= 0 {
				text = text[:idx]
			}
			break
		}
	}

	return strings.TrimSpace(text)
}
