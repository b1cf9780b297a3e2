// Package jsonextract recovers a JSON object from loosely formatted text.
//
// Language models asked for "JSON only" still wrap their answer in markdown
// fences or prose often enough that the boundary needs a tolerant extractor.
// The contract: strip code fences, scan for the first balanced object, and
// fail with a coded error rather than a raw parse fault.
package jsonextract

import (
	"encoding/json"
	"strings"

	dErrors "loangate/pkg/domain-errors"
)

// FirstObject returns the first well-formed JSON object found in text,
// unmarshalled into a generic map. It tolerates markdown code fences and
// surrounding prose. When no balanced object parses, it returns a
// validation_failed error carrying a short excerpt of the input.
func FirstObject(text string) (map[string]any, error) {
	cleaned := StripFences(text)

	// Fast path: the whole payload is the object.
	var direct map[string]any
	if err := json.Unmarshal([]byte(cleaned), &direct); err == nil {
		return direct, nil
	}

	raw, ok := scanBalanced(cleaned)
	if !ok {
		return nil, dErrors.Newf(dErrors.CodeValidation,
			"no JSON object found in response: %s", excerpt(text))
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return nil, dErrors.Newf(dErrors.CodeValidation,
			"response is not valid JSON: %s", excerpt(raw))
	}
	return obj, nil
}

// StripFences removes markdown code fences (``` or ```json) around text.
func StripFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

// scanBalanced returns the first substring that starts at '{' and closes with
// a matching '}'. Braces inside JSON strings are skipped.
func scanBalanced(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
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
				return text[start : i+1], true
			}
		}
	}
	return "", false
}

const excerptLen = 200

func excerpt(text string) string {
	text = strings.TrimSpace(text)
	if len(text) > excerptLen {
		return text[:excerptLen]
	}
	return text
}
