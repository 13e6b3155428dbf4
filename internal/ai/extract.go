package ai

import (
	"errors"
	"strings"
)

// ErrUnparsableResponse reports that no JSON object could be located in the
// model output. Distinct from completion failure so callers can tell a dead
// service from a chatty one.
var ErrUnparsableResponse = errors.New("no JSON object found in model response")

// ExtractJSONObject returns the first balanced {...} substring of raw. Model
// output routinely arrives wrapped in prose or code fences, so the text is
// scanned rather than unmarshalled directly. Braces inside JSON strings are
// ignored.
func ExtractJSONObject(raw string) (string, error) {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return "", ErrUnparsableResponse
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
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
				return raw[start : i+1], nil
			}
		}
	}

	return "", ErrUnparsableResponse
}
