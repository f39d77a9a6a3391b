package utils

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

var fencePattern = regexp.MustCompile("(?i)```(?:json)?")

// common prefixes that LLMs put in front of the payload
var responsePrefixes = []string{
	"Here's the travel plan:",
	"Here is the travel plan:",
	"Here is the itinerary:",
	"The travel plan is:",
	"Travel plan:",
	"Itinerary:",
}

// StripCodeFences removes Markdown ```json / ``` markers.
func StripCodeFences(response string) string {
	return strings.TrimSpace(fencePattern.ReplaceAllString(response, ""))
}

// CleanJSONResponse strips fences and leading prose, then cuts the text to the outermost object.
func CleanJSONResponse(response string) string {
	response = StripCodeFences(response)

	for _, prefix := range responsePrefixes {
		if strings.HasPrefix(response, prefix) {
			response = strings.TrimSpace(strings.TrimPrefix(response, prefix))
			break
		}
	}

	objStart := strings.Index(response, "{")
	if objStart == -1 {
		return response
	}
	if objEnd := FindMatchingBrace(response, objStart); objEnd != -1 {
		return response[objStart : objEnd+1]
	}
	// unterminated object: keep from the first brace so repairs still see the payload
	return response[objStart:]
}

// FindMatchingBrace finds the closing brace for the opening brace at start, ignoring braces in strings.
func FindMatchingBrace(s string, start int) int {
	if start >= len(s) || s[start] != '{' {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

// RepairJSON runs one jsonrepair pass. Text the library cannot repair is returned unchanged,
// which ends the caller's repair loop.
func RepairJSON(s string) string {
	repaired, err := jsonrepair.JSONRepair(s)
	if err != nil {
		return s
	}
	return repaired
}

// ExtractStringField pulls a top-level-looking "field": "value" pair out of text that is not valid JSON.
func ExtractStringField(raw, field string) (string, bool) {
	pattern := regexp.MustCompile(`"` + regexp.QuoteMeta(field) + `"\s*:\s*"((?:[^"\\]|\\.)*)"`)
	match := pattern.FindStringSubmatch(raw)
	if len(match) < 2 {
		return "", false
	}

	var value string
	if err := json.Unmarshal([]byte(`"`+match[1]+`"`), &value); err != nil {
		value = match[1]
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}
