package request_models

import (
	"encoding/json"
	"fmt"
	"strings"
)

type TripRequest struct {
	Destination string      `json:"destination" binding:"required"`
	StartDate   string      `json:"startDate" binding:"required"`
	EndDate     string      `json:"endDate" binding:"required"`
	Budget      *int64      `json:"budget"`
	Travelers   int         `json:"travelers"`
	Preferences Preferences `json:"preferences"`
	Style       string      `json:"style"`
}

// Preferences accepts either a JSON array of strings or a single delimited string.
type Preferences []string

var preferenceSeparators = strings.NewReplacer("、", ",", "，", ",")

func (p *Preferences) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == "" {
		*p = nil
		return nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("preferences must be a string or a list of strings: %w", err)
		}
		*p = cleanPreferences(list)
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return fmt.Errorf("preferences must be a string or a list of strings: %w", err)
	}
	*p = SplitPreferences(single)
	return nil
}

// SplitPreferences splits free text on ASCII and CJK commas.
func SplitPreferences(text string) Preferences {
	return cleanPreferences(strings.Split(preferenceSeparators.Replace(text), ","))
}

func cleanPreferences(items []string) Preferences {
	out := make(Preferences, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
