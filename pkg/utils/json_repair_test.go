package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "json fence",
			in:   "```json\n{\"summary\": \"ok\"}\n```",
			want: `{"summary": "ok"}`,
		},
		{
			name: "bare fence with prose",
			in:   "Here is the itinerary:\n```\n{\"a\": {\"b\": 1}} trailing words",
			want: `{"a": {"b": 1}}`,
		},
		{
			name: "braces inside strings",
			in:   `noise {"summary": "use } carefully"} noise`,
			want: `{"summary": "use } carefully"}`,
		},
		{
			name: "unterminated object kept from first brace",
			in:   `prefix {"summary": "cut`,
			want: `{"summary": "cut`,
		},
		{
			name: "no object",
			in:   "just text",
			want: "just text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONResponse(tt.in))
		})
	}
}

func TestFindMatchingBrace(t *testing.T) {
	s := `{"a": "{", "b": {"c": "\"}"}}`
	assert.Equal(t, len(s)-1, FindMatchingBrace(s, 0))
	assert.Equal(t, -1, FindMatchingBrace(`{"a": 1`, 0))
	assert.Equal(t, -1, FindMatchingBrace(`x`, 0))
}

func TestRepairJSON_TrailingCommaMatchesCommaRemoved(t *testing.T) {
	withComma := `{"summary": "Seoul, Korea, in three days", "tips": ["a", "b",], "days": 3,}`
	withoutComma := `{"summary": "Seoul, Korea, in three days", "tips": ["a", "b"], "days": 3}`

	var got, want map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(RepairJSON(withComma)), &got))
	require.NoError(t, json.Unmarshal([]byte(withoutComma), &want))
	assert.Equal(t, want, got)
}

func TestRepairJSON_Fixups(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want map[string]interface{}
	}{
		{
			name: "bare word value",
			in:   `{"category": transport, "ok": true}`,
			want: map[string]interface{}{"category": "transport", "ok": true},
		},
		{
			name: "missing comma between members",
			in:   "{\"cost\": 10\n\"title\": \"x\"\n}",
			want: map[string]interface{}{"cost": float64(10), "title": "x"},
		},
		{
			name: "unquoted key",
			in:   `{summary: "X"}`,
			want: map[string]interface{}{"summary": "X"},
		},
		{
			name: "truncated payload",
			in:   `{"tips": ["a", "b`,
			want: map[string]interface{}{"tips": []interface{}{"a", "b"}},
		},
		{
			name: "null literal kept",
			in:   `{"budget": null,}`,
			want: map[string]interface{}{"budget": nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(RepairJSON(tt.in)), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRepairJSON_ValidInputPreserved(t *testing.T) {
	valid := `{"summary": "a, b]", "itinerary": [{"cost": -1.5e2, "ok": false}]}`
	assert.JSONEq(t, valid, RepairJSON(valid))
}

func TestRepairJSON_KeepsStringContents(t *testing.T) {
	in := `{"summary": "Day 1, then day 2,", "tips": ["a, b",],}`

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(RepairJSON(in)), &got))
	assert.Equal(t, "Day 1, then day 2,", got["summary"])
	assert.Equal(t, []interface{}{"a, b"}, got["tips"])
}

func TestExtractStringField(t *testing.T) {
	value, ok := ExtractStringField(`garbage "summary": "X marks \"the\" spot" more {{`, "summary")
	require.True(t, ok)
	assert.Equal(t, `X marks "the" spot`, value)

	_, ok = ExtractStringField(`no field here`, "summary")
	assert.False(t, ok)

	_, ok = ExtractStringField(`"summary": ""`, "summary")
	assert.False(t, ok)
}
