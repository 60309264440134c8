package services

import (
	"reflect"
	"testing"
)

func TestParseOptions(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "json_array_round_trip",
			raw:  `["Paris","London","Berlin","Madrid"]`,
			want: []string{"Paris", "London", "Berlin", "Madrid"},
		},
		{
			name: "comma_separated_fallback",
			raw:  "A, B, C",
			want: []string{"A", "B", "C"},
		},
		{
			name: "comma_fallback_drops_empty_pieces",
			raw:  "A,,  ,B",
			want: []string{"A", "B"},
		},
		{
			name: "json_elements_keep_internal_commas",
			raw:  `["1,024 bits","2,048 bits"]`,
			want: []string{"1,024 bits", "2,048 bits"},
		},
		{
			name: "json_null_falls_back_to_split",
			raw:  "null",
			want: []string{"null"},
		},
		{
			name: "single_value",
			raw:  "just one",
			want: []string{"just one"},
		},
		{
			name: "empty_string",
			raw:  "",
			want: nil,
		},
		{
			name: "broken_json_falls_back",
			raw:  `["unterminated`,
			want: []string{`["unterminated`},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseOptions(tc.raw)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ParseOptions(%q) = %#v, want %#v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestDecodeQuizEnvelope(t *testing.T) {
	valid := `{"quiz":[{"question":"Q1","options":["a","b","c","d"],"answer":"a","difficulty":"easy","explanation":"because"}],"related_topics":["X"]}`

	records, err := decodeQuizEnvelope(valid)
	if err != nil {
		t.Fatalf("decodeQuizEnvelope: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	if records[0].Question != "Q1" || records[0].Answer != "a" {
		t.Fatalf("unexpected record: %+v", records[0])
	}
	if len(records[0].Options) != 4 {
		t.Fatalf("options = %d, want 4", len(records[0].Options))
	}
}

func TestDecodeQuizEnvelopeRejects(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{name: "not_json", raw: "Sure! Here is your quiz:"},
		{name: "markdown_fenced", raw: "```json\n{\"quiz\":[]}\n```"},
		{name: "missing_quiz_key", raw: `{"questions":[]}`},
		{name: "null_quiz", raw: `{"quiz":null}`},
		{name: "empty_body", raw: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := decodeQuizEnvelope(tc.raw); err == nil {
				t.Fatalf("decodeQuizEnvelope(%q) = nil error, want failure", tc.raw)
			}
		})
	}
}
