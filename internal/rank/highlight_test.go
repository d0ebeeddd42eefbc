package rank

import (
	"strings"
	"testing"
)

func joinSegments(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Text)
	}
	return b.String()
}

func TestHighlight(t *testing.T) {
	tests := []struct {
		name string
		text string
		term string
		want []Segment
	}{
		{
			name: "single match in the middle",
			text: "we use golang daily",
			term: "golang",
			want: []Segment{
				{Text: "we use "},
				{Text: "golang", IsMatch: true},
				{Text: " daily"},
			},
		},
		{
			name: "case preserved in matched run",
			text: "GoLang is fine",
			term: "golang",
			want: []Segment{
				{Text: "GoLang", IsMatch: true},
				{Text: " is fine"},
			},
		},
		{
			name: "multiple matches",
			text: "go go gadget",
			term: "go",
			want: []Segment{
				{Text: "go", IsMatch: true},
				{Text: " "},
				{Text: "go", IsMatch: true},
				{Text: " gadget"},
			},
		},
		{
			name: "match inside a longer word",
			text: "go go godget",
			term: "go",
			want: []Segment{
				{Text: "go", IsMatch: true},
				{Text: " "},
				{Text: "go", IsMatch: true},
				{Text: " "},
				{Text: "go", IsMatch: true},
				{Text: "dget"},
			},
		},
		{
			name: "empty term yields single non-match",
			text: "anything at all",
			term: "",
			want: []Segment{{Text: "anything at all"}},
		},
		{
			name: "no occurrence yields single non-match",
			text: "nothing relevant",
			term: "golang",
			want: []Segment{{Text: "nothing relevant"}},
		},
		{
			name: "regex metacharacters are literal",
			text: "cost is $5.00 (roughly)",
			term: "$5.00 (roughly)",
			want: []Segment{
				{Text: "cost is "},
				{Text: "$5.00 (roughly)", IsMatch: true},
			},
		},
		{
			name: "whole text matches",
			text: "golang",
			term: "golang",
			want: []Segment{{Text: "golang", IsMatch: true}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Highlight(tc.text, tc.term)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d segments %v, want %v", len(got), got, tc.want)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Errorf("segment %d: got %+v, want %+v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestHighlightRoundTrips(t *testing.T) {
	texts := []string{
		"plain text without matches",
		"golang golang golang",
		"MiXeD CaSe GoLaNg",
		"",
		"unicode: héllo wörld golang",
		"ends with golang",
		"golang starts it",
	}
	terms := []string{"golang", "GOLANG", "o", "", "zzz", "$^("}

	for _, text := range texts {
		for _, term := range terms {
			segs := Highlight(text, term)
			if got := joinSegments(segs); got != text {
				t.Errorf("Highlight(%q, %q) does not round-trip: got %q", text, term, got)
			}
			for i, s := range segs {
				if s.Text == "" && !(len(segs) == 1 && text == "") {
					t.Errorf("Highlight(%q, %q): empty segment at %d", text, term, i)
				}
			}
		}
	}
}

func TestHighlightMatches(t *testing.T) {
	if !HighlightMatches("we use GoLang", "golang") {
		t.Error("expected match")
	}
	if HighlightMatches("we use golang", "") {
		t.Error("empty term should not count as a match")
	}
	if HighlightMatches("nothing", "golang") {
		t.Error("unexpected match")
	}
}
