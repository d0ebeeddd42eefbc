package rank

import (
	"fmt"
	"regexp"
	"strings"
)

// Segment is one run of text produced by Highlight. Concatenating the Text
// of all segments in order reproduces the original input exactly.
type Segment struct {
	Text    string `json:"text"`
	IsMatch bool   `json:"is_match"`
}

// Highlight splits text into alternating match and non-match segments for a
// case-insensitive search term, preserving the original casing of matched
// runs. An empty term yields the whole text as a single non-match segment.
func Highlight(text, term string) []Segment {
	term = Normalize(term)
	if term == "" || text == "" {
		return []Segment{{Text: text}}
	}

	re, err := regexp.Compile(fmt.Sprintf("(?i)%s", regexp.QuoteMeta(term)))
	if err != nil {
		return []Segment{{Text: text}}
	}

	var segs []Segment
	rest := text
	for {
		loc := re.FindStringIndex(rest)
		if loc == nil {
			if rest != "" {
				segs = append(segs, Segment{Text: rest})
			}
			break
		}
		if loc[0] > 0 {
			segs = append(segs, Segment{Text: rest[:loc[0]]})
		}
		segs = append(segs, Segment{Text: rest[loc[0]:loc[1]], IsMatch: true})
		rest = rest[loc[1]:]
	}
	if len(segs) == 0 {
		return []Segment{{Text: text}}
	}
	return segs
}

// HighlightMatches reports whether any segment is a match, without building
// the segment slice. Equivalent to a case-insensitive substring test.
func HighlightMatches(text, term string) bool {
	term = Normalize(term)
	if term == "" {
		return false
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(term))
}
