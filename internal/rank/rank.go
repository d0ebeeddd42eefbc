// Package rank implements the relevance ranking used by post, user and
// comment search. Scores are heuristic integers with no absolute meaning;
// only their relative order matters. All functions are pure and never
// mutate their inputs.
package rank

import (
	"strings"

	"board-srv/internal/model"
)

// Field selects which attribute of an item a query matches against.
type Field string

const (
	FieldContent  Field = "content"
	FieldUsername Field = "username"
)

// ParseField maps a request value to a Field, defaulting to content.
func ParseField(s string) Field {
	if Field(s) == FieldUsername {
		return FieldUsername
	}
	return FieldContent
}

// Score weights. These mirror the ranking the web client shipped with and
// must not change independently of it, or result order will visibly shift.
const (
	scoreExact    = 1000
	scorePrefix   = 500
	scoreContains = 100

	scoreUsernameBonus = 200 // cross-field bonus when ranking on another field
	scoreCommentMatch  = 150 // per non-deleted comment containing the term

	scoreWordMatch   = 100 // per content word containing a query word
	scorePrefixAgain = 50  // accumulates on top of scorePrefix for content

	scoreCommentWordPrefix   = 50
	scoreCommentWordContains = 25

	// minQueryWordLen is the exclusive lower bound: only query words longer
	// than this participate in word-level matching.
	minQueryWordLen = 2
)

// Normalize trims a search term. An empty result means "no filtering".
func Normalize(term string) string {
	return strings.TrimSpace(term)
}

// scoreText applies the base rules to a single folded value:
// exact +1000, prefix +500, substring +100. The rules accumulate.
func scoreText(value, term string) int {
	score := 0
	if value == term {
		score += scoreExact
	}
	if strings.HasPrefix(value, term) {
		score += scorePrefix
	}
	if strings.Contains(value, term) {
		score += scoreContains
	}
	return score
}

// scoreContentWords applies word-level accumulation to a folded content
// value: +100 for every content word containing a query word longer than
// two characters, and +50 again when the whole value starts with the term.
// With multi-word queries this compounds and can outweigh an exact match
// elsewhere; that is long-standing observable behavior, kept as is.
func scoreContentWords(value, term string) int {
	score := 0
	words := strings.Fields(value)
	for _, qw := range strings.Fields(term) {
		if len(qw) <= minQueryWordLen {
			continue
		}
		for _, w := range words {
			if strings.Contains(w, qw) {
				score += scoreWordMatch
			}
		}
	}
	if strings.HasPrefix(value, term) {
		score += scorePrefixAgain
	}
	return score
}

// ScorePost ranks a post against a term on a single field, as the feed and
// my-posts views do. Content searches include word-level accumulation.
func ScorePost(p model.Post, term string, field Field) int {
	t := strings.ToLower(term)
	if field == FieldUsername {
		return scoreText(strings.ToLower(p.Username), t)
	}
	content := strings.ToLower(p.Content)
	return scoreText(content, t) + scoreContentWords(content, t)
}

// ScorePostAllFields ranks a post for the moderation view, where a query
// matches content, author and comment thread at once: base content rules
// only (no word-level accumulation, unlike the feed), +200 when the
// username contains the term, and +150 per non-deleted comment containing
// it. Comment matches score the post, not the comment.
func ScorePostAllFields(p model.Post, term string) int {
	t := strings.ToLower(term)
	content := strings.ToLower(p.Content)

	score := scoreText(content, t)
	if strings.Contains(strings.ToLower(p.Username), t) {
		score += scoreUsernameBonus
	}
	for _, c := range p.Comments {
		if !c.IsDeleted && strings.Contains(strings.ToLower(c.Text), t) {
			score += scoreCommentMatch
		}
	}
	return score
}

// ScoreUser ranks a user by username.
func ScoreUser(u model.User, term string) int {
	return scoreText(strings.ToLower(u.Username), strings.ToLower(term))
}

// ScoreComment ranks a comment within a single post's thread: base rules on
// the text, +200 when the author's username contains the term, and word
// bonuses of +50/+25 for comment words starting with/containing the term.
func ScoreComment(c model.Comment, term string) int {
	t := strings.ToLower(term)
	text := strings.ToLower(c.Text)

	score := scoreText(text, t)
	if strings.Contains(strings.ToLower(c.Username), t) {
		score += scoreUsernameBonus
	}
	for _, w := range strings.Fields(text) {
		if strings.HasPrefix(w, t) {
			score += scoreCommentWordPrefix
		}
		if strings.Contains(w, t) {
			score += scoreCommentWordContains
		}
	}
	return score
}
