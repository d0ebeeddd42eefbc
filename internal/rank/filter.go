package rank

import (
	"strings"

	"board-srv/internal/model"
)

// The filter predicates decide inclusion before scoring. They must agree
// with the scorers on what a match is: every item passing a predicate
// scores at least scoreCommentWordContains under the corresponding scorer.

// PostMatches reports whether the term is a case-insensitive substring of
// the post's selected field. Empty terms match everything.
func PostMatches(p model.Post, term string, field Field) bool {
	t := strings.ToLower(Normalize(term))
	if t == "" {
		return true
	}
	if field == FieldUsername {
		return strings.Contains(strings.ToLower(p.Username), t)
	}
	return strings.Contains(strings.ToLower(p.Content), t)
}

// PostMatchesAnyField reports whether the term matches the post's content,
// author, or any non-deleted comment text. Used by the moderation view.
func PostMatchesAnyField(p model.Post, term string) bool {
	t := strings.ToLower(Normalize(term))
	if t == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Content), t) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Username), t) {
		return true
	}
	for _, c := range p.Comments {
		if !c.IsDeleted && strings.Contains(strings.ToLower(c.Text), t) {
			return true
		}
	}
	return false
}

// UserMatches reports whether the term is a substring of the username.
func UserMatches(u model.User, term string) bool {
	t := strings.ToLower(Normalize(term))
	if t == "" {
		return true
	}
	return strings.Contains(strings.ToLower(u.Username), t)
}

// CommentMatches reports whether a comment matches the term on its text or
// author. Soft-deleted comments never match.
func CommentMatches(c model.Comment, term string) bool {
	if c.IsDeleted {
		return false
	}
	t := strings.ToLower(Normalize(term))
	if t == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Text), t) ||
		strings.Contains(strings.ToLower(c.Username), t)
}
