package rank

import (
	"testing"

	"board-srv/internal/model"
)

func TestPostMatches(t *testing.T) {
	p := model.Post{Username: "alice", Content: "learning golang today"}

	tests := []struct {
		name  string
		term  string
		field Field
		want  bool
	}{
		{"empty term matches", "", FieldContent, true},
		{"whitespace term matches", "   ", FieldContent, true},
		{"content substring", "golang", FieldContent, true},
		{"content case insensitive", "GOLANG", FieldContent, true},
		{"content miss", "rust", FieldContent, false},
		{"username substring", "lic", FieldUsername, true},
		{"username does not match content", "golang", FieldUsername, false},
		{"content does not match username", "alice", FieldContent, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PostMatches(p, tc.term, tc.field); got != tc.want {
				t.Errorf("PostMatches(term=%q, field=%q) = %v, want %v", tc.term, tc.field, got, tc.want)
			}
		})
	}
}

func TestPostMatchesAnyField(t *testing.T) {
	p := model.Post{
		Username: "bob",
		Content:  "morning thoughts",
		Comments: []model.Comment{
			{Text: "try golang", IsDeleted: false},
			{Text: "secret rust", IsDeleted: true},
		},
	}

	if !PostMatchesAnyField(p, "morning") {
		t.Error("content match missed")
	}
	if !PostMatchesAnyField(p, "bob") {
		t.Error("username match missed")
	}
	if !PostMatchesAnyField(p, "golang") {
		t.Error("live comment match missed")
	}
	if PostMatchesAnyField(p, "rust") {
		t.Error("deleted comment should not match")
	}
	if PostMatchesAnyField(p, "zzz") {
		t.Error("unexpected match")
	}
}

func TestCommentMatches(t *testing.T) {
	live := model.Comment{Text: "hello world", Username: "carol"}
	gone := model.Comment{Text: "hello world", Username: "carol", IsDeleted: true}

	if !CommentMatches(live, "world") {
		t.Error("text match missed")
	}
	if !CommentMatches(live, "carol") {
		t.Error("username match missed")
	}
	if !CommentMatches(live, "") {
		t.Error("empty term should match live comments")
	}
	if CommentMatches(gone, "world") || CommentMatches(gone, "") {
		t.Error("deleted comments must never match")
	}
}

// Every item a predicate admits must score above zero, otherwise matches
// could sort below items the caller never sees.
func TestFilterAgreesWithScorer(t *testing.T) {
	posts := []model.Post{
		{Content: "golang", Username: "a"},
		{Content: "intro to golang", Username: "b"},
		{Content: "x", Username: "golang_guy"},
	}
	for _, p := range posts {
		if PostMatches(p, "golang", FieldContent) && ScorePost(p, "golang", FieldContent) == 0 {
			t.Errorf("post %+v passes content filter but scores 0", p)
		}
		if PostMatches(p, "golang", FieldUsername) && ScorePost(p, "golang", FieldUsername) == 0 {
			t.Errorf("post %+v passes username filter but scores 0", p)
		}
		if PostMatchesAnyField(p, "golang") && ScorePostAllFields(p, "golang") == 0 {
			t.Errorf("post %+v passes any-field filter but scores 0", p)
		}
	}

	comments := []model.Comment{
		{Text: "golang"},
		{Text: "x", Username: "golang_guy"},
	}
	for _, c := range comments {
		if CommentMatches(c, "golang") && ScoreComment(c, "golang") == 0 {
			t.Errorf("comment %+v passes filter but scores 0", c)
		}
	}
}
