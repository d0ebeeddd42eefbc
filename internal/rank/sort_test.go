package rank

import (
	"testing"
	"time"

	"board-srv/internal/model"
)

func postAt(id, username, content string, age time.Duration) model.Post {
	return model.Post{
		ID:        id,
		Username:  username,
		Content:   content,
		CreatedAt: time.Now().Add(-age),
	}
}

func ids(posts []model.Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.ID
	}
	return out
}

func assertOrder(t *testing.T, got []model.Post, want ...string) {
	t.Helper()
	g := ids(got)
	if len(g) != len(want) {
		t.Fatalf("got %d posts %v, want %v", len(g), g, want)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("order %v, want %v", g, want)
		}
	}
}

func TestRankPostsEmptyTermSortsByRecency(t *testing.T) {
	posts := []model.Post{
		postAt("old", "a", "first post", 3*time.Hour),
		postAt("new", "b", "latest post", time.Minute),
		postAt("mid", "c", "middle post", time.Hour),
	}

	got := RankPosts(posts, "", FieldContent)
	assertOrder(t, got, "new", "mid", "old")

	// input order untouched
	if posts[0].ID != "old" {
		t.Error("RankPosts mutated its input")
	}
}

func TestRankPostsFiltersAndOrdersByScore(t *testing.T) {
	posts := []model.Post{
		postAt("contains", "a", "we all like golang here", time.Minute),
		postAt("exact", "b", "golang", time.Hour),
		postAt("prefix", "c", "golang weekly digest", 2*time.Hour),
		postAt("miss", "d", "nothing relevant", time.Second),
	}

	got := RankPosts(posts, "golang", FieldContent)
	assertOrder(t, got, "exact", "prefix", "contains")
}

func TestRankPostsTieBreaksOnRecency(t *testing.T) {
	posts := []model.Post{
		postAt("older", "a", "golang tips", 2*time.Hour),
		postAt("newer", "b", "golang tips", time.Minute),
	}

	got := RankPosts(posts, "golang", FieldContent)
	assertOrder(t, got, "newer", "older")
}

func TestRankPostsUsernameField(t *testing.T) {
	posts := []model.Post{
		postAt("p1", "alice", "golang content", time.Minute),
		postAt("p2", "bob", "alice wrote this", time.Minute),
	}

	got := RankPosts(posts, "alice", FieldUsername)
	assertOrder(t, got, "p1")
}

func TestRankFeedPinsAdminPostsFirst(t *testing.T) {
	posts := []model.Post{
		postAt("exact", "alice", "golang", time.Minute),
		postAt("adminOld", "admin", "a golang note", 5*time.Hour),
		postAt("adminNew", "admin", "golang announcement", time.Hour),
		postAt("regular", "bob", "some golang talk", 2*time.Minute),
	}

	got := RankFeed(posts, "golang", FieldContent, []string{"admin"})

	// pinned posts lead in recency order regardless of relevance, then the
	// regular posts by score.
	assertOrder(t, got, "adminNew", "adminOld", "exact", "regular")
}

func TestRankFeedPinnedPostsStillFiltered(t *testing.T) {
	posts := []model.Post{
		postAt("adminHit", "admin", "golang news", time.Hour),
		postAt("adminMiss", "admin", "unrelated notice", time.Minute),
		postAt("regular", "bob", "golang talk", time.Minute),
	}

	got := RankFeed(posts, "golang", FieldContent, []string{"admin"})
	assertOrder(t, got, "adminHit", "regular")
}

func TestRankFeedEmptyTerm(t *testing.T) {
	posts := []model.Post{
		postAt("regularNew", "bob", "hello", time.Minute),
		postAt("adminOld", "admin", "notice", 4*time.Hour),
	}

	got := RankFeed(posts, "", FieldContent, []string{"admin"})
	assertOrder(t, got, "adminOld", "regularNew")
}

func TestRankPostsAllFieldsCommentMatches(t *testing.T) {
	noComments := postAt("plain", "a", "all the golang stuff", time.Minute)

	commented := postAt("commented", "b", "nothing relevant", time.Hour)
	commented.Comments = []model.Comment{
		{Text: "golang rules", IsDeleted: false},
		{Text: "golang indeed", IsDeleted: false},
	}

	deletedOnly := postAt("deletedOnly", "c", "still nothing", time.Minute)
	deletedOnly.Comments = []model.Comment{
		{Text: "golang here", IsDeleted: true},
	}

	got := RankPostsAllFields([]model.Post{noComments, commented, deletedOnly}, "golang")

	// two live comment matches (300) beat a content substring (100);
	// a post matched only by a deleted comment drops out entirely.
	assertOrder(t, got, "commented", "plain")
}

func TestRankPostsAllFieldsAuthorOutranksRepeatedWords(t *testing.T) {
	contentHeavy := postAt("contentHeavy", "bob", "more golang golang golang", time.Minute)
	byAuthor := postAt("byAuthor", "golang_fan", "nothing relevant", time.Hour)

	got := RankPostsAllFields([]model.Post{contentHeavy, byAuthor}, "golang")

	// the username bonus (200) leads a content substring (100) no matter
	// how often the content repeats the term.
	assertOrder(t, got, "byAuthor", "contentHeavy")
}

func TestRankUsers(t *testing.T) {
	users := []model.User{
		{Username: "superadmin"},
		{Username: "admin"},
		{Username: "administrator"},
		{Username: "alice"},
	}

	got := RankUsers(users, "admin")
	if len(got) != 3 {
		t.Fatalf("got %d users, want 3", len(got))
	}
	want := []string{"admin", "administrator", "superadmin"}
	for i, u := range got {
		if u.Username != want[i] {
			t.Errorf("position %d: got %q, want %q", i, u.Username, want[i])
		}
	}
}

func TestRankUsersStableOnTies(t *testing.T) {
	users := []model.User{
		{Username: "bob_admin"},
		{Username: "ann_admin"},
	}

	got := RankUsers(users, "admin")
	if got[0].Username != "bob_admin" || got[1].Username != "ann_admin" {
		t.Errorf("equal scores should keep input order, got %q then %q",
			got[0].Username, got[1].Username)
	}
}

func TestRankCommentsExcludesDeleted(t *testing.T) {
	comments := []model.Comment{
		{ID: "live", Text: "golang is fun"},
		{ID: "gone", Text: "golang too", IsDeleted: true},
	}

	got := RankComments(comments, "golang")
	if len(got) != 1 || got[0].ID != "live" {
		t.Fatalf("got %v", got)
	}

	// deleted comments stay hidden even without a search term
	got = RankComments(comments, "")
	if len(got) != 1 || got[0].ID != "live" {
		t.Fatalf("empty term: got %v", got)
	}
}

func TestRankCommentsOrdering(t *testing.T) {
	comments := []model.Comment{
		{ID: "contains", Text: "we love golang here"},
		{ID: "exact", Text: "golang"},
		{ID: "author", Text: "unrelated", Username: "golang_fan"},
	}

	got := RankComments(comments, "golang")
	if len(got) != 3 {
		t.Fatalf("got %d comments, want 3", len(got))
	}
	// the author bonus (200) narrowly beats a plain substring (175)
	want := []string{"exact", "author", "contains"}
	for i, c := range got {
		if c.ID != want[i] {
			t.Errorf("position %d: got %q, want %q", i, c.ID, want[i])
		}
	}
}
