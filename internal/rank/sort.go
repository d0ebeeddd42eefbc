package rank

import (
	"slices"
	"sort"

	"board-srv/internal/model"
)

// RankPosts filters posts on one field, scores them and orders the result
// by score descending with a recency tie-break. With an empty term no
// filtering happens and the posts come back newest first. The input slice
// is never reordered; callers may keep rendering the unfiltered list.
func RankPosts(posts []model.Post, term string, field Field) []model.Post {
	term = Normalize(term)

	if term == "" {
		out := slices.Clone(posts)
		sortByRecency(out)
		return out
	}

	out := make([]model.Post, 0, len(posts))
	for _, p := range posts {
		if PostMatches(p, term, field) {
			out = append(out, p)
		}
	}
	sortScoredPosts(out, func(p model.Post) int { return ScorePost(p, term, field) })
	return out
}

// RankPostsAllFields is RankPosts for the moderation view: the term matches
// content, author and comment thread, with the cross-field score bonuses.
func RankPostsAllFields(posts []model.Post, term string) []model.Post {
	term = Normalize(term)

	if term == "" {
		out := slices.Clone(posts)
		sortByRecency(out)
		return out
	}

	out := make([]model.Post, 0, len(posts))
	for _, p := range posts {
		if PostMatchesAnyField(p, term) {
			out = append(out, p)
		}
	}
	sortScoredPosts(out, func(p model.Post) int { return ScorePostAllFields(p, term) })
	return out
}

// RankFeed orders the home feed: posts authored by a pinned username come
// first, newest first and untouched by relevance, then the remaining posts
// ranked by RankPosts. The pin survives any search term.
func RankFeed(posts []model.Post, term string, field Field, pinned []string) []model.Post {
	var pinnedPosts, regular []model.Post
	for _, p := range posts {
		if slices.Contains(pinned, p.Username) {
			pinnedPosts = append(pinnedPosts, p)
		} else {
			regular = append(regular, p)
		}
	}

	// Pinned authors are ranked by recency only, but still honor the
	// filter: a search narrows them like everything else.
	t := Normalize(term)
	if t != "" {
		kept := pinnedPosts[:0]
		for _, p := range pinnedPosts {
			if PostMatches(p, t, field) {
				kept = append(kept, p)
			}
		}
		pinnedPosts = kept
	}
	sortByRecency(pinnedPosts)

	return append(pinnedPosts, RankPosts(regular, term, field)...)
}

// RankUsers filters users by username substring and orders by score
// descending. No recency tie-break is defined for users; equal scores keep
// their input order.
func RankUsers(users []model.User, term string) []model.User {
	term = Normalize(term)
	if term == "" {
		return slices.Clone(users)
	}

	out := make([]model.User, 0, len(users))
	for _, u := range users {
		if UserMatches(u, term) {
			out = append(out, u)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return ScoreUser(out[i], term) > ScoreUser(out[j], term)
	})
	return out
}

// RankComments filters one post's comments and orders matches by score.
// Soft-deleted comments are excluded even with an empty term. Equal scores
// keep their input order.
func RankComments(comments []model.Comment, term string) []model.Comment {
	term = Normalize(term)

	out := make([]model.Comment, 0, len(comments))
	for _, c := range comments {
		if CommentMatches(c, term) {
			out = append(out, c)
		}
	}
	if term == "" {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		return ScoreComment(out[i], term) > ScoreComment(out[j], term)
	})
	return out
}

func sortByRecency(posts []model.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}

// sortScoredPosts orders by score descending, breaking ties by createdAt
// descending so fresher posts surface first among equals.
func sortScoredPosts(posts []model.Post, score func(model.Post) int) {
	sort.SliceStable(posts, func(i, j int) bool {
		si, sj := score(posts[i]), score(posts[j])
		if si != sj {
			return si > sj
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}
