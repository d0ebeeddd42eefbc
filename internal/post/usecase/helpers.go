package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"board-srv/internal/model"
	"board-srv/internal/post"
	"board-srv/internal/post/repository"
	"board-srv/internal/rank"
	"board-srv/pkg/paginator"
)

// loadPosts returns the full post list, cache-first. A cache miss falls
// back to Postgres and refills the cache best-effort.
func (uc *implUseCase) loadPosts(ctx context.Context) ([]model.Post, error) {
	posts, err := uc.cache.GetPosts(ctx)
	if err == nil {
		return posts, nil
	}
	if !errors.Is(err, repository.ErrCacheMiss) {
		uc.l.Warnf(ctx, "post.usecase.loadPosts: cache read failed: %v", err)
	}

	posts, err = uc.repo.ListPosts(ctx, repository.ListPostsOptions{})
	if err != nil {
		return nil, err
	}

	if err := uc.cache.SetPosts(ctx, posts); err != nil {
		uc.l.Warnf(ctx, "post.usecase.loadPosts: cache refill failed: %v", err)
	}
	return posts, nil
}

// invalidate drops the cached list after a write. Failures only log; the
// TTL bounds how stale a reader can get.
func (uc *implUseCase) invalidate(ctx context.Context) {
	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.l.Warnf(ctx, "post.usecase.invalidate: %v", err)
	}
}

// publishEvent emits an activity event, best-effort.
func (uc *implUseCase) publishEvent(ctx context.Context, ev model.ActivityEvent) {
	ev.At = time.Now()
	body, err := json.Marshal(ev)
	if err != nil {
		uc.l.Errorf(ctx, "post.usecase.publishEvent: marshal: %v", err)
		return
	}
	if err := uc.producer.Publish([]byte(ev.Type), body); err != nil {
		uc.l.Errorf(ctx, "post.usecase.publishEvent: publish %s: %v", ev.Type, err)
	}
}

// filterCategory keeps posts in the given category; empty keeps all.
func filterCategory(posts []model.Post, category string) []model.Post {
	if category == "" {
		return posts
	}
	out := make([]model.Post, 0, len(posts))
	for _, p := range posts {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// toListOutput paginates ranked posts and attaches content highlight
// segments when a term was active. totalUnfiltered counts the collection
// before the search narrowed it.
func toListOutput(ranked []model.Post, term string, page int, limit int64, totalUnfiltered int) post.ListOutput {
	items, pg := paginator.Paginate(ranked, paginator.PaginateQuery{Page: page, Limit: limit})

	out := post.ListOutput{
		Items:           make([]post.PostItem, 0, len(items)),
		Paginator:       pg,
		TotalUnfiltered: int64(totalUnfiltered),
	}
	term = rank.Normalize(term)
	for _, p := range items {
		item := post.PostItem{Post: p}
		if term != "" {
			item.Segments = rank.Highlight(p.Content, term)
		}
		out.Items = append(out.Items, item)
	}
	return out
}
