package usecase

import (
	"context"
	"errors"
	"strings"

	"board-srv/internal/model"
	"board-srv/internal/post"
	"board-srv/internal/post/repository"
	"board-srv/internal/rank"
)

// List returns the ranked, paginated home feed. Posts by pinned authors
// always lead, newest first; the rest follow by relevance.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input post.ListInput) (post.ListOutput, error) {
	if input.Category != "" && !model.IsValidCategory(input.Category) {
		return post.ListOutput{}, post.ErrInvalidCategory
	}

	posts, err := uc.loadPosts(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "post.usecase.List: loadPosts: %v", err)
		return post.ListOutput{}, err
	}

	posts = filterCategory(posts, input.Category)
	ranked := rank.RankFeed(posts, input.Search, input.Field, uc.pinned)

	return toListOutput(ranked, input.Search, input.Page, input.Limit, len(posts)), nil
}

// ListMine returns the caller's own posts, ranked without the pin.
func (uc *implUseCase) ListMine(ctx context.Context, sc model.Scope, input post.ListMineInput) (post.ListOutput, error) {
	if input.Category != "" && !model.IsValidCategory(input.Category) {
		return post.ListOutput{}, post.ErrInvalidCategory
	}

	posts, err := uc.repo.ListPosts(ctx, repository.ListPostsOptions{
		UserID:   sc.UserID,
		Category: input.Category,
	})
	if err != nil {
		uc.l.Errorf(ctx, "post.usecase.ListMine: ListPosts: %v", err)
		return post.ListOutput{}, err
	}

	ranked := rank.RankPosts(posts, input.Search, input.Field)

	return toListOutput(ranked, input.Search, input.Page, input.Limit, len(posts)), nil
}

// Detail returns one post with its visible comments. A comment search term
// narrows and ranks the thread; highlight segments cover the comment text.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, input post.DetailInput) (post.DetailOutput, error) {
	p, err := uc.repo.GetPostByID(ctx, input.PostID)
	if errors.Is(err, repository.ErrNotFound) {
		return post.DetailOutput{}, post.ErrPostNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "post.usecase.Detail: GetPostByID: %v", err)
		return post.DetailOutput{}, err
	}

	comments := rank.RankComments(p.Comments, input.CommentSearch)

	out := post.DetailOutput{
		Post:     p,
		Comments: make([]post.CommentItem, 0, len(comments)),
	}
	term := rank.Normalize(input.CommentSearch)
	for _, c := range comments {
		item := post.CommentItem{Comment: c}
		if term != "" {
			item.Segments = rank.Highlight(c.Text, term)
		}
		out.Comments = append(out.Comments, item)
	}

	return out, nil
}

// Create validates and stores a new post, then emits an activity event.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input post.CreateInput) (model.Post, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return model.Post{}, post.ErrContentRequired
	}
	if len(content) > post.MaxContentLen {
		return model.Post{}, post.ErrContentTooLong
	}
	category := input.Category
	if category == "" {
		category = model.CategoryGeneral
	}
	if !model.IsValidCategory(category) {
		return model.Post{}, post.ErrInvalidCategory
	}

	p, err := uc.repo.CreatePost(ctx, repository.CreatePostOptions{
		UserID:   sc.UserID,
		Username: sc.Username,
		Content:  content,
		Category: category,
	})
	if err != nil {
		uc.l.Errorf(ctx, "post.usecase.Create: CreatePost: %v", err)
		return model.Post{}, err
	}

	uc.invalidate(ctx)
	uc.publishEvent(ctx, model.ActivityEvent{
		Type:     model.EventPostCreated,
		UserID:   sc.UserID,
		Username: sc.Username,
		PostID:   p.ID,
	})

	return p, nil
}

// Update edits a post. Only the owner may edit.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input post.UpdateInput) (model.Post, error) {
	if input.Content != "" && len(input.Content) > post.MaxContentLen {
		return model.Post{}, post.ErrContentTooLong
	}
	if input.Category != "" && !model.IsValidCategory(input.Category) {
		return model.Post{}, post.ErrInvalidCategory
	}

	existing, err := uc.repo.GetPostByID(ctx, input.PostID)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Post{}, post.ErrPostNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "post.usecase.Update: GetPostByID: %v", err)
		return model.Post{}, err
	}
	if existing.UserID != sc.UserID {
		return model.Post{}, post.ErrNotOwner
	}

	p, err := uc.repo.UpdatePost(ctx, repository.UpdatePostOptions{
		PostID:   input.PostID,
		Content:  strings.TrimSpace(input.Content),
		Category: input.Category,
	})
	if err != nil {
		uc.l.Errorf(ctx, "post.usecase.Update: UpdatePost: %v", err)
		return model.Post{}, err
	}

	uc.invalidate(ctx)
	return p, nil
}

// Delete removes a post. The owner or an admin may delete.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, input post.DeleteInput) error {
	existing, err := uc.repo.GetPostByID(ctx, input.PostID)
	if errors.Is(err, repository.ErrNotFound) {
		return post.ErrPostNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "post.usecase.Delete: GetPostByID: %v", err)
		return err
	}
	if existing.UserID != sc.UserID && !sc.IsAdmin() {
		return post.ErrNotOwner
	}

	if err := uc.repo.DeletePost(ctx, input.PostID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return post.ErrPostNotFound
		}
		uc.l.Errorf(ctx, "post.usecase.Delete: DeletePost: %v", err)
		return err
	}

	uc.invalidate(ctx)
	uc.publishEvent(ctx, model.ActivityEvent{
		Type:     model.EventPostDeleted,
		UserID:   sc.UserID,
		Username: sc.Username,
		PostID:   input.PostID,
	})

	return nil
}
