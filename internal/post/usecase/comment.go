package usecase

import (
	"context"
	"errors"
	"strings"

	"board-srv/internal/model"
	"board-srv/internal/post"
	"board-srv/internal/post/repository"
)

// AddComment validates and stores a comment on a post.
func (uc *implUseCase) AddComment(ctx context.Context, sc model.Scope, input post.AddCommentInput) (model.Comment, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return model.Comment{}, post.ErrCommentRequired
	}
	if len(text) > post.MaxCommentLen {
		return model.Comment{}, post.ErrCommentTooLong
	}

	if _, err := uc.repo.GetPostByID(ctx, input.PostID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Comment{}, post.ErrPostNotFound
		}
		uc.l.Errorf(ctx, "post.usecase.AddComment: GetPostByID: %v", err)
		return model.Comment{}, err
	}

	c, err := uc.repo.CreateComment(ctx, repository.CreateCommentOptions{
		PostID:   input.PostID,
		UserID:   sc.UserID,
		Username: sc.Username,
		Text:     text,
	})
	if err != nil {
		uc.l.Errorf(ctx, "post.usecase.AddComment: CreateComment: %v", err)
		return model.Comment{}, err
	}

	uc.invalidate(ctx)
	uc.publishEvent(ctx, model.ActivityEvent{
		Type:      model.EventCommentCreated,
		UserID:    sc.UserID,
		Username:  sc.Username,
		PostID:    input.PostID,
		CommentID: c.ID,
	})

	return c, nil
}

// DeleteComment soft-deletes a comment. The comment author, the post owner
// or an admin may delete.
func (uc *implUseCase) DeleteComment(ctx context.Context, sc model.Scope, input post.DeleteCommentInput) error {
	c, err := uc.repo.GetCommentByID(ctx, input.CommentID)
	if errors.Is(err, repository.ErrNotFound) {
		return post.ErrCommentNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "post.usecase.DeleteComment: GetCommentByID: %v", err)
		return err
	}
	if c.PostID != input.PostID {
		return post.ErrCommentNotFound
	}

	if c.UserID != sc.UserID && !sc.IsAdmin() {
		p, err := uc.repo.GetPostByID(ctx, input.PostID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return post.ErrPostNotFound
			}
			uc.l.Errorf(ctx, "post.usecase.DeleteComment: GetPostByID: %v", err)
			return err
		}
		if p.UserID != sc.UserID {
			return post.ErrNotOwner
		}
	}

	if err := uc.repo.SoftDeleteComment(ctx, input.CommentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return post.ErrCommentNotFound
		}
		uc.l.Errorf(ctx, "post.usecase.DeleteComment: SoftDeleteComment: %v", err)
		return err
	}

	uc.invalidate(ctx)
	uc.publishEvent(ctx, model.ActivityEvent{
		Type:      model.EventCommentDeleted,
		UserID:    sc.UserID,
		Username:  sc.Username,
		PostID:    input.PostID,
		CommentID: input.CommentID,
	})

	return nil
}
