package usecase

import (
	"context"

	"board-srv/internal/model"
	"board-srv/internal/post"
	"board-srv/internal/post/repository"
	"board-srv/internal/rank"
)

// AdminList returns all posts for the moderation view. The search term
// matches content, author and comment threads; comment matches raise the
// post's score without surfacing the comment itself.
func (uc *implUseCase) AdminList(ctx context.Context, sc model.Scope, input post.AdminListInput) (post.ListOutput, error) {
	if !sc.IsAdmin() {
		return post.ListOutput{}, post.ErrAdminRequired
	}

	posts, err := uc.repo.ListPosts(ctx, repository.ListPostsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "post.usecase.AdminList: ListPosts: %v", err)
		return post.ListOutput{}, err
	}

	ranked := rank.RankPostsAllFields(posts, input.Search)

	return toListOutput(ranked, input.Search, input.Page, input.Limit, len(posts)), nil
}
