package usecase

import (
	"context"
	"errors"

	"board-srv/internal/model"
	"board-srv/internal/rank"
	"board-srv/internal/user"
	"board-srv/internal/user/repository"
	"board-srv/pkg/paginator"
)

// AdminList returns a ranked, paginated view of all users for the admin
// dashboard. The search matches usernames only; equally scored users keep
// their registration order.
func (uc *implUseCase) AdminList(ctx context.Context, sc model.Scope, input user.AdminListInput) (user.AdminListOutput, error) {
	if !sc.IsAdmin() {
		return user.AdminListOutput{}, user.ErrAdminRequired
	}

	users, err := uc.repo.ListUsers(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.AdminList: ListUsers: %v", err)
		return user.AdminListOutput{}, err
	}

	ranked := rank.RankUsers(users, input.Search)
	items, pg := paginator.Paginate(ranked, paginator.PaginateQuery{Page: input.Page, Limit: input.Limit})

	return user.AdminListOutput{Users: items, Paginator: pg}, nil
}

// SetBlocked blocks or unblocks an account. Admins cannot block themselves
// or other admins.
func (uc *implUseCase) SetBlocked(ctx context.Context, sc model.Scope, input user.SetBlockedInput) (model.User, error) {
	if !sc.IsAdmin() {
		return model.User{}, user.ErrAdminRequired
	}
	if input.UserID == sc.UserID {
		return model.User{}, user.ErrCannotTargetSelf
	}

	target, err := uc.repo.GetUserByID(ctx, input.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return model.User{}, user.ErrUserNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.SetBlocked: GetUserByID: %v", err)
		return model.User{}, err
	}
	if target.IsAdmin() {
		return model.User{}, user.ErrCannotTargetAdmins
	}

	u, err := uc.repo.SetBlocked(ctx, input.UserID, input.Blocked)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.User{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "user.usecase.SetBlocked: SetBlocked: %v", err)
		return model.User{}, err
	}

	return u, nil
}

// Delete removes an account and everything it authored. Admin accounts and
// the caller's own account are protected.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, input user.DeleteInput) error {
	if !sc.IsAdmin() {
		return user.ErrAdminRequired
	}
	if input.UserID == sc.UserID {
		return user.ErrCannotTargetSelf
	}

	target, err := uc.repo.GetUserByID(ctx, input.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return user.ErrUserNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Delete: GetUserByID: %v", err)
		return err
	}
	if target.IsAdmin() {
		return user.ErrCannotTargetAdmins
	}

	if err := uc.repo.DeleteUser(ctx, input.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "user.usecase.Delete: DeleteUser: %v", err)
		return err
	}

	return nil
}
