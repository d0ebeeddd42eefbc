package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"board-srv/internal/model"
	"board-srv/internal/user"
	"board-srv/internal/user/repository"
	"board-srv/pkg/util"
)

// Register creates an account and signs it in.
func (uc *implUseCase) Register(ctx context.Context, input user.RegisterInput) (user.AuthOutput, error) {
	if err := util.IsUsername(input.Username); err != nil {
		return user.AuthOutput{}, user.ErrInvalidUsername
	}
	if err := util.IsPassword(input.Password); err != nil {
		return user.AuthOutput{}, user.ErrInvalidPassword
	}

	hash, err := uc.encrypter.HashPassword(input.Password)
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Register: HashPassword: %v", err)
		return user.AuthOutput{}, err
	}

	u, err := uc.repo.CreateUser(ctx, repository.CreateUserOptions{
		Username:     input.Username,
		PasswordHash: hash,
		Role:         model.RoleUser,
	})
	if errors.Is(err, repository.ErrDuplicate) {
		return user.AuthOutput{}, user.ErrUsernameTaken
	}
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Register: CreateUser: %v", err)
		return user.AuthOutput{}, err
	}

	token, err := uc.tokens.GenerateToken(u.ID, u.Username, u.Role)
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Register: GenerateToken: %v", err)
		return user.AuthOutput{}, err
	}

	uc.publishEvent(ctx, model.ActivityEvent{
		Type:     model.EventUserRegistered,
		UserID:   u.ID,
		Username: u.Username,
	})

	return user.AuthOutput{Token: token, User: u}, nil
}

// Login verifies credentials and signs the user in. Blocked accounts are
// rejected after the password check so the error does not leak which
// usernames exist.
func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.AuthOutput, error) {
	u, err := uc.repo.GetUserByUsername(ctx, input.Username)
	if errors.Is(err, repository.ErrNotFound) {
		return user.AuthOutput{}, user.ErrWrongCredentials
	}
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Login: GetUserByUsername: %v", err)
		return user.AuthOutput{}, err
	}

	if err := uc.encrypter.ComparePassword(u.PasswordHash, input.Password); err != nil {
		return user.AuthOutput{}, user.ErrWrongCredentials
	}

	if u.IsBlocked {
		return user.AuthOutput{}, user.ErrAccountBlocked
	}

	now := time.Now()
	if err := uc.repo.UpdateLastLogin(ctx, u.ID, now); err != nil {
		uc.l.Warnf(ctx, "user.usecase.Login: UpdateLastLogin: %v", err)
	}
	u.LastLogin = &now

	token, err := uc.tokens.GenerateToken(u.ID, u.Username, u.Role)
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Login: GenerateToken: %v", err)
		return user.AuthOutput{}, err
	}

	uc.publishEvent(ctx, model.ActivityEvent{
		Type:     model.EventUserLogin,
		UserID:   u.ID,
		Username: u.Username,
	})

	return user.AuthOutput{Token: token, User: u}, nil
}

// Me returns the caller's account.
func (uc *implUseCase) Me(ctx context.Context, sc model.Scope) (model.User, error) {
	u, err := uc.repo.GetUserByID(ctx, sc.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return model.User{}, user.ErrUserNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Me: GetUserByID: %v", err)
		return model.User{}, err
	}
	return u, nil
}

// ChangePassword verifies the current password then stores a new hash.
func (uc *implUseCase) ChangePassword(ctx context.Context, sc model.Scope, input user.ChangePasswordInput) error {
	if err := util.IsPassword(input.NewPassword); err != nil {
		return user.ErrInvalidPassword
	}

	u, err := uc.repo.GetUserByID(ctx, sc.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return user.ErrUserNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.ChangePassword: GetUserByID: %v", err)
		return err
	}

	if err := uc.encrypter.ComparePassword(u.PasswordHash, input.CurrentPassword); err != nil {
		return user.ErrWrongCredentials
	}

	hash, err := uc.encrypter.HashPassword(input.NewPassword)
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.ChangePassword: HashPassword: %v", err)
		return err
	}

	if err := uc.repo.UpdatePassword(ctx, u.ID, hash); err != nil {
		uc.l.Errorf(ctx, "user.usecase.ChangePassword: UpdatePassword: %v", err)
		return err
	}

	return nil
}

// publishEvent emits an activity event, best-effort.
func (uc *implUseCase) publishEvent(ctx context.Context, ev model.ActivityEvent) {
	ev.At = time.Now()
	body, err := json.Marshal(ev)
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.publishEvent: marshal: %v", err)
		return
	}
	if err := uc.producer.Publish([]byte(ev.Type), body); err != nil {
		uc.l.Errorf(ctx, "user.usecase.publishEvent: publish %s: %v", ev.Type, err)
	}
}
