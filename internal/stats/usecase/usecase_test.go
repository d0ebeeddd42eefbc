package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"board-srv/internal/model"
	postRepo "board-srv/internal/post/repository"
	"board-srv/internal/stats"
	userRepo "board-srv/internal/user/repository"
	"board-srv/pkg/log"
	pkgRedis "board-srv/pkg/redis"
)

// --- Mocks ---

type mockUsers struct {
	total, blocked, daily, weekly int64
}

func (m *mockUsers) CountUsers(_ context.Context, opt userRepo.CountUsersOptions) (int64, error) {
	switch {
	case opt.BlockedOnly:
		return m.blocked, nil
	case !opt.LastLoginSince.IsZero() && time.Since(opt.LastLoginSince) < 48*time.Hour:
		return m.daily, nil
	case !opt.LastLoginSince.IsZero():
		return m.weekly, nil
	default:
		return m.total, nil
	}
}

func (m *mockUsers) CreateUser(context.Context, userRepo.CreateUserOptions) (model.User, error) {
	return model.User{}, errors.New("not implemented")
}
func (m *mockUsers) GetUserByID(context.Context, string) (model.User, error) {
	return model.User{}, errors.New("not implemented")
}
func (m *mockUsers) GetUserByUsername(context.Context, string) (model.User, error) {
	return model.User{}, errors.New("not implemented")
}
func (m *mockUsers) ListUsers(context.Context) ([]model.User, error)      { return nil, nil }
func (m *mockUsers) UpdatePassword(context.Context, string, string) error { return nil }
func (m *mockUsers) UpdateLastLogin(context.Context, string, time.Time) error {
	return nil
}
func (m *mockUsers) SetBlocked(context.Context, string, bool) (model.User, error) {
	return model.User{}, errors.New("not implemented")
}
func (m *mockUsers) DeleteUser(context.Context, string) error { return nil }

type mockPosts struct {
	total, totalComments int64
	sincePosts           int64
	sinceComments        int64
}

func (m *mockPosts) CountPosts(_ context.Context, opt postRepo.CountPostsOptions) (int64, error) {
	if !opt.Since.IsZero() {
		return m.sincePosts, nil
	}
	return m.total, nil
}

func (m *mockPosts) CountComments(_ context.Context, opt postRepo.CountCommentsOptions) (int64, error) {
	if !opt.Since.IsZero() {
		return m.sinceComments, nil
	}
	return m.totalComments, nil
}

func (m *mockPosts) CreatePost(context.Context, postRepo.CreatePostOptions) (model.Post, error) {
	return model.Post{}, errors.New("not implemented")
}
func (m *mockPosts) GetPostByID(context.Context, string) (model.Post, error) {
	return model.Post{}, errors.New("not implemented")
}
func (m *mockPosts) ListPosts(context.Context, postRepo.ListPostsOptions) ([]model.Post, error) {
	return nil, nil
}
func (m *mockPosts) UpdatePost(context.Context, postRepo.UpdatePostOptions) (model.Post, error) {
	return model.Post{}, errors.New("not implemented")
}
func (m *mockPosts) DeletePost(context.Context, string) error { return nil }
func (m *mockPosts) CreateComment(context.Context, postRepo.CreateCommentOptions) (model.Comment, error) {
	return model.Comment{}, errors.New("not implemented")
}
func (m *mockPosts) GetCommentByID(context.Context, string) (model.Comment, error) {
	return model.Comment{}, errors.New("not implemented")
}
func (m *mockPosts) SoftDeleteComment(context.Context, string) error { return nil }

// mockRedis serves Get and SCard from maps; everything else is inert.
type mockRedis struct {
	values map[string]string
	card   int64
}

func (m *mockRedis) Get(_ context.Context, key string) (string, error) {
	v, ok := m.values[key]
	if !ok {
		return "", pkgRedis.ErrNil
	}
	return v, nil
}

func (m *mockRedis) SCard(context.Context, string) (int64, error) { return m.card, nil }

func (m *mockRedis) Set(context.Context, string, interface{}, time.Duration) error { return nil }
func (m *mockRedis) Delete(context.Context, ...string) error                       { return nil }
func (m *mockRedis) Exists(context.Context, string) (bool, error)                  { return false, nil }
func (m *mockRedis) Incr(context.Context, string) (int64, error)                   { return 0, nil }
func (m *mockRedis) SAdd(context.Context, string, ...interface{}) error            { return nil }
func (m *mockRedis) SRem(context.Context, string, ...interface{}) error            { return nil }
func (m *mockRedis) TTL(context.Context, string) (time.Duration, error)            { return 0, nil }
func (m *mockRedis) Expire(context.Context, string, time.Duration) error           { return nil }
func (m *mockRedis) Close() error                                                  { return nil }
func (m *mockRedis) Ping(context.Context) error                                    { return nil }
func (m *mockRedis) GetClient() *goredis.Client                                    { return nil }

func adminScope() model.Scope {
	return model.Scope{UserID: "adm", Username: "admin", Role: model.RoleAdmin}
}

// --- Tests ---

func TestDashboard_RequiresAdmin(t *testing.T) {
	uc := New(&mockUsers{}, &mockPosts{}, &mockRedis{}, "board:presence", log.NewNop())

	sc := model.Scope{UserID: "u1", Role: model.RoleUser}
	_, err := uc.Dashboard(context.Background(), sc)
	if !errors.Is(err, stats.ErrAdminRequired) {
		t.Fatalf("expected ErrAdminRequired, got %v", err)
	}
}

func TestDashboard_ReadsCountersFromRedis(t *testing.T) {
	now := time.Now()
	rd := &mockRedis{
		card: 7,
		values: map[string]string{
			stats.PostsCounterKey(now):    "12",
			stats.CommentsCounterKey(now): "34",
		},
	}
	uc := New(
		&mockUsers{total: 100, blocked: 3, daily: 20, weekly: 60},
		&mockPosts{total: 500, totalComments: 1500},
		rd, "board:presence", log.NewNop(),
	)

	s, err := uc.Dashboard(context.Background(), adminScope())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.TotalUsers != 100 || s.BlockedUsers != 3 {
		t.Errorf("unexpected user counts: %+v", s)
	}
	if s.ActiveUsers != 7 {
		t.Errorf("expected presence count 7, got %d", s.ActiveUsers)
	}
	if s.PostsToday != 12 || s.CommentsToday != 34 {
		t.Errorf("expected counter-backed daily figures, got posts=%d comments=%d", s.PostsToday, s.CommentsToday)
	}
}

func TestDashboard_FallsBackToDatabase(t *testing.T) {
	rd := &mockRedis{values: map[string]string{}}
	uc := New(
		&mockUsers{},
		&mockPosts{sincePosts: 4, sinceComments: 9},
		rd, "board:presence", log.NewNop(),
	)

	s, err := uc.Dashboard(context.Background(), adminScope())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.PostsToday != 4 || s.CommentsToday != 9 {
		t.Errorf("expected database fallback figures, got posts=%d comments=%d", s.PostsToday, s.CommentsToday)
	}
}
