package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"board-srv/internal/model"
	postRepo "board-srv/internal/post/repository"
	"board-srv/internal/stats"
	userRepo "board-srv/internal/user/repository"
	pkgRedis "board-srv/pkg/redis"
	"board-srv/pkg/util"
)

// Dashboard assembles the admin dashboard figures. Totals come from
// Postgres; the live user count from the websocket presence set; today's
// activity from the consumer-maintained counters, with a Postgres fallback
// when a counter is missing.
func (uc *implUseCase) Dashboard(ctx context.Context, sc model.Scope) (model.Stats, error) {
	if !sc.IsAdmin() {
		return model.Stats{}, stats.ErrAdminRequired
	}

	now := time.Now()
	var s model.Stats
	var err error

	if s.TotalUsers, err = uc.users.CountUsers(ctx, userRepo.CountUsersOptions{}); err != nil {
		uc.l.Errorf(ctx, "stats.usecase.Dashboard: CountUsers: %v", err)
		return model.Stats{}, err
	}
	if s.BlockedUsers, err = uc.users.CountUsers(ctx, userRepo.CountUsersOptions{BlockedOnly: true}); err != nil {
		uc.l.Errorf(ctx, "stats.usecase.Dashboard: CountUsers blocked: %v", err)
		return model.Stats{}, err
	}
	if s.RecentlyActiveUsers, err = uc.users.CountUsers(ctx, userRepo.CountUsersOptions{
		LastLoginSince: now.Add(-24 * time.Hour),
	}); err != nil {
		uc.l.Errorf(ctx, "stats.usecase.Dashboard: CountUsers 24h: %v", err)
		return model.Stats{}, err
	}
	if s.WeeklyActiveUsers, err = uc.users.CountUsers(ctx, userRepo.CountUsersOptions{
		LastLoginSince: now.Add(-7 * 24 * time.Hour),
	}); err != nil {
		uc.l.Errorf(ctx, "stats.usecase.Dashboard: CountUsers 7d: %v", err)
		return model.Stats{}, err
	}

	if s.TotalPosts, err = uc.posts.CountPosts(ctx, postRepo.CountPostsOptions{}); err != nil {
		uc.l.Errorf(ctx, "stats.usecase.Dashboard: CountPosts: %v", err)
		return model.Stats{}, err
	}
	if s.TotalComments, err = uc.posts.CountComments(ctx, postRepo.CountCommentsOptions{}); err != nil {
		uc.l.Errorf(ctx, "stats.usecase.Dashboard: CountComments: %v", err)
		return model.Stats{}, err
	}

	s.ActiveUsers, err = uc.redis.SCard(ctx, uc.presence)
	if err != nil {
		uc.l.Warnf(ctx, "stats.usecase.Dashboard: presence count: %v", err)
		s.ActiveUsers = 0
	}

	s.PostsToday = uc.todayCounter(ctx, stats.PostsCounterKey(now), func() (int64, error) {
		return uc.posts.CountPosts(ctx, postRepo.CountPostsOptions{Since: util.StartOfDay(now)})
	})
	s.CommentsToday = uc.todayCounter(ctx, stats.CommentsCounterKey(now), func() (int64, error) {
		return uc.posts.CountComments(ctx, postRepo.CountCommentsOptions{Since: util.StartOfDay(now)})
	})

	return s, nil
}

// todayCounter reads a consumer-maintained daily counter, falling back to
// the database when it is absent or unreadable.
func (uc *implUseCase) todayCounter(ctx context.Context, key string, fallback func() (int64, error)) int64 {
	raw, err := uc.redis.Get(ctx, key)
	if err == nil {
		if n, convErr := strconv.ParseInt(raw, 10, 64); convErr == nil {
			return n
		}
	} else if !errors.Is(err, pkgRedis.ErrNil) {
		uc.l.Warnf(ctx, "stats.usecase.todayCounter: %s: %v", key, err)
	}

	n, err := fallback()
	if err != nil {
		uc.l.Warnf(ctx, "stats.usecase.todayCounter: fallback for %s: %v", key, err)
		return 0
	}
	return n
}
