package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"board-srv/internal/model"
	"board-srv/internal/stats"
	pkgErrors "board-srv/pkg/errors"
	"board-srv/pkg/response"
	"board-srv/pkg/scope"
)

var errAdminRequired = pkgErrors.NewHTTPError(403, "Admin role required")

type statsResp struct {
	TotalUsers          int64 `json:"total_users"`
	BlockedUsers        int64 `json:"blocked_users"`
	ActiveUsers         int64 `json:"active_users"`
	RecentlyActiveUsers int64 `json:"recently_active_users"`
	WeeklyActiveUsers   int64 `json:"weekly_active_users"`
	TotalPosts          int64 `json:"total_posts"`
	TotalComments       int64 `json:"total_comments"`
	PostsToday          int64 `json:"posts_today"`
	CommentsToday       int64 `json:"comments_today"`
}

func newStatsResp(s model.Stats) statsResp {
	return statsResp{
		TotalUsers:          s.TotalUsers,
		BlockedUsers:        s.BlockedUsers,
		ActiveUsers:         s.ActiveUsers,
		RecentlyActiveUsers: s.RecentlyActiveUsers,
		WeeklyActiveUsers:   s.WeeklyActiveUsers,
		TotalPosts:          s.TotalPosts,
		TotalComments:       s.TotalComments,
		PostsToday:          s.PostsToday,
		CommentsToday:       s.CommentsToday,
	}
}

// @Summary Dashboard stats (admin)
// @Description Aggregated user and activity figures for the admin dashboard
// @Tags Admin
// @Produce json
// @Success 200 {object} statsResp
// @Failure 403 {object} response.Resp
// @Router /api/v1/admin/stats [get]
func (h *handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)
	s, err := h.uc.Dashboard(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "stats.delivery.http.Dashboard: usecase Dashboard failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newStatsResp(s))
}

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, stats.ErrAdminRequired):
		return errAdminRequired
	default:
		panic(err)
	}
}
