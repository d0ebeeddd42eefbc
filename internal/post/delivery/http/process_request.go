package http

import (
	"strconv"

	"board-srv/internal/model"
	"board-srv/pkg/paginator"
	"board-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// snapLimit keeps the page size inside the set the UI exposes; anything
// else falls back to the default.
func snapLimit(limit int64) int64 {
	for _, allowed := range paginator.AllowedLimits {
		if limit == allowed {
			return limit
		}
	}
	return paginator.DefaultLimit
}

func pageQuery(c *gin.Context) (int, int64) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "30"), 10, 64)
	return page, snapLimit(limit)
}

func scopeAndParam(c *gin.Context, param string) (model.Scope, string) {
	return scope.GetScopeFromContext(c.Request.Context()), c.Param(param)
}

func (h *handler) processListRequest(c *gin.Context) (listPostsReq, model.Scope, error) {
	page, limit := pageQuery(c)

	req := listPostsReq{
		Search:   c.Query("search"),
		Field:    c.DefaultQuery("type", "content"),
		Category: c.Query("category"),
		Page:     page,
		Limit:    limit,
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processAdminListRequest(c *gin.Context) (adminListPostsReq, model.Scope, error) {
	page, limit := pageQuery(c)

	req := adminListPostsReq{
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processDetailRequest(c *gin.Context) (detailReq, model.Scope, error) {
	req := detailReq{
		PostID:        c.Param("post_id"),
		CommentSearch: c.Query("comment_search"),
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processCreateRequest(c *gin.Context) (createPostReq, model.Scope, error) {
	var req createPostReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processUpdateRequest(c *gin.Context) (updatePostReq, string, model.Scope, error) {
	var req updatePostReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, "", model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, c.Param("post_id"), sc, nil
}

func (h *handler) processAddCommentRequest(c *gin.Context) (addCommentReq, string, model.Scope, error) {
	var req addCommentReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, "", model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, c.Param("post_id"), sc, nil
}
