package http

import (
	"board-srv/internal/post"
	"board-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary List posts
// @Description Ranked, paginated home feed with optional search and category filter
// @Tags Post
// @Accept json
// @Produce json
// @Param search query string false "Search term"
// @Param type query string false "Search field: content or username (default content)"
// @Param category query string false "Category filter"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size: 30, 50, 100, 150 or 200 (default 30)"
// @Success 200 {object} listPostsResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/posts [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.List: processListRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListPostsResp(o))
}

// @Summary List own posts
// @Description Ranked, paginated list of the caller's posts
// @Tags Post
// @Accept json
// @Produce json
// @Param search query string false "Search term"
// @Param type query string false "Search field: content or username (default content)"
// @Param category query string false "Category filter"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size: 30, 50, 100, 150 or 200 (default 30)"
// @Success 200 {object} listPostsResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/posts/user/myposts [get]
func (h *handler) ListMine(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.ListMine: processListRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ListMine(ctx, sc, req.toMineInput())
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.ListMine: usecase ListMine failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListPostsResp(o))
}

// @Summary Get post detail
// @Description One post with its visible comments, optionally searched and ranked
// @Tags Post
// @Accept json
// @Produce json
// @Param post_id path string true "Post ID"
// @Param comment_search query string false "Search term within the comment thread"
// @Success 200 {object} detailResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/posts/{post_id} [get]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processDetailRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.Detail: processDetailRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Detail(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.Detail: usecase Detail failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newDetailResp(o))
}

// @Summary Create post
// @Tags Post
// @Accept json
// @Produce json
// @Param body body createPostReq true "Post content and category"
// @Success 200 {object} postResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/posts [post]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.Create: processCreateRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	p, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.Create: usecase Create failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newPostResp(p, nil))
}

// @Summary Update post
// @Description Edit own post's content or category
// @Tags Post
// @Accept json
// @Produce json
// @Param post_id path string true "Post ID"
// @Param body body updatePostReq true "Fields to update"
// @Success 200 {object} postResp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/posts/{post_id} [put]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, postID, sc, err := h.processUpdateRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.Update: processUpdateRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	p, err := h.uc.Update(ctx, sc, post.UpdateInput{
		PostID:   postID,
		Content:  req.Content,
		Category: req.Category,
	})
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.Update: usecase Update failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newPostResp(p, nil))
}

// @Summary Delete post
// @Description Delete own post; admins may delete any post
// @Tags Post
// @Accept json
// @Produce json
// @Param post_id path string true "Post ID"
// @Success 200 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/posts/{post_id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, postID := scopeAndParam(c, "post_id")

	if err := h.uc.Delete(ctx, sc, post.DeleteInput{PostID: postID}); err != nil {
		h.l.Errorf(ctx, "post.delivery.http.Delete: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}

// @Summary Add comment
// @Tags Post
// @Accept json
// @Produce json
// @Param post_id path string true "Post ID"
// @Param body body addCommentReq true "Comment text"
// @Success 200 {object} commentResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/posts/{post_id}/comments [post]
func (h *handler) AddComment(c *gin.Context) {
	ctx := c.Request.Context()

	req, postID, sc, err := h.processAddCommentRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.AddComment: processAddCommentRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	cm, err := h.uc.AddComment(ctx, sc, post.AddCommentInput{
		PostID: postID,
		Text:   req.Text,
	})
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.AddComment: usecase AddComment failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newCommentResp(cm, nil))
}

// @Summary Delete comment
// @Description Soft-delete a comment; allowed for its author, the post owner or an admin
// @Tags Post
// @Accept json
// @Produce json
// @Param post_id path string true "Post ID"
// @Param comment_id path string true "Comment ID"
// @Success 200 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/posts/{post_id}/comments/{comment_id} [delete]
func (h *handler) DeleteComment(c *gin.Context) {
	ctx := c.Request.Context()

	sc, postID := scopeAndParam(c, "post_id")

	err := h.uc.DeleteComment(ctx, sc, post.DeleteCommentInput{
		PostID:    postID,
		CommentID: c.Param("comment_id"),
	})
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.DeleteComment: usecase DeleteComment failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}

// @Summary List all posts (admin)
// @Description Moderation view; search matches content, author and comment threads
// @Tags Admin
// @Accept json
// @Produce json
// @Param search query string false "Search term"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size: 30, 50, 100, 150 or 200 (default 30)"
// @Success 200 {object} listPostsResp
// @Failure 403 {object} response.Resp
// @Router /api/v1/admin/posts [get]
func (h *handler) AdminList(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processAdminListRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.AdminList: processAdminListRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.AdminList(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.AdminList: usecase AdminList failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListPostsResp(o))
}
