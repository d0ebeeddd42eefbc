package http

import (
	"board-srv/internal/user"
	"board-srv/pkg/response"
	"board-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary Register
// @Description Create an account and sign in
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body registerReq true "Username and password"
// @Success 200 {object} authResp
// @Failure 400 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Router /api/v1/auth/register [post]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRegisterRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "user.delivery.http.Register: processRegisterRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "user.delivery.http.Register: usecase Register failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	h.setAuthCookie(c, o.Token)
	response.OK(c, h.newAuthResp(o))
}

// @Summary Login
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body loginReq true "Username and password"
// @Success 200 {object} authResp
// @Failure 401 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Router /api/v1/auth/login [post]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "user.delivery.http.Login: processLoginRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "user.delivery.http.Login: usecase Login failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	h.setAuthCookie(c, o.Token)
	response.OK(c, h.newAuthResp(o))
}

// @Summary Logout
// @Description Clear the auth cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Resp
// @Router /api/v1/auth/logout [post]
func (h *handler) Logout(c *gin.Context) {
	h.clearAuthCookie(c)
	response.OK(c, nil)
}

// @Summary Current user
// @Tags Auth
// @Produce json
// @Success 200 {object} userResp
// @Failure 401 {object} response.Resp
// @Router /api/v1/auth/me [get]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)
	u, err := h.uc.Me(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "user.delivery.http.Me: usecase Me failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newUserResp(u))
}

// @Summary Change password
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body changePasswordReq true "Current and new password"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /api/v1/auth/password [put]
func (h *handler) ChangePassword(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processChangePasswordRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "user.delivery.http.ChangePassword: processChangePasswordRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.ChangePassword(ctx, sc, req.toInput()); err != nil {
		h.l.Errorf(ctx, "user.delivery.http.ChangePassword: usecase ChangePassword failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}

// @Summary List users (admin)
// @Description Ranked, paginated user list with username search
// @Tags Admin
// @Produce json
// @Param search query string false "Search term"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size: 30, 50, 100, 150 or 200 (default 30)"
// @Success 200 {object} adminListUsersResp
// @Failure 403 {object} response.Resp
// @Router /api/v1/admin/users [get]
func (h *handler) AdminList(c *gin.Context) {
	ctx := c.Request.Context()

	search, page, limit, sc := h.processAdminListRequest(c)

	o, err := h.uc.AdminList(ctx, sc, user.AdminListInput{
		Search: search,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		h.l.Errorf(ctx, "user.delivery.http.AdminList: usecase AdminList failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newAdminListUsersResp(o))
}

// @Summary Block user (admin)
// @Tags Admin
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} userResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/admin/users/{user_id}/block [put]
func (h *handler) Block(c *gin.Context) {
	h.setBlocked(c, true)
}

// @Summary Unblock user (admin)
// @Tags Admin
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} userResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/admin/users/{user_id}/unblock [put]
func (h *handler) Unblock(c *gin.Context) {
	h.setBlocked(c, false)
}

func (h *handler) setBlocked(c *gin.Context, blocked bool) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)
	u, err := h.uc.SetBlocked(ctx, sc, user.SetBlockedInput{
		UserID:  c.Param("user_id"),
		Blocked: blocked,
	})
	if err != nil {
		h.l.Errorf(ctx, "user.delivery.http.setBlocked: usecase SetBlocked failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newUserResp(u))
}

// @Summary Delete user (admin)
// @Description Remove an account and everything it authored
// @Tags Admin
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/admin/users/{user_id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)
	err := h.uc.Delete(ctx, sc, user.DeleteInput{UserID: c.Param("user_id")})
	if err != nil {
		h.l.Errorf(ctx, "user.delivery.http.Delete: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}
