package http

import (
	"net/http"
	"strconv"

	"board-srv/internal/model"
	"board-srv/pkg/paginator"
	"board-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processRegisterRequest(c *gin.Context) (registerReq, error) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processLoginRequest(c *gin.Context) (loginReq, error) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processChangePasswordRequest(c *gin.Context) (changePasswordReq, model.Scope, error) {
	var req changePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processAdminListRequest(c *gin.Context) (string, int, int64, model.Scope) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "30"), 10, 64)

	var snapped int64 = paginator.DefaultLimit
	for _, allowed := range paginator.AllowedLimits {
		if limit == allowed {
			snapped = limit
			break
		}
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return c.Query("search"), page, snapped, sc
}

// setAuthCookie stores the token in the configured cookie so browser
// clients stay signed in without carrying the header themselves.
func (h *handler) setAuthCookie(c *gin.Context, token string) {
	sameSite := http.SameSiteLaxMode
	if h.cookie.SameSite == "Strict" {
		sameSite = http.SameSiteStrictMode
	}
	c.SetSameSite(sameSite)
	c.SetCookie(h.cookie.Name, token, h.cookie.MaxAge, "/", h.cookie.Domain, h.cookie.Secure, true)
}

func (h *handler) clearAuthCookie(c *gin.Context) {
	c.SetCookie(h.cookie.Name, "", -1, "/", h.cookie.Domain, h.cookie.Secure, true)
}
