package response

import (
	"context"
	"fmt"
	"net/http"

	pkgErrors "board-srv/pkg/errors"
	"board-srv/pkg/discord"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response with the given data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   "Success",
		Data:      data,
	})
}

// Error writes an error response. HTTPError values keep their status code;
// anything else becomes a 400 with its message. 5xx errors are forwarded to
// the Discord webhook when one is configured.
func Error(c *gin.Context, err error, notifier discord.IDiscord) {
	if httpErr, ok := err.(*pkgErrors.HTTPError); ok {
		if httpErr.Code >= http.StatusInternalServerError && notifier != nil {
			_ = notifier.SendError(c.Request.Context(), "HTTP error",
				fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path), httpErr)
		}
		c.JSON(httpErr.Code, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: http.StatusBadRequest,
		Message:   err.Error(),
	})
}

// Unauthorized writes a 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}

// Forbidden writes a 403 response.
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Resp{
		ErrorCode: http.StatusForbidden,
		Message:   "Forbidden",
	})
}

// NotFound writes a 404 response.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Resp{
		ErrorCode: http.StatusNotFound,
		Message:   "Not found",
	})
}

// PanicError writes a 500 response for a recovered panic and reports it.
func PanicError(c *gin.Context, recovered any, notifier discord.IDiscord) {
	if notifier != nil {
		_ = notifier.ReportBug(context.WithoutCancel(c.Request.Context()),
			fmt.Sprintf("panic at %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered))
	}
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}
