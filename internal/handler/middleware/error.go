package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"cuponera/internal/handler/httperr"
)

// ErrorHandler drains gin's error stack after the handler chain. Public
// errors carrying an httperr.Response are rendered as-is; anything else that
// reaches here unwritten becomes a 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.Response{Error: "Internal server error"})
	}
}

// CustomRecovery turns panics into a 500 response instead of a dropped
// connection.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("recovered from panic", "error", r, "path", c.Request.URL.Path)
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httperr.Response{Error: "Internal server error"})
			}
		}()
		c.Next()
	}
}
