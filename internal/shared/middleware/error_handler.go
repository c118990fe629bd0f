package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"library-catalog/internal/shared/response"
)

// ErrorTemplate là tên template dùng cho error page
const ErrorTemplate = "error"

// ErrorHandler renders the last error attached with c.Error as the error page.
// showDetails adds the raw error text (development only).
func ErrorHandler(showDetails bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := response.StatusOf(err)

		event := log.Error()
		if status < http.StatusInternalServerError {
			event = log.Warn()
		}
		event.
			Err(err).
			Str("request_id", c.GetString(RequestIDKey)).
			Int("status", status).
			Str("path", c.Request.URL.Path).
			Msg("Request failed")

		data := gin.H{
			"title":   http.StatusText(status),
			"status":  status,
			"message": response.MessageOf(err),
		}
		if showDetails {
			data["error"] = err.Error()
		}
		c.HTML(status, ErrorTemplate, data)
	}
}
