package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPError là error có kèm HTTP status, được ErrorHandler middleware render thành error page
type HTTPError struct {
	Status  int
	Message string
	Err     error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func NewHTTPError(status int, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Message: message, Err: err}
}

// NotFound builds a 404 error wrapping err (may be nil)
func NotFound(message string, err error) *HTTPError {
	return NewHTTPError(http.StatusNotFound, message, err)
}

// StatusOf returns the status carried by err, 500 otherwise
func StatusOf(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) && httpErr.Status != 0 {
		return httpErr.Status
	}
	return http.StatusInternalServerError
}

// MessageOf returns the user-facing message for err
func MessageOf(err error) string {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) && httpErr.Message != "" {
		return httpErr.Message
	}
	return http.StatusText(StatusOf(err))
}

// Render renders an HTML template with status 200
func Render(c *gin.Context, name string, data gin.H) {
	c.HTML(http.StatusOK, name, data)
}

// Redirect sends a 302 to url
func Redirect(c *gin.Context, url string) {
	c.Redirect(http.StatusFound, url)
}

// Text writes a fixed body as text/html, same content type a browser form post expects
func Text(c *gin.Context, body string) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(body))
}

// Fail delegates err to the error pipeline and stops the handler chain
func Fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
