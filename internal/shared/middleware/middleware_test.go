package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/shared/response"
	"library-catalog/web"
)

func newEngine(t *testing.T, mw ...gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	templates, err := web.Templates()
	require.NoError(t, err)

	r := gin.New()
	r.SetHTMLTemplate(templates)
	r.Use(mw...)
	return r
}

func get(r *gin.Engine, path string, header http.Header) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	r.ServeHTTP(w, req)
	return w
}

func TestErrorHandler(t *testing.T) {
	t.Run("not found renders 404 page", func(t *testing.T) {
		r := newEngine(t, ErrorHandler(false))
		r.GET("/x", func(c *gin.Context) {
			response.Fail(c, response.NotFound("Author not found", errors.New("author not found")))
		})

		w := get(r, "/x", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "<h1>Author not found</h1>")
		assert.NotContains(t, w.Body.String(), "<pre>")
	})

	t.Run("details are shown outside production", func(t *testing.T) {
		r := newEngine(t, ErrorHandler(true))
		r.GET("/x", func(c *gin.Context) {
			response.Fail(c, errors.New("connection refused"))
		})

		w := get(r, "/x", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Internal Server Error")
		assert.Contains(t, w.Body.String(), "<pre>connection refused</pre>")
	})

	t.Run("written responses are left alone", func(t *testing.T) {
		r := newEngine(t, ErrorHandler(true))
		r.GET("/x", func(c *gin.Context) {
			_ = c.Error(errors.New("late failure"))
			c.String(http.StatusOK, "ok")
		})

		w := get(r, "/x", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ok", w.Body.String())
	})
}

func TestRequestID(t *testing.T) {
	r := newEngine(t, RequestID())
	r.GET("/x", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	t.Run("generated", func(t *testing.T) {
		w := get(r, "/x", nil)

		id := w.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("propagated", func(t *testing.T) {
		w := get(r, "/x", http.Header{RequestIDHeader: {"abc-123"}})

		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "abc-123", w.Body.String())
	})
}

func TestRecovery(t *testing.T) {
	r := newEngine(t, Recovery(), RequestID(), Logger())
	r.GET("/panic", func(c *gin.Context) {
		panic("template exploded")
	})

	w := get(r, "/panic", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
}
