package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/domains/author/handler"
	"library-catalog/internal/domains/author/mocks"
	"library-catalog/internal/domains/author/model"
	"library-catalog/internal/domains/author/service"
	bookModel "library-catalog/internal/domains/book/model"
	"library-catalog/internal/shared/middleware"
	"library-catalog/web"
)

func setupRouter(t *testing.T, svc service.ServiceInterface) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	templates, err := web.Templates()
	require.NoError(t, err)

	h := handler.NewAuthorHandler(svc)
	router := gin.New()
	router.SetHTMLTemplate(templates)
	router.Use(middleware.ErrorHandler(false))

	router.GET("/catalog/authors", h.List)
	router.GET("/catalog/author/create", h.CreateForm)
	router.POST("/catalog/author/create", h.Create)
	router.GET("/catalog/author/:id", h.Detail)
	router.GET("/catalog/author/:id/delete", h.DeleteForm)
	router.POST("/catalog/author/:id/delete", h.Delete)
	router.GET("/catalog/author/:id/update", h.UpdateForm)
	router.POST("/catalog/author/:id/update", h.Update)
	return router
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func postForm(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestAuthorHandler_List(t *testing.T) {
	t.Run("renders authors in store order", func(t *testing.T) {
		svc := new(mocks.AuthorService)
		svc.On("List", mock.Anything).Return([]model.Author{
			{ID: uuid.New(), FirstName: "Isaac", FamilyName: "Asimov"},
			{ID: uuid.New(), FirstName: "Ben", FamilyName: "Bova"},
		}, nil)
		router := setupRouter(t, svc)

		w := serve(router, httptest.NewRequest(http.MethodGet, "/catalog/authors", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "<title>Author List</title>")
		require.Contains(t, body, "Asimov, Isaac")
		require.Contains(t, body, "Bova, Ben")
		assert.Less(t, strings.Index(body, "Asimov, Isaac"), strings.Index(body, "Bova, Ben"))
	})

	t.Run("empty list", func(t *testing.T) {
		svc := new(mocks.AuthorService)
		svc.On("List", mock.Anything).Return([]model.Author{}, nil)
		router := setupRouter(t, svc)

		w := serve(router, httptest.NewRequest(http.MethodGet, "/catalog/authors", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "There are no authors.")
	})

	t.Run("store failure renders error page", func(t *testing.T) {
		svc := new(mocks.AuthorService)
		svc.On("List", mock.Anything).Return(nil, errors.New("connection refused"))
		router := setupRouter(t, svc)

		w := serve(router, httptest.NewRequest(http.MethodGet, "/catalog/authors", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Internal Server Error")
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

func TestAuthorHandler_Detail(t *testing.T) {
	id := uuid.New()
	dob := time.Date(1920, time.January, 2, 0, 0, 0, 0, time.UTC)
	author := &model.Author{ID: id, FirstName: "Isaac", FamilyName: "Asimov", DateOfBirth: &dob}

	t.Run("renders author and books", func(t *testing.T) {
		svc := new(mocks.AuthorService)
		svc.On("Detail", mock.Anything, id).Return(&service.AuthorDetail{
			Author: author,
			Books: []bookModel.Book{
				{ID: uuid.New(), Title: "Foundation", Summary: "Psychohistory saves the galaxy"},
			},
		}, nil)
		router := setupRouter(t, svc)

		w := serve(router, httptest.NewRequest(http.MethodGet, author.URL(), nil))

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "<title>Author Detail</title>")
		assert.Contains(t, body, "Author: Asimov, Isaac")
		assert.Contains(t, body, "1920-01-02 - ")
		assert.Contains(t, body, "Foundation")
		assert.Contains(t, body, "Psychohistory saves the galaxy")
	})

	t.Run("author without books", func(t *testing.T) {
		svc := new(mocks.AuthorService)
		svc.On("Detail", mock.Anything, id).Return(&service.AuthorDetail{Author: author, Books: []bookModel.Book{}}, nil)
		router := setupRouter(t, svc)

		w := serve(router, httptest.NewRequest(http.MethodGet, author.URL(), nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "This author has no books.")
	})

	t.Run("absent author is 404", func(t *testing.T) {
		svc := new(mocks.AuthorService)
		svc.On("Detail", mock.Anything, id).Return(nil, model.ErrAuthorNotFound)
		router := setupRouter(t, svc)

		w := serve(router, httptest.NewRequest(http.MethodGet, author.URL(), nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Author not found")
		assert.NotContains(t, w.Body.String(), "Author Detail")
	})

	t.Run("malformed id is 404 without store access", func(t *testing.T) {
		svc := new(mocks.AuthorService)
		router := setupRouter(t, svc)

		w := serve(router, httptest.NewRequest(http.MethodGet, "/catalog/author/not-a-uuid", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		svc.AssertNotCalled(t, "Detail", mock.Anything, mock.Anything)
	})

	t.Run("store failure is 500", func(t *testing.T) {
		svc := new(mocks.AuthorService)
		svc.On("Detail", mock.Anything, id).Return(nil, errors.New("books unavailable"))
		router := setupRouter(t, svc)

		w := serve(router, httptest.NewRequest(http.MethodGet, author.URL(), nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestAuthorHandler_CreateForm(t *testing.T) {
	svc := new(mocks.AuthorService)
	router := setupRouter(t, svc)

	w := serve(router, httptest.NewRequest(http.MethodGet, "/catalog/author/create", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<title>Create Author</title>")
	assert.Contains(t, body, `name="first_name"`)
	assert.NotContains(t, body, `class="errors"`)
	svc.AssertExpectations(t)
}

func TestAuthorHandler_Create(t *testing.T) {
	t.Run("empty first name re-renders form", func(t *testing.T) {
		svc := new(mocks.AuthorService)
		router := setupRouter(t, svc)

		w := serve(router, postForm("/catalog/author/create", url.Values{
			"first_name":  {""},
			"family_name": {"Asimov"},
		}))

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "First name must be specified.")
		assert.Contains(t, body, `value="Asimov"`)
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("non-alphanumeric first name", func(t *testing.T) {
		svc := new(mocks.AuthorService)
		router := setupRouter(t, svc)

		w := serve(router, postForm("/catalog/author/create", url.Values{
			"first_name":  {"J0hn!"},
			"family_name": {"Smith"},
		}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "First name has non-alphanumeric characters")
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("invalid date of birth", func(t *testing.T) {
		svc := new(mocks.AuthorService)
		router := setupRouter(t, svc)

		w := serve(router, postForm("/catalog/author/create", url.Values{
			"first_name":    {"John"},
			"family_name":   {"Smith"},
			"date_of_birth": {"not-a-date"},
		}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid date of birth")
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("valid form redirects to new author", func(t *testing.T) {
		svc := new(mocks.AuthorService)
		created := &model.Author{ID: uuid.New(), FirstName: "Isaac", FamilyName: "Asimov"}
		svc.On("Create", mock.Anything, mock.MatchedBy(func(a model.Author) bool {
			return a.FirstName == "Isaac" &&
				a.FamilyName == "Asimov" &&
				a.DateOfBirth != nil && a.DateOfBirth.Format(model.DateLayout) == "1920-01-02" &&
				a.DateOfDeath == nil
		})).Return(created, true, nil).Once()
		router := setupRouter(t, svc)

		w := serve(router, postForm("/catalog/author/create", url.Values{
			"first_name":    {"  Isaac "},
			"family_name":   {"Asimov"},
			"date_of_birth": {"1920-01-02"},
			"date_of_death": {""},
		}))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, created.URL(), w.Header().Get("Location"))
		svc.AssertExpectations(t)
	})

	t.Run("duplicate redirects to existing author", func(t *testing.T) {
		svc := new(mocks.AuthorService)
		existing := &model.Author{ID: uuid.New(), FirstName: "Isaac", FamilyName: "Asimov"}
		svc.On("Create", mock.Anything, mock.Anything).Return(existing, false, nil).Once()
		router := setupRouter(t, svc)

		w := serve(router, postForm("/catalog/author/create", url.Values{
			"first_name":  {"Isaac"},
			"family_name": {"Asimov"},
		}))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, existing.URL(), w.Header().Get("Location"))
	})

	t.Run("store failure renders error page", func(t *testing.T) {
		svc := new(mocks.AuthorService)
		svc.On("Create", mock.Anything, mock.Anything).Return(nil, false, errors.New("insert failed"))
		router := setupRouter(t, svc)

		w := serve(router, postForm("/catalog/author/create", url.Values{
			"first_name":  {"Isaac"},
			"family_name": {"Asimov"},
		}))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Empty(t, w.Header().Get("Location"))
	})
}

func TestAuthorHandler_Stubs(t *testing.T) {
	id := uuid.New().String()
	tests := []struct {
		method string
		path   string
		want   string
	}{
		{http.MethodGet, "/catalog/author/" + id + "/delete", "NOT IMPLEMENTED: Author delete GET"},
		{http.MethodPost, "/catalog/author/" + id + "/delete", "NOT IMPLEMENTED: Author delete POST"},
		{http.MethodGet, "/catalog/author/" + id + "/update", "NOT IMPLEMENTED: Author update GET"},
		{http.MethodPost, "/catalog/author/" + id + "/update", "NOT IMPLEMENTED: Author update POST"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			svc := new(mocks.AuthorService)
			router := setupRouter(t, svc)

			w := serve(router, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, w.Body.String())
			assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
			svc.AssertExpectations(t)
			assert.Empty(t, svc.Calls)
		})
	}
}
