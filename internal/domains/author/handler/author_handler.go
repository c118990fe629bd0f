package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"library-catalog/internal/domains/author/model"
	"library-catalog/internal/domains/author/service"
	"library-catalog/internal/shared/response"
	"library-catalog/internal/shared/utils"
)

// Template names
const (
	ListTemplate   = "author_list"
	DetailTemplate = "author_detail"
	FormTemplate   = "author_form"
)

// AuthorHandler handles HTTP requests for author domain
type AuthorHandler struct {
	service service.ServiceInterface
}

// NewAuthorHandler creates a new author handler instance
func NewAuthorHandler(service service.ServiceInterface) *AuthorHandler {
	return &AuthorHandler{
		service: service,
	}
}

// List handles GET /catalog/authors
func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Render(c, ListTemplate, gin.H{
		"title":       "Author List",
		"author_list": authors,
	})
}

// Detail handles GET /catalog/author/:id
func (h *AuthorHandler) Detail(c *gin.Context) {
	id := utils.ParseStringToUUID(c.Param("id"))
	if id == uuid.Nil {
		// id không hợp lệ thì không thể tồn tại trong store
		response.Fail(c, response.NotFound("Author not found", model.ErrAuthorNotFound))
		return
	}

	detail, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrAuthorNotFound) {
			err = response.NotFound("Author not found", err)
		}
		response.Fail(c, err)
		return
	}

	response.Render(c, DetailTemplate, gin.H{
		"title":        "Author Detail",
		"author":       detail.Author,
		"author_books": detail.Books,
	})
}

// CreateForm handles GET /catalog/author/create
func (h *AuthorHandler) CreateForm(c *gin.Context) {
	response.Render(c, FormTemplate, gin.H{
		"title":  "Create Author",
		"author": model.AuthorForm{},
	})
}

// Create handles POST /catalog/author/create
func (h *AuthorHandler) Create(c *gin.Context) {
	var form model.AuthorForm
	// Form fields đều là string, binding chỉ lỗi khi body không parse được
	if err := c.ShouldBind(&form); err != nil {
		response.Fail(c, response.NewHTTPError(http.StatusBadRequest, "Invalid form submission", err))
		return
	}

	violations := form.Validate()
	candidate := form.Sanitize()

	if len(violations) > 0 {
		log.Debug().Int("violations", len(violations)).Msg("author form rejected")
		response.Render(c, FormTemplate, gin.H{
			"title":  "Create Author",
			"author": form,
			"errors": violations,
		})
		return
	}

	author, _, err := h.service.Create(c.Request.Context(), candidate)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Redirect(c, author.URL())
}

// DeleteForm handles GET /catalog/author/:id/delete
func (h *AuthorHandler) DeleteForm(c *gin.Context) {
	response.Text(c, "NOT IMPLEMENTED: Author delete GET")
}

// Delete handles POST /catalog/author/:id/delete
func (h *AuthorHandler) Delete(c *gin.Context) {
	response.Text(c, "NOT IMPLEMENTED: Author delete POST")
}

// UpdateForm handles GET /catalog/author/:id/update
func (h *AuthorHandler) UpdateForm(c *gin.Context) {
	response.Text(c, "NOT IMPLEMENTED: Author update GET")
}

// Update handles POST /catalog/author/:id/update
func (h *AuthorHandler) Update(c *gin.Context) {
	response.Text(c, "NOT IMPLEMENTED: Author update POST")
}
