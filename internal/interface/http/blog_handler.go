package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tranquilify/tranquilify-api/internal/application"
	"github.com/tranquilify/tranquilify-api/pkg/helpers"
	"github.com/tranquilify/tranquilify-api/pkg/response"
	"github.com/tranquilify/tranquilify-api/pkg/validation"
)

const maxBlogImageBytes = 10 << 20

type BlogHandler struct {
	Svc    *application.BlogService
	Logger *logrus.Logger
}

func NewBlogHandler(svc *application.BlogService, logger *logrus.Logger) *BlogHandler {
	return &BlogHandler{Svc: svc, Logger: logger}
}

type publishBlogRequest struct {
	Title   string   `json:"title" binding:"required,min=3,max=200"`
	Content string   `json:"content" binding:"required"`
	Tags    []string `json:"tags" binding:"omitempty,dive,max=40"`
	Author  string   `json:"author" binding:"omitempty,max=120"`
}

func (h *BlogHandler) List(c *gin.Context) {
	blogs, err := h.Svc.List(c.Request.Context())
	if err != nil {
		helpers.LogError(h.Logger, "blog list failed", err, nil)
		response.Error[any](c, http.StatusInternalServerError, "failed to list blogs", nil)
		return
	}
	response.Success(c, http.StatusOK, blogs, "blogs", nil)
}

func (h *BlogHandler) Get(c *gin.Context) {
	b, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrBlogNotFound) {
			response.Error[any](c, http.StatusNotFound, "blog not found", nil)
			return
		}
		helpers.LogError(h.Logger, "blog get failed", err, nil)
		response.Error[any](c, http.StatusInternalServerError, "failed to load blog", nil)
		return
	}
	response.Success(c, http.StatusOK, b, "blog", nil)
}

// Search queries the Elasticsearch index over title, content and tags.
func (h *BlogHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "query parameter q is required", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		helpers.LogError(h.Logger, "blog search failed", err, nil)
		response.Error[any](c, http.StatusInternalServerError, "search unavailable", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", map[string]any{"query": q})
}

func (h *BlogHandler) Publish(c *gin.Context) {
	var req publishBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	author := req.Author
	if author == "" {
		author = c.GetString("adminEmail")
	}
	b, err := h.Svc.Publish(c.Request.Context(), application.PublishBlogInput{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
		Author:  author,
	})
	if err != nil {
		helpers.LogError(h.Logger, "blog publish failed", err, nil)
		response.Error[any](c, http.StatusInternalServerError, "failed to publish blog", nil)
		return
	}
	response.Success(c, http.StatusCreated, b, "blog published", nil)
}

func (h *BlogHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "image file required", nil)
		return
	}
	if file.Size > maxBlogImageBytes {
		response.Error[any](c, http.StatusRequestEntityTooLarge, "image too large", nil)
		return
	}
	src, err := file.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "cannot read image", nil)
		return
	}
	defer func() { _ = src.Close() }()

	b, err := h.Svc.SetImage(c.Request.Context(), c.Param("id"), src, file.Filename, file.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, application.ErrBlogNotFound) {
			response.Error[any](c, http.StatusNotFound, "blog not found", nil)
			return
		}
		helpers.LogError(h.Logger, "blog image upload failed", err, nil)
		response.Error[any](c, http.StatusInternalServerError, "failed to upload image", nil)
		return
	}
	response.Success(c, http.StatusOK, b, "image uploaded", nil)
}

func (h *BlogHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, application.ErrBlogNotFound) {
			response.Error[any](c, http.StatusNotFound, "blog not found", nil)
			return
		}
		helpers.LogError(h.Logger, "blog delete failed", err, nil)
		response.Error[any](c, http.StatusInternalServerError, "failed to delete blog", nil)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "blog deleted", nil)
}
