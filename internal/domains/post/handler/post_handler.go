package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"openblog-backend/internal/domains/group"
	"openblog-backend/internal/domains/post/model"
	"openblog-backend/internal/domains/post/service"
	"openblog-backend/internal/shared/middleware"
	"openblog-backend/internal/shared/response"
)

type PostHandler struct {
	postService service.ServiceInterface
}

func NewPostHandler(postService service.ServiceInterface) *PostHandler {
	return &PostHandler{postService: postService}
}

// Create publishes a new post as the authenticated viewer.
// POST /api/v1/posts
func (h *PostHandler) Create(c *gin.Context) {
	viewerID, ok := middleware.ViewerID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req model.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.postService.CreatePost(c.Request.Context(), viewerID, req)
	if err != nil {
		mapPostError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, post)
}

// Update edits an existing post. Only the author may do this.
// PUT /api/v1/posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	viewerID, ok := middleware.ViewerID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post ID")
		return
	}

	var req model.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.postService.UpdatePost(c.Request.Context(), postID, viewerID, req)
	if err != nil {
		mapPostError(c, err)
		return
	}

	response.Success(c, http.StatusOK, post)
}

// Delete removes a post and its comments. Only the author may do this.
// DELETE /api/v1/posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	viewerID, ok := middleware.ViewerID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post ID")
		return
	}

	if err := h.postService.DeletePost(c.Request.Context(), postID, viewerID); err != nil {
		mapPostError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "post deleted"})
}

// UploadImage accepts a multipart image and returns its attachment key.
// POST /api/v1/images
func (h *PostHandler) UploadImage(c *gin.Context) {
	if _, ok := middleware.ViewerID(c); !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "missing image file")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "cannot read image file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.BadRequest(c, "cannot read image file")
		return
	}

	key, err := h.postService.UploadImage(
		c.Request.Context(),
		data,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		mapPostError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"image_key": key})
}

// mapPostError translates the domain error taxonomy to HTTP.
func mapPostError(c *gin.Context, err error) {
	var postErr *model.PostError
	switch {
	case errors.Is(err, model.ErrPostNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, model.ErrNotPostAuthor):
		response.Forbidden(c, err.Error())
	case errors.Is(err, group.ErrGroupNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, model.ErrEmptyText):
		response.BadRequest(c, err.Error())
	case errors.As(err, &postErr):
		response.BadRequest(c, postErr.Message)
	case isValidationError(err):
		response.BadRequest(c, err.Error())
	default:
		response.InternalServerError(c, "internal server error")
	}
}

func isValidationError(err error) bool {
	var verrs validation.Errors
	return errors.As(err, &verrs)
}
