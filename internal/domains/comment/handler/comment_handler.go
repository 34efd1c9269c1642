package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"openblog-backend/internal/domains/comment"
	postmodel "openblog-backend/internal/domains/post/model"
	"openblog-backend/internal/shared/middleware"
	"openblog-backend/internal/shared/response"
)

type CommentHandler struct {
	commentService comment.Service
}

func NewCommentHandler(commentService comment.Service) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Add attaches a comment to a post as the authenticated viewer.
// POST /api/v1/posts/:id/comments
func (h *CommentHandler) Add(c *gin.Context) {
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

	var req comment.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.commentService.Add(c.Request.Context(), postID, viewerID, req)
	if err != nil {
		mapCommentError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// List returns the comments on a post, oldest first.
// GET /api/v1/posts/:id/comments
func (h *CommentHandler) List(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post ID")
		return
	}

	comments, err := h.commentService.ListByPost(c.Request.Context(), postID)
	if err != nil {
		mapCommentError(c, err)
		return
	}

	response.Success(c, http.StatusOK, comments)
}

// mapCommentError keeps internal failures out of response bodies:
// only domain and validation errors get a 4xx with their message.
func mapCommentError(c *gin.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.Is(err, postmodel.ErrPostNotFound):
		response.NotFound(c, err.Error())
	case errors.As(err, &verrs):
		response.BadRequest(c, err.Error())
	default:
		response.InternalServerError(c, "internal server error")
	}
}
