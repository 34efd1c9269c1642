package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"openblog-backend/internal/domains/follow"
	usermodel "openblog-backend/internal/domains/user/model"
	"openblog-backend/internal/shared/middleware"
	"openblog-backend/internal/shared/response"
)

type FollowHandler struct {
	followService follow.Service
}

func NewFollowHandler(followService follow.Service) *FollowHandler {
	return &FollowHandler{followService: followService}
}

// Follow subscribes the viewer to an author's posts.
// POST /api/v1/users/:username/follow
func (h *FollowHandler) Follow(c *gin.Context) {
	viewerID, ok := middleware.ViewerID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	result, err := h.followService.Follow(c.Request.Context(), viewerID, c.Param("username"))
	if err != nil {
		mapFollowError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Unfollow removes the viewer's subscription to an author.
// DELETE /api/v1/users/:username/follow
func (h *FollowHandler) Unfollow(c *gin.Context) {
	viewerID, ok := middleware.ViewerID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	result, err := h.followService.Unfollow(c.Request.Context(), viewerID, c.Param("username"))
	if err != nil {
		mapFollowError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

func mapFollowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usermodel.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, follow.ErrSelfFollow):
		response.Conflict(c, err.Error())
	default:
		response.InternalServerError(c, "internal server error")
	}
}
