package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"openblog-backend/internal/domains/feed"
	"openblog-backend/internal/domains/group"
	postmodel "openblog-backend/internal/domains/post/model"
	usermodel "openblog-backend/internal/domains/user/model"
	"openblog-backend/internal/shared/middleware"
	"openblog-backend/internal/shared/pagination"
	"openblog-backend/internal/shared/response"
)

type FeedHandler struct {
	feedService feed.Service
}

func NewFeedHandler(feedService feed.Service) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// Index serves the public front page.
// GET /api/v1/feed?page=N
func (h *FeedHandler) Index(c *gin.Context) {
	result, err := h.feedService.Index(c.Request.Context(), pageParam(c))
	if err != nil {
		response.InternalServerError(c, "failed to load feed")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, result.Posts, pageMeta(result.Page))
}

// Group serves a group's feed by slug.
// GET /api/v1/groups/:slug/posts?page=N
func (h *FeedHandler) Group(c *gin.Context) {
	result, err := h.feedService.Group(c.Request.Context(), c.Param("slug"), pageParam(c))
	if err != nil {
		if errors.Is(err, group.ErrGroupNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalServerError(c, "failed to load group feed")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, gin.H{
		"group": result.Group,
		"posts": result.Posts,
	}, pageMeta(result.Page))
}

// Profile serves an author's feed by username. Works for guests; an
// authenticated viewer additionally gets their follow state.
// GET /api/v1/users/:username/posts?page=N
func (h *FeedHandler) Profile(c *gin.Context) {
	var viewerID *uuid.UUID
	if id, ok := middleware.ViewerID(c); ok {
		viewerID = &id
	}

	result, err := h.feedService.Profile(c.Request.Context(), c.Param("username"), viewerID, pageParam(c))
	if err != nil {
		if errors.Is(err, usermodel.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalServerError(c, "failed to load profile")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, gin.H{
		"author":       result.Author,
		"follow_state": result.FollowState,
		"posts":        result.Posts,
	}, pageMeta(result.Page))
}

// Personal serves the viewer's subscription feed.
// GET /api/v1/feed/personal?page=N
func (h *FeedHandler) Personal(c *gin.Context) {
	viewerID, ok := middleware.ViewerID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	result, err := h.feedService.Personal(c.Request.Context(), viewerID, pageParam(c))
	if err != nil {
		response.InternalServerError(c, "failed to load feed")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, result.Posts, pageMeta(result.Page))
}

// PostDetail serves a single post with its comment thread.
// GET /api/v1/posts/:id
func (h *FeedHandler) PostDetail(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post ID")
		return
	}

	result, err := h.feedService.PostDetail(c.Request.Context(), postID)
	if err != nil {
		if errors.Is(err, postmodel.ErrPostNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalServerError(c, "failed to load post")
		return
	}

	response.Success(c, http.StatusOK, result)
}

// pageParam reads ?page=, defaulting to 1. Malformed values fall back
// to 1; out-of-range values are clamped downstream.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func pageMeta(p pagination.Page) *response.Meta {
	return &response.Meta{
		Page:      p.Number,
		PageSize:  p.Size,
		PageCount: p.PageCount,
		Total:     p.Total,
	}
}
