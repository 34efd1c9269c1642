package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"openblog-backend/internal/domains/group"
	"openblog-backend/internal/shared/response"
)

type GroupHandler struct {
	groupService group.Service
}

func NewGroupHandler(groupService group.Service) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

// Create adds a new group.
// POST /api/v1/groups
func (h *GroupHandler) Create(c *gin.Context) {
	var req group.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	g, err := h.groupService.Create(c.Request.Context(), req)
	if err != nil {
		var verrs validation.Errors
		switch {
		case errors.Is(err, group.ErrSlugTaken):
			response.Conflict(c, err.Error())
		case errors.Is(err, group.ErrInvalidSlug), errors.As(err, &verrs):
			response.BadRequest(c, err.Error())
		default:
			response.InternalServerError(c, "internal server error")
		}
		return
	}

	response.Success(c, http.StatusCreated, g)
}

// List returns all groups.
// GET /api/v1/groups
func (h *GroupHandler) List(c *gin.Context) {
	groups, err := h.groupService.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to list groups")
		return
	}

	response.Success(c, http.StatusOK, groups)
}
