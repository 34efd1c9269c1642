package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"openblog-backend/internal/domains/user/model"
	"openblog-backend/internal/domains/user/service"
	"openblog-backend/internal/shared/response"
)

type UserHandler struct {
	userService service.ServiceInterface
}

func NewUserHandler(userService service.ServiceInterface) *UserHandler {
	return &UserHandler{userService: userService}
}

// Register creates a new account.
// POST /api/v1/auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		var verrs validation.Errors
		switch {
		case errors.Is(err, model.ErrUsernameTaken), errors.Is(err, model.ErrEmailTaken):
			response.Conflict(c, err.Error())
		case errors.As(err, &verrs):
			response.BadRequest(c, err.Error())
		default:
			response.InternalServerError(c, "internal server error")
		}
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// Login exchanges credentials for an access token.
// POST /api/v1/auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		var verrs validation.Errors
		switch {
		case errors.Is(err, model.ErrInvalidCredentials):
			response.Unauthorized(c, err.Error())
		case errors.As(err, &verrs):
			response.BadRequest(c, err.Error())
		default:
			response.InternalServerError(c, "internal server error")
		}
		return
	}

	response.Success(c, http.StatusOK, resp)
}
