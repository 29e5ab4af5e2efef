package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/rentals/internal/services"
	"github.com/monocle-dev/rentals/internal/types"
)

type LoginUserRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) CreateUser(ctx *gin.Context) {
	var body services.RegisterInput

	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.invalidRequest(ctx)
		return
	}

	user, err := h.users.Register(ctx.Request.Context(), body)

	if err != nil {
		if kind, message := services.Describe(err); kind == services.KindConstraint {
			// Do not reveal whether the email is taken.
			h.respondError(ctx, http.StatusBadRequest, message, kind)
			return
		}
		h.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"user": types.NewUserResponse(user)})
}

func (h *Handler) LoginUser(ctx *gin.Context) {
	var body LoginUserRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.invalidRequest(ctx)
		return
	}

	result, err := h.users.Authenticate(ctx.Request.Context(), body.Email, body.Password)

	if err != nil {
		h.fail(ctx, err)
		return
	}

	status := http.StatusOK
	if !result.Success {
		status = http.StatusUnauthorized
	}

	ctx.JSON(status, types.LoginResponse{
		Success: result.Success,
		Message: result.Message,
	})
}
