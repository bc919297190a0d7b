package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tranquilify/tranquilify-api/internal/application"
	"github.com/tranquilify/tranquilify-api/pkg/helpers"
	"github.com/tranquilify/tranquilify-api/pkg/response"
	"github.com/tranquilify/tranquilify-api/pkg/validation"
)

// AuthHandler exposes the unauthenticated password reset flow.
type AuthHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.UserService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type resetInitRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type resetConfirmRequest struct {
	Token    string `json:"token" binding:"required,uuid"`
	Password string `json:"password" binding:"required,pwd"`
}

// ResetInit always answers 200 so the endpoint cannot be used to probe for
// registered emails.
func (h *AuthHandler) ResetInit(c *gin.Context) {
	var req resetInitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.ResetInit(c.Request.Context(), req.Email); err != nil {
		helpers.LogError(h.Logger, "reset init failed", err, nil)
		response.Error[any](c, http.StatusInternalServerError, "failed to start reset", nil)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"sent": true}, "if the email exists, a reset link is on its way", nil)
}

func (h *AuthHandler) ResetConfirm(c *gin.Context) {
	var req resetConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.ResetConfirm(c.Request.Context(), req.Token, req.Password); err != nil {
		if errors.Is(err, application.ErrResetTokenInvalid) {
			response.Error[any](c, http.StatusUnauthorized, "reset token invalid or expired", nil)
			return
		}
		helpers.LogError(h.Logger, "reset confirm failed", err, nil)
		response.Error[any](c, http.StatusInternalServerError, "failed to reset password", nil)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"reset": true}, "password updated", nil)
}
