package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tranquilify/tranquilify-api/pkg/helpers"
	"github.com/tranquilify/tranquilify-api/pkg/response"
	"github.com/tranquilify/tranquilify-api/pkg/validation"
)

// AdminHandler authenticates the single operator account configured via
// environment variables.
type AdminHandler struct {
	Email    string
	Password string
	JWT      *helpers.JWTManager
	Cookies  *helpers.Manager
	Logger   *logrus.Logger
}

func NewAdminHandler(email, password string, jwt *helpers.JWTManager, cookies *helpers.Manager, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{Email: email, Password: password, JWT: jwt, Cookies: cookies, Logger: logger}
}

type adminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if h.Email == "" || h.Password == "" {
		response.Error[any](c, http.StatusServiceUnavailable, "admin login not configured", nil)
		return
	}
	emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(h.Email)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.Password)) == 1
	if !emailOK || !passOK {
		response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}
	token, exp, err := h.JWT.GenerateAdminToken(h.Email)
	if err != nil {
		helpers.LogError(h.Logger, "admin token failed", err, nil)
		response.Error[any](c, http.StatusInternalServerError, "failed to log in", nil)
		return
	}
	h.Cookies.SetAdmin(c, token, exp)
	response.Success[any](c, http.StatusOK, map[string]any{"admin": true}, "admin login successful", map[string]any{"expires_at": exp})
}

func (h *AdminHandler) Logout(c *gin.Context) {
	h.Cookies.ClearAdmin(c)
	response.Success[any](c, http.StatusOK, map[string]any{"logged_out": true}, "admin logged out", nil)
}
