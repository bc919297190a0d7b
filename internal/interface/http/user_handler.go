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

const maxAvatarBytes = 5 << 20

type UserHandler struct {
	Svc     *application.UserService
	Logger  *logrus.Logger
	Cookies *helpers.Manager
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger, cookies *helpers.Manager) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger, Cookies: cookies}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Name     string `json:"name" binding:"required,min=2,max=80"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type updateProfileRequest struct {
	Name      string `json:"name" binding:"omitempty,min=2,max=80"`
	AvatarURL string `json:"avatar_url" binding:"omitempty,url"`
}

func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	profile, pair, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.Error[any](c, http.StatusConflict, "email already registered", nil)
			return
		}
		helpers.LogError(h.Logger, "register failed", err, nil)
		response.Error[any](c, http.StatusInternalServerError, "failed to register", nil)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.Success(c, http.StatusCreated, profile, "account created", nil)
}

func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	profile, pair, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.Success(c, http.StatusOK, profile, "login successful", map[string]any{
		"access_expires_at":  pair.AccessTokenExpiry,
		"refresh_expires_at": pair.RefreshTokenExpiry,
	})
}

func (h *UserHandler) Refresh(c *gin.Context) {
	refresh, err := c.Cookie("refresh_token")
	if err != nil || refresh == "" {
		response.Error[any](c, http.StatusUnauthorized, "missing refresh token", nil)
		return
	}
	pair, _, err := h.Svc.Refresh(c.Request.Context(), refresh)
	if err != nil {
		response.Error[any](c, http.StatusUnauthorized, "invalid refresh token", nil)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.Success[any](c, http.StatusOK, map[string]any{"refreshed": true}, "token refreshed", map[string]any{
		"access_expires_at":  pair.AccessTokenExpiry,
		"refresh_expires_at": pair.RefreshTokenExpiry,
	})
}

func (h *UserHandler) Logout(c *gin.Context) {
	h.Svc.Logout(c.Request.Context(), c.GetString("userID"))
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, map[string]any{"logged_out": true}, "logged out", nil)
}

// AuthCheck confirms the session cookie is still valid. The auth
// middleware has already done the work by the time this runs.
func (h *UserHandler) AuthCheck(c *gin.Context) {
	response.Success[any](c, http.StatusOK, map[string]any{
		"authenticated": true,
		"user_id":       c.GetString("userID"),
		"email":         c.GetString("userEmail"),
	}, "authenticated", nil)
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	u, err := h.Svc.GetProfile(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		response.Error[any](c, http.StatusNotFound, "user not found", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"id":         u.ID,
		"email":      u.Email,
		"name":       u.Name,
		"avatar_url": u.AvatarURL,
		"created_at": u.CreatedAt,
		"updated_at": u.UpdatedAt,
	}, "profile", nil)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.UpdateProfile(c.Request.Context(), c.GetString("userID"), application.UpdateProfileInput{
		Name:      req.Name,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "failed to update profile", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"id":         u.ID,
		"email":      u.Email,
		"name":       u.Name,
		"avatar_url": u.AvatarURL,
		"updated_at": u.UpdatedAt,
	}, "profile updated", nil)
}

func (h *UserHandler) UploadAvatar(c *gin.Context) {
	file, err := c.FormFile("avatar")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "avatar file required", nil)
		return
	}
	if file.Size > maxAvatarBytes {
		response.Error[any](c, http.StatusRequestEntityTooLarge, "avatar too large", nil)
		return
	}
	src, err := file.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "cannot read avatar", nil)
		return
	}
	defer func() { _ = src.Close() }()

	url, err := h.Svc.UploadAvatar(c.Request.Context(), c.GetString("userID"), src, file.Filename, file.Header.Get("Content-Type"))
	if err != nil {
		helpers.LogError(h.Logger, "avatar upload failed", err, nil)
		response.Error[any](c, http.StatusInternalServerError, "failed to upload avatar", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"avatar_url": url}, "avatar uploaded", nil)
}

// ResetData wipes the caller's wellness data but keeps the account.
func (h *UserHandler) ResetData(c *gin.Context) {
	if err := h.Svc.ResetData(c.Request.Context(), c.GetString("userID")); err != nil {
		helpers.LogError(h.Logger, "data reset failed", err, nil)
		response.Error[any](c, http.StatusInternalServerError, "failed to reset data", nil)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"reset": true}, "data reset", nil)
}

func (h *UserHandler) DeleteAccount(c *gin.Context) {
	uid := c.GetString("userID")
	if err := h.Svc.DeleteAccount(c.Request.Context(), uid); err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error[any](c, http.StatusNotFound, "user not found", nil)
			return
		}
		helpers.LogError(h.Logger, "account delete failed", err, nil)
		response.Error[any](c, http.StatusInternalServerError, "failed to delete account", nil)
		return
	}
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "account deleted", nil)
}
