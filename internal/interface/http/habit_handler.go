package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tranquilify/tranquilify-api/internal/application"
	"github.com/tranquilify/tranquilify-api/internal/domain/entity"
	"github.com/tranquilify/tranquilify-api/pkg/helpers"
	"github.com/tranquilify/tranquilify-api/pkg/response"
	"github.com/tranquilify/tranquilify-api/pkg/validation"
)

type HabitHandler struct {
	Svc    *application.HabitService
	Logger *logrus.Logger
}

func NewHabitHandler(svc *application.HabitService, logger *logrus.Logger) *HabitHandler {
	return &HabitHandler{Svc: svc, Logger: logger}
}

type createHabitRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=120"`
	Icon  string `json:"icon" binding:"omitempty,max=16"`
	Color string `json:"color" binding:"omitempty,max=32"`
}

type habitResponse struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Icon        string      `json:"icon"`
	Color       string      `json:"color"`
	Streak      int         `json:"streak"`
	Completions []time.Time `json:"completions"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func toHabitResponse(h *entity.Habit) habitResponse {
	completions := h.Completions
	if completions == nil {
		completions = []time.Time{}
	}
	return habitResponse{
		ID:          h.ID,
		Name:        h.Name,
		Icon:        h.Icon,
		Color:       h.Color,
		Streak:      h.Streak,
		Completions: completions,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}

func toHabitResponses(habits []*entity.Habit) []habitResponse {
	out := make([]habitResponse, 0, len(habits))
	for _, h := range habits {
		out = append(out, toHabitResponse(h))
	}
	return out
}

func (h *HabitHandler) Create(c *gin.Context) {
	var req createHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	habit, err := h.Svc.Create(c.Request.Context(), c.GetString("userID"), application.CreateHabitInput{
		Name:  req.Name,
		Icon:  req.Icon,
		Color: req.Color,
	})
	if err != nil {
		helpers.LogError(h.Logger, "habit create failed", err, nil)
		response.Error[any](c, http.StatusInternalServerError, "failed to create habit", nil)
		return
	}
	response.Success(c, http.StatusCreated, toHabitResponse(habit), "habit created", nil)
}

func (h *HabitHandler) List(c *gin.Context) {
	habits, err := h.Svc.List(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		helpers.LogError(h.Logger, "habit list failed", err, nil)
		response.Error[any](c, http.StatusInternalServerError, "failed to list habits", nil)
		return
	}
	response.Success(c, http.StatusOK, toHabitResponses(habits), "habits", nil)
}

// Latest returns the most recently created habits for the dashboard.
func (h *HabitHandler) Latest(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "3"))
	habits, err := h.Svc.Latest(c.Request.Context(), c.GetString("userID"), limit)
	if err != nil {
		helpers.LogError(h.Logger, "habit latest failed", err, nil)
		response.Error[any](c, http.StatusInternalServerError, "failed to list habits", nil)
		return
	}
	response.Success(c, http.StatusOK, toHabitResponses(habits), "latest habits", nil)
}

// Toggle marks the habit complete for today. A habit already completed
// today is rejected rather than un-completed.
func (h *HabitHandler) Toggle(c *gin.Context) {
	habit, err := h.Svc.ToggleCompletion(c.Request.Context(), c.GetString("userID"), c.Param("id"), time.Now())
	if err != nil {
		switch {
		case errors.Is(err, application.ErrHabitNotFound):
			response.Error[any](c, http.StatusNotFound, "habit not found", nil)
		case errors.Is(err, application.ErrAlreadyCompletedToday):
			response.Error[any](c, http.StatusConflict, "habit already completed today", nil)
		case errors.Is(err, application.ErrToggleConflict):
			response.Error[any](c, http.StatusConflict, "habit was updated concurrently, try again", nil)
		default:
			helpers.LogError(h.Logger, "habit toggle failed", err, nil)
			response.Error[any](c, http.StatusInternalServerError, "failed to complete habit", nil)
		}
		return
	}
	response.Success(c, http.StatusOK, toHabitResponse(habit), "habit completed", nil)
}

func (h *HabitHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.GetString("userID"), c.Param("id")); err != nil {
		if errors.Is(err, application.ErrHabitNotFound) {
			response.Error[any](c, http.StatusNotFound, "habit not found", nil)
			return
		}
		helpers.LogError(h.Logger, "habit delete failed", err, nil)
		response.Error[any](c, http.StatusInternalServerError, "failed to delete habit", nil)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "habit deleted", nil)
}
