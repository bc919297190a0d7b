package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tranquilify/tranquilify-api/internal/application"
	"github.com/tranquilify/tranquilify-api/pkg/helpers"
	"github.com/tranquilify/tranquilify-api/pkg/response"
	"github.com/tranquilify/tranquilify-api/pkg/validation"
)

// WellnessHandler groups the mood, stress and journal endpoints.
type WellnessHandler struct {
	Moods    *application.MoodService
	Stresses *application.StressService
	Journals *application.JournalService
	Logger   *logrus.Logger
}

func NewWellnessHandler(moods *application.MoodService, stresses *application.StressService, journals *application.JournalService, logger *logrus.Logger) *WellnessHandler {
	return &WellnessHandler{Moods: moods, Stresses: stresses, Journals: journals, Logger: logger}
}

type logMoodRequest struct {
	Mood   int `json:"mood" binding:"required,gte=1,lte=5"`
	Energy int `json:"energy" binding:"omitempty,gte=0,lte=5"`
	Stress int `json:"stress" binding:"omitempty,gte=0,lte=5"`
}

type assessStressRequest struct {
	StressLevel      *int     `json:"stress_level" binding:"required"`
	StressFactors    []string `json:"stress_factors" binding:"omitempty,dive,max=64"`
	Symptoms         []string `json:"symptoms" binding:"omitempty,dive,max=64"`
	CopingStrategies []string `json:"coping_strategies" binding:"omitempty,dive,max=64"`
	Notes            string   `json:"notes" binding:"omitempty,max=2000"`
}

type writeJournalRequest struct {
	Content string `json:"content" binding:"required,max=10000"`
}

func (h *WellnessHandler) LogMood(c *gin.Context) {
	var req logMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	m, err := h.Moods.LogMood(c.Request.Context(), c.GetString("userID"), application.LogMoodInput{
		Mood:   req.Mood,
		Energy: req.Energy,
		Stress: req.Stress,
	})
	if err != nil {
		if errors.Is(err, application.ErrMoodOutOfRange) {
			response.Error[any](c, http.StatusBadRequest, "mood values out of range", nil)
			return
		}
		helpers.LogError(h.Logger, "mood log failed", err, nil)
		response.Error[any](c, http.StatusInternalServerError, "failed to log mood", nil)
		return
	}
	response.Success(c, http.StatusCreated, m, "mood logged", nil)
}

func (h *WellnessHandler) ListMoods(c *gin.Context) {
	logs, err := h.Moods.List(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		helpers.LogError(h.Logger, "mood list failed", err, nil)
		response.Error[any](c, http.StatusInternalServerError, "failed to list moods", nil)
		return
	}
	response.Success(c, http.StatusOK, logs, "mood logs", nil)
}

func (h *WellnessHandler) MoodTrend(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))
	points, err := h.Moods.Trend(c.Request.Context(), c.GetString("userID"), days)
	if err != nil {
		helpers.LogError(h.Logger, "mood trend failed", err, nil)
		response.Error[any](c, http.StatusInternalServerError, "failed to compute trend", nil)
		return
	}
	response.Success(c, http.StatusOK, points, "mood trend", map[string]any{"days": days})
}

func (h *WellnessHandler) WeeklyStats(c *gin.Context) {
	stats, err := h.Moods.WeeklyStats(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		helpers.LogError(h.Logger, "weekly stats failed", err, nil)
		response.Error[any](c, http.StatusInternalServerError, "failed to compute stats", nil)
		return
	}
	response.Success(c, http.StatusOK, stats, "weekly stats", nil)
}

func (h *WellnessHandler) AssessStress(c *gin.Context) {
	var req assessStressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	a, err := h.Stresses.Assess(c.Request.Context(), c.GetString("userID"), application.AssessStressInput{
		StressLevel:      *req.StressLevel,
		StressFactors:    req.StressFactors,
		Symptoms:         req.Symptoms,
		CopingStrategies: req.CopingStrategies,
		Notes:            req.Notes,
	})
	if err != nil {
		if errors.Is(err, application.ErrStressOutOfRange) {
			response.Error[any](c, http.StatusBadRequest, "stress level out of range", nil)
			return
		}
		helpers.LogError(h.Logger, "stress assess failed", err, nil)
		response.Error[any](c, http.StatusInternalServerError, "failed to save assessment", nil)
		return
	}
	response.Success(c, http.StatusCreated, a, "assessment saved", nil)
}

func (h *WellnessHandler) ListStress(c *gin.Context) {
	list, err := h.Stresses.List(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		helpers.LogError(h.Logger, "stress list failed", err, nil)
		response.Error[any](c, http.StatusInternalServerError, "failed to list assessments", nil)
		return
	}
	response.Success(c, http.StatusOK, list, "stress assessments", nil)
}

// StressFactors serves the 7-day factor breakdown for the dashboard chart.
func (h *WellnessHandler) StressFactors(c *gin.Context) {
	stats, err := h.Stresses.FactorBreakdown(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		helpers.LogError(h.Logger, "stress factors failed", err, nil)
		response.Error[any](c, http.StatusInternalServerError, "failed to aggregate factors", nil)
		return
	}
	response.Success(c, http.StatusOK, stats, "stress factors", nil)
}

func (h *WellnessHandler) WriteJournal(c *gin.Context) {
	var req writeJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	j, err := h.Journals.Write(c.Request.Context(), c.GetString("userID"), req.Content)
	if err != nil {
		if errors.Is(err, application.ErrJournalEmpty) {
			response.Error[any](c, http.StatusBadRequest, "journal entry is empty", nil)
			return
		}
		helpers.LogError(h.Logger, "journal write failed", err, nil)
		response.Error[any](c, http.StatusInternalServerError, "failed to save entry", nil)
		return
	}
	response.Success(c, http.StatusCreated, j, "entry saved", nil)
}

func (h *WellnessHandler) ListJournals(c *gin.Context) {
	list, err := h.Journals.List(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		helpers.LogError(h.Logger, "journal list failed", err, nil)
		response.Error[any](c, http.StatusInternalServerError, "failed to list entries", nil)
		return
	}
	response.Success(c, http.StatusOK, list, "journal entries", nil)
}

func (h *WellnessHandler) DeleteJournal(c *gin.Context) {
	if err := h.Journals.Delete(c.Request.Context(), c.GetString("userID"), c.Param("id")); err != nil {
		if errors.Is(err, application.ErrJournalNotFound) {
			response.Error[any](c, http.StatusNotFound, "journal entry not found", nil)
			return
		}
		helpers.LogError(h.Logger, "journal delete failed", err, nil)
		response.Error[any](c, http.StatusInternalServerError, "failed to delete entry", nil)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "entry deleted", nil)
}
