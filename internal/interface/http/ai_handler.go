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

type AIHandler struct {
	Chat    *application.ChatService
	Reports *application.ReportService
	Logger  *logrus.Logger
}

func NewAIHandler(chat *application.ChatService, reports *application.ReportService, logger *logrus.Logger) *AIHandler {
	return &AIHandler{Chat: chat, Reports: reports, Logger: logger}
}

type chatRequest struct {
	Message string `json:"message" binding:"required,min=1,max=2000"`
}

func (h *AIHandler) SendMessage(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	reply, err := h.Chat.Chat(c.Request.Context(), req.Message)
	if err != nil {
		if errors.Is(err, application.ErrChatUnavailable) {
			response.Error[any](c, http.StatusServiceUnavailable, "assistant unavailable, try again later", nil)
			return
		}
		helpers.LogError(h.Logger, "chat failed", err, nil)
		response.Error[any](c, http.StatusInternalServerError, "failed to reach assistant", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reply": reply}, "assistant reply", nil)
}

func (h *AIHandler) DailyTip(c *gin.Context) {
	tip, err := h.Chat.DailyTip(c.Request.Context())
	if err != nil {
		helpers.LogError(h.Logger, "daily tip failed", err, nil)
		response.Error[any](c, http.StatusInternalServerError, "failed to load tip", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tip": tip}, "daily tip", nil)
}

// DownloadReport streams the seven-day wellness journal as a PDF.
func (h *AIHandler) DownloadReport(c *gin.Context) {
	pdf, err := h.Reports.WellnessJournalPDF(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		helpers.LogError(h.Logger, "report failed", err, nil)
		response.Error[any](c, http.StatusInternalServerError, "failed to generate report", nil)
		return
	}
	c.Header("Content-Disposition", `attachment; filename=mental-health-journal.pdf`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
