package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tranquilify/tranquilify-api/internal/container"
	handlers "github.com/tranquilify/tranquilify-api/internal/interface/http"
	"github.com/tranquilify/tranquilify-api/internal/interface/middleware"
	"github.com/tranquilify/tranquilify-api/pkg/helpers"
)

// AIModule wires the assistant chat, the daily tip and the PDF report.
type AIModule struct {
	Handler *handlers.AIHandler
	JWT     *helpers.JWTManager
}

func NewAIModule(h *handlers.AIHandler, jwt *helpers.JWTManager) *AIModule {
	return &AIModule{Handler: h, JWT: jwt}
}

func (m *AIModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	{
		// chat is pricier than the rest, keep its limit tight
		auth.POST("/ai/chat", middleware.RateLimit(container.GetRedis(), 20, time.Minute, middleware.KeyByUserID(), nil), m.Handler.SendMessage)
		auth.GET("/ai/tip", middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil), m.Handler.DailyTip)
		auth.GET("/reports/weekly", middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByUserID(), nil), m.Handler.DownloadReport)
	}
}
