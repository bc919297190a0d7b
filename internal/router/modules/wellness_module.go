package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tranquilify/tranquilify-api/internal/container"
	handlers "github.com/tranquilify/tranquilify-api/internal/interface/http"
	"github.com/tranquilify/tranquilify-api/internal/interface/middleware"
	"github.com/tranquilify/tranquilify-api/pkg/helpers"
)

// WellnessModule wires mood, stress and journal endpoints. All routes
// require an authenticated session.
type WellnessModule struct {
	Handler *handlers.WellnessHandler
	JWT     *helpers.JWTManager
}

func NewWellnessModule(h *handlers.WellnessHandler, jwt *helpers.JWTManager) *WellnessModule {
	return &WellnessModule{Handler: h, JWT: jwt}
}

func (m *WellnessModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/moods", m.Handler.LogMood)
		auth.GET("/moods", m.Handler.ListMoods)
		auth.GET("/moods/trends", m.Handler.MoodTrend)
		auth.GET("/moods/weekly", m.Handler.WeeklyStats)

		auth.POST("/stress", m.Handler.AssessStress)
		auth.GET("/stress", m.Handler.ListStress)
		auth.GET("/stress/factors", m.Handler.StressFactors)

		auth.POST("/journals", m.Handler.WriteJournal)
		auth.GET("/journals", m.Handler.ListJournals)
		auth.DELETE("/journals/:id", m.Handler.DeleteJournal)
	}
}
