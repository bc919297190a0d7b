package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tranquilify/tranquilify-api/internal/container"
	handlers "github.com/tranquilify/tranquilify-api/internal/interface/http"
	"github.com/tranquilify/tranquilify-api/internal/interface/middleware"
	"github.com/tranquilify/tranquilify-api/pkg/helpers"
)

// HabitModule wires the habit tracking endpoints. All routes require an
// authenticated session.
type HabitModule struct {
	Handler *handlers.HabitHandler
	JWT     *helpers.JWTManager
}

func NewHabitModule(h *handlers.HabitHandler, jwt *helpers.JWTManager) *HabitModule {
	return &HabitModule{Handler: h, JWT: jwt}
}

func (m *HabitModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/habits")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("", m.Handler.Create)
		auth.GET("", m.Handler.List)
		auth.GET("/latest", m.Handler.Latest)
		auth.PATCH("/:id/toggle", m.Handler.Toggle)
		auth.DELETE("/:id", m.Handler.Delete)
	}
}
