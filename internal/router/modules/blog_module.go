package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tranquilify/tranquilify-api/internal/container"
	handlers "github.com/tranquilify/tranquilify-api/internal/interface/http"
	"github.com/tranquilify/tranquilify-api/internal/interface/middleware"
	"github.com/tranquilify/tranquilify-api/pkg/helpers"
)

// BlogModule wires the public article endpoints and the operator-only
// publishing endpoints.
// Public: GET /api/blogs, GET /api/blogs/search, GET /api/blogs/:id
// Admin: POST /api/admin/login, POST /api/admin/blogs, image upload, delete.
type BlogModule struct {
	Blogs *handlers.BlogHandler
	Admin *handlers.AdminHandler
	JWT   *helpers.JWTManager
}

func NewBlogModule(blogs *handlers.BlogHandler, admin *handlers.AdminHandler, jwt *helpers.JWTManager) *BlogModule {
	return &BlogModule{Blogs: blogs, Admin: admin, JWT: jwt}
}

func (m *BlogModule) Register(rg *gin.RouterGroup) {
	publicLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), nil)
	rg.GET("/blogs", publicLimiter, m.Blogs.List)
	rg.GET("/blogs/search", publicLimiter, m.Blogs.Search)
	rg.GET("/blogs/:id", publicLimiter, m.Blogs.Get)

	adminLoginLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	rg.POST("/admin/login", adminLoginLimiter, m.Admin.Login)

	admin := rg.Group("/admin")
	admin.Use(middleware.Admin(m.JWT))
	{
		admin.POST("/logout", m.Admin.Logout)
		admin.POST("/blogs", m.Blogs.Publish)
		admin.POST("/blogs/:id/image", m.Blogs.UploadImage)
		admin.DELETE("/blogs/:id", m.Blogs.Delete)
	}
}
