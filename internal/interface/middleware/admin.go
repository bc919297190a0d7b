package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tranquilify/tranquilify-api/pkg/helpers"
	"github.com/tranquilify/tranquilify-api/pkg/response"
)

// Admin validates the operator token cookie. It sets adminEmail in the
// Gin context on success.
func Admin(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("admin_token")
		if err != nil || token == "" {
			response.Error[any](c, http.StatusUnauthorized, "missing admin token", nil)
			c.Abort()
			return
		}
		claims, err := jwt.ParseAdminToken(token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid admin token", nil)
			c.Abort()
			return
		}
		c.Set("adminEmail", claims.UserID)
		c.Next()
	}
}
