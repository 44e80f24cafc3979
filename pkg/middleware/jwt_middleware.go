package middleware

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"strings"

	"carelink/internal/models/db_models"
	"carelink/pkg/utils"
)

func JWTAuthMiddleware() gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		// Pass user information to the next handler
		c.Set("phone", claims.Phone)
		c.Set("Role", claims.Role)
		c.Next()
	}
}

// RoleMiddleware gates a role-home route group to one of senior/family/pal.
func RoleMiddleware(requiredRole db_models.Role) gin.HandlerFunc {

	return func(c *gin.Context) {
		role := c.GetString("Role")

		if role != string(requiredRole) {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
