package middleware

import (
	"net/http"

	"github.com/Bruddles/FanaticsSupportRota/web/session"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a route group to session users holding one of the given
// roles. Unauthenticated requests get 401, wrong roles get 403.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool)
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		user := session.GetLoginUser(c)
		if user == nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		if !allowed[user.Type] {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}
