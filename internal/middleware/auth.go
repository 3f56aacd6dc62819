package middleware

import (
	"net/http"

	"github.com/pratima-dawadi/ArtistOps/internal/models"
	"github.com/pratima-dawadi/ArtistOps/internal/session"

	"github.com/gin-gonic/gin"
)

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := session.Current(c); !ok {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func RequireRole(roles ...models.Role) gin.HandlerFunc {
	roleSet := map[models.Role]struct{}{}
	for _, r := range roles {
		roleSet[r] = struct{}{}
	}

	return func(c *gin.Context) {
		claims, ok := session.Current(c)
		if !ok {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		if _, ok := roleSet[claims.Role]; !ok {
			c.String(http.StatusForbidden, "access denied: insufficient role")
			c.Abort()
			return
		}
		c.Next()
	}
}
