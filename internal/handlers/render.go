package handlers

import (
	"github.com/pratima-dawadi/ArtistOps/internal/session"

	"github.com/gin-gonic/gin"
)

// render wraps c.HTML and exposes the session claims to every template.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if claims, ok := session.Current(c); ok {
		data["CurrentUser"] = claims
		data["CurrentUserRole"] = claims.Role
	}

	c.HTML(status, tmpl, data)
}

// renderError shows a standalone message page with a link back.
func renderError(c *gin.Context, status int, msg, back string) {
	render(c, status, "error.html", gin.H{
		"error": msg,
		"back":  back,
	})
}
