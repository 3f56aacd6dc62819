package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/pratima-dawadi/ArtistOps/internal/database"
	"github.com/pratima-dawadi/ArtistOps/internal/models"
	"github.com/pratima-dawadi/ArtistOps/internal/session"

	"github.com/gin-gonic/gin"
)

func IndexPage(c *gin.Context) {
	_, authed := session.Current(c)

	render(c, http.StatusOK, "index.html", gin.H{
		"isAuthed": authed,
	})
}

// Dashboard serves the users and artists tabs. Artists have neither tab and
// land on their own songs page instead.
func Dashboard(c *gin.Context) {
	claims, ok := session.Current(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	if claims.Role == models.RoleArtist {
		var artist models.Artist
		if err := database.DB.Where("user_id = ?", claims.ID).First(&artist).Error; err != nil {
			c.String(http.StatusNotFound, "artist profile not found")
			return
		}
		c.Redirect(http.StatusSeeOther, fmt.Sprintf("/artists/%d/songs", artist.ID))
		return
	}

	tab := c.DefaultQuery("tab", defaultTab(claims.Role))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	switch tab {
	case "users":
		if claims.Role != models.RoleSuperAdmin {
			c.String(http.StatusForbidden, "access denied: only the super admin can manage users")
			return
		}

		var total int64
		if err := database.DB.Model(&models.User{}).Count(&total).Error; err != nil {
			c.String(http.StatusInternalServerError, "failed to load users")
			return
		}
		pg := paginate(page, DefaultPageSize, total)

		var users []models.User
		if err := database.DB.
			Order("id DESC").
			Limit(pg.PageSize).
			Offset(pg.Offset()).
			Find(&users).Error; err != nil {
			c.String(http.StatusInternalServerError, "failed to load users")
			return
		}

		render(c, http.StatusOK, "dashboard.html", gin.H{
			"tab":   "users",
			"users": users,
			"pg":    pg,
		})

	case "artists":
		var total int64
		if err := database.DB.Model(&models.Artist{}).Count(&total).Error; err != nil {
			c.String(http.StatusInternalServerError, "failed to load artists")
			return
		}
		pg := paginate(page, DefaultPageSize, total)

		var artists []models.Artist
		if err := database.DB.
			Preload("User").
			Order("id DESC").
			Limit(pg.PageSize).
			Offset(pg.Offset()).
			Find(&artists).Error; err != nil {
			c.String(http.StatusInternalServerError, "failed to load artists")
			return
		}

		render(c, http.StatusOK, "dashboard.html", gin.H{
			"tab":      "artists",
			"artists":  artists,
			"pg":       pg,
			"imported": c.Query("imported"),
		})

	default:
		c.String(http.StatusNotFound, "unknown dashboard tab")
	}
}

func defaultTab(role models.Role) string {
	if role == models.RoleSuperAdmin {
		return "users"
	}
	return "artists"
}
