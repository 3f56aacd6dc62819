package server

import (
	"net/http"

	"github.com/pratima-dawadi/ArtistOps/internal/config"
	"github.com/pratima-dawadi/ArtistOps/internal/handlers"
	"github.com/pratima-dawadi/ArtistOps/internal/middleware"
	"github.com/pratima-dawadi/ArtistOps/internal/models"
	"github.com/pratima-dawadi/ArtistOps/internal/session"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/memstore"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Static("/static", "./web/static")
	r.LoadHTMLGlob("web/templates/*.html")

	// server-side in-memory session store; the cookie carries only the
	// opaque token, so sessions are gone on restart
	store := memstore.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(session.CookieName, store))

	RegisterRoutes(r)

	return r
}

// RegisterRoutes installs the route table. Split out of NewRouter so tests
// can mount the same table on their own engine.
func RegisterRoutes(r *gin.Engine) {
	r.GET("/", handlers.IndexPage)

	// AUTH
	r.GET("/register", handlers.ShowRegister)
	r.POST("/register", handlers.Register)
	r.GET("/login", handlers.ShowLogin)
	r.POST("/login", handlers.Login)
	r.POST("/logout", handlers.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	// DASHBOARD
	auth.GET("/dashboard", handlers.Dashboard)

	// USERS — super admin only
	users := auth.Group("/users", middleware.RequireRole(models.RoleSuperAdmin))
	users.POST("/create", handlers.CreateUser)
	users.POST("/update", handlers.UpdateUser)
	users.POST("/delete", handlers.DeleteUser)

	// ARTISTS — managers mutate, the songs page checks access itself
	auth.GET("/artists/:id/songs", handlers.ListArtistSongs)

	artists := auth.Group("/artists", middleware.RequireRole(models.RoleArtistManager))
	artists.POST("/create", handlers.CreateArtist)
	artists.POST("/update", handlers.UpdateArtist)
	artists.POST("/delete", handlers.DeleteArtist)
	artists.POST("/import", handlers.ImportArtists)

	auth.GET("/export/artists",
		middleware.RequireRole(models.RoleSuperAdmin, models.RoleArtistManager),
		handlers.ExportArtists,
	)

	// SONGS — artists only, ownership enforced per song
	songs := auth.Group("/songs", middleware.RequireRole(models.RoleArtist))
	songs.POST("/create", handlers.CreateSong)
	songs.POST("/update", handlers.UpdateSong)
	songs.POST("/delete", handlers.DeleteSong)

	r.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "page not found")
	})
}
