package session

import (
	"github.com/pratima-dawadi/ArtistOps/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// CookieName is the session cookie issued on login. The cookie carries only
// the opaque store token; the claims below live in process memory and are
// lost on restart.
const CookieName = "ams_session_id"

// Claims is the minimal identity snapshot kept for a logged-in user.
type Claims struct {
	ID        uint
	Email     string
	Role      models.Role
	FirstName string
	LastName  string
}

// Create stores the user's claims in the session store and issues the cookie.
func Create(c *gin.Context, user models.User) error {
	sess := sessions.Default(c)
	sess.Set("user_id", user.ID)
	sess.Set("email", user.Email)
	sess.Set("role", string(user.Role))
	sess.Set("first_name", user.FirstName)
	sess.Set("last_name", user.LastName)
	return sess.Save()
}

// Current resolves the session claims; ok is false for anonymous requests.
func Current(c *gin.Context) (Claims, bool) {
	sess := sessions.Default(c)
	id, ok := sess.Get("user_id").(uint)
	if !ok || id == 0 {
		return Claims{}, false
	}
	email, _ := sess.Get("email").(string)
	role, _ := sess.Get("role").(string)
	firstName, _ := sess.Get("first_name").(string)
	lastName, _ := sess.Get("last_name").(string)
	return Claims{
		ID:        id,
		Email:     email,
		Role:      models.Role(role),
		FirstName: firstName,
		LastName:  lastName,
	}, true
}

// Destroy drops the claims and expires the cookie. No-op for anonymous
// requests.
func Destroy(c *gin.Context) error {
	sess := sessions.Default(c)
	sess.Clear()
	sess.Options(sessions.Options{Path: "/", MaxAge: -1})
	return sess.Save()
}
