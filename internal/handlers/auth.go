package handlers

import (
	"net/http"
	"strings"

	"github.com/pratima-dawadi/ArtistOps/internal/database"
	"github.com/pratima-dawadi/ArtistOps/internal/models"
	"github.com/pratima-dawadi/ArtistOps/internal/session"
	"github.com/pratima-dawadi/ArtistOps/internal/validate"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func ShowRegister(c *gin.Context) {
	render(c, http.StatusOK, "register.html", gin.H{"error": ""})
}

type registerForm struct {
	FirstName string `form:"first_name" binding:"required"`
	LastName  string `form:"last_name" binding:"required"`
	Email     string `form:"email"`
	Password  string `form:"password"`
	Phone     string `form:"phone"`
	DOB       string `form:"dob"`
	Gender    string `form:"gender"`
	Address   string `form:"address"`
	Role      string `form:"role"`
}

func Register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		registerError(c, "First and last name are required.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(form.Email))
	password := strings.TrimSpace(form.Password)

	if email == "" || password == "" {
		registerError(c, "Email and password are required.")
		return
	}
	if err := validate.Email(email); err != nil {
		registerError(c, err.Error())
		return
	}
	if err := validate.Password(password); err != nil {
		registerError(c, err.Error())
		return
	}
	if err := validate.Phone(strings.TrimSpace(form.Phone)); err != nil {
		registerError(c, err.Error())
		return
	}
	if err := validate.DOB(strings.TrimSpace(form.DOB)); err != nil {
		registerError(c, err.Error())
		return
	}

	role := models.Role(form.Role)

	// the form can only register managers and artists; the super admin
	// is seeded from config
	switch role {
	case models.RoleArtistManager, models.RoleArtist:
		// ok
	default:
		registerError(c, "Invalid role.")
		return
	}

	gender := models.Gender(form.Gender)
	if !gender.Valid() {
		gender = models.GenderOther
	}

	var count int64
	if err := database.DB.Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		render(c, http.StatusInternalServerError, "register.html", gin.H{"error": "Failed to check existing users."})
		return
	}
	if count > 0 {
		registerError(c, "Email already exists.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		render(c, http.StatusInternalServerError, "register.html", gin.H{"error": "Failed to save user."})
		return
	}

	user := models.User{
		FirstName:    strings.TrimSpace(form.FirstName),
		LastName:     strings.TrimSpace(form.LastName),
		Email:        email,
		PasswordHash: string(hash),
		Phone:        strings.TrimSpace(form.Phone),
		DOB:          strings.TrimSpace(form.DOB),
		Gender:       gender,
		Address:      strings.TrimSpace(form.Address),
		Role:         role,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		render(c, http.StatusInternalServerError, "register.html", gin.H{"error": "Failed to save user."})
		return
	}

	c.Redirect(http.StatusSeeOther, "/login")
}

func registerError(c *gin.Context, msg string) {
	render(c, http.StatusBadRequest, "register.html", gin.H{"error": msg})
}

func ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{"error": ""})
}

type loginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

func Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Invalid form data."})
		return
	}

	email := strings.ToLower(strings.TrimSpace(form.Email))
	// registration hashes the trimmed password, so login must compare it
	// the same way
	password := strings.TrimSpace(form.Password)

	// unknown email and wrong password answer with the same message
	var user models.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		render(c, http.StatusUnauthorized, "login.html", gin.H{"error": "Invalid credentials."})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		render(c, http.StatusUnauthorized, "login.html", gin.H{"error": "Invalid credentials."})
		return
	}

	if err := session.Create(c, user); err != nil {
		render(c, http.StatusInternalServerError, "login.html", gin.H{"error": "Failed to create session."})
		return
	}

	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func Logout(c *gin.Context) {
	_ = session.Destroy(c)
	c.Redirect(http.StatusSeeOther, "/login")
}
