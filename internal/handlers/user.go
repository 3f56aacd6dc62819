package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/pratima-dawadi/ArtistOps/internal/database"
	"github.com/pratima-dawadi/ArtistOps/internal/models"
	"github.com/pratima-dawadi/ArtistOps/internal/validate"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// userForm covers both the user and the combined user+artist create/update
// forms; the artist fields stay empty for non-artist roles.
type userForm struct {
	ID                 uint   `form:"id"`
	FirstName          string `form:"first_name"`
	LastName           string `form:"last_name"`
	Email              string `form:"email"`
	Password           string `form:"password"`
	Phone              string `form:"phone"`
	DOB                string `form:"dob"`
	Gender             string `form:"gender"`
	Address            string `form:"address"`
	Role               string `form:"role"`
	StageName          string `form:"stage_name"`
	FirstReleaseYear   string `form:"first_release_year"`
	NoOfAlbumsReleased string `form:"no_of_albums_released"`
}

// buildUser validates the identity fields and assembles the row. The second
// return value is a user-facing message, empty on success.
func buildUser(form userForm) (models.User, string) {
	email := strings.ToLower(strings.TrimSpace(form.Email))
	password := strings.TrimSpace(form.Password)

	if strings.TrimSpace(form.FirstName) == "" || strings.TrimSpace(form.LastName) == "" {
		return models.User{}, "First and last name are required."
	}
	if email == "" || password == "" {
		return models.User{}, "Email and password are required."
	}
	if err := validate.Email(email); err != nil {
		return models.User{}, err.Error()
	}
	if err := validate.Password(password); err != nil {
		return models.User{}, err.Error()
	}
	if err := validate.Phone(strings.TrimSpace(form.Phone)); err != nil {
		return models.User{}, err.Error()
	}
	if err := validate.DOB(strings.TrimSpace(form.DOB)); err != nil {
		return models.User{}, err.Error()
	}

	gender := models.Gender(form.Gender)
	if !gender.Valid() {
		gender = models.GenderOther
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, "Failed to hash password."
	}

	return models.User{
		FirstName:    strings.TrimSpace(form.FirstName),
		LastName:     strings.TrimSpace(form.LastName),
		Email:        email,
		PasswordHash: string(hash),
		Phone:        strings.TrimSpace(form.Phone),
		DOB:          strings.TrimSpace(form.DOB),
		Gender:       gender,
		Address:      strings.TrimSpace(form.Address),
	}, ""
}

// buildArtistProfile validates and assembles the profile part of a combined
// user+artist form.
func buildArtistProfile(form userForm) (models.Artist, string) {
	stage := strings.TrimSpace(form.StageName)
	if stage == "" {
		return models.Artist{}, "Stage name is required for artists."
	}

	year, err := strconv.Atoi(strings.TrimSpace(form.FirstReleaseYear))
	if err != nil {
		return models.Artist{}, "First release year must be a number."
	}

	albums := 0
	if s := strings.TrimSpace(form.NoOfAlbumsReleased); s != "" {
		albums, err = strconv.Atoi(s)
		if err != nil {
			return models.Artist{}, "Number of albums must be a number."
		}
	}

	return models.Artist{
		StageName:          stage,
		FirstReleaseYear:   year,
		NoOfAlbumsReleased: albums,
	}, ""
}

func emailTaken(email string, excludeID uint) (bool, error) {
	var count int64
	err := database.DB.Model(&models.User{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error
	return count > 0, err
}

// CreateUser handles the super admin's user form. A role=artist submission
// creates the user row and the artist profile as one unit.
func CreateUser(c *gin.Context) {
	var form userForm
	if err := c.ShouldBind(&form); err != nil {
		renderError(c, http.StatusBadRequest, "Invalid form data.", "/dashboard?tab=users")
		return
	}

	role := models.Role(form.Role)
	if !role.Valid() {
		renderError(c, http.StatusBadRequest, "Invalid role.", "/dashboard?tab=users")
		return
	}

	user, msg := buildUser(form)
	if msg != "" {
		renderError(c, http.StatusBadRequest, msg, "/dashboard?tab=users")
		return
	}
	user.Role = role

	taken, err := emailTaken(user.Email, 0)
	if err != nil {
		renderError(c, http.StatusInternalServerError, "Failed to check existing users.", "/dashboard?tab=users")
		return
	}
	if taken {
		renderError(c, http.StatusBadRequest, "Email already exists.", "/dashboard?tab=users")
		return
	}

	if role == models.RoleArtist {
		artist, msg := buildArtistProfile(form)
		if msg != "" {
			renderError(c, http.StatusBadRequest, msg, "/dashboard?tab=users")
			return
		}
		if err := database.CreateUserWithArtist(&user, &artist); err != nil {
			renderError(c, http.StatusInternalServerError, "Failed to save user.", "/dashboard?tab=users")
			return
		}
	} else if err := database.DB.Create(&user).Error; err != nil {
		renderError(c, http.StatusInternalServerError, "Failed to save user.", "/dashboard?tab=users")
		return
	}

	c.Redirect(http.StatusSeeOther, "/dashboard?tab=users")
}

// UpdateUser edits identity fields and the role. The password is never
// changed here, and no artist profile is created on a role change.
func UpdateUser(c *gin.Context) {
	var form userForm
	if err := c.ShouldBind(&form); err != nil || form.ID == 0 {
		renderError(c, http.StatusBadRequest, "Invalid form data.", "/dashboard?tab=users")
		return
	}

	var user models.User
	if err := database.DB.First(&user, form.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.String(http.StatusNotFound, "user not found")
			return
		}
		c.String(http.StatusInternalServerError, "failed to load user")
		return
	}

	if strings.TrimSpace(form.FirstName) == "" || strings.TrimSpace(form.LastName) == "" {
		renderError(c, http.StatusBadRequest, "First and last name are required.", "/dashboard?tab=users")
		return
	}

	email := strings.ToLower(strings.TrimSpace(form.Email))
	if err := validate.Email(email); err != nil {
		renderError(c, http.StatusBadRequest, err.Error(), "/dashboard?tab=users")
		return
	}
	if err := validate.Phone(strings.TrimSpace(form.Phone)); err != nil {
		renderError(c, http.StatusBadRequest, err.Error(), "/dashboard?tab=users")
		return
	}
	if err := validate.DOB(strings.TrimSpace(form.DOB)); err != nil {
		renderError(c, http.StatusBadRequest, err.Error(), "/dashboard?tab=users")
		return
	}

	role := models.Role(form.Role)
	if !role.Valid() {
		renderError(c, http.StatusBadRequest, "Invalid role.", "/dashboard?tab=users")
		return
	}

	taken, err := emailTaken(email, user.ID)
	if err != nil {
		renderError(c, http.StatusInternalServerError, "Failed to check existing users.", "/dashboard?tab=users")
		return
	}
	if taken {
		renderError(c, http.StatusBadRequest, "Email already exists.", "/dashboard?tab=users")
		return
	}

	gender := models.Gender(form.Gender)
	if !gender.Valid() {
		gender = models.GenderOther
	}

	user.FirstName = strings.TrimSpace(form.FirstName)
	user.LastName = strings.TrimSpace(form.LastName)
	user.Email = email
	user.Phone = strings.TrimSpace(form.Phone)
	user.DOB = strings.TrimSpace(form.DOB)
	user.Gender = gender
	user.Address = strings.TrimSpace(form.Address)
	user.Role = role

	if err := database.DB.Save(&user).Error; err != nil {
		renderError(c, http.StatusInternalServerError, "Failed to save user.", "/dashboard?tab=users")
		return
	}

	c.Redirect(http.StatusSeeOther, "/dashboard?tab=users")
}

// DeleteUser removes the user row; a linked artist profile and its songs go
// with it through the FK cascades.
func DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.PostForm("id"), 10, 64)
	if err != nil || id == 0 {
		renderError(c, http.StatusBadRequest, "Invalid user id.", "/dashboard?tab=users")
		return
	}

	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.String(http.StatusNotFound, "user not found")
			return
		}
		c.String(http.StatusInternalServerError, "failed to load user")
		return
	}

	if err := database.DB.Delete(&user).Error; err != nil {
		renderError(c, http.StatusInternalServerError, "Failed to delete user.", "/dashboard?tab=users")
		return
	}

	c.Redirect(http.StatusSeeOther, "/dashboard?tab=users")
}
