package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/pratima-dawadi/ArtistOps/internal/database"
	"github.com/pratima-dawadi/ArtistOps/internal/models"
	"github.com/pratima-dawadi/ArtistOps/internal/session"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// canAccessArtistSongs is the one song-access rule: admins and managers may
// reach any artist's songs, an artist only the profile linked to their own
// user id, everyone else is denied.
func canAccessArtistSongs(claims session.Claims, artist models.Artist) bool {
	switch claims.Role {
	case models.RoleSuperAdmin, models.RoleArtistManager:
		return true
	case models.RoleArtist:
		return artist.UserID == claims.ID
	}
	return false
}

// ownArtist resolves the profile linked to the session user.
func ownArtist(claims session.Claims) (models.Artist, error) {
	var artist models.Artist
	err := database.DB.Where("user_id = ?", claims.ID).First(&artist).Error
	return artist, err
}

func ListArtistSongs(c *gin.Context) {
	claims, ok := session.Current(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.String(http.StatusBadRequest, "invalid artist id")
		return
	}

	var artist models.Artist
	if err := database.DB.Preload("User").First(&artist, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.String(http.StatusNotFound, "artist not found")
			return
		}
		c.String(http.StatusInternalServerError, "failed to load artist")
		return
	}

	if !canAccessArtistSongs(claims, artist) {
		c.String(http.StatusForbidden, "access denied: you can only view your own songs")
		return
	}

	var songs []models.Song
	if err := database.DB.
		Where("artist_id = ?", artist.ID).
		Order("id DESC").
		Find(&songs).Error; err != nil {
		c.String(http.StatusInternalServerError, "failed to load songs")
		return
	}

	render(c, http.StatusOK, "songs.html", gin.H{
		"artist":  artist,
		"songs":   songs,
		"genres":  models.Genres,
		"canEdit": claims.Role == models.RoleArtist && artist.UserID == claims.ID,
	})
}

type songForm struct {
	ID        uint   `form:"id"`
	ArtistID  uint   `form:"artist_id"`
	Title     string `form:"title"`
	AlbumName string `form:"album_name"`
	Genre     string `form:"genre"`
}

func songsPath(artistID uint) string {
	return fmt.Sprintf("/artists/%d/songs", artistID)
}

func CreateSong(c *gin.Context) {
	claims, _ := session.Current(c)

	own, err := ownArtist(claims)
	if err != nil {
		c.String(http.StatusNotFound, "artist profile not found")
		return
	}

	var form songForm
	if err := c.ShouldBind(&form); err != nil {
		renderError(c, http.StatusBadRequest, "Invalid form data.", songsPath(own.ID))
		return
	}

	if form.ArtistID != own.ID {
		c.String(http.StatusForbidden, "access denied: you can only manage your own songs")
		return
	}

	title := strings.TrimSpace(form.Title)
	if title == "" {
		renderError(c, http.StatusBadRequest, "Title is required.", songsPath(own.ID))
		return
	}
	genre := models.Genre(form.Genre)
	if !genre.Valid() {
		renderError(c, http.StatusBadRequest, "Invalid genre.", songsPath(own.ID))
		return
	}

	song := models.Song{
		ArtistID:  own.ID,
		Title:     title,
		AlbumName: strings.TrimSpace(form.AlbumName),
		Genre:     genre,
	}
	if err := database.DB.Create(&song).Error; err != nil {
		renderError(c, http.StatusInternalServerError, "Failed to save song.", songsPath(own.ID))
		return
	}

	c.Redirect(http.StatusSeeOther, songsPath(own.ID))
}

func UpdateSong(c *gin.Context) {
	claims, _ := session.Current(c)

	own, err := ownArtist(claims)
	if err != nil {
		c.String(http.StatusNotFound, "artist profile not found")
		return
	}

	var form songForm
	if err := c.ShouldBind(&form); err != nil || form.ID == 0 {
		renderError(c, http.StatusBadRequest, "Invalid form data.", songsPath(own.ID))
		return
	}

	var song models.Song
	if err := database.DB.First(&song, form.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.String(http.StatusNotFound, "song not found")
			return
		}
		c.String(http.StatusInternalServerError, "failed to load song")
		return
	}

	if song.ArtistID != own.ID {
		c.String(http.StatusForbidden, "access denied: you can only manage your own songs")
		return
	}

	title := strings.TrimSpace(form.Title)
	if title == "" {
		renderError(c, http.StatusBadRequest, "Title is required.", songsPath(own.ID))
		return
	}
	genre := models.Genre(form.Genre)
	if !genre.Valid() {
		renderError(c, http.StatusBadRequest, "Invalid genre.", songsPath(own.ID))
		return
	}

	song.Title = title
	song.AlbumName = strings.TrimSpace(form.AlbumName)
	song.Genre = genre

	if err := database.DB.Save(&song).Error; err != nil {
		renderError(c, http.StatusInternalServerError, "Failed to save song.", songsPath(own.ID))
		return
	}

	c.Redirect(http.StatusSeeOther, songsPath(own.ID))
}

func DeleteSong(c *gin.Context) {
	claims, _ := session.Current(c)

	own, err := ownArtist(claims)
	if err != nil {
		c.String(http.StatusNotFound, "artist profile not found")
		return
	}

	id, err := strconv.ParseUint(c.PostForm("id"), 10, 64)
	if err != nil || id == 0 {
		renderError(c, http.StatusBadRequest, "Invalid song id.", songsPath(own.ID))
		return
	}

	var song models.Song
	if err := database.DB.First(&song, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.String(http.StatusNotFound, "song not found")
			return
		}
		c.String(http.StatusInternalServerError, "failed to load song")
		return
	}

	if song.ArtistID != own.ID {
		c.String(http.StatusForbidden, "access denied: you can only manage your own songs")
		return
	}

	if err := database.DB.Delete(&song).Error; err != nil {
		renderError(c, http.StatusInternalServerError, "Failed to delete song.", songsPath(own.ID))
		return
	}

	c.Redirect(http.StatusSeeOther, songsPath(own.ID))
}
