package handlers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"net/http"
	"strconv"

	"github.com/pratima-dawadi/ArtistOps/internal/database"
	"github.com/pratima-dawadi/ArtistOps/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateArtist handles the manager's artist form: one user row with
// role=artist plus the profile row, created atomically.
func CreateArtist(c *gin.Context) {
	var form userForm
	if err := c.ShouldBind(&form); err != nil {
		renderError(c, http.StatusBadRequest, "Invalid form data.", "/dashboard?tab=artists")
		return
	}

	user, msg := buildUser(form)
	if msg != "" {
		renderError(c, http.StatusBadRequest, msg, "/dashboard?tab=artists")
		return
	}
	user.Role = models.RoleArtist

	artist, msg := buildArtistProfile(form)
	if msg != "" {
		renderError(c, http.StatusBadRequest, msg, "/dashboard?tab=artists")
		return
	}

	taken, err := emailTaken(user.Email, 0)
	if err != nil {
		renderError(c, http.StatusInternalServerError, "Failed to check existing users.", "/dashboard?tab=artists")
		return
	}
	if taken {
		renderError(c, http.StatusBadRequest, "Email already exists.", "/dashboard?tab=artists")
		return
	}

	if err := database.CreateUserWithArtist(&user, &artist); err != nil {
		renderError(c, http.StatusInternalServerError, "Failed to save artist.", "/dashboard?tab=artists")
		return
	}

	c.Redirect(http.StatusSeeOther, "/dashboard?tab=artists")
}

// UpdateArtist edits the profile fields only; the owning user row is managed
// on the users tab.
func UpdateArtist(c *gin.Context) {
	var form userForm
	if err := c.ShouldBind(&form); err != nil || form.ID == 0 {
		renderError(c, http.StatusBadRequest, "Invalid form data.", "/dashboard?tab=artists")
		return
	}

	var artist models.Artist
	if err := database.DB.First(&artist, form.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.String(http.StatusNotFound, "artist not found")
			return
		}
		c.String(http.StatusInternalServerError, "failed to load artist")
		return
	}

	profile, msg := buildArtistProfile(form)
	if msg != "" {
		renderError(c, http.StatusBadRequest, msg, "/dashboard?tab=artists")
		return
	}

	artist.StageName = profile.StageName
	artist.FirstReleaseYear = profile.FirstReleaseYear
	artist.NoOfAlbumsReleased = profile.NoOfAlbumsReleased

	if err := database.DB.Save(&artist).Error; err != nil {
		renderError(c, http.StatusInternalServerError, "Failed to save artist.", "/dashboard?tab=artists")
		return
	}

	c.Redirect(http.StatusSeeOther, "/dashboard?tab=artists")
}

// DeleteArtist removes the profile and, via the FK cascade, its songs. The
// owning user row stays.
func DeleteArtist(c *gin.Context) {
	id, err := strconv.ParseUint(c.PostForm("id"), 10, 64)
	if err != nil || id == 0 {
		renderError(c, http.StatusBadRequest, "Invalid artist id.", "/dashboard?tab=artists")
		return
	}

	var artist models.Artist
	if err := database.DB.First(&artist, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.String(http.StatusNotFound, "artist not found")
			return
		}
		c.String(http.StatusInternalServerError, "failed to load artist")
		return
	}

	if err := database.DB.Delete(&artist).Error; err != nil {
		renderError(c, http.StatusInternalServerError, "Failed to delete artist.", "/dashboard?tab=artists")
		return
	}

	c.Redirect(http.StatusSeeOther, "/dashboard?tab=artists")
}

// ImportArtists accepts a CSV upload with a header row. Rows map to columns
// by header name; malformed rows are skipped and the redirect reports how
// many artists were created.
func ImportArtists(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		renderError(c, http.StatusBadRequest, "A CSV file is required.", "/dashboard?tab=artists")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		renderError(c, http.StatusBadRequest, "Failed to read the uploaded file.", "/dashboard?tab=artists")
		return
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil || len(records) == 0 {
		renderError(c, http.StatusBadRequest, "Failed to parse the CSV file.", "/dashboard?tab=artists")
		return
	}

	cols := map[string]int{}
	for i, name := range records[0] {
		cols[name] = i
	}
	field := func(record []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	rows := make([]database.ImportRow, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, database.ImportRow{
			FirstName:          field(record, "first_name"),
			LastName:           field(record, "last_name"),
			Email:              field(record, "email"),
			Password:           field(record, "password"),
			Phone:              field(record, "phone"),
			DOB:                field(record, "dob"),
			Gender:             field(record, "gender"),
			Address:            field(record, "address"),
			StageName:          field(record, "stage_name"),
			FirstReleaseYear:   field(record, "first_release_year"),
			NoOfAlbumsReleased: field(record, "no_of_albums_released"),
		})
	}

	created := database.ImportArtists(rows)
	c.Redirect(http.StatusSeeOther, "/dashboard?tab=artists&imported="+strconv.Itoa(created))
}

// ExportArtists streams every artist joined with its identity fields as a
// CSV download, newest artist first.
func ExportArtists(c *gin.Context) {
	rows, err := database.ExportArtists()
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to export artists")
		return
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(database.ExportHeader); err != nil {
		c.String(http.StatusInternalServerError, "failed to export artists")
		return
	}
	for _, row := range rows {
		record := []string{
			row.FirstName,
			row.LastName,
			row.Email,
			"", // password hashes are never exported
			row.Phone,
			row.DOB,
			row.Gender,
			row.Address,
			row.StageName,
			strconv.Itoa(row.FirstReleaseYear),
			strconv.Itoa(row.NoOfAlbumsReleased),
		}
		if err := writer.Write(record); err != nil {
			c.String(http.StatusInternalServerError, "failed to export artists")
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		c.String(http.StatusInternalServerError, "failed to export artists")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="artists.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
