package database

import (
	"log"
	"strconv"
	"strings"

	"github.com/pratima-dawadi/ArtistOps/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUserWithArtist inserts the user row and its artist profile as one
// unit. If the profile insert fails the user insert is rolled back.
func CreateUserWithArtist(user *models.User, artist *models.Artist) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		artist.UserID = user.ID
		return tx.Create(artist).Error
	})
}

// ImportRow carries one tabular import record, all fields still unparsed.
type ImportRow struct {
	FirstName          string
	LastName           string
	Email              string
	Password           string
	Phone              string
	DOB                string
	Gender             string
	Address            string
	StageName          string
	FirstReleaseYear   string
	NoOfAlbumsReleased string
}

// ImportArtists creates one user+artist pair per row. Malformed rows are
// skipped without aborting the batch; the returned count covers only the
// rows actually created.
func ImportArtists(rows []ImportRow) int {
	created := 0
	for _, row := range rows {
		stage := strings.TrimSpace(row.StageName)
		email := strings.ToLower(strings.TrimSpace(row.Email))
		if stage == "" || email == "" || row.Password == "" {
			continue
		}

		year, err := strconv.Atoi(strings.TrimSpace(row.FirstReleaseYear))
		if err != nil {
			continue
		}
		albums := 0
		if s := strings.TrimSpace(row.NoOfAlbumsReleased); s != "" {
			albums, err = strconv.Atoi(s)
			if err != nil {
				continue
			}
		}

		gender := models.Gender(row.Gender)
		if !gender.Valid() {
			gender = models.GenderOther
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(row.Password), bcrypt.DefaultCost)
		if err != nil {
			continue
		}

		user := models.User{
			FirstName:    strings.TrimSpace(row.FirstName),
			LastName:     strings.TrimSpace(row.LastName),
			Email:        email,
			PasswordHash: string(hash),
			Phone:        strings.TrimSpace(row.Phone),
			DOB:          strings.TrimSpace(row.DOB),
			Gender:       gender,
			Address:      strings.TrimSpace(row.Address),
			Role:         models.RoleArtist,
		}
		artist := models.Artist{
			StageName:          stage,
			FirstReleaseYear:   year,
			NoOfAlbumsReleased: albums,
		}

		if err := CreateUserWithArtist(&user, &artist); err != nil {
			log.Printf("import: skipping row for %s: %v", email, err)
			continue
		}
		created++
	}
	return created
}

// ExportHeader is the column order shared by the tabular import and export.
var ExportHeader = []string{
	"first_name", "last_name", "email", "password", "phone", "dob",
	"gender", "address", "stage_name", "first_release_year",
	"no_of_albums_released",
}

// ExportRow is one denormalized artist row joining identity and profile
// fields. Password hashes are never exported.
type ExportRow struct {
	FirstName          string
	LastName           string
	Email              string
	Phone              string
	DOB                string `gorm:"column:dob"`
	Gender             string
	Address            string
	StageName          string
	FirstReleaseYear   int
	NoOfAlbumsReleased int
}

// ExportArtists returns one row per artist, newest first.
func ExportArtists() ([]ExportRow, error) {
	var rows []ExportRow
	err := DB.Table("artists").
		Select("users.first_name, users.last_name, users.email, users.phone, users.dob, users.gender, users.address, artists.stage_name, artists.first_release_year, artists.no_of_albums_released").
		Joins("JOIN users ON users.id = artists.user_id").
		Order("artists.id DESC").
		Scan(&rows).Error
	return rows, err
}
