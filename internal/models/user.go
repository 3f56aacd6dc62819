package models

import "time"

type Role string

const (
	RoleSuperAdmin    Role = "super_admin"
	RoleArtistManager Role = "artist_manager"
	RoleArtist        Role = "artist"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleArtistManager, RoleArtist:
		return true
	}
	return false
}

type Gender string

const (
	GenderMale   Gender = "m"
	GenderFemale Gender = "f"
	GenderOther  Gender = "o"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

type User struct {
	ID           uint   `gorm:"primaryKey"`
	FirstName    string `gorm:"size:100;not null"`
	LastName     string `gorm:"size:100;not null"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Phone        string `gorm:"size:20;not null"`
	DOB          string `gorm:"column:dob;size:10;not null"` // YYYY-MM-DD
	Gender       Gender `gorm:"type:varchar(1);not null;check:gender IN ('m','f','o')"`
	Address      string `gorm:"size:255;not null"`
	Role         Role   `gorm:"type:varchar(20);not null;check:role IN ('super_admin','artist_manager','artist')"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
