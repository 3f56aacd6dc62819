package models

import "time"

type Genre string

const (
	GenreRnb     Genre = "rnb"
	GenreCountry Genre = "country"
	GenreClassic Genre = "classic"
	GenreRock    Genre = "rock"
	GenreJazz    Genre = "jazz"
)

// Genres lists the closed set, in display order.
var Genres = []Genre{GenreRnb, GenreCountry, GenreClassic, GenreRock, GenreJazz}

func (g Genre) Valid() bool {
	switch g {
	case GenreRnb, GenreCountry, GenreClassic, GenreRock, GenreJazz:
		return true
	}
	return false
}

type Song struct {
	ID        uint   `gorm:"primaryKey"`
	ArtistID  uint   `gorm:"not null;index"`
	Title     string `gorm:"size:255;not null"`
	AlbumName string `gorm:"size:255;not null"`
	Genre     Genre  `gorm:"type:varchar(20);not null;check:genre IN ('rnb','country','classic','rock','jazz')"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Artist Artist `gorm:"constraint:OnDelete:CASCADE"`
}
