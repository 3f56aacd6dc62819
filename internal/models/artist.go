package models

import "time"

// Artist is the profile attached 1:1 to a user with role=artist.
// Deleting the owning user removes the profile; deleting the profile
// removes its songs.
type Artist struct {
	ID                 uint   `gorm:"primaryKey"`
	UserID             uint   `gorm:"uniqueIndex;not null"`
	StageName          string `gorm:"size:255;not null"`
	FirstReleaseYear   int    `gorm:"not null"`
	NoOfAlbumsReleased int    `gorm:"not null;default:0"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
