package database

import (
	"log"
	"os"
	"time"

	"github.com/pratima-dawadi/ArtistOps/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(dsn string) {
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Printf("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			log.Println("connected to DB successfully")
			break
		}

		log.Printf("failed to connect to DB: %v", err)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		log.Fatalf("failed to connect to db after %d attempts: %v", maxAttempts, err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	createDefaultSuperAdmin()
}

// Migrate creates the users/artists/songs tables with their check
// constraints and cascading foreign keys.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Artist{},
		&models.Song{},
	)
}

// the super admin comes only from env/config, never from the registration form
func createDefaultSuperAdmin() {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@artistops.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "Admin123!"
	}

	var count int64
	if err := DB.Model(&models.User{}).
		Where("role = ?", models.RoleSuperAdmin).
		Count(&count).Error; err != nil {
		log.Printf("failed to check super admin user: %v", err)
		return
	}
	if count > 0 {
		// a super admin already exists, nothing to do
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash default super admin password: %v", err)
		return
	}

	admin := models.User{
		FirstName:    "Super",
		LastName:     "Admin",
		Email:        email,
		PasswordHash: string(hash),
		Phone:        "0000000000",
		DOB:          "1990-01-01",
		Gender:       models.GenderOther,
		Address:      "-",
		Role:         models.RoleSuperAdmin,
	}

	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("failed to create default super admin: %v", err)
		return
	}

	log.Printf("created default super admin: %s", email)
}
