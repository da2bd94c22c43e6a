package config

import (
	"log"
	"os"

	"food-donation-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Two independent stores, matching the deployed layout: identity in users.db,
// donation records in hotel_food_donation.db.
var (
	UsersDB     *gorm.DB
	DonationsDB *gorm.DB
)

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "food_donation_super_secret_2024"))

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadEnv reads an optional .env file so Twilio credentials and DB paths
// never live in source.
func LoadEnv() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}
	JWTSecret = []byte(getEnv("JWT_SECRET", "food_donation_super_secret_2024"))
}

func InitDB() {
	InitDBAt(
		getEnv("USERS_DB_PATH", "users.db"),
		getEnv("DONATIONS_DB_PATH", "hotel_food_donation.db"),
	)
}

// InitDBAt opens both stores at explicit paths. TranslateError lets handlers
// detect unique-constraint violations as gorm.ErrDuplicatedKey, so duplicate
// email and document id checks are settled by the storage engine rather than a
// check-then-act race between panels.
func InitDBAt(usersPath, donationsPath string) {
	gormConfig := func() *gorm.Config {
		return &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Warn),
			TranslateError: true,
		}
	}

	var err error
	UsersDB, err = gorm.Open(sqlite.Open(usersPath), gormConfig())
	if err != nil {
		log.Fatal("Failed to connect to users database:", err)
	}
	if err := UsersDB.AutoMigrate(&models.User{}); err != nil {
		log.Fatal("Failed to migrate users database:", err)
	}

	DonationsDB, err = gorm.Open(sqlite.Open(donationsPath), gormConfig())
	if err != nil {
		log.Fatal("Failed to connect to donations database:", err)
	}
	if err := DonationsDB.AutoMigrate(&models.Donation{}, &models.DonationStatusHistory{}); err != nil {
		log.Fatal("Failed to migrate donations database:", err)
	}

	log.Println("✅ Databases connected and migrated successfully")
}
