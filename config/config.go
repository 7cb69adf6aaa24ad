package config

import (
	"log"
	"os"
	"strconv"

	"restaurant-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — set by Load from env or fallback
var JWTSecret []byte

// Upload settings — set by Load
var (
	UploadDir           string
	MenuUploadMaxBytes  int64
	OfferUploadMaxBytes int64
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

// Load reads .env (if present) and resolves process-wide settings.
// Must run before InitDB and before any handler touches upload config.
func Load() {
	_ = godotenv.Load()

	JWTSecret = []byte(getEnv("JWT_SECRET", "eat_and_out_super_secret_2024"))
	UploadDir = getEnv("UPLOAD_DIR", "uploads")
	MenuUploadMaxBytes = getEnvInt64("UPLOAD_MAX_BYTES_MENU", 5<<20)
	OfferUploadMaxBytes = getEnvInt64("UPLOAD_MAX_BYTES_OFFER", 5<<20)

	if err := os.MkdirAll(UploadDir, 0o755); err != nil {
		log.Fatal("Failed to create upload directory:", err)
	}
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("DB_PATH", "restaurant.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.Admin{},
		&models.Category{},
		&models.MenuItem{},
		&models.Offer{},
		&models.PageContent{},
		&models.ContactMessage{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}

// CloseDB releases the underlying connection pool on shutdown.
func CloseDB() {
	if DB == nil {
		return
	}
	if sqlDB, err := DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
