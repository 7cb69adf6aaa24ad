package seed

import (
	"fmt"
	"log"
	"os"

	"restaurant-api/config"
	"restaurant-api/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"
)

var defaultCategories = []models.Category{
	{DisplayName: "Punjabi", Description: "Authentic Punjabi cuisine", Order: 1},
	{DisplayName: "Chinese", Description: "Delicious Chinese dishes", Order: 2},
	{DisplayName: "Fast Food", Description: "Quick and tasty fast food", Order: 3},
	{DisplayName: "North Indian", Description: "Traditional North Indian food", Order: 4},
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Run seeds the admin account, the default categories and the page content
// singleton. Every step is idempotent so it runs at each startup.
func Run() error {
	if err := seedAdmin(); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if err := seedCategories(); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	if err := seedPageContent(); err != nil {
		return fmt.Errorf("seed page content: %w", err)
	}
	return nil
}

func seedAdmin() error {
	email := getEnv("ADMIN_EMAIL", "admin@eatandout.com")
	dob := getEnv("ADMIN_DOB", "2000-01-01")

	var admin models.Admin
	if err := config.DB.Where("email = ?", email).First(&admin).Error; err == nil {
		if admin.DOB == "" {
			return config.DB.Model(&admin).Update("dob", dob).Error
		}
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(getEnv("ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := config.DB.Create(&models.Admin{
		Email:        email,
		PasswordHash: string(hash),
		DOB:          dob,
	}).Error; err != nil {
		return err
	}
	log.Printf("✅ Admin user created: %s", email)
	return nil
}

func seedCategories() error {
	for _, cat := range defaultCategories {
		cat.Name = models.NormalizeCategoryName(cat.DisplayName)
		cat.IsActive = true

		var existing models.Category
		if err := config.DB.Where("name = ?", cat.Name).First(&existing).Error; err == nil {
			continue
		}
		if err := config.DB.Create(&cat).Error; err != nil {
			return err
		}
		log.Printf("✅ Created category: %s", cat.DisplayName)
	}
	return nil
}

func seedPageContent() error {
	content := models.DefaultPageContent()
	return config.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&content).Error
}
