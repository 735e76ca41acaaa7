package config

import (
	"log"
	"os"

	"freshstalls-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens. Resolved per call so a value loaded
// from .env by godotenv is picked up; a package-level var would read the
// environment before main has loaded it.
func JWTSecret() []byte {
	return []byte(GetEnv("JWT_SECRET", "freshstalls_super_secret_2024"))
}

func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(GetEnv("DB_PATH", "freshstalls.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.Vendor{},
		&models.Supplier{},
		&models.MenuItem{},
		&models.ShopHour{},
		&models.Review{},
		&models.InventoryItem{},
		&models.IngredientSourcing{},
		&models.SupplierProduct{},
		&models.VendorOrder{},
		&models.OrderItem{},
		&models.OrderTemplate{},
		&models.TemplateItem{},
		&models.CommonSupply{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}
