package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"yardkeeper/internal/models"
)

var (
	// DB is the globally accessible database handle
	DB *gorm.DB
)

// InitDB initializes the database connection using environment variables
// and migrates the schema.
func InitDB() {
	// 1) Load .env (if present)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	// Load environment variables (with defaults)
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "password")
	dbname := getEnv("DB_NAME", "yardkeeper")
	sslmode := getEnv("DB_SSLMODE", "disable")
	timezone := getEnv("DB_TIMEZONE", "UTC")

	// Build Data Source Name
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		host, user, password, dbname, port, sslmode, timezone,
	)

	// Open GORM connection
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Location{},
		&models.VehicleType{},
		&models.PriceEntry{},
		&models.Vehicle{},
		&models.Document{},
		&models.BatteryDetail{},
		&models.TyreDetail{},
		&models.VehicleImage{},
		&models.Checkout{},
	)
	if err != nil {
		log.Fatalf("auto-migration failed: %v", err)
	}

	seedAdminUser(db)

	// Assign to global
	DB = db
}

// seedAdminUser creates the bootstrap admin account on an empty users table
// so the settings endpoints are reachable on a fresh install.
func seedAdminUser(db *gorm.DB) {
	var n int64
	if err := db.Model(&models.User{}).Count(&n).Error; err != nil || n > 0 {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(getEnv("ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("could not hash bootstrap admin password: %v", err)
	}
	admin := models.User{
		Username: getEnv("ADMIN_USERNAME", "admin"),
		Password: string(hash),
		Role:     "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("could not seed admin user: %v", err)
		return
	}
	log.Printf("seeded bootstrap admin user %q", admin.Username)
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}

// GetDB returns the initialized DB handle
func GetDB() *gorm.DB {
	return DB
}

// HTTPAddr returns the listen address for the HTTP server.
func HTTPAddr() string {
	return "0.0.0.0:" + getEnv("HTTP_PORT", "8080")
}

// UploadDir returns the directory vehicle images are written to.
func UploadDir() string {
	return getEnv("UPLOAD_DIR", "./uploads")
}

// DefaultRatePerDay returns the fallback daily rate used when the price
// table has no entry for a (location, vehicle type) pair.
func DefaultRatePerDay() float64 {
	if v := os.Getenv("DEFAULT_RATE_PER_DAY"); v != "" {
		if rate, err := strconv.ParseFloat(v, 64); err == nil && rate >= 0 {
			return rate
		}
		log.Printf("ignoring invalid DEFAULT_RATE_PER_DAY=%q", v)
	}
	return 100
}
