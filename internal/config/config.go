package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"invoicing-backend/internal/models"
)

type Config struct {
	Env          string
	Port         string
	DatabaseURL  string
	MaxOpenConns int
	MaxIdleConns int
}

// Load reads configuration from the environment. DATABASE_URL wins;
// otherwise the DSN is assembled from the discrete DB_* variables.
func Load() Config {
	cfg := Config{
		Env:          getenv("APP_ENV", "development"),
		Port:         getenv("PORT", "8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		MaxOpenConns: getenvInt("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns: getenvInt("DB_MAX_IDLE_CONNS", 5),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			getenv("DB_HOST", "localhost"),
			getenv("DB_PORT", "5432"),
			getenv("DB_USER", "postgres"),
			getenv("DB_PASSWORD", "postgres"),
			getenv("DB_NAME", "invoicing"),
			getenv("DB_SSLMODE", "disable"),
		)
	}

	return cfg
}

// InitDB opens the process-wide connection pool. TranslateError lets
// unique and foreign key violations surface as gorm sentinel errors.
func InitDB(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := db.SetupJoinTable(&models.Company{}, "Industries", &models.CompanyIndustry{}); err != nil {
		return nil, err
	}
	if err := db.SetupJoinTable(&models.Industry{}, "Companies", &models.CompanyIndustry{}); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
