package models

import (
	"fmt"

	"github.com/consultdesk/backend/internal/config"
	"github.com/consultdesk/backend/internal/utils"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func InitDB(cfg *config.DatabaseConfig) error {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	case "mysql":
		dialector = mysql.Open(cfg.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		return fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}

	DB = db
	return nil
}

func AutoMigrate() error {
	return DB.AutoMigrate(
		&User{},
		&Client{},
		&ClientPersona{},
		&Project{},
		&TeamMember{},
		&Meeting{},
		&MeetingFile{},
		&MeetingAnalysis{},
		&ResearchResult{},
		&MarketAnalysis{},
		&SwotAnalysis{},
		&ProjectReadme{},
	)
}

func GetDB() *gorm.DB {
	return DB
}

// SeedDefaultData creates the default admin user if no user exists.
func SeedDefaultData() error {
	var userCount int64
	DB.Model(&User{}).Count(&userCount)
	if userCount == 0 {
		hash, err := utils.HashPassword("admin123")
		if err != nil {
			return err
		}
		admin := User{
			Username: "admin",
			Password: hash,
			Email:    "admin@consultdesk.local",
			Nickname: "Administrator",
			Role:     "admin",
			IsActive: true,
		}
		if err := DB.Create(&admin).Error; err != nil {
			return err
		}
	}
	return nil
}
