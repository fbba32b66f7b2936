package db

import (
	types "github.com/launchforge/launchforge-backend/internal/domain"
	"gorm.io/gorm"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(

		// =========================
		// Identity mirror + catalog
		// =========================
		&types.User{},
		&types.Product{},

		// =========================
		// Judging core
		// =========================
		&types.Criterion{},
		&types.Assignment{},
		&types.Submission{},
	)
}
