package migration

import (
	"github.com/birthdaybliss/bliss-backend/internal/domain"
	"gorm.io/gorm"
)

// Run executes AutoMigrate for the birthday tables.
// Creates tables when missing, skips when present.
func Run(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Birthday{},
		&domain.Memory{},
	)
}
