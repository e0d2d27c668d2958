package repository

import (
	"errors"
	"fmt"

	"github.com/birthdaybliss/bliss-backend/internal/common"
	"github.com/birthdaybliss/bliss-backend/internal/domain"
	"gorm.io/gorm"
)

// BirthdayRepository birthday record data access. Creation is the only
// mutation: records are never updated or deleted.
type BirthdayRepository interface {
	Create(birthday *domain.Birthday) error
	FindByID(id string) (*domain.Birthday, error)
	Exists(id string) (bool, error)
}

type birthdayRepository struct {
	db *gorm.DB
}

// NewBirthdayRepository creates a new BirthdayRepository
func NewBirthdayRepository(db *gorm.DB) BirthdayRepository {
	return &birthdayRepository{db: db}
}

func (r *birthdayRepository) Create(birthday *domain.Birthday) error {
	if err := r.db.Create(birthday).Error; err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorage, err)
	}
	return nil
}

// FindByID returns common.ErrNotFound for a missing id so callers can tell
// "no such page" apart from a storage fault.
func (r *birthdayRepository) FindByID(id string) (*domain.Birthday, error) {
	var birthday domain.Birthday
	err := r.db.Where("id = ?", id).First(&birthday).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}
	return &birthday, nil
}

func (r *birthdayRepository) Exists(id string) (bool, error) {
	var count int64
	if err := r.db.Model(&domain.Birthday{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}
	return count > 0, nil
}
