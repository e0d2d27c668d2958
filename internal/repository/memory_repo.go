package repository

import (
	"fmt"

	"github.com/birthdaybliss/bliss-backend/internal/common"
	"github.com/birthdaybliss/bliss-backend/internal/domain"
	"gorm.io/gorm"
)

// MemoryRepository guestbook entry data access. Append-only: no update or
// delete is ever exposed.
type MemoryRepository interface {
	Append(memory *domain.Memory) error
	ListByBirthday(birthdayID string) ([]*domain.Memory, error)
	CountByBirthday(birthdayID string) (int64, error)
}

type memoryRepository struct {
	db *gorm.DB
}

// NewMemoryRepository creates a new MemoryRepository
func NewMemoryRepository(db *gorm.DB) MemoryRepository {
	return &memoryRepository{db: db}
}

// Append writes one entry in a single insert, so a partially-written entry
// can never become visible to ListByBirthday.
func (r *memoryRepository) Append(memory *domain.Memory) error {
	if err := r.db.Create(memory).Error; err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorage, err)
	}
	return nil
}

// ListByBirthday returns entries in insertion order. The id tiebreak keeps
// the order stable when entries share a created_at second.
func (r *memoryRepository) ListByBirthday(birthdayID string) ([]*domain.Memory, error) {
	var memories []*domain.Memory
	err := r.db.Where("birthday_id = ?", birthdayID).
		Order("created_at ASC, id ASC").
		Find(&memories).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}
	return memories, nil
}

func (r *memoryRepository) CountByBirthday(birthdayID string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Memory{}).Where("birthday_id = ?", birthdayID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}
	return count, nil
}
