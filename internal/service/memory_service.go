package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/birthdaybliss/bliss-backend/internal/common"
	"github.com/birthdaybliss/bliss-backend/internal/domain"
	"github.com/birthdaybliss/bliss-backend/internal/repository"
	"github.com/birthdaybliss/bliss-backend/pkg/cache"
)

// MemoryService business logic for the memory wall guestbook
type MemoryService interface {
	Append(ctx context.Context, birthdayID string, req *domain.CreateMemoryRequest) (*domain.MemoryResponse, error)
	List(ctx context.Context, birthdayID string) ([]*domain.MemoryResponse, error)
	Count(ctx context.Context, birthdayID string) (int64, error)
}

type memoryService struct {
	repo         repository.MemoryRepository
	birthdayRepo repository.BirthdayRepository
	cache        cache.Service
}

// NewMemoryService creates a new MemoryService
func NewMemoryService(repo repository.MemoryRepository, birthdayRepo repository.BirthdayRepository, cacheSvc cache.Service) MemoryService {
	return &memoryService{repo: repo, birthdayRepo: birthdayRepo, cache: cacheSvc}
}

// Append validates and persists one guestbook entry. Validation failures
// are reported before anything touches storage, so a rejected entry is
// never partially persisted.
func (s *memoryService) Append(ctx context.Context, birthdayID string, req *domain.CreateMemoryRequest) (*domain.MemoryResponse, error) {
	author := strings.TrimSpace(req.Author)
	message := strings.TrimSpace(req.Message)
	if author == "" {
		return nil, fmt.Errorf("%w: author must not be empty", common.ErrInvalidInput)
	}
	if message == "" {
		return nil, fmt.Errorf("%w: message must not be empty", common.ErrInvalidInput)
	}

	exists, err := s.birthdayRepo.Exists(birthdayID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.ErrNotFound
	}

	memory := &domain.Memory{
		BirthdayID: birthdayID,
		Author:     author,
		Message:    message,
	}
	if err := s.repo.Append(memory); err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.InvalidateMemories(ctx, birthdayID)
	}
	return memory.ToResponse(), nil
}

// List returns all entries for a page in insertion order; an unknown or
// quiet page yields an empty list, not an error.
func (s *memoryService) List(ctx context.Context, birthdayID string) ([]*domain.MemoryResponse, error) {
	if s.cache != nil {
		var cached []*domain.MemoryResponse
		if err := s.cache.GetMemories(ctx, birthdayID, &cached); err == nil && cached != nil {
			return cached, nil
		}
	}

	memories, err := s.repo.ListByBirthday(birthdayID)
	if err != nil {
		return nil, err
	}

	responses := make([]*domain.MemoryResponse, len(memories))
	for i, m := range memories {
		responses[i] = m.ToResponse()
	}

	if s.cache != nil {
		_ = s.cache.SetMemories(ctx, birthdayID, responses)
	}
	return responses, nil
}

// Count returns the authoritative number of entries for a page straight
// from storage, bypassing the list cache.
func (s *memoryService) Count(ctx context.Context, birthdayID string) (int64, error) {
	return s.repo.CountByBirthday(birthdayID)
}
