package service

import (
	"context"
	"fmt"

	"github.com/birthdaybliss/bliss-backend/internal/common"
	"github.com/birthdaybliss/bliss-backend/internal/config"
	"github.com/birthdaybliss/bliss-backend/internal/domain"
	"github.com/birthdaybliss/bliss-backend/internal/repository"
	"github.com/birthdaybliss/bliss-backend/pkg/cache"
	"github.com/google/uuid"
)

// BirthdayService business logic for birthday pages
type BirthdayService interface {
	Create(ctx context.Context, req *domain.CreateBirthdayRequest) (*domain.BirthdayResponse, error)
	Get(ctx context.Context, id string) (*domain.BirthdayResponse, error)
}

type birthdayService struct {
	repo  repository.BirthdayRepository
	cache cache.Service
	cfg   config.BirthdayConfig
}

// NewBirthdayService creates a new BirthdayService
func NewBirthdayService(repo repository.BirthdayRepository, cacheSvc cache.Service, cfg config.BirthdayConfig) BirthdayService {
	return &birthdayService{repo: repo, cache: cacheSvc, cfg: cfg}
}

// Create validates the payload, assigns a fresh id and persists the record
func (s *birthdayService) Create(ctx context.Context, req *domain.CreateBirthdayRequest) (*domain.BirthdayResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidInput, err)
	}

	photo := req.PhotoURI
	if photo == "" {
		photo = s.cfg.DefaultPhotoURL
	}
	music := req.MusicURL
	if music == "" {
		music = s.cfg.DefaultMusicURL
	}

	birthday := &domain.Birthday{
		ID:       uuid.New().String(),
		Name:     req.Name,
		Age:      req.Age,
		Message:  req.Message,
		PhotoURI: photo,
		Date:     req.Date.UTC(),
		Template: req.Template,
		MusicURL: music,
	}

	if err := s.repo.Create(birthday); err != nil {
		return nil, err
	}

	resp := birthday.ToResponse()
	if s.cache != nil {
		// best-effort cache fill
		_ = s.cache.SetBirthday(ctx, birthday.ID, resp)
	}
	return resp, nil
}

// Get returns a birthday record by id, consulting the cache first.
// Records never change after creation, so a cache hit is always current.
func (s *birthdayService) Get(ctx context.Context, id string) (*domain.BirthdayResponse, error) {
	if s.cache != nil {
		var cached domain.BirthdayResponse
		if err := s.cache.GetBirthday(ctx, id, &cached); err == nil && cached.ID == id {
			return &cached, nil
		}
	}

	birthday, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	resp := birthday.ToResponse()
	if s.cache != nil {
		_ = s.cache.SetBirthday(ctx, id, resp)
	}
	return resp, nil
}
