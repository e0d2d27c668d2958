package service

import (
	"context"
	"testing"
	"time"

	"github.com/birthdaybliss/bliss-backend/internal/common"
	"github.com/birthdaybliss/bliss-backend/internal/config"
	"github.com/birthdaybliss/bliss-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mock BirthdayRepository ---

type mockBirthdayRepo struct {
	mock.Mock
}

func (m *mockBirthdayRepo) Create(birthday *domain.Birthday) error {
	return m.Called(birthday).Error(0)
}

func (m *mockBirthdayRepo) FindByID(id string) (*domain.Birthday, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Birthday), args.Error(1)
}

func (m *mockBirthdayRepo) Exists(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func testBirthdayConfig() config.BirthdayConfig {
	return config.BirthdayConfig{
		GracePeriodDays: 1,
		DefaultMusicURL: "/music/happy-birthday-classic.mp3",
		DefaultPhotoURL: "https://placehold.co/400x400.png",
		ShareBaseURL:    "https://bliss.example",
	}
}

func validCreateRequest() *domain.CreateBirthdayRequest {
	return &domain.CreateBirthdayRequest{
		Name:     "Maya",
		Age:      30,
		Message:  "Wishing you the happiest of birthdays!",
		Date:     time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
		Template: domain.TemplateModern,
	}
}

// --- Tests ---

func TestCreateBirthday_Success(t *testing.T) {
	repo := new(mockBirthdayRepo)
	svc := NewBirthdayService(repo, nil, testBirthdayConfig())

	repo.On("Create", mock.AnythingOfType("*domain.Birthday")).Return(nil)

	resp, err := svc.Create(context.Background(), validCreateRequest())

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Maya", resp.Name)
	// unset photo and music fall back to configured defaults
	assert.Equal(t, "https://placehold.co/400x400.png", resp.PhotoURI)
	assert.Equal(t, "/music/happy-birthday-classic.mp3", resp.MusicURL)
	repo.AssertExpectations(t)
}

func TestCreateBirthday_AssignsUniqueIDs(t *testing.T) {
	repo := new(mockBirthdayRepo)
	svc := NewBirthdayService(repo, nil, testBirthdayConfig())

	repo.On("Create", mock.AnythingOfType("*domain.Birthday")).Return(nil)

	first, err := svc.Create(context.Background(), validCreateRequest())
	assert.NoError(t, err)
	second, err := svc.Create(context.Background(), validCreateRequest())
	assert.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreateBirthday_ValidationFailures(t *testing.T) {
	repo := new(mockBirthdayRepo)
	svc := NewBirthdayService(repo, nil, testBirthdayConfig())

	tests := []struct {
		name   string
		mutate func(r *domain.CreateBirthdayRequest)
	}{
		{"short name", func(r *domain.CreateBirthdayRequest) { r.Name = "M" }},
		{"blank name", func(r *domain.CreateBirthdayRequest) { r.Name = "   " }},
		{"negative age", func(r *domain.CreateBirthdayRequest) { r.Age = -1 }},
		{"age too high", func(r *domain.CreateBirthdayRequest) { r.Age = 151 }},
		{"short message", func(r *domain.CreateBirthdayRequest) { r.Message = "too short" }},
		{"long message", func(r *domain.CreateBirthdayRequest) {
			long := make([]byte, 501)
			for i := range long {
				long[i] = 'a'
			}
			r.Message = string(long)
		}},
		{"unknown template", func(r *domain.CreateBirthdayRequest) { r.Template = "Retro" }},
		{"zero date", func(r *domain.CreateBirthdayRequest) { r.Date = time.Time{} }},
		{"bad music url", func(r *domain.CreateBirthdayRequest) { r.MusicURL = "ftp://example.com/song.mp3" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, common.ErrInvalidInput)
		})
	}
	// no write should have reached the repository
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateBirthday_StorageErrorPropagates(t *testing.T) {
	repo := new(mockBirthdayRepo)
	svc := NewBirthdayService(repo, nil, testBirthdayConfig())

	repo.On("Create", mock.AnythingOfType("*domain.Birthday")).Return(common.ErrStorage)

	_, err := svc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, common.ErrStorage)
}

func TestGetBirthday_Success(t *testing.T) {
	repo := new(mockBirthdayRepo)
	svc := NewBirthdayService(repo, nil, testBirthdayConfig())

	stored := &domain.Birthday{
		ID:       "abc-123",
		Name:     "Maya",
		Message:  "Wishing you the happiest of birthdays!",
		Date:     time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
		Template: domain.TemplateClassic,
	}
	repo.On("FindByID", "abc-123").Return(stored, nil)

	resp, err := svc.Get(context.Background(), "abc-123")
	assert.NoError(t, err)
	assert.Equal(t, "abc-123", resp.ID)
	assert.Equal(t, domain.TemplateClassic, resp.Template)
	repo.AssertExpectations(t)
}

func TestGetBirthday_NotFound(t *testing.T) {
	repo := new(mockBirthdayRepo)
	svc := NewBirthdayService(repo, nil, testBirthdayConfig())

	repo.On("FindByID", "missing").Return(nil, common.ErrNotFound)

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
}
