package service

import (
	"context"
	"testing"
	"time"

	"github.com/birthdaybliss/bliss-backend/internal/common"
	"github.com/birthdaybliss/bliss-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mock MemoryRepository ---

type mockMemoryRepo struct {
	mock.Mock
}

func (m *mockMemoryRepo) Append(memory *domain.Memory) error {
	return m.Called(memory).Error(0)
}

func (m *mockMemoryRepo) ListByBirthday(birthdayID string) ([]*domain.Memory, error) {
	args := m.Called(birthdayID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Memory), args.Error(1)
}

func (m *mockMemoryRepo) CountByBirthday(birthdayID string) (int64, error) {
	args := m.Called(birthdayID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Tests ---

func TestAppendMemory_Success(t *testing.T) {
	repo := new(mockMemoryRepo)
	birthdayRepo := new(mockBirthdayRepo)
	svc := NewMemoryService(repo, birthdayRepo, nil)

	birthdayRepo.On("Exists", "bday-1").Return(true, nil)
	repo.On("Append", mock.AnythingOfType("*domain.Memory")).Return(nil)

	resp, err := svc.Append(context.Background(), "bday-1", &domain.CreateMemoryRequest{
		Author:  "  Ana  ",
		Message: " Happy birthday! ",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Ana", resp.Author)
	assert.Equal(t, "Happy birthday!", resp.Message)
	repo.AssertExpectations(t)
}

func TestAppendMemory_EmptyFields(t *testing.T) {
	repo := new(mockMemoryRepo)
	birthdayRepo := new(mockBirthdayRepo)
	svc := NewMemoryService(repo, birthdayRepo, nil)

	tests := []struct {
		name string
		req  *domain.CreateMemoryRequest
	}{
		{"empty author", &domain.CreateMemoryRequest{Author: "", Message: "hello there"}},
		{"whitespace author", &domain.CreateMemoryRequest{Author: "   ", Message: "hello there"}},
		{"empty message", &domain.CreateMemoryRequest{Author: "Ana", Message: ""}},
		{"whitespace message", &domain.CreateMemoryRequest{Author: "Ana", Message: " \t\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Append(context.Background(), "bday-1", tt.req)
			assert.ErrorIs(t, err, common.ErrInvalidInput)
		})
	}
	// rejected entries never reach storage
	repo.AssertNotCalled(t, "Append", mock.Anything)
}

func TestAppendMemory_UnknownBirthday(t *testing.T) {
	repo := new(mockMemoryRepo)
	birthdayRepo := new(mockBirthdayRepo)
	svc := NewMemoryService(repo, birthdayRepo, nil)

	birthdayRepo.On("Exists", "ghost").Return(false, nil)

	_, err := svc.Append(context.Background(), "ghost", &domain.CreateMemoryRequest{
		Author:  "Ana",
		Message: "hello there",
	})
	assert.ErrorIs(t, err, common.ErrNotFound)
	repo.AssertNotCalled(t, "Append", mock.Anything)
}

func TestAppendMemory_StorageErrorPropagates(t *testing.T) {
	repo := new(mockMemoryRepo)
	birthdayRepo := new(mockBirthdayRepo)
	svc := NewMemoryService(repo, birthdayRepo, nil)

	birthdayRepo.On("Exists", "bday-1").Return(true, nil)
	repo.On("Append", mock.AnythingOfType("*domain.Memory")).Return(common.ErrStorage)

	_, err := svc.Append(context.Background(), "bday-1", &domain.CreateMemoryRequest{
		Author:  "Ana",
		Message: "hello there",
	})
	assert.ErrorIs(t, err, common.ErrStorage)
}

func TestListMemories_KeepsOrder(t *testing.T) {
	repo := new(mockMemoryRepo)
	birthdayRepo := new(mockBirthdayRepo)
	svc := NewMemoryService(repo, birthdayRepo, nil)

	base := time.Date(2025, time.June, 14, 10, 0, 0, 0, time.UTC)
	stored := []*domain.Memory{
		{ID: 1, BirthdayID: "bday-1", Author: "Ana", Message: "first", CreatedAt: base},
		{ID: 2, BirthdayID: "bday-1", Author: "Ben", Message: "second", CreatedAt: base.Add(time.Minute)},
		{ID: 3, BirthdayID: "bday-1", Author: "Carla", Message: "third", CreatedAt: base.Add(2 * time.Minute)},
	}
	repo.On("ListByBirthday", "bday-1").Return(stored, nil)

	resp, err := svc.List(context.Background(), "bday-1")
	assert.NoError(t, err)
	assert.Len(t, resp, 3)
	assert.Equal(t, "first", resp[0].Message)
	assert.Equal(t, "second", resp[1].Message)
	assert.Equal(t, "third", resp[2].Message)
}

func TestListMemories_EmptyIsNotError(t *testing.T) {
	repo := new(mockMemoryRepo)
	birthdayRepo := new(mockBirthdayRepo)
	svc := NewMemoryService(repo, birthdayRepo, nil)

	repo.On("ListByBirthday", "quiet").Return([]*domain.Memory{}, nil)

	resp, err := svc.List(context.Background(), "quiet")
	assert.NoError(t, err)
	assert.Empty(t, resp)
}

func TestCountMemories(t *testing.T) {
	repo := new(mockMemoryRepo)
	birthdayRepo := new(mockBirthdayRepo)
	svc := NewMemoryService(repo, birthdayRepo, nil)

	repo.On("CountByBirthday", "bday-1").Return(int64(7), nil)

	total, err := svc.Count(context.Background(), "bday-1")
	assert.NoError(t, err)
	assert.Equal(t, int64(7), total)
	repo.AssertExpectations(t)
}
