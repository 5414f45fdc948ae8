package repository

import (
	"context"

	"quill/internal/domain/entity"
	"quill/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockBlogRepository is a mock implementation of repository.BlogRepository.
type MockBlogRepository struct {
	mock.Mock
}

func NewMockBlogRepository() *MockBlogRepository {
	return &MockBlogRepository{}
}

func (m *MockBlogRepository) Create(ctx context.Context, blog *entity.Blog) error {
	args := m.Called(ctx, blog)

	return args.Error(0)
}

func (m *MockBlogRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Blog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Blog), args.Error(1)
}

func (m *MockBlogRepository) Update(ctx context.Context, blog *entity.Blog) error {
	args := m.Called(ctx, blog)

	return args.Error(0)
}

func (m *MockBlogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockBlogRepository) UpdateReadCount(ctx context.Context, id uuid.UUID, readCount int) error {
	args := m.Called(ctx, id, readCount)

	return args.Error(0)
}

func (m *MockBlogRepository) ListPublished(ctx context.Context, filter repository.PublishedFilter) ([]*entity.Blog, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Blog), args.Error(1)
}

func (m *MockBlogRepository) ListByAuthor(ctx context.Context, page repository.OwnedPage) ([]*entity.Blog, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Blog), args.Error(1)
}

func (m *MockBlogRepository) CountByAuthor(ctx context.Context, authorID uuid.UUID, state *entity.BlogState) (int64, error) {
	args := m.Called(ctx, authorID, state)

	return args.Get(0).(int64), args.Error(1)
}
