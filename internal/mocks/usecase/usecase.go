// Package usecase provides testify mocks for the usecase interfaces.
package usecase

import (
	"context"

	"quill/internal/domain/entity"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAuthUsecase is a mock implementation of usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Signup(ctx context.Context, input usecase.SignupInput) error {
	args := m.Called(ctx, input)

	return args.Error(0)
}

func (m *MockAuthUsecase) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.LoginOutput), args.Error(1)
}

// MockBlogUsecase is a mock implementation of usecase.BlogUsecase.
type MockBlogUsecase struct {
	mock.Mock
}

func (m *MockBlogUsecase) Create(ctx context.Context, input usecase.CreateBlogInput) (*entity.Blog, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Blog), args.Error(1)
}

func (m *MockBlogUsecase) ListPublished(ctx context.Context, input usecase.ListPublishedInput) (*usecase.ListPublishedOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.ListPublishedOutput), args.Error(1)
}

func (m *MockBlogUsecase) GetPublished(ctx context.Context, id uuid.UUID) (*entity.Blog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Blog), args.Error(1)
}

func (m *MockBlogUsecase) ListMine(ctx context.Context, input usecase.ListMineInput) (*usecase.ListMineOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.ListMineOutput), args.Error(1)
}

func (m *MockBlogUsecase) Update(ctx context.Context, actorID, blogID uuid.UUID, input usecase.UpdateBlogInput) (*entity.Blog, error) {
	args := m.Called(ctx, actorID, blogID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Blog), args.Error(1)
}

func (m *MockBlogUsecase) Delete(ctx context.Context, actorID, blogID uuid.UUID) error {
	args := m.Called(ctx, actorID, blogID)

	return args.Error(0)
}

func (m *MockBlogUsecase) Publish(ctx context.Context, actorID, blogID uuid.UUID) (*entity.Blog, error) {
	args := m.Called(ctx, actorID, blogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Blog), args.Error(1)
}
