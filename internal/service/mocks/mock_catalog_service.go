package mocks

import (
	"context"
	"io"

	"patternlab/internal/model"
	"patternlab/internal/storage"
	"github.com/stretchr/testify/mock"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Patterns() []model.Pattern {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.Pattern)
}

func (m *MockCatalogService) Pattern(slug string) (*model.Pattern, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pattern), args.Error(1)
}

func (m *MockCatalogService) Run(ctx context.Context, slug string) ([]string, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCatalogService) Article(ctx context.Context, slug string) (io.ReadCloser, storage.ObjectInfo, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Get(1).(storage.ObjectInfo), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(storage.ObjectInfo), args.Error(2)
}

func (m *MockCatalogService) PublishArticles(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
