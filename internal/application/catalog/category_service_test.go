package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tienda/backend/internal/domain/catalog"
	"github.com/tienda/backend/internal/domain/shared"
)

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindAll(ctx context.Context) ([]catalog.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, c *catalog.NewCategory) (*catalog.Category, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func TestCategoryService_Create(t *testing.T) {
	t.Run("inserts a valid category", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		service := NewCategoryService(repo)
		ctx := context.Background()

		repo.On("Create", ctx, &catalog.NewCategory{Name: "Hogar"}).
			Return(&catalog.Category{ID: 1, Name: "Hogar"}, nil)

		category, err := service.Create(ctx, shared.Payload{"nombre": "Hogar"})

		require.NoError(t, err)
		assert.Equal(t, int64(1), category.ID)
		repo.AssertExpectations(t)
	})

	t.Run("rejects missing name", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		service := NewCategoryService(repo)

		_, err := service.Create(context.Background(), shared.Payload{})

		var verr *shared.ValidationError
		assert.True(t, errors.As(err, &verr))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCategoryService_List(t *testing.T) {
	repo := new(MockCategoryRepository)
	service := NewCategoryService(repo)
	ctx := context.Background()

	repo.On("FindAll", ctx).Return([]catalog.Category{}, nil)

	categories, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Empty(t, categories)
}
