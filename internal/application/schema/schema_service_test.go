package schema

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tienda/backend/internal/domain/schema"
	"github.com/tienda/backend/internal/domain/shared"
)

// MockReader is a mock implementation of schema.Reader
type MockReader struct {
	mock.Mock
}

func (m *MockReader) ListTables(ctx context.Context, baseOnly bool) ([]schema.Table, error) {
	args := m.Called(ctx, baseOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]schema.Table), args.Error(1)
}

func (m *MockReader) ListColumns(ctx context.Context, table string) ([]schema.Column, error) {
	args := m.Called(ctx, table)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]schema.Column), args.Error(1)
}

func TestSchemaService_ListTables(t *testing.T) {
	reader := new(MockReader)
	service := NewSchemaService(reader, nil)
	ctx := context.Background()

	reader.On("ListTables", ctx, true).Return([]schema.Table{{Name: "productos"}}, nil)

	tables, err := service.ListTables(ctx, true)

	require.NoError(t, err)
	assert.Equal(t, []schema.Table{{Name: "productos"}}, tables)
	reader.AssertExpectations(t)
}

func TestSchemaService_ListColumns(t *testing.T) {
	ctx := context.Background()

	t.Run("returns columns of an allowed table", func(t *testing.T) {
		reader := new(MockReader)
		service := NewSchemaService(reader, nil)

		cols := []schema.Column{{Name: "id_cliente", DataType: "integer", Nullable: "NO"}}
		reader.On("ListColumns", mock.Anything, "clientes").Return(cols, nil)

		columns, err := service.ListColumns(ctx, "clientes")

		require.NoError(t, err)
		assert.Equal(t, cols, columns)
	})

	t.Run("malformed name never reaches the store", func(t *testing.T) {
		reader := new(MockReader)
		service := NewSchemaService(reader, nil)

		_, err := service.ListColumns(ctx, "clientes' OR '1'='1")

		assert.Equal(t, shared.ErrInvalidIdentifier, err)
		reader.AssertNotCalled(t, "ListColumns", mock.Anything, mock.Anything)
	})

	t.Run("table outside the allow-list is not found", func(t *testing.T) {
		reader := new(MockReader)
		service := NewSchemaService(reader, nil)

		_, err := service.ListColumns(ctx, "pg_authid")

		assert.Equal(t, shared.ErrNotFound, err)
		reader.AssertNotCalled(t, "ListColumns", mock.Anything, mock.Anything)
	})

	t.Run("allowed table without columns is not found", func(t *testing.T) {
		reader := new(MockReader)
		service := NewSchemaService(reader, schema.NewTablePolicy([]string{"inventario"}))

		reader.On("ListColumns", mock.Anything, "inventario").Return([]schema.Column{}, nil)

		_, err := service.ListColumns(ctx, "inventario")

		assert.Equal(t, shared.ErrNotFound, err)
	})
}
