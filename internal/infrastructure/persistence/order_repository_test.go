package persistence

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tienda/backend/internal/domain/partner"
	"github.com/tienda/backend/internal/domain/shared"
	"github.com/tienda/backend/internal/domain/trade"
)

func TestGormOrderRepository_Create_Statement(t *testing.T) {
	gormDB, mock, mockDB := newMockGormDB(t)
	defer mockDB.Close()
	repo := NewGormOrderRepository(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO ordenes (tipo_orden, id_cliente) VALUES ($1, $2) RETURNING *")).
		WithArgs("venta", int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id_orden", "tipo_orden", "id_cliente"}).AddRow(10, "venta", 3))

	order, err := repo.Create(context.Background(), &trade.NewOrder{Type: "venta", ClientID: int64Ptr(3)})

	require.NoError(t, err)
	assert.Equal(t, int64(10), order.ID)
	assert.Equal(t, int64(3), *order.ClientID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormOrderRepository_SQLite(t *testing.T) {
	db := setupStoreTestDB(t)
	repo := NewGormOrderRepository(db)
	clients := NewGormClientRepository(db)
	ctx := context.Background()

	client, err := clients.Create(ctx, &partner.NewClient{Name: "Ana"})
	require.NoError(t, err)

	t.Run("order with and without client", func(t *testing.T) {
		withClient, err := repo.Create(ctx, &trade.NewOrder{Type: "venta", ClientID: &client.ID})
		require.NoError(t, err)
		assert.Equal(t, client.ID, *withClient.ClientID)

		anonymous, err := repo.Create(ctx, &trade.NewOrder{Type: "mostrador"})
		require.NoError(t, err)
		assert.Nil(t, anonymous.ClientID)

		orders, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Less(t, orders[0].ID, orders[1].ID)
	})

	t.Run("foreign key rejects unknown client", func(t *testing.T) {
		_, err := repo.Create(ctx, &trade.NewOrder{Type: "venta", ClientID: int64Ptr(404)})

		var storeErr *shared.StoreError
		require.True(t, errors.As(err, &storeErr))

		orders, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, orders, 2)
	})
}
