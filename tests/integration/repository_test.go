package integration

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tienda/backend/internal/domain/catalog"
	"github.com/tienda/backend/internal/domain/partner"
	"github.com/tienda/backend/internal/domain/shared"
	"github.com/tienda/backend/internal/domain/trade"
	"github.com/tienda/backend/internal/infrastructure/config"
	"github.com/tienda/backend/internal/infrastructure/persistence"
	"gorm.io/gorm"
)

func openDatabase(t *testing.T, testDB *TestDB) *persistence.Database {
	t.Helper()

	db, err := persistence.NewDatabase(&config.DatabaseConfig{
		URL:             testDB.DSN,
		MaxOpenConns:    4,
		MaxIdleConns:    2,
		ConnMaxLifetime: 5,
		ConnMaxIdleTime: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestDatabase(t *testing.T) {
	testDB := NewSharedTestDB(t)
	db := openDatabase(t, testDB)

	require.NoError(t, db.Ping())

	stats, err := db.Stats()
	require.NoError(t, err)
	assert.Equal(t, 4, stats.MaxOpenConnections)

	t.Run("transaction rolls back on error", func(t *testing.T) {
		testDB.CleanTables()
		errAbort := errors.New("abort")

		err := db.Transaction(func(tx *gorm.DB) error {
			repo := persistence.NewGormCategoryRepository(tx)
			if _, err := repo.Create(context.Background(), &catalog.NewCategory{Name: "Temporal"}); err != nil {
				return err
			}
			return errAbort
		})
		require.ErrorIs(t, err, errAbort)

		categories, err := persistence.NewGormCategoryRepository(db.DB).FindAll(context.Background())
		require.NoError(t, err)
		assert.Empty(t, categories)
	})
}

func TestProductRepository(t *testing.T) {
	testDB := NewSharedTestDB(t)
	testDB.CleanTables()
	ctx := context.Background()
	repo := persistence.NewGormProductRepository(testDB.DB)

	created, err := repo.Create(ctx, &catalog.NewProduct{
		Name:  "Cable",
		Price: decimal.RequireFromString("3.5"),
		Stock: 10,
	})
	require.NoError(t, err)
	assert.Positive(t, created.ID)
	assert.True(t, decimal.RequireFromString("3.50").Equal(created.Price))
	assert.Nil(t, created.Description)

	products, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, created.ID, products[0].ID)
}

func TestClientRepository(t *testing.T) {
	testDB := NewSharedTestDB(t)
	testDB.CleanTables()
	ctx := context.Background()
	repo := persistence.NewGormClientRepository(testDB.DB)

	email := "ana@example.com"
	created, err := repo.Create(ctx, &partner.NewClient{Name: "Ana", Email: &email})
	require.NoError(t, err)

	exists, err := repo.ExistsByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByID(ctx, created.ID+1000)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.Create(ctx, &partner.NewClient{Name: "Ana bis", Email: &email})
	var storeErr *shared.StoreError
	assert.ErrorAs(t, err, &storeErr)
}

func TestOrderRepository(t *testing.T) {
	testDB := NewSharedTestDB(t)
	testDB.CleanTables()
	ctx := context.Background()
	repo := persistence.NewGormOrderRepository(testDB.DB)

	t.Run("foreign key is enforced by the store", func(t *testing.T) {
		missing := int64(424242)
		_, err := repo.Create(ctx, &trade.NewOrder{Type: "venta", ClientID: &missing})
		var storeErr *shared.StoreError
		assert.ErrorAs(t, err, &storeErr)
	})

	clientID := testDB.InsertClient("Luis", "luis@example.com")
	order, err := repo.Create(ctx, &trade.NewOrder{Type: "venta", ClientID: &clientID})
	require.NoError(t, err)
	require.NotNil(t, order.ClientID)
	assert.Equal(t, clientID, *order.ClientID)

	orders, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}
