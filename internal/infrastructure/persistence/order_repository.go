package persistence

import (
	"context"

	"github.com/tienda/backend/internal/domain/shared"
	"github.com/tienda/backend/internal/domain/trade"
	"github.com/tienda/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

const (
	selectOrdersSQL = "SELECT * FROM ordenes ORDER BY id_orden"
	insertOrderSQL  = "INSERT INTO ordenes (tipo_orden, id_cliente) VALUES (?, ?) RETURNING *"
)

// GormOrderRepository implements trade.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindAll returns every order ordered by id
func (r *GormOrderRepository) FindAll(ctx context.Context) ([]trade.Order, error) {
	var rows []models.OrderModel
	if err := r.db.WithContext(ctx).Raw(selectOrdersSQL).Scan(&rows).Error; err != nil {
		return nil, shared.NewStoreError("list ordenes", err)
	}

	orders := make([]trade.Order, 0, len(rows))
	for i := range rows {
		orders = append(orders, *rows[i].ToDomain())
	}
	return orders, nil
}

// Create inserts an order. The foreign key on id_cliente is enforced by the store.
func (r *GormOrderRepository) Create(ctx context.Context, o *trade.NewOrder) (*trade.Order, error) {
	var row models.OrderModel
	if err := r.db.WithContext(ctx).Raw(insertOrderSQL, o.Type, o.ClientID).Scan(&row).Error; err != nil {
		return nil, shared.NewStoreError("insert ordenes", err)
	}
	return row.ToDomain(), nil
}

var _ trade.OrderRepository = (*GormOrderRepository)(nil)
