package persistence

import (
	"context"

	"github.com/tienda/backend/internal/domain/partner"
	"github.com/tienda/backend/internal/domain/shared"
	"github.com/tienda/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

const (
	selectClientsSQL   = "SELECT * FROM clientes ORDER BY id_cliente"
	insertClientSQL    = "INSERT INTO clientes (nombre, email, direccion, telefono) VALUES (?, ?, ?, ?) RETURNING *"
	countClientByIDSQL = "SELECT COUNT(1) FROM clientes WHERE id_cliente = ?"
)

// GormClientRepository implements partner.ClientRepository using GORM
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GormClientRepository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// FindAll returns every client ordered by id
func (r *GormClientRepository) FindAll(ctx context.Context) ([]partner.Client, error) {
	var rows []models.ClientModel
	if err := r.db.WithContext(ctx).Raw(selectClientsSQL).Scan(&rows).Error; err != nil {
		return nil, shared.NewStoreError("list clientes", err)
	}

	clients := make([]partner.Client, 0, len(rows))
	for i := range rows {
		clients = append(clients, *rows[i].ToDomain())
	}
	return clients, nil
}

// Create inserts a client. A duplicate email is reported by the store's
// unique constraint and surfaces as a store error.
func (r *GormClientRepository) Create(ctx context.Context, c *partner.NewClient) (*partner.Client, error) {
	var row models.ClientModel
	err := r.db.WithContext(ctx).
		Raw(insertClientSQL, c.Name, c.Email, c.Address, c.Phone).
		Scan(&row).Error
	if err != nil {
		return nil, shared.NewStoreError("insert clientes", err)
	}
	return row.ToDomain(), nil
}

// ExistsByID reports whether a client with the given id exists
func (r *GormClientRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Raw(countClientByIDSQL, id).Scan(&count).Error; err != nil {
		return false, shared.NewStoreError("lookup clientes", err)
	}
	return count > 0, nil
}

var _ partner.ClientRepository = (*GormClientRepository)(nil)
