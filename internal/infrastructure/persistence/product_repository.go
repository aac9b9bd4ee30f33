package persistence

import (
	"context"

	"github.com/tienda/backend/internal/domain/catalog"
	"github.com/tienda/backend/internal/domain/shared"
	"github.com/tienda/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

const (
	selectProductsSQL = "SELECT * FROM productos ORDER BY id_producto"
	insertProductSQL  = "INSERT INTO productos (nombre, descripcion, precio, stock, id_categoria) VALUES (?, ?, ?, ?, ?) RETURNING *"
)

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindAll returns every product ordered by id
func (r *GormProductRepository) FindAll(ctx context.Context) ([]catalog.Product, error) {
	var rows []models.ProductModel
	if err := r.db.WithContext(ctx).Raw(selectProductsSQL).Scan(&rows).Error; err != nil {
		return nil, shared.NewStoreError("list productos", err)
	}

	products := make([]catalog.Product, 0, len(rows))
	for i := range rows {
		products = append(products, *rows[i].ToDomain())
	}
	return products, nil
}

// Create inserts a product and returns the stored row, including the generated id
func (r *GormProductRepository) Create(ctx context.Context, p *catalog.NewProduct) (*catalog.Product, error) {
	var row models.ProductModel
	err := r.db.WithContext(ctx).
		Raw(insertProductSQL, p.Name, p.Description, p.Price, p.Stock, p.CategoryID).
		Scan(&row).Error
	if err != nil {
		return nil, shared.NewStoreError("insert productos", err)
	}
	return row.ToDomain(), nil
}

// Ensure GormProductRepository implements the interface
var _ catalog.ProductRepository = (*GormProductRepository)(nil)
