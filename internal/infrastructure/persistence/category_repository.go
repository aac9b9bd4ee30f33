package persistence

import (
	"context"

	"github.com/tienda/backend/internal/domain/catalog"
	"github.com/tienda/backend/internal/domain/shared"
	"github.com/tienda/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

const (
	selectCategoriesSQL = "SELECT * FROM categorias ORDER BY id_categoria"
	insertCategorySQL   = "INSERT INTO categorias (nombre, descripcion) VALUES (?, ?) RETURNING *"
)

// GormCategoryRepository implements catalog.CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// FindAll returns every category ordered by id
func (r *GormCategoryRepository) FindAll(ctx context.Context) ([]catalog.Category, error) {
	var rows []models.CategoryModel
	if err := r.db.WithContext(ctx).Raw(selectCategoriesSQL).Scan(&rows).Error; err != nil {
		return nil, shared.NewStoreError("list categorias", err)
	}

	categories := make([]catalog.Category, 0, len(rows))
	for i := range rows {
		categories = append(categories, *rows[i].ToDomain())
	}
	return categories, nil
}

// Create inserts a category and returns the stored row
func (r *GormCategoryRepository) Create(ctx context.Context, c *catalog.NewCategory) (*catalog.Category, error) {
	var row models.CategoryModel
	if err := r.db.WithContext(ctx).Raw(insertCategorySQL, c.Name, c.Description).Scan(&row).Error; err != nil {
		return nil, shared.NewStoreError("insert categorias", err)
	}
	return row.ToDomain(), nil
}

var _ catalog.CategoryRepository = (*GormCategoryRepository)(nil)
