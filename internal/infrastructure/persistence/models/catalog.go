package models

import (
	"github.com/shopspring/decimal"
	"github.com/tienda/backend/internal/domain/catalog"
)

// ProductModel is the persistence model for the productos table
type ProductModel struct {
	ID          int64           `gorm:"column:id_producto;primaryKey;autoIncrement"`
	Name        string          `gorm:"column:nombre;type:varchar(100);not null"`
	Description *string         `gorm:"column:descripcion;type:text"`
	Price       decimal.Decimal `gorm:"column:precio;type:decimal(10,2);not null"`
	Stock       int64           `gorm:"column:stock;not null"`
	CategoryID  *int64          `gorm:"column:id_categoria"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "productos"
}

// ToDomain converts the persistence model to a domain Product
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Stock:       m.Stock,
		CategoryID:  m.CategoryID,
	}
}

// CategoryModel is the persistence model for the categorias table
type CategoryModel struct {
	ID          int64   `gorm:"column:id_categoria;primaryKey;autoIncrement"`
	Name        string  `gorm:"column:nombre;type:varchar(100);not null"`
	Description *string `gorm:"column:descripcion;type:text"`
}

// TableName returns the table name for GORM
func (CategoryModel) TableName() string {
	return "categorias"
}

// ToDomain converts the persistence model to a domain Category
func (m *CategoryModel) ToDomain() *catalog.Category {
	return &catalog.Category{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
	}
}
