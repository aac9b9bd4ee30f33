package persistence

import (
	"context"

	"github.com/tienda/backend/internal/domain/schema"
	"github.com/tienda/backend/internal/domain/shared"
	"github.com/tienda/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// PublicSchema is the namespace introspected by GormSchemaReader
const PublicSchema = "public"

const (
	listTablesSQL     = "SELECT table_name FROM information_schema.tables WHERE table_schema = ? ORDER BY table_name"
	listBaseTablesSQL = "SELECT table_name FROM information_schema.tables WHERE table_schema = ? AND table_type = ? ORDER BY table_name"
	listColumnsSQL    = "SELECT column_name, data_type, is_nullable, column_default FROM information_schema.columns " +
		"WHERE table_schema = ? AND table_name = ? ORDER BY ordinal_position"
)

// GormSchemaReader implements schema.Reader over information_schema.
// Table names are only ever passed as bound parameters.
type GormSchemaReader struct {
	db *gorm.DB
}

// NewGormSchemaReader creates a new GormSchemaReader
func NewGormSchemaReader(db *gorm.DB) *GormSchemaReader {
	return &GormSchemaReader{db: db}
}

// ListTables returns the tables of the public schema. With baseOnly, views
// and foreign tables are excluded.
func (r *GormSchemaReader) ListTables(ctx context.Context, baseOnly bool) ([]schema.Table, error) {
	var rows []models.TableRow
	q := r.db.WithContext(ctx)
	if baseOnly {
		q = q.Raw(listBaseTablesSQL, PublicSchema, "BASE TABLE")
	} else {
		q = q.Raw(listTablesSQL, PublicSchema)
	}
	if err := q.Scan(&rows).Error; err != nil {
		return nil, shared.NewStoreError("list tables", err)
	}

	tables := make([]schema.Table, 0, len(rows))
	for _, row := range rows {
		tables = append(tables, row.ToDomain())
	}
	return tables, nil
}

// ListColumns returns the columns of a public table in declaration order
func (r *GormSchemaReader) ListColumns(ctx context.Context, table string) ([]schema.Column, error) {
	var rows []models.ColumnRow
	if err := r.db.WithContext(ctx).Raw(listColumnsSQL, PublicSchema, table).Scan(&rows).Error; err != nil {
		return nil, shared.NewStoreError("list columns", err)
	}

	columns := make([]schema.Column, 0, len(rows))
	for _, row := range rows {
		columns = append(columns, row.ToDomain())
	}
	return columns, nil
}

var _ schema.Reader = (*GormSchemaReader)(nil)
