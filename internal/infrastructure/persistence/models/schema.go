package models

import "github.com/tienda/backend/internal/domain/schema"

// TableRow is a row of information_schema.tables
type TableRow struct {
	TableName string `gorm:"column:table_name"`
}

// ToDomain converts the row to a schema.Table
func (r TableRow) ToDomain() schema.Table {
	return schema.Table{Name: r.TableName}
}

// ColumnRow is a row of information_schema.columns
type ColumnRow struct {
	ColumnName    string  `gorm:"column:column_name"`
	DataType      string  `gorm:"column:data_type"`
	IsNullable    string  `gorm:"column:is_nullable"`
	ColumnDefault *string `gorm:"column:column_default"`
}

// ToDomain converts the row to a schema.Column
func (r ColumnRow) ToDomain() schema.Column {
	return schema.Column{
		Name:     r.ColumnName,
		DataType: r.DataType,
		Nullable: r.IsNullable,
		Default:  r.ColumnDefault,
	}
}
