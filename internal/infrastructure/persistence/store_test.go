package persistence

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// storeDDL mirrors the production tables closely enough for repository tests
var storeDDL = []string{
	`CREATE TABLE categorias (
		id_categoria INTEGER PRIMARY KEY AUTOINCREMENT,
		nombre VARCHAR(100) NOT NULL,
		descripcion TEXT
	)`,
	`CREATE TABLE productos (
		id_producto INTEGER PRIMARY KEY AUTOINCREMENT,
		nombre VARCHAR(100) NOT NULL,
		descripcion TEXT,
		precio DECIMAL(10,2) NOT NULL,
		stock INTEGER NOT NULL,
		id_categoria INTEGER REFERENCES categorias(id_categoria)
	)`,
	`CREATE TABLE clientes (
		id_cliente INTEGER PRIMARY KEY AUTOINCREMENT,
		nombre VARCHAR(100) NOT NULL,
		email VARCHAR(100) UNIQUE,
		direccion TEXT,
		telefono VARCHAR(20)
	)`,
	`CREATE TABLE ordenes (
		id_orden INTEGER PRIMARY KEY AUTOINCREMENT,
		tipo_orden VARCHAR(50) NOT NULL,
		id_cliente INTEGER REFERENCES clientes(id_cliente)
	)`,
}

// setupStoreTestDB opens an in-memory SQLite store with the shop tables.
// A single connection keeps every statement on the same in-memory database.
func setupStoreTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	for _, stmt := range storeDDL {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }
