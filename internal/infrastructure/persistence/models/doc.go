// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer free
// from ORM concerns.
//
// Structure:
// - catalog.go: productos and categorias
// - partner.go: clientes
// - trade.go: ordenes
// - schema.go: rows read from information_schema
package models
