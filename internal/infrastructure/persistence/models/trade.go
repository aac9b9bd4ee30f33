package models

import "github.com/tienda/backend/internal/domain/trade"

// OrderModel is the persistence model for the ordenes table
type OrderModel struct {
	ID       int64  `gorm:"column:id_orden;primaryKey;autoIncrement"`
	Type     string `gorm:"column:tipo_orden;type:varchar(50);not null"`
	ClientID *int64 `gorm:"column:id_cliente"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "ordenes"
}

// ToDomain converts the persistence model to a domain Order
func (m *OrderModel) ToDomain() *trade.Order {
	return &trade.Order{
		ID:       m.ID,
		Type:     m.Type,
		ClientID: m.ClientID,
	}
}
