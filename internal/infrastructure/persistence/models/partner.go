package models

import "github.com/tienda/backend/internal/domain/partner"

// ClientModel is the persistence model for the clientes table
type ClientModel struct {
	ID      int64   `gorm:"column:id_cliente;primaryKey;autoIncrement"`
	Name    string  `gorm:"column:nombre;type:varchar(100);not null"`
	Email   *string `gorm:"column:email;type:varchar(100);uniqueIndex"`
	Address *string `gorm:"column:direccion;type:text"`
	Phone   *string `gorm:"column:telefono;type:varchar(20)"`
}

// TableName returns the table name for GORM
func (ClientModel) TableName() string {
	return "clientes"
}

// ToDomain converts the persistence model to a domain Client
func (m *ClientModel) ToDomain() *partner.Client {
	return &partner.Client{
		ID:      m.ID,
		Name:    m.Name,
		Email:   m.Email,
		Address: m.Address,
		Phone:   m.Phone,
	}
}
