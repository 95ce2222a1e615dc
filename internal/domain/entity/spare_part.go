package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SparePartCategory agrupa repuestos (ej: "Rodamientos", "Filtros").
type SparePartCategory struct {
	ID        string
	CompanyID string
	Name      string
	CreatedAt time.Time
}

// SparePart representa un repuesto de bodega.
type SparePart struct {
	ID          string
	CompanyID   string
	CategoryID  *string
	Name        string
	Code        string
	Description string
	Stock       decimal.Decimal
	MinStock    decimal.Decimal
	Location    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
