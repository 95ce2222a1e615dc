package entity

import "time"

// Supplier representa un proveedor de repuestos/servicios.
// CategoryIDs son las categorías de repuestos que provee (relación N:M).
type Supplier struct {
	ID          string
	CompanyID   string
	Name        string
	RutDNI      string
	Email       string
	Phone       string
	Address     string
	CategoryIDs []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
