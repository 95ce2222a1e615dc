package entity

import "time"

// Sector representa un área física o funcional de la planta (ej: "Línea 2", "Bodega").
type Sector struct {
	ID          string
	CompanyID   string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
