package entity

import "time"

// Estados de un activo.
const (
	AssetStatusActive      = "ACTIVE"
	AssetStatusInactive    = "INACTIVE"
	AssetStatusMaintenance = "MAINTENANCE"
)

// Asset representa un activo/equipo mantenible (máquina, vehículo, instalación).
// El sector es obligatorio: todo activo pertenece a un sector de la planta.
type Asset struct {
	ID           string
	CompanyID    string
	SectorID     string
	Name         string
	Brand        string
	Model        string
	SerialNumber string
	PurchaseDate *time.Time
	Status       string // ver constantes AssetStatus*
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
