package entity

import "time"

// Estados de una herramienta.
const (
	ToolStatusAvailable = "AVAILABLE"
	ToolStatusInUse     = "IN_USE"
	ToolStatusBroken    = "BROKEN"
	ToolStatusLost      = "LOST"
)

// Tool representa una herramienta del pañol. Puede estar en manos de un
// trabajador o asignada a un sector (ambas referencias débiles, anulables).
type Tool struct {
	ID              string
	CompanyID       string
	Name            string
	Code            string
	Brand           string
	Status          string // ver constantes ToolStatus*
	CurrentWorkerID *string
	CurrentSectorID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
