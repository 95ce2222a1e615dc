package entity

import "time"

// Worker representa un trabajador de mantenimiento (técnico, operario).
// SectorID es opcional: un trabajador puede no estar asignado a un sector.
type Worker struct {
	ID        string
	CompanyID string
	FirstName string
	LastName  string
	RutDNI    string
	Email     string
	Phone     string
	JobTitle  string
	SectorID  *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
