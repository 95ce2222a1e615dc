package entity

import "time"

// Estados de una empresa (tenant).
const (
	CompanyStatusActive    = "ACTIVE"
	CompanyStatusSuspended = "SUSPENDED"
)

// Company representa una empresa/tenant del sistema. Toda entidad del dominio
// cuelga de una Company (aislamiento multi-tenant por company_id).
type Company struct {
	ID        string
	Name      string
	Code      string // código de invitación/registro, único global
	Status    string // ver constantes CompanyStatus*
	CreatedAt time.Time
	UpdatedAt time.Time
}
