package entity

import "time"

// Frecuencias de un plan preventivo.
const (
	FrequencyDiaria  = "DIARIA"
	FrequencySemanal = "SEMANAL"
	FrequencyMensual = "MENSUAL"
	FrequencyAnual   = "ANUAL"
)

// PreventivePlan define la recurrencia de mantenimiento preventivo sobre un activo.
// LastRun es nil si el plan nunca se ejecutó. Invariante: mientras IsActive sea
// true, NextRun está seteado (un plan sin NextRun no puede ser barrido).
type PreventivePlan struct {
	ID             string
	CompanyID      string
	AssetID        string
	Name           string
	FrequencyType  string // ver constantes Frequency*
	FrequencyValue int    // multiplicador, entero positivo
	LastRun        *time.Time
	NextRun        *time.Time
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PreventiveTask es un ítem del checklist de un plan (propiedad exclusiva:
// se borra en cascada con el plan).
type PreventiveTask struct {
	ID            string
	PlanID        string
	Description   string
	EstimatedTime *int // minutos estimados, opcional
	Position      int  // orden dentro del checklist
}

// ValidFrequency indica si el tipo de frecuencia es uno de los conocidos.
func ValidFrequency(frequencyType string) bool {
	switch frequencyType {
	case FrequencyDiaria, FrequencySemanal, FrequencyMensual, FrequencyAnual:
		return true
	}
	return false
}
