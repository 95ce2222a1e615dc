package entity

import "time"

// Tipos de orden de trabajo.
const (
	WorkOrderTypePreventivo = "PREVENTIVO"
	WorkOrderTypeCorrectivo = "CORRECTIVO"
)

// Estados del ciclo de vida de una orden de trabajo.
// PENDIENTE → ASIGNADA → EN_PROGRESO ↔ PAUSADA → COMPLETADA.
// CANCELADA es alcanzable desde cualquier estado no terminal.
const (
	WorkOrderStatusPendiente  = "PENDIENTE"
	WorkOrderStatusAsignada   = "ASIGNADA"
	WorkOrderStatusEnProgreso = "EN_PROGRESO"
	WorkOrderStatusPausada    = "PAUSADA"
	WorkOrderStatusCompletada = "COMPLETADA"
	WorkOrderStatusCancelada  = "CANCELADA"
)

// Prioridades de una orden de trabajo.
const (
	PriorityBaja    = "BAJA"
	PriorityMedia   = "MEDIA"
	PriorityAlta    = "ALTA"
	PriorityCritica = "CRITICA"
)

// WorkOrder representa una orden de trabajo (ticket de mantenimiento).
// TicketNumber es único global e inmutable. PlanID es no-nulo solo en órdenes
// generadas por el barrido preventivo. Las referencias a activo/sector/
// trabajadores son débiles (anulables): borrar el referenciado no corrompe la OT.
// AssignedAt/StartDate/EndDate se setean una sola vez, en la primera entrada al
// estado correspondiente, y nunca se sobreescriben ni se limpian.
type WorkOrder struct {
	ID            string
	CompanyID     string
	AssetID       *string
	SectorID      *string
	PlanID        *string
	TicketNumber  string
	Type          string // PREVENTIVO, CORRECTIVO
	Status        string // ver constantes WorkOrderStatus*
	Priority      string // ver constantes Priority*
	Description   string
	Observations  string
	RequestedByID *string
	AssignedToID  *string
	CreatedAt     time.Time
	AssignedAt    *time.Time
	StartDate     *time.Time
	EndDate       *time.Time
	UpdatedAt     time.Time
}

// ValidWorkOrderStatus indica si el estado es uno de los conocidos.
func ValidWorkOrderStatus(status string) bool {
	switch status {
	case WorkOrderStatusPendiente, WorkOrderStatusAsignada, WorkOrderStatusEnProgreso,
		WorkOrderStatusPausada, WorkOrderStatusCompletada, WorkOrderStatusCancelada:
		return true
	}
	return false
}

// ValidPriority indica si la prioridad es una de las conocidas.
func ValidPriority(priority string) bool {
	switch priority {
	case PriorityBaja, PriorityMedia, PriorityAlta, PriorityCritica:
		return true
	}
	return false
}
