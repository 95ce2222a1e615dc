package dto

import "time"

// CreateWorkOrderRequest alta manual de una orden de trabajo (correctiva o
// preventiva). El número de ticket lo asigna el sistema, nunca el caller.
type CreateWorkOrderRequest struct {
	AssetID      *string `json:"asset_id"`
	SectorID     *string `json:"sector_id"`
	Type         string  `json:"type"`
	Priority     string  `json:"priority"`
	Description  string  `json:"description"`
	Observations string  `json:"observations"`
	AssignedToID *string `json:"assigned_to_id"`
}

// UpdateWorkOrderRequest edición parcial de una orden de trabajo. El cambio de
// Status dispara los timestamps del ciclo de vida (una sola vez cada uno).
type UpdateWorkOrderRequest struct {
	Description  *string `json:"description"`
	Observations *string `json:"observations"`
	Priority     *string `json:"priority"`
	Status       *string `json:"status"`
	AssignedToID *string `json:"assigned_to_id"`
}

// WorkOrderResponse orden de trabajo completa.
type WorkOrderResponse struct {
	ID            string     `json:"id"`
	CompanyID     string     `json:"company_id"`
	AssetID       *string    `json:"asset_id"`
	SectorID      *string    `json:"sector_id"`
	PlanID        *string    `json:"plan_id"`
	TicketNumber  string     `json:"ticket_number"`
	Type          string     `json:"type"`
	Status        string     `json:"status"`
	Priority      string     `json:"priority"`
	Description   string     `json:"description"`
	Observations  string     `json:"observations"`
	RequestedByID *string    `json:"requested_by_id"`
	AssignedToID  *string    `json:"assigned_to_id"`
	CreatedAt     time.Time  `json:"created_at"`
	AssignedAt    *time.Time `json:"assigned_at"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
}
