package dto

// PreventiveTaskRequest ítem del checklist al crear un plan.
type PreventiveTaskRequest struct {
	Description   string `json:"description"`
	EstimatedTime *int   `json:"estimated_time"` // minutos
}

// CreatePlanRequest alta de un plan preventivo con su checklist ordenado.
type CreatePlanRequest struct {
	AssetID        string                  `json:"asset_id"`
	Name           string                  `json:"name"`
	FrequencyType  string                  `json:"frequency_type"`
	FrequencyValue int                     `json:"frequency_value"`
	IsActive       *bool                   `json:"is_active"`
	Tasks          []PreventiveTaskRequest `json:"tasks"`
}

// UpdatePlanRequest edición parcial de un plan (nombre, frecuencia, activación).
type UpdatePlanRequest struct {
	Name           *string `json:"name"`
	FrequencyType  *string `json:"frequency_type"`
	FrequencyValue *int    `json:"frequency_value"`
	IsActive       *bool   `json:"is_active"`
}

// PreventiveTaskResponse ítem del checklist.
type PreventiveTaskResponse struct {
	ID            string `json:"id"`
	Description   string `json:"description"`
	EstimatedTime *int   `json:"estimated_time"`
	Position      int    `json:"position"`
}

// PlanResponse plan con su checklist. Las fechas van como 2006-01-02.
type PlanResponse struct {
	ID             string                   `json:"id"`
	CompanyID      string                   `json:"company_id"`
	AssetID        string                   `json:"asset_id"`
	Name           string                   `json:"name"`
	FrequencyType  string                   `json:"frequency_type"`
	FrequencyValue int                      `json:"frequency_value"`
	LastRun        *string                  `json:"last_run"`
	NextRun        *string                  `json:"next_run"`
	IsActive       bool                     `json:"is_active"`
	Tasks          []PreventiveTaskResponse `json:"tasks"`
}

// SweepResponse resultado de una pasada del barrido de planes vencidos.
// GeneratedCount se reporta siempre, incluso si es cero.
type SweepResponse struct {
	Status         string `json:"status"`
	GeneratedCount int    `json:"generated_count"`
}
