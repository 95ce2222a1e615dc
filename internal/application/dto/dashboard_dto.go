package dto

// DashboardCounts órdenes de trabajo abiertas por estado.
type DashboardCounts struct {
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Paused     int `json:"paused"`
}

// DashboardYearlyStats totales del año en curso por tipo de orden.
type DashboardYearlyStats struct {
	Corrective int `json:"corrective"`
	Preventive int `json:"preventive"`
	Total      int `json:"total"`
}

// DashboardResponse resumen del tablero.
type DashboardResponse struct {
	Counts         DashboardCounts      `json:"counts"`
	RecentActivity []WorkOrderResponse  `json:"recent_activity"`
	YearlyStats    DashboardYearlyStats `json:"yearly_stats"`
}
