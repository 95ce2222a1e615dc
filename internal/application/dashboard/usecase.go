package dashboard

import (
	"fmt"
	"time"

	"github.com/tu-usuario/gmao-pro/internal/application/dto"
	"github.com/tu-usuario/gmao-pro/internal/domain/entity"
	"github.com/tu-usuario/gmao-pro/internal/domain/repository"
)

// recentLimit cantidad de órdenes recientes que muestra el tablero.
const recentLimit = 5

// UseCase arma el resumen del tablero: órdenes abiertas por estado, actividad
// reciente y totales del año en curso por tipo.
type UseCase struct {
	dashboardRepo repository.DashboardRepository
	now           func() time.Time
}

func NewUseCase(dashboardRepo repository.DashboardRepository) *UseCase {
	return &UseCase{dashboardRepo: dashboardRepo, now: time.Now}
}

// Stats devuelve el resumen para la empresa.
func (uc *UseCase) Stats(companyID string) (*dto.DashboardResponse, error) {
	resp := &dto.DashboardResponse{}

	var err error
	if resp.Counts.Pending, err = uc.dashboardRepo.CountWorkOrdersByStatus(companyID, entity.WorkOrderStatusPendiente); err != nil {
		return nil, fmt.Errorf("error al contar órdenes pendientes: %w", err)
	}
	if resp.Counts.InProgress, err = uc.dashboardRepo.CountWorkOrdersByStatus(companyID, entity.WorkOrderStatusEnProgreso); err != nil {
		return nil, fmt.Errorf("error al contar órdenes en progreso: %w", err)
	}
	if resp.Counts.Paused, err = uc.dashboardRepo.CountWorkOrdersByStatus(companyID, entity.WorkOrderStatusPausada); err != nil {
		return nil, fmt.Errorf("error al contar órdenes pausadas: %w", err)
	}

	year := uc.now().Year()
	if resp.YearlyStats.Corrective, err = uc.dashboardRepo.CountWorkOrdersByTypeAndYear(companyID, entity.WorkOrderTypeCorrectivo, year); err != nil {
		return nil, fmt.Errorf("error al contar correctivas del año: %w", err)
	}
	if resp.YearlyStats.Preventive, err = uc.dashboardRepo.CountWorkOrdersByTypeAndYear(companyID, entity.WorkOrderTypePreventivo, year); err != nil {
		return nil, fmt.Errorf("error al contar preventivas del año: %w", err)
	}
	resp.YearlyStats.Total = resp.YearlyStats.Corrective + resp.YearlyStats.Preventive

	recent, err := uc.dashboardRepo.ListRecentWorkOrders(companyID, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("error al listar actividad reciente: %w", err)
	}
	resp.RecentActivity = make([]dto.WorkOrderResponse, 0, len(recent))
	for _, o := range recent {
		resp.RecentActivity = append(resp.RecentActivity, dto.WorkOrderResponse{
			ID:            o.ID,
			CompanyID:     o.CompanyID,
			AssetID:       o.AssetID,
			SectorID:      o.SectorID,
			PlanID:        o.PlanID,
			TicketNumber:  o.TicketNumber,
			Type:          o.Type,
			Status:        o.Status,
			Priority:      o.Priority,
			Description:   o.Description,
			Observations:  o.Observations,
			RequestedByID: o.RequestedByID,
			AssignedToID:  o.AssignedToID,
			CreatedAt:     o.CreatedAt,
			AssignedAt:    o.AssignedAt,
			StartDate:     o.StartDate,
			EndDate:       o.EndDate,
		})
	}

	return resp, nil
}
