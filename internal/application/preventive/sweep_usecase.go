package preventive

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/gmao-pro/internal/application/dto"
	"github.com/tu-usuario/gmao-pro/internal/domain"
	"github.com/tu-usuario/gmao-pro/internal/domain/entity"
	"github.com/tu-usuario/gmao-pro/internal/domain/maintenance"
	"github.com/tu-usuario/gmao-pro/internal/domain/repository"
	"github.com/tu-usuario/gmao-pro/pkg/logger"
)

// SweepUseCase genera órdenes de trabajo a partir de los planes preventivos
// vencidos. El barrido es idempotente: cada plan vencido produce exactamente
// una orden por ciclo, aunque se invoque varias veces o en paralelo.
type SweepUseCase struct {
	txRunner SweepTxRunner
	planRepo repository.PreventivePlanRepository
	clock    maintenance.Clock
	log      *logger.Logger
}

func NewSweepUseCase(
	txRunner SweepTxRunner,
	planRepo repository.PreventivePlanRepository,
	clock maintenance.Clock,
	log *logger.Logger,
) *SweepUseCase {
	return &SweepUseCase{txRunner: txRunner, planRepo: planRepo, clock: clock, log: log}
}

// Run ejecuta una pasada del barrido para la empresa. Por cada plan vencido
// reclama el avance de agenda y crea la orden en la misma transacción; si otro
// barrido concurrente ya reclamó el plan, lo salta sin generar nada. Un plan
// que falla no aborta el resto de la pasada.
func (uc *SweepUseCase) Run(ctx context.Context, companyID, requestedByID string) (*dto.SweepResponse, error) {
	today := uc.clock.Today()

	due, err := uc.planRepo.ListDue(companyID, today)
	if err != nil {
		return nil, fmt.Errorf("error al listar planes vencidos: %w", err)
	}

	generated := 0
	for _, plan := range due {
		if plan.NextRun == nil {
			continue
		}
		created, err := uc.sweepPlan(ctx, plan, today, requestedByID)
		if err != nil {
			uc.log.Error().Err(err).
				Str("plan_id", plan.ID).
				Msg("barrido preventivo: plan fallido, se continúa con el resto")
			continue
		}
		if created {
			generated++
		}
	}

	uc.log.Info().
		Str("company_id", companyID).
		Int("generated", generated).
		Int("due", len(due)).
		Msg("barrido preventivo completado")

	return &dto.SweepResponse{Status: "ok", GeneratedCount: generated}, nil
}

// sweepPlan procesa un plan dentro de su propia transacción. Devuelve true si
// esta pasada generó la orden, false si otro barrido ganó el reclamo.
func (uc *SweepUseCase) sweepPlan(ctx context.Context, plan *entity.PreventivePlan, today time.Time, requestedByID string) (bool, error) {
	tasks, err := uc.planRepo.ListTasksByPlan(plan.ID)
	if err != nil {
		return false, fmt.Errorf("error al listar tareas del plan: %w", err)
	}

	nextRun := maintenance.NextRun(today, plan.FrequencyType, plan.FrequencyValue)
	order := buildPreventiveOrder(plan, tasks, requestedByID)

	claimed := false
	err = uc.txRunner.RunSweep(ctx, func(
		planRepo repository.PreventivePlanRepository,
		orderRepo repository.WorkOrderRepository,
	) error {
		ok, err := planRepo.AdvanceSchedule(plan.ID, today, nextRun, *plan.NextRun)
		if err != nil {
			return fmt.Errorf("error al avanzar agenda del plan: %w", err)
		}
		if !ok {
			return nil
		}
		claimed = true
		if err := orderRepo.Create(order); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				// Colisión de ticket en el mismo segundo: se reintenta una vez
				// con sufijo aleatorio, nunca se reusa el número.
				order.ID = uuid.New().String()
				order.TicketNumber = fmt.Sprintf("%s-%s", order.TicketNumber, uuid.New().String()[:8])
				return orderRepo.Create(order)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return claimed, nil
}

// buildPreventiveOrder arma la orden generada: ticket PM-<plan>-<timestamp>,
// tipo PREVENTIVO, prioridad MEDIA y el checklist del plan volcado en la
// descripción.
func buildPreventiveOrder(plan *entity.PreventivePlan, tasks []*entity.PreventiveTask, requestedByID string) *entity.WorkOrder {
	now := time.Now()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Mantenimiento Preventivo según Plan: %s\n", plan.Name)
	if len(tasks) > 0 {
		sb.WriteString("\nTareas:\n")
		for _, t := range tasks {
			fmt.Fprintf(&sb, "- [ ] %s\n", t.Description)
		}
	}

	planID := plan.ID
	assetID := plan.AssetID
	requestedBy := requestedByID
	return &entity.WorkOrder{
		ID:            uuid.New().String(),
		CompanyID:     plan.CompanyID,
		AssetID:       &assetID,
		PlanID:        &planID,
		TicketNumber:  fmt.Sprintf("PM-%s-%s", plan.ID, now.Format("20060102150405")),
		Type:          entity.WorkOrderTypePreventivo,
		Status:        entity.WorkOrderStatusPendiente,
		Priority:      entity.PriorityMedia,
		Description:   sb.String(),
		RequestedByID: &requestedBy,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
