package preventive

import (
	"context"

	"github.com/tu-usuario/gmao-pro/internal/domain/repository"
)

// SweepTxRunner ejecuta una función dentro de una transacción que incluye los
// repos de planes y de órdenes de trabajo. El barrido la usa para que el
// reclamo del plan (update condicional de next_run) y la creación de la orden
// generada hagan commit o rollback juntos.
type SweepTxRunner interface {
	RunSweep(ctx context.Context, fn func(
		planRepo repository.PreventivePlanRepository,
		orderRepo repository.WorkOrderRepository,
	) error) error
}
