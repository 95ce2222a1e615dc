package repository

import (
	"time"

	"github.com/tu-usuario/gmao-pro/internal/domain/entity"
)

// PreventivePlanRepository puerto de persistencia para planes preventivos y su
// checklist de tareas (propiedad exclusiva, borrado en cascada con el plan).
type PreventivePlanRepository interface {
	Create(plan *entity.PreventivePlan) error
	CreateTask(task *entity.PreventiveTask) error
	GetByID(id string) (*entity.PreventivePlan, error)
	ListByCompany(companyID string) ([]*entity.PreventivePlan, error)
	ListTasksByPlan(planID string) ([]*entity.PreventiveTask, error)
	// ListDue devuelve los planes activos de la empresa con next_run <= today.
	ListDue(companyID string, today time.Time) ([]*entity.PreventivePlan, error)
	Update(plan *entity.PreventivePlan) error
	// AdvanceSchedule avanza last_run/next_run solo si next_run todavía vale
	// expectedNextRun (update condicional). Devuelve false si otro barrido ya
	// reclamó el plan; el caller no debe generar la orden en ese caso.
	AdvanceSchedule(planID string, lastRun, nextRun, expectedNextRun time.Time) (bool, error)
	Delete(id string) error
	// CountByAsset se usa para bloquear el borrado de un activo con planes.
	CountByAsset(assetID string) (int, error)
}
