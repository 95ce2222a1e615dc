package preventive

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/gmao-pro/internal/application/dto"
	"github.com/tu-usuario/gmao-pro/internal/domain"
	"github.com/tu-usuario/gmao-pro/internal/domain/entity"
	"github.com/tu-usuario/gmao-pro/internal/domain/maintenance"
	"github.com/tu-usuario/gmao-pro/internal/domain/repository"
)

// PlanUseCase gestiona los planes de mantenimiento preventivo y su checklist
// de tareas.
type PlanUseCase struct {
	planRepo  repository.PreventivePlanRepository
	assetRepo repository.AssetRepository
	clock     maintenance.Clock
}

func NewPlanUseCase(
	planRepo repository.PreventivePlanRepository,
	assetRepo repository.AssetRepository,
	clock maintenance.Clock,
) *PlanUseCase {
	return &PlanUseCase{planRepo: planRepo, assetRepo: assetRepo, clock: clock}
}

// Create registra un plan nuevo. El plan nace programado para hoy: next_run se
// fija a la fecha actual para que el primer barrido lo recoja.
func (uc *PlanUseCase) Create(companyID string, req *dto.CreatePlanRequest) (*dto.PlanResponse, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	if !entity.ValidFrequency(req.FrequencyType) {
		return nil, fmt.Errorf("%w: tipo de frecuencia %q no reconocido", domain.ErrInvalidInput, req.FrequencyType)
	}
	if req.FrequencyValue <= 0 {
		return nil, fmt.Errorf("%w: el multiplicador de frecuencia debe ser positivo", domain.ErrInvalidInput)
	}
	if err := uc.validateAsset(companyID, req.AssetID); err != nil {
		return nil, err
	}

	today := uc.clock.Today()
	plan := &entity.PreventivePlan{
		ID:             uuid.New().String(),
		CompanyID:      companyID,
		AssetID:        req.AssetID,
		Name:           req.Name,
		FrequencyType:  req.FrequencyType,
		FrequencyValue: req.FrequencyValue,
		NextRun:        &today,
		IsActive:       true,
		CreatedAt:      time.Now(),
	}
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}
	if err := uc.planRepo.Create(plan); err != nil {
		return nil, fmt.Errorf("error al crear plan: %w", err)
	}

	tasks := make([]*entity.PreventiveTask, 0, len(req.Tasks))
	for i, t := range req.Tasks {
		task := &entity.PreventiveTask{
			ID:            uuid.New().String(),
			PlanID:        plan.ID,
			Description:   t.Description,
			EstimatedTime: t.EstimatedTime,
			Position:      i,
		}
		if err := uc.planRepo.CreateTask(task); err != nil {
			return nil, fmt.Errorf("error al crear tarea del plan: %w", err)
		}
		tasks = append(tasks, task)
	}

	return toPlanResponse(plan, tasks), nil
}

// List devuelve los planes de la empresa con sus tareas.
func (uc *PlanUseCase) List(companyID string) ([]*dto.PlanResponse, error) {
	plans, err := uc.planRepo.ListByCompany(companyID)
	if err != nil {
		return nil, fmt.Errorf("error al listar planes: %w", err)
	}
	out := make([]*dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		tasks, err := uc.planRepo.ListTasksByPlan(p.ID)
		if err != nil {
			return nil, fmt.Errorf("error al listar tareas del plan: %w", err)
		}
		out = append(out, toPlanResponse(p, tasks))
	}
	return out, nil
}

func (uc *PlanUseCase) Get(companyID, planID string) (*dto.PlanResponse, error) {
	plan, err := uc.findOwned(companyID, planID)
	if err != nil {
		return nil, err
	}
	tasks, err := uc.planRepo.ListTasksByPlan(plan.ID)
	if err != nil {
		return nil, fmt.Errorf("error al listar tareas del plan: %w", err)
	}
	return toPlanResponse(plan, tasks), nil
}

// Update modifica los campos editables del plan. Cambiar la frecuencia no
// recalcula next_run: la nueva cadencia aplica a partir de la próxima
// generación.
func (uc *PlanUseCase) Update(companyID, planID string, req *dto.UpdatePlanRequest) (*dto.PlanResponse, error) {
	plan, err := uc.findOwned(companyID, planID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		plan.Name = *req.Name
	}
	if req.FrequencyType != nil {
		if !entity.ValidFrequency(*req.FrequencyType) {
			return nil, fmt.Errorf("%w: tipo de frecuencia %q no reconocido", domain.ErrInvalidInput, *req.FrequencyType)
		}
		plan.FrequencyType = *req.FrequencyType
	}
	if req.FrequencyValue != nil {
		if *req.FrequencyValue <= 0 {
			return nil, fmt.Errorf("%w: el multiplicador de frecuencia debe ser positivo", domain.ErrInvalidInput)
		}
		plan.FrequencyValue = *req.FrequencyValue
	}
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}

	if err := uc.planRepo.Update(plan); err != nil {
		return nil, fmt.Errorf("error al actualizar plan: %w", err)
	}
	tasks, err := uc.planRepo.ListTasksByPlan(plan.ID)
	if err != nil {
		return nil, fmt.Errorf("error al listar tareas del plan: %w", err)
	}
	return toPlanResponse(plan, tasks), nil
}

// Delete elimina el plan y sus tareas. Las órdenes ya generadas conservan su
// historial: la referencia al plan queda en NULL.
func (uc *PlanUseCase) Delete(companyID, planID string) error {
	plan, err := uc.findOwned(companyID, planID)
	if err != nil {
		return err
	}
	if err := uc.planRepo.Delete(plan.ID); err != nil {
		return fmt.Errorf("error al eliminar plan: %w", err)
	}
	return nil
}

func (uc *PlanUseCase) findOwned(companyID, planID string) (*entity.PreventivePlan, error) {
	plan, err := uc.planRepo.GetByID(planID)
	if err != nil {
		return nil, fmt.Errorf("error al buscar plan: %w", err)
	}
	if plan == nil || plan.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return plan, nil
}

func (uc *PlanUseCase) validateAsset(companyID, assetID string) error {
	asset, err := uc.assetRepo.GetByID(assetID)
	if err != nil {
		return fmt.Errorf("error al validar activo: %w", err)
	}
	if asset == nil || asset.CompanyID != companyID {
		return fmt.Errorf("%w: el activo no existe", domain.ErrInvalidReference)
	}
	return nil
}

func toPlanResponse(plan *entity.PreventivePlan, tasks []*entity.PreventiveTask) *dto.PlanResponse {
	resp := &dto.PlanResponse{
		ID:             plan.ID,
		CompanyID:      plan.CompanyID,
		AssetID:        plan.AssetID,
		Name:           plan.Name,
		FrequencyType:  plan.FrequencyType,
		FrequencyValue: plan.FrequencyValue,
		IsActive:       plan.IsActive,
		Tasks:          make([]dto.PreventiveTaskResponse, 0, len(tasks)),
	}
	if plan.LastRun != nil {
		s := plan.LastRun.Format("2006-01-02")
		resp.LastRun = &s
	}
	if plan.NextRun != nil {
		s := plan.NextRun.Format("2006-01-02")
		resp.NextRun = &s
	}
	for _, t := range tasks {
		resp.Tasks = append(resp.Tasks, dto.PreventiveTaskResponse{
			ID:            t.ID,
			Description:   t.Description,
			EstimatedTime: t.EstimatedTime,
			Position:      t.Position,
		})
	}
	return resp
}
