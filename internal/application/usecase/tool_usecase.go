package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/gmao-pro/internal/application/dto"
	"github.com/tu-usuario/gmao-pro/internal/domain"
	"github.com/tu-usuario/gmao-pro/internal/domain/entity"
	"github.com/tu-usuario/gmao-pro/internal/domain/repository"
)

// ToolUseCase casos de uso CRUD para herramientas del pañol.
type ToolUseCase struct {
	repo       repository.ToolRepository
	workerRepo repository.WorkerRepository
	sectorRepo repository.SectorRepository
}

// NewToolUseCase construye el caso de uso.
func NewToolUseCase(repo repository.ToolRepository, workerRepo repository.WorkerRepository, sectorRepo repository.SectorRepository) *ToolUseCase {
	return &ToolUseCase{repo: repo, workerRepo: workerRepo, sectorRepo: sectorRepo}
}

// Create crea una herramienta, validando las asignaciones si vienen.
func (uc *ToolUseCase) Create(companyID string, in dto.ToolRequest) (*dto.ToolResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.validateAssignments(companyID, in.CurrentWorkerID, in.CurrentSectorID); err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = entity.ToolStatusAvailable
	}
	now := time.Now()
	tool := &entity.Tool{
		ID:              uuid.New().String(),
		CompanyID:       companyID,
		Name:            in.Name,
		Code:            in.Code,
		Brand:           in.Brand,
		Status:          status,
		CurrentWorkerID: in.CurrentWorkerID,
		CurrentSectorID: in.CurrentSectorID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(tool); err != nil {
		return nil, err
	}
	return toToolResponse(tool), nil
}

// List lista las herramientas de la empresa.
func (uc *ToolUseCase) List(companyID string) ([]dto.ToolResponse, error) {
	list, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ToolResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toToolResponse(t))
	}
	return items, nil
}

// Update edita una herramienta de la empresa.
func (uc *ToolUseCase) Update(companyID, id string, in dto.ToolRequest) (*dto.ToolResponse, error) {
	tool, err := uc.findOwned(companyID, id)
	if err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.validateAssignments(companyID, in.CurrentWorkerID, in.CurrentSectorID); err != nil {
		return nil, err
	}
	tool.Name = in.Name
	tool.Code = in.Code
	tool.Brand = in.Brand
	if in.Status != "" {
		tool.Status = in.Status
	}
	tool.CurrentWorkerID = in.CurrentWorkerID
	tool.CurrentSectorID = in.CurrentSectorID
	tool.UpdatedAt = time.Now()
	if err := uc.repo.Update(tool); err != nil {
		return nil, err
	}
	return toToolResponse(tool), nil
}

// Delete borra una herramienta.
func (uc *ToolUseCase) Delete(companyID, id string) error {
	tool, err := uc.findOwned(companyID, id)
	if err != nil {
		return err
	}
	return uc.repo.Delete(tool.ID)
}

func (uc *ToolUseCase) validateAssignments(companyID string, workerID, sectorID *string) error {
	if workerID != nil && *workerID != "" {
		worker, err := uc.workerRepo.GetByID(*workerID)
		if err != nil {
			return err
		}
		if worker == nil || worker.CompanyID != companyID {
			return domain.ErrInvalidReference
		}
	}
	if sectorID != nil && *sectorID != "" {
		sector, err := uc.sectorRepo.GetByID(*sectorID)
		if err != nil {
			return err
		}
		if sector == nil || sector.CompanyID != companyID {
			return domain.ErrInvalidReference
		}
	}
	return nil
}

func (uc *ToolUseCase) findOwned(companyID, id string) (*entity.Tool, error) {
	tool, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tool == nil || tool.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return tool, nil
}

func toToolResponse(t *entity.Tool) *dto.ToolResponse {
	return &dto.ToolResponse{
		ID:              t.ID,
		CompanyID:       t.CompanyID,
		Name:            t.Name,
		Code:            t.Code,
		Brand:           t.Brand,
		Status:          t.Status,
		CurrentWorkerID: t.CurrentWorkerID,
		CurrentSectorID: t.CurrentSectorID,
	}
}
