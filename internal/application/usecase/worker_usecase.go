package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/gmao-pro/internal/application/dto"
	"github.com/tu-usuario/gmao-pro/internal/domain"
	"github.com/tu-usuario/gmao-pro/internal/domain/entity"
	"github.com/tu-usuario/gmao-pro/internal/domain/repository"
)

// WorkerUseCase casos de uso CRUD para trabajadores.
type WorkerUseCase struct {
	repo       repository.WorkerRepository
	sectorRepo repository.SectorRepository
}

// NewWorkerUseCase construye el caso de uso.
func NewWorkerUseCase(repo repository.WorkerRepository, sectorRepo repository.SectorRepository) *WorkerUseCase {
	return &WorkerUseCase{repo: repo, sectorRepo: sectorRepo}
}

// Create crea un trabajador. El sector, si viene, debe existir en la misma empresa.
func (uc *WorkerUseCase) Create(companyID string, in dto.WorkerRequest) (*dto.WorkerResponse, error) {
	if in.FirstName == "" || in.LastName == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.validateSector(companyID, in.SectorID); err != nil {
		return nil, err
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	now := time.Now()
	worker := &entity.Worker{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		RutDNI:    in.RutDNI,
		Email:     in.Email,
		Phone:     in.Phone,
		JobTitle:  in.JobTitle,
		SectorID:  in.SectorID,
		IsActive:  active,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(worker); err != nil {
		return nil, err
	}
	return toWorkerResponse(worker), nil
}

// List lista los trabajadores de la empresa.
func (uc *WorkerUseCase) List(companyID string) ([]dto.WorkerResponse, error) {
	list, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WorkerResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWorkerResponse(w))
	}
	return items, nil
}

// Update edita un trabajador de la empresa.
func (uc *WorkerUseCase) Update(companyID, id string, in dto.WorkerRequest) (*dto.WorkerResponse, error) {
	worker, err := uc.findOwned(companyID, id)
	if err != nil {
		return nil, err
	}
	if in.FirstName == "" || in.LastName == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.validateSector(companyID, in.SectorID); err != nil {
		return nil, err
	}
	worker.FirstName = in.FirstName
	worker.LastName = in.LastName
	worker.RutDNI = in.RutDNI
	worker.Email = in.Email
	worker.Phone = in.Phone
	worker.JobTitle = in.JobTitle
	worker.SectorID = in.SectorID
	if in.IsActive != nil {
		worker.IsActive = *in.IsActive
	}
	worker.UpdatedAt = time.Now()
	if err := uc.repo.Update(worker); err != nil {
		return nil, err
	}
	return toWorkerResponse(worker), nil
}

// Delete borra un trabajador. Las referencias que lo apuntan (órdenes de
// trabajo, herramientas) son anulables y el esquema las deja en NULL.
func (uc *WorkerUseCase) Delete(companyID, id string) error {
	worker, err := uc.findOwned(companyID, id)
	if err != nil {
		return err
	}
	return uc.repo.Delete(worker.ID)
}

func (uc *WorkerUseCase) validateSector(companyID string, sectorID *string) error {
	if sectorID == nil || *sectorID == "" {
		return nil
	}
	sector, err := uc.sectorRepo.GetByID(*sectorID)
	if err != nil {
		return err
	}
	if sector == nil || sector.CompanyID != companyID {
		return domain.ErrInvalidReference
	}
	return nil
}

func (uc *WorkerUseCase) findOwned(companyID, id string) (*entity.Worker, error) {
	worker, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if worker == nil || worker.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return worker, nil
}

func toWorkerResponse(w *entity.Worker) *dto.WorkerResponse {
	return &dto.WorkerResponse{
		ID:        w.ID,
		CompanyID: w.CompanyID,
		FirstName: w.FirstName,
		LastName:  w.LastName,
		RutDNI:    w.RutDNI,
		Email:     w.Email,
		Phone:     w.Phone,
		JobTitle:  w.JobTitle,
		SectorID:  w.SectorID,
		IsActive:  w.IsActive,
	}
}
