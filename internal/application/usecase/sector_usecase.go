package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/gmao-pro/internal/application/dto"
	"github.com/tu-usuario/gmao-pro/internal/domain"
	"github.com/tu-usuario/gmao-pro/internal/domain/entity"
	"github.com/tu-usuario/gmao-pro/internal/domain/repository"
)

// SectorUseCase casos de uso CRUD para sectores.
type SectorUseCase struct {
	repo      repository.SectorRepository
	assetRepo repository.AssetRepository
}

// NewSectorUseCase construye el caso de uso.
func NewSectorUseCase(repo repository.SectorRepository, assetRepo repository.AssetRepository) *SectorUseCase {
	return &SectorUseCase{repo: repo, assetRepo: assetRepo}
}

// Create crea un sector.
func (uc *SectorUseCase) Create(companyID string, in dto.SectorRequest) (*dto.SectorResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	sector := &entity.Sector{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(sector); err != nil {
		return nil, err
	}
	return toSectorResponse(sector), nil
}

// List lista los sectores de la empresa.
func (uc *SectorUseCase) List(companyID string) ([]dto.SectorResponse, error) {
	list, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SectorResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSectorResponse(s))
	}
	return items, nil
}

// Update edita un sector de la empresa.
func (uc *SectorUseCase) Update(companyID, id string, in dto.SectorRequest) (*dto.SectorResponse, error) {
	sector, err := uc.findOwned(companyID, id)
	if err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	sector.Name = in.Name
	sector.Description = in.Description
	sector.UpdatedAt = time.Now()
	if err := uc.repo.Update(sector); err != nil {
		return nil, err
	}
	return toSectorResponse(sector), nil
}

// Delete borra un sector. Se bloquea si tiene activos asociados: borrar el
// sector dejaría huérfanos los activos, y esas referencias no son anulables.
func (uc *SectorUseCase) Delete(companyID, id string) error {
	sector, err := uc.findOwned(companyID, id)
	if err != nil {
		return err
	}
	n, err := uc.assetRepo.CountBySector(sector.ID)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrConflict
	}
	return uc.repo.Delete(sector.ID)
}

// findOwned obtiene el sector verificando pertenencia a la empresa.
// Un acceso cruzado reporta NotFound, no un forbidden distinto.
func (uc *SectorUseCase) findOwned(companyID, id string) (*entity.Sector, error) {
	sector, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sector == nil || sector.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return sector, nil
}

func toSectorResponse(s *entity.Sector) *dto.SectorResponse {
	return &dto.SectorResponse{
		ID:          s.ID,
		CompanyID:   s.CompanyID,
		Name:        s.Name,
		Description: s.Description,
	}
}
