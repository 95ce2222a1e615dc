package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/gmao-pro/internal/application/dto"
	"github.com/tu-usuario/gmao-pro/internal/domain"
	"github.com/tu-usuario/gmao-pro/internal/domain/entity"
	"github.com/tu-usuario/gmao-pro/internal/domain/repository"
)

// AssetUseCase casos de uso CRUD para activos.
type AssetUseCase struct {
	repo       repository.AssetRepository
	sectorRepo repository.SectorRepository
	planRepo   repository.PreventivePlanRepository
}

// NewAssetUseCase construye el caso de uso.
func NewAssetUseCase(repo repository.AssetRepository, sectorRepo repository.SectorRepository, planRepo repository.PreventivePlanRepository) *AssetUseCase {
	return &AssetUseCase{repo: repo, sectorRepo: sectorRepo, planRepo: planRepo}
}

// Create crea un activo. El sector es obligatorio y debe ser de la misma empresa.
func (uc *AssetUseCase) Create(companyID string, in dto.AssetRequest) (*dto.AssetResponse, error) {
	if in.Name == "" || in.SectorID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.validateSector(companyID, in.SectorID); err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = entity.AssetStatusActive
	}
	purchaseDate, err := parseDate(in.PurchaseDate)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	asset := &entity.Asset{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		SectorID:     in.SectorID,
		Name:         in.Name,
		Brand:        in.Brand,
		Model:        in.Model,
		SerialNumber: in.SerialNumber,
		PurchaseDate: purchaseDate,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(asset); err != nil {
		return nil, err
	}
	return toAssetResponse(asset), nil
}

// List lista activos de la empresa, opcionalmente filtrados por sector.
func (uc *AssetUseCase) List(companyID string, sectorID *string) ([]dto.AssetResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, sectorID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AssetResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAssetResponse(a))
	}
	return items, nil
}

// Update edita un activo de la empresa.
func (uc *AssetUseCase) Update(companyID, id string, in dto.AssetRequest) (*dto.AssetResponse, error) {
	asset, err := uc.findOwned(companyID, id)
	if err != nil {
		return nil, err
	}
	if in.Name == "" || in.SectorID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.SectorID != asset.SectorID {
		if err := uc.validateSector(companyID, in.SectorID); err != nil {
			return nil, err
		}
	}
	purchaseDate, err := parseDate(in.PurchaseDate)
	if err != nil {
		return nil, err
	}
	asset.Name = in.Name
	asset.SectorID = in.SectorID
	asset.Brand = in.Brand
	asset.Model = in.Model
	asset.SerialNumber = in.SerialNumber
	asset.PurchaseDate = purchaseDate
	if in.Status != "" {
		asset.Status = in.Status
	}
	asset.UpdatedAt = time.Now()
	if err := uc.repo.Update(asset); err != nil {
		return nil, err
	}
	return toAssetResponse(asset), nil
}

// Delete borra un activo. Se bloquea si tiene planes preventivos: el plan
// quedaría sin activo que mantener y el barrido lo corrompería.
func (uc *AssetUseCase) Delete(companyID, id string) error {
	asset, err := uc.findOwned(companyID, id)
	if err != nil {
		return err
	}
	n, err := uc.planRepo.CountByAsset(asset.ID)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrConflict
	}
	return uc.repo.Delete(asset.ID)
}

func (uc *AssetUseCase) validateSector(companyID, sectorID string) error {
	sector, err := uc.sectorRepo.GetByID(sectorID)
	if err != nil {
		return err
	}
	if sector == nil || sector.CompanyID != companyID {
		return domain.ErrInvalidReference
	}
	return nil
}

func (uc *AssetUseCase) findOwned(companyID, id string) (*entity.Asset, error) {
	asset, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if asset == nil || asset.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return asset, nil
}

func toAssetResponse(a *entity.Asset) *dto.AssetResponse {
	return &dto.AssetResponse{
		ID:           a.ID,
		CompanyID:    a.CompanyID,
		SectorID:     a.SectorID,
		Name:         a.Name,
		Brand:        a.Brand,
		Model:        a.Model,
		SerialNumber: a.SerialNumber,
		PurchaseDate: formatDate(a.PurchaseDate),
		Status:       a.Status,
	}
}
