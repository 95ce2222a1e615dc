package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/gmao-pro/internal/application/dto"
	"github.com/tu-usuario/gmao-pro/internal/domain"
	"github.com/tu-usuario/gmao-pro/internal/domain/entity"
	"github.com/tu-usuario/gmao-pro/internal/domain/repository"
)

// SparePartUseCase casos de uso CRUD para categorías de repuestos y repuestos.
type SparePartUseCase struct {
	categoryRepo repository.SparePartCategoryRepository
	partRepo     repository.SparePartRepository
}

// NewSparePartUseCase construye el caso de uso.
func NewSparePartUseCase(categoryRepo repository.SparePartCategoryRepository, partRepo repository.SparePartRepository) *SparePartUseCase {
	return &SparePartUseCase{categoryRepo: categoryRepo, partRepo: partRepo}
}

// CreateCategory crea una categoría de repuestos.
func (uc *SparePartUseCase) CreateCategory(companyID string, in dto.SparePartCategoryRequest) (*dto.SparePartCategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	category := &entity.SparePartCategory{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		CreatedAt: time.Now(),
	}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// ListCategories lista las categorías de la empresa.
func (uc *SparePartUseCase) ListCategories(companyID string) ([]dto.SparePartCategoryResponse, error) {
	list, err := uc.categoryRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SparePartCategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// DeleteCategory borra una categoría. Se bloquea si tiene repuestos asociados.
func (uc *SparePartUseCase) DeleteCategory(companyID, id string) error {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil || category.CompanyID != companyID {
		return domain.ErrNotFound
	}
	n, err := uc.partRepo.CountByCategory(category.ID)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrConflict
	}
	return uc.categoryRepo.Delete(category.ID)
}

// CreatePart crea un repuesto. La categoría, si viene, debe ser de la empresa.
func (uc *SparePartUseCase) CreatePart(companyID string, in dto.SparePartRequest) (*dto.SparePartResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.validateCategory(companyID, in.CategoryID); err != nil {
		return nil, err
	}
	now := time.Now()
	part := &entity.SparePart{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Code:        in.Code,
		Description: in.Description,
		Stock:       in.Stock,
		MinStock:    in.MinStock,
		Location:    in.Location,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.partRepo.Create(part); err != nil {
		return nil, err
	}
	return toPartResponse(part), nil
}

// ListParts lista los repuestos de la empresa.
func (uc *SparePartUseCase) ListParts(companyID string) ([]dto.SparePartResponse, error) {
	list, err := uc.partRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SparePartResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPartResponse(p))
	}
	return items, nil
}

// UpdatePart edita un repuesto de la empresa.
func (uc *SparePartUseCase) UpdatePart(companyID, id string, in dto.SparePartRequest) (*dto.SparePartResponse, error) {
	part, err := uc.findOwnedPart(companyID, id)
	if err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.validateCategory(companyID, in.CategoryID); err != nil {
		return nil, err
	}
	part.CategoryID = in.CategoryID
	part.Name = in.Name
	part.Code = in.Code
	part.Description = in.Description
	part.Stock = in.Stock
	part.MinStock = in.MinStock
	part.Location = in.Location
	part.UpdatedAt = time.Now()
	if err := uc.partRepo.Update(part); err != nil {
		return nil, err
	}
	return toPartResponse(part), nil
}

// DeletePart borra un repuesto. Las líneas de órdenes de compra que lo
// referencian son anulables (quedan con la descripción de texto libre).
func (uc *SparePartUseCase) DeletePart(companyID, id string) error {
	part, err := uc.findOwnedPart(companyID, id)
	if err != nil {
		return err
	}
	return uc.partRepo.Delete(part.ID)
}

func (uc *SparePartUseCase) validateCategory(companyID string, categoryID *string) error {
	if categoryID == nil || *categoryID == "" {
		return nil
	}
	category, err := uc.categoryRepo.GetByID(*categoryID)
	if err != nil {
		return err
	}
	if category == nil || category.CompanyID != companyID {
		return domain.ErrInvalidReference
	}
	return nil
}

func (uc *SparePartUseCase) findOwnedPart(companyID, id string) (*entity.SparePart, error) {
	part, err := uc.partRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if part == nil || part.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return part, nil
}

func toCategoryResponse(c *entity.SparePartCategory) *dto.SparePartCategoryResponse {
	return &dto.SparePartCategoryResponse{ID: c.ID, CompanyID: c.CompanyID, Name: c.Name}
}

func toPartResponse(p *entity.SparePart) *dto.SparePartResponse {
	return &dto.SparePartResponse{
		ID:          p.ID,
		CompanyID:   p.CompanyID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Code:        p.Code,
		Description: p.Description,
		Stock:       p.Stock,
		MinStock:    p.MinStock,
		Location:    p.Location,
	}
}
