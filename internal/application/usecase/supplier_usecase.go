package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/gmao-pro/internal/application/dto"
	"github.com/tu-usuario/gmao-pro/internal/domain"
	"github.com/tu-usuario/gmao-pro/internal/domain/entity"
	"github.com/tu-usuario/gmao-pro/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	repo         repository.SupplierRepository
	categoryRepo repository.SparePartCategoryRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, categoryRepo repository.SparePartCategoryRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, categoryRepo: categoryRepo}
}

// Create crea un proveedor. Todas las categorías referenciadas deben existir
// en la misma empresa (validación previa a cualquier escritura).
func (uc *SupplierUseCase) Create(companyID string, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.validateCategories(companyID, in.CategoryIDs); err != nil {
		return nil, err
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Name:        in.Name,
		RutDNI:      in.RutDNI,
		Email:       in.Email,
		Phone:       in.Phone,
		Address:     in.Address,
		CategoryIDs: in.CategoryIDs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// List lista los proveedores de la empresa.
func (uc *SupplierUseCase) List(companyID string) ([]dto.SupplierResponse, error) {
	list, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return items, nil
}

// Update edita un proveedor de la empresa.
func (uc *SupplierUseCase) Update(companyID, id string, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.findOwned(companyID, id)
	if err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.validateCategories(companyID, in.CategoryIDs); err != nil {
		return nil, err
	}
	supplier.Name = in.Name
	supplier.RutDNI = in.RutDNI
	supplier.Email = in.Email
	supplier.Phone = in.Phone
	supplier.Address = in.Address
	supplier.CategoryIDs = in.CategoryIDs
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Delete borra un proveedor.
func (uc *SupplierUseCase) Delete(companyID, id string) error {
	supplier, err := uc.findOwned(companyID, id)
	if err != nil {
		return err
	}
	return uc.repo.Delete(supplier.ID)
}

func (uc *SupplierUseCase) validateCategories(companyID string, categoryIDs []string) error {
	for _, categoryID := range categoryIDs {
		category, err := uc.categoryRepo.GetByID(categoryID)
		if err != nil {
			return err
		}
		if category == nil || category.CompanyID != companyID {
			return domain.ErrInvalidReference
		}
	}
	return nil
}

func (uc *SupplierUseCase) findOwned(companyID, id string) (*entity.Supplier, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil || supplier.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return supplier, nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	categoryIDs := s.CategoryIDs
	if categoryIDs == nil {
		categoryIDs = []string{}
	}
	return &dto.SupplierResponse{
		ID:          s.ID,
		CompanyID:   s.CompanyID,
		Name:        s.Name,
		RutDNI:      s.RutDNI,
		Email:       s.Email,
		Phone:       s.Phone,
		Address:     s.Address,
		CategoryIDs: categoryIDs,
	}
}
