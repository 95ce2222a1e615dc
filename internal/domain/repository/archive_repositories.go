package repository

import "github.com/tu-usuario/gmao-pro/internal/domain/entity"

// Puertos de persistencia de los archivos maestros (sectores, trabajadores,
// activos, herramientas, repuestos, proveedores). Todas las lecturas devuelven
// (nil, nil) si el registro no existe; el filtrado por empresa lo hace el caso
// de uso comparando CompanyID.

type SectorRepository interface {
	Create(sector *entity.Sector) error
	GetByID(id string) (*entity.Sector, error)
	ListByCompany(companyID string) ([]*entity.Sector, error)
	Update(sector *entity.Sector) error
	Delete(id string) error
}

type WorkerRepository interface {
	Create(worker *entity.Worker) error
	GetByID(id string) (*entity.Worker, error)
	ListByCompany(companyID string) ([]*entity.Worker, error)
	Update(worker *entity.Worker) error
	Delete(id string) error
}

type AssetRepository interface {
	Create(asset *entity.Asset) error
	GetByID(id string) (*entity.Asset, error)
	ListByCompany(companyID string, sectorID *string) ([]*entity.Asset, error)
	Update(asset *entity.Asset) error
	Delete(id string) error
	// CountBySector se usa para bloquear el borrado de un sector con activos.
	CountBySector(sectorID string) (int, error)
}

type ToolRepository interface {
	Create(tool *entity.Tool) error
	GetByID(id string) (*entity.Tool, error)
	ListByCompany(companyID string) ([]*entity.Tool, error)
	Update(tool *entity.Tool) error
	Delete(id string) error
}

type SparePartCategoryRepository interface {
	Create(category *entity.SparePartCategory) error
	GetByID(id string) (*entity.SparePartCategory, error)
	ListByCompany(companyID string) ([]*entity.SparePartCategory, error)
	Delete(id string) error
}

type SparePartRepository interface {
	Create(part *entity.SparePart) error
	GetByID(id string) (*entity.SparePart, error)
	ListByCompany(companyID string) ([]*entity.SparePart, error)
	Update(part *entity.SparePart) error
	Delete(id string) error
	// CountByCategory se usa para bloquear el borrado de una categoría en uso.
	CountByCategory(categoryID string) (int, error)
}

type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	ListByCompany(companyID string) ([]*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	Delete(id string) error
}
