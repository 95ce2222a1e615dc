package repository

import "github.com/tu-usuario/gmao-pro/internal/domain/entity"

// CompanyRepository puerto de persistencia para Company.
// Las lecturas devuelven (nil, nil) si el registro no existe.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetByCode(code string) (*entity.Company, error)
	Update(company *entity.Company) error
}
