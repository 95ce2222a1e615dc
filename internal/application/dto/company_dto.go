package dto

import "time"

// CompanyResponse datos públicos de la empresa.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdateCompanyRequest edición del perfil de la empresa.
type UpdateCompanyRequest struct {
	Name *string `json:"name"`
}
