package dto

import "github.com/shopspring/decimal"

// --- Sectores ---

type SectorRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type SectorResponse struct {
	ID          string `json:"id"`
	CompanyID   string `json:"company_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// --- Trabajadores ---

type WorkerRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	RutDNI    string  `json:"rut_dni"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	JobTitle  string  `json:"job_title"`
	SectorID  *string `json:"sector_id"`
	IsActive  *bool   `json:"is_active"`
}

type WorkerResponse struct {
	ID        string  `json:"id"`
	CompanyID string  `json:"company_id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	RutDNI    string  `json:"rut_dni"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	JobTitle  string  `json:"job_title"`
	SectorID  *string `json:"sector_id"`
	IsActive  bool    `json:"is_active"`
}

// --- Activos ---

type AssetRequest struct {
	Name         string  `json:"name"`
	SectorID     string  `json:"sector_id"` // obligatorio
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	SerialNumber string  `json:"serial_number"`
	PurchaseDate *string `json:"purchase_date"` // formato 2006-01-02
	Status       string  `json:"status"`
}

type AssetResponse struct {
	ID           string  `json:"id"`
	CompanyID    string  `json:"company_id"`
	SectorID     string  `json:"sector_id"`
	Name         string  `json:"name"`
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	SerialNumber string  `json:"serial_number"`
	PurchaseDate *string `json:"purchase_date"`
	Status       string  `json:"status"`
}

// --- Herramientas ---

type ToolRequest struct {
	Name            string  `json:"name"`
	Code            string  `json:"code"`
	Brand           string  `json:"brand"`
	Status          string  `json:"status"`
	CurrentWorkerID *string `json:"current_worker_id"`
	CurrentSectorID *string `json:"current_sector_id"`
}

type ToolResponse struct {
	ID              string  `json:"id"`
	CompanyID       string  `json:"company_id"`
	Name            string  `json:"name"`
	Code            string  `json:"code"`
	Brand           string  `json:"brand"`
	Status          string  `json:"status"`
	CurrentWorkerID *string `json:"current_worker_id"`
	CurrentSectorID *string `json:"current_sector_id"`
}

// --- Repuestos ---

type SparePartCategoryRequest struct {
	Name string `json:"name"`
}

type SparePartCategoryResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
}

type SparePartRequest struct {
	CategoryID  *string         `json:"category_id"`
	Name        string          `json:"name"`
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Stock       decimal.Decimal `json:"stock"`
	MinStock    decimal.Decimal `json:"min_stock"`
	Location    string          `json:"location"`
}

type SparePartResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	CategoryID  *string         `json:"category_id"`
	Name        string          `json:"name"`
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Stock       decimal.Decimal `json:"stock"`
	MinStock    decimal.Decimal `json:"min_stock"`
	Location    string          `json:"location"`
}

// --- Proveedores ---

type SupplierRequest struct {
	Name        string   `json:"name"`
	RutDNI      string   `json:"rut_dni"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Address     string   `json:"address"`
	CategoryIDs []string `json:"category_ids"`
}

type SupplierResponse struct {
	ID          string   `json:"id"`
	CompanyID   string   `json:"company_id"`
	Name        string   `json:"name"`
	RutDNI      string   `json:"rut_dni"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Address     string   `json:"address"`
	CategoryIDs []string `json:"category_ids"`
}
