package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/gmao-pro/internal/domain/entity"
	"github.com/tu-usuario/gmao-pro/internal/domain/repository"
)

var _ repository.AssetRepository = (*AssetRepo)(nil)

// AssetRepo implementación del puerto AssetRepository sobre PostgreSQL.
type AssetRepo struct {
	pool *pgxpool.Pool
}

// NewAssetRepository construye el adaptador de persistencia para activos.
func NewAssetRepository(pool *pgxpool.Pool) *AssetRepo {
	return &AssetRepo{pool: pool}
}

const assetColumns = `id, company_id, sector_id, name, brand, model, serial_number, purchase_date, status, created_at, updated_at`

// Create persiste un nuevo activo.
func (r *AssetRepo) Create(asset *entity.Asset) error {
	query := `
		INSERT INTO assets (` + assetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(context.Background(), query,
		asset.ID, asset.CompanyID, asset.SectorID, asset.Name, asset.Brand,
		asset.Model, asset.SerialNumber, asset.PurchaseDate, asset.Status,
		asset.CreatedAt, asset.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert asset: %w", err)
	}
	return nil
}

// GetByID obtiene un activo por ID.
func (r *AssetRepo) GetByID(id string) (*entity.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE id = $1`
	var a entity.Asset
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.CompanyID, &a.SectorID, &a.Name, &a.Brand, &a.Model,
		&a.SerialNumber, &a.PurchaseDate, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asset: %w", err)
	}
	return &a, nil
}

// ListByCompany lista los activos de una empresa, opcionalmente por sector.
func (r *AssetRepo) ListByCompany(companyID string, sectorID *string) ([]*entity.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE company_id = $1`
	args := []any{companyID}
	if sectorID != nil {
		query += ` AND sector_id = $2`
		args = append(args, *sectorID)
	}
	query += ` ORDER BY name`

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()
	var list []*entity.Asset
	for rows.Next() {
		var a entity.Asset
		if err := rows.Scan(
			&a.ID, &a.CompanyID, &a.SectorID, &a.Name, &a.Brand, &a.Model,
			&a.SerialNumber, &a.PurchaseDate, &a.Status, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update actualiza un activo existente.
func (r *AssetRepo) Update(asset *entity.Asset) error {
	query := `
		UPDATE assets
		SET sector_id = $2, name = $3, brand = $4, model = $5,
		    serial_number = $6, purchase_date = $7, status = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		asset.ID, asset.SectorID, asset.Name, asset.Brand, asset.Model,
		asset.SerialNumber, asset.PurchaseDate, asset.Status, asset.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update asset: %w", err)
	}
	return nil
}

// Delete elimina un activo por ID.
func (r *AssetRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}
	return nil
}

// CountBySector cuenta los activos de un sector (bloqueo de borrado de sector).
func (r *AssetRepo) CountBySector(sectorID string) (int, error) {
	var n int
	err := r.pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM assets WHERE sector_id = $1`, sectorID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count assets by sector: %w", err)
	}
	return n, nil
}
