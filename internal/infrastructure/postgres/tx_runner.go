package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/gmao-pro/internal/application/preventive"
	"github.com/tu-usuario/gmao-pro/internal/application/procurement"
	"github.com/tu-usuario/gmao-pro/internal/domain/repository"
)

// Ensure TxRunner implements preventive.SweepTxRunner and procurement.TxRunner.
var _ preventive.SweepTxRunner = (*TxRunner)(nil)
var _ procurement.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunSweep inicia una transacción con repos de planes y órdenes de trabajo
// atados a la tx (reclamo del plan + orden generada, atómicos).
func (r *TxRunner) RunSweep(ctx context.Context, fn func(
	planRepo repository.PreventivePlanRepository,
	orderRepo repository.WorkOrderRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	planRepo := NewPreventivePlanRepository(tx)
	orderRepo := NewWorkOrderRepository(tx)

	if err := fn(planRepo, orderRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunPurchase inicia una transacción con el repo de órdenes de compra
// (numeración consecutiva + cabecera + líneas, atómicos).
func (r *TxRunner) RunPurchase(ctx context.Context, fn func(
	orderRepo repository.PurchaseOrderRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewPurchaseOrderRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
