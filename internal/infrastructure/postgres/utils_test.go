package postgres

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	uniq := &pgconn.PgError{Code: "23505", ConstraintName: "uq_purchase_orders_company_number"}
	assert.True(t, isUniqueViolation(uniq))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", uniq)))

	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(fmt.Errorf("conexión cerrada")))
}

func TestIsForeignKeyViolation(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "purchase_order_items_spare_part_id_fkey"}
	assert.True(t, isForeignKeyViolation(fk))
	assert.True(t, isForeignKeyViolation(fmt.Errorf("insert: %w", fk)))

	assert.False(t, isForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isForeignKeyViolation(fmt.Errorf("conexión cerrada")))
}
