package procurement

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/gmao-pro/internal/application/dto"
	"github.com/tu-usuario/gmao-pro/internal/domain"
	"github.com/tu-usuario/gmao-pro/internal/domain/entity"
	"github.com/tu-usuario/gmao-pro/internal/domain/repository"
)

// fakePurchaseRepo repo en memoria que reproduce la unicidad (empresa, número)
// del índice de la base.
type fakePurchaseRepo struct {
	orders map[string]*entity.PurchaseOrder
	items  map[string][]*entity.PurchaseOrderItem
}

func newFakePurchaseRepo() *fakePurchaseRepo {
	return &fakePurchaseRepo{
		orders: make(map[string]*entity.PurchaseOrder),
		items:  make(map[string][]*entity.PurchaseOrderItem),
	}
}

func (r *fakePurchaseRepo) Create(order *entity.PurchaseOrder) error {
	for _, o := range r.orders {
		if o.CompanyID == order.CompanyID && o.OrderNumber == order.OrderNumber {
			return domain.ErrDuplicate
		}
	}
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakePurchaseRepo) CreateItem(item *entity.PurchaseOrderItem) error {
	cp := *item
	r.items[item.PurchaseOrderID] = append(r.items[item.PurchaseOrderID], &cp)
	return nil
}

func (r *fakePurchaseRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakePurchaseRepo) ListByCompany(companyID string, filters repository.PurchaseOrderFilters) ([]*entity.PurchaseOrder, error) {
	var out []*entity.PurchaseOrder
	for _, o := range r.orders {
		if o.CompanyID != companyID {
			continue
		}
		if filters.SupplierID != nil && o.SupplierID != *filters.SupplierID {
			continue
		}
		cp := *o
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderNumber < out[j].OrderNumber })
	return out, nil
}

func (r *fakePurchaseRepo) ListItemsByOrder(orderID string) ([]*entity.PurchaseOrderItem, error) {
	return r.items[orderID], nil
}

func (r *fakePurchaseRepo) Update(order *entity.PurchaseOrder) error {
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakePurchaseRepo) DeleteItemsByOrder(orderID string) error {
	delete(r.items, orderID)
	return nil
}

func (r *fakePurchaseRepo) Delete(id string) error {
	delete(r.orders, id)
	delete(r.items, id)
	return nil
}

func (r *fakePurchaseRepo) LockLastOrderNumber(companyID, prefix string) (string, error) {
	last := ""
	for _, o := range r.orders {
		if o.CompanyID == companyID && strings.HasPrefix(o.OrderNumber, prefix) && o.OrderNumber > last {
			last = o.OrderNumber
		}
	}
	return last, nil
}

type fakePurchaseTx struct{ repo *fakePurchaseRepo }

func (t *fakePurchaseTx) RunPurchase(_ context.Context, fn func(repository.PurchaseOrderRepository) error) error {
	return fn(t.repo)
}

type fakeSupplierRepo struct{ suppliers map[string]*entity.Supplier }

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error { r.suppliers[s.ID] = s; return nil }
func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.suppliers[id], nil
}
func (r *fakeSupplierRepo) ListByCompany(string) ([]*entity.Supplier, error) { return nil, nil }
func (r *fakeSupplierRepo) Update(*entity.Supplier) error                    { return nil }
func (r *fakeSupplierRepo) Delete(string) error                              { return nil }

type fakePartRepo struct{ parts map[string]*entity.SparePart }

func (r *fakePartRepo) Create(p *entity.SparePart) error { r.parts[p.ID] = p; return nil }
func (r *fakePartRepo) GetByID(id string) (*entity.SparePart, error) {
	return r.parts[id], nil
}
func (r *fakePartRepo) ListByCompany(string) ([]*entity.SparePart, error) { return nil, nil }
func (r *fakePartRepo) Update(*entity.SparePart) error                    { return nil }
func (r *fakePartRepo) Delete(string) error                               { return nil }
func (r *fakePartRepo) CountByCategory(string) (int, error)               { return 0, nil }

type fakeCompanyRepo struct{ companies map[string]*entity.Company }

func (r *fakeCompanyRepo) Create(c *entity.Company) error { r.companies[c.ID] = c; return nil }
func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return r.companies[id], nil
}
func (r *fakeCompanyRepo) GetByCode(string) (*entity.Company, error) { return nil, nil }
func (r *fakeCompanyRepo) Update(*entity.Company) error              { return nil }

type fakePDF struct{ generated int }

func (g *fakePDF) PurchaseOrderPDF(doc *PurchaseOrderDocument) ([]byte, error) {
	g.generated++
	return []byte("%PDF-fake " + doc.OrderNumber), nil
}

type fixedClock struct{ today time.Time }

func (c fixedClock) Today() time.Time { return c.today }

func newTestUseCase() (*UseCase, *fakePurchaseRepo, *fakePDF) {
	repo := newFakePurchaseRepo()
	pdf := &fakePDF{}
	supplierRepo := &fakeSupplierRepo{suppliers: map[string]*entity.Supplier{
		"prov-1": {ID: "prov-1", CompanyID: "emp-1", Name: "Rodamientos SA", Phone: "123"},
		"prov-2": {ID: "prov-2", CompanyID: "emp-2", Name: "Otra SRL"},
	}}
	partRepo := &fakePartRepo{parts: map[string]*entity.SparePart{
		"rep-1": {ID: "rep-1", CompanyID: "emp-1"},
	}}
	companyRepo := &fakeCompanyRepo{companies: map[string]*entity.Company{
		"emp-1": {ID: "emp-1", Name: "Planta Norte"},
		"emp-2": {ID: "emp-2", Name: "Planta Sur"},
	}}
	clock := fixedClock{today: time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)}
	uc := NewUseCase(&fakePurchaseTx{repo}, repo, supplierRepo, partRepo, companyRepo, pdf, clock)
	return uc, repo, pdf
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func lineaPendiente(qty, price string) dto.PurchaseOrderItemRequest {
	return dto.PurchaseOrderItemRequest{
		Description: "Repuesto genérico",
		Quantity:    dec(qty),
		UnitPrice:   dec(price),
	}
}

func TestCreateAsignaConsecutivoPorEmpresaYAno(t *testing.T) {
	uc, _, _ := newTestUseCase()
	ctx := context.Background()

	first, err := uc.Create(ctx, "emp-1", &dto.CreatePurchaseOrderRequest{
		SupplierID: "prov-1",
		Items:      []dto.PurchaseOrderItemRequest{lineaPendiente("5", "100")},
	})
	require.NoError(t, err)
	assert.Equal(t, "OC-2024-0001", first.OrderNumber)

	// La numeración de otra empresa no interfiere en la secuencia.
	second, err := uc.Create(ctx, "emp-2", &dto.CreatePurchaseOrderRequest{
		SupplierID: "prov-2",
	})
	require.NoError(t, err)
	assert.Equal(t, "OC-2024-0001", second.OrderNumber)

	third, err := uc.Create(ctx, "emp-1", &dto.CreatePurchaseOrderRequest{
		SupplierID: "prov-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "OC-2024-0002", third.OrderNumber)
}

func TestCreateNumeraPorAnoDeCreacionNoPorOrderDate(t *testing.T) {
	// El reloj del use case está fijo en 2024-05-20; una orden retrofechada
	// a 2023 igual toma el consecutivo del año en curso.
	uc, _, _ := newTestUseCase()

	fecha := "2023-12-31"
	resp, err := uc.Create(context.Background(), "emp-1", &dto.CreatePurchaseOrderRequest{
		SupplierID: "prov-1",
		OrderDate:  &fecha,
	})
	require.NoError(t, err)
	assert.Equal(t, "OC-2024-0001", resp.OrderNumber)
	assert.Equal(t, "2023-12-31", resp.OrderDate)
}

func TestCreateConNumeroExplicitoDuplicadoFalla(t *testing.T) {
	uc, _, _ := newTestUseCase()
	ctx := context.Background()

	_, err := uc.Create(ctx, "emp-1", &dto.CreatePurchaseOrderRequest{
		SupplierID:  "prov-1",
		OrderNumber: "OC-2024-0099",
	})
	require.NoError(t, err)

	_, err = uc.Create(ctx, "emp-1", &dto.CreatePurchaseOrderRequest{
		SupplierID:  "prov-1",
		OrderNumber: "OC-2024-0099",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreateDerivaEstadoYTotal(t *testing.T) {
	uc, _, _ := newTestUseCase()
	ctx := context.Background()

	resp, err := uc.Create(ctx, "emp-1", &dto.CreatePurchaseOrderRequest{
		SupplierID: "prov-1",
		Items: []dto.PurchaseOrderItemRequest{
			lineaPendiente("5", "100"),
			lineaPendiente("2", "250.50"),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.PurchaseOrderStatusPendiente, resp.Status)
	assert.True(t, resp.TotalAmount.Equal(dec("1001")), "total %s", resp.TotalAmount)
	require.Len(t, resp.Items, 2)
	assert.True(t, resp.Items[0].TotalPrice.Equal(dec("500")))
	assert.True(t, resp.Items[1].TotalPrice.Equal(dec("501")))
}

func TestCreateConservaCantidadesFraccionarias(t *testing.T) {
	uc, repo, _ := newTestUseCase()

	resp, err := uc.Create(context.Background(), "emp-1", &dto.CreatePurchaseOrderRequest{
		SupplierID: "prov-1",
		Items: []dto.PurchaseOrderItemRequest{
			lineaPendiente("2.5", "100.50"), // 2,5 kg a $100,50
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.True(t, resp.Items[0].Quantity.Equal(dec("2.5")), "cantidad %s", resp.Items[0].Quantity)
	assert.True(t, resp.Items[0].TotalPrice.Equal(dec("251.25")))
	assert.True(t, resp.TotalAmount.Equal(dec("251.25")))

	// La línea persistida mantiene total_price = quantity * unit_price.
	stored, err := repo.ListItemsByOrder(resp.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.True(t, stored[0].TotalPrice.Equal(stored[0].Quantity.Mul(stored[0].UnitPrice)))
}

func TestUpdateReconciliaEstadoSegunRecibido(t *testing.T) {
	uc, _, _ := newTestUseCase()
	ctx := context.Background()

	created, err := uc.Create(ctx, "emp-1", &dto.CreatePurchaseOrderRequest{
		SupplierID: "prov-1",
		Items: []dto.PurchaseOrderItemRequest{
			lineaPendiente("5", "100"),
			lineaPendiente("3", "50"),
		},
	})
	require.NoError(t, err)

	// Recepción parcial: una línea completa, la otra sin recibir.
	fecha := "2024-05-21"
	resp, err := uc.Update(ctx, "emp-1", created.ID, &dto.UpdatePurchaseOrderRequest{
		SupplierID: "prov-1",
		Items: []dto.PurchaseOrderItemRequest{
			{Description: "A", Quantity: dec("5"), UnitPrice: dec("100")},
			{Description: "B", Quantity: dec("3"), UnitPrice: dec("50"), ReceivedQuantity: dec("3"), ReceivedDate: &fecha},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseOrderStatusParcial, resp.Status)

	// Recepción total (con sobre-entrega en una línea).
	resp, err = uc.Update(ctx, "emp-1", created.ID, &dto.UpdatePurchaseOrderRequest{
		SupplierID: "prov-1",
		Items: []dto.PurchaseOrderItemRequest{
			{Description: "A", Quantity: dec("5"), UnitPrice: dec("100"), ReceivedQuantity: dec("6")},
			{Description: "B", Quantity: dec("3"), UnitPrice: dec("50"), ReceivedQuantity: dec("3")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseOrderStatusCompletada, resp.Status)
}

func TestUpdateCancelacionEsPegajosa(t *testing.T) {
	uc, _, _ := newTestUseCase()
	ctx := context.Background()

	created, err := uc.Create(ctx, "emp-1", &dto.CreatePurchaseOrderRequest{
		SupplierID: "prov-1",
		Items:      []dto.PurchaseOrderItemRequest{lineaPendiente("5", "100")},
	})
	require.NoError(t, err)

	cancelada := entity.PurchaseOrderStatusCancelada
	resp, err := uc.Update(ctx, "emp-1", created.ID, &dto.UpdatePurchaseOrderRequest{
		SupplierID: "prov-1",
		Status:     &cancelada,
		Items:      []dto.PurchaseOrderItemRequest{lineaPendiente("5", "100")},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseOrderStatusCancelada, resp.Status)

	// Recibir mercadería sobre una orden cancelada no la revive.
	resp, err = uc.Update(ctx, "emp-1", created.ID, &dto.UpdatePurchaseOrderRequest{
		SupplierID: "prov-1",
		Items: []dto.PurchaseOrderItemRequest{
			{Description: "A", Quantity: dec("5"), UnitPrice: dec("100"), ReceivedQuantity: dec("5")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseOrderStatusCancelada, resp.Status)
}

func TestUpdateReemplazaLasLineasYRecalculaTotal(t *testing.T) {
	uc, repo, _ := newTestUseCase()
	ctx := context.Background()

	created, err := uc.Create(ctx, "emp-1", &dto.CreatePurchaseOrderRequest{
		SupplierID: "prov-1",
		Items: []dto.PurchaseOrderItemRequest{
			lineaPendiente("5", "100"),
			lineaPendiente("1", "10"),
		},
	})
	require.NoError(t, err)

	resp, err := uc.Update(ctx, "emp-1", created.ID, &dto.UpdatePurchaseOrderRequest{
		SupplierID: "prov-1",
		Items:      []dto.PurchaseOrderItemRequest{lineaPendiente("2", "30")},
	})
	require.NoError(t, err)

	assert.True(t, resp.TotalAmount.Equal(dec("60")))
	require.Len(t, resp.Items, 1)
	items, _ := repo.ListItemsByOrder(created.ID)
	assert.Len(t, items, 1)
	// El número de orden no cambia con la edición.
	assert.Equal(t, created.OrderNumber, resp.OrderNumber)
}

func TestOperacionesDeOtraEmpresaDevuelvenNotFound(t *testing.T) {
	uc, _, _ := newTestUseCase()
	ctx := context.Background()

	created, err := uc.Create(ctx, "emp-1", &dto.CreatePurchaseOrderRequest{
		SupplierID: "prov-1",
	})
	require.NoError(t, err)

	_, err = uc.Get("emp-2", created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Delete("emp-2", created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Update(ctx, "emp-2", created.ID, &dto.UpdatePurchaseOrderRequest{SupplierID: "prov-2"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateRechazaProveedorAjenoYRepuestoAjeno(t *testing.T) {
	uc, _, _ := newTestUseCase()
	ctx := context.Background()

	_, err := uc.Create(ctx, "emp-1", &dto.CreatePurchaseOrderRequest{SupplierID: "prov-2"})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)

	rep := "rep-1"
	_, err = uc.Create(ctx, "emp-2", &dto.CreatePurchaseOrderRequest{
		SupplierID: "prov-2",
		Items: []dto.PurchaseOrderItemRequest{
			{SparePartID: &rep, Description: "ajeno", Quantity: dec("1"), UnitPrice: dec("1")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
}

func TestGeneratePDFArmaElDocumento(t *testing.T) {
	uc, _, pdf := newTestUseCase()
	ctx := context.Background()

	created, err := uc.Create(ctx, "emp-1", &dto.CreatePurchaseOrderRequest{
		SupplierID: "prov-1",
		Items:      []dto.PurchaseOrderItemRequest{lineaPendiente("5", "100")},
	})
	require.NoError(t, err)

	out, err := uc.GeneratePDF("emp-1", created.ID)
	require.NoError(t, err)
	assert.Contains(t, string(out), created.OrderNumber)
	assert.Equal(t, 1, pdf.generated)
}
