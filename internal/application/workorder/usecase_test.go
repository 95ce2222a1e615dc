package workorder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/gmao-pro/internal/application/dto"
	"github.com/tu-usuario/gmao-pro/internal/domain"
	"github.com/tu-usuario/gmao-pro/internal/domain/entity"
	"github.com/tu-usuario/gmao-pro/internal/domain/repository"
)

type fakeOrderRepo struct {
	orders map[string]*entity.WorkOrder
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.WorkOrder)}
}

func (r *fakeOrderRepo) Create(order *entity.WorkOrder) error {
	for _, o := range r.orders {
		if o.TicketNumber == order.TicketNumber {
			return domain.ErrDuplicate
		}
	}
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.WorkOrder, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) ListByCompany(companyID string, filters repository.WorkOrderFilters) ([]*entity.WorkOrder, error) {
	var out []*entity.WorkOrder
	for _, o := range r.orders {
		if o.CompanyID != companyID {
			continue
		}
		if filters.Status != nil && o.Status != *filters.Status {
			continue
		}
		if filters.AssetID != nil && (o.AssetID == nil || *o.AssetID != *filters.AssetID) {
			continue
		}
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeOrderRepo) Update(order *entity.WorkOrder) error {
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

type fakeAssetRepo struct{ assets map[string]*entity.Asset }

func (r *fakeAssetRepo) Create(a *entity.Asset) error { r.assets[a.ID] = a; return nil }
func (r *fakeAssetRepo) GetByID(id string) (*entity.Asset, error) {
	return r.assets[id], nil
}
func (r *fakeAssetRepo) ListByCompany(string, *string) ([]*entity.Asset, error) { return nil, nil }
func (r *fakeAssetRepo) Update(*entity.Asset) error                             { return nil }
func (r *fakeAssetRepo) Delete(string) error                                    { return nil }
func (r *fakeAssetRepo) CountBySector(string) (int, error)                      { return 0, nil }

type fakeSectorRepo struct{ sectors map[string]*entity.Sector }

func (r *fakeSectorRepo) Create(s *entity.Sector) error { r.sectors[s.ID] = s; return nil }
func (r *fakeSectorRepo) GetByID(id string) (*entity.Sector, error) {
	return r.sectors[id], nil
}
func (r *fakeSectorRepo) ListByCompany(string) ([]*entity.Sector, error) { return nil, nil }
func (r *fakeSectorRepo) Update(*entity.Sector) error                    { return nil }
func (r *fakeSectorRepo) Delete(string) error                            { return nil }

type fakeWorkerRepo struct{ workers map[string]*entity.Worker }

func (r *fakeWorkerRepo) Create(w *entity.Worker) error { r.workers[w.ID] = w; return nil }
func (r *fakeWorkerRepo) GetByID(id string) (*entity.Worker, error) {
	return r.workers[id], nil
}
func (r *fakeWorkerRepo) ListByCompany(string) ([]*entity.Worker, error) { return nil, nil }
func (r *fakeWorkerRepo) Update(*entity.Worker) error                    { return nil }
func (r *fakeWorkerRepo) Delete(string) error                            { return nil }

func newTestUseCase() (*UseCase, *fakeOrderRepo) {
	orderRepo := newFakeOrderRepo()
	assetRepo := &fakeAssetRepo{assets: map[string]*entity.Asset{
		"a1": {ID: "a1", CompanyID: "emp-1"},
	}}
	sectorRepo := &fakeSectorRepo{sectors: map[string]*entity.Sector{
		"s1": {ID: "s1", CompanyID: "emp-1"},
	}}
	workerRepo := &fakeWorkerRepo{workers: map[string]*entity.Worker{
		"w1": {ID: "w1", CompanyID: "emp-1"},
		"w2": {ID: "w2", CompanyID: "emp-2"},
	}}
	return NewUseCase(orderRepo, assetRepo, sectorRepo, workerRepo), orderRepo
}

func strPtr(s string) *string { return &s }

func TestCreateAsignaTicketYEstadoInicial(t *testing.T) {
	uc, _ := newTestUseCase()

	resp, err := uc.Create("emp-1", "user-1", &dto.CreateWorkOrderRequest{
		AssetID:     strPtr("a1"),
		Description: "Cambio de filtro",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.WorkOrderStatusPendiente, resp.Status)
	assert.Equal(t, entity.WorkOrderTypeCorrectivo, resp.Type)
	assert.Equal(t, entity.PriorityMedia, resp.Priority)
	assert.Regexp(t, `^WO-\d{14}$`, resp.TicketNumber)
	require.NotNil(t, resp.RequestedByID)
	assert.Equal(t, "user-1", *resp.RequestedByID)
	assert.Nil(t, resp.AssignedAt)
	assert.Nil(t, resp.StartDate)
	assert.Nil(t, resp.EndDate)
}

func TestCreateReintentaAnteColisionDeTicket(t *testing.T) {
	uc, repo := newTestUseCase()
	fixed := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return fixed }

	first, err := uc.Create("emp-1", "user-1", &dto.CreateWorkOrderRequest{Description: "OT 1"})
	require.NoError(t, err)
	second, err := uc.Create("emp-1", "user-1", &dto.CreateWorkOrderRequest{Description: "OT 2"})
	require.NoError(t, err)

	assert.NotEqual(t, first.TicketNumber, second.TicketNumber)
	assert.Len(t, repo.orders, 2)
}

func TestCreateRechazaReferenciasDeOtraEmpresa(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.Create("emp-1", "user-1", &dto.CreateWorkOrderRequest{
		Description:  "Con trabajador ajeno",
		AssignedToID: strPtr("w2"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
}

func TestUpdateSeteaTimestampsUnaSolaVez(t *testing.T) {
	uc, _ := newTestUseCase()
	created, err := uc.Create("emp-1", "user-1", &dto.CreateWorkOrderRequest{Description: "Ciclo completo"})
	require.NoError(t, err)

	// PENDIENTE → ASIGNADA
	resp, err := uc.Update("emp-1", created.ID, &dto.UpdateWorkOrderRequest{
		Status:       strPtr(entity.WorkOrderStatusAsignada),
		AssignedToID: strPtr("w1"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.AssignedAt)
	assignedAt := *resp.AssignedAt

	// ASIGNADA → EN_PROGRESO
	resp, err = uc.Update("emp-1", created.ID, &dto.UpdateWorkOrderRequest{
		Status: strPtr(entity.WorkOrderStatusEnProgreso),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.StartDate)
	startDate := *resp.StartDate

	// EN_PROGRESO → PAUSADA → EN_PROGRESO: el reingreso no pisa StartDate.
	_, err = uc.Update("emp-1", created.ID, &dto.UpdateWorkOrderRequest{
		Status: strPtr(entity.WorkOrderStatusPausada),
	})
	require.NoError(t, err)
	resp, err = uc.Update("emp-1", created.ID, &dto.UpdateWorkOrderRequest{
		Status: strPtr(entity.WorkOrderStatusEnProgreso),
	})
	require.NoError(t, err)
	assert.True(t, resp.StartDate.Equal(startDate))
	assert.True(t, resp.AssignedAt.Equal(assignedAt))

	// EN_PROGRESO → COMPLETADA
	resp, err = uc.Update("emp-1", created.ID, &dto.UpdateWorkOrderRequest{
		Status: strPtr(entity.WorkOrderStatusCompletada),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.EndDate)
	assert.True(t, resp.StartDate.Equal(startDate))
}

func TestUpdateRechazaTransicionDesdeEstadoTerminal(t *testing.T) {
	uc, _ := newTestUseCase()
	created, err := uc.Create("emp-1", "user-1", &dto.CreateWorkOrderRequest{Description: "A cancelar"})
	require.NoError(t, err)

	_, err = uc.Update("emp-1", created.ID, &dto.UpdateWorkOrderRequest{
		Status: strPtr(entity.WorkOrderStatusCancelada),
	})
	require.NoError(t, err)

	_, err = uc.Update("emp-1", created.ID, &dto.UpdateWorkOrderRequest{
		Status: strPtr(entity.WorkOrderStatusEnProgreso),
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestGetDeOtraEmpresaDevuelveNotFound(t *testing.T) {
	uc, _ := newTestUseCase()
	created, err := uc.Create("emp-1", "user-1", &dto.CreateWorkOrderRequest{Description: "Privada"})
	require.NoError(t, err)

	_, err = uc.Get("emp-2", created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Update("emp-2", created.ID, &dto.UpdateWorkOrderRequest{Observations: strPtr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListFiltraPorEstadoYActivo(t *testing.T) {
	uc, _ := newTestUseCase()
	_, err := uc.Create("emp-1", "user-1", &dto.CreateWorkOrderRequest{Description: "OT 1", AssetID: strPtr("a1")})
	require.NoError(t, err)
	created2, err := uc.Create("emp-1", "user-1", &dto.CreateWorkOrderRequest{Description: "OT 2"})
	require.NoError(t, err)
	_, err = uc.Update("emp-1", created2.ID, &dto.UpdateWorkOrderRequest{
		Status: strPtr(entity.WorkOrderStatusCancelada),
	})
	require.NoError(t, err)

	pendientes, err := uc.List("emp-1", repository.WorkOrderFilters{
		Status: strPtr(entity.WorkOrderStatusPendiente),
	})
	require.NoError(t, err)
	assert.Len(t, pendientes, 1)

	porActivo, err := uc.List("emp-1", repository.WorkOrderFilters{AssetID: strPtr("a1")})
	require.NoError(t, err)
	assert.Len(t, porActivo, 1)

	_, err = uc.List("emp-1", repository.WorkOrderFilters{Status: strPtr("INVENTADO")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
