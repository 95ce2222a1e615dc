package preventive

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/gmao-pro/internal/domain/entity"
	"github.com/tu-usuario/gmao-pro/internal/domain/repository"
	"github.com/tu-usuario/gmao-pro/pkg/logger"
)

// fakePlanRepo repo en memoria para las pruebas del barrido.
type fakePlanRepo struct {
	plans map[string]*entity.PreventivePlan
	tasks map[string][]*entity.PreventiveTask
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{
		plans: make(map[string]*entity.PreventivePlan),
		tasks: make(map[string][]*entity.PreventiveTask),
	}
}

func (r *fakePlanRepo) Create(plan *entity.PreventivePlan) error {
	cp := *plan
	r.plans[plan.ID] = &cp
	return nil
}

func (r *fakePlanRepo) CreateTask(task *entity.PreventiveTask) error {
	r.tasks[task.PlanID] = append(r.tasks[task.PlanID], task)
	return nil
}

func (r *fakePlanRepo) GetByID(id string) (*entity.PreventivePlan, error) {
	p, ok := r.plans[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePlanRepo) ListByCompany(companyID string) ([]*entity.PreventivePlan, error) {
	var out []*entity.PreventivePlan
	for _, p := range r.plans {
		if p.CompanyID == companyID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakePlanRepo) ListTasksByPlan(planID string) ([]*entity.PreventiveTask, error) {
	return r.tasks[planID], nil
}

func (r *fakePlanRepo) ListDue(companyID string, today time.Time) ([]*entity.PreventivePlan, error) {
	var out []*entity.PreventivePlan
	for _, p := range r.plans {
		if p.CompanyID == companyID && p.IsActive && p.NextRun != nil && !p.NextRun.After(today) {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakePlanRepo) Update(plan *entity.PreventivePlan) error {
	cp := *plan
	r.plans[plan.ID] = &cp
	return nil
}

func (r *fakePlanRepo) AdvanceSchedule(planID string, lastRun, nextRun, expectedNextRun time.Time) (bool, error) {
	p, ok := r.plans[planID]
	if !ok || p.NextRun == nil || !p.NextRun.Equal(expectedNextRun) {
		return false, nil
	}
	lr, nr := lastRun, nextRun
	p.LastRun = &lr
	p.NextRun = &nr
	return true, nil
}

func (r *fakePlanRepo) Delete(id string) error {
	delete(r.plans, id)
	delete(r.tasks, id)
	return nil
}

func (r *fakePlanRepo) CountByAsset(assetID string) (int, error) {
	n := 0
	for _, p := range r.plans {
		if p.AssetID == assetID {
			n++
		}
	}
	return n, nil
}

// fakeOrderRepo repo en memoria de órdenes de trabajo.
type fakeOrderRepo struct {
	orders []*entity.WorkOrder
}

func (r *fakeOrderRepo) Create(order *entity.WorkOrder) error {
	cp := *order
	r.orders = append(r.orders, &cp)
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.WorkOrder, error) {
	for _, o := range r.orders {
		if o.ID == id {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) ListByCompany(companyID string, _ repository.WorkOrderFilters) ([]*entity.WorkOrder, error) {
	var out []*entity.WorkOrder
	for _, o := range r.orders {
		if o.CompanyID == companyID {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) Update(order *entity.WorkOrder) error {
	for i, o := range r.orders {
		if o.ID == order.ID {
			cp := *order
			r.orders[i] = &cp
		}
	}
	return nil
}

// fakeSweepTx ejecuta la función directamente sobre los fakes, sin transacción
// real.
type fakeSweepTx struct {
	planRepo  *fakePlanRepo
	orderRepo *fakeOrderRepo
}

func (t *fakeSweepTx) RunSweep(_ context.Context, fn func(
	planRepo repository.PreventivePlanRepository,
	orderRepo repository.WorkOrderRepository,
) error) error {
	return fn(t.planRepo, t.orderRepo)
}

// fixedClock devuelve siempre la misma fecha.
type fixedClock struct{ today time.Time }

func (c fixedClock) Today() time.Time { return c.today }

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func seedPlan(repo *fakePlanRepo, id, companyID string, freqType string, freqValue int, nextRun time.Time) *entity.PreventivePlan {
	plan := &entity.PreventivePlan{
		ID:             id,
		CompanyID:      companyID,
		AssetID:        "asset-" + id,
		Name:           "Plan " + id,
		FrequencyType:  freqType,
		FrequencyValue: freqValue,
		NextRun:        &nextRun,
		IsActive:       true,
	}
	_ = repo.Create(plan)
	return plan
}

func TestSweepGeneraOrdenPorPlanVencido(t *testing.T) {
	today := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	planRepo := newFakePlanRepo()
	orderRepo := &fakeOrderRepo{}
	seedPlan(planRepo, "p1", "emp-1", entity.FrequencySemanal, 1, today)
	_ = planRepo.CreateTask(&entity.PreventiveTask{ID: "t1", PlanID: "p1", Description: "Revisar correas", Position: 0})
	_ = planRepo.CreateTask(&entity.PreventiveTask{ID: "t2", PlanID: "p1", Description: "Lubricar rodamientos", Position: 1})

	uc := NewSweepUseCase(&fakeSweepTx{planRepo, orderRepo}, planRepo, fixedClock{today}, testLogger())

	resp, err := uc.Run(context.Background(), "emp-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.GeneratedCount)
	require.Len(t, orderRepo.orders, 1)

	order := orderRepo.orders[0]
	assert.Equal(t, entity.WorkOrderTypePreventivo, order.Type)
	assert.Equal(t, entity.WorkOrderStatusPendiente, order.Status)
	assert.Equal(t, entity.PriorityMedia, order.Priority)
	assert.True(t, strings.HasPrefix(order.TicketNumber, "PM-p1-"))
	assert.Contains(t, order.Description, "Plan p1")
	assert.Contains(t, order.Description, "- [ ] Revisar correas")
	assert.Contains(t, order.Description, "- [ ] Lubricar rodamientos")
	require.NotNil(t, order.PlanID)
	assert.Equal(t, "p1", *order.PlanID)

	// La agenda avanzó: last_run = hoy, next_run = hoy + 7 días.
	plan, _ := planRepo.GetByID("p1")
	require.NotNil(t, plan.LastRun)
	assert.True(t, plan.LastRun.Equal(today))
	require.NotNil(t, plan.NextRun)
	assert.True(t, plan.NextRun.Equal(today.AddDate(0, 0, 7)))
}

func TestSweepEsIdempotenteEnElMismoDia(t *testing.T) {
	today := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	planRepo := newFakePlanRepo()
	orderRepo := &fakeOrderRepo{}
	seedPlan(planRepo, "p1", "emp-1", entity.FrequencyDiaria, 1, today)

	uc := NewSweepUseCase(&fakeSweepTx{planRepo, orderRepo}, planRepo, fixedClock{today}, testLogger())

	first, err := uc.Run(context.Background(), "emp-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, first.GeneratedCount)

	// Segunda pasada el mismo día: next_run ya quedó en mañana, no hay vencidos.
	second, err := uc.Run(context.Background(), "emp-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, second.GeneratedCount)
	assert.Len(t, orderRepo.orders, 1)
}

func TestSweepNoGeneraSiOtroBarridoReclamoElPlan(t *testing.T) {
	today := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	planRepo := newFakePlanRepo()
	orderRepo := &fakeOrderRepo{}
	seedPlan(planRepo, "p1", "emp-1", entity.FrequencyDiaria, 1, today)

	// Otro barrido avanza la agenda entre el listado y el reclamo.
	tx := &fakeSweepTx{planRepo, orderRepo}
	uc := NewSweepUseCase(&claimStealingTx{tx, planRepo, today}, planRepo, fixedClock{today}, testLogger())

	resp, err := uc.Run(context.Background(), "emp-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, resp.GeneratedCount)
	assert.Empty(t, orderRepo.orders)
}

// claimStealingTx simula un barrido concurrente que reclama el plan justo
// antes de que la transacción bajo prueba intente hacerlo.
type claimStealingTx struct {
	inner    *fakeSweepTx
	planRepo *fakePlanRepo
	today    time.Time
}

func (t *claimStealingTx) RunSweep(ctx context.Context, fn func(
	planRepo repository.PreventivePlanRepository,
	orderRepo repository.WorkOrderRepository,
) error) error {
	for _, p := range t.planRepo.plans {
		if p.NextRun != nil && !p.NextRun.After(t.today) {
			_, _ = t.planRepo.AdvanceSchedule(p.ID, t.today, t.today.AddDate(0, 0, 1), *p.NextRun)
		}
	}
	return t.inner.RunSweep(ctx, fn)
}

func TestSweepProcesaVariosPlanesYRespetaVencimientos(t *testing.T) {
	today := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	planRepo := newFakePlanRepo()
	orderRepo := &fakeOrderRepo{}
	seedPlan(planRepo, "p1", "emp-1", entity.FrequencyDiaria, 1, today)
	seedPlan(planRepo, "p2", "emp-1", entity.FrequencyMensual, 2, today.AddDate(0, 0, -3)) // vencido hace días
	seedPlan(planRepo, "p3", "emp-1", entity.FrequencyDiaria, 1, today.AddDate(0, 0, 1))  // aún no vence
	seedPlan(planRepo, "p4", "emp-2", entity.FrequencyDiaria, 1, today)                   // otra empresa

	uc := NewSweepUseCase(&fakeSweepTx{planRepo, orderRepo}, planRepo, fixedClock{today}, testLogger())

	resp, err := uc.Run(context.Background(), "emp-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, 2, resp.GeneratedCount)
	require.Len(t, orderRepo.orders, 2)
	for _, o := range orderRepo.orders {
		assert.Equal(t, "emp-1", o.CompanyID)
	}

	// El plan vencido hace días avanza desde hoy, no desde la fecha vencida.
	p2, _ := planRepo.GetByID("p2")
	require.NotNil(t, p2.NextRun)
	assert.True(t, p2.NextRun.Equal(today.AddDate(0, 0, 60)))

	// El plan de otra empresa quedó intacto.
	p4, _ := planRepo.GetByID("p4")
	assert.Nil(t, p4.LastRun)
}

func TestSweepIgnoraPlanesInactivos(t *testing.T) {
	today := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	planRepo := newFakePlanRepo()
	orderRepo := &fakeOrderRepo{}
	plan := seedPlan(planRepo, "p1", "emp-1", entity.FrequencyDiaria, 1, today)
	plan.IsActive = false
	_ = planRepo.Update(plan)

	uc := NewSweepUseCase(&fakeSweepTx{planRepo, orderRepo}, planRepo, fixedClock{today}, testLogger())

	resp, err := uc.Run(context.Background(), "emp-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, resp.GeneratedCount)
	assert.Empty(t, orderRepo.orders)
}
