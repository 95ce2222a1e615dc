package workorder

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/gmao-pro/internal/application/dto"
	"github.com/tu-usuario/gmao-pro/internal/domain"
	"github.com/tu-usuario/gmao-pro/internal/domain/entity"
	"github.com/tu-usuario/gmao-pro/internal/domain/repository"
)

// UseCase gestiona el ciclo de vida de las órdenes de trabajo: alta manual,
// listado con filtros y transición de estados con sus timestamps.
type UseCase struct {
	orderRepo  repository.WorkOrderRepository
	assetRepo  repository.AssetRepository
	sectorRepo repository.SectorRepository
	workerRepo repository.WorkerRepository
	now        func() time.Time
}

func NewUseCase(
	orderRepo repository.WorkOrderRepository,
	assetRepo repository.AssetRepository,
	sectorRepo repository.SectorRepository,
	workerRepo repository.WorkerRepository,
) *UseCase {
	return &UseCase{
		orderRepo:  orderRepo,
		assetRepo:  assetRepo,
		sectorRepo: sectorRepo,
		workerRepo: workerRepo,
		now:        time.Now,
	}
}

// Create da de alta una orden manual. El ticket WO-<timestamp> lo asigna el
// sistema; ante colisión se reintenta con sufijo aleatorio.
func (uc *UseCase) Create(companyID, requestedByID string, req *dto.CreateWorkOrderRequest) (*dto.WorkOrderResponse, error) {
	if req.Description == "" {
		return nil, fmt.Errorf("%w: la descripción es obligatoria", domain.ErrInvalidInput)
	}

	orderType := req.Type
	if orderType == "" {
		orderType = entity.WorkOrderTypeCorrectivo
	}
	if orderType != entity.WorkOrderTypePreventivo && orderType != entity.WorkOrderTypeCorrectivo {
		return nil, fmt.Errorf("%w: tipo de orden %q no reconocido", domain.ErrInvalidInput, req.Type)
	}

	priority := req.Priority
	if priority == "" {
		priority = entity.PriorityMedia
	}
	if !entity.ValidPriority(priority) {
		return nil, fmt.Errorf("%w: prioridad %q no reconocida", domain.ErrInvalidInput, req.Priority)
	}

	if err := uc.validateRefs(companyID, req.AssetID, req.SectorID, req.AssignedToID); err != nil {
		return nil, err
	}

	now := uc.now()
	order := &entity.WorkOrder{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		AssetID:       req.AssetID,
		SectorID:      req.SectorID,
		TicketNumber:  fmt.Sprintf("WO-%s", now.Format("20060102150405")),
		Type:          orderType,
		Status:        entity.WorkOrderStatusPendiente,
		Priority:      priority,
		Description:   req.Description,
		Observations:  req.Observations,
		RequestedByID: &requestedByID,
		AssignedToID:  req.AssignedToID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.orderRepo.Create(order); err != nil {
		if !errors.Is(err, domain.ErrDuplicate) {
			return nil, fmt.Errorf("error al crear orden de trabajo: %w", err)
		}
		// Dos altas en el mismo segundo: sufijo aleatorio, nunca se reusa.
		order.TicketNumber = fmt.Sprintf("%s-%s", order.TicketNumber, uuid.New().String()[:8])
		if err := uc.orderRepo.Create(order); err != nil {
			return nil, fmt.Errorf("error al crear orden de trabajo: %w", err)
		}
	}

	return toWorkOrderResponse(order), nil
}

// List devuelve las órdenes de la empresa, opcionalmente filtradas por estado
// y activo.
func (uc *UseCase) List(companyID string, filters repository.WorkOrderFilters) ([]*dto.WorkOrderResponse, error) {
	if filters.Status != nil && !entity.ValidWorkOrderStatus(*filters.Status) {
		return nil, fmt.Errorf("%w: estado %q no reconocido", domain.ErrInvalidInput, *filters.Status)
	}
	orders, err := uc.orderRepo.ListByCompany(companyID, filters)
	if err != nil {
		return nil, fmt.Errorf("error al listar órdenes de trabajo: %w", err)
	}
	out := make([]*dto.WorkOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toWorkOrderResponse(o))
	}
	return out, nil
}

func (uc *UseCase) Get(companyID, orderID string) (*dto.WorkOrderResponse, error) {
	order, err := uc.findOwned(companyID, orderID)
	if err != nil {
		return nil, err
	}
	return toWorkOrderResponse(order), nil
}

// Update edita la orden. Un cambio de estado setea el timestamp de la primera
// entrada a ASIGNADA / EN_PROGRESO / COMPLETADA; reingresar a un estado ya
// visitado no lo sobreescribe. Ticket y fecha de creación son inmutables.
func (uc *UseCase) Update(companyID, orderID string, req *dto.UpdateWorkOrderRequest) (*dto.WorkOrderResponse, error) {
	order, err := uc.findOwned(companyID, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status == entity.WorkOrderStatusCancelada || order.Status == entity.WorkOrderStatusCompletada {
		if req.Status != nil && *req.Status != order.Status {
			return nil, fmt.Errorf("%w: la orden está en estado terminal %s", domain.ErrConflict, order.Status)
		}
	}

	if req.Description != nil {
		order.Description = *req.Description
	}
	if req.Observations != nil {
		order.Observations = *req.Observations
	}
	if req.Priority != nil {
		if !entity.ValidPriority(*req.Priority) {
			return nil, fmt.Errorf("%w: prioridad %q no reconocida", domain.ErrInvalidInput, *req.Priority)
		}
		order.Priority = *req.Priority
	}
	if req.AssignedToID != nil {
		if err := uc.validateRefs(companyID, nil, nil, req.AssignedToID); err != nil {
			return nil, err
		}
		order.AssignedToID = req.AssignedToID
	}
	if req.Status != nil {
		if !entity.ValidWorkOrderStatus(*req.Status) {
			return nil, fmt.Errorf("%w: estado %q no reconocido", domain.ErrInvalidInput, *req.Status)
		}
		uc.applyStatus(order, *req.Status)
	}
	order.UpdatedAt = uc.now()

	if err := uc.orderRepo.Update(order); err != nil {
		return nil, fmt.Errorf("error al actualizar orden de trabajo: %w", err)
	}
	return toWorkOrderResponse(order), nil
}

// applyStatus cambia el estado y registra el timestamp si es la primera
// entrada a ese estado.
func (uc *UseCase) applyStatus(order *entity.WorkOrder, status string) {
	now := uc.now()
	switch status {
	case entity.WorkOrderStatusAsignada:
		if order.AssignedAt == nil {
			order.AssignedAt = &now
		}
	case entity.WorkOrderStatusEnProgreso:
		if order.StartDate == nil {
			order.StartDate = &now
		}
	case entity.WorkOrderStatusCompletada:
		if order.EndDate == nil {
			order.EndDate = &now
		}
	}
	order.Status = status
}

func (uc *UseCase) findOwned(companyID, orderID string) (*entity.WorkOrder, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, fmt.Errorf("error al buscar orden de trabajo: %w", err)
	}
	if order == nil || order.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

func (uc *UseCase) validateRefs(companyID string, assetID, sectorID, workerID *string) error {
	if assetID != nil {
		asset, err := uc.assetRepo.GetByID(*assetID)
		if err != nil {
			return fmt.Errorf("error al validar activo: %w", err)
		}
		if asset == nil || asset.CompanyID != companyID {
			return fmt.Errorf("%w: el activo no existe", domain.ErrInvalidReference)
		}
	}
	if sectorID != nil {
		sector, err := uc.sectorRepo.GetByID(*sectorID)
		if err != nil {
			return fmt.Errorf("error al validar sector: %w", err)
		}
		if sector == nil || sector.CompanyID != companyID {
			return fmt.Errorf("%w: el sector no existe", domain.ErrInvalidReference)
		}
	}
	if workerID != nil {
		worker, err := uc.workerRepo.GetByID(*workerID)
		if err != nil {
			return fmt.Errorf("error al validar trabajador: %w", err)
		}
		if worker == nil || worker.CompanyID != companyID {
			return fmt.Errorf("%w: el trabajador no existe", domain.ErrInvalidReference)
		}
	}
	return nil
}

func toWorkOrderResponse(order *entity.WorkOrder) *dto.WorkOrderResponse {
	return &dto.WorkOrderResponse{
		ID:            order.ID,
		CompanyID:     order.CompanyID,
		AssetID:       order.AssetID,
		SectorID:      order.SectorID,
		PlanID:        order.PlanID,
		TicketNumber:  order.TicketNumber,
		Type:          order.Type,
		Status:        order.Status,
		Priority:      order.Priority,
		Description:   order.Description,
		Observations:  order.Observations,
		RequestedByID: order.RequestedByID,
		AssignedToID:  order.AssignedToID,
		CreatedAt:     order.CreatedAt,
		AssignedAt:    order.AssignedAt,
		StartDate:     order.StartDate,
		EndDate:       order.EndDate,
	}
}
