package procurement

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/gmao-pro/internal/application/dto"
	"github.com/tu-usuario/gmao-pro/internal/domain"
	"github.com/tu-usuario/gmao-pro/internal/domain/entity"
	"github.com/tu-usuario/gmao-pro/internal/domain/maintenance"
	reconcile "github.com/tu-usuario/gmao-pro/internal/domain/procurement"
	"github.com/tu-usuario/gmao-pro/internal/domain/repository"
)

// maxNumberAttempts reintentos de asignación del consecutivo ante carreras que
// el bloqueo de fila no cubre (p.ej. primera orden del año de dos conexiones).
const maxNumberAttempts = 3

// UseCase gestiona las órdenes de compra: numeración consecutiva por
// empresa/año, reemplazo atómico de líneas y derivación de estado y total.
type UseCase struct {
	txRunner     TxRunner
	orderRepo    repository.PurchaseOrderRepository
	supplierRepo repository.SupplierRepository
	partRepo     repository.SparePartRepository
	companyRepo  repository.CompanyRepository
	pdf          PDFGenerator
	clock        maintenance.Clock
}

func NewUseCase(
	txRunner TxRunner,
	orderRepo repository.PurchaseOrderRepository,
	supplierRepo repository.SupplierRepository,
	partRepo repository.SparePartRepository,
	companyRepo repository.CompanyRepository,
	pdf PDFGenerator,
	clock maintenance.Clock,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		orderRepo:    orderRepo,
		supplierRepo: supplierRepo,
		partRepo:     partRepo,
		companyRepo:  companyRepo,
		pdf:          pdf,
		clock:        clock,
	}
}

// Create da de alta una orden de compra. Si el caller no manda número, el
// sistema asigna el consecutivo OC-AAAA-#### por empresa y año dentro de la
// transacción; el estado y el total se derivan de las líneas.
func (uc *UseCase) Create(ctx context.Context, companyID string, req *dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if err := uc.validateSupplier(companyID, req.SupplierID); err != nil {
		return nil, err
	}

	orderDate, err := parseDateOr(req.OrderDate, uc.clock.Today())
	if err != nil {
		return nil, err
	}
	deliveryDate, err := parseDatePtr(req.DeliveryDate)
	if err != nil {
		return nil, err
	}

	items, err := uc.buildItems(companyID, req.Items)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := &entity.PurchaseOrder{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		SupplierID:   req.SupplierID,
		OrderDate:    orderDate,
		DeliveryDate: deliveryDate,
		Observations: req.Observations,
		Status:       reconcile.DeriveStatus(items, entity.PurchaseOrderStatusPendiente),
		TotalAmount:  reconcile.TotalAmount(items),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	autoNumber := req.OrderNumber == ""
	// El consecutivo corre por año de creación; un order_date retroactivo no
	// cambia la orden de bolsa de numeración.
	prefix := fmt.Sprintf("OC-%d-", uc.clock.Today().Year())

	for attempt := 0; ; attempt++ {
		err = uc.txRunner.RunPurchase(ctx, func(orderRepo repository.PurchaseOrderRepository) error {
			if autoNumber {
				number, err := nextOrderNumber(orderRepo, companyID, prefix)
				if err != nil {
					return err
				}
				order.OrderNumber = number
			} else {
				order.OrderNumber = req.OrderNumber
			}
			if err := orderRepo.Create(order); err != nil {
				return err
			}
			for _, item := range items {
				item.PurchaseOrderID = order.ID
				if err := orderRepo.CreateItem(item); err != nil {
					return err
				}
			}
			return nil
		})
		if err == nil {
			break
		}
		// El índice único (empresa, número) es la red de seguridad final: si
		// otro proceso tomó el consecutivo, se recalcula y reintenta.
		if autoNumber && errors.Is(err, domain.ErrDuplicate) && attempt < maxNumberAttempts-1 {
			continue
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, fmt.Errorf("%w: el número de orden %s ya existe", domain.ErrDuplicate, order.OrderNumber)
		}
		return nil, fmt.Errorf("error al crear orden de compra: %w", err)
	}

	return toPurchaseOrderResponse(order, items), nil
}

// Update reemplaza la cabecera y la totalidad de las líneas en una sola
// transacción. El número de orden es inmutable; el estado se rederiva de las
// cantidades recibidas salvo cancelación manual (pegajosa).
func (uc *UseCase) Update(ctx context.Context, companyID, orderID string, req *dto.UpdatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	order, err := uc.findOwned(companyID, orderID)
	if err != nil {
		return nil, err
	}
	if err := uc.validateSupplier(companyID, req.SupplierID); err != nil {
		return nil, err
	}

	orderDate, err := parseDateOr(req.OrderDate, order.OrderDate)
	if err != nil {
		return nil, err
	}
	deliveryDate, err := parseDatePtr(req.DeliveryDate)
	if err != nil {
		return nil, err
	}

	items, err := uc.buildItems(companyID, req.Items)
	if err != nil {
		return nil, err
	}

	baseStatus := order.Status
	if req.Status != nil {
		if !validPurchaseStatus(*req.Status) {
			return nil, fmt.Errorf("%w: estado %q no reconocido", domain.ErrInvalidInput, *req.Status)
		}
		baseStatus = *req.Status
	}

	order.SupplierID = req.SupplierID
	order.OrderDate = orderDate
	order.DeliveryDate = deliveryDate
	order.Observations = req.Observations
	order.Status = reconcile.DeriveStatus(items, baseStatus)
	order.TotalAmount = reconcile.TotalAmount(items)
	order.UpdatedAt = time.Now()

	err = uc.txRunner.RunPurchase(ctx, func(orderRepo repository.PurchaseOrderRepository) error {
		if err := orderRepo.DeleteItemsByOrder(order.ID); err != nil {
			return err
		}
		for _, item := range items {
			item.PurchaseOrderID = order.ID
			if err := orderRepo.CreateItem(item); err != nil {
				return err
			}
		}
		return orderRepo.Update(order)
	})
	if err != nil {
		return nil, fmt.Errorf("error al actualizar orden de compra: %w", err)
	}

	return toPurchaseOrderResponse(order, items), nil
}

// List devuelve las órdenes de compra de la empresa con sus líneas.
func (uc *UseCase) List(companyID string, filters repository.PurchaseOrderFilters) ([]*dto.PurchaseOrderResponse, error) {
	orders, err := uc.orderRepo.ListByCompany(companyID, filters)
	if err != nil {
		return nil, fmt.Errorf("error al listar órdenes de compra: %w", err)
	}
	out := make([]*dto.PurchaseOrderResponse, 0, len(orders))
	for _, o := range orders {
		items, err := uc.orderRepo.ListItemsByOrder(o.ID)
		if err != nil {
			return nil, fmt.Errorf("error al listar líneas de la orden: %w", err)
		}
		out = append(out, toPurchaseOrderResponse(o, items))
	}
	return out, nil
}

func (uc *UseCase) Get(companyID, orderID string) (*dto.PurchaseOrderResponse, error) {
	order, err := uc.findOwned(companyID, orderID)
	if err != nil {
		return nil, err
	}
	items, err := uc.orderRepo.ListItemsByOrder(order.ID)
	if err != nil {
		return nil, fmt.Errorf("error al listar líneas de la orden: %w", err)
	}
	return toPurchaseOrderResponse(order, items), nil
}

func (uc *UseCase) Delete(companyID, orderID string) error {
	order, err := uc.findOwned(companyID, orderID)
	if err != nil {
		return err
	}
	if err := uc.orderRepo.Delete(order.ID); err != nil {
		return fmt.Errorf("error al eliminar orden de compra: %w", err)
	}
	return nil
}

// GeneratePDF arma el documento imprimible de la orden.
func (uc *UseCase) GeneratePDF(companyID, orderID string) ([]byte, error) {
	order, err := uc.findOwned(companyID, orderID)
	if err != nil {
		return nil, err
	}
	items, err := uc.orderRepo.ListItemsByOrder(order.ID)
	if err != nil {
		return nil, fmt.Errorf("error al listar líneas de la orden: %w", err)
	}

	doc := &PurchaseOrderDocument{
		OrderNumber:  order.OrderNumber,
		OrderDate:    order.OrderDate.Format("2006-01-02"),
		Observations: order.Observations,
		Status:       order.Status,
		TotalAmount:  order.TotalAmount,
	}
	if order.DeliveryDate != nil {
		doc.DeliveryDate = order.DeliveryDate.Format("2006-01-02")
	}
	if company, err := uc.companyRepo.GetByID(companyID); err == nil && company != nil {
		doc.CompanyName = company.Name
	}
	if supplier, err := uc.supplierRepo.GetByID(order.SupplierID); err == nil && supplier != nil {
		doc.SupplierName = supplier.Name
		doc.SupplierContact = supplier.Email
		doc.SupplierPhone = supplier.Phone
	}
	for _, item := range items {
		doc.Items = append(doc.Items, PurchaseOrderDocumentItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
	}

	return uc.pdf.PurchaseOrderPDF(doc)
}

// nextOrderNumber calcula el consecutivo siguiente para el prefijo dado,
// bloqueando la fila del máximo actual hasta el commit.
func nextOrderNumber(orderRepo repository.PurchaseOrderRepository, companyID, prefix string) (string, error) {
	last, err := orderRepo.LockLastOrderNumber(companyID, prefix)
	if err != nil {
		return "", fmt.Errorf("error al bloquear numeración: %w", err)
	}
	seq := 0
	if last != "" {
		parts := strings.Split(last, "-")
		if n, err := strconv.Atoi(parts[len(parts)-1]); err == nil {
			seq = n
		}
	}
	return fmt.Sprintf("%s%04d", prefix, seq+1), nil
}

// buildItems valida y materializa las líneas; los campos derivados
// (TotalPrice, Position) se calculan acá, nunca los manda el caller.
func (uc *UseCase) buildItems(companyID string, reqs []dto.PurchaseOrderItemRequest) ([]*entity.PurchaseOrderItem, error) {
	items := make([]*entity.PurchaseOrderItem, 0, len(reqs))
	for i, r := range reqs {
		if r.Quantity.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: la cantidad de la línea %d debe ser positiva", domain.ErrInvalidInput, i+1)
		}
		if r.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: el precio unitario de la línea %d no puede ser negativo", domain.ErrInvalidInput, i+1)
		}
		if r.ReceivedQuantity.IsNegative() {
			return nil, fmt.Errorf("%w: la cantidad recibida de la línea %d no puede ser negativa", domain.ErrInvalidInput, i+1)
		}
		if r.SparePartID != nil {
			part, err := uc.partRepo.GetByID(*r.SparePartID)
			if err != nil {
				return nil, fmt.Errorf("error al validar repuesto: %w", err)
			}
			if part == nil || part.CompanyID != companyID {
				return nil, fmt.Errorf("%w: el repuesto de la línea %d no existe", domain.ErrInvalidReference, i+1)
			}
		}
		receivedDate, err := parseDatePtr(r.ReceivedDate)
		if err != nil {
			return nil, err
		}
		items = append(items, &entity.PurchaseOrderItem{
			ID:               uuid.New().String(),
			SparePartID:      r.SparePartID,
			Description:      r.Description,
			Quantity:         r.Quantity,
			UnitPrice:        r.UnitPrice,
			TotalPrice:       r.Quantity.Mul(r.UnitPrice),
			ReceivedQuantity: r.ReceivedQuantity,
			ReceivedDate:     receivedDate,
			Position:         i,
		})
	}
	return items, nil
}

func (uc *UseCase) findOwned(companyID, orderID string) (*entity.PurchaseOrder, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, fmt.Errorf("error al buscar orden de compra: %w", err)
	}
	if order == nil || order.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

func (uc *UseCase) validateSupplier(companyID, supplierID string) error {
	if supplierID == "" {
		return fmt.Errorf("%w: el proveedor es obligatorio", domain.ErrInvalidInput)
	}
	supplier, err := uc.supplierRepo.GetByID(supplierID)
	if err != nil {
		return fmt.Errorf("error al validar proveedor: %w", err)
	}
	if supplier == nil || supplier.CompanyID != companyID {
		return fmt.Errorf("%w: el proveedor no existe", domain.ErrInvalidReference)
	}
	return nil
}

func validPurchaseStatus(status string) bool {
	switch status {
	case entity.PurchaseOrderStatusPendiente, entity.PurchaseOrderStatusParcial,
		entity.PurchaseOrderStatusCompletada, entity.PurchaseOrderStatusCancelada:
		return true
	}
	return false
}

func parseDateOr(s *string, fallback time.Time) (time.Time, error) {
	if s == nil || *s == "" {
		return fallback, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha inválida %q (se espera AAAA-MM-DD)", domain.ErrInvalidInput, *s)
	}
	return t, nil
}

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha inválida %q (se espera AAAA-MM-DD)", domain.ErrInvalidInput, *s)
	}
	return &t, nil
}

func toPurchaseOrderResponse(order *entity.PurchaseOrder, items []*entity.PurchaseOrderItem) *dto.PurchaseOrderResponse {
	resp := &dto.PurchaseOrderResponse{
		ID:           order.ID,
		CompanyID:    order.CompanyID,
		SupplierID:   order.SupplierID,
		OrderNumber:  order.OrderNumber,
		OrderDate:    order.OrderDate.Format("2006-01-02"),
		Observations: order.Observations,
		Status:       order.Status,
		TotalAmount:  order.TotalAmount,
		Items:        make([]dto.PurchaseOrderItemResponse, 0, len(items)),
	}
	if order.DeliveryDate != nil {
		s := order.DeliveryDate.Format("2006-01-02")
		resp.DeliveryDate = &s
	}
	for _, item := range items {
		ir := dto.PurchaseOrderItemResponse{
			ID:               item.ID,
			SparePartID:      item.SparePartID,
			Description:      item.Description,
			Quantity:         item.Quantity,
			UnitPrice:        item.UnitPrice,
			TotalPrice:       item.TotalPrice,
			ReceivedQuantity: item.ReceivedQuantity,
		}
		if item.ReceivedDate != nil {
			s := item.ReceivedDate.Format("2006-01-02")
			ir.ReceivedDate = &s
		}
		resp.Items = append(resp.Items, ir)
	}
	return resp
}
