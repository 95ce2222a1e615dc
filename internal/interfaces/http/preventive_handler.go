package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gmao-pro/internal/application/dto"
	"github.com/tu-usuario/gmao-pro/internal/application/preventive"
)

// PreventiveHandler maneja planes preventivos y el barrido de generación
// de órdenes (protegido).
type PreventiveHandler struct {
	plans *preventive.PlanUseCase
	sweep *preventive.SweepUseCase
}

func NewPreventiveHandler(plans *preventive.PlanUseCase, sweep *preventive.SweepUseCase) *PreventiveHandler {
	return &PreventiveHandler{plans: plans, sweep: sweep}
}

// Create godoc
// @Summary      Crear plan de mantenimiento preventivo
// @Tags         preventive
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePlanRequest  true  "Datos del plan"
// @Success      201   {object}  dto.PlanResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/preventive-plans [post]
func (h *PreventiveHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePlanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.plans.Create(GetCompanyID(c), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar planes preventivos con sus tareas
// @Tags         preventive
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PlanResponse
// @Router       /api/preventive-plans [get]
func (h *PreventiveHandler) List(c *fiber.Ctx) error {
	out, err := h.plans.List(GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener un plan preventivo
// @Tags         preventive
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del plan"
// @Success      200  {object}  dto.PlanResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/preventive-plans/{id} [get]
func (h *PreventiveHandler) Get(c *fiber.Ctx) error {
	out, err := h.plans.Get(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar plan preventivo (nombre, frecuencia, activación)
// @Tags         preventive
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del plan"
// @Param        body  body  dto.UpdatePlanRequest  true  "Datos del plan"
// @Success      200   {object}  dto.PlanResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/preventive-plans/{id} [put]
func (h *PreventiveHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePlanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.plans.Update(GetCompanyID(c), c.Params("id"), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar plan preventivo
// @Tags         preventive
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del plan"
// @Success      200  {object}  dto.StatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/preventive-plans/{id} [delete]
func (h *PreventiveHandler) Delete(c *fiber.Ctx) error {
	if err := h.plans.Delete(GetCompanyID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "ok"})
}

// Sweep godoc
// @Summary      Ejecutar barrido de planes vencidos y generar órdenes preventivas
// @Description  Recorre los planes activos con fecha vencida y genera una orden de
// @Description  trabajo por plan. Es idempotente dentro del mismo día: una segunda
// @Description  llamada no duplica órdenes.
// @Tags         preventive
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SweepResponse
// @Router       /api/preventive-plans/sweep [post]
func (h *PreventiveHandler) Sweep(c *fiber.Ctx) error {
	out, err := h.sweep.Run(c.Context(), GetCompanyID(c), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
