package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gmao-pro/internal/application/dto"
	"github.com/tu-usuario/gmao-pro/internal/application/usecase"
)

// WorkerHandler maneja las peticiones HTTP para trabajadores (protegido).
type WorkerHandler struct {
	uc *usecase.WorkerUseCase
}

// NewWorkerHandler construye el handler.
func NewWorkerHandler(uc *usecase.WorkerUseCase) *WorkerHandler {
	return &WorkerHandler{uc: uc}
}

// Create godoc
// @Summary      Crear trabajador
// @Tags         workers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WorkerRequest  true  "Datos del trabajador"
// @Success      201   {object}  dto.WorkerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/workers [post]
func (h *WorkerHandler) Create(c *fiber.Ctx) error {
	var in dto.WorkerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar trabajadores
// @Tags         workers
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.WorkerResponse
// @Router       /api/workers [get]
func (h *WorkerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar trabajador
// @Tags         workers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "ID del trabajador"
// @Param        body  body  dto.WorkerRequest  true  "Datos del trabajador"
// @Success      200   {object}  dto.WorkerResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/workers/{id} [put]
func (h *WorkerHandler) Update(c *fiber.Ctx) error {
	var in dto.WorkerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar trabajador
// @Tags         workers
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del trabajador"
// @Success      200  {object}  dto.StatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/workers/{id} [delete]
func (h *WorkerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetCompanyID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "ok"})
}
