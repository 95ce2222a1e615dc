package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gmao-pro/internal/application/dto"
	"github.com/tu-usuario/gmao-pro/internal/application/usecase"
)

// SectorHandler maneja las peticiones HTTP para sectores (protegido).
type SectorHandler struct {
	uc *usecase.SectorUseCase
}

// NewSectorHandler construye el handler.
func NewSectorHandler(uc *usecase.SectorUseCase) *SectorHandler {
	return &SectorHandler{uc: uc}
}

// Create godoc
// @Summary      Crear sector
// @Tags         sectors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SectorRequest  true  "Datos del sector"
// @Success      201   {object}  dto.SectorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sectors [post]
func (h *SectorHandler) Create(c *fiber.Ctx) error {
	var in dto.SectorRequest
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
// @Summary      Listar sectores
// @Tags         sectors
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SectorResponse
// @Router       /api/sectors [get]
func (h *SectorHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar sector
// @Tags         sectors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "ID del sector"
// @Param        body  body  dto.SectorRequest  true  "Datos del sector"
// @Success      200   {object}  dto.SectorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sectors/{id} [put]
func (h *SectorHandler) Update(c *fiber.Ctx) error {
	var in dto.SectorRequest
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
// @Summary      Eliminar sector (falla con 409 si tiene activos)
// @Tags         sectors
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del sector"
// @Success      200  {object}  dto.StatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sectors/{id} [delete]
func (h *SectorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetCompanyID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "ok"})
}
