package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gmao-pro/internal/application/dto"
	"github.com/tu-usuario/gmao-pro/internal/application/usecase"
)

// ToolHandler maneja las peticiones HTTP para herramientas (protegido).
type ToolHandler struct {
	uc *usecase.ToolUseCase
}

func NewToolHandler(uc *usecase.ToolUseCase) *ToolHandler {
	return &ToolHandler{uc: uc}
}

// Create godoc
// @Summary      Crear herramienta
// @Tags         tools
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ToolRequest  true  "Datos de la herramienta"
// @Success      201   {object}  dto.ToolResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tools [post]
func (h *ToolHandler) Create(c *fiber.Ctx) error {
	var in dto.ToolRequest
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
// @Summary      Listar herramientas
// @Tags         tools
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ToolResponse
// @Router       /api/tools [get]
func (h *ToolHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar herramienta
// @Tags         tools
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string           true  "ID de la herramienta"
// @Param        body  body  dto.ToolRequest  true  "Datos de la herramienta"
// @Success      200   {object}  dto.ToolResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tools/{id} [put]
func (h *ToolHandler) Update(c *fiber.Ctx) error {
	var in dto.ToolRequest
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
// @Summary      Eliminar herramienta
// @Tags         tools
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la herramienta"
// @Success      200  {object}  dto.StatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tools/{id} [delete]
func (h *ToolHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetCompanyID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "ok"})
}
