package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gmao-pro/internal/application/dto"
	"github.com/tu-usuario/gmao-pro/internal/application/usecase"
)

// SparePartHandler maneja repuestos y sus categorías (protegido).
type SparePartHandler struct {
	uc *usecase.SparePartUseCase
}

func NewSparePartHandler(uc *usecase.SparePartUseCase) *SparePartHandler {
	return &SparePartHandler{uc: uc}
}

// CreateCategory godoc
// @Summary      Crear categoría de repuestos
// @Tags         spare-parts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SparePartCategoryRequest  true  "Datos de la categoría"
// @Success      201   {object}  dto.SparePartCategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/spare-part-categories [post]
func (h *SparePartHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.SparePartCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateCategory(GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListCategories godoc
// @Summary      Listar categorías de repuestos
// @Tags         spare-parts
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SparePartCategoryResponse
// @Router       /api/spare-part-categories [get]
func (h *SparePartHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.uc.ListCategories(GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteCategory godoc
// @Summary      Eliminar categoría (falla con 409 si tiene repuestos)
// @Tags         spare-parts
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.StatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/spare-part-categories/{id} [delete]
func (h *SparePartHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.uc.DeleteCategory(GetCompanyID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "ok"})
}

// CreatePart godoc
// @Summary      Crear repuesto
// @Tags         spare-parts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SparePartRequest  true  "Datos del repuesto"
// @Success      201   {object}  dto.SparePartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/spare-parts [post]
func (h *SparePartHandler) CreatePart(c *fiber.Ctx) error {
	var in dto.SparePartRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreatePart(GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListParts godoc
// @Summary      Listar repuestos
// @Tags         spare-parts
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SparePartResponse
// @Router       /api/spare-parts [get]
func (h *SparePartHandler) ListParts(c *fiber.Ctx) error {
	out, err := h.uc.ListParts(GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdatePart godoc
// @Summary      Actualizar repuesto
// @Tags         spare-parts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "ID del repuesto"
// @Param        body  body  dto.SparePartRequest  true  "Datos del repuesto"
// @Success      200   {object}  dto.SparePartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/spare-parts/{id} [put]
func (h *SparePartHandler) UpdatePart(c *fiber.Ctx) error {
	var in dto.SparePartRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdatePart(GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeletePart godoc
// @Summary      Eliminar repuesto
// @Tags         spare-parts
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del repuesto"
// @Success      200  {object}  dto.StatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/spare-parts/{id} [delete]
func (h *SparePartHandler) DeletePart(c *fiber.Ctx) error {
	if err := h.uc.DeletePart(GetCompanyID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "ok"})
}
