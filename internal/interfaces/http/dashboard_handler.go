package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gmao-pro/internal/application/dashboard"
)

// DashboardHandler expone las métricas operativas de la empresa (protegido).
type DashboardHandler struct {
	uc *dashboard.UseCase
}

func NewDashboardHandler(uc *dashboard.UseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats godoc
// @Summary      Métricas del panel: órdenes abiertas, totales del año y actividad reciente
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
