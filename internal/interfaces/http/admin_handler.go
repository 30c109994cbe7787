package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/holding-tracker/internal/application/dto"
	"github.com/jhoicas/holding-tracker/internal/application/usecase"
	"github.com/jhoicas/holding-tracker/pkg/logger"
)

// AdminHandler volcado de tablas y borrado total en dos pasos.
type AdminHandler struct {
	uc  *usecase.AdminUseCase
	log *logger.Logger
}

// NewAdminHandler construye el handler.
func NewAdminHandler(uc *usecase.AdminUseCase, log *logger.Logger) *AdminHandler {
	return &AdminHandler{uc: uc, log: log}
}

// Table godoc
// @Summary      Volcado de tabla
// @Tags         admin
// @Produce      json
// @Param        table  path  string  true  "Tabla"  Enums(companies, subsidiaries, clients, contracts)
// @Success      200    {object}  dto.RawTableResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/admin/tables/{table} [get]
func (h *AdminHandler) Table(c *fiber.Ctx) error {
	out, err := h.uc.Table(c.UserContext(), c.Params("table"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// EnableWipe godoc
// @Summary      Habilitar el borrado total (paso 1): emite un token de confirmación
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.WipeTokenResponse
// @Router       /api/admin/wipe/enable [post]
func (h *AdminHandler) EnableWipe(c *fiber.Ctx) error {
	out, err := h.uc.EnableWipe(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// ConfirmWipe godoc
// @Summary      Confirmar el borrado total (paso 2)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WipeConfirmRequest  true  "Token emitido en el paso 1"
// @Success      200   {object}  dto.WipeResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/wipe/confirm [post]
func (h *AdminHandler) ConfirmWipe(c *fiber.Ctx) error {
	var in dto.WipeConfirmRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.ConfirmWipe(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
