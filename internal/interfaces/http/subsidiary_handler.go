package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/holding-tracker/internal/application/analytics"
	"github.com/jhoicas/holding-tracker/internal/application/dto"
	"github.com/jhoicas/holding-tracker/internal/application/usecase"
	"github.com/jhoicas/holding-tracker/pkg/logger"
)

// SubsidiaryHandler maneja las peticiones HTTP para filiales.
type SubsidiaryHandler struct {
	uc     *usecase.SubsidiaryUseCase
	rollup *analytics.RollupUseCase
	log    *logger.Logger
}

// NewSubsidiaryHandler construye el handler.
func NewSubsidiaryHandler(uc *usecase.SubsidiaryUseCase, rollup *analytics.RollupUseCase, log *logger.Logger) *SubsidiaryHandler {
	return &SubsidiaryHandler{uc: uc, rollup: rollup, log: log}
}

// Create godoc
// @Summary      Crear filial
// @Tags         subsidiaries
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSubsidiaryRequest  true  "Datos de la filial"
// @Success      201   {object}  dto.SubsidiaryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/subsidiaries [post]
func (h *SubsidiaryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSubsidiaryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene una filial. GET /api/subsidiaries/:id
func (h *SubsidiaryHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return validationError(c, "id inválido")
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar filiales
// @Tags         subsidiaries
// @Produce      json
// @Param        company_id  query  int  false  "Filtrar por empresa"
// @Success      200  {object}  dto.ListResponse[dto.SubsidiaryResponse]
// @Router       /api/subsidiaries [get]
func (h *SubsidiaryHandler) List(c *fiber.Ctx) error {
	var companyID *int64
	if raw := c.Query("company_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return validationError(c, "company_id inválido")
		}
		companyID = &id
	}
	items, err := h.uc.List(c.UserContext(), companyID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.NewList(items))
}

// Rollup totales de la filial. GET /api/subsidiaries/:id/rollup
func (h *SubsidiaryHandler) Rollup(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return validationError(c, "id inválido")
	}
	out, err := h.rollup.SubsidiaryAggregate(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
