package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/holding-tracker/internal/application/analytics"
	"github.com/jhoicas/holding-tracker/internal/application/dto"
	"github.com/jhoicas/holding-tracker/internal/application/usecase"
	"github.com/jhoicas/holding-tracker/pkg/logger"
)

// CompanyHandler maneja las peticiones HTTP para el recurso Company y el bootstrap.
type CompanyHandler struct {
	uc        *usecase.CompanyUseCase
	bootstrap *usecase.BootstrapUseCase
	rollup    *analytics.RollupUseCase
	log       *logger.Logger
}

// NewCompanyHandler construye el handler inyectando los casos de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase, bootstrap *usecase.BootstrapUseCase, rollup *analytics.RollupUseCase, log *logger.Logger) *CompanyHandler {
	return &CompanyHandler{uc: uc, bootstrap: bootstrap, rollup: rollup, log: log}
}

// Create godoc
// @Summary      Crear empresa
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "Datos de la empresa"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener empresa por ID
// @Tags         companies
// @Produce      json
// @Param        id   path  int  true  "ID de la empresa"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar empresas
// @Tags         companies
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.CompanyResponse]
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.NewList(items))
}

// Rollup godoc
// @Summary      Totales de la empresa sobre todas sus filiales
// @Tags         companies
// @Produce      json
// @Param        id   path  int  true  "ID de la empresa"
// @Success      200  {object}  dto.CompanyAggregate
// @Router       /api/companies/{id}/rollup [get]
func (h *CompanyHandler) Rollup(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return validationError(c, "id inválido")
	}
	out, err := h.rollup.CompanyAggregate(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Bootstrap godoc
// @Summary      Asegurar la organización por defecto (matriz y filiales)
// @Tags         companies
// @Produce      json
// @Success      200  {object}  dto.BootstrapResponse
// @Router       /api/bootstrap [post]
func (h *CompanyHandler) Bootstrap(c *fiber.Ctx) error {
	out, err := h.bootstrap.Run(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
