package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/holding-tracker/internal/application/analytics"
	"github.com/jhoicas/holding-tracker/internal/application/dto"
	"github.com/jhoicas/holding-tracker/internal/application/usecase"
	"github.com/jhoicas/holding-tracker/pkg/logger"
)

// ContractHandler maneja contratos y sus movimientos (ingresos, gastos, participaciones).
type ContractHandler struct {
	uc     *usecase.ContractUseCase
	ledger *usecase.LedgerUseCase
	rollup *analytics.RollupUseCase
	log    *logger.Logger
}

// NewContractHandler construye el handler.
func NewContractHandler(uc *usecase.ContractUseCase, ledger *usecase.LedgerUseCase, rollup *analytics.RollupUseCase, log *logger.Logger) *ContractHandler {
	return &ContractHandler{uc: uc, ledger: ledger, rollup: rollup, log: log}
}

// Create godoc
// @Summary      Crear contrato
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateContractRequest  true  "Datos del contrato"
// @Success      201   {object}  dto.ContractResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/contracts [post]
func (h *ContractHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContractRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar contratos (más recientes primero) con totales
// @Tags         contracts
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.ContractListItem]
// @Router       /api/contracts [get]
func (h *ContractHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.NewList(items))
}

// Detail godoc
// @Summary      Detalle del contrato con filial, cliente, totales y movimientos
// @Tags         contracts
// @Produce      json
// @Param        id   path  int  true  "ID del contrato"
// @Success      200  {object}  dto.ContractDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contracts/{id} [get]
func (h *ContractHandler) Detail(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return validationError(c, "id inválido")
	}
	out, err := h.uc.Detail(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar el estado del contrato
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del contrato"
// @Param        body  body  dto.UpdateContractStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.ContractResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/contracts/{id}/status [patch]
func (h *ContractHandler) UpdateStatus(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return validationError(c, "id inválido")
	}
	var in dto.UpdateContractStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Aggregate totales del contrato (cero si no existe). GET /api/contracts/:id/aggregate
func (h *ContractHandler) Aggregate(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return validationError(c, "id inválido")
	}
	out, err := h.rollup.ContractAggregate(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// RecordRevenue godoc
// @Summary      Registrar ingreso
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del contrato"
// @Param        body  body  dto.RecordLedgerEntryRequest  true  "Monto, fecha (YYYY-MM-DD, vacío = hoy) y descripción"
// @Success      201   {object}  dto.LedgerEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/contracts/{id}/revenues [post]
func (h *ContractHandler) RecordRevenue(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return validationError(c, "id inválido")
	}
	var in dto.RecordLedgerEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.ledger.RecordRevenue(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RecordExpense registra un gasto. POST /api/contracts/:id/expenses
func (h *ContractHandler) RecordExpense(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return validationError(c, "id inválido")
	}
	var in dto.RecordLedgerEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.ledger.RecordExpense(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// AwardEquity registra una participación otorgada. POST /api/contracts/:id/equity-awards
func (h *ContractHandler) AwardEquity(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return validationError(c, "id inválido")
	}
	var in dto.AwardEquityRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.ledger.AwardEquity(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
