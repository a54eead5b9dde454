package handlers

import (
	"errors"

	apperrors "paygrid/internal/errors"
	"paygrid/internal/models"
	"paygrid/internal/services/fees"
	"paygrid/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// FeeHandler exposes the fee configuration engine over HTTP.
type FeeHandler struct {
	feeService fees.Service
}

func NewFeeHandler(feeService fees.Service) *FeeHandler {
	return &FeeHandler{
		feeService: feeService,
	}
}

func (h *FeeHandler) GetMerchantFees(c *fiber.Ctx) error {
	cfg, err := h.feeService.GetMerchantFeeConfig(c.Context(), c.Params("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return c.JSON(cfg)
}

func (h *FeeHandler) UpdateMerchantFees(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var input fees.UpdateMerchantFeesInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	actor, err := h.feeService.GetActorSummary(c.Context(), claims.UserID)
	if err != nil {
		return h.handleError(c, err)
	}

	cfg, err := h.feeService.UpdateMerchantFeeConfig(c.Context(), c.Params("id"), input, actor)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, "Merchant fees updated", cfg)
}

func (h *FeeHandler) ResetMerchantFees(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	actor, err := h.feeService.GetActorSummary(c.Context(), claims.UserID)
	if err != nil {
		return h.handleError(c, err)
	}

	cfg, err := h.feeService.ResetMerchantFeesToDefaults(c.Context(), c.Params("id"), actor)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, "Merchant fees reset to tier defaults", cfg)
}

func (h *FeeHandler) GetPlatformFeeDefaults(c *fiber.Ctx) error {
	defaults, err := h.feeService.GetPlatformFeeDefaults(c.Context())
	if err != nil {
		return h.handleError(c, err)
	}
	return c.JSON(defaults)
}

func (h *FeeHandler) UpdatePlatformFeeDefaults(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var input fees.UpdatePlatformFeesInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	actor, err := h.feeService.GetActorSummary(c.Context(), claims.UserID)
	if err != nil {
		return h.handleError(c, err)
	}

	defaults, err := h.feeService.UpdatePlatformFeeDefaults(c.Context(), input, actor)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, "Platform fee defaults updated", defaults)
}

// handleError maps the service error taxonomy onto HTTP statuses:
// validation 422, not found 404, persistence 500.
func (h *FeeHandler) handleError(c *fiber.Ctx, err error) error {
	var domainErr *apperrors.DomainError
	if errors.As(err, &domainErr) {
		return response.ValidationError(c, domainErr.Code, domainErr.Field, domainErr.Message)
	}

	var notFoundErr *apperrors.NotFoundError
	if errors.As(err, &notFoundErr) {
		return response.NotFound(c, notFoundErr.Error())
	}

	return response.ServerError(c, "internal error")
}
