package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mkonate/boutik-api/internal/application/dto"
	"github.com/mkonate/boutik-api/internal/application/usecase"
)

// SuccursaleHandler gère les succursales.
type SuccursaleHandler struct {
	uc *usecase.SuccursaleUseCase
}

func NewSuccursaleHandler(uc *usecase.SuccursaleUseCase) *SuccursaleHandler {
	return &SuccursaleHandler{uc: uc}
}

// Create godoc
// @Summary      Créer une succursale
// @Tags         succursales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSuccursaleRequest  true  "nom"
// @Success      201   {object}  dto.SuccursaleResponse
// @Router       /api/succursales [post]
func (h *SuccursaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSuccursaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps de requête invalide"})
	}
	out, err := h.uc.Create(GetEntrepriseID(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *SuccursaleHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.GetByID(GetEntrepriseID(c), id)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

func (h *SuccursaleHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdateSuccursaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps de requête invalide"})
	}
	out, err := h.uc.Update(GetEntrepriseID(c), id, in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

func (h *SuccursaleHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "pagination invalide"})
	}
	out, err := h.uc.List(GetEntrepriseID(c), page)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

func (h *SuccursaleHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(GetEntrepriseID(c), id); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
