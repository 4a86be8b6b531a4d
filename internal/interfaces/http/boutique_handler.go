package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mkonate/boutik-api/internal/application/dto"
	"github.com/mkonate/boutik-api/internal/application/usecase"
)

// BoutiqueHandler gère les boutiques (points de vente).
type BoutiqueHandler struct {
	uc *usecase.BoutiqueUseCase
}

func NewBoutiqueHandler(uc *usecase.BoutiqueUseCase) *BoutiqueHandler {
	return &BoutiqueHandler{uc: uc}
}

// Create godoc
// @Summary      Créer une boutique
// @Tags         boutiques
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBoutiqueRequest  true  "nom, succursaleId optionnelle"
// @Success      201   {object}  dto.BoutiqueResponse
// @Router       /api/boutiques [post]
func (h *BoutiqueHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBoutiqueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps de requête invalide"})
	}
	out, err := h.uc.Create(GetEntrepriseID(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *BoutiqueHandler) GetByID(c *fiber.Ctx) error {
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

func (h *BoutiqueHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdateBoutiqueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps de requête invalide"})
	}
	out, err := h.uc.Update(GetEntrepriseID(c), id, in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

func (h *BoutiqueHandler) List(c *fiber.Ctx) error {
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

func (h *BoutiqueHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(GetEntrepriseID(c), id); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
