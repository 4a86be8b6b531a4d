package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mkonate/boutik-api/internal/application/dto"
	"github.com/mkonate/boutik-api/internal/application/usecase"
)

// EntrepriseHandler gère les entreprises (tenants).
type EntrepriseHandler struct {
	uc *usecase.EntrepriseUseCase
}

func NewEntrepriseHandler(uc *usecase.EntrepriseUseCase) *EntrepriseHandler {
	return &EntrepriseHandler{uc: uc}
}

// Create godoc
// @Summary      Créer une entreprise
// @Tags         entreprises
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEntrepriseRequest  true  "nom, email"
// @Success      201   {object}  dto.EntrepriseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/entreprises [post]
func (h *EntrepriseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEntrepriseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps de requête invalide"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Consulter son entreprise
// @Tags         entreprises
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.EntrepriseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/entreprises/moi [get]
func (h *EntrepriseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetEntrepriseID(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Mettre à jour son entreprise
// @Tags         entreprises
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateEntrepriseRequest  true  "champs optionnels"
// @Success      200   {object}  dto.EntrepriseResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/entreprises/moi [put]
func (h *EntrepriseHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEntrepriseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps de requête invalide"})
	}
	out, err := h.uc.Update(GetEntrepriseID(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}
