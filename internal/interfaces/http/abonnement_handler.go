package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mkonate/boutik-api/internal/application/dto"
	"github.com/mkonate/boutik-api/internal/application/usecase"
)

// AbonnementHandler gère la souscription et la consultation des abonnements.
type AbonnementHandler struct {
	uc *usecase.AbonnementUseCase
}

func NewAbonnementHandler(uc *usecase.AbonnementUseCase) *AbonnementHandler {
	return &AbonnementHandler{uc: uc}
}

// Souscrire godoc
// @Summary      Souscrire un abonnement
// @Description  Désactive l'abonnement actif courant puis en crée un nouveau.
// @Tags         abonnements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAbonnementRequest  true  "plan (essentiel|premium), dateFin optionnelle"
// @Success      201   {object}  dto.AbonnementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/abonnements [post]
func (h *AbonnementHandler) Souscrire(c *fiber.Ctx) error {
	var in dto.CreateAbonnementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps de requête invalide"})
	}
	out, err := h.uc.Souscrire(GetEntrepriseID(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Actif godoc
// @Summary      Abonnement actif de l'entreprise
// @Tags         abonnements
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AbonnementResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/abonnements/actif [get]
func (h *AbonnementHandler) Actif(c *fiber.Ctx) error {
	out, err := h.uc.Actif(GetEntrepriseID(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}
