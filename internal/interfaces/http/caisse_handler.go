package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mkonate/boutik-api/internal/application/dto"
	"github.com/mkonate/boutik-api/internal/application/usecase"
)

// CaisseHandler gère les caisses et leurs mouvements manuels.
type CaisseHandler struct {
	uc *usecase.CaisseUseCase
}

func NewCaisseHandler(uc *usecase.CaisseUseCase) *CaisseHandler {
	return &CaisseHandler{uc: uc}
}

// Create godoc
// @Summary      Créer une caisse (solde initial zéro)
// @Tags         caisses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCaisseRequest  true  "boutiqueId, nom"
// @Success      201   {object}  dto.CaisseResponse
// @Router       /api/caisses [post]
func (h *CaisseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCaisseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps de requête invalide"})
	}
	out, err := h.uc.Create(GetEntrepriseID(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *CaisseHandler) GetByID(c *fiber.Ctx) error {
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

func (h *CaisseHandler) List(c *fiber.Ctx) error {
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

// Solde godoc
// @Summary      Solde courant d'une caisse
// @Tags         caisses
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SoldeCaisseResponse
// @Router       /api/caisses/{id}/solde [get]
func (h *CaisseHandler) Solde(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.GetByID(GetEntrepriseID(c), id)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.SoldeCaisseResponse{
		CaisseID:   out.ID,
		BoutiqueID: out.BoutiqueID,
		Nom:        out.Nom,
		Solde:      out.Solde,
	})
}

// EnregistrerMouvement godoc
// @Summary      Encaissement ou décaissement manuel
// @Description  Le solde est mis à jour et le mouvement journalisé dans la
// @Description  même transaction. Un décaissement supérieur au solde est
// @Description  refusé.
// @Tags         caisses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MouvementCaisseRequest  true  "type, montant, motif"
// @Success      201   {object}  dto.MouvementCaisseResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/caisses/{id}/mouvements [post]
func (h *CaisseHandler) EnregistrerMouvement(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.MouvementCaisseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps de requête invalide"})
	}
	out, err := h.uc.EnregistrerMouvement(c.Context(), GetEntrepriseID(c), GetUserID(c), id, in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *CaisseHandler) ListMouvements(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "pagination invalide"})
	}
	out, err := h.uc.ListMouvements(GetEntrepriseID(c), id, page)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete refuse la suppression d'une caisse dont le solde n'est pas nul.
func (h *CaisseHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(GetEntrepriseID(c), id); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
