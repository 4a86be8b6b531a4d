package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mkonate/boutik-api/internal/application/dto"
	"github.com/mkonate/boutik-api/internal/application/usecase"
)

// ReservationHandler gère les réservations et leurs transitions de statut.
type ReservationHandler struct {
	uc *usecase.ReservationUseCase
}

func NewReservationHandler(uc *usecase.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{uc: uc}
}

// Create godoc
// @Summary      Créer une réservation (EnAttente)
// @Description  Le stock n'est pas touché avant la confirmation.
// @Tags         reservations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReservationRequest  true  "boutiqueId, clientId, modeleBoutiqueId, quantite, montant"
// @Success      201   {object}  dto.ReservationResponse
// @Router       /api/reservations [post]
func (h *ReservationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReservationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps de requête invalide"})
	}
	out, err := h.uc.Create(GetEntrepriseID(c), GetUserID(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Confirmer godoc
// @Summary      Confirmer une réservation
// @Description  Dans une seule transaction : sortie de stock, encaissement du
// @Description  montant en caisse, statut Confirmee. Un stock insuffisant
// @Description  annule tout.
// @Tags         reservations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConfirmerReservationRequest  true  "caisseId"
// @Success      200   {object}  dto.ReservationResponse
// @Failure      400   {object}  dto.StatusResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/reservations/{id}/confirmer [post]
func (h *ReservationHandler) Confirmer(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.ConfirmerReservationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps de requête invalide"})
	}
	if in.CaisseID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "caisseId est requis"})
	}
	out, err := h.uc.Confirmer(c.Context(), GetEntrepriseID(c), GetUserID(c), id, in.CaisseID)
	if err != nil {
		return mapStockError(c, err)
	}
	return c.JSON(out)
}

// Annuler godoc
// @Summary      Annuler une réservation
// @Tags         reservations
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReservationResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/reservations/{id}/annuler [post]
func (h *ReservationHandler) Annuler(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.Annuler(GetEntrepriseID(c), id)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

func (h *ReservationHandler) List(c *fiber.Ctx) error {
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
