package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/mkonate/boutik-api/internal/application/dto"
	"github.com/mkonate/boutik-api/internal/application/usecase"
)

// RapportHandler expose les rapports agrégés.
type RapportHandler struct {
	uc *usecase.RapportUseCase
}

func NewRapportHandler(uc *usecase.RapportUseCase) *RapportHandler {
	return &RapportHandler{uc: uc}
}

// Stock godoc
// @Summary      Rapport de stock
// @Description  Totaux des entrées, des sorties et valorisation du stock
// @Description  courant, pour toute l'entreprise ou une boutique donnée.
// @Tags         rapports
// @Security     Bearer
// @Produce      json
// @Param        boutiqueId  query  int  false  "restreindre à une boutique"
// @Success      200  {object}  dto.RapportStockResponse
// @Router       /api/rapports/stock [get]
func (h *RapportHandler) Stock(c *fiber.Ctx) error {
	var boutiqueID *int64
	if raw := c.Query("boutiqueId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "boutiqueId invalide"})
		}
		boutiqueID = &id
	}
	out, err := h.uc.Stock(c.Context(), GetEntrepriseID(c), boutiqueID)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Caisses godoc
// @Summary      Rapport des caisses
// @Description  Solde de chaque caisse de l'entreprise et total consolidé.
// @Tags         rapports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RapportCaissesResponse
// @Router       /api/rapports/caisses [get]
func (h *RapportHandler) Caisses(c *fiber.Ctx) error {
	out, err := h.uc.Caisses(c.Context(), GetEntrepriseID(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}
