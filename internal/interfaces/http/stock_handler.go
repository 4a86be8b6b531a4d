package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/mkonate/boutik-api/internal/application/dto"
	"github.com/mkonate/boutik-api/internal/application/stock"
	"github.com/mkonate/boutik-api/internal/domain"
	"github.com/mkonate/boutik-api/internal/domain/entity"
)

// StockHandler expose le registre des mouvements de stock. Les erreurs métier
// du registre (stock insuffisant, modèle boutique introuvable) sortent dans
// l'enveloppe historique {status:"ERROR", message} que les clients mobiles
// consomment déjà.
type StockHandler struct {
	uc    *stock.UseCase
	query *stock.QueryUseCase
	bon   *stock.BonUseCase
}

func NewStockHandler(uc *stock.UseCase, query *stock.QueryUseCase, bon *stock.BonUseCase) *StockHandler {
	return &StockHandler{uc: uc, query: query, bon: bon}
}

// Entree godoc
// @Summary      Enregistrer une entrée de stock
// @Description  Lot multi-lignes appliqué dans une seule transaction : toute
// @Description  ligne fautive annule le lot entier.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MouvementStockRequest  true  "boutiqueId, lignes[]{modeleBoutiqueId, quantite}"
// @Success      201   {object}  dto.MouvementStockResponse
// @Failure      400   {object}  dto.StatusResponse
// @Router       /api/stock/entree [post]
func (h *StockHandler) Entree(c *fiber.Ctx) error {
	return h.enregistrer(c, entity.MouvementEntree)
}

// Sortie godoc
// @Summary      Enregistrer une sortie de stock
// @Description  Une quantité demandée supérieure au disponible rejette le lot
// @Description  entier avec le détail disponible/demandé.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MouvementStockRequest  true  "boutiqueId, lignes[]{modeleBoutiqueId, quantite}"
// @Success      201   {object}  dto.MouvementStockResponse
// @Failure      400   {object}  dto.StatusResponse
// @Router       /api/stock/sortie [post]
func (h *StockHandler) Sortie(c *fiber.Ctx) error {
	return h.enregistrer(c, entity.MouvementSortie)
}

func (h *StockHandler) enregistrer(c *fiber.Ctx, sens string) error {
	var in dto.MouvementStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps de requête invalide"})
	}
	mouvement, lignes, err := h.uc.EnregistrerMouvement(c.Context(), stock.MouvementInput{
		EntrepriseID: GetEntrepriseID(c),
		UserID:       GetUserID(c),
		BoutiqueID:   in.BoutiqueID,
		Type:         sens,
		Lignes:       toLigneInputs(in.Lignes),
	})
	if err != nil {
		return mapStockError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(stock.ToMouvementResponse(mouvement, lignes))
}

// UpdateEntree godoc
// @Summary      Remplacer les lignes d'une entrée
// @Description  L'effet des anciennes lignes est défait puis les nouvelles
// @Description  sont appliquées, dans une seule transaction.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateMouvementStockRequest  true  "lignes[], boutiqueId optionnelle"
// @Success      200   {object}  dto.MouvementStockResponse
// @Failure      400   {object}  dto.StatusResponse
// @Router       /api/stock/entree/{id} [put]
func (h *StockHandler) UpdateEntree(c *fiber.Ctx) error {
	return h.remplacer(c, entity.MouvementEntree)
}

// UpdateSortie met à jour une sortie existante, mêmes règles que UpdateEntree.
func (h *StockHandler) UpdateSortie(c *fiber.Ctx) error {
	return h.remplacer(c, entity.MouvementSortie)
}

func (h *StockHandler) remplacer(c *fiber.Ctx, typeAttendu string) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdateMouvementStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps de requête invalide"})
	}
	mouvement, lignes, err := h.uc.RemplacerLignes(c.Context(), id, typeAttendu, stock.RemplacementInput{
		EntrepriseID: GetEntrepriseID(c),
		BoutiqueID:   in.BoutiqueID,
		Lignes:       toLigneInputs(in.Lignes),
	})
	if err != nil {
		return mapStockError(c, err)
	}
	return c.JSON(stock.ToMouvementResponse(mouvement, lignes))
}

// Delete godoc
// @Summary      Supprimer un mouvement
// @Description  Défait l'effet de toutes les lignes puis supprime lignes et
// @Description  en-tête, dans une seule transaction.
// @Tags         stock
// @Security     Bearer
// @Success      204
// @Failure      400  {object}  dto.StatusResponse
// @Router       /api/stock/{id} [delete]
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.SupprimerMouvement(c.Context(), GetEntrepriseID(c), id); err != nil {
		return mapStockError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HistoriqueBoutique godoc
// @Summary      Historique des mouvements d'une boutique
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        page      query  int  false  "numéro de page (depuis 1)"
// @Param        pageSize  query  int  false  "taille de page (max 100)"
// @Success      200  {object}  dto.MouvementStockListResponse
// @Router       /api/stock/{boutiqueId} [get]
func (h *StockHandler) HistoriqueBoutique(c *fiber.Ctx) error {
	boutiqueID, err := paramID(c, "boutiqueId")
	if err != nil {
		return err
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "pagination invalide"})
	}
	out, err := h.query.HistoriqueBoutique(c.Context(), GetEntrepriseID(c), boutiqueID, page)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// HistoriqueModeleBoutique godoc
// @Summary      Historique des lignes d'un modèle boutique
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.LigneMouvementListResponse
// @Router       /api/stock/modeleBoutique/{id} [get]
func (h *StockHandler) HistoriqueModeleBoutique(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "pagination invalide"})
	}
	out, err := h.query.HistoriqueModeleBoutique(c.Context(), GetEntrepriseID(c), id, page)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Bon godoc
// @Summary      Bon de mouvement (PDF)
// @Tags         stock
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/mouvement/{id}/bon [get]
func (h *StockHandler) Bon(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	pdfBytes, err := h.bon.GenererBon(c.Context(), GetEntrepriseID(c), id)
	if err != nil {
		return mapDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="bon-mouvement-%d.pdf"`, id))
	return c.Send(pdfBytes)
}

// mapStockError traduit d'abord les erreurs métier du registre dans
// l'enveloppe historique, puis retombe sur la traduction standard.
func mapStockError(c *fiber.Ctx, err error) error {
	var insuffisant *domain.StockInsuffisantError
	if errors.As(err, &insuffisant) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.StatusResponse{Status: "ERROR", Message: insuffisant.Error()})
	}
	var introuvable *domain.ModeleBoutiqueIntrouvableError
	if errors.As(err, &introuvable) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.StatusResponse{Status: "ERROR", Message: introuvable.Error()})
	}
	return mapDomainError(c, err)
}

func toLigneInputs(lignes []dto.LigneMouvementRequest) []stock.LigneInput {
	out := make([]stock.LigneInput, 0, len(lignes))
	for _, l := range lignes {
		out = append(out, stock.LigneInput{ModeleBoutiqueID: l.ModeleBoutiqueID, Quantite: l.Quantite})
	}
	return out
}
