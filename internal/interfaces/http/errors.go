package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/mkonate/boutik-api/internal/application/dto"
	"github.com/mkonate/boutik-api/internal/domain"
)

// paramID lit un paramètre de route numérique ( :id, :boutiqueId, ...).
func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "identifiant invalide")
	}
	return id, nil
}

// mapDomainError traduit les erreurs sentinelles du domaine en réponses HTTP.
// Les handlers avec un contrat d'erreur spécifique (stock) font leur propre
// traduction avant d'appeler celle-ci.
func mapDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "données invalides"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ressource introuvable"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "accès refusé à la ressource"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "la ressource existe déjà"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "opération en conflit avec l'état courant"})
	case errors.Is(err, domain.ErrAbonnementExpire):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ABONNEMENT_EXPIRE", Message: "aucun abonnement actif"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "non autorisé"})
	default:
		// Le détail reste côté serveur, le client reçoit un message générique.
		log.Error().Err(err).Str("path", c.Path()).Msg("erreur interne")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erreur interne"})
	}
}
