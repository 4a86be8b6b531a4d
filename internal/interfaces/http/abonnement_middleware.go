package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/mkonate/boutik-api/internal/application/dto"
)

// abonnementChecker est le contrat minimal du middleware de garde. Implémenté
// par le repository des abonnements ; l'interface évite l'import circulaire.
type abonnementChecker interface {
	HasActif(ctx context.Context, entrepriseID int64) (bool, error)
}

// RequireAbonnement renvoie un middleware Fiber qui vérifie que l'entreprise
// du token a un abonnement actif et non échu. À utiliser APRÈS AuthMiddleware
// (il lui faut LocalEntrepriseID).
//
// Comportement :
//   - 403 Forbidden → pas d'abonnement actif ou abonnement échu.
//   - 503 Service Unavailable → échec d'infrastructure lors de la vérification.
//   - 401 si entreprise_id est absent du contexte.
func RequireAbonnement(checker abonnementChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		entrepriseID := GetEntrepriseID(c)
		if entrepriseID == 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "entreprise_id absent du token",
			})
		}

		actif, err := checker.HasActif(c.Context(), entrepriseID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "ABONNEMENT_CHECK_FAILED",
				Message: "vérification de l'abonnement impossible, réessayez plus tard",
			})
		}

		if !actif {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "ABONNEMENT_EXPIRE",
				Message: "aucun abonnement actif pour cette entreprise",
			})
		}

		return c.Next()
	}
}
