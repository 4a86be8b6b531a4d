package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mkonate/boutik-api/internal/application/dto"
	"github.com/mkonate/boutik-api/pkg/jwt"
)

// Clés Locals pour l'identité extraite du token.
const (
	LocalUserID       = "user_id"
	LocalEntrepriseID = "entreprise_id"
	LocalRole         = "role"
)

// AuthMiddleware valide le Bearer Token JWT et place UserID, EntrepriseID et
// Role dans c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header Authorization requis"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "format attendu: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vide"})
		}
		userID, entrepriseID, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token invalide ou expiré"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalEntrepriseID, entrepriseID)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// GetUserID renvoie l'ID utilisateur du contexte (après AuthMiddleware).
func GetUserID(c *fiber.Ctx) int64 {
	v := c.Locals(LocalUserID)
	if v == nil {
		return 0
	}
	id, _ := v.(int64)
	return id
}

// GetEntrepriseID renvoie l'ID entreprise du contexte (après AuthMiddleware).
func GetEntrepriseID(c *fiber.Ctx) int64 {
	v := c.Locals(LocalEntrepriseID)
	if v == nil {
		return 0
	}
	id, _ := v.(int64)
	return id
}

// GetRole renvoie le rôle du contexte (après AuthMiddleware).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// RequireRole n'autorise que les rôles listés. À utiliser APRÈS AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "rôle absent du token"})
		}
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rôle insuffisant pour cette opération"})
	}
}
