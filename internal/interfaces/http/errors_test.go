package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkonate/boutik-api/internal/application/dto"
	"github.com/mkonate/boutik-api/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Traduction des erreurs domaine → HTTP
// ──────────────────────────────────────────────────────────────────────────────

func appAvecErreur(err error) *fiber.App {
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return mapDomainError(c, err)
	})
	return app
}

func reponsePour(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()
	app := appAvecErreur(err)
	resp, errTest := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, errTest)
	defer resp.Body.Close()

	body, errTest := io.ReadAll(resp.Body)
	require.NoError(t, errTest)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return resp.StatusCode, out
}

func TestMapDomainError_Sentinelles(t *testing.T) {
	cas := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
		{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
		{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
		{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
		{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
		{domain.ErrAbonnementExpire, fiber.StatusForbidden, "ABONNEMENT_EXPIRE"},
		{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	}
	for _, c := range cas {
		status, body := reponsePour(t, c.err)
		assert.Equal(t, c.status, status)
		assert.Equal(t, c.code, body.Code)
	}
}

func TestMapDomainError_ErreurInconnue_MasqueLeDetail(t *testing.T) {
	// Une erreur technique (driver, réseau...) ne doit jamais fuiter vers le
	// client : message générique, détail côté serveur uniquement.
	status, body := reponsePour(t, errors.New("pgx: connexion refusée sur 10.0.0.12:5432"))

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL", body.Code)
	assert.Equal(t, "erreur interne", body.Message)
	assert.NotContains(t, body.Message, "pgx")
	assert.NotContains(t, body.Message, "10.0.0.12")
}
