package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/mkonate/boutik-api/internal/interfaces/http"
	pkgjwt "github.com/mkonate/boutik-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret    = "test-secret-key-for-unit-tests"
	testUserID       = int64(101)
	testEntrepriseID = int64(202)
	testIssuer       = "boutik-api-test"
	testExpMin       = 60
)

// buildTestApp construit une application Fiber minimale avec :
//   - AuthMiddleware pour parser le JWT et remplir les locals
//   - RequireRole pour autoriser l'accès
//   - Un handler factice qui renvoie 200 si les middlewares passent
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New(fiber.Config{
		// Silencier les erreurs internes dans les tests
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	// Route protégée : JWT + RBAC
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenForRole génère un JWT avec le rôle indiqué.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEntrepriseID, role, testIssuer, testExpMin)
	require.NoError(t, err, "un token JWT valide doit pouvoir être généré")
	return "Bearer " + tok
}

// doRequest lance une requête GET /protected et renvoie la réponse.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

// Cas 1 : l'utilisateur a le rôle requis → doit passer (HTTP 200).
func TestRequireRole_AdminAccedeRouteAdmin(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin doit pouvoir accéder à une route restreinte aux admins")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "la réponse doit inclure ok:true")
	assert.Equal(t, "admin", body["role"], "le rôle doit être admin")
}

// Cas 1b : l'utilisateur a l'un des rôles permis (multi-rôle) → HTTP 200.
func TestRequireRole_GerantAccedeRouteAdminOuGerant(t *testing.T) {
	app := buildTestApp("admin", "gerant")
	resp := doRequest(t, app, tokenForRole(t, "gerant"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"gerant doit pouvoir accéder à une route qui permet admin ou gerant")
}

// Cas 2 : l'utilisateur a un rôle différent du rôle requis → HTTP 403 Forbidden.
func TestRequireRole_VendeurBloqueSurRouteAdmin(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenForRole(t, "vendeur"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"vendeur ne doit pas pouvoir accéder à une route restreinte aux admins")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la réponse d'erreur doit inclure le code FORBIDDEN")
}

// Cas 2b : rôle gerant bloqué sur une route réservée aux vendeurs → HTTP 403.
func TestRequireRole_GerantBloqueSurRouteVendeur(t *testing.T) {
	app := buildTestApp("vendeur")
	resp := doRequest(t, app, tokenForRole(t, "gerant"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Cas 3 : token sans claim de rôle (émulé avec un rôle vide) → HTTP 401.
func TestRequireRole_TokenSansRole_Renvoie401(t *testing.T) {
	// Token avec rôle vide pour simuler un token legacy sans le claim.
	app := buildTestApp("admin")
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEntrepriseID, "", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"un token sans rôle doit renvoyer 401")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE",
		"la réponse doit indiquer le code MISSING_ROLE")
}

// Cas 4 : sans header Authorization → HTTP 401 MISSING_TOKEN.
func TestRequireRole_SansAuthHeader_Renvoie401(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "") // sans header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Cas 5 : token invalide / malformé → HTTP 401 INVALID_TOKEN.
func TestRequireRole_TokenInvalide_Renvoie401(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "Bearer token.invalide.ici")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extraction des claims du token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraitClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":       apphttp.GetUserID(c),
			"entreprise_id": apphttp.GetEntrepriseID(c),
			"role":          apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForRole(t, "admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		UserID       int64  `json:"user_id"`
		EntrepriseID int64  `json:"entreprise_id"`
		Role         string `json:"role"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body.UserID)
	assert.Equal(t, testEntrepriseID, body.EntrepriseID)
	assert.Equal(t, "admin", body.Role)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests pkg jwt — intégrité du generate/parse avec rôle
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateEtParse_AvecRole(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEntrepriseID, "gerant", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, entrepriseID, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testEntrepriseID, entrepriseID)
	assert.Equal(t, "gerant", role)
}

func TestJWT_TokenExpire_RenvoieErreur(t *testing.T) {
	// Token avec expiration -1 minute (déjà expiré)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEntrepriseID, "admin", testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "un token expiré doit renvoyer une erreur")
}

func TestJWT_MauvaisSecret_RenvoieErreur(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEntrepriseID, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("un-autre-secret-complement-different", tok)
	assert.Error(t, err, "un mauvais secret doit invalider le token")
}
