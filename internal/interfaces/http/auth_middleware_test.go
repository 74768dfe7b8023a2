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

	"github.com/invorya/inventario-core/internal/domain/authz"
	apphttp "github.com/invorya/inventario-core/internal/interfaces/http"
	pkgjwt "github.com/invorya/inventario-core/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "inventario-core-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequireLevel para autorizar por nivel de rol
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(required authz.Level) *fiber.App {
	app := fiber.New(fiber.Config{
		// Silenciar errores internos en los tests
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireLevel(required),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenFor genera un JWT con el rol y flag de superuser indicados.
func tokenFor(t *testing.T, role string, superuser bool) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, superuser, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
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
// Tests RequireLevel
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: El usuario tiene exactamente el nivel requerido → HTTP 200.
func TestRequireLevel_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp(authz.LevelAdmin)
	resp := doRequest(t, app, tokenFor(t, "admin", false))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin debe poder acceder a ruta restringida a admin")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "la respuesta debe incluir ok:true")
	assert.Equal(t, "admin", body["role"], "el role debe ser admin")
}

// Caso 1b: Un nivel superior satisface un requisito inferior → HTTP 200.
func TestRequireLevel_AdminAccedeRutaManager(t *testing.T) {
	app := buildTestApp(authz.LevelManager)
	resp := doRequest(t, app, tokenFor(t, "admin", false))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin debe poder acceder a ruta de nivel manager")
}

// Caso 2: Nivel insuficiente → HTTP 403 Forbidden.
func TestRequireLevel_StaffBloqueadoEnRutaAdmin(t *testing.T) {
	app := buildTestApp(authz.LevelAdmin)
	resp := doRequest(t, app, tokenFor(t, "staff", false))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"staff no debe poder acceder a ruta restringida a admin")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la respuesta de error debe incluir el código FORBIDDEN")
}

// Caso 2b: manager bloqueado en ruta solo admin → HTTP 403.
func TestRequireLevel_ManagerBloqueadoEnRutaAdmin(t *testing.T) {
	app := buildTestApp(authz.LevelAdmin)
	resp := doRequest(t, app, tokenFor(t, "manager", false))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Caso 3: Superuser pasa cualquier nivel, incluso con rol staff.
func TestRequireLevel_SuperuserPasaSiempre(t *testing.T) {
	app := buildTestApp(authz.LevelAdmin)
	resp := doRequest(t, app, tokenFor(t, "staff", true))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"superuser debe pasar cualquier nivel sin importar el rol")
}

// Caso 4: Rol desconocido no pasa ningún nivel → HTTP 403.
func TestRequireLevel_RolDesconocidoBloqueado(t *testing.T) {
	app := buildTestApp(authz.LevelStaff)
	resp := doRequest(t, app, tokenFor(t, "intern", false))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"un rol desconocido no debe pasar ni el nivel más bajo")
}

// Caso 5: Token sin claim de rol (rol vacío, no superuser) → HTTP 401.
func TestRequireLevel_TokenSinRol_Retorna401(t *testing.T) {
	app := buildTestApp(authz.LevelStaff)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "", false, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"token sin rol debe retornar 401")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE",
		"la respuesta debe indicar el código MISSING_ROLE")
}

// Caso 6: Sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestRequireLevel_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(authz.LevelStaff)
	resp := doRequest(t, app, "") // sin header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 7: Token inválido / malformado → HTTP 401 INVALID_TOKEN.
func TestRequireLevel_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(authz.LevelStaff)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":   apphttp.GetUserID(c),
			"role":      apphttp.GetRole(c),
			"superuser": apphttp.GetSuperuser(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenFor(t, "manager", true))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "manager", body["role"])
	assert.Equal(t, true, body["superuser"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse con role y superuser
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "staff", true, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, superuser, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, "staff", role)
	assert.True(t, superuser)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", false, testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", false, testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
