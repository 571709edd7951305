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

	"github.com/tu-usuario/user-directory/internal/application/auth"
	"github.com/tu-usuario/user-directory/internal/domain/entity"
	apphttp "github.com/tu-usuario/user-directory/internal/interfaces/http"
	"github.com/tu-usuario/user-directory/internal/testutil"
	"github.com/tu-usuario/user-directory/pkg/secrets"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp construye una aplicación Fiber mínima con:
//   - TokenMiddleware para resolver el x-api-token contra el repo en memoria
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(t *testing.T, allowedRoles ...string) (*fiber.App, *testutil.MemoryUserRepo) {
	t.Helper()
	repo := testutil.NewMemoryUserRepo()
	authUC := auth.NewAuthUseCase(repo)

	app := fiber.New()
	app.Get("/protected",
		apphttp.TokenMiddleware(authUC),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app, repo
}

// tokenForRole siembra un usuario con el rol indicado y devuelve un token vigente.
func tokenForRole(t *testing.T, repo *testutil.MemoryUserRepo, username, role string) string {
	t.Helper()
	hash, err := secrets.HashPassword("pw-" + username)
	require.NoError(t, err)
	_, err = repo.Create(&entity.User{Username: username, PasswordHash: hash, Role: role})
	require.NoError(t, err)

	token, err := auth.NewAuthUseCase(repo).Authenticate(username, "pw-"+username)
	require.NoError(t, err)
	return token
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set(apphttp.HeaderAPIToken, token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests TokenMiddleware + RequireRole
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: el token resuelve a un rol permitido → HTTP 200.
func TestTokenMiddleware_AdminAccedeRutaAdmin(t *testing.T) {
	app, repo := buildTestApp(t, entity.RoleAdmin, entity.RoleSuperadmin)
	resp := doRequest(t, app, tokenForRole(t, repo, "ana", entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin debe poder acceder a ruta restringida a admin/superadmin")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, entity.RoleAdmin, body["role"])
}

// Caso 2: rol insuficiente → HTTP 403 FORBIDDEN.
func TestTokenMiddleware_UserBloqueadoEnRutaAdmin(t *testing.T) {
	app, repo := buildTestApp(t, entity.RoleAdmin, entity.RoleSuperadmin)
	resp := doRequest(t, app, tokenForRole(t, repo, "bob", entity.RoleUser))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"user no debe poder acceder a ruta restringida a admin")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

// Caso 3: sin header x-api-token → HTTP 401 MISSING_TOKEN.
func TestTokenMiddleware_SinHeader_Retorna401(t *testing.T) {
	app, _ := buildTestApp(t, entity.RoleAdmin)
	resp := doRequest(t, app, "") // sin header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Caso 4: token que no resuelve a ningún usuario → HTTP 403 INVALID_TOKEN.
func TestTokenMiddleware_TokenDesconocido_Retorna403(t *testing.T) {
	app, _ := buildTestApp(t, entity.RoleAdmin)
	resp := doRequest(t, app, "token-inventado-que-nadie-tiene1")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// Caso 5: el token queda invalidado cuando el usuario vuelve a autenticarse.
func TestTokenMiddleware_TokenRotadoPierdeAcceso(t *testing.T) {
	app, repo := buildTestApp(t, entity.RoleAdmin)
	old := tokenForRole(t, repo, "ana", entity.RoleAdmin)

	// segunda autenticación: emite token nuevo y pisa el anterior
	_, err := auth.NewAuthUseCase(repo).Authenticate("ana", "pw-ana")
	require.NoError(t, err)

	resp := doRequest(t, app, old)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"un token reemplazado no debe seguir resolviendo")
}
