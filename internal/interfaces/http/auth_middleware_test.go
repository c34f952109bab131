package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	apphttp "github.com/jhoicas/backoffice-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/backoffice-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "backoffice-test"
	testExpMin    = 60
)

// guardedApp reproduce los guards del back-office sobre handlers vacíos:
// alta de usuarios solo admin, proveedores admin/manager, stock cualquier rol.
func guardedApp() *fiber.App {
	app := fiber.New()
	ok := func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": apphttp.GetUserID(c), "role": apphttp.GetRole(c)})
	}
	api := app.Group("/api", apphttp.AuthMiddleware(testJWTSecret))
	api.Post("/auth/register", apphttp.RequireRole(entity.RoleAdmin), ok)
	api.Post("/suppliers", apphttp.RequireRole(entity.RoleAdmin, entity.RoleManager), ok)
	api.Post("/stock-in", ok)
	return app
}

// tokenForRole genera un JWT con el rol indicado, listo para el header Authorization.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func call(t *testing.T, app *fiber.App, path, authHeader string) (*http.Response, dto.ErrorResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	var body dto.ErrorResponse
	if resp.StatusCode != http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	}
	return resp, body
}

// ──────────────────────────────────────────────────────────────────────────────
// Matriz de roles
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_MatrizBackoffice(t *testing.T) {
	app := guardedApp()
	cases := []struct {
		path string
		role string
		want int
	}{
		{"/api/auth/register", entity.RoleAdmin, http.StatusOK},
		{"/api/auth/register", entity.RoleManager, http.StatusForbidden},
		{"/api/auth/register", entity.RoleStaff, http.StatusForbidden},
		{"/api/suppliers", entity.RoleAdmin, http.StatusOK},
		{"/api/suppliers", entity.RoleManager, http.StatusOK},
		{"/api/suppliers", entity.RoleStaff, http.StatusForbidden},
		{"/api/suppliers", "cashier", http.StatusForbidden},
		{"/api/stock-in", entity.RoleStaff, http.StatusOK},
		{"/api/stock-in", entity.RoleManager, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.path+" "+tc.role, func(t *testing.T) {
			resp, body := call(t, app, tc.path, tokenForRole(t, tc.role))
			assert.Equal(t, tc.want, resp.StatusCode)
			if tc.want == http.StatusForbidden {
				assert.Equal(t, "FORBIDDEN", body.Code)
			}
		})
	}
}

func TestRequireRole_TokenSinRol(t *testing.T) {
	resp, body := call(t, guardedApp(), "/api/suppliers", tokenForRole(t, ""))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_ROLE", body.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_Rechazos(t *testing.T) {
	expired, err := pkgjwt.Generate(testJWTSecret, testUserID, entity.RoleAdmin, testIssuer, -1)
	require.NoError(t, err)
	foreign, err := pkgjwt.Generate("otro-secret", testUserID, entity.RoleAdmin, testIssuer, testExpMin)
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		code   string
	}{
		{"sin header", "", "MISSING_TOKEN"},
		{"sin esquema", "abc.def.ghi", "INVALID_TOKEN"},
		{"basic auth", "Basic dXNlcjpwYXNz", "INVALID_TOKEN"},
		{"malformado", "Bearer token.invalido.aqui", "INVALID_TOKEN"},
		{"expirado", "Bearer " + expired, "INVALID_TOKEN"},
		{"otro secret", "Bearer " + foreign, "INVALID_TOKEN"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := call(t, guardedApp(), "/api/stock-in", tc.header)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.Equal(t, tc.code, body.Code)
		})
	}
}

func TestAuthMiddleware_CargaClaimsEnLocals(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/stock-in", nil)
	req.Header.Set("Authorization", "bearer "+tokenForRole(t, entity.RoleManager)[len("Bearer "):])
	resp, err := guardedApp().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "el esquema no distingue mayúsculas")

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, entity.RoleManager, body["role"])
}

// ──────────────────────────────────────────────────────────────────────────────
// pkg/jwt
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, entity.RoleStaff, testIssuer, testExpMin)
	require.NoError(t, err)

	userID, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, entity.RoleStaff, role)
}
