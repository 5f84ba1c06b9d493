package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-warehouse-stock/internal/model"
	"go-warehouse-stock/pkg/token"

	"github.com/gofiber/fiber/v2"
)

func newGuardedApp() *fiber.App {
	app := fiber.New()
	app.Get("/any", RequireAuth(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals("user_id")})
	})
	app.Delete("/admin-only", RequireAuth(), RequireRole(model.RoleAdmin), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "deleted"})
	})
	return app
}

func signedTokenFor(t *testing.T, role model.Role) string {
	t.Helper()
	user := &model.User{ID: 1, Username: "alice", Email: "alice@x.com", Role: role}
	signed, err := token.Generate(user)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return signed
}

func doRequest(t *testing.T, app *fiber.App, method, path, bearer string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	return resp
}

func TestRequireAuthMissingToken(t *testing.T) {
	app := newGuardedApp()
	resp := doRequest(t, app, http.MethodGet, "/any", "")
	if resp.StatusCode != 401 {
		t.Fatalf("expected 401 got %d", resp.StatusCode)
	}
}

func TestRequireAuthTamperedToken(t *testing.T) {
	app := newGuardedApp()
	resp := doRequest(t, app, http.MethodGet, "/any", signedTokenFor(t, model.RoleUser)+"x")
	if resp.StatusCode != 401 {
		t.Fatalf("expected 401 got %d", resp.StatusCode)
	}
}

func TestRequireAuthBadScheme(t *testing.T) {
	app := newGuardedApp()
	req := httptest.NewRequest(http.MethodGet, "/any", nil)
	req.Header.Set("Authorization", "Token "+signedTokenFor(t, model.RoleUser))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Fatalf("expected 401 got %d", resp.StatusCode)
	}
}

func TestRequireAuthValidToken(t *testing.T) {
	app := newGuardedApp()
	resp := doRequest(t, app, http.MethodGet, "/any", signedTokenFor(t, model.RoleUser))
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200 got %d", resp.StatusCode)
	}
}

func TestRequireRoleForbidden(t *testing.T) {
	app := newGuardedApp()
	resp := doRequest(t, app, http.MethodDelete, "/admin-only", signedTokenFor(t, model.RoleUser))
	if resp.StatusCode != 403 {
		t.Fatalf("expected 403 for role user got %d", resp.StatusCode)
	}
}

func TestRequireRoleAllowed(t *testing.T) {
	app := newGuardedApp()
	resp := doRequest(t, app, http.MethodDelete, "/admin-only", signedTokenFor(t, model.RoleAdmin))
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200 for role admin got %d", resp.StatusCode)
	}
}
