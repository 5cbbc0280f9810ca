package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/miscanchas/canchas-api/utils"
)

func protectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/privado", Protected(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"userID": c.Locals("userID"),
			"rol":    c.Locals("rol"),
		})
	})
	app.Get("/solo-admin", Protected(), RequireRol("admin"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestProtected(t *testing.T) {
	app := protectedApp()

	validToken, err := utils.GenerateToken(7, "cliente@mail.com", "cliente")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{
			name:       "missing header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed token",
			authHeader: "Bearer esto.no.es-un-jwt",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "tampered token",
			authHeader: "Bearer " + validToken[:len(validToken)-4] + "AAAA",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "valid token",
			authHeader: "Bearer " + validToken,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/privado", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestRequireRol(t *testing.T) {
	app := protectedApp()

	adminToken, err := utils.GenerateToken(1, "admin@mail.com", "admin")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	clienteToken, err := utils.GenerateToken(2, "cliente@mail.com", "cliente")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	tests := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{name: "admin passes", token: adminToken, wantStatus: http.StatusOK},
		{name: "cliente rejected", token: clienteToken, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/solo-admin", nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}
