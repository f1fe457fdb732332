// Package middleware - Test middleware xác thực từ chối request không có token hợp lệ.
package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/AdityaSinghRajawat/VideoVault-server/config"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/common"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/global"
)

func newProtectedApp() *fiber.App {
	app := fiber.New()
	am := &AuthManager{}
	grp := app.Group("/protected")
	grp.Use(am.AuthRequired())
	grp.Get("/", func(c fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestAuthRequired_ThieuToken(t *testing.T) {
	app := newProtectedApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test lỗi: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != common.StatusUnauthorized {
		t.Errorf("status = %d, mong đợi %d", resp.StatusCode, common.StatusUnauthorized)
	}

	var envelope struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("không decode được envelope: %v", err)
	}
	if envelope.Success {
		t.Error("envelope lỗi phải có success = false")
	}
}

func TestAuthRequired_TokenRac(t *testing.T) {
	global.ServerConfig = &config.Configuration{
		AccessTokenSecret:  "test-access-secret",
		AccessTokenExpiry:  3600,
		RefreshTokenSecret: "test-refresh-secret",
		RefreshTokenExpiry: 86400,
	}
	app := newProtectedApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test lỗi: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != common.StatusUnauthorized {
		t.Errorf("status = %d, mong đợi %d", resp.StatusCode, common.StatusUnauthorized)
	}
}
