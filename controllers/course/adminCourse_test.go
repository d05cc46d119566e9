package controllers

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestIsAdminRejectsNonAdminClaim(t *testing.T) {
	app := fiber.New()
	app.Get("/check", func(c *fiber.Ctx) error {
		c.Locals("userId", uint(7))
		c.Locals("role", "STUDENT")
		if _, ok := isAdmin(c); ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/check", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want %d: a STUDENT role claim must be rejected without a lookup", resp.StatusCode, fiber.StatusOK)
	}
}

func TestIsAdminRequiresUserID(t *testing.T) {
	app := fiber.New()
	app.Get("/check", func(c *fiber.Ctx) error {
		if _, ok := isAdmin(c); ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/check", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want %d: a missing user ID must be rejected", resp.StatusCode, fiber.StatusOK)
	}
}
