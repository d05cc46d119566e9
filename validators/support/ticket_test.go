package supportValidators

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestCreateSupportTicketNormalizesEnums(t *testing.T) {
	app := fiber.New()
	app.Post("/ticket", CreateSupportTicket(), func(c *fiber.Ctx) error {
		reqData := c.Locals("validatedSupportTicket").(*struct {
			Subject  string  `json:"subject"`
			Message  string  `json:"message"`
			Priority *string `json:"priority"`
			Category *string `json:"category"`
			CourseID *uint   `json:"course_id"`
			ModuleID *uint   `json:"module_id"`
		})
		return c.JSON(fiber.Map{
			"priority": reqData.Priority,
			"category": reqData.Category,
		})
	})

	body := bytes.NewBufferString(`{"subject":"Grading question","message":"Please re-check my quiz.","priority":"low","category":"grading"}`)
	req := httptest.NewRequest("POST", "/ticket", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading response: %v", err)
	}
	var got struct {
		Priority string `json:"priority"`
		Category string `json:"category"`
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	if got.Priority != "LOW" {
		t.Errorf("priority = %q, want the canonical uppercase LOW", got.Priority)
	}
	if got.Category != "GRADING" {
		t.Errorf("category = %q, want the canonical uppercase GRADING", got.Category)
	}
}

func TestCreateSupportTicketRejectsUnknownCategory(t *testing.T) {
	app := fiber.New()
	app.Post("/ticket", CreateSupportTicket(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	body := bytes.NewBufferString(`{"subject":"Question","message":"hi","category":"TRADING"}`)
	req := httptest.NewRequest("POST", "/ticket", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Errorf("status = %d, want %d for an unknown category", resp.StatusCode, fiber.StatusUnprocessableEntity)
	}
}
