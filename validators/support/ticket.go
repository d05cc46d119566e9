package supportValidators

import (
	"lms/middleware"
	"regexp"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func CreateSupportTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Subject  string  `json:"subject"`
			Message  string  `json:"message"`
			Priority *string `json:"priority"`
			Category *string `json:"category"`
			CourseID *uint   `json:"course_id"`
			ModuleID *uint   `json:"module_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Subject validation
		reqData.Subject = strings.TrimSpace(reqData.Subject)
		if reqData.Subject == "" {
			errors["subject"] = "Subject is required!"
		} else {
			if len(reqData.Subject) < 3 {
				errors["subject"] = "Subject must be at least 3 characters long!"
			}
			if len(reqData.Subject) > 200 {
				errors["subject"] = "Subject must not exceed 200 characters!"
			}
			if matched, _ := regexp.MatchString(`[<>{}]`, reqData.Subject); matched {
				errors["subject"] = "Subject contains invalid characters (e.g., <, >, {, })!"
			}
		}

		reqData.Message = strings.TrimSpace(reqData.Message)
		if reqData.Message == "" {
			errors["message"] = "message is required!"
		}

		validPriority := map[string]bool{"LOW": true, "MEDIUM": true, "HIGH": true}
		validCategory := map[string]bool{"GENERAL": true, "CONTENT": true, "GRADING": true, "RETAKE": true, "CERTIFICATE": true}

		if reqData.Priority != nil && !validPriority[strings.ToUpper(*reqData.Priority)] {
			errors["priority"] = "Invalid priority! Allowed: LOW, MEDIUM, HIGH"
		}
		if reqData.Category != nil && !validCategory[strings.ToUpper(*reqData.Category)] {
			errors["category"] = "Invalid category! Allowed: GENERAL, CONTENT, GRADING, RETAKE, CERTIFICATE"
		}

		// A module reference only makes sense inside a course
		if reqData.ModuleID != nil && reqData.CourseID == nil {
			errors["course_id"] = "Course ID is required when a module is referenced!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		// Store enum values in their canonical uppercase form
		if reqData.Priority != nil {
			*reqData.Priority = strings.ToUpper(*reqData.Priority)
		}
		if reqData.Category != nil {
			*reqData.Category = strings.ToUpper(*reqData.Category)
		}

		c.Locals("validatedSupportTicket", reqData)
		return c.Next()
	}
}

func TicketList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `query:"page"`
			Limit *int `query:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit != nil && *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}

func AdminTicketList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page     *int    `query:"page"`
			Limit    *int    `query:"limit"`
			Status   *string `query:"status"`
			Priority *string `query:"priority"`
			Category *string `query:"category"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid query parameters!",
				"errors":  nil,
			})
		}

		errors := make(map[string]string)

		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit != nil && *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		// Validate optional enums
		validStatus := map[string]bool{"OPEN": true, "ANSWERED": true, "CLOSED": true}
		validPriority := map[string]bool{"LOW": true, "MEDIUM": true, "HIGH": true}
		validCategory := map[string]bool{"GENERAL": true, "CONTENT": true, "GRADING": true, "RETAKE": true, "CERTIFICATE": true}

		if reqData.Status != nil && !validStatus[strings.ToUpper(*reqData.Status)] {
			errors["status"] = "Invalid status! Must be one of: OPEN, ANSWERED, CLOSED."
		}
		if reqData.Priority != nil && !validPriority[strings.ToUpper(*reqData.Priority)] {
			errors["priority"] = "Invalid priority! Must be one of: LOW, MEDIUM, HIGH."
		}
		if reqData.Category != nil && !validCategory[strings.ToUpper(*reqData.Category)] {
			errors["category"] = "Invalid category! Must be one of: GENERAL, CONTENT, GRADING, RETAKE, CERTIFICATE."
		}

		if len(errors) > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Validation failed!",
				"errors":  errors,
			})
		}

		c.Locals("validatedAdminList", reqData)
		return c.Next()
	}
}

func TicketIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params("ticket_id"))
		ticketID, err := strconv.Atoi(raw)
		if err != nil || ticketID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Ticket ID!", nil)
		}

		c.Locals("ticketID", ticketID)
		return c.Next()
	}
}
