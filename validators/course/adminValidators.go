package courseValidator

import (
	"lms/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreateCourse validates the admin course creation payload
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title                      string  `json:"title"`
			Description                string  `json:"description"`
			Author                     string  `json:"author"`
			Duration                   int64   `json:"duration"`
			ThumbnailURL               string  `json:"thumbnail_url"`
			RequiredScore              float64 `json:"required_score"`
			WeightCourseContribution   float64 `json:"weight_course_contribution"`
			WeightQuizScore            float64 `json:"weight_quiz_score"`
			WeightAssignmentScore      float64 `json:"weight_assignment_score"`
			WeightFinalAssessmentScore float64 `json:"weight_final_assessment_score"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Title
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		// Validate Description
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		} else if len(strings.TrimSpace(reqData.Description)) < 5 {
			errors["description"] = "Description must be at least 5 characters long!"
		}

		// Validate scoring configuration
		if reqData.RequiredScore < 0 || reqData.RequiredScore > 100 {
			errors["required_score"] = "Required score must be between 0 and 100!"
		}
		if reqData.WeightCourseContribution < 0 || reqData.WeightCourseContribution > 1 {
			errors["weight_course_contribution"] = "Weight must be between 0 and 1!"
		}
		if reqData.WeightQuizScore < 0 || reqData.WeightQuizScore > 1 {
			errors["weight_quiz_score"] = "Weight must be between 0 and 1!"
		}
		if reqData.WeightAssignmentScore < 0 || reqData.WeightAssignmentScore > 1 {
			errors["weight_assignment_score"] = "Weight must be between 0 and 1!"
		}
		if reqData.WeightFinalAssessmentScore < 0 || reqData.WeightFinalAssessmentScore > 1 {
			errors["weight_final_assessment_score"] = "Weight must be between 0 and 1!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validates the admin course update payload
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(struct {
			Title                      string   `json:"title"`
			Description                string   `json:"description"`
			Author                     string   `json:"author"`
			Duration                   int64    `json:"duration"`
			ThumbnailURL               string   `json:"thumbnail_url"`
			Status                     string   `json:"status"`
			IsPublished                *bool    `json:"is_published"`
			RequiredScore              *float64 `json:"required_score"`
			WeightCourseContribution   *float64 `json:"weight_course_contribution"`
			WeightQuizScore            *float64 `json:"weight_quiz_score"`
			WeightAssignmentScore      *float64 `json:"weight_assignment_score"`
			WeightFinalAssessmentScore *float64 `json:"weight_final_assessment_score"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.RequiredScore != nil && (*reqData.RequiredScore < 0 || *reqData.RequiredScore > 100) {
			errors["required_score"] = "Required score must be between 0 and 100!"
		}

		weights := map[string]*float64{
			"weight_course_contribution":    reqData.WeightCourseContribution,
			"weight_quiz_score":             reqData.WeightQuizScore,
			"weight_assignment_score":       reqData.WeightAssignmentScore,
			"weight_final_assessment_score": reqData.WeightFinalAssessmentScore,
		}
		for field, w := range weights {
			if w != nil && (*w < 0 || *w > 1) {
				errors[field] = "Weight must be between 0 and 1!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// CourseIDOnly validates just the :id route parameter for admin course routes
func CourseIDOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// CreateModule validates the module creation payload
func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseIDParam(c, "course_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(struct {
			Title         string  `json:"title"`
			Description   string  `json:"description"`
			OrderIndex    int     `json:"order_index"`
			RequiredScore float64 `json:"required_score"`
			MaxAttempts   int     `json:"max_attempts"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		// Zero means "inherit from course"
		if reqData.RequiredScore < 0 || reqData.RequiredScore > 100 {
			errors["required_score"] = "Required score must be between 0 and 100!"
		}
		if reqData.MaxAttempts < 0 {
			errors["max_attempts"] = "Max attempts cannot be negative!"
		}
		if reqData.OrderIndex < 0 {
			errors["order_index"] = "Order index cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

// UpdateModule validates the module update payload
func UpdateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseIDParam(c, "course_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		moduleID, ok := parseIDParam(c, "module_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		reqData := new(struct {
			Title         string   `json:"title"`
			Description   string   `json:"description"`
			OrderIndex    int      `json:"order_index"`
			RequiredScore *float64 `json:"required_score"`
			MaxAttempts   int      `json:"max_attempts"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.RequiredScore != nil && (*reqData.RequiredScore < 0 || *reqData.RequiredScore > 100) {
			errors["required_score"] = "Required score must be between 0 and 100!"
		}
		if reqData.MaxAttempts < 0 {
			errors["max_attempts"] = "Max attempts cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("moduleID", moduleID)
		c.Locals("validatedModuleUpdate", reqData)
		return c.Next()
	}
}

// SetPrerequisites validates the prerequisite replacement payload
func SetPrerequisites() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseIDParam(c, "course_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		moduleID, ok := parseIDParam(c, "module_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		reqData := new(struct {
			RequiredModuleIDs []uint `json:"required_module_ids"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		// An empty list is valid: it clears all prerequisites
		for _, id := range reqData.RequiredModuleIDs {
			if id == 0 {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid prerequisite module ID!", nil)
			}
		}

		c.Locals("courseID", courseID)
		c.Locals("moduleID", moduleID)
		c.Locals("validatedPrerequisites", reqData)
		return c.Next()
	}
}

// GrantRetake validates the :progress_id route parameter
func GrantRetake() fiber.Handler {
	return func(c *fiber.Ctx) error {
		progressID, ok := parseIDParam(c, "progress_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Progress ID!", nil)
		}

		c.Locals("progressID", progressID)
		return c.Next()
	}
}

// CreateLesson validates the lesson creation payload
func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseIDParam(c, "course_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		moduleID, ok := parseIDParam(c, "module_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		reqData := new(struct {
			Title       string  `json:"title"`
			Description string  `json:"description"`
			ContentType string  `json:"content_type"`
			TextContent string  `json:"text_content"`
			VideoURL    string  `json:"video_url"`
			OrderIndex  int     `json:"order_index"`
			MinScore    float64 `json:"min_score"`
			IsPublished bool    `json:"is_published"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}

		if reqData.ContentType == "" {
			reqData.ContentType = "TEXT"
		}
		if reqData.ContentType != "TEXT" && reqData.ContentType != "VIDEO" {
			errors["content_type"] = "Content type must be TEXT or VIDEO!"
		}
		if reqData.ContentType == "VIDEO" && strings.TrimSpace(reqData.VideoURL) == "" {
			errors["video_url"] = "Video URL is required for video lessons!"
		}

		if reqData.MinScore < 0 || reqData.MinScore > 100 {
			errors["min_score"] = "Min score must be between 0 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("moduleID", moduleID)
		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

// UpdateLesson validates the lesson update payload
func UpdateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lessonID, ok := parseIDParam(c, "lesson_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Lesson ID!", nil)
		}

		reqData := new(struct {
			Title       string   `json:"title"`
			Description string   `json:"description"`
			TextContent string   `json:"text_content"`
			VideoURL    string   `json:"video_url"`
			OrderIndex  int      `json:"order_index"`
			MinScore    *float64 `json:"min_score"`
			IsPublished *bool    `json:"is_published"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.MinScore != nil && (*reqData.MinScore < 0 || *reqData.MinScore > 100) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"min_score": "Min score must be between 0 and 100!",
			})
		}

		c.Locals("lessonID", lessonID)
		c.Locals("validatedLessonUpdate", reqData)
		return c.Next()
	}
}

// CreateQuiz validates the quiz creation payload
func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseIDParam(c, "course_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		moduleID, ok := parseIDParam(c, "module_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		reqData := new(struct {
			Title       string `json:"title"`
			Question    string `json:"question"`
			Kind        string `json:"kind"`
			OrderIndex  int    `json:"order_index"`
			IsPublished bool   `json:"is_published"`
			Options     []struct {
				OptionText string `json:"option_text"`
				IsCorrect  bool   `json:"is_correct"`
			} `json:"options"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Question) == "" {
			errors["question"] = "Question is required!"
		}

		if reqData.Kind == "" {
			reqData.Kind = "QUIZ"
		}
		if reqData.Kind != "QUIZ" && reqData.Kind != "FINAL" {
			errors["kind"] = "Kind must be QUIZ or FINAL!"
		}

		if len(reqData.Options) < 2 {
			errors["options"] = "At least two options are required!"
		} else {
			hasCorrect := false
			for _, opt := range reqData.Options {
				if strings.TrimSpace(opt.OptionText) == "" {
					errors["options"] = "Option text cannot be empty!"
					break
				}
				if opt.IsCorrect {
					hasCorrect = true
				}
			}
			if _, exists := errors["options"]; !exists && !hasCorrect {
				errors["options"] = "At least one option must be correct!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("moduleID", moduleID)
		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}

// CreateAssignment validates the assignment creation payload
func CreateAssignment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseIDParam(c, "course_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		moduleID, ok := parseIDParam(c, "module_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			OrderIndex  int    `json:"order_index"`
			IsPublished bool   `json:"is_published"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("moduleID", moduleID)
		c.Locals("validatedAssignment", reqData)
		return c.Next()
	}
}

// GradeSubmission validates the grading payload
func GradeSubmission() fiber.Handler {
	return func(c *fiber.Ctx) error {
		submissionID, ok := parseIDParam(c, "submission_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Submission ID!", nil)
		}

		reqData := new(struct {
			Score float64 `json:"score"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Score < 0 || reqData.Score > 100 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"score": "Score must be between 0 and 100!",
			})
		}

		c.Locals("submissionID", submissionID)
		c.Locals("validatedGrade", reqData)
		return c.Next()
	}
}

// EnrollmentQuery validates the admin enrollment listing query
func EnrollmentQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseIDParam(c, "course_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(struct {
			Page   *int   `query:"page"`
			Limit  *int   `query:"limit"`
			Status string `query:"status"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		if reqData.Status != "" && reqData.Status != "ENROLLED" && reqData.Status != "IN_PROGRESS" && reqData.Status != "COMPLETED" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be ENROLLED, IN_PROGRESS or COMPLETED!",
			})
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedEnrollmentQuery", reqData)
		return c.Next()
	}
}

// CertificateRequestParam validates the :request_id route parameter
func CertificateRequestParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID, ok := parseIDParam(c, "request_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Request ID!", nil)
		}

		c.Locals("requestID", requestID)
		return c.Next()
	}
}
