package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/progression"
	"time"

	"github.com/gofiber/fiber/v2"
)

// GetModuleLessons lists the lessons of a module. Students with preview access
// (prerequisites met but requirements not) see titles only, without content.
func GetModuleLessons(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)
	moduleID := c.Locals("moduleID").(int)

	// Check enrollment
	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var module courseModels.Module
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", moduleID, courseID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	prog, err := ensureModuleProgress(userID, module)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load module progress!", nil)
	}

	previewOnly := false
	if prog.Status == progression.StatusLocked {
		// A locked module may still be previewable when prerequisites are met
		report := progression.Evaluate(buildEvalInput(userID, course, module, prog))
		if !report.CanPreview {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Module is locked! Complete its prerequisites first.", nil)
		}
		previewOnly = true
	}

	var lessons []courseModels.Lesson
	if err := database.Database.Db.Where("module_id = ? AND is_deleted = ? AND is_published = ?", moduleID, false, true).
		Order("order_index asc").Find(&lessons).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	type LessonWithProgress struct {
		courseModels.Lesson
		Passed bool    `json:"passed"`
		Score  float64 `json:"score"`
	}

	result := make([]LessonWithProgress, len(lessons))
	for i, lesson := range lessons {
		if previewOnly {
			// Read-only tier: strip the content bodies
			lesson.TextContent = ""
			lesson.VideoURL = ""
		}
		result[i] = LessonWithProgress{Lesson: lesson}

		var lp courseModels.LessonProgress
		if err := database.Database.Db.Where("user_id = ? AND lesson_id = ? AND is_deleted = ?", userID, lesson.ID, false).First(&lp).Error; err == nil {
			result[i].Passed = lp.Passed
			result[i].Score = lp.Score
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", fiber.Map{
		"module":       module,
		"lessons":      result,
		"preview_only": previewOnly,
	})
}

// CompleteLesson records a lesson completion with an optional score
func CompleteLesson(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)
	moduleID := c.Locals("moduleID").(int)
	lessonID := c.Locals("lessonID").(int)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	var module courseModels.Module
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", moduleID, courseID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("id = ? AND module_id = ? AND is_deleted = ? AND is_published = ?", lessonID, moduleID, false, true).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	prog, err := ensureModuleProgress(userID, module)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load module progress!", nil)
	}

	if !progression.CanStart(prog.Status) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Module is not available for graded work!", nil)
	}

	reqData := new(struct {
		Score float64 `json:"score"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	passed := true
	if lesson.MinScore > 0 {
		passed = reqData.Score >= lesson.MinScore
	}

	now := time.Now()
	var lp courseModels.LessonProgress
	if err := database.Database.Db.Where("user_id = ? AND lesson_id = ? AND is_deleted = ?", userID, lessonID, false).First(&lp).Error; err == nil {
		// Keep the best result across repeat completions
		if reqData.Score > lp.Score || (passed && !lp.Passed) {
			lp.Score = reqData.Score
			lp.Passed = lp.Passed || passed
			lp.CompletedAt = &now
			database.Database.Db.Save(&lp)
		}
	} else {
		lp = courseModels.LessonProgress{
			UserID:      userID,
			LessonID:    uint(lessonID),
			ModuleID:    uint(moduleID),
			Score:       reqData.Score,
			Passed:      passed,
			CompletedAt: &now,
		}
		if err := database.Database.Db.Create(&lp).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record lesson progress!", nil)
		}
	}

	// First recorded activity moves the module to IN_PROGRESS
	if prog.Status == progression.StatusUnlocked {
		prog.Status = progression.StatusInProgress
		if prog.StartedAt == nil {
			prog.StartedAt = &now
		}
		database.Database.Db.Save(&prog)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson progress recorded!", fiber.Map{
		"lesson_progress": lp,
		"passed":          passed,
		"module_status":   prog.Status,
	})
}
