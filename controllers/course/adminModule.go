package controllers

import (
	"lms/config"
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	"lms/progression"

	"github.com/gofiber/fiber/v2"
)

// moduleMaxAttempts resolves the attempt budget for a new module, falling back
// to the configured deployment default when none is supplied
func moduleMaxAttempts(requested int) int {
	if requested > 0 {
		return requested
	}
	return config.AppConfig.DefaultMaxAttempts
}

// AdminCreateModule creates a new module in a course
func AdminCreateModule(c *fiber.Ctx) error {
	_, ok := isAdmin(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	courseID := c.Locals("courseID").(int)

	// Check if course exists
	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedModule").(*struct {
		Title         string  `json:"title"`
		Description   string  `json:"description"`
		OrderIndex    int     `json:"order_index"`
		RequiredScore float64 `json:"required_score"`
		MaxAttempts   int     `json:"max_attempts"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Get the next order index if not provided
	orderIndex := reqData.OrderIndex
	if orderIndex == 0 {
		var maxOrder int
		database.Database.Db.Model(&courseModels.Module{}).Where("course_id = ? AND is_deleted = ?", courseID, false).Select("COALESCE(MAX(order_index), 0)").Scan(&maxOrder)
		orderIndex = maxOrder + 1
	}

	maxAttempts := moduleMaxAttempts(reqData.MaxAttempts)

	module := courseModels.Module{
		CourseID:      uint(courseID),
		Title:         reqData.Title,
		Description:   reqData.Description,
		OrderIndex:    orderIndex,
		RequiredScore: reqData.RequiredScore,
		MaxAttempts:   maxAttempts,
	}

	if err := database.Database.Db.Create(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", module)
}

// AdminUpdateModule updates an existing module
func AdminUpdateModule(c *fiber.Ctx) error {
	_, ok := isAdmin(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	courseID := c.Locals("courseID").(int)
	moduleID := c.Locals("moduleID").(int)

	var module courseModels.Module
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", moduleID, courseID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	reqData, ok := c.Locals("validatedModuleUpdate").(*struct {
		Title         string   `json:"title"`
		Description   string   `json:"description"`
		OrderIndex    int      `json:"order_index"`
		RequiredScore *float64 `json:"required_score"`
		MaxAttempts   int      `json:"max_attempts"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		module.Title = reqData.Title
	}
	if reqData.Description != "" {
		module.Description = reqData.Description
	}
	if reqData.OrderIndex > 0 {
		module.OrderIndex = reqData.OrderIndex
	}
	if reqData.RequiredScore != nil {
		module.RequiredScore = *reqData.RequiredScore
	}
	if reqData.MaxAttempts > 0 {
		module.MaxAttempts = reqData.MaxAttempts
	}

	if err := database.Database.Db.Save(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully!", module)
}

// AdminDeleteModule soft deletes a module and its contents
func AdminDeleteModule(c *fiber.Ctx) error {
	_, ok := isAdmin(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	courseID := c.Locals("courseID").(int)
	moduleID := c.Locals("moduleID").(int)

	var module courseModels.Module
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", moduleID, courseID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	tx := database.Database.Db.Begin()

	module.IsDeleted = true
	if err := tx.Save(&module).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module!", nil)
	}

	// Soft delete all contents and prerequisite links in this module
	if err := tx.Model(&courseModels.Lesson{}).Where("module_id = ?", moduleID).Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module lessons!", nil)
	}
	if err := tx.Model(&courseModels.QuizContent{}).Where("module_id = ?", moduleID).Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module quizzes!", nil)
	}
	if err := tx.Model(&courseModels.ModulePrerequisite{}).Where("module_id = ? OR required_module_id = ?", moduleID, moduleID).Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module prerequisites!", nil)
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully!", nil)
}

// AdminListModules lists all modules in a course with prerequisite info
func AdminListModules(c *fiber.Ctx) error {
	_, ok := isAdmin(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	courseID := c.Locals("courseID").(int)

	// Check if course exists
	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var modules []courseModels.Module
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("order_index asc").Find(&modules).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	type ModuleWithInfo struct {
		courseModels.Module
		LessonCount     int64  `json:"lesson_count"`
		QuizCount       int64  `json:"quiz_count"`
		PrerequisiteIDs []uint `json:"prerequisite_ids"`
	}

	result := make([]ModuleWithInfo, len(modules))
	for i, mod := range modules {
		result[i] = ModuleWithInfo{Module: mod, PrerequisiteIDs: []uint{}}

		database.Database.Db.Model(&courseModels.Lesson{}).Where("module_id = ? AND is_deleted = ?", mod.ID, false).Count(&result[i].LessonCount)
		database.Database.Db.Model(&courseModels.QuizContent{}).Where("module_id = ? AND is_deleted = ?", mod.ID, false).Count(&result[i].QuizCount)

		var prereqs []courseModels.ModulePrerequisite
		database.Database.Db.Where("module_id = ? AND is_deleted = ?", mod.ID, false).Order("order_index asc").Find(&prereqs)
		for _, p := range prereqs {
			result[i].PrerequisiteIDs = append(result[i].PrerequisiteIDs, p.RequiredModuleID)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", fiber.Map{
		"modules": result,
	})
}

// AdminSetModulePrerequisites replaces a module's prerequisite list
func AdminSetModulePrerequisites(c *fiber.Ctx) error {
	_, ok := isAdmin(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	courseID := c.Locals("courseID").(int)
	moduleID := c.Locals("moduleID").(int)

	var module courseModels.Module
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", moduleID, courseID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	reqData, ok := c.Locals("validatedPrerequisites").(*struct {
		RequiredModuleIDs []uint `json:"required_module_ids"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Validate the referenced modules: same course, no self-reference
	for _, reqID := range reqData.RequiredModuleIDs {
		if reqID == uint(moduleID) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "A module cannot be its own prerequisite!", nil)
		}
		var required courseModels.Module
		if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", reqID, courseID, false).First(&required).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Prerequisite module not found in this course!", nil)
		}
	}

	tx := database.Database.Db.Begin()

	if err := tx.Model(&courseModels.ModulePrerequisite{}).Where("module_id = ?", moduleID).Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update prerequisites!", nil)
	}

	for i, reqID := range reqData.RequiredModuleIDs {
		prereq := courseModels.ModulePrerequisite{
			ModuleID:         uint(moduleID),
			RequiredModuleID: reqID,
			OrderIndex:       i + 1,
		}
		if err := tx.Create(&prereq).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save prerequisites!", nil)
		}
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Prerequisites updated successfully!", fiber.Map{
		"module_id":           moduleID,
		"required_module_ids": reqData.RequiredModuleIDs,
	})
}

// AdminGrantRetake resets a FAILED module progress so the student can retry
func AdminGrantRetake(c *fiber.Ctx) error {
	admin, ok := isAdmin(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	progressID := c.Locals("progressID").(int)

	var prog courseModels.ModuleProgress
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", progressID, false).First(&prog).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module progress not found!", nil)
	}

	if prog.Status != progression.StatusFailed {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Retake can only be granted for failed modules!", nil)
	}

	prog.Status = progression.StatusInProgress
	prog.AttemptsUsed = 0

	if err := database.Database.Db.Save(&prog).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to grant retake!", nil)
	}

	database.Database.Db.Create(&courseModels.UnlockDecision{
		UserID:        prog.UserID,
		CourseID:      prog.CourseID,
		ModuleID:      prog.ModuleID,
		TotalScore:    prog.CumulativeScore,
		AttemptNumber: 0,
		Decision:      "RETAKE_GRANTED",
		Reason:        "Administrative retake grant by user " + admin.Email + ".",
	})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Retake granted successfully!", prog)
}
