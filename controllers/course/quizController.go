package controllers

import (
	"encoding/json"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/progression"
	"time"

	"github.com/gofiber/fiber/v2"
)

// SubmitQuizAnswer submits and evaluates a quiz answer
func SubmitQuizAnswer(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)
	contentID := c.Locals("contentID").(int)

	// Check enrollment
	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	// Check content exists
	var content courseModels.QuizContent
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ? AND is_published = ?", contentID, courseID, false, true).First(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	var module courseModels.Module
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", content.ModuleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	prog, err := ensureModuleProgress(userID, module)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load module progress!", nil)
	}

	if !progression.CanStart(prog.Status) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Module is not available for graded work!", nil)
	}

	reqData := new(struct {
		SelectedOptionIDs []uint `json:"selected_option_ids"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if len(reqData.SelectedOptionIDs) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please select at least one option!", nil)
	}

	// Get correct options
	var correctOptions []courseModels.QuizOption
	database.Database.Db.Where("content_id = ? AND is_correct = ? AND is_deleted = ?", contentID, true, false).Find(&correctOptions)

	// Calculate score
	correctOptionIDs := make(map[uint]bool)
	for _, opt := range correctOptions {
		correctOptionIDs[opt.ID] = true
	}

	correctCount := 0
	for _, selectedID := range reqData.SelectedOptionIDs {
		if correctOptionIDs[selectedID] {
			correctCount++
		}
	}

	isCorrect := correctCount == len(correctOptions) && len(reqData.SelectedOptionIDs) == len(correctOptions)

	percentage := float64(0)
	if len(correctOptions) > 0 {
		// Over-selection is penalized: extra picks count against the percentage
		extra := len(reqData.SelectedOptionIDs) - correctCount
		raw := float64(correctCount-extra) / float64(len(correctOptions)) * 100
		if raw < 0 {
			raw = 0
		}
		percentage = raw
	}

	// Get attempt number
	var attemptCount int64
	database.Database.Db.Model(&courseModels.QuizAttempt{}).Where("user_id = ? AND content_id = ? AND is_deleted = ?", userID, contentID, false).Count(&attemptCount)

	// Store selected options as JSON
	selectedJSON, _ := json.Marshal(reqData.SelectedOptionIDs)

	attempt := courseModels.QuizAttempt{
		UserID:          userID,
		ContentID:       uint(contentID),
		ModuleID:        content.ModuleID,
		SelectedOptions: string(selectedJSON),
		Score:           correctCount,
		MaxScore:        len(correctOptions),
		Percentage:      percentage,
		IsCorrect:       isCorrect,
		AttemptNumber:   int(attemptCount) + 1,
	}

	if err := database.Database.Db.Create(&attempt).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit answer!", nil)
	}

	// First recorded activity moves the module to IN_PROGRESS
	if prog.Status == progression.StatusUnlocked {
		now := time.Now()
		prog.Status = progression.StatusInProgress
		if prog.StartedAt == nil {
			prog.StartedAt = &now
		}
	}

	// Refresh the stored sub-scores so progress listings stay current
	scores := computeSubScores(userID, module)
	prog.QuizScore = scores.QuizScore
	prog.FinalAssessmentScore = scores.FinalAssessmentScore
	database.Database.Db.Save(&prog)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Answer submitted!", fiber.Map{
		"attempt":    attempt,
		"is_correct": isCorrect,
		"score":      correctCount,
		"max_score":  len(correctOptions),
		"percentage": percentage,
	})
}

// GetModuleQuizzes lists the quizzes of a module with the caller's best scores
func GetModuleQuizzes(c *fiber.Ctx) error {
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

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	var module courseModels.Module
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", moduleID, courseID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	var quizzes []courseModels.QuizContent
	database.Database.Db.Where("module_id = ? AND is_deleted = ? AND is_published = ?", moduleID, false, true).
		Order("order_index asc").Find(&quizzes)

	type QuizWithOptions struct {
		courseModels.QuizContent
		Options       []courseModels.QuizOption `json:"options"`
		BestScore     float64                   `json:"best_score"`
		AttemptsTaken int64                     `json:"attempts_taken"`
	}

	result := make([]QuizWithOptions, len(quizzes))
	for i, quiz := range quizzes {
		result[i] = QuizWithOptions{QuizContent: quiz}

		var options []courseModels.QuizOption
		database.Database.Db.Where("content_id = ? AND is_deleted = ?", quiz.ID, false).Order("order_index asc").Find(&options)
		// Hide the answers from students
		for j := range options {
			options[j].IsCorrect = false
		}
		result[i].Options = options

		database.Database.Db.Model(&courseModels.QuizAttempt{}).
			Where("user_id = ? AND content_id = ? AND is_deleted = ?", userID, quiz.ID, false).
			Select("COALESCE(MAX(percentage), 0)").Scan(&result[i].BestScore)
		database.Database.Db.Model(&courseModels.QuizAttempt{}).
			Where("user_id = ? AND content_id = ? AND is_deleted = ?", userID, quiz.ID, false).
			Count(&result[i].AttemptsTaken)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quizzes fetched successfully!", fiber.Map{
		"module":  module,
		"quizzes": result,
	})
}
