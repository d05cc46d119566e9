package controllers

import (
	"fmt"
	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/progression"
	"lms/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

// scoringConfigFor resolves the required score and weights for a module,
// falling back from the module override to the course configuration to the
// deployment default
func scoringConfigFor(course courseModels.Course, module courseModels.Module) (float64, progression.Weights) {
	required := course.RequiredScore
	if module.RequiredScore > 0 {
		required = module.RequiredScore
	}
	if required <= 0 {
		required = config.AppConfig.DefaultRequiredScore
	}

	weights := progression.Weights{
		CourseContribution:   course.WeightCourseContribution,
		QuizScore:            course.WeightQuizScore,
		AssignmentScore:      course.WeightAssignmentScore,
		FinalAssessmentScore: course.WeightFinalAssessmentScore,
	}
	if weights.CourseContribution == 0 && weights.QuizScore == 0 &&
		weights.AssignmentScore == 0 && weights.FinalAssessmentScore == 0 {
		weights = progression.DefaultWeights()
	}

	return required, weights
}

// computeSubScores rebuilds the four sub-scores from their sources.
// Quiz score: best percentage per published quiz, averaged over the module.
// Assignment score: average of graded submissions over published assignments.
// Final assessment: best percentage on the module's FINAL quiz.
// Course contribution: average cumulative score of the prerequisite modules,
// or of all completed modules in the course when there are no prerequisites.
func computeSubScores(userID uint, module courseModels.Module) progression.SubScores {
	db := database.Database.Db
	var scores progression.SubScores

	// Quiz average (best attempt per content)
	var quizzes []courseModels.QuizContent
	db.Where("module_id = ? AND kind = ? AND is_deleted = ? AND is_published = ?", module.ID, "QUIZ", false, true).
		Order("order_index asc").Find(&quizzes)
	if len(quizzes) > 0 {
		sum := float64(0)
		for _, q := range quizzes {
			var best float64
			db.Model(&courseModels.QuizAttempt{}).
				Where("user_id = ? AND content_id = ? AND is_deleted = ?", userID, q.ID, false).
				Select("COALESCE(MAX(percentage), 0)").Scan(&best)
			sum += best
		}
		scores.QuizScore = sum / float64(len(quizzes))
	}

	// Assignment average (ungraded submissions count as 0)
	var assignments []courseModels.Assignment
	db.Where("module_id = ? AND is_deleted = ? AND is_published = ?", module.ID, false, true).
		Order("order_index asc").Find(&assignments)
	if len(assignments) > 0 {
		sum := float64(0)
		for _, a := range assignments {
			var best float64
			db.Model(&courseModels.AssignmentSubmission{}).
				Where("user_id = ? AND assignment_id = ? AND is_graded = ? AND is_deleted = ?", userID, a.ID, true, false).
				Select("COALESCE(MAX(score), 0)").Scan(&best)
			sum += best
		}
		scores.AssignmentScore = sum / float64(len(assignments))
	}

	// Final assessment (best attempt on the FINAL quiz, if the module has one)
	var final courseModels.QuizContent
	if err := db.Where("module_id = ? AND kind = ? AND is_deleted = ? AND is_published = ?", module.ID, "FINAL", false, true).
		First(&final).Error; err == nil {
		var best float64
		db.Model(&courseModels.QuizAttempt{}).
			Where("user_id = ? AND content_id = ? AND is_deleted = ?", userID, final.ID, false).
			Select("COALESCE(MAX(percentage), 0)").Scan(&best)
		scores.FinalAssessmentScore = best
	}

	// Course contribution carried over from prerequisite modules
	var prereqs []courseModels.ModulePrerequisite
	db.Where("module_id = ? AND is_deleted = ?", module.ID, false).Order("order_index asc").Find(&prereqs)
	if len(prereqs) > 0 {
		sum := float64(0)
		for _, p := range prereqs {
			var carried float64
			db.Model(&courseModels.ModuleProgress{}).
				Where("user_id = ? AND module_id = ? AND is_deleted = ?", userID, p.RequiredModuleID, false).
				Select("COALESCE(MAX(cumulative_score), 0)").Scan(&carried)
			sum += carried
		}
		scores.CourseContribution = sum / float64(len(prereqs))
	} else {
		var avg float64
		db.Model(&courseModels.ModuleProgress{}).
			Where("user_id = ? AND course_id = ? AND status = ? AND is_deleted = ?", userID, module.CourseID, progression.StatusCompleted, false).
			Select("COALESCE(AVG(cumulative_score), 0)").Scan(&avg)
		scores.CourseContribution = avg
	}

	return scores
}

// buildEvalInput assembles the full evaluation input for one (user, module) pair
func buildEvalInput(userID uint, course courseModels.Course, module courseModels.Module, prog courseModels.ModuleProgress) progression.EvalInput {
	db := database.Database.Db
	required, weights := scoringConfigFor(course, module)

	// Prerequisite states, in configured order
	var prereqs []courseModels.ModulePrerequisite
	db.Where("module_id = ? AND is_deleted = ?", module.ID, false).Order("order_index asc").Find(&prereqs)

	prereqStates := make([]progression.PrerequisiteState, 0, len(prereqs))
	for _, p := range prereqs {
		var requiredModule courseModels.Module
		if err := db.Where("id = ? AND is_deleted = ?", p.RequiredModuleID, false).First(&requiredModule).Error; err != nil {
			continue
		}
		var reqProgress courseModels.ModuleProgress
		completed := false
		if err := db.Where("user_id = ? AND module_id = ? AND is_deleted = ?", userID, p.RequiredModuleID, false).
			First(&reqProgress).Error; err == nil {
			completed = reqProgress.Status == progression.StatusCompleted
		}
		prereqStates = append(prereqStates, progression.PrerequisiteState{
			ModuleID:  requiredModule.ID,
			Title:     requiredModule.Title,
			Completed: completed,
		})
	}

	// Lesson states, in lesson order
	var lessons []courseModels.Lesson
	db.Where("module_id = ? AND is_deleted = ? AND is_published = ?", module.ID, false, true).
		Order("order_index asc").Find(&lessons)

	lessonStates := make([]progression.LessonState, 0, len(lessons))
	for _, l := range lessons {
		var lp courseModels.LessonProgress
		passed := false
		if err := db.Where("user_id = ? AND lesson_id = ? AND is_deleted = ?", userID, l.ID, false).
			First(&lp).Error; err == nil {
			passed = lp.Passed
		}
		lessonStates = append(lessonStates, progression.LessonState{
			LessonID: l.ID,
			Title:    l.Title,
			Passed:   passed,
		})
	}

	return progression.EvalInput{
		CurrentStatus: prog.Status,
		SubScores:     computeSubScores(userID, module),
		Weights:       weights,
		RequiredScore: required,
		Prerequisites: prereqStates,
		Lessons:       lessonStates,
	}
}

// ensureModuleProgress fetches or creates the progress row for a module.
// Newly created rows start UNLOCKED when the module has no prerequisites.
func ensureModuleProgress(userID uint, module courseModels.Module) (courseModels.ModuleProgress, error) {
	db := database.Database.Db

	var prog courseModels.ModuleProgress
	if err := db.Where("user_id = ? AND module_id = ? AND is_deleted = ?", userID, module.ID, false).First(&prog).Error; err == nil {
		return prog, nil
	}

	var prereqCount int64
	db.Model(&courseModels.ModulePrerequisite{}).Where("module_id = ? AND is_deleted = ?", module.ID, false).Count(&prereqCount)

	status := progression.StatusLocked
	if prereqCount == 0 {
		status = progression.StatusUnlocked
	}

	prog = courseModels.ModuleProgress{
		UserID:      userID,
		CourseID:    module.CourseID,
		ModuleID:    module.ID,
		Status:      status,
		MaxAttempts: module.MaxAttempts,
	}
	if err := db.Create(&prog).Error; err != nil {
		return prog, err
	}
	return prog, nil
}

// persistEvaluation writes the refreshed sub-scores back onto the progress row
func persistEvaluation(prog *courseModels.ModuleProgress, in progression.EvalInput, report progression.Report) {
	prog.CourseContribution = in.SubScores.CourseContribution
	prog.QuizScore = in.SubScores.QuizScore
	prog.AssignmentScore = in.SubScores.AssignmentScore
	prog.FinalAssessmentScore = in.SubScores.FinalAssessmentScore
	prog.CumulativeScore = report.TotalScore
	database.Database.Db.Save(prog)
}

// GetModuleEligibility evaluates unlock eligibility for a module without
// consuming an attempt
func GetModuleEligibility(c *fiber.Ctx) error {
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

	in := buildEvalInput(userID, course, module, prog)
	report := progression.Evaluate(in)
	persistEvaluation(&prog, in, report)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Eligibility evaluated successfully!", fiber.Map{
		"report":        report,
		"attempts_used": prog.AttemptsUsed,
		"max_attempts":  prog.MaxAttempts,
	})
}

// UnlockModule consumes an attempt and acts on the eligibility verdict
func UnlockModule(c *fiber.Ctx) error {
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

	if prog.Status == progression.StatusCompleted {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Module already completed!", nil)
	}
	if prog.Status == progression.StatusLocked {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Module is locked! Complete its prerequisites first.", nil)
	}
	if prog.Status == progression.StatusFailed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Module failed! Contact an administrator for a retake grant.", nil)
	}

	// Consume an attempt
	prog.AttemptsUsed++
	if prog.StartedAt == nil {
		now := time.Now()
		prog.StartedAt = &now
		prog.Status = progression.StatusInProgress
	}

	in := buildEvalInput(userID, course, module, prog)
	report := progression.Evaluate(in)

	attemptsLeft := prog.MaxAttempts - prog.AttemptsUsed
	newStatus := progression.NextStatus(progression.StatusInProgress, report.Eligible, attemptsLeft)
	prog.Status = newStatus
	persistEvaluation(&prog, in, report)

	decision := "DENIED"
	reason := "Eligibility requirements not met."
	switch newStatus {
	case progression.StatusCompleted:
		decision = "COMPLETED"
		reason = fmt.Sprintf("Cumulative score %.1f met required %.1f with all requirements satisfied.", report.TotalScore, report.RequiredScore)
	case progression.StatusFailed:
		decision = "FAILED"
		reason = fmt.Sprintf("All %d attempts used without meeting requirements.", prog.MaxAttempts)
	}

	database.Database.Db.Create(&courseModels.UnlockDecision{
		UserID:        userID,
		CourseID:      uint(courseID),
		ModuleID:      uint(moduleID),
		Eligible:      report.Eligible,
		CanPreview:    report.CanPreview,
		TotalScore:    report.TotalScore,
		RequiredScore: report.RequiredScore,
		AttemptNumber: prog.AttemptsUsed,
		Decision:      decision,
		Reason:        reason,
	})

	var nextModuleID *uint
	courseCompleted := false

	if newStatus == progression.StatusCompleted {
		now := time.Now()
		prog.CompletedAt = &now
		database.Database.Db.Save(&prog)

		nextModuleID = unlockDownstreamModules(userID, uint(courseID), uint(moduleID))
		courseCompleted = updateEnrollmentProgress(userID, uint(courseID))

		utils.SendModuleCompletedEmail(user.Email, user.Name, module.Title, report.TotalScore)
		utils.NotifyProgressionEvent("module.completed", userID, uint(courseID), uint(moduleID), report.TotalScore)
	} else if newStatus == progression.StatusFailed {
		utils.SendModuleFailedEmail(user.Email, user.Name, module.Title, prog.MaxAttempts)
		utils.NotifyProgressionEvent("module.failed", userID, uint(courseID), uint(moduleID), report.TotalScore)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Unlock attempt processed!", fiber.Map{
		"report":           report,
		"decision":         decision,
		"status":           prog.Status,
		"attempts_used":    prog.AttemptsUsed,
		"max_attempts":     prog.MaxAttempts,
		"next_module_id":   nextModuleID,
		"course_completed": courseCompleted,
	})
}

// unlockDownstreamModules flips LOCKED modules whose prerequisites are now all
// completed to UNLOCKED, and returns the first module unlocked by this pass
func unlockDownstreamModules(userID, courseID, completedModuleID uint) *uint {
	db := database.Database.Db
	var firstUnlocked *uint

	// Candidate modules: those that list the completed module as a prerequisite
	var dependents []courseModels.ModulePrerequisite
	db.Where("required_module_id = ? AND is_deleted = ?", completedModuleID, false).Find(&dependents)

	for _, dep := range dependents {
		var module courseModels.Module
		if err := db.Where("id = ? AND course_id = ? AND is_deleted = ?", dep.ModuleID, courseID, false).First(&module).Error; err != nil {
			continue
		}

		prog, err := ensureModuleProgress(userID, module)
		if err != nil || prog.Status != progression.StatusLocked {
			continue
		}

		// All prerequisites of the dependent module must be completed
		var prereqs []courseModels.ModulePrerequisite
		db.Where("module_id = ? AND is_deleted = ?", module.ID, false).Find(&prereqs)

		allDone := true
		for _, p := range prereqs {
			var reqProg courseModels.ModuleProgress
			if err := db.Where("user_id = ? AND module_id = ? AND is_deleted = ?", userID, p.RequiredModuleID, false).
				First(&reqProg).Error; err != nil || reqProg.Status != progression.StatusCompleted {
				allDone = false
				break
			}
		}

		if allDone {
			db.Model(&courseModels.ModuleProgress{}).Where("id = ?", prog.ID).
				Update("status", progression.StatusUnlocked)
			utils.NotifyProgressionEvent("module.unlocked", userID, courseID, module.ID, 0)
			if firstUnlocked == nil {
				id := module.ID
				firstUnlocked = &id
			}
		}
	}

	return firstUnlocked
}

// updateEnrollmentProgress recounts completed modules and returns true when the
// whole course is completed
func updateEnrollmentProgress(userID, courseID uint) bool {
	db := database.Database.Db

	var totalModules int64
	var completedModules int64

	db.Model(&courseModels.Module{}).Where("course_id = ? AND is_deleted = ?", courseID, false).Count(&totalModules)
	db.Model(&courseModels.ModuleProgress{}).
		Where("user_id = ? AND course_id = ? AND status = ? AND is_deleted = ?", userID, courseID, progression.StatusCompleted, false).
		Count(&completedModules)

	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return false
	}

	enrollment.CompletedModules = int(completedModules)
	enrollment.TotalModules = int(totalModules)

	if totalModules > 0 {
		enrollment.Progress = float64(completedModules) / float64(totalModules) * 100
	}

	completed := false
	if totalModules > 0 && completedModules >= totalModules {
		enrollment.Status = "COMPLETED"
		now := time.Now()
		enrollment.CompletedAt = &now
		completed = true
	} else if completedModules > 0 {
		enrollment.Status = "IN_PROGRESS"
	}

	db.Save(&enrollment)
	return completed
}

// GetUserProgress gets the user's module-wise progress in a course
func GetUserProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	var modules []courseModels.Module
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("order_index asc").Find(&modules)

	type ModuleStatus struct {
		ModuleID        uint    `json:"module_id"`
		ModuleName      string  `json:"module_name"`
		Status          string  `json:"status"`
		AttemptsUsed    int     `json:"attempts_used"`
		MaxAttempts     int     `json:"max_attempts"`
		CumulativeScore float64 `json:"cumulative_score"`
	}

	moduleStatuses := make([]ModuleStatus, len(modules))
	for i, mod := range modules {
		prog, err := ensureModuleProgress(userID, mod)
		if err != nil {
			continue
		}
		moduleStatuses[i] = ModuleStatus{
			ModuleID:        mod.ID,
			ModuleName:      mod.Title,
			Status:          prog.Status,
			AttemptsUsed:    prog.AttemptsUsed,
			MaxAttempts:     prog.MaxAttempts,
			CumulativeScore: prog.CumulativeScore,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"enrollment": enrollment,
		"modules":    moduleStatuses,
	})
}
