package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"math"

	"github.com/gofiber/fiber/v2"
)

func isAdmin(c *fiber.Ctx) (models.User, bool) {
	var user models.User

	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return user, false
	}

	// The token role claim filters out non-admin callers before the lookup;
	// the stored role stays authoritative for callers that pass it
	if role, ok := c.Locals("role").(string); ok && role != "ADMIN" {
		return user, false
	}

	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return user, false
	}

	return user, user.Role == "ADMIN"
}

// weightsSumWarning returns a warning message when the configured weights do
// not sum to 1.0. The course is saved anyway; evaluation uses weights as-is.
func weightsSumWarning(wc, wq, wa, wf float64) string {
	sum := wc + wq + wa + wf
	if math.Abs(sum-1.0) > 1e-6 {
		return "Scoring weights do not sum to 1.0; cumulative scores will use them as configured."
	}
	return ""
}

// AdminCreateCourse creates a new course with scoring configuration
func AdminCreateCourse(c *fiber.Ctx) error {
	_, ok := isAdmin(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*struct {
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
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := courseModels.Course{
		Title:                      reqData.Title,
		Description:                reqData.Description,
		Author:                     reqData.Author,
		Duration:                   reqData.Duration,
		ThumbnailURL:               reqData.ThumbnailURL,
		RequiredScore:              reqData.RequiredScore,
		WeightCourseContribution:   reqData.WeightCourseContribution,
		WeightQuizScore:            reqData.WeightQuizScore,
		WeightAssignmentScore:      reqData.WeightAssignmentScore,
		WeightFinalAssessmentScore: reqData.WeightFinalAssessmentScore,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	warning := weightsSumWarning(course.WeightCourseContribution, course.WeightQuizScore,
		course.WeightAssignmentScore, course.WeightFinalAssessmentScore)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", fiber.Map{
		"course":  course,
		"warning": warning,
	})
}

// AdminUpdateCourse updates an existing course
func AdminUpdateCourse(c *fiber.Ctx) error {
	_, ok := isAdmin(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*struct {
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
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		course.Title = reqData.Title
	}
	if reqData.Description != "" {
		course.Description = reqData.Description
	}
	if reqData.Author != "" {
		course.Author = reqData.Author
	}
	if reqData.Duration > 0 {
		course.Duration = reqData.Duration
	}
	if reqData.ThumbnailURL != "" {
		course.ThumbnailURL = reqData.ThumbnailURL
	}
	if reqData.Status != "" {
		course.Status = reqData.Status
	}
	if reqData.IsPublished != nil {
		course.IsPublished = *reqData.IsPublished
	}
	if reqData.RequiredScore != nil {
		course.RequiredScore = *reqData.RequiredScore
	}
	if reqData.WeightCourseContribution != nil {
		course.WeightCourseContribution = *reqData.WeightCourseContribution
	}
	if reqData.WeightQuizScore != nil {
		course.WeightQuizScore = *reqData.WeightQuizScore
	}
	if reqData.WeightAssignmentScore != nil {
		course.WeightAssignmentScore = *reqData.WeightAssignmentScore
	}
	if reqData.WeightFinalAssessmentScore != nil {
		course.WeightFinalAssessmentScore = *reqData.WeightFinalAssessmentScore
	}

	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	warning := weightsSumWarning(course.WeightCourseContribution, course.WeightQuizScore,
		course.WeightAssignmentScore, course.WeightFinalAssessmentScore)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", fiber.Map{
		"course":  course,
		"warning": warning,
	})
}

// AdminDeleteCourse soft deletes a course and its modules
func AdminDeleteCourse(c *fiber.Ctx) error {
	_, ok := isAdmin(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	tx := database.Database.Db.Begin()

	course.IsDeleted = true
	if err := tx.Save(&course).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	if err := tx.Model(&courseModels.Module{}).Where("course_id = ?", courseID).Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course modules!", nil)
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// AdminListCourses lists all courses including drafts
func AdminListCourses(c *fiber.Ctx) error {
	_, ok := isAdmin(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	var courses []courseModels.Course
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}
