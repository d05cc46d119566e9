package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all student-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	userGroup := app.Group("/course")

	// Course listing and details (published courses)
	userGroup.Get("/list", middleware.JWTMiddleware, validators.CourseList(), controllers.GetAllCourses)
	userGroup.Get("/:id", middleware.JWTMiddleware, validators.GetCourseDetail(), controllers.GetCourseDetails)

	// Enrollment
	userGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.EnrollCourse(), controllers.EnrollInCourse)

	// Module progression
	userGroup.Get("/:course_id/module/:module_id/eligibility", middleware.JWTMiddleware, validators.ModuleParams(), controllers.GetModuleEligibility)
	userGroup.Post("/:course_id/module/:module_id/unlock", middleware.JWTMiddleware, validators.ModuleParams(), controllers.UnlockModule)
	userGroup.Get("/:course_id/progress", middleware.JWTMiddleware, validators.CourseParams(), controllers.GetUserProgress)

	// Lessons
	userGroup.Get("/:course_id/module/:module_id/lessons", middleware.JWTMiddleware, validators.ModuleParams(), controllers.GetModuleLessons)
	userGroup.Post("/:course_id/module/:module_id/lesson/:lesson_id/complete", middleware.JWTMiddleware, validators.LessonParams(), controllers.CompleteLesson)

	// Quizzes
	userGroup.Get("/:course_id/module/:module_id/quizzes", middleware.JWTMiddleware, validators.ModuleParams(), controllers.GetModuleQuizzes)
	userGroup.Post("/:course_id/quiz/:content_id/submit", middleware.JWTMiddleware, validators.QuizParams(), controllers.SubmitQuizAnswer)

	// Assignments
	userGroup.Post("/:course_id/assignment/:assignment_id/submit", middleware.JWTMiddleware, validators.AssignmentParams(), controllers.SubmitAssignment)

	// Certificate request
	userGroup.Post("/:id/certificate/request", middleware.JWTMiddleware, validators.GetCourseDetail(), controllers.RequestCertificate)

	// User enrollments and certificates
	userEnrollGroup := app.Group("/user")
	userEnrollGroup.Get("/enrollments", middleware.JWTMiddleware, validators.GetUserEnrollments(), controllers.GetEnrollments)
	userEnrollGroup.Get("/enrollments/all", middleware.JWTMiddleware, controllers.GetUserEnrollmentsList)
	userEnrollGroup.Get("/certificates", middleware.JWTMiddleware, controllers.GetUserCertificates)
}
