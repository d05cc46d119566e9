package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up all admin course management routes
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/course")

	// Course CRUD
	adminGroup.Post("/create", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-courses"), validators.CreateCourse(), controllers.AdminCreateCourse)
	adminGroup.Get("/list", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-courses"), controllers.AdminListCourses)
	adminGroup.Put("/:id", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-courses"), validators.UpdateCourse(), controllers.AdminUpdateCourse)
	adminGroup.Delete("/:id", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-courses"), validators.CourseIDOnly(), controllers.AdminDeleteCourse)

	// Module Management
	adminGroup.Post("/:course_id/module", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-modules"), validators.CreateModule(), controllers.AdminCreateModule)
	adminGroup.Get("/:course_id/modules", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-modules"), validators.CourseParams(), controllers.AdminListModules)
	adminGroup.Put("/:course_id/module/:module_id", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-modules"), validators.UpdateModule(), controllers.AdminUpdateModule)
	adminGroup.Delete("/:course_id/module/:module_id", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-modules"), validators.ModuleParams(), controllers.AdminDeleteModule)
	adminGroup.Put("/:course_id/module/:module_id/prerequisites", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-modules"), validators.SetPrerequisites(), controllers.AdminSetModulePrerequisites)

	// Content Management
	adminGroup.Post("/:course_id/module/:module_id/lesson", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-content"), validators.CreateLesson(), controllers.AdminCreateLesson)
	adminGroup.Post("/:course_id/module/:module_id/quiz", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-content"), validators.CreateQuiz(), controllers.AdminCreateQuiz)
	adminGroup.Post("/:course_id/module/:module_id/assignment", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-content"), validators.CreateAssignment(), controllers.AdminCreateAssignment)

	lessonGroup := app.Group("/admin/lesson")
	lessonGroup.Put("/:lesson_id", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-content"), validators.UpdateLesson(), controllers.AdminUpdateLesson)

	// Grading and retakes
	submissionGroup := app.Group("/admin/submission")
	submissionGroup.Post("/:submission_id/grade", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("grade-submissions"), validators.GradeSubmission(), controllers.AdminGradeSubmission)

	progressGroup := app.Group("/admin/progress")
	progressGroup.Post("/:progress_id/retake", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("grant-retakes"), validators.GrantRetake(), controllers.AdminGrantRetake)

	// Enrollment & Progress Tracking
	adminGroup.Get("/:course_id/enrollments", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("view-dashboard"), validators.EnrollmentQuery(), controllers.AdminGetCourseEnrollments)
	adminGroup.Get("/:course_id/completed", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("view-dashboard"), validators.CourseParams(), controllers.AdminGetCompletedStudents)
	adminGroup.Get("/:course_id/module/:module_id/decisions", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("view-dashboard"), validators.ModuleParams(), controllers.AdminGetModuleDecisions)

	// Certificate Management
	certGroup := app.Group("/admin/certificates")
	certGroup.Get("/pending", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-certificates"), controllers.AdminListCertificateRequests)

	certRequestGroup := app.Group("/admin/certificate")
	certRequestGroup.Post("/:request_id/approve", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-certificates"), validators.CertificateRequestParam(), controllers.AdminApproveCertificate)
	certRequestGroup.Post("/:request_id/reject", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-certificates"), validators.CertificateRequestParam(), controllers.AdminRejectCertificate)

	// Dashboard
	dashGroup := app.Group("/admin/dashboard")
	dashGroup.Get("/stats", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("view-dashboard"), controllers.AdminGetDashboard)
}
