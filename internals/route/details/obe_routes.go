// file: internals/route/details/obe_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attainmentController "obetrack_backend/internals/features/obe/attainment/controller"
	attainmentService "obetrack_backend/internals/features/obe/attainment/service"
	gradesController "obetrack_backend/internals/features/obe/grades/controller"
	gradesService "obetrack_backend/internals/features/obe/grades/service"
	outcomesController "obetrack_backend/internals/features/obe/outcomes/controller"
	"obetrack_backend/internals/features/obe/policy"
	middlewares "obetrack_backend/internals/middlewares"
)

/* ===================== PUBLIC ===================== */
// Read-only: attainment, dashboard, nilai, ringkasan semester.
func OBEPublicRoutes(r fiber.Router, db *gorm.DB) {
	pol := policy.Default()

	recompute := attainmentService.NewRecomputeService(db, pol)
	attainment := attainmentController.NewAttainmentController(db, recompute)
	assessments := attainmentController.NewAssessmentController(db)
	courseOutcomes := outcomesController.NewCourseOutcomeController(db)
	programOutcomes := outcomesController.NewProgramOutcomeController(db)
	mappingCSV := outcomesController.NewMappingCSVController(db)
	finalGrades := gradesController.NewFinalGradeController(db)
	semesters := gradesController.NewSemesterController(gradesService.NewSemesterService(db, pol))

	r.Get("/program-outcomes", programOutcomes.List)
	r.Get("/courses/:course_id/outcomes", courseOutcomes.List)
	r.Get("/courses/:course_id/assessments", assessments.List)
	r.Get("/assessments/:assessment_id/co-mapping/template", mappingCSV.Template)

	r.Get("/assessments/:assessment_id/verticals", attainment.AssessmentVerticals)
	r.Get("/courses/:course_id/co-attainment", attainment.ListCOAttainment)
	r.Get("/courses/:course_id/po-attainment", attainment.ListPOAttainment)
	r.Get("/courses/:course_id/dashboard", attainment.Dashboard)
	r.Get("/courses/:course_id/students/:student_id/performance", attainment.StudentPerformance)

	r.Get("/courses/:course_id/final-grades", finalGrades.ListByCourse)
	r.Get("/courses/:course_id/final-grades/:student_id", finalGrades.GetByStudent)
	r.Get("/students/:student_id/semesters/:semester/summary", semesters.Summary)
}

/* ===================== ADMIN ===================== */
// Mutasi data input + trigger rekalkulasi (JWT wajib).
func OBEAdminRoutes(r fiber.Router, db *gorm.DB) {
	pol := policy.Default()

	recompute := attainmentService.NewRecomputeService(db, pol)
	attainment := attainmentController.NewAttainmentController(db, recompute)
	assessments := attainmentController.NewAssessmentController(db)
	courseOutcomes := outcomesController.NewCourseOutcomeController(db)
	programOutcomes := outcomesController.NewProgramOutcomeController(db)
	mappingCSV := outcomesController.NewMappingCSVController(db)
	semesters := gradesController.NewSemesterController(gradesService.NewSemesterService(db, pol))

	r.Post("/program-outcomes", programOutcomes.Create)
	r.Post("/courses/:course_id/outcomes", courseOutcomes.Create)
	r.Delete("/course-outcomes/:co_id", courseOutcomes.Delete)

	r.Post("/assessments", assessments.Create)
	r.Delete("/assessments/:assessment_id", assessments.Delete)
	r.Post("/assessments/:assessment_id/co-mapping", mappingCSV.Upload)
	r.Post("/assessments/:assessment_id/marks", assessments.UploadMarks)

	// operasi berat → limiter khusus
	r.Post("/courses/:course_id/recompute", middlewares.RecomputeRateLimiter(), attainment.Recompute)

	r.Post("/semesters/subjects", semesters.AddSubject)
	r.Put("/semesters/subjects/:subject_id/credits", semesters.UpdateSubjectCredits)
	r.Put("/semesters/subjects/:subject_id/grade", semesters.SetGrade)
	r.Delete("/semesters/subjects/:subject_id", semesters.DeleteSubject)
}
