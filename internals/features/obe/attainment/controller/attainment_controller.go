// file: internals/features/obe/attainment/controller/attainment_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "obetrack_backend/internals/features/obe/attainment/dto"
	model "obetrack_backend/internals/features/obe/attainment/model"
	service "obetrack_backend/internals/features/obe/attainment/service"
	helper "obetrack_backend/internals/helpers"
)

/* ========================================================
   Controller
======================================================== */

type AttainmentController struct {
	DB      *gorm.DB
	Service *service.RecomputeService
}

func NewAttainmentController(db *gorm.DB, svc *service.RecomputeService) *AttainmentController {
	return &AttainmentController{DB: db, Service: svc}
}

/* ========================================================
   Trigger recompute
======================================================== */

// POST /courses/:course_id/recompute
// Idempoten; gagal = snapshot derived sebelumnya tetap utuh.
func (ctl *AttainmentController) Recompute(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(strings.TrimSpace(c.Params("course_id")))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "course_id tidak valid")
	}

	if err := ctl.Service.RecomputeCourse(c.UserContext(), courseID); err != nil {
		// prasyarat hilang dibedakan per jenis: remediasi-nya beda
		if errors.Is(err, service.ErrNoCourseOutcomes) {
			return helper.Error(c, http.StatusUnprocessableEntity,
				"Course outcomes belum didefinisikan untuk course ini")
		}
		var noMapping *service.NoQuestionMappingError
		if errors.As(err, &noMapping) {
			return helper.Error(c, http.StatusUnprocessableEntity, noMapping.Error())
		}
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Rekalkulasi selesai", fiber.Map{"course_id": courseID})
}

/* ========================================================
   Read endpoints (proyeksi murni, tidak pernah menghitung
   ulang sebagai efek samping)
======================================================== */

// GET /courses/:course_id/co-attainment
func (ctl *AttainmentController) ListCOAttainment(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(strings.TrimSpace(c.Params("course_id")))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "course_id tidak valid")
	}

	var rows []model.CombinedCOAttainmentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("combined_co_attainment_course_id = ?", courseID).
		Order("combined_co_attainment_co_number ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	out := make([]dto.COAttainmentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToCOAttainmentResponse(&rows[i]))
	}
	return helper.Success(c, "OK", out)
}

// GET /courses/:course_id/po-attainment
func (ctl *AttainmentController) ListPOAttainment(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(strings.TrimSpace(c.Params("course_id")))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "course_id tidak valid")
	}

	var rows []model.POAttainmentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("po_attainment_course_id = ?", courseID).
		Order("po_attainment_po_number ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	out := make([]dto.POAttainmentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToPOAttainmentResponse(&rows[i]))
	}
	return helper.Success(c, "OK", out)
}

// GET /courses/:course_id/dashboard
// Ringkasan CO vs target dashboard. Target ini murni pembanding
// visual; ambang lulus kalkulasi (pass threshold) konsep terpisah.
func (ctl *AttainmentController) Dashboard(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(strings.TrimSpace(c.Params("course_id")))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "course_id tidak valid")
	}

	var rows []model.CombinedCOAttainmentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("combined_co_attainment_course_id = ?", courseID).
		Order("combined_co_attainment_co_number ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	target := ctl.Service.Policy.DashboardTargetPercent
	resp := dto.DashboardResponse{
		CourseID:      courseID,
		TargetPercent: target,
		TotalCOs:      len(rows),
		Items:         make([]dto.DashboardCOItem, 0, len(rows)),
		PolicyVersion: ctl.Service.Policy.Version,
	}

	var sum float64
	withData := 0
	for i := range rows {
		r := &rows[i]
		item := dto.DashboardCOItem{
			CONumber:          r.CombinedCOAttainmentCONumber,
			AttainmentPercent: r.CombinedCOAttainmentOverallPercent,
			TargetPercent:     target,
			NoData:            r.CombinedCOAttainmentNoData,
		}
		if !r.CombinedCOAttainmentNoData {
			item.MeetsTarget = r.CombinedCOAttainmentOverallPercent >= target
			sum += r.CombinedCOAttainmentOverallPercent
			withData++
			if item.MeetsTarget {
				resp.COsMeetingTarget++
			}
		}
		resp.Items = append(resp.Items, item)
	}
	if withData > 0 {
		resp.AveragePercent = sum / float64(withData)
	}

	return helper.Success(c, "OK", resp)
}

// GET /assessments/:assessment_id/verticals
// Statistik per-soal satu assessment, dihitung on-the-fly dari jawaban
// mentah (bukan derived record).
func (ctl *AttainmentController) AssessmentVerticals(c *fiber.Ctx) error {
	assessmentID, err := uuid.Parse(strings.TrimSpace(c.Params("assessment_id")))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "assessment_id tidak valid")
	}

	var assessment model.AssessmentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&assessment, "assessment_id = ?", assessmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Assessment tidak ditemukan")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	questions, err := ctl.Service.LoadQuestionInputs(c.UserContext(), assessmentID)
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"assessment": dto.ToAssessmentResponse(&assessment),
		"verticals":  service.AnalyzeVerticals(ctl.Service.Policy, questions),
	})
}

// GET /courses/:course_id/students/:student_id/performance
// Breakdown vertikal + CO-level per assessment + combined course-level.
func (ctl *AttainmentController) StudentPerformance(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(strings.TrimSpace(c.Params("course_id")))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "course_id tidak valid")
	}
	studentID, err := uuid.Parse(strings.TrimSpace(c.Params("student_id")))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "student_id tidak valid")
	}

	var assessments []model.AssessmentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("assessment_course_id = ?", courseID).
		Order("assessment_type ASC").
		Find(&assessments).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	type perAssessment struct {
		Assessment dto.AssessmentResponse          `json:"assessment"`
		Questions  []service.StudentQuestionDetail `json:"questions"`
		COResults  []service.StudentCOResult       `json:"co_results"`
	}
	breakdown := make([]perAssessment, 0, len(assessments))

	for i := range assessments {
		a := &assessments[i]
		questions, err := ctl.Service.LoadQuestionInputs(c.UserContext(), a.AssessmentID)
		if err != nil {
			return helper.Error(c, http.StatusInternalServerError, err.Error())
		}
		details, coResults := service.StudentBreakdown(ctl.Service.Policy, questions, studentID)
		breakdown = append(breakdown, perAssessment{
			Assessment: dto.ToAssessmentResponse(a),
			Questions:  details,
			COResults:  coResults,
		})
	}

	// combined course-level dari derived record
	var combined []model.CombinedCOAttainmentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("combined_co_attainment_course_id = ?", courseID).
		Order("combined_co_attainment_co_number ASC").
		Find(&combined).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	combinedOut := make([]dto.COAttainmentResponse, 0, len(combined))
	for i := range combined {
		combinedOut = append(combinedOut, dto.ToCOAttainmentResponse(&combined[i]))
	}

	return helper.Success(c, "OK", fiber.Map{
		"student_id":  studentID,
		"course_id":   courseID,
		"assessments": breakdown,
		"combined":    combinedOut,
	})
}
