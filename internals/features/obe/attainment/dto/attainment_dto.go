// file: internals/features/obe/attainment/dto/attainment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "obetrack_backend/internals/features/obe/attainment/model"
)

/* ==============================
   ASSESSMENT
============================== */

type CreateAssessmentRequest struct {
	AssessmentCourseID uuid.UUID  `json:"assessment_course_id" validate:"required"`
	AssessmentType     string     `json:"assessment_type" validate:"required,oneof=CIE1 CIE2 CIE3 AAT QUIZ SEE"`
	AssessmentMaxMarks float64    `json:"assessment_max_marks" validate:"required,gt=0"`
	AssessmentDate     *time.Time `json:"assessment_date" validate:"omitempty"`
}

type AssessmentResponse struct {
	AssessmentID        uuid.UUID  `json:"assessment_id"`
	AssessmentCourseID  uuid.UUID  `json:"assessment_course_id"`
	AssessmentType      string     `json:"assessment_type"`
	AssessmentMaxMarks  float64    `json:"assessment_max_marks"`
	AssessmentDate      *time.Time `json:"assessment_date"`
	AssessmentCreatedAt time.Time  `json:"assessment_created_at"`
}

func ToAssessmentResponse(m *model.AssessmentModel) AssessmentResponse {
	return AssessmentResponse{
		AssessmentID:        m.AssessmentID,
		AssessmentCourseID:  m.AssessmentCourseID,
		AssessmentType:      m.AssessmentType,
		AssessmentMaxMarks:  m.AssessmentMaxMarks,
		AssessmentDate:      m.AssessmentDate,
		AssessmentCreatedAt: m.AssessmentCreatedAt,
	}
}

/* ==============================
   UPLOAD MARKS (hasil normalisasi ingestion eksternal)
============================== */

type MarkRow struct {
	StudentID  uuid.UUID `json:"student_id" validate:"required"`
	ColumnName string    `json:"column_name" validate:"required,max=16"`
	Marks      float64   `json:"marks" validate:"gte=0"`

	// hanya utk anggota optional_group; nil = soal biasa
	Selected *bool `json:"selected"`
}

type UploadMarksRequest struct {
	Responses []MarkRow `json:"responses" validate:"required,min=1,dive"`
}

/* ==============================
   DERIVED (read endpoints)
============================== */

type COAttainmentResponse struct {
	CONumber                 int     `json:"co_number"`
	TotalMaxMarks            float64 `json:"total_max_marks"`
	TotalAttempts            int     `json:"total_attempts"`
	TotalAboveThreshold      int     `json:"total_above_threshold"`
	OverallAttainmentPercent float64 `json:"overall_attainment_percent"`
	NoData                   bool    `json:"no_data"`
	PolicyVersion            string  `json:"policy_version"`
}

func ToCOAttainmentResponse(m *model.CombinedCOAttainmentModel) COAttainmentResponse {
	return COAttainmentResponse{
		CONumber:                 m.CombinedCOAttainmentCONumber,
		TotalMaxMarks:            m.CombinedCOAttainmentTotalMaxMarks,
		TotalAttempts:            m.CombinedCOAttainmentTotalAttempts,
		TotalAboveThreshold:      m.CombinedCOAttainmentTotalAboveThreshold,
		OverallAttainmentPercent: m.CombinedCOAttainmentOverallPercent,
		NoData:                   m.CombinedCOAttainmentNoData,
		PolicyVersion:            m.CombinedCOAttainmentPolicyVersion,
	}
}

type POAttainmentResponse struct {
	PONumber          int     `json:"po_number"`
	AttainmentLevel   float64 `json:"attainment_level"`
	AttainmentPercent float64 `json:"attainment_percent"`
	PolicyVersion     string  `json:"policy_version"`
}

func ToPOAttainmentResponse(m *model.POAttainmentModel) POAttainmentResponse {
	return POAttainmentResponse{
		PONumber:          m.POAttainmentPONumber,
		AttainmentLevel:   m.POAttainmentLevel,
		AttainmentPercent: m.POAttainmentPercent,
		PolicyVersion:     m.POAttainmentPolicyVersion,
	}
}

// DashboardCOItem satu CO dibandingkan target dashboard.
// target ≠ ambang lulus kalkulasi: dua konsep threshold berbeda!
type DashboardCOItem struct {
	CONumber          int     `json:"co_number"`
	AttainmentPercent float64 `json:"attainment_percent"`
	TargetPercent     float64 `json:"target_percent"`
	MeetsTarget       bool    `json:"meets_target"`
	NoData            bool    `json:"no_data"`
}

type DashboardResponse struct {
	CourseID         uuid.UUID         `json:"course_id"`
	TargetPercent    float64           `json:"target_percent"`
	AveragePercent   float64           `json:"average_percent"`
	TotalCOs         int               `json:"total_cos"`
	COsMeetingTarget int               `json:"cos_meeting_target"`
	Items            []DashboardCOItem `json:"items"`
	PolicyVersion    string            `json:"policy_version"`
}
