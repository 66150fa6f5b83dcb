// file: internals/features/obe/attainment/model/derived_models.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* ========================================================
   DERIVED RECORDS
   Tidak pernah diedit tangan; selalu di-replace utuh
   oleh satu transaksi recompute per course.
======================================================== */

// COAssessmentResultModel hasil agregasi satu CO di satu assessment.
type COAssessmentResultModel struct {
	COAssessmentResultID uuid.UUID `json:"co_assessment_result_id" gorm:"column:co_assessment_result_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	COAssessmentResultCourseID     uuid.UUID `json:"co_assessment_result_course_id" gorm:"column:co_assessment_result_course_id;type:uuid;not null;index:idx_co_assessment_results_course"`
	COAssessmentResultAssessmentID uuid.UUID `json:"co_assessment_result_assessment_id" gorm:"column:co_assessment_result_assessment_id;type:uuid;not null;index"`
	COAssessmentResultCONumber     int       `json:"co_assessment_result_co_number" gorm:"column:co_assessment_result_co_number;not null"`

	COAssessmentResultTotalMaxMarks     float64 `json:"co_assessment_result_total_max_marks" gorm:"column:co_assessment_result_total_max_marks;type:numeric(8,2);not null"`
	COAssessmentResultAttempts          int     `json:"co_assessment_result_attempts" gorm:"column:co_assessment_result_attempts;not null"`
	COAssessmentResultAboveThreshold    int     `json:"co_assessment_result_above_threshold" gorm:"column:co_assessment_result_above_threshold;not null"`
	COAssessmentResultAttainmentPercent float64 `json:"co_assessment_result_attainment_percent" gorm:"column:co_assessment_result_attainment_percent;type:numeric(5,2);not null"`
	COAssessmentResultNoData            bool    `json:"co_assessment_result_no_data" gorm:"column:co_assessment_result_no_data;not null;default:false"`

	COAssessmentResultPolicyVersion string    `json:"co_assessment_result_policy_version" gorm:"column:co_assessment_result_policy_version;type:varchar(16);not null"`
	COAssessmentResultComputedAt    time.Time `json:"co_assessment_result_computed_at" gorm:"column:co_assessment_result_computed_at;not null;autoCreateTime"`
}

func (COAssessmentResultModel) TableName() string {
	return "co_assessment_results"
}

// CombinedCOAttainmentModel gabungan lintas assessment per CO per course.
type CombinedCOAttainmentModel struct {
	CombinedCOAttainmentID uuid.UUID `json:"combined_co_attainment_id" gorm:"column:combined_co_attainment_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	CombinedCOAttainmentCourseID uuid.UUID `json:"combined_co_attainment_course_id" gorm:"column:combined_co_attainment_course_id;type:uuid;not null;index:idx_combined_co_attainments_course"`
	CombinedCOAttainmentCONumber int       `json:"combined_co_attainment_co_number" gorm:"column:combined_co_attainment_co_number;not null"`

	CombinedCOAttainmentTotalMaxMarks       float64 `json:"combined_co_attainment_total_max_marks" gorm:"column:combined_co_attainment_total_max_marks;type:numeric(8,2);not null"`
	CombinedCOAttainmentTotalAttempts       int     `json:"combined_co_attainment_total_attempts" gorm:"column:combined_co_attainment_total_attempts;not null"`
	CombinedCOAttainmentTotalAboveThreshold int     `json:"combined_co_attainment_total_above_threshold" gorm:"column:combined_co_attainment_total_above_threshold;not null"`
	CombinedCOAttainmentOverallPercent      float64 `json:"combined_co_attainment_overall_percent" gorm:"column:combined_co_attainment_overall_percent;type:numeric(5,2);not null"`
	CombinedCOAttainmentNoData              bool    `json:"combined_co_attainment_no_data" gorm:"column:combined_co_attainment_no_data;not null;default:false"`

	CombinedCOAttainmentPolicyVersion string    `json:"combined_co_attainment_policy_version" gorm:"column:combined_co_attainment_policy_version;type:varchar(16);not null"`
	CombinedCOAttainmentComputedAt    time.Time `json:"combined_co_attainment_computed_at" gorm:"column:combined_co_attainment_computed_at;not null;autoCreateTime"`
}

func (CombinedCOAttainmentModel) TableName() string {
	return "combined_co_attainments"
}

// POAttainmentModel level attainment PO per course.
type POAttainmentModel struct {
	POAttainmentID uuid.UUID `json:"po_attainment_id" gorm:"column:po_attainment_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	POAttainmentCourseID uuid.UUID `json:"po_attainment_course_id" gorm:"column:po_attainment_course_id;type:uuid;not null;index:idx_po_attainments_course"`
	POAttainmentPONumber int       `json:"po_attainment_po_number" gorm:"column:po_attainment_po_number;not null"`

	POAttainmentLevel   float64 `json:"po_attainment_level" gorm:"column:po_attainment_level;type:numeric(4,2);not null"`
	POAttainmentPercent float64 `json:"po_attainment_percent" gorm:"column:po_attainment_percent;type:numeric(5,2);not null"`

	POAttainmentPolicyVersion string    `json:"po_attainment_policy_version" gorm:"column:po_attainment_policy_version;type:varchar(16);not null"`
	POAttainmentComputedAt    time.Time `json:"po_attainment_computed_at" gorm:"column:po_attainment_computed_at;not null;autoCreateTime"`
}

func (POAttainmentModel) TableName() string {
	return "po_attainments"
}
