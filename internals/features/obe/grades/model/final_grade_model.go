// file: internals/features/obe/grades/model/final_grade_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// FinalGradeModel merepresentasikan tabel `final_grades`.
// Derived: di-replace utuh oleh transaksi recompute per course.
type FinalGradeModel struct {
	FinalGradeID uuid.UUID `json:"final_grade_id" gorm:"column:final_grade_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	FinalGradeStudentID uuid.UUID `json:"final_grade_student_id" gorm:"column:final_grade_student_id;type:uuid;not null;index:idx_final_grades_course_student,unique,priority:2"`
	FinalGradeCourseID  uuid.UUID `json:"final_grade_course_id" gorm:"column:final_grade_course_id;type:uuid;not null;index:idx_final_grades_course_student,unique,priority:1"`

	FinalGradeCIETotal float64 `json:"final_grade_cie_total" gorm:"column:final_grade_cie_total;type:numeric(6,2);not null"`
	FinalGradeCIEMax   float64 `json:"final_grade_cie_max" gorm:"column:final_grade_cie_max;type:numeric(6,2);not null"`
	FinalGradeSEETotal float64 `json:"final_grade_see_total" gorm:"column:final_grade_see_total;type:numeric(6,2);not null"`
	FinalGradeSEEMax   float64 `json:"final_grade_see_max" gorm:"column:final_grade_see_max;type:numeric(6,2);not null"`

	FinalGradeFinalTotal float64 `json:"final_grade_final_total" gorm:"column:final_grade_final_total;type:numeric(6,2);not null"`
	FinalGradeFinalMax   float64 `json:"final_grade_final_max" gorm:"column:final_grade_final_max;type:numeric(6,2);not null"`
	FinalGradePercentage float64 `json:"final_grade_percentage" gorm:"column:final_grade_percentage;type:numeric(5,2);not null"`

	FinalGradeLetter      string `json:"final_grade_letter" gorm:"column:final_grade_letter;type:varchar(2);not null"`
	FinalGradeGradePoints int    `json:"final_grade_grade_points" gorm:"column:final_grade_grade_points;not null"`
	FinalGradeIsPassed    bool   `json:"final_grade_is_passed" gorm:"column:final_grade_is_passed;not null"`

	FinalGradePolicyVersion string    `json:"final_grade_policy_version" gorm:"column:final_grade_policy_version;type:varchar(16);not null"`
	FinalGradeComputedAt    time.Time `json:"final_grade_computed_at" gorm:"column:final_grade_computed_at;not null;autoCreateTime"`
}

func (FinalGradeModel) TableName() string {
	return "final_grades"
}
