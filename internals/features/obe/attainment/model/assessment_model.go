// file: internals/features/obe/attainment/model/assessment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tipe assessment yang dikenal engine.
const (
	AssessmentTypeCIE1 = "CIE1"
	AssessmentTypeCIE2 = "CIE2"
	AssessmentTypeCIE3 = "CIE3"
	AssessmentTypeAAT  = "AAT"
	AssessmentTypeQuiz = "QUIZ"
	AssessmentTypeSEE  = "SEE"
)

// AssessmentModel merepresentasikan tabel `assessments`.
// Immutable setelah dinilai, kecuali lewat delete/reupload eksplisit.
type AssessmentModel struct {
	AssessmentID uuid.UUID `json:"assessment_id" gorm:"column:assessment_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	AssessmentCourseID uuid.UUID `json:"assessment_course_id" gorm:"column:assessment_course_id;type:uuid;not null;index:idx_assessments_course_type,unique,priority:1"`
	AssessmentType     string    `json:"assessment_type" gorm:"column:assessment_type;type:varchar(8);not null;index:idx_assessments_course_type,unique,priority:2"`

	AssessmentMaxMarks float64    `json:"assessment_max_marks" gorm:"column:assessment_max_marks;type:numeric(6,2);not null"`
	AssessmentDate     *time.Time `json:"assessment_date" gorm:"column:assessment_date;type:date"`

	AssessmentCreatedAt time.Time      `json:"assessment_created_at" gorm:"column:assessment_created_at;not null;autoCreateTime"`
	AssessmentUpdatedAt time.Time      `json:"assessment_updated_at" gorm:"column:assessment_updated_at;not null;autoUpdateTime"`
	AssessmentDeletedAt gorm.DeletedAt `json:"assessment_deleted_at" gorm:"column:assessment_deleted_at;index"`
}

func (AssessmentModel) TableName() string {
	return "assessments"
}

// IsCIE true untuk komponen CIE1/CIE2/CIE3.
func (m *AssessmentModel) IsCIE() bool {
	switch m.AssessmentType {
	case AssessmentTypeCIE1, AssessmentTypeCIE2, AssessmentTypeCIE3:
		return true
	}
	return false
}
