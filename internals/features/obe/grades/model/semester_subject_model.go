// file: internals/features/obe/grades/model/semester_subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status kontrak metadata semester.
const (
	SemesterStatusProvisional = "PROVISIONAL"
	SemesterStatusFinal       = "FINAL"
)

// SemesterSubjectModel merepresentasikan tabel `semester_subjects`:
// satu mata kuliah dalam bucket (student, semester, academic_year).
// Invariant Σ credits ≤ 20 dijaga saat tulis, bukan cuma saat baca.
type SemesterSubjectModel struct {
	SemesterSubjectID uuid.UUID `json:"semester_subject_id" gorm:"column:semester_subject_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	SemesterSubjectStudentID    uuid.UUID `json:"semester_subject_student_id" gorm:"column:semester_subject_student_id;type:uuid;not null;index:idx_semester_subjects_bucket,priority:1"`
	SemesterSubjectSemester     int       `json:"semester_subject_semester" gorm:"column:semester_subject_semester;not null;index:idx_semester_subjects_bucket,priority:2"`
	SemesterSubjectAcademicYear string    `json:"semester_subject_academic_year" gorm:"column:semester_subject_academic_year;type:varchar(9);not null;index:idx_semester_subjects_bucket,priority:3"`

	SemesterSubjectCode string `json:"semester_subject_code" gorm:"column:semester_subject_code;type:varchar(16);not null"`
	SemesterSubjectName string `json:"semester_subject_name" gorm:"column:semester_subject_name;type:varchar(120);not null"`

	SemesterSubjectCredits int `json:"semester_subject_credits" gorm:"column:semester_subject_credits;not null"`

	// NULL = belum dinilai; tetap dihitung di total_credits
	// tapi tidak masuk pembilang/penyebut SGPA.
	SemesterSubjectLetterGrade *string `json:"semester_subject_letter_grade" gorm:"column:semester_subject_letter_grade;type:varchar(2)"`
	SemesterSubjectGradePoint  *int    `json:"semester_subject_grade_point" gorm:"column:semester_subject_grade_point"`

	SemesterSubjectCreatedAt time.Time      `json:"semester_subject_created_at" gorm:"column:semester_subject_created_at;not null;autoCreateTime"`
	SemesterSubjectUpdatedAt time.Time      `json:"semester_subject_updated_at" gorm:"column:semester_subject_updated_at;not null;autoUpdateTime"`
	SemesterSubjectDeletedAt gorm.DeletedAt `json:"semester_subject_deleted_at" gorm:"column:semester_subject_deleted_at;index"`
}

func (SemesterSubjectModel) TableName() string {
	return "semester_subjects"
}
