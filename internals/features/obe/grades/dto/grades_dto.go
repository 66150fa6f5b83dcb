// file: internals/features/obe/grades/dto/grades_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "obetrack_backend/internals/features/obe/grades/model"
	service "obetrack_backend/internals/features/obe/grades/service"
)

/* ==============================
   FINAL GRADE (derived, read-only)
============================== */

type FinalGradeResponse struct {
	StudentID       uuid.UUID `json:"student_id"`
	CourseID        uuid.UUID `json:"course_id"`
	CIETotal        float64   `json:"cie_total"`
	CIEMax          float64   `json:"cie_max"`
	SEETotal        float64   `json:"see_total"`
	SEEMax          float64   `json:"see_max"`
	FinalTotal      float64   `json:"final_total"`
	FinalMax        float64   `json:"final_max"`
	FinalPercentage float64   `json:"final_percentage"`
	LetterGrade     string    `json:"letter_grade"`
	GradePoints     int       `json:"grade_points"`
	IsPassed        bool      `json:"is_passed"`
	PolicyVersion   string    `json:"policy_version"`
}

func ToFinalGradeResponse(m *model.FinalGradeModel) FinalGradeResponse {
	return FinalGradeResponse{
		StudentID:       m.FinalGradeStudentID,
		CourseID:        m.FinalGradeCourseID,
		CIETotal:        m.FinalGradeCIETotal,
		CIEMax:          m.FinalGradeCIEMax,
		SEETotal:        m.FinalGradeSEETotal,
		SEEMax:          m.FinalGradeSEEMax,
		FinalTotal:      m.FinalGradeFinalTotal,
		FinalMax:        m.FinalGradeFinalMax,
		FinalPercentage: m.FinalGradePercentage,
		LetterGrade:     m.FinalGradeLetter,
		GradePoints:     m.FinalGradeGradePoints,
		IsPassed:        m.FinalGradeIsPassed,
		PolicyVersion:   m.FinalGradePolicyVersion,
	}
}

/* ==============================
   SEMESTER SUBJECT
============================== */

type AddSemesterSubjectRequest struct {
	StudentID    uuid.UUID `json:"student_id" validate:"required"`
	Semester     int       `json:"semester" validate:"required,gte=1,lte=12"`
	AcademicYear string    `json:"academic_year" validate:"required,max=9"`

	SubjectCode string `json:"subject_code" validate:"required,max=16"`
	SubjectName string `json:"subject_name" validate:"required,max=120"`
	Credits     int    `json:"credits" validate:"required,gte=1,lte=20"`
}

type UpdateSubjectCreditsRequest struct {
	Credits int `json:"credits" validate:"required,gte=1,lte=20"`
}

type SetGradeRequest struct {
	LetterGrade string `json:"letter_grade" validate:"required,max=2"`
}

type SemesterSubjectResponse struct {
	SubjectID    uuid.UUID `json:"subject_id"`
	StudentID    uuid.UUID `json:"student_id"`
	Semester     int       `json:"semester"`
	AcademicYear string    `json:"academic_year"`
	SubjectCode  string    `json:"subject_code"`
	SubjectName  string    `json:"subject_name"`
	Credits      int       `json:"credits"`
	LetterGrade  *string   `json:"letter_grade"`
	GradePoint   *int      `json:"grade_point"`
	CreatedAt    time.Time `json:"created_at"`
}

func ToSemesterSubjectResponse(m *model.SemesterSubjectModel) SemesterSubjectResponse {
	return SemesterSubjectResponse{
		SubjectID:    m.SemesterSubjectID,
		StudentID:    m.SemesterSubjectStudentID,
		Semester:     m.SemesterSubjectSemester,
		AcademicYear: m.SemesterSubjectAcademicYear,
		SubjectCode:  m.SemesterSubjectCode,
		SubjectName:  m.SemesterSubjectName,
		Credits:      m.SemesterSubjectCredits,
		LetterGrade:  m.SemesterSubjectLetterGrade,
		GradePoint:   m.SemesterSubjectGradePoint,
		CreatedAt:    m.SemesterSubjectCreatedAt,
	}
}

// SemesterSummaryResponse = kontrak metadata + daftar mata kuliah.
type SemesterSummaryResponse struct {
	Metadata service.SemesterMetadata  `json:"metadata"`
	Subjects []SemesterSubjectResponse `json:"subjects"`
}
