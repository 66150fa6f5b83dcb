// file: internals/features/obe/outcomes/dto/outcomes_dto.go
package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	model "obetrack_backend/internals/features/obe/outcomes/model"
)

/* ==============================
   COURSE OUTCOME
============================== */

type CreateCourseOutcomeRequest struct {
	CourseOutcomeCourseID    uuid.UUID `json:"course_outcome_course_id" validate:"required"`
	CourseOutcomeCONumber    int       `json:"course_outcome_co_number" validate:"required,gte=1,lte=20"`
	CourseOutcomeDescription string    `json:"course_outcome_description" validate:"required"`
	CourseOutcomeBloomLevel  string    `json:"course_outcome_bloom_level" validate:"omitempty,oneof=Remember Understand Apply Analyze Evaluate Create"`

	// po_number → correlation_level (1..3); absen = tanpa mapping
	CourseOutcomePOMappings map[int]int `json:"course_outcome_po_mappings" validate:"omitempty"`
}

// ValidateMappings cek manual level korelasi (validator v10 tidak
// menjangkau value map ber-key int).
func (r CreateCourseOutcomeRequest) ValidateMappings() error {
	for po, corr := range r.CourseOutcomePOMappings {
		if po < 1 {
			return fmt.Errorf("po_number %d tidak valid", po)
		}
		if corr < 1 || corr > 3 {
			return fmt.Errorf("korelasi po%d = %d di luar 1..3", po, corr)
		}
	}
	return nil
}

type CourseOutcomeResponse struct {
	CourseOutcomeID          uuid.UUID   `json:"course_outcome_id"`
	CourseOutcomeCourseID    uuid.UUID   `json:"course_outcome_course_id"`
	CourseOutcomeCONumber    int         `json:"course_outcome_co_number"`
	CourseOutcomeDescription string      `json:"course_outcome_description"`
	CourseOutcomeBloomLevel  string      `json:"course_outcome_bloom_level"`
	CourseOutcomePOMappings  map[int]int `json:"course_outcome_po_mappings"`
	CourseOutcomeCreatedAt   time.Time   `json:"course_outcome_created_at"`
}

func ToCourseOutcomeResponse(m *model.CourseOutcomeModel) (CourseOutcomeResponse, error) {
	mp, err := m.POMappings()
	if err != nil {
		return CourseOutcomeResponse{}, err
	}
	return CourseOutcomeResponse{
		CourseOutcomeID:          m.CourseOutcomeID,
		CourseOutcomeCourseID:    m.CourseOutcomeCourseID,
		CourseOutcomeCONumber:    m.CourseOutcomeCONumber,
		CourseOutcomeDescription: m.CourseOutcomeDescription,
		CourseOutcomeBloomLevel:  m.CourseOutcomeBloomLevel,
		CourseOutcomePOMappings:  mp,
		CourseOutcomeCreatedAt:   m.CourseOutcomeCreatedAt,
	}, nil
}

/* ==============================
   PROGRAM OUTCOME
============================== */

type CreateProgramOutcomeRequest struct {
	ProgramOutcomePONumber    int    `json:"program_outcome_po_number" validate:"required,gte=1,lte=20"`
	ProgramOutcomeDescription string `json:"program_outcome_description" validate:"required"`
}

type ProgramOutcomeResponse struct {
	ProgramOutcomeID          uuid.UUID `json:"program_outcome_id"`
	ProgramOutcomePONumber    int       `json:"program_outcome_po_number"`
	ProgramOutcomeDescription string    `json:"program_outcome_description"`
	ProgramOutcomeCreatedAt   time.Time `json:"program_outcome_created_at"`
}

func ToProgramOutcomeResponse(m *model.ProgramOutcomeModel) ProgramOutcomeResponse {
	return ProgramOutcomeResponse{
		ProgramOutcomeID:          m.ProgramOutcomeID,
		ProgramOutcomePONumber:    m.ProgramOutcomePONumber,
		ProgramOutcomeDescription: m.ProgramOutcomeDescription,
		ProgramOutcomeCreatedAt:   m.ProgramOutcomeCreatedAt,
	}
}
