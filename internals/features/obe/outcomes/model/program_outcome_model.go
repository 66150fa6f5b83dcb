// file: internals/features/obe/outcomes/model/program_outcome_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgramOutcomeModel merepresentasikan tabel `program_outcomes`
// (milik institusi, dipakai bersama lintas course).
type ProgramOutcomeModel struct {
	ProgramOutcomeID uuid.UUID `json:"program_outcome_id" gorm:"column:program_outcome_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	ProgramOutcomePONumber    int    `json:"program_outcome_po_number" gorm:"column:program_outcome_po_number;not null;uniqueIndex:uq_program_outcomes_number"`
	ProgramOutcomeDescription string `json:"program_outcome_description" gorm:"column:program_outcome_description;type:text;not null"`

	ProgramOutcomeCreatedAt time.Time      `json:"program_outcome_created_at" gorm:"column:program_outcome_created_at;not null;autoCreateTime"`
	ProgramOutcomeUpdatedAt time.Time      `json:"program_outcome_updated_at" gorm:"column:program_outcome_updated_at;not null;autoUpdateTime"`
	ProgramOutcomeDeletedAt gorm.DeletedAt `json:"program_outcome_deleted_at" gorm:"column:program_outcome_deleted_at;index"`
}

func (ProgramOutcomeModel) TableName() string {
	return "program_outcomes"
}
