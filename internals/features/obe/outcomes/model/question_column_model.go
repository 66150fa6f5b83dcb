// file: internals/features/obe/outcomes/model/question_column_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// QuestionColumnModel merepresentasikan tabel `question_columns`:
// definisi kolom soal satu assessment (hasil upload CSV mapping CO).
// Immutable sebagai input kalkulasi; re-upload mengganti seluruh set.
type QuestionColumnModel struct {
	QuestionColumnID uuid.UUID `json:"question_column_id" gorm:"column:question_column_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	QuestionColumnAssessmentID uuid.UUID `json:"question_column_assessment_id" gorm:"column:question_column_assessment_id;type:uuid;not null;index:idx_question_columns_assessment_name,unique,priority:1"`
	QuestionColumnName         string    `json:"question_column_name" gorm:"column:question_column_name;type:varchar(16);not null;index:idx_question_columns_assessment_name,unique,priority:2"`

	// 0 = kolom diabaikan, tidak pernah masuk agregat mana pun.
	QuestionColumnMaxMarks float64 `json:"question_column_max_marks" gorm:"column:question_column_max_marks;type:numeric(6,2);not null"`

	// NULL = belum dipetakan ke CO.
	QuestionColumnCONumber *int `json:"question_column_co_number" gorm:"column:question_column_co_number"`

	// NULL = bukan soal pilihan; sama-nilai = pasangan alternatif
	// yang saling eksklusif (siswa memilih salah satu).
	QuestionColumnOptionalGroupID *string `json:"question_column_optional_group_id" gorm:"column:question_column_optional_group_id;type:varchar(32)"`

	QuestionColumnCreatedAt time.Time `json:"question_column_created_at" gorm:"column:question_column_created_at;not null;autoCreateTime"`
}

func (QuestionColumnModel) TableName() string {
	return "question_columns"
}
