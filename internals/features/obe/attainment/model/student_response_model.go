// file: internals/features/obe/attainment/model/student_response_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentResponseModel merepresentasikan tabel `student_responses`:
// skor mentah ter-normalisasi per siswa per kolom soal.
// Baris ini hasil ingestion eksternal; engine hanya membaca.
type StudentResponseModel struct {
	StudentResponseID uuid.UUID `json:"student_response_id" gorm:"column:student_response_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	StudentResponseStudentID    uuid.UUID `json:"student_response_student_id" gorm:"column:student_response_student_id;type:uuid;not null;index:idx_student_responses_unique,unique,priority:2"`
	StudentResponseAssessmentID uuid.UUID `json:"student_response_assessment_id" gorm:"column:student_response_assessment_id;type:uuid;not null;index:idx_student_responses_unique,unique,priority:1"`
	StudentResponseColumnName   string    `json:"student_response_column_name" gorm:"column:student_response_column_name;type:varchar(16);not null;index:idx_student_responses_unique,unique,priority:3"`

	StudentResponseMarks float64 `json:"student_response_marks" gorm:"column:student_response_marks;type:numeric(6,2);not null;default:0"`

	// Hanya bermakna untuk anggota optional_group:
	// true  = alternatif yang dikerjakan siswa
	// false = alternatif yang TIDAK dipilih (tidak pernah dihitung nol!)
	// NULL  = soal biasa (selalu dihitung)
	StudentResponseSelected *bool `json:"student_response_selected" gorm:"column:student_response_selected"`

	StudentResponseCreatedAt time.Time `json:"student_response_created_at" gorm:"column:student_response_created_at;not null;autoCreateTime"`
}

func (StudentResponseModel) TableName() string {
	return "student_responses"
}
