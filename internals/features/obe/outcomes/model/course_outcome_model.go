// file: internals/features/obe/outcomes/model/course_outcome_model.go
package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Level Bloom yang dikenal.
const (
	BloomRemember   = "Remember"
	BloomUnderstand = "Understand"
	BloomApply      = "Apply"
	BloomAnalyze    = "Analyze"
	BloomEvaluate   = "Evaluate"
	BloomCreate     = "Create"
)

// CourseOutcomeModel merepresentasikan tabel `course_outcomes`.
// Deskripsi diperlakukan opaque: engine tidak peduli teks CO
// ditulis manusia atau generator.
type CourseOutcomeModel struct {
	CourseOutcomeID uuid.UUID `json:"course_outcome_id" gorm:"column:course_outcome_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	CourseOutcomeCourseID uuid.UUID `json:"course_outcome_course_id" gorm:"column:course_outcome_course_id;type:uuid;not null;index:idx_course_outcomes_course_number,unique,priority:1"`
	CourseOutcomeCONumber int       `json:"course_outcome_co_number" gorm:"column:course_outcome_co_number;not null;index:idx_course_outcomes_course_number,unique,priority:2"`

	CourseOutcomeDescription string `json:"course_outcome_description" gorm:"column:course_outcome_description;type:text;not null"`
	CourseOutcomeBloomLevel  string `json:"course_outcome_bloom_level" gorm:"column:course_outcome_bloom_level;type:varchar(16)"`

	// Matriks korelasi CO→PO sebagai JSONB:
	// key = po_number (string angka), value = correlation_level 1..3.
	// Absen = tidak ada mapping (bukan 0 eksplisit).
	CourseOutcomePOMappings datatypes.JSON `json:"course_outcome_po_mappings" gorm:"column:course_outcome_po_mappings;type:jsonb"`

	CourseOutcomeCreatedAt time.Time      `json:"course_outcome_created_at" gorm:"column:course_outcome_created_at;not null;autoCreateTime"`
	CourseOutcomeUpdatedAt time.Time      `json:"course_outcome_updated_at" gorm:"column:course_outcome_updated_at;not null;autoUpdateTime"`
	CourseOutcomeDeletedAt gorm.DeletedAt `json:"course_outcome_deleted_at" gorm:"column:course_outcome_deleted_at;index"`
}

func (CourseOutcomeModel) TableName() string {
	return "course_outcomes"
}

// POMappings membongkar kolom JSONB menjadi map po_number → korelasi.
func (m *CourseOutcomeModel) POMappings() (map[int]int, error) {
	out := map[int]int{}
	if len(m.CourseOutcomePOMappings) == 0 {
		return out, nil
	}
	var raw map[string]int
	if err := json.Unmarshal(m.CourseOutcomePOMappings, &raw); err != nil {
		return nil, fmt.Errorf("po_mappings co%d rusak: %w", m.CourseOutcomeCONumber, err)
	}
	for k, v := range raw {
		po, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("po_mappings co%d: key %q bukan angka", m.CourseOutcomeCONumber, k)
		}
		if v < 1 || v > 3 {
			return nil, fmt.Errorf("po_mappings co%d: korelasi po%d = %d di luar 1..3", m.CourseOutcomeCONumber, po, v)
		}
		out[po] = v
	}
	return out, nil
}

// SetPOMappings menyusun kolom JSONB dari map po_number → korelasi.
func (m *CourseOutcomeModel) SetPOMappings(mp map[int]int) error {
	raw := make(map[string]int, len(mp))
	for po, corr := range mp {
		raw[strconv.Itoa(po)] = corr
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	m.CourseOutcomePOMappings = datatypes.JSON(b)
	return nil
}
