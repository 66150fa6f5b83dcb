// file: internals/features/obe/attainment/service/errors.go
package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Prasyarat recompute yang hilang dibedakan per jenis:
// remediasi-nya beda, jadi error-nya juga beda.

// ErrNoCourseOutcomes: course belum punya definisi CO sama sekali.
var ErrNoCourseOutcomes = errors.New("course outcomes belum didefinisikan untuk course ini")

// NoQuestionMappingError: assessment ada tapi CSV mapping CO
// belum diupload (tidak ada kolom soal).
type NoQuestionMappingError struct {
	AssessmentID   uuid.UUID
	AssessmentType string
}

func (e *NoQuestionMappingError) Error() string {
	return fmt.Sprintf("CSV mapping CO belum diupload untuk assessment %s (%s)", e.AssessmentType, e.AssessmentID)
}
