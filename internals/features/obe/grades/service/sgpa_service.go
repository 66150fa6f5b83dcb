// file: internals/features/obe/grades/service/sgpa_service.go
package service

import (
	"fmt"

	"obetrack_backend/internals/features/obe/grades/model"
	"obetrack_backend/internals/features/obe/policy"
)

/* ========================================================
   SEMESTER GPA ENGINE
   State machine murni atas baris mata kuliah satu bucket
   (student, semester, academic_year). Selalu di-derive
   ulang dari nol pada setiap mutasi: idempoten, stateless.
======================================================== */

// SemesterState hasil derive dari baris mata kuliah saat ini.
type SemesterState string

const (
	SemesterEmpty            SemesterState = "EMPTY"
	SemesterInProgress       SemesterState = "IN_PROGRESS"
	SemesterCompleteUngraded SemesterState = "COMPLETE_UNGRADED"
	SemesterFinal            SemesterState = "FINAL"
)

// SubjectRow satu mata kuliah (bentuk murni, tanpa DB).
type SubjectRow struct {
	Code       string
	Name       string
	Credits    int
	GradePoint *int // nil = belum dinilai
}

// SemesterMetadata kontrak metadata semester untuk UI.
type SemesterMetadata struct {
	TotalCredits     int           `json:"totalCredits"`
	RemainingCredits int           `json:"remainingCredits"`
	ProvisionalSGPA  float64       `json:"provisionalSGPA"`
	Status           string        `json:"status"`
	IsFinal          bool          `json:"isFinal"`
	CanAddMore       bool          `json:"canAddMore"`
	State            SemesterState `json:"state"`
}

// CreditOverflowError penolakan mutasi yang melewati batas sks.
// Tidak pernah di-clamp diam-diam.
type CreditOverflowError struct {
	Attempted int
	Cap       int
}

func (e *CreditOverflowError) Error() string {
	return fmt.Sprintf("total sks %d melebihi batas %d sks per semester", e.Attempted, e.Cap)
}

// CheckCreditAdd memvalidasi penambahan sks terhadap batas semester.
// delta = sks yang akan ditambahkan (untuk edit: sks baru − sks lama).
func CheckCreditAdd(pol policy.GradingPolicy, currentTotal, delta int) error {
	attempted := currentTotal + delta
	if attempted > pol.SemesterCreditCap {
		return &CreditOverflowError{Attempted: attempted, Cap: pol.SemesterCreditCap}
	}
	return nil
}

// DeriveSemester menghitung ulang metadata semester dari baris saat ini.
// - totalCredits termasuk mata kuliah yang belum dinilai
// - SGPA hanya atas mata kuliah yang SUDAH dinilai
// - status FINAL hanya bila credits == cap DAN semua sudah dinilai
func DeriveSemester(pol policy.GradingPolicy, subjects []SubjectRow) SemesterMetadata {
	md := SemesterMetadata{}

	var gradedCredits, weighted int
	ungraded := 0
	for _, s := range subjects {
		md.TotalCredits += s.Credits
		if s.GradePoint == nil {
			ungraded++
			continue
		}
		gradedCredits += s.Credits
		weighted += *s.GradePoint * s.Credits
	}

	md.RemainingCredits = pol.SemesterCreditCap - md.TotalCredits
	md.CanAddMore = md.RemainingCredits > 0

	if gradedCredits > 0 {
		md.ProvisionalSGPA = round2(float64(weighted) / float64(gradedCredits))
	}

	switch {
	case md.TotalCredits == 0:
		md.State = SemesterEmpty
	case md.TotalCredits < pol.SemesterCreditCap:
		md.State = SemesterInProgress
	case ungraded > 0:
		md.State = SemesterCompleteUngraded
	default:
		md.State = SemesterFinal
	}

	if md.State == SemesterFinal {
		md.Status = model.SemesterStatusFinal
		md.IsFinal = true
	} else {
		md.Status = model.SemesterStatusProvisional
	}

	return md
}
