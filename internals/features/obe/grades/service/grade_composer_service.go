// file: internals/features/obe/grades/service/grade_composer_service.go
package service

import (
	"math"

	"github.com/google/uuid"

	"obetrack_backend/internals/features/obe/policy"
)

/* ========================================================
   STUDENT GRADE COMPOSER
   CIE (s/d 3 komponen) + AAT + QUIZ + SEE → nilai akhir.
======================================================== */

// ComponentScore satu komponen nilai mentah + skema penimbangannya.
type ComponentScore struct {
	Raw         float64 // skor mentah siswa
	OriginalMax float64 // max asli assessment (mis. CIE 50)
	Weight      float64 // assigned_weight (mis. CIE 30)
}

// GradeInput komponen nilai satu siswa untuk satu course.
// Komponen yang belum ada (belum diupload) = nil / slice kosong,
// dan TIDAK dianggap nol.
type GradeInput struct {
	StudentID uuid.UUID
	CIE       []ComponentScore // hanya CIE yang sudah ada
	AAT       *ComponentScore
	Quiz      *ComponentScore
	SEE       *ComponentScore
}

// FinalGrade hasil komposisi nilai akhir satu siswa.
type FinalGrade struct {
	StudentID    uuid.UUID `json:"student_id"`
	CIETotal     float64   `json:"cie_total"`
	CIEMax       float64   `json:"cie_max"`
	SEETotal     float64   `json:"see_total"`
	SEEMax       float64   `json:"see_max"`
	FinalTotal   float64   `json:"final_total"`
	FinalMax     float64   `json:"final_max"`
	FinalPercent float64   `json:"final_percentage"`
	LetterGrade  string    `json:"letter_grade"`
	GradePoints  int       `json:"grade_points"`
	IsPassed     bool      `json:"is_passed"`
}

// Scaled menghitung raw × (weight/original_max), clamp ke [0, weight]
// untuk menyerap overshoot floating-point, lalu bulatkan 2 desimal.
func (cs ComponentScore) Scaled() float64 {
	if cs.OriginalMax <= 0 {
		return 0
	}
	scaled := cs.Raw * (cs.Weight / cs.OriginalMax)
	if scaled < 0 {
		scaled = 0
	}
	if scaled > cs.Weight {
		scaled = cs.Weight
	}
	return round2(scaled)
}

// ComposeFinalGrade menyusun nilai akhir satu siswa. Rata-rata CIE
// dihitung hanya dari komponen CIE yang ADA, jadi CIE yang belum
// diupload tidak menekan rata-rata sebelum lengkap. AAT/QUIZ/SEE yang
// absen juga dikeluarkan dari total dan max-nya, sehingga persentase
// tetap adil pada skema parsial.
func ComposeFinalGrade(pol policy.GradingPolicy, in GradeInput) FinalGrade {
	g := FinalGrade{StudentID: in.StudentID}

	if len(in.CIE) > 0 {
		var sum float64
		for _, c := range in.CIE {
			sum += c.Scaled()
		}
		g.CIETotal = round2(sum / float64(len(in.CIE)))
		g.CIEMax = pol.Weights.CIE
	}
	if in.AAT != nil {
		g.CIETotal = round2(g.CIETotal + in.AAT.Scaled())
		g.CIEMax += in.AAT.Weight
	}
	if in.Quiz != nil {
		g.CIETotal = round2(g.CIETotal + in.Quiz.Scaled())
		g.CIEMax += in.Quiz.Weight
	}
	if in.SEE != nil {
		g.SEETotal = in.SEE.Scaled()
		g.SEEMax = in.SEE.Weight
	}

	g.FinalTotal = round2(g.CIETotal + g.SEETotal)
	g.FinalMax = g.CIEMax + g.SEEMax

	if g.FinalMax > 0 {
		g.FinalPercent = round2(g.FinalTotal / g.FinalMax * 100)
	}

	g.LetterGrade, g.GradePoints = pol.LetterFor(g.FinalPercent)
	g.IsPassed = g.GradePoints >= pol.PassGradePoint

	return g
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
