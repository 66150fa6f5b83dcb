// file: internals/features/obe/policy/policy.go
package policy

import (
	"errors"
	"fmt"
)

/* ========================================================
   GRADING POLICY (versioned)
   Semua konstanta kebijakan institusi dikumpulkan di sini
   dan dioper ke setiap kalkulasi, bukan di-hardcode.
======================================================== */

// GradeBand satu baris tabel nilai huruf (batas bawah inklusif).
type GradeBand struct {
	Letter     string  `json:"letter"`
	GradePoint int     `json:"grade_point"`
	MinPercent float64 `json:"min_percent"`
}

// POLevelBand cut-point diskritisasi attainment CO → level PO (0..3).
type POLevelBand struct {
	Level      int     `json:"level"`
	MinPercent float64 `json:"min_percent"`
}

// ComponentWeights bobot komponen nilai akhir (assigned_weight).
type ComponentWeights struct {
	CIE  float64 `json:"cie"`
	AAT  float64 `json:"aat"`
	Quiz float64 `json:"quiz"`
	SEE  float64 `json:"see"`
}

type GradingPolicy struct {
	Version string `json:"version"`

	// Ambang lulus per-soal/CO (fraksi dari max_marks).
	// Beda konsep dengan DashboardTargetPercent di bawah!
	PassFraction float64 `json:"pass_fraction"`

	// Target visual dashboard (pembanding tampilan, tidak dipakai hitung).
	DashboardTargetPercent float64 `json:"dashboard_target_percent"`

	// Tabel nilai huruf, urut turun berdasarkan MinPercent.
	GradeBands []GradeBand `json:"grade_bands"`

	// Grade point minimal dinyatakan lulus (= grade point P).
	PassGradePoint int `json:"pass_grade_point"`

	// Banding level PO, urut turun berdasarkan MinPercent.
	POLevelBands []POLevelBand `json:"po_level_bands"`

	// Batas total sks per semester + sks mata kuliah yang diizinkan.
	SemesterCreditCap int   `json:"semester_credit_cap"`
	AllowedCredits    []int `json:"allowed_credits"`

	Weights ComponentWeights `json:"weights"`
}

// Default kebijakan standar institusi.
func Default() GradingPolicy {
	return GradingPolicy{
		Version:                "2025.1",
		PassFraction:           0.60,
		DashboardTargetPercent: 70,
		GradeBands: []GradeBand{
			{Letter: "S", GradePoint: 10, MinPercent: 90},
			{Letter: "A", GradePoint: 9, MinPercent: 80},
			{Letter: "B", GradePoint: 8, MinPercent: 70},
			{Letter: "C", GradePoint: 7, MinPercent: 60},
			{Letter: "D", GradePoint: 6, MinPercent: 50},
			{Letter: "E", GradePoint: 5, MinPercent: 45},
			{Letter: "P", GradePoint: 4, MinPercent: 40},
			{Letter: "F", GradePoint: 0, MinPercent: 0},
		},
		PassGradePoint: 4,
		POLevelBands: []POLevelBand{
			{Level: 3, MinPercent: 80},
			{Level: 2, MinPercent: 70},
			{Level: 1, MinPercent: 60},
			{Level: 0, MinPercent: 0},
		},
		SemesterCreditCap: 20,
		AllowedCredits:    []int{1, 3, 4},
		Weights: ComponentWeights{
			CIE:  30,
			AAT:  10,
			Quiz: 10,
			SEE:  50,
		},
	}
}

func (p GradingPolicy) Validate() error {
	if p.PassFraction <= 0 || p.PassFraction > 1 {
		return fmt.Errorf("pass_fraction %.2f di luar (0,1]", p.PassFraction)
	}
	if len(p.GradeBands) == 0 {
		return errors.New("grade_bands kosong")
	}
	prev := 101.0
	for _, b := range p.GradeBands {
		if b.MinPercent >= prev {
			return fmt.Errorf("grade_bands harus urut turun, %s min=%.2f", b.Letter, b.MinPercent)
		}
		prev = b.MinPercent
	}
	if len(p.POLevelBands) == 0 {
		return errors.New("po_level_bands kosong")
	}
	prev = 101.0
	for _, b := range p.POLevelBands {
		if b.MinPercent >= prev {
			return fmt.Errorf("po_level_bands harus urut turun, level=%d min=%.2f", b.Level, b.MinPercent)
		}
		prev = b.MinPercent
	}
	if p.SemesterCreditCap <= 0 {
		return errors.New("semester_credit_cap harus > 0")
	}
	return nil
}

// LetterFor mencari huruf + grade point untuk persentase akhir.
// Batas bawah band inklusif.
func (p GradingPolicy) LetterFor(percent float64) (string, int) {
	for _, b := range p.GradeBands {
		if percent >= b.MinPercent {
			return b.Letter, b.GradePoint
		}
	}
	last := p.GradeBands[len(p.GradeBands)-1]
	return last.Letter, last.GradePoint
}

// POLevelFor mendiskritkan persen attainment CO menjadi level 0..3.
func (p GradingPolicy) POLevelFor(percent float64) int {
	for _, b := range p.POLevelBands {
		if percent >= b.MinPercent {
			return b.Level
		}
	}
	return 0
}

// PointsForLetter mencari grade point untuk satu huruf di tabel band.
func (p GradingPolicy) PointsForLetter(letter string) (int, bool) {
	for _, b := range p.GradeBands {
		if b.Letter == letter {
			return b.GradePoint, true
		}
	}
	return 0, false
}

func (p GradingPolicy) CreditAllowed(credits int) bool {
	for _, c := range p.AllowedCredits {
		if credits == c {
			return true
		}
	}
	return false
}

/* ========================================================
   Bucket status per-siswa (tampilan analisis vertikal)
======================================================== */

const (
	StatusExcellent        = "excellent"
	StatusGood             = "good"
	StatusAverage          = "average"
	StatusNeedsImprovement = "needs_improvement"
	StatusNotAttempted     = "not_attempted"
	StatusNotSelected      = "not_selected"
)

// PerformanceBucket mengelompokkan persentase skor siswa per soal/CO.
func PerformanceBucket(percent float64) string {
	switch {
	case percent >= 80:
		return StatusExcellent
	case percent >= 60:
		return StatusGood
	case percent >= 40:
		return StatusAverage
	default:
		return StatusNeedsImprovement
	}
}
