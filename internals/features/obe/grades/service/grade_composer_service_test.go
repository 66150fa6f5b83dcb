package service

import (
	"testing"

	"github.com/google/uuid"

	"obetrack_backend/internals/features/obe/policy"
)

func TestComposeFinalGradeFullScheme(t *testing.T) {
	pol := policy.Default()

	in := GradeInput{
		StudentID: uuid.New(),
		CIE: []ComponentScore{
			{Raw: 45, OriginalMax: 50, Weight: 30}, // 27
			{Raw: 40, OriginalMax: 50, Weight: 30}, // 24
		},
		AAT:  &ComponentScore{Raw: 9, OriginalMax: 10, Weight: 10},   // 9
		Quiz: &ComponentScore{Raw: 8, OriginalMax: 10, Weight: 10},   // 8
		SEE:  &ComponentScore{Raw: 90, OriginalMax: 100, Weight: 50}, // 45
	}

	g := ComposeFinalGrade(pol, in)

	// CIE avg (27+24)/2 = 25.5, + AAT 9 + Quiz 8 = 42.5
	if g.CIETotal != 42.5 {
		t.Errorf("CIETotal = %.2f, want 42.5", g.CIETotal)
	}
	if g.CIEMax != 50 {
		t.Errorf("CIEMax = %.2f, want 50", g.CIEMax)
	}
	if g.SEETotal != 45 || g.SEEMax != 50 {
		t.Errorf("SEE = %.2f/%.2f, want 45/50", g.SEETotal, g.SEEMax)
	}
	if g.FinalTotal != 87.5 || g.FinalMax != 100 {
		t.Errorf("Final = %.2f/%.2f, want 87.5/100", g.FinalTotal, g.FinalMax)
	}
	if g.LetterGrade != "A" || g.GradePoints != 9 {
		t.Errorf("grade = %s/%d, want A/9", g.LetterGrade, g.GradePoints)
	}
	if !g.IsPassed {
		t.Error("IsPassed = false, want true")
	}
}

// CIE yang belum diupload tidak menekan rata-rata: avg hanya atas
// komponen yang ADA.
func TestComposeFinalGradePartialCIE(t *testing.T) {
	pol := policy.Default()

	in := GradeInput{
		StudentID: uuid.New(),
		CIE: []ComponentScore{
			{Raw: 50, OriginalMax: 50, Weight: 30}, // 30 penuh
		},
	}

	g := ComposeFinalGrade(pol, in)
	if g.CIETotal != 30 {
		t.Errorf("CIETotal = %.2f, want 30 (bukan 30/3)", g.CIETotal)
	}
	if g.CIEMax != pol.Weights.CIE {
		t.Errorf("CIEMax = %.2f, want %.2f", g.CIEMax, pol.Weights.CIE)
	}
	// komponen absen keluar dari max juga → 30/30 = 100%
	if g.FinalPercent != 100 {
		t.Errorf("FinalPercent = %.2f, want 100", g.FinalPercent)
	}
}

func TestComposeFinalGradeNoComponents(t *testing.T) {
	pol := policy.Default()

	g := ComposeFinalGrade(pol, GradeInput{StudentID: uuid.New()})
	if g.FinalMax != 0 || g.FinalPercent != 0 {
		t.Errorf("tanpa komponen: Final = %.2f%%/%.2f, want 0", g.FinalPercent, g.FinalMax)
	}
	if g.LetterGrade != "F" || g.IsPassed {
		t.Errorf("tanpa komponen harus F belum lulus, got %s passed=%v", g.LetterGrade, g.IsPassed)
	}
}

func TestComposeFinalGradeFailingScore(t *testing.T) {
	pol := policy.Default()

	in := GradeInput{
		StudentID: uuid.New(),
		CIE:       []ComponentScore{{Raw: 10, OriginalMax: 50, Weight: 30}}, // 6
		SEE:       &ComponentScore{Raw: 25, OriginalMax: 100, Weight: 50},   // 12.5
	}
	g := ComposeFinalGrade(pol, in)

	// 18.5/80 = 23.13% → F/0
	if g.FinalPercent != 23.13 {
		t.Errorf("FinalPercent = %.2f, want 23.13", g.FinalPercent)
	}
	if g.LetterGrade != "F" || g.GradePoints != 0 || g.IsPassed {
		t.Errorf("grade = %s/%d passed=%v, want F/0 false", g.LetterGrade, g.GradePoints, g.IsPassed)
	}
}

func TestComponentScoreScaledClamp(t *testing.T) {
	cases := []struct {
		name string
		cs   ComponentScore
		want float64
	}{
		{"normal", ComponentScore{Raw: 25, OriginalMax: 50, Weight: 30}, 15},
		{"overshoot di-clamp ke weight", ComponentScore{Raw: 60, OriginalMax: 50, Weight: 30}, 30},
		{"negatif di-clamp ke 0", ComponentScore{Raw: -5, OriginalMax: 50, Weight: 30}, 0},
		{"original_max 0 aman", ComponentScore{Raw: 10, OriginalMax: 0, Weight: 30}, 0},
	}
	for _, c := range cases {
		if got := c.cs.Scaled(); got != c.want {
			t.Errorf("%s: Scaled() = %.2f, want %.2f", c.name, got, c.want)
		}
	}
}
