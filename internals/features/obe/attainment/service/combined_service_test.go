package service

import "testing"

func TestCombineAcrossAssessments(t *testing.T) {
	perAssessment := [][]COAssessmentResult{
		{ // CIE1
			{CONumber: 1, TotalMaxMarks: 20, Attempts: 3, AboveThreshold: 2},
			{CONumber: 2, TotalMaxMarks: 10, Attempts: 3, AboveThreshold: 3},
		},
		{ // CIE2 — tidak memetakan CO2 sama sekali
			{CONumber: 1, TotalMaxMarks: 15, Attempts: 2, AboveThreshold: 1},
		},
	}

	out := CombineAcrossAssessments(perAssessment)
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}

	co1 := out[0]
	if co1.CONumber != 1 || co1.TotalAttempts != 5 || co1.TotalAboveThreshold != 3 {
		t.Errorf("CO1 = %+v, want attempts=5 above=3", co1)
	}
	if co1.OverallAttainmentPercent != 60 {
		t.Errorf("CO1 percent = %.2f, want 60", co1.OverallAttainmentPercent)
	}

	// CO2: assessment yang absen tidak menyumbang nol — tetap 3/3
	co2 := out[1]
	if co2.TotalAttempts != 3 || co2.OverallAttainmentPercent != 100 {
		t.Errorf("CO2 = %+v, want attempts=3 percent=100", co2)
	}
}

func TestCombineNoDataPropagates(t *testing.T) {
	out := CombineAcrossAssessments([][]COAssessmentResult{
		{{CONumber: 1, TotalMaxMarks: 10, Attempts: 0, AboveThreshold: 0, NoData: true}},
	})
	if len(out) != 1 {
		t.Fatalf("len = %d, want 1", len(out))
	}
	if !out[0].NoData {
		t.Error("NoData = false, want true")
	}
	if out[0].OverallAttainmentPercent != 0 {
		t.Errorf("percent = %.2f, want 0", out[0].OverallAttainmentPercent)
	}
}

func TestCombinePercentBounds(t *testing.T) {
	out := CombineAcrossAssessments([][]COAssessmentResult{
		{{CONumber: 1, Attempts: 7, AboveThreshold: 7}},
		{{CONumber: 1, Attempts: 5, AboveThreshold: 0}},
	})
	p := out[0].OverallAttainmentPercent
	if p < 0 || p > 100 {
		t.Errorf("percent %.2f di luar [0,100]", p)
	}
	if p != 58.33 {
		t.Errorf("percent = %.2f, want 58.33", p)
	}
}

func TestCombineEmptyInput(t *testing.T) {
	if out := CombineAcrossAssessments(nil); len(out) != 0 {
		t.Fatalf("input kosong harus menghasilkan slice kosong, got %+v", out)
	}
}
