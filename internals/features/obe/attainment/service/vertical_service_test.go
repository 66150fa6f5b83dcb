package service

import (
	"testing"

	"github.com/google/uuid"

	"obetrack_backend/internals/features/obe/policy"
)

func intPtr(n int) *int { return &n }

func strPtr(s string) *string { return &s }

func TestAnalyzeVerticalsBasic(t *testing.T) {
	pol := policy.Default()
	s1, s2, s3 := uuid.New(), uuid.New(), uuid.New()

	questions := []QuestionInput{
		{
			ColumnName: "q1a",
			MaxMarks:   10,
			CONumber:   intPtr(1),
			Marks: []StudentMark{
				{StudentID: s1, State: MarkCounted, Marks: 9},
				{StudentID: s2, State: MarkCounted, Marks: 5},
				{StudentID: s3, State: MarkCounted, Marks: 6},
			},
		},
	}

	out := AnalyzeVerticals(pol, questions)
	if len(out) != 1 {
		t.Fatalf("len = %d, want 1", len(out))
	}

	v := out[0]
	if v.ThresholdMark != 6 {
		t.Errorf("ThresholdMark = %.2f, want 6", v.ThresholdMark)
	}
	if v.Attempts != 3 {
		t.Errorf("Attempts = %d, want 3", v.Attempts)
	}
	// threshold inklusif: 9 dan 6 lolos, 5 tidak
	if v.AboveThreshold != 2 {
		t.Errorf("AboveThreshold = %d, want 2", v.AboveThreshold)
	}
	if v.AttainmentPercent != 66.67 {
		t.Errorf("AttainmentPercent = %.2f, want 66.67", v.AttainmentPercent)
	}
	if v.Average != 6.67 {
		t.Errorf("Average = %.2f, want 6.67", v.Average)
	}
	if v.NoData {
		t.Error("NoData = true, want false")
	}
}

func TestAnalyzeVerticalsOptionalNotSelected(t *testing.T) {
	pol := policy.Default()
	s1, s2 := uuid.New(), uuid.New()

	// s1 memilih q2a, s2 memilih q2b: masing-masing kolom hanya punya
	// 1 attempt, bukan 2 dengan nol.
	questions := []QuestionInput{
		{
			ColumnName:      "q2a",
			MaxMarks:        10,
			CONumber:        intPtr(2),
			OptionalGroupID: strPtr("g1"),
			Marks: []StudentMark{
				{StudentID: s1, State: MarkCounted, Marks: 8},
				{StudentID: s2, State: MarkNotSelected},
			},
		},
		{
			ColumnName:      "q2b",
			MaxMarks:        10,
			CONumber:        intPtr(2),
			OptionalGroupID: strPtr("g1"),
			Marks: []StudentMark{
				{StudentID: s1, State: MarkNotSelected},
				{StudentID: s2, State: MarkCounted, Marks: 4},
			},
		},
	}

	out := AnalyzeVerticals(pol, questions)
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}

	for _, v := range out {
		if v.Attempts != 1 {
			t.Errorf("%s: Attempts = %d, want 1", v.ColumnName, v.Attempts)
		}
		if len(v.Students) != 2 {
			t.Errorf("%s: Students = %d, want 2 (termasuk not_selected)", v.ColumnName, len(v.Students))
		}
	}

	// q2a: 8/10 lolos threshold 6
	if out[0].AboveThreshold != 1 || out[0].Average != 8 {
		t.Errorf("q2a: AboveThreshold=%d Average=%.2f, want 1 / 8", out[0].AboveThreshold, out[0].Average)
	}
	// q2b: 4/10 tidak lolos
	if out[1].AboveThreshold != 0 || out[1].AttainmentPercent != 0 {
		t.Errorf("q2b: AboveThreshold=%d Percent=%.2f, want 0 / 0", out[1].AboveThreshold, out[1].AttainmentPercent)
	}

	selected := 0
	for _, st := range out[0].Students {
		if st.Status == policy.StatusNotSelected {
			selected++
		}
	}
	if selected != 1 {
		t.Errorf("q2a: not_selected = %d, want 1", selected)
	}
}

func TestAnalyzeVerticalsNoData(t *testing.T) {
	pol := policy.Default()

	out := AnalyzeVerticals(pol, []QuestionInput{
		{ColumnName: "q3", MaxMarks: 10, CONumber: intPtr(3)},
	})
	if len(out) != 1 {
		t.Fatalf("len = %d, want 1", len(out))
	}
	v := out[0]
	if !v.NoData {
		t.Error("NoData = false, want true")
	}
	if v.Average != 0 || v.AttainmentPercent != 0 {
		t.Errorf("Average=%.2f Percent=%.2f, want 0/0", v.Average, v.AttainmentPercent)
	}
}

func TestAnalyzeVerticalsSkipsIgnoredColumns(t *testing.T) {
	pol := policy.Default()
	s1 := uuid.New()

	out := AnalyzeVerticals(pol, []QuestionInput{
		{ColumnName: "q1", MaxMarks: 0, Marks: []StudentMark{{StudentID: s1, State: MarkCounted, Marks: 3}}},
		{ColumnName: "q2", MaxMarks: 5, Marks: []StudentMark{{StudentID: s1, State: MarkCounted, Marks: 3}}},
	})
	if len(out) != 1 || out[0].ColumnName != "q2" {
		t.Fatalf("kolom max_marks=0 harus diabaikan total, got %+v", out)
	}
}
