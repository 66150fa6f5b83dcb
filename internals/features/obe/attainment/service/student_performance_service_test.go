package service

import (
	"testing"

	"github.com/google/uuid"

	"obetrack_backend/internals/features/obe/policy"
)

func TestStudentBreakdown(t *testing.T) {
	pol := policy.Default()
	target, other := uuid.New(), uuid.New()

	questions := []QuestionInput{
		{
			ColumnName: "q1a", MaxMarks: 10, CONumber: intPtr(1),
			Marks: []StudentMark{
				{StudentID: target, State: MarkCounted, Marks: 9},
				{StudentID: other, State: MarkCounted, Marks: 3},
			},
		},
		{
			ColumnName: "q1b", MaxMarks: 10, CONumber: intPtr(1),
			Marks: []StudentMark{
				{StudentID: target, State: MarkCounted, Marks: 4},
			},
		},
		{
			ColumnName: "q2a", MaxMarks: 10, CONumber: intPtr(2), OptionalGroupID: strPtr("g1"),
			Marks: []StudentMark{
				{StudentID: target, State: MarkNotSelected},
			},
		},
	}

	details, results := StudentBreakdown(pol, questions, target)

	if len(details) != 3 {
		t.Fatalf("details = %d, want 3 (jawaban siswa lain tidak ikut)", len(details))
	}
	if details[0].Marks != 9 || details[0].Status != policy.StatusExcellent {
		t.Errorf("q1a = %+v", details[0])
	}
	if details[1].Status != policy.StatusAverage {
		t.Errorf("q1b status = %s, want %s", details[1].Status, policy.StatusAverage)
	}
	if details[2].Status != policy.StatusNotSelected {
		t.Errorf("q2a status = %s, want %s", details[2].Status, policy.StatusNotSelected)
	}

	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}

	// CO1: 13/20 = 65%, lolos threshold 12
	co1 := results[0]
	if co1.CONumber != 1 || co1.Obtained != 13 || co1.MaxMarks != 20 {
		t.Errorf("CO1 = %+v", co1)
	}
	if co1.Percent != 65 || !co1.AboveThreshold || co1.Status != policy.StatusGood {
		t.Errorf("CO1 = %+v, want 65%% above good", co1)
	}

	// CO2: hanya soal not_selected → not_attempted, bukan 0%
	co2 := results[1]
	if co2.CONumber != 2 || co2.Attempted {
		t.Errorf("CO2 = %+v, want attempted=false", co2)
	}
	if co2.Status != policy.StatusNotAttempted {
		t.Errorf("CO2 status = %s, want %s", co2.Status, policy.StatusNotAttempted)
	}
}
