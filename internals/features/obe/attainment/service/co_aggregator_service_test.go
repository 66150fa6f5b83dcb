package service

import (
	"testing"

	"github.com/google/uuid"

	"obetrack_backend/internals/features/obe/policy"
)

// Dua soal CO1 (max 10 masing-masing, co_max = 20, threshold 12):
// total 18 dan 20 lolos, 9 tidak → 2/3 = 66.67%.
func TestAggregateByCOTwoQuestions(t *testing.T) {
	pol := policy.Default()
	s1, s2, s3 := uuid.New(), uuid.New(), uuid.New()

	questions := []QuestionInput{
		{
			ColumnName: "q1a", MaxMarks: 10, CONumber: intPtr(1),
			Marks: []StudentMark{
				{StudentID: s1, State: MarkCounted, Marks: 9},
				{StudentID: s2, State: MarkCounted, Marks: 4},
				{StudentID: s3, State: MarkCounted, Marks: 10},
			},
		},
		{
			ColumnName: "q1b", MaxMarks: 10, CONumber: intPtr(1),
			Marks: []StudentMark{
				{StudentID: s1, State: MarkCounted, Marks: 9},
				{StudentID: s2, State: MarkCounted, Marks: 5},
				{StudentID: s3, State: MarkCounted, Marks: 10},
			},
		},
	}

	out := AggregateByCO(pol, questions)
	if len(out) != 1 {
		t.Fatalf("len = %d, want 1", len(out))
	}

	co := out[0]
	if co.CONumber != 1 {
		t.Errorf("CONumber = %d, want 1", co.CONumber)
	}
	if co.TotalMaxMarks != 20 {
		t.Errorf("TotalMaxMarks = %.2f, want 20", co.TotalMaxMarks)
	}
	if co.Attempts != 3 {
		t.Errorf("Attempts = %d, want 3", co.Attempts)
	}
	if co.AboveThreshold != 2 {
		t.Errorf("AboveThreshold = %d, want 2", co.AboveThreshold)
	}
	if co.AttainmentPercent != 66.67 {
		t.Errorf("AttainmentPercent = %.2f, want 66.67", co.AttainmentPercent)
	}
}

func TestAggregateByCOSkipsUnmappedAndIgnored(t *testing.T) {
	pol := policy.Default()
	s1 := uuid.New()

	out := AggregateByCO(pol, []QuestionInput{
		{ColumnName: "q1", MaxMarks: 10, CONumber: nil,
			Marks: []StudentMark{{StudentID: s1, State: MarkCounted, Marks: 10}}},
		{ColumnName: "q2", MaxMarks: 0, CONumber: intPtr(1),
			Marks: []StudentMark{{StudentID: s1, State: MarkCounted, Marks: 10}}},
	})
	if len(out) != 0 {
		t.Fatalf("kolom tanpa mapping / max_marks=0 tidak boleh masuk, got %+v", out)
	}
}

// Soal pilihan: co_max menjumlahkan SEMUA anggota group yang ter-mapping,
// tapi jawaban not_selected tidak ikut total siswa maupun attempts.
func TestAggregateByCOOptionalGroup(t *testing.T) {
	pol := policy.Default()
	s1, s2 := uuid.New(), uuid.New()

	questions := []QuestionInput{
		{
			ColumnName: "q2a", MaxMarks: 10, CONumber: intPtr(2), OptionalGroupID: strPtr("g1"),
			Marks: []StudentMark{
				{StudentID: s1, State: MarkCounted, Marks: 10},
				{StudentID: s2, State: MarkNotSelected},
			},
		},
		{
			ColumnName: "q2b", MaxMarks: 10, CONumber: intPtr(2), OptionalGroupID: strPtr("g1"),
			Marks: []StudentMark{
				{StudentID: s1, State: MarkNotSelected},
				{StudentID: s2, State: MarkCounted, Marks: 2},
			},
		},
	}

	out := AggregateByCO(pol, questions)
	if len(out) != 1 {
		t.Fatalf("len = %d, want 1", len(out))
	}

	co := out[0]
	if co.Attempts != 2 {
		t.Errorf("Attempts = %d, want 2", co.Attempts)
	}
	// s1 total 10, s2 total 2; nilai not_selected TIDAK dihitung nol
	// ke siapa pun, tapi threshold tetap atas co_max penuh (20 → 12).
	if co.AboveThreshold != 0 {
		t.Errorf("AboveThreshold = %d, want 0", co.AboveThreshold)
	}
}

func TestAggregateByCONoAttempts(t *testing.T) {
	pol := policy.Default()

	out := AggregateByCO(pol, []QuestionInput{
		{ColumnName: "q1", MaxMarks: 10, CONumber: intPtr(1)},
	})
	if len(out) != 1 {
		t.Fatalf("len = %d, want 1", len(out))
	}
	if !out[0].NoData {
		t.Error("NoData = false, want true (bukan division-by-zero)")
	}
}
