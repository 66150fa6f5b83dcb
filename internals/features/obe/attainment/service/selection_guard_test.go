package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func boolPtr(b bool) *bool { return &b }

func TestValidateOptionalSelections(t *testing.T) {
	s1, s2 := uuid.New(), uuid.New()
	groups := map[string]string{"q2a": "g1", "q2b": "g1"}

	// tepat satu dipilih per siswa → lolos
	rows := []SelectionRow{
		{StudentID: s1, ColumnName: "q2a", Selected: boolPtr(true)},
		{StudentID: s1, ColumnName: "q2b", Selected: boolPtr(false)},
		{StudentID: s2, ColumnName: "q2a", Selected: boolPtr(false)},
		{StudentID: s2, ColumnName: "q2b", Selected: boolPtr(true)},
	}
	if err := ValidateOptionalSelections(groups, rows); err != nil {
		t.Fatalf("batch valid ditolak: %v", err)
	}
}

func TestValidateOptionalSelectionsZeroSelected(t *testing.T) {
	s1 := uuid.New()
	groups := map[string]string{"q2a": "g1", "q2b": "g1"}

	rows := []SelectionRow{
		{StudentID: s1, ColumnName: "q2a", Selected: boolPtr(false)},
		{StudentID: s1, ColumnName: "q2b", Selected: boolPtr(false)},
	}
	err := ValidateOptionalSelections(groups, rows)
	var sel *OptionalSelectionError
	if !errors.As(err, &sel) {
		t.Fatalf("err = %v, want OptionalSelectionError", err)
	}
	if sel.SelectedCount != 0 || sel.GroupID != "g1" {
		t.Errorf("error = %+v, want count=0 group=g1", sel)
	}
}

func TestValidateOptionalSelectionsDoubleSelected(t *testing.T) {
	s1 := uuid.New()
	groups := map[string]string{"q2a": "g1", "q2b": "g1"}

	rows := []SelectionRow{
		{StudentID: s1, ColumnName: "q2a", Selected: boolPtr(true)},
		{StudentID: s1, ColumnName: "q2b", Selected: boolPtr(true)},
	}
	err := ValidateOptionalSelections(groups, rows)
	var sel *OptionalSelectionError
	if !errors.As(err, &sel) {
		t.Fatalf("err = %v, want OptionalSelectionError", err)
	}
	if sel.SelectedCount != 2 {
		t.Errorf("SelectedCount = %d, want 2", sel.SelectedCount)
	}
}

// Baris kolom group tanpa flag selected ditolak: nil akan dihitung
// counted oleh kalkulator dan membuat skor group terhitung ganda.
func TestValidateOptionalSelectionsRequiresExplicitFlag(t *testing.T) {
	s1 := uuid.New()
	groups := map[string]string{"q2a": "g1", "q2b": "g1"}

	rows := []SelectionRow{
		{StudentID: s1, ColumnName: "q2a", Selected: nil},
		{StudentID: s1, ColumnName: "q2b", Selected: boolPtr(true)},
	}
	err := ValidateOptionalSelections(groups, rows)
	var exp *ExplicitSelectionError
	if !errors.As(err, &exp) {
		t.Fatalf("err = %v, want ExplicitSelectionError", err)
	}
	if exp.ColumnName != "q2a" {
		t.Errorf("ColumnName = %s, want q2a", exp.ColumnName)
	}
}

func TestValidateOptionalSelectionsIgnoresRegularColumns(t *testing.T) {
	s1 := uuid.New()
	groups := map[string]string{"q2a": "g1", "q2b": "g1"}

	// soal biasa boleh tanpa flag; siswa yang tidak menyentuh group
	// sama sekali juga bukan pelanggaran
	rows := []SelectionRow{
		{StudentID: s1, ColumnName: "q1", Selected: nil},
	}
	if err := ValidateOptionalSelections(groups, rows); err != nil {
		t.Fatalf("soal biasa tidak boleh diperiksa: %v", err)
	}
}
