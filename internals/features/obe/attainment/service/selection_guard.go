// file: internals/features/obe/attainment/service/selection_guard.go
package service

import (
	"fmt"

	"github.com/google/uuid"
)

/* ========================================================
   GUARD OPTIONAL GROUP (saat ingest marks)
   Invariant: tiap siswa yang menjawab anggota sebuah optional
   group memilih TEPAT satu soal di group itu. Ditegakkan saat
   tulis supaya kalkulator tidak pernah menerima input ambigu.
======================================================== */

// SelectionRow proyeksi minimal satu baris upload utk validasi.
type SelectionRow struct {
	StudentID  uuid.UUID
	ColumnName string
	Selected   *bool
}

// OptionalSelectionError siswa memilih ≠1 soal dalam satu group.
type OptionalSelectionError struct {
	StudentID     uuid.UUID
	GroupID       string
	SelectedCount int
}

func (e *OptionalSelectionError) Error() string {
	return fmt.Sprintf("siswa %s memilih %d soal di optional group %q, harus tepat 1",
		e.StudentID, e.SelectedCount, e.GroupID)
}

// ExplicitSelectionError baris kolom optional group tanpa flag selected.
// Nil pada kolom group akan dihitung counted oleh kalkulator, jadi
// harus eksplisit di sumbernya.
type ExplicitSelectionError struct {
	StudentID  uuid.UUID
	ColumnName string
	GroupID    string
}

func (e *ExplicitSelectionError) Error() string {
	return fmt.Sprintf("baris siswa %s kolom %q (group %q) tidak membawa flag selected",
		e.StudentID, e.ColumnName, e.GroupID)
}

// ValidateOptionalSelections memeriksa seluruh batch upload terhadap
// invariant di atas. groups: column_name → optional_group_id; kolom
// di luar map (soal biasa) tidak diperiksa. Siswa yang tidak menjawab
// satu group pun sama sekali juga lolos (tidak mengerjakan ≠ melanggar).
func ValidateOptionalSelections(groups map[string]string, rows []SelectionRow) error {
	type key struct {
		student uuid.UUID
		group   string
	}
	selected := map[key]int{}
	present := map[key]bool{}

	for _, r := range rows {
		g, ok := groups[r.ColumnName]
		if !ok {
			continue
		}
		if r.Selected == nil {
			return &ExplicitSelectionError{StudentID: r.StudentID, ColumnName: r.ColumnName, GroupID: g}
		}
		k := key{student: r.StudentID, group: g}
		present[k] = true
		if *r.Selected {
			selected[k]++
		}
	}

	for k := range present {
		if n := selected[k]; n != 1 {
			return &OptionalSelectionError{StudentID: k.student, GroupID: k.group, SelectedCount: n}
		}
	}
	return nil
}
