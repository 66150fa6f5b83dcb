package service

import (
	"errors"
	"testing"

	"obetrack_backend/internals/features/obe/grades/model"
	"obetrack_backend/internals/features/obe/policy"
)

func gp(n int) *int { return &n }

// Alur hidup satu semester: tambah 3 mata kuliah → IN_PROGRESS,
// genapkan ke 20 sks → COMPLETE_UNGRADED, nilai semua → FINAL.
func TestDeriveSemesterLifecycle(t *testing.T) {
	pol := policy.Default()

	md := DeriveSemester(pol, nil)
	if md.State != SemesterEmpty || md.RemainingCredits != 20 {
		t.Fatalf("empty: %+v", md)
	}

	subjects := []SubjectRow{
		{Code: "CS101", Credits: 4},
		{Code: "MA102", Credits: 3},
		{Code: "PH103", Credits: 4},
	}
	md = DeriveSemester(pol, subjects)
	if md.State != SemesterInProgress {
		t.Errorf("state = %s, want IN_PROGRESS", md.State)
	}
	if md.TotalCredits != 11 || md.RemainingCredits != 9 {
		t.Errorf("credits = %d/%d, want 11/9", md.TotalCredits, md.RemainingCredits)
	}
	if !md.CanAddMore || md.IsFinal {
		t.Errorf("CanAddMore=%v IsFinal=%v, want true/false", md.CanAddMore, md.IsFinal)
	}
	if md.Status != model.SemesterStatusProvisional {
		t.Errorf("status = %s, want %s", md.Status, model.SemesterStatusProvisional)
	}

	subjects = append(subjects, SubjectRow{Code: "EE104", Credits: 9})
	md = DeriveSemester(pol, subjects)
	if md.State != SemesterCompleteUngraded {
		t.Errorf("state = %s, want COMPLETE_UNGRADED", md.State)
	}
	if md.RemainingCredits != 0 || md.CanAddMore {
		t.Errorf("penuh: remaining=%d canAddMore=%v", md.RemainingCredits, md.CanAddMore)
	}
	if md.IsFinal {
		t.Error("IsFinal = true sebelum semua dinilai")
	}

	subjects[0].GradePoint = gp(9)
	subjects[1].GradePoint = gp(8)
	subjects[2].GradePoint = gp(10)
	subjects[3].GradePoint = gp(7)
	md = DeriveSemester(pol, subjects)
	if md.State != SemesterFinal || !md.IsFinal {
		t.Errorf("state = %s IsFinal=%v, want FINAL true", md.State, md.IsFinal)
	}
	if md.Status != model.SemesterStatusFinal {
		t.Errorf("status = %s, want %s", md.Status, model.SemesterStatusFinal)
	}
	// (9×4 + 8×3 + 10×4 + 7×9) / 20 = 163/20 = 8.15
	if md.ProvisionalSGPA != 8.15 {
		t.Errorf("SGPA = %.2f, want 8.15", md.ProvisionalSGPA)
	}
}

// SGPA sementara hanya atas mata kuliah yang SUDAH dinilai.
func TestDeriveSemesterProvisionalSGPA(t *testing.T) {
	pol := policy.Default()

	md := DeriveSemester(pol, []SubjectRow{
		{Code: "CS101", Credits: 4, GradePoint: gp(9)},
		{Code: "MA102", Credits: 3}, // belum dinilai
	})
	if md.ProvisionalSGPA != 9 {
		t.Errorf("SGPA = %.2f, want 9 (mata kuliah belum dinilai tidak ikut)", md.ProvisionalSGPA)
	}
	if md.TotalCredits != 7 {
		t.Errorf("TotalCredits = %d, want 7 (termasuk yang belum dinilai)", md.TotalCredits)
	}
}

func TestCheckCreditAdd(t *testing.T) {
	pol := policy.Default()

	if err := CheckCreditAdd(pol, 11, 9); err != nil {
		t.Errorf("11+9=20 pas di batas, harus boleh: %v", err)
	}
	if err := CheckCreditAdd(pol, 20, 1); err == nil {
		t.Error("20+1 harus ditolak")
	}

	err := CheckCreditAdd(pol, 18, 4)
	var overflow *CreditOverflowError
	if !errors.As(err, &overflow) {
		t.Fatalf("err = %v, want CreditOverflowError", err)
	}
	if overflow.Attempted != 22 || overflow.Cap != 20 {
		t.Errorf("overflow = %+v, want attempted=22 cap=20", overflow)
	}

	// edit turun (delta negatif) selalu boleh
	if err := CheckCreditAdd(pol, 20, -3); err != nil {
		t.Errorf("delta negatif harus boleh: %v", err)
	}
}

func TestDeriveSemesterFinalRequiresExactCap(t *testing.T) {
	pol := policy.Default()

	// semua dinilai tapi 19 sks → tetap IN_PROGRESS, bukan FINAL
	md := DeriveSemester(pol, []SubjectRow{
		{Code: "A", Credits: 10, GradePoint: gp(8)},
		{Code: "B", Credits: 9, GradePoint: gp(7)},
	})
	if md.State != SemesterInProgress || md.IsFinal {
		t.Errorf("19 sks semua dinilai: state=%s IsFinal=%v, want IN_PROGRESS false", md.State, md.IsFinal)
	}
}
