// file: internals/features/obe/attainment/service/calc_types.go
package service

import "github.com/google/uuid"

/* ========================================================
   Tipe input kalkulasi (murni, tanpa DB)
======================================================== */

// MarkState status eksplisit jawaban siswa pada satu soal.
// Varian bertag ini menghilangkan ambiguitas "tidak memilih soal"
// vs "skor 0 yang sah" pada soal pilihan (optional group).
type MarkState int

const (
	// MarkCounted: jawaban ikut dihitung (soal biasa, atau anggota
	// optional group yang dipilih siswa).
	MarkCounted MarkState = iota
	// MarkNotSelected: anggota optional group yang TIDAK dipilih.
	// Tidak pernah masuk attempts/average/threshold.
	MarkNotSelected
)

// StudentMark satu jawaban siswa pada satu kolom soal.
type StudentMark struct {
	StudentID uuid.UUID
	State     MarkState
	Marks     float64 // valid hanya saat State == MarkCounted
}

// QuestionInput satu kolom soal + seluruh jawaban siswa di satu assessment.
type QuestionInput struct {
	ColumnName      string
	MaxMarks        float64 // 0 = kolom diabaikan total
	CONumber        *int    // nil = belum dipetakan ke CO
	OptionalGroupID *string // nil = bukan soal pilihan
	Marks           []StudentMark
}

// Ignored kolom dengan max_marks 0 tidak pernah masuk agregat mana pun.
func (q QuestionInput) Ignored() bool {
	return q.MaxMarks == 0
}
