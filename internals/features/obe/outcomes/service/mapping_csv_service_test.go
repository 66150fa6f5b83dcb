package service

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	omodel "obetrack_backend/internals/features/obe/outcomes/model"
)

func intPtr(n int) *int { return &n }

func strPtr(s string) *string { return &s }

func TestParseMappingCSV(t *testing.T) {
	input := "column_name,max_marks,co_label\n" +
		"q1a,5,co1\n" +
		"q1b,5,co1\n" +
		"q2a,10,co2\n" +
		"total,0,\n"

	rows, err := ParseMappingCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse gagal: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("len = %d, want 4", len(rows))
	}

	if rows[0].ColumnName != "q1a" || rows[0].MaxMarks != 5 || *rows[0].CONumber != 1 {
		t.Errorf("row0 = %+v", rows[0])
	}
	if rows[2].ColumnName != "q2a" || *rows[2].CONumber != 2 {
		t.Errorf("row2 = %+v", rows[2])
	}
	// max_marks 0 + co_label kosong tetap valid (kolom diabaikan kalkulasi)
	if rows[3].MaxMarks != 0 || rows[3].CONumber != nil {
		t.Errorf("row3 = %+v", rows[3])
	}
}

func TestParseMappingCSVOptionalGroup(t *testing.T) {
	input := "column_name,max_marks,co_label,optional_group\n" +
		"q3a,10,co3,g1\n" +
		"q3b,10,co3,g1\n" +
		"q4,10,co4,\n"

	rows, err := ParseMappingCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse gagal: %v", err)
	}
	if rows[0].OptionalGroupID == nil || *rows[0].OptionalGroupID != "g1" {
		t.Errorf("row0 group = %v, want g1", rows[0].OptionalGroupID)
	}
	if rows[2].OptionalGroupID != nil {
		t.Errorf("row2 group = %v, want nil", rows[2].OptionalGroupID)
	}
}

func TestParseMappingCSVMalformedRows(t *testing.T) {
	cases := []struct {
		name  string
		input string
		line  int
	}{
		{"header salah", "nama,nilai,co\nq1,5,co1\n", 1},
		{"max_marks bukan angka", "column_name,max_marks,co_label\nq1,abc,co1\n", 2},
		{"max_marks negatif", "column_name,max_marks,co_label\nq1,-2,co1\n", 2},
		{"co_label rusak", "column_name,max_marks,co_label\nq1,5,kompetensi1\n", 2},
		{"column_name duplikat", "column_name,max_marks,co_label\nq1,5,co1\nq1,5,co2\n", 3},
		{"column_name kosong", "column_name,max_marks,co_label\n,5,co1\n", 2},
	}

	for _, c := range cases {
		_, err := ParseMappingCSV(strings.NewReader(c.input))
		var malformed *MalformedRowError
		if !errors.As(err, &malformed) {
			t.Errorf("%s: err = %v, want MalformedRowError", c.name, err)
			continue
		}
		if malformed.Line != c.line {
			t.Errorf("%s: line = %d, want %d", c.name, malformed.Line, c.line)
		}
	}
}

// Template download → upload tanpa diubah → render lagi harus
// identik byte-for-byte.
func TestMappingCSVRoundTrip(t *testing.T) {
	cols := []omodel.QuestionColumnModel{
		{QuestionColumnName: "q1a", QuestionColumnMaxMarks: 5, QuestionColumnCONumber: intPtr(1)},
		{QuestionColumnName: "q1b", QuestionColumnMaxMarks: 7.5, QuestionColumnCONumber: intPtr(1)},
		{QuestionColumnName: "q2", QuestionColumnMaxMarks: 10, QuestionColumnCONumber: intPtr(2)},
		{QuestionColumnName: "total", QuestionColumnMaxMarks: 0},
	}

	first := RenderMappingCSV(cols)

	rows, err := ParseMappingCSV(bytes.NewReader(first))
	if err != nil {
		t.Fatalf("parse hasil render gagal: %v", err)
	}

	reparsed := make([]omodel.QuestionColumnModel, 0, len(rows))
	for _, r := range rows {
		reparsed = append(reparsed, omodel.QuestionColumnModel{
			QuestionColumnName:            r.ColumnName,
			QuestionColumnMaxMarks:        r.MaxMarks,
			QuestionColumnCONumber:        r.CONumber,
			QuestionColumnOptionalGroupID: r.OptionalGroupID,
		})
	}
	second := RenderMappingCSV(reparsed)

	if !bytes.Equal(first, second) {
		t.Errorf("round-trip tidak identik:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

// File 3 kolom tidak boleh tiba-tiba dapat kolom optional_group saat
// dirender ulang.
func TestRenderMappingCSVOmitsEmptyGroupColumn(t *testing.T) {
	noGroup := RenderMappingCSV([]omodel.QuestionColumnModel{
		{QuestionColumnName: "q1", QuestionColumnMaxMarks: 5, QuestionColumnCONumber: intPtr(1)},
	})
	if strings.Contains(string(noGroup), "optional_group") {
		t.Errorf("tanpa group harus 3 kolom:\n%s", noGroup)
	}

	withGroup := RenderMappingCSV([]omodel.QuestionColumnModel{
		{QuestionColumnName: "q1", QuestionColumnMaxMarks: 5, QuestionColumnCONumber: intPtr(1), QuestionColumnOptionalGroupID: strPtr("g1")},
	})
	if !strings.Contains(string(withGroup), "optional_group") {
		t.Errorf("dengan group harus 4 kolom:\n%s", withGroup)
	}
}
