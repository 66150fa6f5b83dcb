package model

import (
	"testing"

	"gorm.io/datatypes"
)

func TestPOMappingsRoundTrip(t *testing.T) {
	var m CourseOutcomeModel
	if err := m.SetPOMappings(map[int]int{1: 3, 2: 1, 5: 2}); err != nil {
		t.Fatalf("SetPOMappings: %v", err)
	}

	got, err := m.POMappings()
	if err != nil {
		t.Fatalf("POMappings: %v", err)
	}
	want := map[int]int{1: 3, 2: 1, 5: 2}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for po, corr := range want {
		if got[po] != corr {
			t.Errorf("po%d = %d, want %d", po, got[po], corr)
		}
	}
}

func TestPOMappingsEmpty(t *testing.T) {
	var m CourseOutcomeModel
	got, err := m.POMappings()
	if err != nil {
		t.Fatalf("POMappings kosong: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("kolom kosong harus map kosong, got %v", got)
	}
}

func TestPOMappingsRejectsOutOfRange(t *testing.T) {
	cases := []string{
		`{"1":0}`,
		`{"1":4}`,
		`{"abc":2}`,
		`{"1":`,
	}
	for _, raw := range cases {
		m := CourseOutcomeModel{CourseOutcomeCONumber: 1, CourseOutcomePOMappings: datatypes.JSON(raw)}
		if _, err := m.POMappings(); err == nil {
			t.Errorf("payload %q harus ditolak", raw)
		}
	}
}
