package policy

import "testing"

func TestLetterFor(t *testing.T) {
	p := Default()

	cases := []struct {
		percent float64
		letter  string
		points  int
	}{
		{95, "S", 10},
		{90, "S", 10},
		{89.99, "A", 9},
		{87, "A", 9},
		{80, "A", 9},
		{79.99, "B", 8},
		{60, "C", 7},
		{50, "D", 6},
		{45, "E", 5},
		{44.99, "P", 4},
		{40, "P", 4},
		{39.99, "F", 0},
		{0, "F", 0},
	}
	for _, c := range cases {
		letter, points := p.LetterFor(c.percent)
		if letter != c.letter || points != c.points {
			t.Errorf("LetterFor(%.2f) = %s/%d, want %s/%d", c.percent, letter, points, c.letter, c.points)
		}
	}
}

func TestPOLevelFor(t *testing.T) {
	p := Default()

	cases := []struct {
		percent float64
		level   int
	}{
		{100, 3},
		{80, 3},
		{79.99, 2},
		{70, 2},
		{69.5, 1},
		{60, 1},
		{59.99, 0},
		{0, 0},
	}
	for _, c := range cases {
		if got := p.POLevelFor(c.percent); got != c.level {
			t.Errorf("POLevelFor(%.2f) = %d, want %d", c.percent, got, c.level)
		}
	}
}

func TestPerformanceBucket(t *testing.T) {
	cases := []struct {
		percent float64
		want    string
	}{
		{100, StatusExcellent},
		{80, StatusExcellent},
		{79, StatusGood},
		{60, StatusGood},
		{59, StatusAverage},
		{40, StatusAverage},
		{39, StatusNeedsImprovement},
		{0, StatusNeedsImprovement},
	}
	for _, c := range cases {
		if got := PerformanceBucket(c.percent); got != c.want {
			t.Errorf("PerformanceBucket(%.2f) = %s, want %s", c.percent, got, c.want)
		}
	}
}

func TestValidateDefault(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default policy tidak valid: %v", err)
	}
}

func TestValidateRejectsUnsortedBands(t *testing.T) {
	p := Default()
	p.GradeBands[0], p.GradeBands[1] = p.GradeBands[1], p.GradeBands[0]
	if err := p.Validate(); err == nil {
		t.Fatal("expected error untuk grade_bands tidak urut")
	}
}

func TestCreditAllowed(t *testing.T) {
	p := Default()
	for _, c := range []int{1, 3, 4} {
		if !p.CreditAllowed(c) {
			t.Errorf("credits %d seharusnya diizinkan", c)
		}
	}
	for _, c := range []int{0, 2, 5, 9} {
		if p.CreditAllowed(c) {
			t.Errorf("credits %d seharusnya ditolak", c)
		}
	}
}
