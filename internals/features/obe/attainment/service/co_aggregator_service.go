// file: internals/features/obe/attainment/service/co_aggregator_service.go
package service

import (
	"sort"

	"github.com/google/uuid"

	"obetrack_backend/internals/features/obe/policy"
)

/* ========================================================
   CO-LEVEL AGGREGATOR
   Gabungkan soal per co_number di dalam satu assessment.
======================================================== */

// COAssessmentResult hasil agregasi satu CO di satu assessment.
type COAssessmentResult struct {
	CONumber          int     `json:"co_number"`
	TotalMaxMarks     float64 `json:"total_max_marks"`
	Attempts          int     `json:"attempts"`
	AboveThreshold    int     `json:"above_threshold"`
	AttainmentPercent float64 `json:"attainment_percent"`
	NoData            bool    `json:"no_data"`
}

// AggregateByCO menghitung attainment per CO dari jawaban mentah.
// - co_max_marks = Σ max_marks soal ter-mapping (non-ignored)
// - siswa "attempt" CO bila punya ≥1 jawaban counted pada soal CO itu
// - lolos threshold bila total skor siswa ≥ PassFraction × co_max_marks
// Kolom yang belum dipetakan ke CO tidak ikut sama sekali.
func AggregateByCO(pol policy.GradingPolicy, questions []QuestionInput) []COAssessmentResult {
	type coAccum struct {
		maxMarks float64
		totals   map[uuid.UUID]float64
		attempts map[uuid.UUID]bool
	}

	accums := map[int]*coAccum{}

	for _, q := range questions {
		if q.Ignored() || q.CONumber == nil {
			continue
		}
		co := *q.CONumber
		acc, ok := accums[co]
		if !ok {
			acc = &coAccum{
				totals:   map[uuid.UUID]float64{},
				attempts: map[uuid.UUID]bool{},
			}
			accums[co] = acc
		}
		acc.maxMarks += q.MaxMarks

		for _, m := range q.Marks {
			if m.State == MarkNotSelected {
				continue
			}
			acc.totals[m.StudentID] += m.Marks
			acc.attempts[m.StudentID] = true
		}
	}

	out := make([]COAssessmentResult, 0, len(accums))
	for co, acc := range accums {
		res := COAssessmentResult{
			CONumber:      co,
			TotalMaxMarks: acc.maxMarks,
			Attempts:      len(acc.attempts),
		}

		threshold := pol.PassFraction * acc.maxMarks
		for sid := range acc.attempts {
			if acc.totals[sid] >= threshold {
				res.AboveThreshold++
			}
		}

		if res.Attempts > 0 {
			res.AttainmentPercent = round2(float64(res.AboveThreshold) / float64(res.Attempts) * 100)
		} else {
			res.NoData = true
		}

		out = append(out, res)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].CONumber < out[j].CONumber })
	return out
}
