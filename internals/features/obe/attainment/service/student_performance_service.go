// file: internals/features/obe/attainment/service/student_performance_service.go
package service

import (
	"sort"

	"github.com/google/uuid"

	"obetrack_backend/internals/features/obe/policy"
)

/* ========================================================
   BREAKDOWN PERFORMA PER SISWA
   Proyeksi murni dari input immutable (tanpa menulis apa pun):
   detail vertikal + total per-CO utk satu siswa di satu assessment.
======================================================== */

// StudentQuestionDetail skor satu siswa pada satu kolom soal.
type StudentQuestionDetail struct {
	ColumnName string  `json:"column_name"`
	MaxMarks   float64 `json:"max_marks"`
	Marks      float64 `json:"marks"`
	Percent    float64 `json:"percent"`
	Status     string  `json:"status"`
	CONumber   *int    `json:"co_number"`
}

// StudentCOResult total satu siswa pada satu CO di satu assessment.
type StudentCOResult struct {
	CONumber       int     `json:"co_number"`
	MaxMarks       float64 `json:"max_marks"`
	Obtained       float64 `json:"obtained"`
	Percent        float64 `json:"percent"`
	Status         string  `json:"status"`
	AboveThreshold bool    `json:"above_threshold"`
	Attempted      bool    `json:"attempted"`
}

// StudentBreakdown menghitung detail performa satu siswa dari input
// satu assessment. Soal optional yang tidak dipilih berstatus
// not_selected dan tidak ikut total CO.
func StudentBreakdown(pol policy.GradingPolicy, questions []QuestionInput, studentID uuid.UUID) ([]StudentQuestionDetail, []StudentCOResult) {
	details := make([]StudentQuestionDetail, 0, len(questions))

	type coAccum struct {
		max       float64
		obtained  float64
		attempted bool
	}
	coTotals := map[int]*coAccum{}

	for _, q := range questions {
		if q.Ignored() {
			continue
		}

		var acc *coAccum
		if q.CONumber != nil {
			acc = coTotals[*q.CONumber]
			if acc == nil {
				acc = &coAccum{}
				coTotals[*q.CONumber] = acc
			}
			acc.max += q.MaxMarks
		}

		for _, m := range q.Marks {
			if m.StudentID != studentID {
				continue
			}

			d := StudentQuestionDetail{
				ColumnName: q.ColumnName,
				MaxMarks:   q.MaxMarks,
				CONumber:   q.CONumber,
			}
			if m.State == MarkNotSelected {
				d.Status = policy.StatusNotSelected
			} else {
				d.Marks = m.Marks
				pct := m.Marks / q.MaxMarks * 100
				d.Percent = round2(pct)
				d.Status = policy.PerformanceBucket(pct)

				if acc != nil {
					acc.obtained += m.Marks
					acc.attempted = true
				}
			}
			details = append(details, d)
		}
	}

	results := make([]StudentCOResult, 0, len(coTotals))
	for co, acc := range coTotals {
		r := StudentCOResult{
			CONumber:  co,
			MaxMarks:  acc.max,
			Attempted: acc.attempted,
		}
		if !acc.attempted {
			r.Status = policy.StatusNotAttempted
		} else {
			r.Obtained = acc.obtained
			pct := 0.0
			if acc.max > 0 {
				pct = acc.obtained / acc.max * 100
			}
			r.Percent = round2(pct)
			r.Status = policy.PerformanceBucket(pct)
			r.AboveThreshold = acc.obtained >= pol.PassFraction*acc.max
		}
		results = append(results, r)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].CONumber < results[j].CONumber })
	return details, results
}
