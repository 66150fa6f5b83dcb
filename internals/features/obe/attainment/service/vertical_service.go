// file: internals/features/obe/attainment/service/vertical_service.go
package service

import (
	"math"

	"github.com/google/uuid"

	"obetrack_backend/internals/features/obe/policy"
)

/* ========================================================
   VERTICAL ANALYZER
   Statistik per-soal di dalam satu assessment.
======================================================== */

type StudentQuestionStatus struct {
	StudentID uuid.UUID `json:"student_id"`
	Marks     float64   `json:"marks"`
	Percent   float64   `json:"percent"`
	Status    string    `json:"status"`
}

type QuestionVertical struct {
	ColumnName        string                  `json:"column_name"`
	MaxMarks          float64                 `json:"max_marks"`
	CONumber          *int                    `json:"co_number"`
	ThresholdMark     float64                 `json:"threshold_mark"`
	Attempts          int                     `json:"attempts"`
	AboveThreshold    int                     `json:"above_threshold"`
	Average           float64                 `json:"average"`
	AttainmentPercent float64                 `json:"attainment_percent"`
	NoData            bool                    `json:"no_data"`
	Students          []StudentQuestionStatus `json:"students"`
}

// AnalyzeVerticals menghitung statistik tiap kolom soal non-ignored.
// Anggota optional group yang tidak dipilih dilaporkan dengan status
// not_selected dan TIDAK ikut attempts/average/threshold.
func AnalyzeVerticals(pol policy.GradingPolicy, questions []QuestionInput) []QuestionVertical {
	out := make([]QuestionVertical, 0, len(questions))

	for _, q := range questions {
		if q.Ignored() {
			continue
		}

		v := QuestionVertical{
			ColumnName:    q.ColumnName,
			MaxMarks:      q.MaxMarks,
			CONumber:      q.CONumber,
			ThresholdMark: pol.PassFraction * q.MaxMarks,
			Students:      make([]StudentQuestionStatus, 0, len(q.Marks)),
		}

		var sum float64
		for _, m := range q.Marks {
			if m.State == MarkNotSelected {
				v.Students = append(v.Students, StudentQuestionStatus{
					StudentID: m.StudentID,
					Status:    policy.StatusNotSelected,
				})
				continue
			}

			pct := 0.0
			if q.MaxMarks > 0 {
				pct = m.Marks / q.MaxMarks * 100
			}
			v.Students = append(v.Students, StudentQuestionStatus{
				StudentID: m.StudentID,
				Marks:     m.Marks,
				Percent:   round2(pct),
				Status:    policy.PerformanceBucket(pct),
			})

			v.Attempts++
			sum += m.Marks
			if m.Marks >= v.ThresholdMark {
				v.AboveThreshold++
			}
		}

		if v.Attempts > 0 {
			v.Average = round2(sum / float64(v.Attempts))
			v.AttainmentPercent = round2(float64(v.AboveThreshold) / float64(v.Attempts) * 100)
		} else {
			// tidak ada data: nilai 0 + flag eksplisit, bukan division-by-zero
			v.NoData = true
		}

		out = append(out, v)
	}

	return out
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
