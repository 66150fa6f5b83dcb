// file: internals/features/obe/attainment/service/combined_service.go
package service

import "sort"

/* ========================================================
   COMBINED CO ATTAINMENT
   Merge hasil per-assessment (CIE1/CIE2/CIE3, dst) per CO.
======================================================== */

type CombinedCOAttainment struct {
	CONumber                 int     `json:"co_number"`
	TotalMaxMarks            float64 `json:"total_max_marks"`
	TotalAttempts            int     `json:"total_attempts"`
	TotalAboveThreshold      int     `json:"total_above_threshold"`
	OverallAttainmentPercent float64 `json:"overall_attainment_percent"`
	NoData                   bool    `json:"no_data"`
}

// CombineAcrossAssessments menjumlahkan record per-assessment per co_number.
// Assessment yang tidak pernah memetakan sebuah CO memang absen dari
// penjumlahan (bukan kontribusi nol), jadi coverage parsial tidak
// menyeret rata-rata turun.
func CombineAcrossAssessments(perAssessment [][]COAssessmentResult) []CombinedCOAttainment {
	byCO := map[int]*CombinedCOAttainment{}

	for _, results := range perAssessment {
		for _, r := range results {
			agg, ok := byCO[r.CONumber]
			if !ok {
				agg = &CombinedCOAttainment{CONumber: r.CONumber}
				byCO[r.CONumber] = agg
			}
			agg.TotalMaxMarks += r.TotalMaxMarks
			agg.TotalAttempts += r.Attempts
			agg.TotalAboveThreshold += r.AboveThreshold
		}
	}

	out := make([]CombinedCOAttainment, 0, len(byCO))
	for _, agg := range byCO {
		if agg.TotalAttempts > 0 {
			agg.OverallAttainmentPercent = round2(float64(agg.TotalAboveThreshold) / float64(agg.TotalAttempts) * 100)
		} else {
			agg.NoData = true
		}
		out = append(out, *agg)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].CONumber < out[j].CONumber })
	return out
}
