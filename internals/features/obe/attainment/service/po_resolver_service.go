// file: internals/features/obe/attainment/service/po_resolver_service.go
package service

import (
	"sort"

	"obetrack_backend/internals/features/obe/policy"
)

/* ========================================================
   CO → PO MAPPING RESOLVER
   Attainment CO → level PO via matriks korelasi (1..3).
======================================================== */

type POAttainment struct {
	PONumber          int     `json:"po_number"`
	AttainmentLevel   float64 `json:"attainment_level"`   // 0..3 (rata-rata berbobot korelasi)
	AttainmentPercent float64 `json:"attainment_percent"` // level/3 × 100, untuk tampilan
}

// ResolvePOAttainment menghitung level attainment tiap PO.
// mappings: co_number → (po_number → correlation_level 1..3).
// PO tanpa CO ter-mapping di-skip (no-data), tidak dilaporkan 0.
func ResolvePOAttainment(
	pol policy.GradingPolicy,
	combined []CombinedCOAttainment,
	mappings map[int]map[int]int,
) []POAttainment {
	type poAccum struct {
		weighted float64
		corrSum  float64
	}
	accums := map[int]*poAccum{}

	for _, co := range combined {
		if co.NoData {
			continue
		}
		level := pol.POLevelFor(co.OverallAttainmentPercent)

		for po, corr := range mappings[co.CONumber] {
			if corr <= 0 {
				continue
			}
			acc, ok := accums[po]
			if !ok {
				acc = &poAccum{}
				accums[po] = acc
			}
			acc.weighted += float64(level * corr)
			acc.corrSum += float64(corr)
		}
	}

	out := make([]POAttainment, 0, len(accums))
	for po, acc := range accums {
		if acc.corrSum == 0 {
			continue
		}
		level := acc.weighted / acc.corrSum
		out = append(out, POAttainment{
			PONumber:          po,
			AttainmentLevel:   round2(level),
			AttainmentPercent: round2(level / 3 * 100),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].PONumber < out[j].PONumber })
	return out
}
