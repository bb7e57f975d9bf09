package engine

import (
	"log"
	"math"
	"sort"

	"packhouse/models"
)

// maxPerformanceRows caps the supplier performance board.
const maxPerformanceRows = 8

// ComputeVariance returns intake minus everything accounted for downstream.
// The result is not clamped: negative means over-accounting, positive means
// unaccounted shrinkage. Both are reporting signals, not errors.
func ComputeVariance(intakeWeight, countedWeight, rejectedWeight float64) float64 {
	return intakeWeight - (countedWeight + rejectedWeight)
}

// ResolveIntakeWeight picks the weight a rejection's variance is computed
// against. Preference order: the matching intake record's total, then the
// counting record's own declared total, then zero. A zero base makes the
// variance strongly negative, which is the intended signal for a rejection
// entered with no upstream paperwork.
func ResolveIntakeWeight(intake *models.IntakeRecord, counting *models.CountingRecord) float64 {
	if intake != nil {
		return intake.TotalWeight
	}
	if counting != nil {
		return counting.TotalCountedWeight
	}
	return 0
}

// RecomputeRejection refreshes the derived fields of a rejection entry from
// its per-variety inputs. Called before every persist so the stored variance
// always matches the stored weights.
func RecomputeRejection(r *models.RejectionEntry, intakeWeight float64) {
	r.FuerteWeight = sanitizeWeight(r.FuerteWeight)
	r.HassWeight = sanitizeWeight(r.HassWeight)
	r.FuerteCrates = sanitizeCrates(r.FuerteCrates)
	r.HassCrates = sanitizeCrates(r.HassCrates)
	r.CountedWeight = sanitizeWeight(r.CountedWeight)

	r.TotalRejectedWeight = r.FuerteWeight + r.HassWeight
	r.TotalRejectedCrates = r.FuerteCrates + r.HassCrates
	r.Variance = ComputeVariance(intakeWeight, r.CountedWeight, r.TotalRejectedWeight)
}

// Malformed scale input (NaN, negative) is coerced to zero rather than
// rejected; the capture surfaces never raise validation errors on this path.
func sanitizeWeight(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

func sanitizeCrates(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// SupplierPerformance is one row of the per-supplier reconciliation board.
type SupplierPerformance struct {
	SupplierID     int64   `json:"supplier_id"`
	SupplierName   string  `json:"supplier_name"`
	IntakeWeight   float64 `json:"intake_weight"`
	Boxes          int     `json:"boxes"`
	RejectedWeight float64 `json:"rejected_weight"`
	RejectionRate  float64 `json:"rejection_rate"`
}

// AggregateSupplierPerformance sums intake weight, counted boxes and rejected
// weight per supplier, derives the rejection rate, drops suppliers with no
// intake, and returns at most the top 8 by intake weight. Ties keep the input
// supplier order.
func AggregateSupplierPerformance(
	suppliers []models.Supplier,
	intakes []models.IntakeRecord,
	countings []models.CountingRecord,
	rejections []models.RejectionEntry,
) []SupplierPerformance {
	rows := make([]SupplierPerformance, 0, len(suppliers))

	for _, s := range suppliers {
		row := SupplierPerformance{SupplierID: s.ID, SupplierName: s.Name}

		for _, in := range intakes {
			if matchesSupplier(s, in.SupplierID, in.SupplierName) {
				row.IntakeWeight += in.TotalWeight
			}
		}
		for _, c := range countings {
			if matchesSupplier(s, c.SupplierID, c.SupplierName) {
				row.Boxes += c.Totals.Fuerte4kgTotal + c.Totals.Fuerte10kgTotal +
					c.Totals.Hass4kgTotal + c.Totals.Hass10kgTotal
			}
		}
		for _, rej := range rejections {
			if matchesSupplier(s, rej.SupplierID, rej.SupplierName) {
				row.RejectedWeight += rej.TotalRejectedWeight
			}
		}

		if row.IntakeWeight == 0 {
			continue
		}
		row.RejectionRate = row.RejectedWeight / row.IntakeWeight * 100

		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].IntakeWeight > rows[j].IntakeWeight
	})
	if len(rows) > maxPerformanceRows {
		rows = rows[:maxPerformanceRows]
	}
	return rows
}

// matchesSupplier joins a record to a supplier by id when the record carries
// one, falling back to exact name equality. Name-only hits are logged as a
// data-quality warning since a typo breaks the linkage silently.
func matchesSupplier(s models.Supplier, recordSupplierID *int64, recordSupplierName string) bool {
	if recordSupplierID != nil && *recordSupplierID != 0 {
		return *recordSupplierID == s.ID
	}
	if recordSupplierName != "" && recordSupplierName == s.Name {
		log.Printf("[WARN] supplier %q matched by name only; record has no supplier_id", s.Name)
		return true
	}
	return false
}
