package engine

import (
	"math"
	"testing"

	"packhouse/models"
)

func TestComputeVariance_ExactFormula(t *testing.T) {
	cases := []struct {
		intake, counted, rejected, want float64
	}{
		{200, 180, 15, 5},
		{100, 100, 0, 0},
		{100, 110, 10, -20}, // over-accounting stays negative
		{0, 50, 5, -55},     // no intake paperwork: strongly negative signal
	}
	for _, c := range cases {
		got := ComputeVariance(c.intake, c.counted, c.rejected)
		if got != c.want {
			t.Errorf("ComputeVariance(%v,%v,%v) = %v, want %v",
				c.intake, c.counted, c.rejected, got, c.want)
		}
	}
}

func TestResolveIntakeWeight_FallbackChain(t *testing.T) {
	intake := &models.IntakeRecord{TotalWeight: 200}
	counting := &models.CountingRecord{TotalCountedWeight: 180}

	if w := ResolveIntakeWeight(intake, counting); w != 200 {
		t.Errorf("intake present: got %v, want 200", w)
	}
	if w := ResolveIntakeWeight(nil, counting); w != 180 {
		t.Errorf("counting fallback: got %v, want 180", w)
	}
	if w := ResolveIntakeWeight(nil, nil); w != 0 {
		t.Errorf("nothing available: got %v, want 0", w)
	}
}

func TestRecomputeRejection(t *testing.T) {
	r := &models.RejectionEntry{
		FuerteWeight:  15,
		FuerteCrates:  3,
		HassWeight:    5,
		HassCrates:    1,
		CountedWeight: 180,
	}
	RecomputeRejection(r, 200)

	if r.TotalRejectedWeight != 20 {
		t.Errorf("TotalRejectedWeight = %v, want 20", r.TotalRejectedWeight)
	}
	if r.TotalRejectedCrates != 4 {
		t.Errorf("TotalRejectedCrates = %d, want 4", r.TotalRejectedCrates)
	}
	if r.Variance != 0 {
		t.Errorf("Variance = %v, want 0", r.Variance)
	}
}

func TestRecomputeRejection_CoercesGarbageToZero(t *testing.T) {
	r := &models.RejectionEntry{
		FuerteWeight:  math.NaN(),
		HassWeight:    -12,
		FuerteCrates:  -1,
		CountedWeight: 180,
	}
	RecomputeRejection(r, 200)

	if r.TotalRejectedWeight != 0 {
		t.Errorf("TotalRejectedWeight = %v, want 0", r.TotalRejectedWeight)
	}
	if r.TotalRejectedCrates != 0 {
		t.Errorf("TotalRejectedCrates = %d, want 0", r.TotalRejectedCrates)
	}
	if r.Variance != 20 {
		t.Errorf("Variance = %v, want 20", r.Variance)
	}
}

func TestRecomputeRejection_EndToEndScenario(t *testing.T) {
	// Intake 200kg, counted 180kg, 15kg rejected -> 5kg unaccounted.
	intake := &models.IntakeRecord{FuerteWeight: 200, FuerteCrates: 40, TotalWeight: 200}
	r := &models.RejectionEntry{FuerteWeight: 15, CountedWeight: 180}

	RecomputeRejection(r, ResolveIntakeWeight(intake, nil))
	if r.Variance != 5 {
		t.Errorf("Variance = %v, want 5", r.Variance)
	}
}

func id(v int64) *int64 { return &v }

func perfFixture() ([]models.Supplier, []models.IntakeRecord, []models.CountingRecord, []models.RejectionEntry) {
	suppliers := []models.Supplier{
		{ID: 1, Name: "Kakuzi"},
		{ID: 2, Name: "Murang'a Growers"},
		{ID: 3, Name: "Dormant Farm"}, // no intake at all
	}
	intakes := []models.IntakeRecord{
		{SupplierID: id(1), TotalWeight: 500},
		{SupplierID: id(1), TotalWeight: 250},
		{SupplierID: id(2), TotalWeight: 900},
	}
	countings := []models.CountingRecord{
		{SupplierID: id(1), Totals: models.CountingTotals{Fuerte4kgTotal: 100, Hass4kgTotal: 20}},
		{SupplierID: id(2), Totals: models.CountingTotals{Hass10kgTotal: 50}},
	}
	rejections := []models.RejectionEntry{
		{SupplierID: id(1), TotalRejectedWeight: 75},
	}
	return suppliers, intakes, countings, rejections
}

func TestAggregateSupplierPerformance(t *testing.T) {
	suppliers, intakes, countings, rejections := perfFixture()

	rows := AggregateSupplierPerformance(suppliers, intakes, countings, rejections)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows (zero-intake supplier dropped), got %d", len(rows))
	}

	// Sorted descending by intake weight.
	if rows[0].SupplierName != "Murang'a Growers" || rows[0].IntakeWeight != 900 {
		t.Errorf("row 0 = %+v, want Murang'a Growers at 900kg", rows[0])
	}
	if rows[1].SupplierName != "Kakuzi" || rows[1].IntakeWeight != 750 {
		t.Errorf("row 1 = %+v, want Kakuzi at 750kg", rows[1])
	}

	if rows[1].RejectionRate != 10 {
		t.Errorf("Kakuzi rejection rate = %v, want 10", rows[1].RejectionRate)
	}
	if rows[1].Boxes != 120 {
		t.Errorf("Kakuzi boxes = %d, want 120", rows[1].Boxes)
	}
	if rows[0].RejectionRate != 0 {
		t.Errorf("rejection-free supplier rate = %v, want 0", rows[0].RejectionRate)
	}
}

func TestAggregateSupplierPerformance_CapsAtEight(t *testing.T) {
	var suppliers []models.Supplier
	var intakes []models.IntakeRecord
	for i := int64(1); i <= 12; i++ {
		suppliers = append(suppliers, models.Supplier{ID: i, Name: "S"})
		sid := i
		intakes = append(intakes, models.IntakeRecord{SupplierID: &sid, TotalWeight: float64(i * 10)})
	}

	rows := AggregateSupplierPerformance(suppliers, intakes, nil, nil)
	if len(rows) != 8 {
		t.Fatalf("expected cap of 8 rows, got %d", len(rows))
	}
	if rows[0].IntakeWeight != 120 {
		t.Errorf("top row intake = %v, want 120", rows[0].IntakeWeight)
	}
}

func TestAggregateSupplierPerformance_TiesKeepInputOrder(t *testing.T) {
	suppliers := []models.Supplier{
		{ID: 1, Name: "First"},
		{ID: 2, Name: "Second"},
	}
	intakes := []models.IntakeRecord{
		{SupplierID: id(1), TotalWeight: 300},
		{SupplierID: id(2), TotalWeight: 300},
	}

	rows := AggregateSupplierPerformance(suppliers, intakes, nil, nil)
	if rows[0].SupplierName != "First" || rows[1].SupplierName != "Second" {
		t.Errorf("tie order broken: got %q then %q", rows[0].SupplierName, rows[1].SupplierName)
	}
}

func TestAggregateSupplierPerformance_NameFallbackMatch(t *testing.T) {
	suppliers := []models.Supplier{{ID: 7, Name: "Kakuzi"}}
	intakes := []models.IntakeRecord{
		{SupplierName: "Kakuzi", TotalWeight: 100},  // no id on the record
		{SupplierName: "kakuzi", TotalWeight: 999},  // casing mismatch must not link
	}

	rows := AggregateSupplierPerformance(suppliers, intakes, nil, nil)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].IntakeWeight != 100 {
		t.Errorf("intake = %v, want 100 (exact name match only)", rows[0].IntakeWeight)
	}
}
