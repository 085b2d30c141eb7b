package domain

import "testing"

func sampleSubmissions() []*Submission {
	return []*Submission{
		{
			ZoneID: "zone-1", Status: StatusVerified,
			Items: []SubmissionItem{{MaterialType: "PET", WeightKg: 10}, {MaterialType: "HDPE", WeightKg: 5}},
		},
		{
			ZoneID: "zone-1", Status: StatusPending,
			Items: []SubmissionItem{{MaterialType: "PET", WeightKg: 3}},
		},
		{
			ZoneID: "zone-1", Status: StatusRejected,
			Items: []SubmissionItem{{MaterialType: "PET", WeightKg: 100}},
		},
		{
			ZoneID: "zone-2", Status: StatusVerified,
			Items: []SubmissionItem{{MaterialType: "PP", WeightKg: 2}},
		},
		{
			// proposed zone, not yet registered: excluded from zone stats
			NewZoneName: "Canal East", Status: StatusPending,
			Items: []SubmissionItem{{MaterialType: "PET", WeightKg: 1}},
		},
	}
}

func TestAggregateByZone(t *testing.T) {
	stats := AggregateByZone(sampleSubmissions())

	if len(stats) != 2 {
		t.Fatalf("expected 2 zones, got %d", len(stats))
	}

	z1 := stats["zone-1"]
	if z1.SubmissionCount != 3 {
		t.Errorf("zone-1 submissions: expected 3, got %d", z1.SubmissionCount)
	}
	if z1.VerifiedCount != 1 || z1.PendingCount != 1 {
		t.Errorf("zone-1 counts: %+v", z1)
	}
	if z1.VerifiedWeightKg != 15 {
		t.Errorf("zone-1 verified weight: expected 15, got %v", z1.VerifiedWeightKg)
	}
	if z1.TotalWeightKg != 118 {
		t.Errorf("zone-1 total weight: expected 118, got %v", z1.TotalWeightKg)
	}
	// material composition counts verified weight only
	if z1.MaterialWeights["PET"] != 10 || z1.MaterialWeights["HDPE"] != 5 {
		t.Errorf("zone-1 material weights: %v", z1.MaterialWeights)
	}

	z2 := stats["zone-2"]
	if z2.VerifiedWeightKg != 2 || z2.MaterialWeights["PP"] != 2 {
		t.Errorf("zone-2 stats: %+v", z2)
	}
}

func TestAggregateByZone_Empty(t *testing.T) {
	stats := AggregateByZone(nil)
	if len(stats) != 0 {
		t.Errorf("expected empty map, got %v", stats)
	}
}

func TestMaterialTotals(t *testing.T) {
	totals := MaterialTotals(sampleSubmissions())

	if totals["PET"] != 10 {
		t.Errorf("PET: expected 10 (verified only), got %v", totals["PET"])
	}
	if totals["HDPE"] != 5 {
		t.Errorf("HDPE: expected 5, got %v", totals["HDPE"])
	}
	if totals["PP"] != 2 {
		t.Errorf("PP: expected 2, got %v", totals["PP"])
	}
}
