package domain

// ZoneStats holds the read-time aggregates for one zone.
type ZoneStats struct {
	ZoneID           string             `json:"zone_id"`
	SubmissionCount  int                `json:"submission_count"`
	VerifiedCount    int                `json:"verified_count"`
	PendingCount     int                `json:"pending_count"`
	VerifiedWeightKg float64            `json:"verified_weight_kg"`
	TotalWeightKg    float64            `json:"total_weight_kg"`
	MaterialWeights  map[string]float64 `json:"material_weights"`
}

// AggregateByZone computes per-zone submission statistics in a single pass.
// It is the one place derived volume and material composition are defined;
// all read-side consumers call it instead of summing ad hoc.
func AggregateByZone(submissions []*Submission) map[string]ZoneStats {
	stats := make(map[string]ZoneStats)
	for _, sub := range submissions {
		if sub.ZoneID == "" {
			continue
		}
		zs, ok := stats[sub.ZoneID]
		if !ok {
			zs = ZoneStats{ZoneID: sub.ZoneID, MaterialWeights: make(map[string]float64)}
		}
		zs.SubmissionCount++
		total := sub.TotalWeightKg()
		zs.TotalWeightKg += total
		switch sub.Status {
		case StatusVerified:
			zs.VerifiedCount++
			zs.VerifiedWeightKg += total
			for _, item := range sub.Items {
				zs.MaterialWeights[item.MaterialType] += item.WeightKg
			}
		case StatusPending:
			zs.PendingCount++
		}
		stats[sub.ZoneID] = zs
	}
	return stats
}

// MaterialTotals sums verified weight per material type across all submissions.
func MaterialTotals(submissions []*Submission) map[string]float64 {
	totals := make(map[string]float64)
	for _, sub := range submissions {
		if sub.Status != StatusVerified {
			continue
		}
		for _, item := range sub.Items {
			totals[item.MaterialType] += item.WeightKg
		}
	}
	return totals
}
