package accounting

import (
	"github.com/shopspring/decimal"
	"github.com/turma62/fundraiser/internal/core/domain"
)

var hundred = decimal.NewFromInt(100)

// ComputeTotal sums the signed amount of every record, seed and adjustments included.
// An empty set totals zero.
func ComputeTotal(records []domain.LedgerRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Amount)
	}
	return total
}

// ComputeProgress returns total/goal*100 clamped to [0, 100].
// A non-positive goal yields 0 so the bar never divides by zero.
func ComputeProgress(total, goal decimal.Decimal) decimal.Decimal {
	if !goal.IsPositive() || !total.IsPositive() {
		return decimal.Zero
	}
	pct := total.Div(goal).Mul(hundred)
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct
}

// ComputeParticipantCount counts real contributions. Seed and adjustment rows are
// excluded by their kind instead of subtracting a fixed offset.
func ComputeParticipantCount(records []domain.LedgerRecord) int {
	n := 0
	for _, r := range records {
		if r.IsContribution() {
			n++
		}
	}
	return n
}

// ComputeUniqueDonors is the number of distinct donor names across all records.
func ComputeUniqueDonors(records []domain.LedgerRecord) int {
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		seen[r.DonorName] = struct{}{}
	}
	return len(seen)
}

// BuildCampaignSummary folds a snapshot into the donor page view model.
func BuildCampaignSummary(records []domain.LedgerRecord, goal decimal.Decimal) domain.CampaignSummary {
	total := ComputeTotal(records)
	return domain.CampaignSummary{
		Total:        total,
		Goal:         goal,
		Progress:     ComputeProgress(total, goal),
		Participants: ComputeParticipantCount(records),
	}
}

// BuildAdminSummary folds a snapshot into the admin panel view model.
func BuildAdminSummary(records []domain.LedgerRecord) domain.AdminSummary {
	return domain.AdminSummary{
		Total:        ComputeTotal(records),
		RecordCount:  len(records),
		UniqueDonors: ComputeUniqueDonors(records),
	}
}
