package dto

import (
	"github.com/shopspring/decimal"
	"github.com/turma62/fundraiser/internal/core/domain"
	"github.com/turma62/fundraiser/internal/utils"
)

// SummaryResponse is the donor page total/progress card.
type SummaryResponse struct {
	Total          decimal.Decimal `json:"total"`
	TotalFormatted string          `json:"totalFormatted"`
	Goal           decimal.Decimal `json:"goal"`
	GoalFormatted  string          `json:"goalFormatted"`
	Progress       decimal.Decimal `json:"progress"`
	ProgressLabel  string          `json:"progressLabel"`
	Participants   int             `json:"participants"`
}

// ToSummaryResponse converts a domain.CampaignSummary
func ToSummaryResponse(s domain.CampaignSummary) SummaryResponse {
	return SummaryResponse{
		Total:          s.Total,
		TotalFormatted: utils.FormatCurrency(s.Total),
		Goal:           s.Goal,
		GoalFormatted:  utils.FormatCurrency(s.Goal),
		Progress:       s.Progress.Round(2),
		ProgressLabel:  utils.FormatPercent(s.Progress),
		Participants:   s.Participants,
	}
}

// AdminSummaryResponse is the "Resumo da Campanha" card.
type AdminSummaryResponse struct {
	Total          decimal.Decimal `json:"total"`
	TotalFormatted string          `json:"totalFormatted"`
	RecordCount    int             `json:"recordCount"`
	UniqueDonors   int             `json:"uniqueDonors"`
}

// ToAdminSummaryResponse converts a domain.AdminSummary
func ToAdminSummaryResponse(s domain.AdminSummary) AdminSummaryResponse {
	return AdminSummaryResponse{
		Total:          s.Total,
		TotalFormatted: utils.FormatCurrency(s.Total),
		RecordCount:    s.RecordCount,
		UniqueDonors:   s.UniqueDonors,
	}
}

// CampaignResponse carries the static campaign info shown next to the donate button.
type CampaignResponse struct {
	Name          string          `json:"name"`
	Goal          decimal.Decimal `json:"goal"`
	GoalFormatted string          `json:"goalFormatted"`
	PixKey        string          `json:"pixKey"`
	ProofRequired bool            `json:"proofRequired"`
	MaxProofBytes int64           `json:"maxProofBytes"`
}
