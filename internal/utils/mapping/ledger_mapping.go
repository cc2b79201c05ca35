package mapping

import (
	"database/sql"

	"github.com/turma62/fundraiser/internal/core/domain"
	"github.com/turma62/fundraiser/internal/models"
)

// ToModelLedgerRecord converts a domain LedgerRecord to a model LedgerRecord
func ToModelLedgerRecord(d domain.LedgerRecord) models.LedgerRecord {
	m := models.LedgerRecord{
		ID:         d.ID,
		DonorName:  d.DonorName,
		Amount:     d.Amount,
		Method:     string(d.Method),
		Kind:       string(d.Kind),
		OccurredAt: d.OccurredAt,
		CreatedAt:  d.CreatedAt,
		CreatedBy:  sql.NullString{String: d.CreatedBy, Valid: d.CreatedBy != ""},
	}
	if d.HasProof() {
		m.ProofURL = sql.NullString{String: *d.ProofURL, Valid: true}
	}
	return m
}

// ToDomainLedgerRecord converts a model LedgerRecord to a domain LedgerRecord
func ToDomainLedgerRecord(m models.LedgerRecord) domain.LedgerRecord {
	d := domain.LedgerRecord{
		ID:         m.ID,
		DonorName:  m.DonorName,
		Amount:     m.Amount,
		Method:     domain.PaymentMethod(m.Method),
		Kind:       domain.RecordKind(m.Kind),
		OccurredAt: m.OccurredAt,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			CreatedBy: m.CreatedBy.String,
		},
	}
	if m.ProofURL.Valid {
		proof := m.ProofURL.String
		d.ProofURL = &proof
	}
	return d
}

// ToDomainLedgerRecordSlice converts a slice of model records to domain records
func ToDomainLedgerRecordSlice(ms []models.LedgerRecord) []domain.LedgerRecord {
	ds := make([]domain.LedgerRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerRecord(m)
	}
	return ds
}
