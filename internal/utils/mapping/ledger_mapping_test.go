package mapping_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turma62/fundraiser/internal/core/domain"
	"github.com/turma62/fundraiser/internal/utils/mapping"
)

func TestLedgerRecordMapping_ProofOptional(t *testing.T) {
	now := time.Now().UTC()
	adjustment := domain.LedgerRecord{
		ID:          "rec-1",
		DonorName:   domain.AdjustSubtract.Label(),
		Amount:      decimal.NewFromInt(-20),
		Method:      domain.MethodPix,
		Kind:        domain.KindAdjustment,
		OccurredAt:  now,
		AuditFields: domain.AuditFields{CreatedAt: now, CreatedBy: "admin-1"},
	}

	m := mapping.ToModelLedgerRecord(adjustment)
	assert.False(t, m.ProofURL.Valid)
	assert.True(t, m.CreatedBy.Valid)

	back := mapping.ToDomainLedgerRecord(m)
	assert.Nil(t, back.ProofURL)
	assert.Equal(t, "admin-1", back.CreatedBy)

	proof := "http://localhost/proofs/comprovantes/1.jpg"
	donation := adjustment
	donation.ProofURL = &proof
	donation.CreatedBy = ""

	m = mapping.ToModelLedgerRecord(donation)
	assert.True(t, m.ProofURL.Valid)
	assert.False(t, m.CreatedBy.Valid)
	back = mapping.ToDomainLedgerRecord(m)
	require.NotNil(t, back.ProofURL)
	assert.Equal(t, proof, *back.ProofURL)
}
