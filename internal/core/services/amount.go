package services

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/turma62/fundraiser/internal/apperrors"
)

const msgAmountInvalid = "Por favor, insira um valor válido"

// maxAmount is the largest value ledger_records.amount (numeric(12,2)) can hold.
var maxAmount = decimal.RequireFromString("9999999999.99")

// plainAmount accepts digits with an optional fractional part. Exponents and
// signs are rejected before any decimal arithmetic runs.
var plainAmount = regexp.MustCompile(`^[0-9]{0,16}(\.[0-9]{1,16})?$`)

// parsePositiveAmount parses a user-typed amount into a positive value with
// centavo precision. A single comma is accepted as the decimal separator.
func parsePositiveAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	if !plainAmount.MatchString(s) {
		return decimal.Zero, invalidAmount()
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, invalidAmount()
	}
	amount = amount.Round(2)
	if !amount.IsPositive() || amount.GreaterThan(maxAmount) {
		return decimal.Zero, invalidAmount()
	}
	return amount, nil
}

func invalidAmount() error {
	return apperrors.NewValidationError(apperrors.CodeAmountInvalid, msgAmountInvalid)
}
