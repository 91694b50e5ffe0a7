package accounting

import (
	"fmt"

	"github.com/elephantbook/eb-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NormalizeAmount forces the sign of a caller-supplied amount to match the
// polarity of the category it is recorded under:
//
//	expense -> -|amount|
//	income  -> +|amount|
//
// It is applied at every write that carries a category, so the stored sign
// always reflects the category on record at write time. The amount is
// rounded to two fractional digits.
func NormalizeAmount(amount decimal.Decimal, categoryType domain.CategoryType) (decimal.Decimal, error) {
	amount = amount.Round(2)
	switch categoryType {
	case domain.Expense:
		return amount.Abs().Neg(), nil
	case domain.Income:
		return amount.Abs(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown category type '%s'", categoryType)
	}
}

// SumEntries adds up the amounts of a set of ledger entries in exact decimal
// arithmetic. It returns zero for an empty set.
func SumEntries(entries []domain.LedgerEntry) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		sum = sum.Add(e.Amount)
	}
	return sum
}
