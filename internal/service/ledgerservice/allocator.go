package ledgerservice

import (
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/debtledger/internal/domain"
)

type Reduction struct {
	ID     int64
	Amount decimal.Decimal
}

// Allocation is the plan for reducing a pair's debts by one payment.
type Allocation struct {
	Deleted     []int64
	Reduced     *Reduction
	Applied     decimal.Decimal
	Overpayment decimal.Decimal
}

// Allocate consumes amount against debts greedily in the given order, which
// callers keep oldest first. Rows paid in full are deleted; at most one row is
// reduced; whatever is left over is the overpayment. Applied+Overpayment
// always equals amount.
func Allocate(debts []domain.Debt, amount decimal.Decimal) Allocation {
	alloc := Allocation{Applied: decimal.Zero}
	remaining := amount

	for _, debt := range debts {
		if !remaining.IsPositive() {
			break
		}
		if remaining.GreaterThanOrEqual(debt.Amount) {
			alloc.Deleted = append(alloc.Deleted, debt.ID)
			alloc.Applied = alloc.Applied.Add(debt.Amount)
			remaining = remaining.Sub(debt.Amount)
			continue
		}
		alloc.Reduced = &Reduction{ID: debt.ID, Amount: debt.Amount.Sub(remaining)}
		alloc.Applied = alloc.Applied.Add(remaining)
		remaining = decimal.Zero
	}

	alloc.Overpayment = remaining
	return alloc
}
