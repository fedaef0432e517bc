package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPendingTransaction_Roles(t *testing.T) {
	tests := []struct {
		name          string
		kind          Kind
		confirmerRole Role
		confirmerID   int64
		initiatorID   int64
	}{
		{name: "Debtor confirms a request", kind: KindRequest, confirmerRole: RoleDebtor, confirmerID: 2, initiatorID: 1},
		{name: "Creditor confirms a payment", kind: KindPayment, confirmerRole: RoleCreditor, confirmerID: 1, initiatorID: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &PendingTransaction{Kind: tt.kind, CreditorID: 1, DebtorID: 2}
			assert.Equal(t, tt.confirmerRole, tt.kind.Confirmer())
			assert.Equal(t, tt.confirmerID, p.ConfirmerID())
			assert.Equal(t, tt.initiatorID, p.InitiatorID())
		})
	}
}

func TestParseKind(t *testing.T) {
	kind, ok := ParseKind("payment")
	assert.True(t, ok)
	assert.Equal(t, KindPayment, kind)

	_, ok = ParseKind("loan")
	assert.False(t, ok)
}

func TestPaymentResult_NoDebt(t *testing.T) {
	ten := decimal.NewFromInt(10)
	assert.True(t, (&PaymentResult{Requested: ten, Applied: decimal.Zero, Overpayment: ten}).NoDebt())
	assert.False(t, (&PaymentResult{Requested: ten, Applied: decimal.NewFromInt(4), Overpayment: decimal.NewFromInt(6)}).NoDebt())
}

func TestSummary_Net(t *testing.T) {
	s := &Summary{TotalOwedToMe: decimal.RequireFromString("12.50"), TotalIOwe: decimal.RequireFromString("20")}
	assert.True(t, s.Net().Equal(decimal.RequireFromString("-7.50")))
}

func TestValidationErrors(t *testing.T) {
	for _, err := range []error{ErrSelfDealing, ErrNonPositiveAmount, ErrAmountTooLarge, ErrUnknownUser, ErrUnknownKind} {
		assert.True(t, errors.Is(err, ErrValidation), err.Error())
	}
}
