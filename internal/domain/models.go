package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrValidation marks input rejected before any mutation.
var ErrValidation = errors.New("validation error")

type Debt struct {
	ID         int64           `db:"id"`
	CreditorID int64           `db:"creditor_id"`
	DebtorID   int64           `db:"debtor_id"`
	Amount     decimal.Decimal `db:"amount"`
	Note       *string         `db:"note"`
	CreatedAt  time.Time       `db:"created_at"`
}

type Kind string

const (
	KindRequest Kind = "request"
	KindPayment Kind = "payment"
)

var Kinds = []Kind{KindRequest, KindPayment}

func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindRequest:
		return KindRequest, true
	case KindPayment:
		return KindPayment, true
	}
	return "", false
}

type Role string

const (
	RoleDebtor   Role = "debtor"
	RoleCreditor Role = "creditor"
)

// Confirmer is the party allowed to confirm or deny: the debtor accepts a
// request, the creditor acknowledges a payment.
func (k Kind) Confirmer() Role {
	if k == KindPayment {
		return RoleCreditor
	}
	return RoleDebtor
}

type PendingTransaction struct {
	Kind       Kind            `db:"-"`
	MessageID  int64           `db:"message_id"`
	ChannelID  int64           `db:"channel_id"`
	CreditorID int64           `db:"creditor_id"`
	DebtorID   int64           `db:"debtor_id"`
	Amount     decimal.Decimal `db:"amount"`
	Note       *string         `db:"note"`
	ExpiresAt  time.Time       `db:"expires_at"`
	Reminded   bool            `db:"reminded"`
	CreatedAt  time.Time       `db:"created_at"`
}

func (p *PendingTransaction) ConfirmerID() int64 {
	if p.Kind.Confirmer() == RoleCreditor {
		return p.CreditorID
	}
	return p.DebtorID
}

func (p *PendingTransaction) InitiatorID() int64 {
	if p.Kind.Confirmer() == RoleCreditor {
		return p.DebtorID
	}
	return p.CreditorID
}

type CounterpartyTotal struct {
	UserID int64           `db:"user_id"`
	Total  decimal.Decimal `db:"total"`
}

type Summary struct {
	OwedToMe      []CounterpartyTotal
	IOwe          []CounterpartyTotal
	TotalOwedToMe decimal.Decimal
	TotalIOwe     decimal.Decimal
}

// Net is positive when the user is owed more than they owe.
func (s *Summary) Net() decimal.Decimal {
	return s.TotalOwedToMe.Sub(s.TotalIOwe)
}

type PaymentResult struct {
	Requested   decimal.Decimal
	Applied     decimal.Decimal
	Overpayment decimal.Decimal
}

// NoDebt reports that nothing was owed, so the whole payment went unapplied.
func (r *PaymentResult) NoDebt() bool {
	return r.Overpayment.Equal(r.Requested)
}

type Outcome string

const (
	OutcomeConfirmed       Outcome = "confirmed"
	OutcomeDenied          Outcome = "denied"
	OutcomeAlreadyResolved Outcome = "already_resolved"
	OutcomeUnauthorized    Outcome = "unauthorized"
)

type Resolution struct {
	Outcome Outcome
	Pending *PendingTransaction
	Payment *PaymentResult
}
