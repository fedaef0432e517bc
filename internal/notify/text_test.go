package notify

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/debtledger/internal/domain"
)

func pending(kind domain.Kind, amount string, note *string) *domain.PendingTransaction {
	return &domain.PendingTransaction{
		Kind:       kind,
		MessageID:  100,
		ChannelID:  7,
		CreditorID: 1,
		DebtorID:   2,
		Amount:     decimal.RequireFromString(amount),
		Note:       note,
		ExpiresAt:  time.Date(2026, 10, 17, 12, 30, 0, 0, time.UTC),
	}
}

func TestPromptText(t *testing.T) {
	note := "pizza"
	names := Names{Creditor: "Alice", Debtor: "Bob"}

	tests := []struct {
		name     string
		pending  *domain.PendingTransaction
		expected string
	}{
		{
			name:     "Request addresses the debtor",
			pending:  pending(domain.KindRequest, "12.5", &note),
			expected: `Alice requests $12.50 from Bob for "pizza". Bob, confirm or deny. Expires 2026-10-17 12:30 UTC.`,
		},
		{
			name:     "Payment addresses the creditor",
			pending:  pending(domain.KindPayment, "1234", nil),
			expected: `Bob says they paid Alice $1,234.00. Alice, confirm or deny receipt. Expires 2026-10-17 12:30 UTC.`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PromptText(tt.pending, names))
		})
	}
}

func TestConfirmedText(t *testing.T) {
	names := Names{Creditor: "Alice", Debtor: "Bob"}

	tests := []struct {
		name     string
		pending  *domain.PendingTransaction
		payment  *domain.PaymentResult
		expected string
	}{
		{
			name:     "Request",
			pending:  pending(domain.KindRequest, "10", nil),
			expected: "Confirmed: Bob owes Alice $10.00.",
		},
		{
			name:    "Payment fully applied",
			pending: pending(domain.KindPayment, "10", nil),
			payment: &domain.PaymentResult{
				Requested: decimal.NewFromInt(10), Applied: decimal.NewFromInt(10), Overpayment: decimal.Zero,
			},
			expected: "Confirmed: Bob paid Alice $10.00.",
		},
		{
			name:    "Payment with overpayment",
			pending: pending(domain.KindPayment, "15", nil),
			payment: &domain.PaymentResult{
				Requested: decimal.NewFromInt(15), Applied: decimal.NewFromInt(10), Overpayment: decimal.NewFromInt(5),
			},
			expected: "Confirmed: Bob paid Alice $15.00. Applied $10.00; $5.00 was more than owed.",
		},
		{
			name:    "Payment with no debt",
			pending: pending(domain.KindPayment, "10", nil),
			payment: &domain.PaymentResult{
				Requested: decimal.NewFromInt(10), Applied: decimal.Zero, Overpayment: decimal.NewFromInt(10),
			},
			expected: "Confirmed: Bob paid Alice $10.00. Bob had no outstanding debt to Alice, nothing was applied.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ConfirmedText(tt.pending, names, tt.payment))
		})
	}
}

func TestReminderText(t *testing.T) {
	names := Names{Creditor: "Alice", Debtor: "Bob"}

	assert.Equal(t,
		"Reminder: Alice, the payment for $3.00 expires in less than 1 hour. Confirm or deny it before 2026-10-17 12:30 UTC.",
		ReminderText(pending(domain.KindPayment, "3", nil), names, time.Hour))
	assert.Contains(t, ReminderText(pending(domain.KindRequest, "3", nil), names, 90*time.Minute), "Bob, the request")
	assert.Contains(t, ReminderText(pending(domain.KindRequest, "3", nil), names, 90*time.Minute), "less than 90 minutes")
}

func TestDeniedAndExpiredText(t *testing.T) {
	names := Names{Creditor: "Alice", Debtor: "Bob"}

	assert.Equal(t, "Denied: Bob declined the request for $4.00 from Alice.", DeniedText(pending(domain.KindRequest, "4", nil), names))
	assert.Equal(t, "Denied: Alice did not confirm receiving $4.00 from Bob.", DeniedText(pending(domain.KindPayment, "4", nil), names))
	assert.Equal(t, "Expired: the request of $4.00 between Alice and Bob was not confirmed in time.", ExpiredText(pending(domain.KindRequest, "4", nil), names))
	assert.Equal(t, "This payment could not be recorded. Please try again.", FailedText(domain.KindPayment))
}

func TestResolveNames(t *testing.T) {
	ctrl := gomock.NewController(t)
	n := NewMockNotifier(ctrl)

	n.EXPECT().DisplayName(gomock.Any(), int64(1)).Return("Alice", true)
	n.EXPECT().DisplayName(gomock.Any(), int64(2)).Return("", false)

	names := ResolveNames(context.Background(), n, pending(domain.KindRequest, "1", nil))
	assert.Equal(t, Names{Creditor: "Alice", Debtor: "user 2"}, names)
}

func TestMention(t *testing.T) {
	assert.Equal(t, "user 12345", Mention(12345))
	assert.NotContains(t, Mention(12345), "<@")
}

func TestHumanize(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{time.Hour, "1 hour"},
		{3 * time.Hour, "3 hours"},
		{90 * time.Minute, "90 minutes"},
		{time.Minute, "1 minute"},
		{30 * time.Second, "30 seconds"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, humanize(tt.d))
		})
	}
}
