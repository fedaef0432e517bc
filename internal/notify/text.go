package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/GlebRadaev/debtledger/internal/domain"
	"github.com/GlebRadaev/debtledger/pkg/money"
)

const timeLayout = "2006-01-02 15:04 MST"

type Names struct {
	Creditor string
	Debtor   string
}

// Mention is the fallback used when the platform cannot resolve a name. It is
// plain text so it reads the same on every chat platform.
func Mention(userID int64) string {
	return fmt.Sprintf("user %d", userID)
}

func ResolveName(ctx context.Context, n Notifier, userID int64) string {
	if name, ok := n.DisplayName(ctx, userID); ok && name != "" {
		return name
	}
	return Mention(userID)
}

func ResolveNames(ctx context.Context, n Notifier, p *domain.PendingTransaction) Names {
	return Names{
		Creditor: ResolveName(ctx, n, p.CreditorID),
		Debtor:   ResolveName(ctx, n, p.DebtorID),
	}
}

func noteSuffix(note *string) string {
	if note == nil || strings.TrimSpace(*note) == "" {
		return ""
	}
	return fmt.Sprintf(" for %q", *note)
}

// PromptText is the body of the confirmation prompt, addressed to the
// confirming party.
func PromptText(p *domain.PendingTransaction, names Names) string {
	switch p.Kind {
	case domain.KindPayment:
		return fmt.Sprintf("%s says they paid %s %s%s. %s, confirm or deny receipt. Expires %s.",
			names.Debtor, names.Creditor, money.Format(p.Amount), noteSuffix(p.Note),
			names.Creditor, p.ExpiresAt.UTC().Format(timeLayout))
	default:
		return fmt.Sprintf("%s requests %s from %s%s. %s, confirm or deny. Expires %s.",
			names.Creditor, money.Format(p.Amount), names.Debtor, noteSuffix(p.Note),
			names.Debtor, p.ExpiresAt.UTC().Format(timeLayout))
	}
}

func ConfirmedText(p *domain.PendingTransaction, names Names, payment *domain.PaymentResult) string {
	if p.Kind == domain.KindRequest {
		return fmt.Sprintf("Confirmed: %s owes %s %s%s.",
			names.Debtor, names.Creditor, money.Format(p.Amount), noteSuffix(p.Note))
	}

	text := fmt.Sprintf("Confirmed: %s paid %s %s.", names.Debtor, names.Creditor, money.Format(p.Amount))
	if payment == nil {
		return text
	}
	switch {
	case payment.NoDebt():
		text += fmt.Sprintf(" %s had no outstanding debt to %s, nothing was applied.", names.Debtor, names.Creditor)
	case payment.Overpayment.IsPositive():
		text += fmt.Sprintf(" Applied %s; %s was more than owed.",
			money.Format(payment.Applied), money.Format(payment.Overpayment))
	}
	return text
}

func DeniedText(p *domain.PendingTransaction, names Names) string {
	if p.Kind == domain.KindPayment {
		return fmt.Sprintf("Denied: %s did not confirm receiving %s from %s.",
			names.Creditor, money.Format(p.Amount), names.Debtor)
	}
	return fmt.Sprintf("Denied: %s declined the request for %s from %s.",
		names.Debtor, money.Format(p.Amount), names.Creditor)
}

func ReminderText(p *domain.PendingTransaction, names Names, horizon time.Duration) string {
	confirmer := names.Debtor
	if p.Kind == domain.KindPayment {
		confirmer = names.Creditor
	}
	return fmt.Sprintf("Reminder: %s, the %s for %s expires in less than %s. Confirm or deny it before %s.",
		confirmer, p.Kind, money.Format(p.Amount), humanize(horizon), p.ExpiresAt.UTC().Format(timeLayout))
}

func ExpiredText(p *domain.PendingTransaction, names Names) string {
	return fmt.Sprintf("Expired: the %s of %s between %s and %s was not confirmed in time.",
		p.Kind, money.Format(p.Amount), names.Creditor, names.Debtor)
}

func FailedText(kind domain.Kind) string {
	return fmt.Sprintf("This %s could not be recorded. Please try again.", kind)
}

func humanize(d time.Duration) string {
	switch {
	case d >= time.Hour && d%time.Hour == 0:
		return plural(int64(d/time.Hour), "hour")
	case d >= time.Minute:
		return plural(int64((d+time.Minute-1)/time.Minute), "minute")
	}
	return plural(int64((d+time.Second-1)/time.Second), "second")
}

func plural(n int64, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
