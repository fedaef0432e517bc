package pendingservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/debtledger/internal/domain"
	"github.com/GlebRadaev/debtledger/internal/notify"
	"github.com/GlebRadaev/debtledger/internal/pg"
	"github.com/GlebRadaev/debtledger/pkg/money"
)

//go:generate mockgen -source=pendingservice.go -destination=mock_pendingservice.go -package=pendingservice

var (
	ErrPendingNotFound = errors.New("pending transaction not found")
	ErrPromptFailed    = errors.New("failed to post prompt")
	errVanished        = errors.New("locked pending transaction vanished")
)

type PendingRepo interface {
	Create(ctx context.Context, p *domain.PendingTransaction) (*domain.PendingTransaction, error)
	Get(ctx context.Context, kind domain.Kind, messageID int64) (*domain.PendingTransaction, error)
	GetForUpdate(ctx context.Context, kind domain.Kind, messageID int64) (*domain.PendingTransaction, error)
	Delete(ctx context.Context, kind domain.Kind, messageID int64) (bool, error)
}

type Ledger interface {
	AddDebt(ctx context.Context, creditorID, debtorID int64, amount decimal.Decimal, note *string) (*domain.Debt, error)
	ApplyPayment(ctx context.Context, creditorID, debtorID int64, amount decimal.Decimal) (*domain.PaymentResult, error)
}

type Service struct {
	pendingRepo  PendingRepo
	ledger       Ledger
	txManager    pg.TXManager
	notifier     notify.Notifier
	expiryWindow time.Duration
	now          func() time.Time
}

func New(pendingRepo PendingRepo, ledger Ledger, txManager pg.TXManager, notifier notify.Notifier, expiryWindow time.Duration) *Service {
	return &Service{
		pendingRepo:  pendingRepo,
		ledger:       ledger,
		txManager:    txManager,
		notifier:     notifier,
		expiryWindow: expiryWindow,
		now:          time.Now,
	}
}

// CreateRequest asks targetID to confirm that they owe actorID amount.
func (s *Service) CreateRequest(ctx context.Context, actorID, targetID, channelID int64, amount decimal.Decimal, note *string) (*domain.PendingTransaction, error) {
	return s.create(ctx, &domain.PendingTransaction{
		Kind:       domain.KindRequest,
		ChannelID:  channelID,
		CreditorID: actorID,
		DebtorID:   targetID,
		Amount:     amount,
		Note:       note,
	})
}

// CreatePayment asks targetID to acknowledge that actorID paid them amount.
func (s *Service) CreatePayment(ctx context.Context, actorID, targetID, channelID int64, amount decimal.Decimal, note *string) (*domain.PendingTransaction, error) {
	return s.create(ctx, &domain.PendingTransaction{
		Kind:       domain.KindPayment,
		ChannelID:  channelID,
		CreditorID: targetID,
		DebtorID:   actorID,
		Amount:     amount,
		Note:       note,
	})
}

func validate(p *domain.PendingTransaction) error {
	if p.CreditorID == 0 || p.DebtorID == 0 {
		return domain.ErrUnknownUser
	}
	if p.CreditorID == p.DebtorID {
		return domain.ErrSelfDealing
	}
	if !p.Amount.IsPositive() {
		return domain.ErrNonPositiveAmount
	}
	if p.Amount.GreaterThan(money.Max) {
		return domain.ErrAmountTooLarge
	}
	if p.Note != nil && utf8.RuneCountInString(*p.Note) > domain.MaxNoteLength {
		return domain.ErrNoteTooLong
	}
	return nil
}

func normalizeNote(note *string) *string {
	if note == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*note)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (s *Service) create(ctx context.Context, p *domain.PendingTransaction) (*domain.PendingTransaction, error) {
	p.Amount = money.Round(p.Amount)
	p.Note = normalizeNote(p.Note)
	if err := validate(p); err != nil {
		return nil, err
	}
	p.ExpiresAt = s.now().Add(s.expiryWindow).UTC()

	text := notify.PromptText(p, notify.ResolveNames(ctx, s.notifier, p))
	messageID, err := s.notifier.Prompt(ctx, p.ChannelID, text)
	if err != nil {
		zap.L().Error("failed to post prompt", zap.String("kind", string(p.Kind)), zap.Int64("channel_id", p.ChannelID), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrPromptFailed, err)
	}
	p.MessageID = messageID

	created, err := s.pendingRepo.Create(ctx, p)
	if err != nil {
		if editErr := s.notifier.EditPrompt(ctx, p.ChannelID, messageID, notify.FailedText(p.Kind)); editErr != nil {
			zap.L().Warn("failed to mark prompt as failed", zap.Int64("message_id", messageID), zap.Error(editErr))
		}
		return nil, err
	}

	zap.L().Info("pending transaction created",
		zap.String("kind", string(created.Kind)),
		zap.Int64("message_id", created.MessageID),
		zap.Int64("creditor_id", created.CreditorID),
		zap.Int64("debtor_id", created.DebtorID),
		zap.String("amount", money.String(created.Amount)),
	)
	return created, nil
}

func (s *Service) Get(ctx context.Context, kind domain.Kind, messageID int64) (*domain.PendingTransaction, error) {
	if _, ok := domain.ParseKind(string(kind)); !ok {
		return nil, domain.ErrUnknownKind
	}
	p, err := s.pendingRepo.Get(ctx, kind, messageID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPendingNotFound
	}
	return p, nil
}

// Confirm applies the pending transaction if actorID is its confirmer. A
// second confirm, or one racing a deny or expiry, gets OutcomeAlreadyResolved.
func (s *Service) Confirm(ctx context.Context, kind domain.Kind, messageID, actorID int64) (*domain.Resolution, error) {
	return s.resolve(ctx, kind, messageID, actorID, true)
}

func (s *Service) Deny(ctx context.Context, kind domain.Kind, messageID, actorID int64) (*domain.Resolution, error) {
	return s.resolve(ctx, kind, messageID, actorID, false)
}

func (s *Service) resolve(ctx context.Context, kind domain.Kind, messageID, actorID int64, confirm bool) (*domain.Resolution, error) {
	if _, ok := domain.ParseKind(string(kind)); !ok {
		return nil, domain.ErrUnknownKind
	}

	res := &domain.Resolution{}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		p, err := s.pendingRepo.GetForUpdate(ctx, kind, messageID)
		if err != nil {
			return err
		}
		if p == nil {
			res.Outcome = domain.OutcomeAlreadyResolved
			return nil
		}
		res.Pending = p
		if p.ConfirmerID() != actorID {
			res.Outcome = domain.OutcomeUnauthorized
			return nil
		}

		res.Outcome = domain.OutcomeDenied
		if confirm {
			res.Outcome = domain.OutcomeConfirmed
			if err := s.apply(ctx, p, res); err != nil {
				return err
			}
		}

		deleted, err := s.pendingRepo.Delete(ctx, kind, messageID)
		if err != nil {
			return err
		}
		if !deleted {
			return errVanished
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to resolve pending transaction",
			zap.String("kind", string(kind)), zap.Int64("message_id", messageID), zap.Bool("confirm", confirm), zap.Error(err))
		return nil, err
	}

	if res.Outcome == domain.OutcomeConfirmed || res.Outcome == domain.OutcomeDenied {
		zap.L().Info("pending transaction resolved",
			zap.String("kind", string(kind)), zap.Int64("message_id", messageID), zap.String("outcome", string(res.Outcome)))
		s.editPrompt(ctx, res)
	}
	return res, nil
}

func (s *Service) apply(ctx context.Context, p *domain.PendingTransaction, res *domain.Resolution) error {
	if p.Kind == domain.KindPayment {
		payment, err := s.ledger.ApplyPayment(ctx, p.CreditorID, p.DebtorID, p.Amount)
		if err != nil {
			return err
		}
		res.Payment = payment
		return nil
	}
	_, err := s.ledger.AddDebt(ctx, p.CreditorID, p.DebtorID, p.Amount, p.Note)
	return err
}

// editPrompt replaces the prompt with the final outcome. The ledger change is
// already committed, so failures are only logged.
func (s *Service) editPrompt(ctx context.Context, res *domain.Resolution) {
	p := res.Pending
	names := notify.ResolveNames(ctx, s.notifier, p)

	text := notify.DeniedText(p, names)
	if res.Outcome == domain.OutcomeConfirmed {
		text = notify.ConfirmedText(p, names, res.Payment)
	}

	err := s.notifier.EditPrompt(ctx, p.ChannelID, p.MessageID, text)
	switch {
	case err == nil:
	case errors.Is(err, notify.ErrPromptNotFound), errors.Is(err, notify.ErrForbidden):
		zap.L().Debug("prompt no longer editable", zap.Int64("message_id", p.MessageID), zap.Error(err))
	default:
		zap.L().Warn("failed to edit prompt", zap.Int64("message_id", p.MessageID), zap.Error(err))
	}
}
