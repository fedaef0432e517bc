package ledgerservice

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/debtledger/internal/domain"
	"github.com/GlebRadaev/debtledger/internal/pg"
	"github.com/GlebRadaev/debtledger/pkg/money"
)

//go:generate mockgen -source=ledgerservice.go -destination=mock_ledgerservice.go -package=ledgerservice

type DebtRepo interface {
	Create(ctx context.Context, debt *domain.Debt) (*domain.Debt, error)
	OwedTo(ctx context.Context, creditorID int64) ([]domain.CounterpartyTotal, error)
	OwedBy(ctx context.Context, debtorID int64) ([]domain.CounterpartyTotal, error)
	SumOwed(ctx context.Context, creditorID, debtorID int64) (decimal.Decimal, error)
	LockForPayment(ctx context.Context, creditorID, debtorID int64) ([]domain.Debt, error)
	UpdateAmount(ctx context.Context, id int64, amount decimal.Decimal) error
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	debtRepo  DebtRepo
	txManager pg.TXManager
}

func New(debtRepo DebtRepo, txManager pg.TXManager) *Service {
	return &Service{
		debtRepo:  debtRepo,
		txManager: txManager,
	}
}

func validatePair(creditorID, debtorID int64, amount decimal.Decimal) error {
	if creditorID == 0 || debtorID == 0 {
		return domain.ErrUnknownUser
	}
	if creditorID == debtorID {
		return domain.ErrSelfDealing
	}
	if !amount.IsPositive() {
		return domain.ErrNonPositiveAmount
	}
	if amount.GreaterThan(money.Max) {
		return domain.ErrAmountTooLarge
	}
	return nil
}

// AddDebt records a settled debt directly.
func (s *Service) AddDebt(ctx context.Context, creditorID, debtorID int64, amount decimal.Decimal, note *string) (*domain.Debt, error) {
	amount = money.Round(amount)
	if err := validatePair(creditorID, debtorID, amount); err != nil {
		return nil, err
	}

	debt, err := s.debtRepo.Create(ctx, &domain.Debt{
		CreditorID: creditorID,
		DebtorID:   debtorID,
		Amount:     amount,
		Note:       note,
	})
	if err != nil {
		zap.L().Error("failed to add debt", zap.Error(err))
		return nil, err
	}
	return debt, nil
}

// ApplyPayment reduces the debtor's debts to the creditor oldest first. The
// pair's rows are locked for the whole read-modify-write, so two payments on
// the same pair never see the same balance.
func (s *Service) ApplyPayment(ctx context.Context, creditorID, debtorID int64, amount decimal.Decimal) (*domain.PaymentResult, error) {
	amount = money.Round(amount)
	if err := validatePair(creditorID, debtorID, amount); err != nil {
		return nil, err
	}

	var result *domain.PaymentResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		debts, err := s.debtRepo.LockForPayment(ctx, creditorID, debtorID)
		if err != nil {
			return err
		}

		alloc := Allocate(debts, amount)
		for _, id := range alloc.Deleted {
			if err := s.debtRepo.Delete(ctx, id); err != nil {
				return err
			}
		}
		if alloc.Reduced != nil {
			if err := s.debtRepo.UpdateAmount(ctx, alloc.Reduced.ID, alloc.Reduced.Amount); err != nil {
				return err
			}
		}

		result = &domain.PaymentResult{
			Requested:   amount,
			Applied:     alloc.Applied,
			Overpayment: alloc.Overpayment,
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to apply payment", zap.Int64("creditor_id", creditorID), zap.Int64("debtor_id", debtorID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("payment applied",
		zap.Int64("creditor_id", creditorID),
		zap.Int64("debtor_id", debtorID),
		zap.String("applied", money.String(result.Applied)),
		zap.String("overpayment", money.String(result.Overpayment)),
	)
	return result, nil
}

func (s *Service) OwedTo(ctx context.Context, userID int64) ([]domain.CounterpartyTotal, error) {
	totals, err := s.debtRepo.OwedTo(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get debts owed to user", zap.Error(err))
		return nil, err
	}
	return totals, nil
}

func (s *Service) OwedBy(ctx context.Context, userID int64) ([]domain.CounterpartyTotal, error) {
	totals, err := s.debtRepo.OwedBy(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get debts owed by user", zap.Error(err))
		return nil, err
	}
	return totals, nil
}

// NetBalance is what b owes a minus what a owes b; positive means b owes a.
func (s *Service) NetBalance(ctx context.Context, a, b int64) (decimal.Decimal, error) {
	owedToA, err := s.debtRepo.SumOwed(ctx, a, b)
	if err != nil {
		zap.L().Error("failed to sum debts", zap.Error(err))
		return decimal.Zero, err
	}
	owedToB, err := s.debtRepo.SumOwed(ctx, b, a)
	if err != nil {
		zap.L().Error("failed to sum debts", zap.Error(err))
		return decimal.Zero, err
	}
	return owedToA.Sub(owedToB), nil
}

func (s *Service) Summary(ctx context.Context, userID int64) (*domain.Summary, error) {
	owedToMe, err := s.OwedTo(ctx, userID)
	if err != nil {
		return nil, err
	}
	iOwe, err := s.OwedBy(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &domain.Summary{
		OwedToMe:      owedToMe,
		IOwe:          iOwe,
		TotalOwedToMe: sum(owedToMe),
		TotalIOwe:     sum(iOwe),
	}, nil
}

func sum(totals []domain.CounterpartyTotal) decimal.Decimal {
	total := decimal.Zero
	for _, t := range totals {
		total = total.Add(t.Total)
	}
	return total
}
