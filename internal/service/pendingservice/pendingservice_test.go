package pendingservice

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/debtledger/internal/domain"
	"github.com/GlebRadaev/debtledger/internal/notify"
	"github.com/GlebRadaev/debtledger/internal/pg"
)

var now = time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

type mocks struct {
	repo     *MockPendingRepo
	ledger   *MockLedger
	tx       *pg.MockTXManager
	notifier *notify.MockNotifier
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		repo:     NewMockPendingRepo(ctrl),
		ledger:   NewMockLedger(ctrl),
		tx:       pg.NewMockTXManager(ctrl),
		notifier: notify.NewMockNotifier(ctrl),
	}
	service := New(m.repo, m.ledger, m.tx, m.notifier, 24*time.Hour)
	service.now = func() time.Time { return now }
	return service, m
}

func (m *mocks) runInTx() {
	m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

func (m *mocks) anonymous() {
	m.notifier.EXPECT().DisplayName(gomock.Any(), gomock.Any()).Return("", false).AnyTimes()
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func strPtr(s string) *string {
	return &s
}

func pendingRequest() *domain.PendingTransaction {
	return &domain.PendingTransaction{
		Kind:       domain.KindRequest,
		MessageID:  55,
		ChannelID:  7,
		CreditorID: 1,
		DebtorID:   2,
		Amount:     dec("12.50"),
		Note:       strPtr("pizza"),
		ExpiresAt:  now.Add(24 * time.Hour),
	}
}

func pendingPayment() *domain.PendingTransaction {
	p := pendingRequest()
	p.Kind = domain.KindPayment
	p.Note = nil
	return p
}

func TestCreateRequest(t *testing.T) {
	tests := []struct {
		name          string
		actorID       int64
		targetID      int64
		amount        string
		note          *string
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name:     "Prompt posted then row stored",
			actorID:  1,
			targetID: 2,
			amount:   "12.499",
			note:     strPtr("  pizza "),
			prepareMock: func(m *mocks) {
				m.anonymous()
				gomock.InOrder(
					m.notifier.EXPECT().Prompt(gomock.Any(), int64(7), gomock.Any()).Return(int64(55), nil),
					m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.PendingTransaction) (*domain.PendingTransaction, error) {
						assert.Equal(t, domain.KindRequest, p.Kind)
						assert.Equal(t, int64(55), p.MessageID)
						assert.Equal(t, int64(1), p.CreditorID)
						assert.Equal(t, int64(2), p.DebtorID)
						assert.True(t, p.Amount.Equal(dec("12.50")), "amount %s", p.Amount)
						assert.Equal(t, "pizza", *p.Note)
						assert.Equal(t, now.Add(24*time.Hour), p.ExpiresAt)
						return p, nil
					}),
				)
			},
		},
		{
			name:          "Self request touches nothing",
			actorID:       1,
			targetID:      1,
			amount:        "5",
			prepareMock:   func(m *mocks) {},
			expectedError: domain.ErrSelfDealing,
		},
		{
			name:          "Negative amount touches nothing",
			actorID:       1,
			targetID:      2,
			amount:        "-5",
			prepareMock:   func(m *mocks) {},
			expectedError: domain.ErrNonPositiveAmount,
		},
		{
			name:          "Note too long",
			actorID:       1,
			targetID:      2,
			amount:        "5",
			note:          strPtr(strings.Repeat("x", domain.MaxNoteLength+1)),
			prepareMock:   func(m *mocks) {},
			expectedError: domain.ErrNoteTooLong,
		},
		{
			name:     "Prompt failure aborts before storing",
			actorID:  1,
			targetID: 2,
			amount:   "5",
			prepareMock: func(m *mocks) {
				m.anonymous()
				m.notifier.EXPECT().Prompt(gomock.Any(), int64(7), gomock.Any()).Return(int64(0), errors.New("gateway down"))
			},
			expectedError: ErrPromptFailed,
		},
		{
			name:     "Store failure marks the prompt as failed",
			actorID:  1,
			targetID: 2,
			amount:   "5",
			prepareMock: func(m *mocks) {
				m.anonymous()
				m.notifier.EXPECT().Prompt(gomock.Any(), int64(7), gomock.Any()).Return(int64(55), nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
				m.notifier.EXPECT().EditPrompt(gomock.Any(), int64(7), int64(55), notify.FailedText(domain.KindRequest)).Return(nil)
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			p, err := service.CreateRequest(context.Background(), tt.actorID, tt.targetID, 7, dec(tt.amount), tt.note)
			if tt.expectedError != nil {
				assert.Error(t, err)
				if !errors.Is(err, tt.expectedError) {
					assert.Equal(t, tt.expectedError.Error(), err.Error())
				}
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(55), p.MessageID)
		})
	}
}

func TestCreatePayment_AssignsRoles(t *testing.T) {
	service, m := NewMock(t)
	m.anonymous()

	m.notifier.EXPECT().Prompt(gomock.Any(), int64(7), gomock.Any()).Return(int64(56), nil)
	m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.PendingTransaction) (*domain.PendingTransaction, error) {
		return p, nil
	})

	p, err := service.CreatePayment(context.Background(), 2, 1, 7, dec("10"), strPtr(" "))
	require.NoError(t, err)
	assert.Equal(t, domain.KindPayment, p.Kind)
	assert.Equal(t, int64(1), p.CreditorID)
	assert.Equal(t, int64(2), p.DebtorID)
	assert.Nil(t, p.Note)
	assert.Equal(t, int64(1), p.ConfirmerID())
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name            string
		kind            domain.Kind
		actorID         int64
		prepareMock     func(m *mocks)
		expectedOutcome domain.Outcome
		expectedError   bool
	}{
		{
			name:    "Request confirmed by debtor records debt",
			kind:    domain.KindRequest,
			actorID: 2,
			prepareMock: func(m *mocks) {
				m.anonymous()
				m.runInTx()
				p := pendingRequest()
				gomock.InOrder(
					m.repo.EXPECT().GetForUpdate(gomock.Any(), domain.KindRequest, int64(55)).Return(p, nil),
					m.ledger.EXPECT().AddDebt(gomock.Any(), int64(1), int64(2), gomock.Any(), p.Note).Return(&domain.Debt{ID: 1}, nil),
					m.repo.EXPECT().Delete(gomock.Any(), domain.KindRequest, int64(55)).Return(true, nil),
					m.notifier.EXPECT().EditPrompt(gomock.Any(), int64(7), int64(55), notify.ConfirmedText(p, notify.Names{Creditor: "user 1", Debtor: "user 2"}, nil)).Return(nil),
				)
			},
			expectedOutcome: domain.OutcomeConfirmed,
		},
		{
			name:    "Request confirmed by its creditor is unauthorized",
			kind:    domain.KindRequest,
			actorID: 1,
			prepareMock: func(m *mocks) {
				m.runInTx()
				m.repo.EXPECT().GetForUpdate(gomock.Any(), domain.KindRequest, int64(55)).Return(pendingRequest(), nil)
			},
			expectedOutcome: domain.OutcomeUnauthorized,
		},
		{
			name:    "Payment confirmed by a bystander is unauthorized",
			kind:    domain.KindPayment,
			actorID: 3,
			prepareMock: func(m *mocks) {
				m.runInTx()
				m.repo.EXPECT().GetForUpdate(gomock.Any(), domain.KindPayment, int64(55)).Return(pendingPayment(), nil)
			},
			expectedOutcome: domain.OutcomeUnauthorized,
		},
		{
			name:    "Row already removed by expiry sweep",
			kind:    domain.KindRequest,
			actorID: 2,
			prepareMock: func(m *mocks) {
				m.runInTx()
				m.repo.EXPECT().GetForUpdate(gomock.Any(), domain.KindRequest, int64(55)).Return(nil, nil)
			},
			expectedOutcome: domain.OutcomeAlreadyResolved,
		},
		{
			name:    "Ledger failure rolls back and keeps the row",
			kind:    domain.KindRequest,
			actorID: 2,
			prepareMock: func(m *mocks) {
				m.runInTx()
				m.repo.EXPECT().GetForUpdate(gomock.Any(), domain.KindRequest, int64(55)).Return(pendingRequest(), nil)
				m.ledger.EXPECT().AddDebt(gomock.Any(), int64(1), int64(2), gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: true,
		},
		{
			name:    "Row vanishing under lock is an error",
			kind:    domain.KindRequest,
			actorID: 2,
			prepareMock: func(m *mocks) {
				m.runInTx()
				m.repo.EXPECT().GetForUpdate(gomock.Any(), domain.KindRequest, int64(55)).Return(pendingRequest(), nil)
				m.ledger.EXPECT().AddDebt(gomock.Any(), int64(1), int64(2), gomock.Any(), gomock.Any()).Return(&domain.Debt{ID: 1}, nil)
				m.repo.EXPECT().Delete(gomock.Any(), domain.KindRequest, int64(55)).Return(false, nil)
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			res, err := service.Confirm(context.Background(), tt.kind, 55, tt.actorID)
			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedOutcome, res.Outcome)
		})
	}
}

func TestConfirm_Payment(t *testing.T) {
	service, m := NewMock(t)
	m.anonymous()
	m.runInTx()

	p := pendingPayment()
	payment := &domain.PaymentResult{Requested: dec("12.50"), Applied: dec("10"), Overpayment: dec("2.50")}

	m.repo.EXPECT().GetForUpdate(gomock.Any(), domain.KindPayment, int64(55)).Return(p, nil)
	m.ledger.EXPECT().ApplyPayment(gomock.Any(), int64(1), int64(2), gomock.Any()).Return(payment, nil)
	m.repo.EXPECT().Delete(gomock.Any(), domain.KindPayment, int64(55)).Return(true, nil)
	m.notifier.EXPECT().EditPrompt(gomock.Any(), int64(7), int64(55), gomock.Any()).DoAndReturn(func(_ context.Context, _, _ int64, text string) error {
		assert.Contains(t, text, "$2.50 was more than owed")
		return notify.ErrPromptNotFound
	})

	res, err := service.Confirm(context.Background(), domain.KindPayment, 55, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeConfirmed, res.Outcome)
	assert.Equal(t, payment, res.Payment)
}

func TestConfirm_Idempotent(t *testing.T) {
	service, m := NewMock(t)
	m.anonymous()
	m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).Times(2)

	gomock.InOrder(
		m.repo.EXPECT().GetForUpdate(gomock.Any(), domain.KindRequest, int64(55)).Return(pendingRequest(), nil),
		m.repo.EXPECT().GetForUpdate(gomock.Any(), domain.KindRequest, int64(55)).Return(nil, nil),
	)
	m.ledger.EXPECT().AddDebt(gomock.Any(), int64(1), int64(2), gomock.Any(), gomock.Any()).Return(&domain.Debt{ID: 1}, nil).Times(1)
	m.repo.EXPECT().Delete(gomock.Any(), domain.KindRequest, int64(55)).Return(true, nil).Times(1)
	m.notifier.EXPECT().EditPrompt(gomock.Any(), int64(7), int64(55), gomock.Any()).Return(nil).Times(1)

	first, err := service.Confirm(context.Background(), domain.KindRequest, 55, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeConfirmed, first.Outcome)

	second, err := service.Confirm(context.Background(), domain.KindRequest, 55, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAlreadyResolved, second.Outcome)
}

func TestDeny(t *testing.T) {
	service, m := NewMock(t)
	m.notifier.EXPECT().DisplayName(gomock.Any(), int64(1)).Return("Alice", true)
	m.notifier.EXPECT().DisplayName(gomock.Any(), int64(2)).Return("Bob", true)
	m.runInTx()

	m.repo.EXPECT().GetForUpdate(gomock.Any(), domain.KindRequest, int64(55)).Return(pendingRequest(), nil)
	m.repo.EXPECT().Delete(gomock.Any(), domain.KindRequest, int64(55)).Return(true, nil)
	m.notifier.EXPECT().EditPrompt(gomock.Any(), int64(7), int64(55), "Denied: Bob declined the request for $12.50 from Alice.").Return(errors.New("timeout"))

	res, err := service.Deny(context.Background(), domain.KindRequest, 55, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeDenied, res.Outcome)
	assert.Nil(t, res.Payment)
}

func TestResolve_UnknownKind(t *testing.T) {
	service, _ := NewMock(t)

	res, err := service.Confirm(context.Background(), domain.Kind("gift"), 55, 2)
	assert.ErrorIs(t, err, domain.ErrUnknownKind)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Nil(t, res)
}

func TestGet(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name: "Found",
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().Get(gomock.Any(), domain.KindRequest, int64(55)).Return(pendingRequest(), nil)
			},
		},
		{
			name: "Missing",
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().Get(gomock.Any(), domain.KindRequest, int64(55)).Return(nil, nil)
			},
			expectedError: ErrPendingNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			p, err := service.Get(context.Background(), domain.KindRequest, 55)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(55), p.MessageID)
		})
	}
}
