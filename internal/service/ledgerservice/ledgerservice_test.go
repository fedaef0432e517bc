package ledgerservice

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/debtledger/internal/domain"
	"github.com/GlebRadaev/debtledger/internal/pg"
)

type decimalMatcher struct {
	value decimal.Decimal
}

func eqDec(s string) gomock.Matcher {
	return decimalMatcher{dec(s)}
}

func (m decimalMatcher) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.value)
}

func (m decimalMatcher) String() string {
	return fmt.Sprintf("is decimal %s", m.value)
}

func NewMock(t *testing.T) (*Service, *MockDebtRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	debtRepo := NewMockDebtRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	return New(debtRepo, txManager), debtRepo, txManager
}

func runInTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

func TestAddDebt(t *testing.T) {
	note := "pizza"

	tests := []struct {
		name          string
		creditorID    int64
		debtorID      int64
		amount        string
		prepareMock   func(repo *MockDebtRepo)
		expectedError error
	}{
		{
			name:       "Records rounded amount",
			creditorID: 1,
			debtorID:   2,
			amount:     "12.345",
			prepareMock: func(repo *MockDebtRepo) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, d *domain.Debt) (*domain.Debt, error) {
					assert.True(t, d.Amount.Equal(dec("12.35")))
					assert.Equal(t, &note, d.Note)
					d.ID = 1
					return d, nil
				})
			},
		},
		{
			name:          "Self debt rejected",
			creditorID:    1,
			debtorID:      1,
			amount:        "5",
			prepareMock:   func(repo *MockDebtRepo) {},
			expectedError: domain.ErrSelfDealing,
		},
		{
			name:          "Zero after rounding rejected",
			creditorID:    1,
			debtorID:      2,
			amount:        "0.004",
			prepareMock:   func(repo *MockDebtRepo) {},
			expectedError: domain.ErrNonPositiveAmount,
		},
		{
			name:          "Amount above column precision rejected",
			creditorID:    1,
			debtorID:      2,
			amount:        "10000000000",
			prepareMock:   func(repo *MockDebtRepo) {},
			expectedError: domain.ErrAmountTooLarge,
		},
		{
			name:       "Store error",
			creditorID: 1,
			debtorID:   2,
			amount:     "5",
			prepareMock: func(repo *MockDebtRepo) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, _ := NewMock(t)
			tt.prepareMock(repo)

			debt, err := service.AddDebt(context.Background(), tt.creditorID, tt.debtorID, dec(tt.amount), &note)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, debt)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), debt.ID)
		})
	}
}

func TestApplyPayment(t *testing.T) {
	tests := []struct {
		name          string
		amount        string
		prepareMock   func(repo *MockDebtRepo, tx *pg.MockTXManager)
		applied       string
		overpayment   string
		noDebt        bool
		expectedError error
	}{
		{
			name:   "Oldest first with partial reduction",
			amount: "12",
			prepareMock: func(repo *MockDebtRepo, tx *pg.MockTXManager) {
				runInTx(tx)
				gomock.InOrder(
					repo.EXPECT().LockForPayment(gomock.Any(), int64(1), int64(2)).Return(debtsOf("10", "5"), nil),
					repo.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil),
					repo.EXPECT().UpdateAmount(gomock.Any(), int64(2), eqDec("3")).Return(nil),
				)
			},
			applied:     "12",
			overpayment: "0",
		},
		{
			name:   "Overpayment reported",
			amount: "15",
			prepareMock: func(repo *MockDebtRepo, tx *pg.MockTXManager) {
				runInTx(tx)
				repo.EXPECT().LockForPayment(gomock.Any(), int64(1), int64(2)).Return(debtsOf("10"), nil)
				repo.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
			},
			applied:     "10",
			overpayment: "5",
		},
		{
			name:   "No debt exists",
			amount: "10",
			prepareMock: func(repo *MockDebtRepo, tx *pg.MockTXManager) {
				runInTx(tx)
				repo.EXPECT().LockForPayment(gomock.Any(), int64(1), int64(2)).Return(nil, nil)
			},
			applied:     "0",
			overpayment: "10",
			noDebt:      true,
		},
		{
			name:   "Failure mid-allocation surfaces and rolls back",
			amount: "12",
			prepareMock: func(repo *MockDebtRepo, tx *pg.MockTXManager) {
				runInTx(tx)
				repo.EXPECT().LockForPayment(gomock.Any(), int64(1), int64(2)).Return(debtsOf("10", "5"), nil)
				repo.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
				repo.EXPECT().UpdateAmount(gomock.Any(), int64(2), gomock.Any()).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
		{
			name:          "Non-positive payment never opens a transaction",
			amount:        "-1",
			prepareMock:   func(repo *MockDebtRepo, tx *pg.MockTXManager) {},
			expectedError: domain.ErrNonPositiveAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, tx := NewMock(t)
			tt.prepareMock(repo, tx)

			result, err := service.ApplyPayment(context.Background(), 1, 2, dec(tt.amount))
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.True(t, dec(tt.amount).Equal(result.Requested))
			assert.True(t, dec(tt.applied).Equal(result.Applied), "applied %s", result.Applied)
			assert.True(t, dec(tt.overpayment).Equal(result.Overpayment), "overpayment %s", result.Overpayment)
			assert.Equal(t, tt.noDebt, result.NoDebt())
		})
	}
}

func TestNetBalance(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(repo *MockDebtRepo)
		expected      string
		expectedError bool
	}{
		{
			name: "Positive when b owes a",
			prepareMock: func(repo *MockDebtRepo) {
				repo.EXPECT().SumOwed(gomock.Any(), int64(1), int64(2)).Return(dec("30"), nil)
				repo.EXPECT().SumOwed(gomock.Any(), int64(2), int64(1)).Return(dec("12.50"), nil)
			},
			expected: "17.50",
		},
		{
			name: "Negative when a owes b",
			prepareMock: func(repo *MockDebtRepo) {
				repo.EXPECT().SumOwed(gomock.Any(), int64(1), int64(2)).Return(decimal.Zero, nil)
				repo.EXPECT().SumOwed(gomock.Any(), int64(2), int64(1)).Return(dec("8"), nil)
			},
			expected: "-8",
		},
		{
			name: "Store error",
			prepareMock: func(repo *MockDebtRepo) {
				repo.EXPECT().SumOwed(gomock.Any(), int64(1), int64(2)).Return(decimal.Zero, errors.New("db error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, _ := NewMock(t)
			tt.prepareMock(repo)

			net, err := service.NetBalance(context.Background(), 1, 2)
			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, dec(tt.expected).Equal(net), "net %s", net)
		})
	}
}

func TestSummary(t *testing.T) {
	service, repo, _ := NewMock(t)

	repo.EXPECT().OwedTo(gomock.Any(), int64(1)).Return([]domain.CounterpartyTotal{
		{UserID: 3, Total: dec("20")},
		{UserID: 2, Total: dec("5.25")},
	}, nil)
	repo.EXPECT().OwedBy(gomock.Any(), int64(1)).Return([]domain.CounterpartyTotal{
		{UserID: 4, Total: dec("7")},
	}, nil)

	summary, err := service.Summary(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, summary.OwedToMe, 2)
	assert.Len(t, summary.IOwe, 1)
	assert.True(t, dec("25.25").Equal(summary.TotalOwedToMe))
	assert.True(t, dec("7").Equal(summary.TotalIOwe))
	assert.True(t, dec("18.25").Equal(summary.Net()))
}

func TestSummary_Error(t *testing.T) {
	service, repo, _ := NewMock(t)

	repo.EXPECT().OwedTo(gomock.Any(), int64(1)).Return(nil, nil)
	repo.EXPECT().OwedBy(gomock.Any(), int64(1)).Return(nil, errors.New("db error"))

	summary, err := service.Summary(context.Background(), 1)
	assert.Error(t, err)
	assert.Nil(t, summary)
}
