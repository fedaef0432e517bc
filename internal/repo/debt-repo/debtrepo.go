package debtrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/debtledger/internal/domain"
	"github.com/GlebRadaev/debtledger/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, debt *domain.Debt) (*domain.Debt, error) {
	query := `
        INSERT INTO debts (creditor_id, debtor_id, amount, note)
        VALUES ($1, $2, $3, $4)
        RETURNING id, creditor_id, debtor_id, amount, note, created_at
    `
	row := r.db.QueryRow(ctx, query, debt.CreditorID, debt.DebtorID, debt.Amount, debt.Note)
	created, err := scanDebt(row)
	if err != nil {
		zap.L().Error("failed to create debt", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// OwedTo returns who owes the creditor, summed per debtor, largest first.
func (r *Repository) OwedTo(ctx context.Context, creditorID int64) ([]domain.CounterpartyTotal, error) {
	query := `
        SELECT debtor_id, SUM(amount) AS total
        FROM debts
        WHERE creditor_id = $1
        GROUP BY debtor_id
        ORDER BY total DESC, debtor_id ASC
    `
	return r.totals(ctx, query, creditorID)
}

// OwedBy returns whom the debtor owes, summed per creditor, largest first.
func (r *Repository) OwedBy(ctx context.Context, debtorID int64) ([]domain.CounterpartyTotal, error) {
	query := `
        SELECT creditor_id, SUM(amount) AS total
        FROM debts
        WHERE debtor_id = $1
        GROUP BY creditor_id
        ORDER BY total DESC, creditor_id ASC
    `
	return r.totals(ctx, query, debtorID)
}

func (r *Repository) totals(ctx context.Context, query string, userID int64) ([]domain.CounterpartyTotal, error) {
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get debt totals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var totals []domain.CounterpartyTotal
	for rows.Next() {
		var total domain.CounterpartyTotal
		if err := rows.Scan(&total.UserID, &total.Total); err != nil {
			zap.L().Error("can't scan debt total row", zap.Error(err))
			return nil, err
		}
		totals = append(totals, total)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate debt totals", zap.Error(err))
		return nil, err
	}
	return totals, nil
}

func (r *Repository) SumOwed(ctx context.Context, creditorID, debtorID int64) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM debts
        WHERE creditor_id = $1 AND debtor_id = $2
    `
	var sum decimal.Decimal
	if err := r.db.QueryRow(ctx, query, creditorID, debtorID).Scan(&sum); err != nil {
		zap.L().Error("can't sum debts", zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}

// LockForPayment must run inside a transaction: the rows stay locked until
// it ends, so concurrent payments on the same pair queue up here.
func (r *Repository) LockForPayment(ctx context.Context, creditorID, debtorID int64) ([]domain.Debt, error) {
	query := `
        SELECT id, creditor_id, debtor_id, amount, note, created_at
        FROM debts
        WHERE creditor_id = $1 AND debtor_id = $2
        ORDER BY created_at ASC, id ASC
        FOR UPDATE
    `
	rows, err := r.db.Query(ctx, query, creditorID, debtorID)
	if err != nil {
		zap.L().Error("can't lock debts for payment", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var debts []domain.Debt
	for rows.Next() {
		debt, err := scanDebt(rows)
		if err != nil {
			zap.L().Error("can't scan debt row", zap.Error(err))
			return nil, err
		}
		debts = append(debts, *debt)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate locked debts", zap.Error(err))
		return nil, err
	}
	return debts, nil
}

func (r *Repository) UpdateAmount(ctx context.Context, id int64, amount decimal.Decimal) error {
	query := `
        UPDATE debts
        SET amount = $1
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, amount, id); err != nil {
		zap.L().Error("failed to update debt amount", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `
        DELETE FROM debts
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		zap.L().Error("failed to delete debt", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func scanDebt(row pgx.Row) (*domain.Debt, error) {
	var debt domain.Debt
	err := row.Scan(&debt.ID, &debt.CreditorID, &debt.DebtorID, &debt.Amount, &debt.Note, &debt.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &debt, nil
}
