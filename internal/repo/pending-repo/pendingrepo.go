package pendingrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/debtledger/internal/domain"
	"github.com/GlebRadaev/debtledger/internal/pg"
)

var ErrUnknownKind = errors.New("unknown pending kind")

var tables = map[domain.Kind]string{
	domain.KindRequest: "pending_requests",
	domain.KindPayment: "pending_payments",
}

const columns = "message_id, channel_id, creditor_id, debtor_id, amount, note, expires_at, reminded, created_at"

// Repository stores pending requests and payments. Both live in tables of
// the same shape, chosen by kind.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func table(kind domain.Kind) (string, error) {
	t, ok := tables[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return t, nil
}

func (r *Repository) Create(ctx context.Context, p *domain.PendingTransaction) (*domain.PendingTransaction, error) {
	t, err := table(p.Kind)
	if err != nil {
		return nil, err
	}
	query := `
        INSERT INTO ` + t + ` (message_id, channel_id, creditor_id, debtor_id, amount, note, expires_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + columns
	row := r.db.QueryRow(ctx, query, p.MessageID, p.ChannelID, p.CreditorID, p.DebtorID, p.Amount, p.Note, p.ExpiresAt)
	created, err := scanPending(p.Kind, row)
	if err != nil {
		zap.L().Error("failed to create pending transaction", zap.String("kind", string(p.Kind)), zap.Error(err))
		return nil, err
	}
	return created, nil
}

// Get returns nil without error when the row does not exist.
func (r *Repository) Get(ctx context.Context, kind domain.Kind, messageID int64) (*domain.PendingTransaction, error) {
	return r.get(ctx, kind, messageID, "")
}

// GetForUpdate locks the row until the surrounding transaction ends, which
// serialises confirm, deny and expiry on the same message.
func (r *Repository) GetForUpdate(ctx context.Context, kind domain.Kind, messageID int64) (*domain.PendingTransaction, error) {
	return r.get(ctx, kind, messageID, "FOR UPDATE")
}

func (r *Repository) get(ctx context.Context, kind domain.Kind, messageID int64, lock string) (*domain.PendingTransaction, error) {
	t, err := table(kind)
	if err != nil {
		return nil, err
	}
	query := `
        SELECT ` + columns + `
        FROM ` + t + `
        WHERE message_id = $1
        ` + lock
	p, err := scanPending(kind, r.db.QueryRow(ctx, query, messageID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get pending transaction", zap.String("kind", string(kind)), zap.Int64("message_id", messageID), zap.Error(err))
		return nil, err
	}
	return p, nil
}

// Delete reports whether this call removed the row.
func (r *Repository) Delete(ctx context.Context, kind domain.Kind, messageID int64) (bool, error) {
	t, err := table(kind)
	if err != nil {
		return false, err
	}
	query := `
        DELETE FROM ` + t + `
        WHERE message_id = $1
    `
	tag, err := r.db.Exec(ctx, query, messageID)
	if err != nil {
		zap.L().Error("failed to delete pending transaction", zap.String("kind", string(kind)), zap.Int64("message_id", messageID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ListToRemind returns unreminded rows expiring within horizon but not yet expired.
func (r *Repository) ListToRemind(ctx context.Context, kind domain.Kind, now time.Time, horizon time.Duration) ([]domain.PendingTransaction, error) {
	t, err := table(kind)
	if err != nil {
		return nil, err
	}
	query := `
        SELECT ` + columns + `
        FROM ` + t + `
        WHERE reminded = FALSE AND expires_at > $1 AND expires_at <= $2
        ORDER BY expires_at ASC
    `
	return r.list(ctx, kind, query, now, now.Add(horizon))
}

func (r *Repository) ListExpired(ctx context.Context, kind domain.Kind, now time.Time) ([]domain.PendingTransaction, error) {
	t, err := table(kind)
	if err != nil {
		return nil, err
	}
	query := `
        SELECT ` + columns + `
        FROM ` + t + `
        WHERE expires_at <= $1
        ORDER BY expires_at ASC
    `
	return r.list(ctx, kind, query, now)
}

func (r *Repository) list(ctx context.Context, kind domain.Kind, query string, args ...any) ([]domain.PendingTransaction, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list pending transactions", zap.String("kind", string(kind)), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var pending []domain.PendingTransaction
	for rows.Next() {
		p, err := scanPending(kind, rows)
		if err != nil {
			zap.L().Error("can't scan pending row", zap.String("kind", string(kind)), zap.Error(err))
			return nil, err
		}
		pending = append(pending, *p)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate pending rows", zap.String("kind", string(kind)), zap.Error(err))
		return nil, err
	}
	return pending, nil
}

// MarkReminded flips reminded false→true and reports whether this call did it.
// The flag is never reset.
func (r *Repository) MarkReminded(ctx context.Context, kind domain.Kind, messageID int64) (bool, error) {
	t, err := table(kind)
	if err != nil {
		return false, err
	}
	query := `
        UPDATE ` + t + `
        SET reminded = TRUE
        WHERE message_id = $1 AND reminded = FALSE
    `
	tag, err := r.db.Exec(ctx, query, messageID)
	if err != nil {
		zap.L().Error("failed to mark pending transaction reminded", zap.String("kind", string(kind)), zap.Int64("message_id", messageID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteExpired removes the row only if it is still present and expired.
// A nil result means a confirm or deny got there first.
func (r *Repository) DeleteExpired(ctx context.Context, kind domain.Kind, messageID int64, now time.Time) (*domain.PendingTransaction, error) {
	t, err := table(kind)
	if err != nil {
		return nil, err
	}
	query := `
        DELETE FROM ` + t + `
        WHERE message_id = $1 AND expires_at <= $2
        RETURNING ` + columns
	p, err := scanPending(kind, r.db.QueryRow(ctx, query, messageID, now))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to delete expired pending transaction", zap.String("kind", string(kind)), zap.Int64("message_id", messageID), zap.Error(err))
		return nil, err
	}
	return p, nil
}

func scanPending(kind domain.Kind, row pgx.Row) (*domain.PendingTransaction, error) {
	p := domain.PendingTransaction{Kind: kind}
	err := row.Scan(&p.MessageID, &p.ChannelID, &p.CreditorID, &p.DebtorID, &p.Amount, &p.Note, &p.ExpiresAt, &p.Reminded, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
