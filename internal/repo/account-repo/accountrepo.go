package accountrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/vlrbet/vlrbet/internal/domain"
	"github.com/vlrbet/vlrbet/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// GetForUpdate locks the account row for the rest of the enclosing
// transaction. Returns nil when the account does not exist.
func (r *Repository) GetForUpdate(ctx context.Context, userID int64) (*domain.Account, error) {
	query := `
        SELECT id, user_id, balance, last_bonus_at
        FROM accounts
        WHERE user_id = $1
        FOR UPDATE
    `
	row := r.db.QueryRow(ctx, query, userID)
	var account domain.Account
	err := row.Scan(&account.ID, &account.UserID, &account.Balance, &account.LastBonusAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

func (r *Repository) Create(ctx context.Context, userID int64, balance int64) (*domain.Account, error) {
	query := `
        INSERT INTO accounts (user_id, balance)
        VALUES ($1, $2)
        RETURNING id, user_id, balance, last_bonus_at
    `
	row := r.db.QueryRow(ctx, query, userID, balance)
	var account domain.Account
	err := row.Scan(&account.ID, &account.UserID, &account.Balance, &account.LastBonusAt)
	if err != nil {
		zap.L().Error("failed to create account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

func (r *Repository) UpdateBalance(ctx context.Context, userID int64, balance int64) error {
	query := `
        UPDATE accounts
        SET balance = $1
        WHERE user_id = $2
    `
	_, err := r.db.Exec(ctx, query, balance, userID)
	if err != nil {
		zap.L().Error("failed to update balance", zap.Error(err))
		return err
	}
	return nil
}

// GrantBonus updates the balance and the bonus timestamp in one statement
// so the cooldown can never advance without the matching credit.
func (r *Repository) GrantBonus(ctx context.Context, userID int64, balance int64, at time.Time) error {
	query := `
        UPDATE accounts
        SET balance = $1, last_bonus_at = $2
        WHERE user_id = $3
    `
	_, err := r.db.Exec(ctx, query, balance, at, userID)
	if err != nil {
		zap.L().Error("failed to grant bonus", zap.Error(err))
		return err
	}
	return nil
}

// Upsert creates or overwrites the balance without touching last_bonus_at
// on existing rows.
func (r *Repository) Upsert(ctx context.Context, userID int64, balance int64) error {
	query := `
        INSERT INTO accounts (user_id, balance)
        VALUES ($1, $2)
        ON CONFLICT (user_id) DO UPDATE SET balance = excluded.balance
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, userID, balance)
		if err != nil {
			zap.L().Error("failed to upsert account", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) Leaderboard(ctx context.Context, limit int) ([]domain.Account, error) {
	query := `
        SELECT id, user_id, balance, last_bonus_at
        FROM accounts
        ORDER BY balance DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("failed to get leaderboard", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var account domain.Account
		err := rows.Scan(&account.ID, &account.UserID, &account.Balance, &account.LastBonusAt)
		if err != nil {
			zap.L().Error("failed to scan account row", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

// CountRicher returns how many accounts hold strictly more than balance.
func (r *Repository) CountRicher(ctx context.Context, balance int64) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM accounts
        WHERE balance > $1
    `
	row := r.db.QueryRow(ctx, query, balance)
	var count int
	if err := row.Scan(&count); err != nil {
		zap.L().Error("failed to count richer accounts", zap.Error(err))
		return 0, err
	}
	return count, nil
}
