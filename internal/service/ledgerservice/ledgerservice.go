// Package ledgerservice owns the points economy: lazy account creation,
// the low-balance daily bonus, and every debit/credit. Balances change
// only through this service, always inside a row-locked transaction.
package ledgerservice

import (
	"context"
	"errors"
	"time"

	"github.com/vlrbet/vlrbet/internal/domain"
	"github.com/vlrbet/vlrbet/internal/pg"
	"go.uber.org/zap"
)

const (
	StartingBalance     int64 = 1000
	DailyBonusThreshold int64 = 100
	DailyBonusAmount    int64 = 20
	DailyBonusInterval        = 24 * time.Hour
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
)

type AccountRepo interface {
	GetForUpdate(ctx context.Context, userID int64) (*domain.Account, error)
	Create(ctx context.Context, userID int64, balance int64) (*domain.Account, error)
	UpdateBalance(ctx context.Context, userID int64, balance int64) error
	GrantBonus(ctx context.Context, userID int64, balance int64, at time.Time) error
	Upsert(ctx context.Context, userID int64, balance int64) error
	Leaderboard(ctx context.Context, limit int) ([]domain.Account, error)
	CountRicher(ctx context.Context, balance int64) (int, error)
}

type Service struct {
	accountRepo AccountRepo
	txManager   pg.TXManager
}

func New(accountRepo AccountRepo, txManager pg.TXManager) *Service {
	return &Service{
		accountRepo: accountRepo,
		txManager:   txManager,
	}
}

// GetBalance returns the user's balance, creating the account with the
// starting balance on first access. While the row is locked it also grants
// the daily bonus when the balance is below the threshold and the cooldown
// has elapsed, so concurrent calls cannot double-grant.
func (s *Service) GetBalance(ctx context.Context, userID int64) (int64, error) {
	var balance int64
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if account == nil {
			created, err := s.accountRepo.Create(ctx, userID, StartingBalance)
			if err != nil {
				return err
			}
			balance = created.Balance
			return nil
		}

		balance = account.Balance
		now := time.Now()
		if account.Balance < DailyBonusThreshold && now.Sub(account.LastBonusAt) >= DailyBonusInterval {
			balance += DailyBonusAmount
			if err := s.accountRepo.GrantBonus(ctx, userID, balance, now); err != nil {
				return err
			}
			zap.L().Info("daily bonus granted", zap.Int64("userID", userID), zap.Int64("balance", balance))
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

// SetBalance creates or overwrites the balance. The bonus timestamp of an
// existing account is left alone.
func (s *Service) SetBalance(ctx context.Context, userID int64, balance int64) error {
	if err := s.accountRepo.Upsert(ctx, userID, balance); err != nil {
		zap.L().Error("failed to set balance", zap.Error(err))
		return err
	}
	return nil
}

// Debit withdraws amount from the user's account. The balance is locked
// and re-read inside the transaction, so a stale snapshot taken earlier in
// a wager flow can never overdraw the account.
func (s *Service) Debit(ctx context.Context, userID int64, amount int64) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if account == nil {
			account, err = s.accountRepo.Create(ctx, userID, StartingBalance)
			if err != nil {
				return err
			}
		}
		if account.Balance < amount {
			return ErrInsufficientFunds
		}
		return s.accountRepo.UpdateBalance(ctx, userID, account.Balance-amount)
	})
}

// Credit deposits amount into the user's account, creating it if needed.
func (s *Service) Credit(ctx context.Context, userID int64, amount int64) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if account == nil {
			account, err = s.accountRepo.Create(ctx, userID, StartingBalance)
			if err != nil {
				return err
			}
		}
		return s.accountRepo.UpdateBalance(ctx, userID, account.Balance+amount)
	})
}

func (s *Service) Leaderboard(ctx context.Context, limit int) ([]domain.Account, error) {
	accounts, err := s.accountRepo.Leaderboard(ctx, limit)
	if err != nil {
		zap.L().Error("failed to get leaderboard", zap.Error(err))
		return nil, err
	}
	return accounts, nil
}

// Rank returns the 1-indexed rank and balance for the user. Rank is
// 1 + count of strictly greater balances, so tied users report the same
// rank. The account is created on the way when it does not exist yet.
func (s *Service) Rank(ctx context.Context, userID int64) (int, int64, error) {
	balance, err := s.GetBalance(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	richer, err := s.accountRepo.CountRicher(ctx, balance)
	if err != nil {
		zap.L().Error("failed to get rank", zap.Error(err))
		return 0, 0, err
	}
	return richer + 1, balance, nil
}
