package betservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/vlrbet/vlrbet/internal/domain"
	"github.com/vlrbet/vlrbet/internal/feed"
	"github.com/vlrbet/vlrbet/internal/pg"
)

// PayoutMultiplier is applied to the stake of every winning bet.
const PayoutMultiplier int64 = 2

type BetRepo interface {
	Insert(ctx context.Context, bet *domain.Bet) error
	FindUnresolved(ctx context.Context) ([]domain.Bet, error)
	FindUnresolvedByMatch(ctx context.Context, matchPath string) ([]domain.Bet, error)
	MarkStartNotified(ctx context.Context, matchPath string) error
	MarkResolved(ctx context.Context, matchPath string) error
}

type Ledger interface {
	Credit(ctx context.Context, userID int64, amount int64) error
}

type Service struct {
	betRepo   BetRepo
	ledger    Ledger
	txManager pg.TXManager
}

func New(betRepo BetRepo, ledger Ledger, txManager pg.TXManager) *Service {
	return &Service{
		betRepo:   betRepo,
		ledger:    ledger,
		txManager: txManager,
	}
}

// Place stores a committed bet. The match path is normalized so that bets
// placed from full feed URLs and bets placed from bare paths land in the
// same resolution group.
func (s *Service) Place(ctx context.Context, bet *domain.Bet) error {
	bet.MatchPath = feed.NormalizePath(bet.MatchPath)
	if err := s.betRepo.Insert(ctx, bet); err != nil {
		zap.L().Error("failed to place bet", zap.Error(err))
		return err
	}
	zap.L().Info("bet placed",
		zap.Int64("userID", bet.UserID),
		zap.String("matchPath", bet.MatchPath),
		zap.String("team", bet.TeamChosen),
		zap.Int64("amount", bet.Amount))
	return nil
}

func (s *Service) Unresolved(ctx context.Context) ([]domain.Bet, error) {
	bets, err := s.betRepo.FindUnresolved(ctx)
	if err != nil {
		zap.L().Error("failed to load unresolved bets", zap.Error(err))
		return nil, err
	}
	return bets, nil
}

func (s *Service) MarkStartNotified(ctx context.Context, matchPath string) error {
	return s.betRepo.MarkStartNotified(ctx, feed.NormalizePath(matchPath))
}

// Resolve settles every open bet on the match in a single transaction.
// Bets on the winning team are credited twice their stake, the rest are
// forfeited. The whole group is locked first and flipped to resolved last,
// so a concurrent Resolve for the same match sees an empty group and does
// nothing. Returned slices are never nil.
func (s *Service) Resolve(ctx context.Context, matchPath string, winner string) ([]domain.Bet, []domain.Bet, error) {
	matchPath = feed.NormalizePath(matchPath)
	winners := make([]domain.Bet, 0)
	losers := make([]domain.Bet, 0)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		bets, err := s.betRepo.FindUnresolvedByMatch(ctx, matchPath)
		if err != nil {
			return err
		}
		if len(bets) == 0 {
			return nil
		}
		for _, bet := range bets {
			if bet.TeamChosen == winner {
				if err := s.ledger.Credit(ctx, bet.UserID, bet.Amount*PayoutMultiplier); err != nil {
					return err
				}
				winners = append(winners, bet)
			} else {
				losers = append(losers, bet)
			}
		}
		return s.betRepo.MarkResolved(ctx, matchPath)
	})
	if err != nil {
		zap.L().Error("failed to resolve bets", zap.String("matchPath", matchPath), zap.Error(err))
		return nil, nil, err
	}
	if len(winners) > 0 || len(losers) > 0 {
		zap.L().Info("match resolved",
			zap.String("matchPath", matchPath),
			zap.String("winner", winner),
			zap.Int("winners", len(winners)),
			zap.Int("losers", len(losers)))
	}
	return winners, losers, nil
}
