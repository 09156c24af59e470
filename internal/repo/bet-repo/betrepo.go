package betrepo

import (
	"context"

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

const betColumns = `id, match_path, match_event, team1, team2, user_id, team_chosen, amount, channel_id, start_notified, resolved, placed_at`

func (r *Repository) Insert(ctx context.Context, bet *domain.Bet) error {
	query := `
        INSERT INTO bets (match_path, match_event, team1, team2, user_id, team_chosen, amount, channel_id, start_notified, resolved)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE, FALSE)
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			bet.MatchPath, bet.MatchEvent, bet.Team1, bet.Team2,
			bet.UserID, bet.TeamChosen, bet.Amount, bet.ChannelID,
		)
		if err != nil {
			zap.L().Error("failed to insert bet", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) FindUnresolved(ctx context.Context) ([]domain.Bet, error) {
	query := `
        SELECT ` + betColumns + `
        FROM bets
        WHERE NOT resolved
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to get unresolved bets", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bets []domain.Bet
	for rows.Next() {
		var bet domain.Bet
		err := rows.Scan(
			&bet.ID, &bet.MatchPath, &bet.MatchEvent, &bet.Team1, &bet.Team2,
			&bet.UserID, &bet.TeamChosen, &bet.Amount, &bet.ChannelID,
			&bet.StartNotified, &bet.Resolved, &bet.PlacedAt,
		)
		if err != nil {
			zap.L().Error("failed to scan bet row", zap.Error(err))
			return nil, err
		}
		bets = append(bets, bet)
	}
	return bets, nil
}

// FindUnresolvedByMatch locks the matched rows; Resolve runs it inside a
// transaction so the group settles as a unit.
func (r *Repository) FindUnresolvedByMatch(ctx context.Context, matchPath string) ([]domain.Bet, error) {
	query := `
        SELECT ` + betColumns + `
        FROM bets
        WHERE match_path = $1 AND NOT resolved
        ORDER BY id ASC
        FOR UPDATE
    `
	rows, err := r.db.Query(ctx, query, matchPath)
	if err != nil {
		zap.L().Error("failed to get bets for match", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bets []domain.Bet
	for rows.Next() {
		var bet domain.Bet
		err := rows.Scan(
			&bet.ID, &bet.MatchPath, &bet.MatchEvent, &bet.Team1, &bet.Team2,
			&bet.UserID, &bet.TeamChosen, &bet.Amount, &bet.ChannelID,
			&bet.StartNotified, &bet.Resolved, &bet.PlacedAt,
		)
		if err != nil {
			zap.L().Error("failed to scan bet row", zap.Error(err))
			return nil, err
		}
		bets = append(bets, bet)
	}
	return bets, nil
}

func (r *Repository) MarkStartNotified(ctx context.Context, matchPath string) error {
	query := `
        UPDATE bets
        SET start_notified = TRUE
        WHERE match_path = $1 AND NOT resolved AND NOT start_notified
    `
	_, err := r.db.Exec(ctx, query, matchPath)
	if err != nil {
		zap.L().Error("failed to mark bets start-notified", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) MarkResolved(ctx context.Context, matchPath string) error {
	query := `
        UPDATE bets
        SET resolved = TRUE
        WHERE match_path = $1 AND NOT resolved
    `
	_, err := r.db.Exec(ctx, query, matchPath)
	if err != nil {
		zap.L().Error("failed to mark bets resolved", zap.Error(err))
		return err
	}
	return nil
}
