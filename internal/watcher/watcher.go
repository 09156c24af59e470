package watcher

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vlrbet/vlrbet/internal/config"
	"github.com/vlrbet/vlrbet/internal/domain"
	"github.com/vlrbet/vlrbet/internal/feed"
	"github.com/vlrbet/vlrbet/internal/service/betservice"
)

const maxConcurrentGroups = 4

type BetStore interface {
	Unresolved(ctx context.Context) ([]domain.Bet, error)
	MarkStartNotified(ctx context.Context, matchPath string) error
	Resolve(ctx context.Context, matchPath string, winner string) ([]domain.Bet, []domain.Bet, error)
}

type Feed interface {
	Live(ctx context.Context) ([]feed.Match, error)
	Results(ctx context.Context) ([]feed.Match, error)
}

type Notifier interface {
	Send(ctx context.Context, channelID int64, text string) error
	Mention(userID int64) string
}

type Service struct {
	bets         BetStore
	feed         Feed
	notifier     Notifier
	pollInterval time.Duration

	// settling marks match groups a cycle is still working on so that
	// an overlapping firing skips them instead of double-handling.
	settling sync.Map
}

func New(cfg *config.Config, bets BetStore, feedClient Feed, notifier Notifier) *Service {
	return &Service{
		bets:         bets,
		feed:         feedClient,
		notifier:     notifier,
		pollInterval: cfg.PollInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Settlement watcher started", zap.Duration("interval", s.pollInterval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping watcher")
			return
		case <-ticker.C:
			s.reconcile(ctx)
		}
	}
}

// reconcile runs one settlement pass: one live fetch and one results
// fetch serve every open bet group. A feed without data this cycle just
// defers the groups to the next firing.
func (s *Service) reconcile(ctx context.Context) {
	bets, err := s.bets.Unresolved(ctx)
	if err != nil {
		return
	}
	if len(bets) == 0 {
		return
	}

	live, err := s.feed.Live(ctx)
	if err != nil {
		live = nil
	}
	results, err := s.feed.Results(ctx)
	if err != nil {
		results = nil
	}
	if live == nil && results == nil {
		return
	}

	liveByPath := indexByPath(live)
	resultsByPath := indexByPath(results)

	var g errgroup.Group
	g.SetLimit(maxConcurrentGroups)
	for path, group := range groupByMatch(bets) {
		if _, loaded := s.settling.LoadOrStore(path, struct{}{}); loaded {
			continue
		}
		path, group := path, group
		g.Go(func() error {
			defer s.settling.Delete(path)
			s.handleGroup(ctx, path, group, liveByPath, resultsByPath)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Error("Error reconciling bet groups", zap.Error(err))
	}
}

func (s *Service) handleGroup(ctx context.Context, path string, group []domain.Bet, live, results map[string]feed.Match) {
	if match, ok := live[path]; ok && !group[0].StartNotified {
		s.notifyStart(ctx, match, group)
	}
	if match, ok := results[path]; ok {
		s.settle(ctx, path, match)
	}
}

// notifyStart announces the match going live: one message per distinct
// channel, mentioning that channel's bettors, then the whole group is
// flagged so no later cycle repeats the announcement.
func (s *Service) notifyStart(ctx context.Context, match feed.Match, group []domain.Bet) {
	for channelID, channelBets := range groupByChannel(group) {
		text := fmt.Sprintf("%s vs %s is live! Good luck %s",
			match.Team1, match.Team2, s.mentions(channelBets))
		if err := s.notifier.Send(ctx, channelID, text); err != nil {
			zap.L().Error("Failed to send start notification",
				zap.Int64("channelID", channelID), zap.Error(err))
		}
	}
	if err := s.bets.MarkStartNotified(ctx, group[0].MatchPath); err != nil {
		zap.L().Error("Failed to mark group start-notified",
			zap.String("matchPath", group[0].MatchPath), zap.Error(err))
	}
}

// settle resolves the group against the final score. The higher score
// wins; a tie goes to team1.
func (s *Service) settle(ctx context.Context, path string, match feed.Match) {
	winner := match.Team2
	if match.Score1 >= match.Score2 {
		winner = match.Team1
	}

	winners, losers, err := s.bets.Resolve(ctx, path, winner)
	if err != nil {
		return
	}
	if len(winners) == 0 && len(losers) == 0 {
		return
	}
	s.notifyResult(ctx, match, winner, winners, losers)
}

func (s *Service) notifyResult(ctx context.Context, match feed.Match, winner string, winners, losers []domain.Bet) {
	byChannel := make(map[int64]struct{ won, lost []domain.Bet })
	for _, bet := range winners {
		entry := byChannel[bet.ChannelID]
		entry.won = append(entry.won, bet)
		byChannel[bet.ChannelID] = entry
	}
	for _, bet := range losers {
		entry := byChannel[bet.ChannelID]
		entry.lost = append(entry.lost, bet)
		byChannel[bet.ChannelID] = entry
	}

	for channelID, entry := range byChannel {
		var b strings.Builder
		fmt.Fprintf(&b, "%s %d : %d %s. %s takes it!",
			match.Team1, match.Score1, match.Score2, match.Team2, winner)
		if len(entry.won) > 0 {
			fmt.Fprintf(&b, "\nWinners (%d): %s", len(entry.won), s.payouts(entry.won))
		}
		if len(entry.lost) > 0 {
			fmt.Fprintf(&b, "\nLosers (%d): %s", len(entry.lost), s.mentions(entry.lost))
		}
		if err := s.notifier.Send(ctx, channelID, b.String()); err != nil {
			zap.L().Error("Failed to send settlement summary",
				zap.Int64("channelID", channelID), zap.Error(err))
		}
	}
}

func (s *Service) mentions(bets []domain.Bet) string {
	parts := make([]string, 0, len(bets))
	for _, bet := range bets {
		parts = append(parts, s.notifier.Mention(bet.UserID))
	}
	return strings.Join(parts, ", ")
}

func (s *Service) payouts(bets []domain.Bet) string {
	parts := make([]string, 0, len(bets))
	for _, bet := range bets {
		parts = append(parts, fmt.Sprintf("%s +%d", s.notifier.Mention(bet.UserID), bet.Amount*betservice.PayoutMultiplier))
	}
	return strings.Join(parts, ", ")
}

func groupByMatch(bets []domain.Bet) map[string][]domain.Bet {
	groups := make(map[string][]domain.Bet)
	for _, bet := range bets {
		groups[bet.MatchPath] = append(groups[bet.MatchPath], bet)
	}
	return groups
}

func groupByChannel(bets []domain.Bet) map[int64][]domain.Bet {
	channels := make(map[int64][]domain.Bet)
	for _, bet := range bets {
		channels[bet.ChannelID] = append(channels[bet.ChannelID], bet)
	}
	return channels
}

func indexByPath(matches []feed.Match) map[string]feed.Match {
	index := make(map[string]feed.Match, len(matches))
	for _, m := range matches {
		path := feed.NormalizePath(m.MatchPath)
		if _, ok := index[path]; !ok {
			index[path] = m
		}
	}
	return index
}
