package wagerservice

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vlrbet/vlrbet/internal/domain"
	"github.com/vlrbet/vlrbet/internal/feed"
	"github.com/vlrbet/vlrbet/internal/pg"
	"github.com/vlrbet/vlrbet/internal/service/ledgerservice"
)

type State string

const (
	StateProposed  State = "proposed"
	StateConfirmed State = "confirmed"
	StateCommitted State = "committed"
	StateCancelled State = "cancelled"
	StateExpired   State = "expired"
)

var (
	ErrInvalidAmount     = errors.New("wager amount must be positive")
	ErrNoUpcomingMatch   = errors.New("no upcoming match available")
	ErrUnauthorizedActor = errors.New("only the requester can act on this wager")
	ErrStaleAttempt      = errors.New("wager attempt expired or already settled")
)

// DefaultEventPriority orders the events a proposed wager may target. The
// first event in the list that has any upcoming match wins, not the match
// that starts soonest.
var DefaultEventPriority = []string{
	"VCT 2025: China Stage 2",
	"Esports World Cup 2025",
	"VCT 2025: Pacific Stage 2",
	"VCT 2025: EMEA Stage 2",
	"VCT 2025: Americas Stage 2",
	"Valorant Champions 2025",
}

// Attempt is one in-flight wager negotiation. Funds stay untouched until
// the attempt commits.
type Attempt struct {
	ID        string
	UserID    int64
	ChannelID int64
	Amount    int64
	Match     feed.Match
	State     State
	CreatedAt time.Time
	ExpiresAt time.Time
}

type Ledger interface {
	GetBalance(ctx context.Context, userID int64) (int64, error)
	Debit(ctx context.Context, userID int64, amount int64) error
}

type BetStore interface {
	Place(ctx context.Context, bet *domain.Bet) error
}

type Feed interface {
	Upcoming(ctx context.Context) ([]feed.Match, error)
}

type Service struct {
	ledger    Ledger
	bets      BetStore
	feed      Feed
	txManager pg.TXManager
	timeout   time.Duration
	priority  []string

	mu       sync.Mutex
	attempts map[string]*Attempt
}

func New(ledger Ledger, bets BetStore, feedClient Feed, txManager pg.TXManager, timeout time.Duration) *Service {
	return &Service{
		ledger:    ledger,
		bets:      bets,
		feed:      feedClient,
		txManager: txManager,
		timeout:   timeout,
		priority:  DefaultEventPriority,
		attempts:  make(map[string]*Attempt),
	}
}

// Propose opens a wager attempt for the highest-priority upcoming match.
// Nothing is debited here; the balance check only rejects hopeless
// attempts early.
func (s *Service) Propose(ctx context.Context, userID int64, channelID int64, amount int64) (*Attempt, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	matches, err := s.feed.Upcoming(ctx)
	if err != nil {
		zap.L().Warn("upcoming fetch failed during proposal", zap.Error(err))
		return nil, ErrNoUpcomingMatch
	}
	match, ok := s.pickMatch(matches)
	if !ok {
		return nil, ErrNoUpcomingMatch
	}

	balance, err := s.ledger.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	if amount > balance {
		return nil, fmt.Errorf("balance %d: %w", balance, ledgerservice.ErrInsufficientFunds)
	}

	now := time.Now()
	attempt := &Attempt{
		ID:        uuid.NewString(),
		UserID:    userID,
		ChannelID: channelID,
		Amount:    amount,
		Match:     match,
		State:     StateProposed,
		CreatedAt: now,
		ExpiresAt: now.Add(s.timeout),
	}

	s.mu.Lock()
	s.attempts[attempt.ID] = attempt
	s.mu.Unlock()

	snapshot := *attempt
	return &snapshot, nil
}

// Confirm advances the attempt from the yes/no prompt to team choice. The
// balance is re-checked because it may have changed since the proposal;
// an insufficient balance terminates the attempt.
func (s *Service) Confirm(ctx context.Context, attemptID string, actorID int64) (*Attempt, error) {
	if _, err := s.pending(attemptID, actorID, StateProposed); err != nil {
		return nil, err
	}

	attempt, err := s.snapshot(attemptID)
	if err != nil {
		return nil, err
	}
	balance, err := s.ledger.GetBalance(ctx, attempt.UserID)
	if err != nil {
		return nil, err
	}
	if attempt.Amount > balance {
		s.transition(attemptID, StateProposed, StateCancelled)
		return nil, fmt.Errorf("balance %d: %w", balance, ledgerservice.ErrInsufficientFunds)
	}

	return s.transition(attemptID, StateProposed, StateConfirmed)
}

// Cancel terminates the attempt from either prompt. No funds move.
func (s *Service) Cancel(_ context.Context, attemptID string, actorID int64) (*Attempt, error) {
	attempt, err := s.pendingAny(attemptID, actorID)
	if err != nil {
		return nil, err
	}
	return s.transition(attemptID, attempt.State, StateCancelled)
}

// ChooseTeam commits the wager: one final balance check, then the debit
// and the bet row are written in a single transaction so the stake is
// withdrawn exactly once and only with a durable bet behind it.
func (s *Service) ChooseTeam(ctx context.Context, attemptID string, actorID int64, team string) (*Attempt, error) {
	attempt, err := s.pending(attemptID, actorID, StateConfirmed)
	if err != nil {
		return nil, err
	}
	if team != attempt.Match.Team1 && team != attempt.Match.Team2 {
		return nil, fmt.Errorf("team %q is not playing this match", team)
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.ledger.Debit(ctx, attempt.UserID, attempt.Amount); err != nil {
			return err
		}
		return s.bets.Place(ctx, &domain.Bet{
			MatchPath:  attempt.Match.MatchPath,
			MatchEvent: attempt.Match.Event,
			Team1:      attempt.Match.Team1,
			Team2:      attempt.Match.Team2,
			UserID:     attempt.UserID,
			TeamChosen: team,
			Amount:     attempt.Amount,
			ChannelID:  attempt.ChannelID,
		})
	})
	if err != nil {
		if errors.Is(err, ledgerservice.ErrInsufficientFunds) {
			s.transition(attemptID, StateConfirmed, StateCancelled)
		}
		return nil, err
	}

	committed, err := s.transition(attemptID, StateConfirmed, StateCommitted)
	if err != nil {
		// The bet is already durable; the arena record went stale
		// underneath us, which only affects prompt bookkeeping.
		zap.L().Warn("wager committed but attempt record was gone", zap.String("attemptID", attemptID))
		snapshot := *attempt
		snapshot.State = StateCommitted
		return &snapshot, nil
	}
	zap.L().Info("wager committed",
		zap.Int64("userID", attempt.UserID),
		zap.String("matchPath", attempt.Match.MatchPath),
		zap.String("team", team),
		zap.Int64("amount", attempt.Amount))
	return committed, nil
}

// Get returns a read-only snapshot of a live attempt. Authorization is
// enforced by the transition methods, not here.
func (s *Service) Get(attemptID string) (*Attempt, error) {
	return s.snapshot(attemptID)
}

// Expire sweeps attempts whose interaction timeout elapsed before now and
// returns them so the adapter can retire their prompts. Expiry is also
// applied lazily whenever an attempt is accessed.
func (s *Service) Expire(now time.Time) []*Attempt {
	s.mu.Lock()
	defer s.mu.Unlock()

	var expired []*Attempt
	for id, attempt := range s.attempts {
		switch attempt.State {
		case StateProposed, StateConfirmed:
			if !now.Before(attempt.ExpiresAt) {
				attempt.State = StateExpired
				snapshot := *attempt
				expired = append(expired, &snapshot)
			}
		default:
			// Terminal attempts are dropped on the sweep after the
			// adapter had a chance to read their final state.
			delete(s.attempts, id)
		}
	}
	return expired
}

func (s *Service) pickMatch(matches []feed.Match) (feed.Match, bool) {
	for _, event := range s.priority {
		for _, m := range matches {
			if m.Event == event {
				return m, true
			}
		}
	}
	return feed.Match{}, false
}

// pending returns a snapshot of the attempt when it is alive, in want,
// and acted on by its requester. Unauthorized actors never change state.
func (s *Service) pending(attemptID string, actorID int64, want State) (*Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	attempt, err := s.liveLocked(attemptID)
	if err != nil {
		return nil, err
	}
	if attempt.UserID != actorID {
		return nil, ErrUnauthorizedActor
	}
	if attempt.State != want {
		return nil, ErrStaleAttempt
	}
	snapshot := *attempt
	return &snapshot, nil
}

func (s *Service) pendingAny(attemptID string, actorID int64) (*Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	attempt, err := s.liveLocked(attemptID)
	if err != nil {
		return nil, err
	}
	if attempt.UserID != actorID {
		return nil, ErrUnauthorizedActor
	}
	snapshot := *attempt
	return &snapshot, nil
}

func (s *Service) snapshot(attemptID string) (*Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	attempt, err := s.liveLocked(attemptID)
	if err != nil {
		return nil, err
	}
	snapshot := *attempt
	return &snapshot, nil
}

// transition flips the attempt from one state to another, failing with
// ErrStaleAttempt when a timeout or a concurrent action got there first.
func (s *Service) transition(attemptID string, from State, to State) (*Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	attempt, ok := s.attempts[attemptID]
	if !ok || attempt.State != from {
		return nil, ErrStaleAttempt
	}
	attempt.State = to
	// A prompt answered in time restarts the wait for the next one, so
	// the team choice gets a full window of its own.
	if to == StateConfirmed {
		attempt.ExpiresAt = time.Now().Add(s.timeout)
	}
	snapshot := *attempt
	return &snapshot, nil
}

// liveLocked applies lazy expiry. Callers hold s.mu.
func (s *Service) liveLocked(attemptID string) (*Attempt, error) {
	attempt, ok := s.attempts[attemptID]
	if !ok {
		return nil, ErrStaleAttempt
	}
	switch attempt.State {
	case StateProposed, StateConfirmed:
	default:
		return nil, ErrStaleAttempt
	}
	if !time.Now().Before(attempt.ExpiresAt) {
		attempt.State = StateExpired
		return nil, ErrStaleAttempt
	}
	return attempt, nil
}
