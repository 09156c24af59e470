package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/vlrbet/vlrbet/internal/domain"
	"github.com/vlrbet/vlrbet/internal/feed"
	"github.com/vlrbet/vlrbet/internal/pg"
	betservice "github.com/vlrbet/vlrbet/internal/service/betservice"
	ledgerservice "github.com/vlrbet/vlrbet/internal/service/ledgerservice"
	wagerservice "github.com/vlrbet/vlrbet/internal/service/wagerservice"
)

// memAccountRepo keeps accounts in a map so a whole wager lifecycle can
// run against real services without a database.
type memAccountRepo struct {
	accounts map[int64]*domain.Account
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{accounts: make(map[int64]*domain.Account)}
}

func (r *memAccountRepo) GetForUpdate(_ context.Context, userID int64) (*domain.Account, error) {
	account, ok := r.accounts[userID]
	if !ok {
		return nil, nil
	}
	snapshot := *account
	return &snapshot, nil
}

func (r *memAccountRepo) Create(_ context.Context, userID int64, balance int64) (*domain.Account, error) {
	account := &domain.Account{ID: len(r.accounts) + 1, UserID: userID, Balance: balance}
	r.accounts[userID] = account
	snapshot := *account
	return &snapshot, nil
}

func (r *memAccountRepo) UpdateBalance(_ context.Context, userID int64, balance int64) error {
	r.accounts[userID].Balance = balance
	return nil
}

func (r *memAccountRepo) GrantBonus(_ context.Context, userID int64, balance int64, at time.Time) error {
	account := r.accounts[userID]
	account.Balance = balance
	account.LastBonusAt = at
	return nil
}

func (r *memAccountRepo) Upsert(ctx context.Context, userID int64, balance int64) error {
	if account, ok := r.accounts[userID]; ok {
		account.Balance = balance
		return nil
	}
	_, err := r.Create(ctx, userID, balance)
	return err
}

func (r *memAccountRepo) Leaderboard(_ context.Context, limit int) ([]domain.Account, error) {
	out := make([]domain.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		out = append(out, *account)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Balance > out[j].Balance })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memAccountRepo) CountRicher(_ context.Context, balance int64) (int, error) {
	count := 0
	for _, account := range r.accounts {
		if account.Balance > balance {
			count++
		}
	}
	return count, nil
}

type memBetRepo struct {
	bets   []domain.Bet
	nextID int
}

func (r *memBetRepo) Insert(_ context.Context, bet *domain.Bet) error {
	r.nextID++
	stored := *bet
	stored.ID = r.nextID
	r.bets = append(r.bets, stored)
	return nil
}

func (r *memBetRepo) FindUnresolved(_ context.Context) ([]domain.Bet, error) {
	var out []domain.Bet
	for _, bet := range r.bets {
		if !bet.Resolved {
			out = append(out, bet)
		}
	}
	return out, nil
}

func (r *memBetRepo) FindUnresolvedByMatch(_ context.Context, matchPath string) ([]domain.Bet, error) {
	var out []domain.Bet
	for _, bet := range r.bets {
		if !bet.Resolved && bet.MatchPath == matchPath {
			out = append(out, bet)
		}
	}
	return out, nil
}

func (r *memBetRepo) MarkStartNotified(_ context.Context, matchPath string) error {
	for i := range r.bets {
		if !r.bets[i].Resolved && r.bets[i].MatchPath == matchPath {
			r.bets[i].StartNotified = true
		}
	}
	return nil
}

func (r *memBetRepo) MarkResolved(_ context.Context, matchPath string) error {
	for i := range r.bets {
		if !r.bets[i].Resolved && r.bets[i].MatchPath == matchPath {
			r.bets[i].Resolved = true
		}
	}
	return nil
}

type staticFeed struct{}

func (staticFeed) Upcoming(context.Context) ([]feed.Match, error) {
	return []feed.Match{
		{Event: "VCT 2025: China Stage 2", Team1: "Team A", Team2: "Team B", MatchPath: "/1/a-vs-b"},
	}, nil
}

// TestMoneyConservation drives several wagers through the real ledger,
// bet and wager services and asserts after every operation that the sum
// of all balances plus all open stakes equals what the starting grants
// and resolved payouts account for. No step may mint or destroy points.
func TestMoneyConservation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		},
	).AnyTimes()

	accounts := newMemAccountRepo()
	betRows := &memBetRepo{}
	ledger := ledgerservice.New(accounts, txManager)
	bets := betservice.New(betRows, ledger, txManager)
	wagers := wagerservice.New(ledger, bets, staticFeed{}, txManager, time.Minute)

	total := func() int64 {
		var sum int64
		for _, account := range accounts.accounts {
			sum += account.Balance
		}
		for _, bet := range betRows.bets {
			if !bet.Resolved {
				sum += bet.Amount
			}
		}
		return sum
	}

	var payouts, resolvedStakes int64
	check := func(label string) {
		t.Helper()
		expected := ledgerservice.StartingBalance*int64(len(accounts.accounts)) + payouts - resolvedStakes
		assert.Equal(t, expected, total(), label)
	}

	ctx := context.Background()
	place := func(userID, amount int64, team string) {
		t.Helper()
		attempt, err := wagers.Propose(ctx, userID, 500, amount)
		assert.NoError(t, err)
		check("after propose")

		_, err = wagers.Confirm(ctx, attempt.ID, userID)
		assert.NoError(t, err)
		check("after confirm")

		_, err = wagers.ChooseTeam(ctx, attempt.ID, userID, team)
		assert.NoError(t, err)
		check("after team choice")
	}

	place(1, 100, "Team A")
	place(2, 40, "Team B")
	place(3, 250, "Team A")

	winners, losers, err := bets.Resolve(ctx, "/1/a-vs-b", "Team A")
	assert.NoError(t, err)
	assert.Len(t, winners, 2)
	assert.Len(t, losers, 1)
	for _, bet := range winners {
		payouts += bet.Amount * betservice.PayoutMultiplier
	}
	resolvedStakes += 100 + 40 + 250
	check("after settlement")

	// A repeated resolve must not move anything.
	winners, losers, err = bets.Resolve(ctx, "/1/a-vs-b", "Team A")
	assert.NoError(t, err)
	assert.Empty(t, winners)
	assert.Empty(t, losers)
	check("after repeated settlement")

	// Balances end where the stake flow says they should.
	balance, err := ledger.GetBalance(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1100), balance)
	balance, err = ledger.GetBalance(ctx, 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(960), balance)
	balance, err = ledger.GetBalance(ctx, 3)
	assert.NoError(t, err)
	assert.Equal(t, int64(1250), balance)
}
