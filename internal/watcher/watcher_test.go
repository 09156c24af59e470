package watcher

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/vlrbet/vlrbet/internal/config"
	"github.com/vlrbet/vlrbet/internal/domain"
	"github.com/vlrbet/vlrbet/internal/feed"
)

func NewMock(t *testing.T) (*Service, *MockBetStore, *MockFeed, *MockNotifier) {
	ctrl := gomock.NewController(t)
	bets := NewMockBetStore(ctrl)
	feedClient := NewMockFeed(ctrl)
	notifier := NewMockNotifier(ctrl)
	service := New(&config.Config{PollInterval: time.Minute}, bets, feedClient, notifier)
	defer ctrl.Finish()
	return service, bets, feedClient, notifier
}

func mentionAny(notifier *MockNotifier) {
	notifier.EXPECT().Mention(gomock.Any()).DoAndReturn(func(userID int64) string {
		return fmt.Sprintf("@user%d", userID)
	}).AnyTimes()
}

func TestReconcile_StartNotification(t *testing.T) {
	service, bets, feedClient, notifier := NewMock(t)
	mentionAny(notifier)

	// Three bets on one match spread over two channels: one message per
	// distinct channel, not one per bet.
	group := []domain.Bet{
		{ID: 1, MatchPath: "/1/a-vs-b", UserID: 10, ChannelID: 500},
		{ID: 2, MatchPath: "/1/a-vs-b", UserID: 11, ChannelID: 500},
		{ID: 3, MatchPath: "/1/a-vs-b", UserID: 12, ChannelID: 501},
	}
	bets.EXPECT().Unresolved(gomock.Any()).Return(group, nil)
	feedClient.EXPECT().Live(gomock.Any()).Return([]feed.Match{
		{Team1: "Team A", Team2: "Team B", MatchPath: "https://vlr.gg/1/a-vs-b"},
	}, nil)
	feedClient.EXPECT().Results(gomock.Any()).Return([]feed.Match{}, nil)

	notifier.EXPECT().Send(gomock.Any(), int64(500), gomock.Any()).Return(nil).Times(1)
	notifier.EXPECT().Send(gomock.Any(), int64(501), gomock.Any()).Return(nil).Times(1)
	bets.EXPECT().MarkStartNotified(gomock.Any(), "/1/a-vs-b").Return(nil).Times(1)

	service.reconcile(context.Background())
}

func TestReconcile_AlreadyNotifiedGroupStaysQuiet(t *testing.T) {
	service, bets, feedClient, _ := NewMock(t)

	group := []domain.Bet{
		{ID: 1, MatchPath: "/1/a-vs-b", UserID: 10, ChannelID: 500, StartNotified: true},
	}
	bets.EXPECT().Unresolved(gomock.Any()).Return(group, nil)
	feedClient.EXPECT().Live(gomock.Any()).Return([]feed.Match{
		{Team1: "Team A", Team2: "Team B", MatchPath: "/1/a-vs-b"},
	}, nil)
	feedClient.EXPECT().Results(gomock.Any()).Return([]feed.Match{}, nil)

	service.reconcile(context.Background())
}

func TestReconcile_Settlement(t *testing.T) {
	service, bets, feedClient, notifier := NewMock(t)
	mentionAny(notifier)

	group := []domain.Bet{
		{ID: 1, MatchPath: "/1/a-vs-b", UserID: 10, ChannelID: 500, TeamChosen: "Team A", Amount: 100, StartNotified: true},
		{ID: 2, MatchPath: "/1/a-vs-b", UserID: 11, ChannelID: 501, TeamChosen: "Team B", Amount: 40, StartNotified: true},
	}
	bets.EXPECT().Unresolved(gomock.Any()).Return(group, nil)
	feedClient.EXPECT().Live(gomock.Any()).Return([]feed.Match{}, nil)
	feedClient.EXPECT().Results(gomock.Any()).Return([]feed.Match{
		{Team1: "Team A", Team2: "Team B", Score1: 2, Score2: 1, MatchPath: "https://vlr.gg/1/a-vs-b"},
	}, nil)

	bets.EXPECT().Resolve(gomock.Any(), "/1/a-vs-b", "Team A").Return(
		[]domain.Bet{group[0]}, []domain.Bet{group[1]}, nil,
	)
	notifier.EXPECT().Send(gomock.Any(), int64(500), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, text string) error {
			assert.Contains(t, text, "Team A takes it!")
			assert.Contains(t, text, "Winners (1): @user10 +200")
			return nil
		},
	)
	notifier.EXPECT().Send(gomock.Any(), int64(501), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, text string) error {
			assert.Contains(t, text, "Losers (1): @user11")
			return nil
		},
	)

	service.reconcile(context.Background())
}

func TestReconcile_TieGoesToTeam1(t *testing.T) {
	service, bets, feedClient, notifier := NewMock(t)
	mentionAny(notifier)

	group := []domain.Bet{
		{ID: 1, MatchPath: "/1/a-vs-b", UserID: 10, ChannelID: 500, TeamChosen: "Team A", Amount: 100, StartNotified: true},
	}
	bets.EXPECT().Unresolved(gomock.Any()).Return(group, nil)
	feedClient.EXPECT().Live(gomock.Any()).Return([]feed.Match{}, nil)
	feedClient.EXPECT().Results(gomock.Any()).Return([]feed.Match{
		{Team1: "Team A", Team2: "Team B", Score1: 1, Score2: 1, MatchPath: "/1/a-vs-b"},
	}, nil)

	bets.EXPECT().Resolve(gomock.Any(), "/1/a-vs-b", "Team A").Return(
		[]domain.Bet{group[0]}, []domain.Bet{}, nil,
	)
	notifier.EXPECT().Send(gomock.Any(), int64(500), gomock.Any()).Return(nil)

	service.reconcile(context.Background())
}

func TestReconcile_FeedDownDefersCycle(t *testing.T) {
	service, bets, feedClient, _ := NewMock(t)

	group := []domain.Bet{
		{ID: 1, MatchPath: "/1/a-vs-b", UserID: 10, ChannelID: 500},
	}
	bets.EXPECT().Unresolved(gomock.Any()).Return(group, nil)
	feedClient.EXPECT().Live(gomock.Any()).Return(nil, feed.ErrNoData)
	feedClient.EXPECT().Results(gomock.Any()).Return(nil, feed.ErrNoData)

	// No sends, no resolve: everything waits for the next firing.
	service.reconcile(context.Background())
}

func TestReconcile_NoOpenBets(t *testing.T) {
	service, bets, _, _ := NewMock(t)

	bets.EXPECT().Unresolved(gomock.Any()).Return([]domain.Bet{}, nil)
	service.reconcile(context.Background())
}

func TestReconcile_EmptyResolveSendsNothing(t *testing.T) {
	service, bets, feedClient, _ := NewMock(t)

	group := []domain.Bet{
		{ID: 1, MatchPath: "/1/a-vs-b", UserID: 10, ChannelID: 500, StartNotified: true},
	}
	bets.EXPECT().Unresolved(gomock.Any()).Return(group, nil)
	feedClient.EXPECT().Live(gomock.Any()).Return([]feed.Match{}, nil)
	feedClient.EXPECT().Results(gomock.Any()).Return([]feed.Match{
		{Team1: "Team A", Team2: "Team B", Score1: 2, Score2: 0, MatchPath: "/1/a-vs-b"},
	}, nil)

	// Another instance settled the group first; nothing left to report.
	bets.EXPECT().Resolve(gomock.Any(), "/1/a-vs-b", "Team A").Return(
		[]domain.Bet{}, []domain.Bet{}, nil,
	)

	service.reconcile(context.Background())
}

func TestReconcile_InFlightMarksArePerInstance(t *testing.T) {
	service, bets, feedClient, _ := NewMock(t)
	other, otherBets, otherFeed, _ := NewMock(t)

	group := []domain.Bet{
		{ID: 1, MatchPath: "/1/a-vs-b", UserID: 10, ChannelID: 500, StartNotified: true},
	}
	results := []feed.Match{
		{Team1: "Team A", Team2: "Team B", Score1: 2, Score2: 0, MatchPath: "/1/a-vs-b"},
	}

	// A group still marked in-flight is skipped by this instance.
	service.settling.Store("/1/a-vs-b", struct{}{})
	bets.EXPECT().Unresolved(gomock.Any()).Return(group, nil)
	feedClient.EXPECT().Live(gomock.Any()).Return([]feed.Match{}, nil)
	feedClient.EXPECT().Results(gomock.Any()).Return(results, nil)
	service.reconcile(context.Background())

	// The mark does not leak into a second service instance.
	otherBets.EXPECT().Unresolved(gomock.Any()).Return(group, nil)
	otherFeed.EXPECT().Live(gomock.Any()).Return([]feed.Match{}, nil)
	otherFeed.EXPECT().Results(gomock.Any()).Return(results, nil)
	otherBets.EXPECT().Resolve(gomock.Any(), "/1/a-vs-b", "Team A").Return(
		[]domain.Bet{}, []domain.Bet{}, nil,
	)
	other.reconcile(context.Background())
}
