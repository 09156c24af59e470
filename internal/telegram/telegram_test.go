package telegram

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/vlrbet/vlrbet/internal/domain"
	"github.com/vlrbet/vlrbet/internal/feed"
	"github.com/vlrbet/vlrbet/internal/service/wagerservice"
)

// fakeAPI records everything the bot tried to send.
type fakeAPI struct {
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
	nextID   int
}

func (f *fakeAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	f.nextID++
	return tgbotapi.Message{MessageID: f.nextID}, nil
}

func (f *fakeAPI) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.requests = append(f.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeAPI) lastMessage(t *testing.T) tgbotapi.MessageConfig {
	t.Helper()
	assert.NotEmpty(t, f.sent)
	msg, ok := f.sent[len(f.sent)-1].(tgbotapi.MessageConfig)
	assert.True(t, ok)
	return msg
}

func NewMock(t *testing.T) (*Bot, *fakeAPI, *MockLedger, *MockWagers, *MockFeed) {
	ctrl := gomock.NewController(t)
	ledger := NewMockLedger(ctrl)
	wagers := NewMockWagers(ctrl)
	feedClient := NewMockFeed(ctrl)
	api := &fakeAPI{}
	bot := &Bot{
		api:     api,
		ledger:  ledger,
		wagers:  wagers,
		feed:    feedClient,
		prompts: make(map[string]prompt),
	}
	defer ctrl.Finish()
	return bot, api, ledger, wagers, feedClient
}

func command(text string, userID int64, chatID int64) *tgbotapi.Message {
	cmd := text
	if i := strings.Index(text, " "); i > 0 {
		cmd = text[:i]
	}
	return &tgbotapi.Message{
		Text: text,
		Entities: []tgbotapi.MessageEntity{
			{Type: "bot_command", Offset: 0, Length: len(cmd)},
		},
		From: &tgbotapi.User{ID: userID},
		Chat: &tgbotapi.Chat{ID: chatID},
	}
}

func TestCmdBalance(t *testing.T) {
	bot, api, ledger, _, _ := NewMock(t)

	ledger.EXPECT().Rank(gomock.Any(), int64(1)).Return(3, int64(420), nil)
	bot.handleCommand(context.Background(), command("/balance", 1, 500))

	msg := api.lastMessage(t)
	assert.Equal(t, int64(500), msg.ChatID)
	assert.Contains(t, msg.Text, "420 points")
	assert.Contains(t, msg.Text, "rank #3")
}

func TestCmdLeaderboard(t *testing.T) {
	bot, api, ledger, _, _ := NewMock(t)

	ledger.EXPECT().Leaderboard(gomock.Any(), leaderboardTop).Return([]domain.Account{
		{UserID: 10, Balance: 900},
		{UserID: 11, Balance: 400},
	}, nil)
	bot.handleCommand(context.Background(), command("/leaderboard", 1, 500))

	msg := api.lastMessage(t)
	assert.Contains(t, msg.Text, "1. ")
	assert.Contains(t, msg.Text, "900 points")
	assert.Contains(t, msg.Text, "400 points")
}

func TestCmdBet(t *testing.T) {
	t.Run("Sends a yes/no prompt and tracks it", func(t *testing.T) {
		bot, api, _, wagers, _ := NewMock(t)

		attempt := &wagerservice.Attempt{
			ID:     "abc",
			UserID: 1,
			Amount: 100,
			Match:  feed.Match{Event: "VCT 2025: China Stage 2", Team1: "Team A", Team2: "Team B"},
			State:  wagerservice.StateProposed,
		}
		wagers.EXPECT().Propose(gomock.Any(), int64(1), int64(500), int64(100)).Return(attempt, nil)

		bot.handleCommand(context.Background(), command("/bet 100", 1, 500))

		msg := api.lastMessage(t)
		assert.Contains(t, msg.Text, "Bet 100 points on Team A vs Team B")
		markup, ok := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
		assert.True(t, ok)
		assert.Equal(t, "abc:confirm", *markup.InlineKeyboard[0][0].CallbackData)
		assert.Equal(t, "abc:cancel", *markup.InlineKeyboard[0][1].CallbackData)

		bot.mu.Lock()
		_, tracked := bot.prompts["abc"]
		bot.mu.Unlock()
		assert.True(t, tracked)
	})

	t.Run("Rejects a non-numeric amount without touching the service", func(t *testing.T) {
		bot, api, _, _, _ := NewMock(t)

		bot.handleCommand(context.Background(), command("/bet lots", 1, 500))
		assert.Contains(t, api.lastMessage(t).Text, "Usage: /bet")
	})

	t.Run("Reports insufficient funds", func(t *testing.T) {
		bot, api, _, wagers, _ := NewMock(t)

		wagers.EXPECT().Propose(gomock.Any(), int64(1), int64(500), int64(600)).
			Return(nil, wagerservice.ErrInvalidAmount)
		bot.handleCommand(context.Background(), command("/bet 600", 1, 500))
		assert.Contains(t, api.lastMessage(t).Text, "positive number")
	})

	t.Run("Reports an empty feed", func(t *testing.T) {
		bot, api, _, wagers, _ := NewMock(t)

		wagers.EXPECT().Propose(gomock.Any(), int64(1), int64(500), int64(100)).
			Return(nil, wagerservice.ErrNoUpcomingMatch)
		bot.handleCommand(context.Background(), command("/bet 100", 1, 500))
		assert.Contains(t, api.lastMessage(t).Text, "No upcoming match")
	})
}

func TestCmdMatches(t *testing.T) {
	bot, api, _, _, feedClient := NewMock(t)

	feedClient.EXPECT().Upcoming(gomock.Any()).Return([]feed.Match{
		{Event: "VCT 2025: EMEA Stage 2", Series: "Week 1", Team1: "Team A", Team2: "Team B", TimeUntil: "2h 10m"},
	}, nil)
	bot.handleCommand(context.Background(), command("/upcoming", 1, 500))

	msg := api.lastMessage(t)
	assert.Contains(t, msg.Text, "Team A 0 : 0 Team B")
	assert.Contains(t, msg.Text, "in 2h 10m")
	assert.Contains(t, msg.Text, "VCT 2025: EMEA Stage 2")
}

func TestHandleCallback(t *testing.T) {
	callback := func(data string, userID int64) *tgbotapi.CallbackQuery {
		return &tgbotapi.CallbackQuery{
			ID:   "cb1",
			Data: data,
			From: &tgbotapi.User{ID: userID},
		}
	}

	t.Run("Confirm advances the prompt to team choice", func(t *testing.T) {
		bot, api, _, wagers, _ := NewMock(t)
		bot.trackPrompt("abc", 500, 7)

		attempt := &wagerservice.Attempt{
			ID:     "abc",
			UserID: 1,
			Amount: 100,
			Match:  feed.Match{Team1: "Team A", Team2: "Team B"},
			State:  wagerservice.StateConfirmed,
		}
		wagers.EXPECT().Confirm(gomock.Any(), "abc", int64(1)).Return(attempt, nil)

		bot.handleCallback(context.Background(), callback("abc:confirm", 1))

		assert.Len(t, api.requests, 1)
		edit, ok := api.sent[len(api.sent)-1].(tgbotapi.EditMessageTextConfig)
		assert.True(t, ok)
		assert.Contains(t, edit.Text, "Pick a side")
		assert.Equal(t, "abc:team1", *edit.ReplyMarkup.InlineKeyboard[0][0].CallbackData)
	})

	t.Run("Unauthorized clicker gets an alert and the prompt stays", func(t *testing.T) {
		bot, api, _, wagers, _ := NewMock(t)
		bot.trackPrompt("abc", 500, 7)

		wagers.EXPECT().Confirm(gomock.Any(), "abc", int64(2)).
			Return(nil, wagerservice.ErrUnauthorizedActor)

		bot.handleCallback(context.Background(), callback("abc:confirm", 2))

		assert.Empty(t, api.sent)
		assert.Len(t, api.requests, 1)
		answer, ok := api.requests[0].(tgbotapi.CallbackConfig)
		assert.True(t, ok)
		assert.True(t, answer.ShowAlert)
		assert.Contains(t, answer.Text, "Only the requester")
	})

	t.Run("Team choice commits and retires the prompt", func(t *testing.T) {
		bot, api, _, wagers, _ := NewMock(t)
		bot.trackPrompt("abc", 500, 7)

		attempt := &wagerservice.Attempt{
			ID:     "abc",
			UserID: 1,
			Amount: 100,
			Match:  feed.Match{Team1: "Team A", Team2: "Team B"},
			State:  wagerservice.StateConfirmed,
		}
		committed := *attempt
		committed.State = wagerservice.StateCommitted

		wagers.EXPECT().Get("abc").Return(attempt, nil)
		wagers.EXPECT().ChooseTeam(gomock.Any(), "abc", int64(1), "Team B").Return(&committed, nil)

		bot.handleCallback(context.Background(), callback("abc:team2", 1))

		edit, ok := api.sent[len(api.sent)-1].(tgbotapi.EditMessageTextConfig)
		assert.True(t, ok)
		assert.Contains(t, edit.Text, "100 points on Team B")

		bot.mu.Lock()
		_, tracked := bot.prompts["abc"]
		bot.mu.Unlock()
		assert.False(t, tracked)
	})

	t.Run("Stale attempt retires the prompt", func(t *testing.T) {
		bot, api, _, wagers, _ := NewMock(t)
		bot.trackPrompt("abc", 500, 7)

		wagers.EXPECT().Cancel(gomock.Any(), "abc", int64(1)).
			Return(nil, wagerservice.ErrStaleAttempt)

		bot.handleCallback(context.Background(), callback("abc:cancel", 1))

		edit, ok := api.sent[len(api.sent)-1].(tgbotapi.EditMessageTextConfig)
		assert.True(t, ok)
		assert.Contains(t, edit.Text, "expired")
	})
}

func TestMention(t *testing.T) {
	bot := &Bot{}
	assert.Equal(t, "[player](tg://user?id=42)", bot.Mention(42))
}

func TestFormatMatches(t *testing.T) {
	assert.Equal(t, "Nothing to show right now.", formatMatches("Live matches", nil))

	out := formatMatches("Recent results", []feed.Match{
		{Event: "Valorant Champions 2025", Series: "Grand Final", Team1: "Team A", Team2: "Team B", Score1: 3, Score2: 1, TimeCompleted: "4h ago"},
	})
	assert.Contains(t, out, "Recent results:")
	assert.Contains(t, out, "Team A 3 : 1 Team B (4h ago)")
	assert.Contains(t, out, "Valorant Champions 2025 - Grand Final")
}

func TestFormatRankings(t *testing.T) {
	out := formatRankings("eu", []feed.TeamRank{
		{Rank: 1, Team: "Team A"},
		{Rank: 2, Team: "Team B"},
	})
	assert.Contains(t, out, "Top teams (eu):")
	assert.Contains(t, out, "1. Team A")
	assert.Contains(t, out, "2. Team B")
}

// flakyAPI fails the first N sends, then behaves like fakeAPI.
type flakyAPI struct {
	fakeAPI
	failures int
	calls    int
}

func (f *flakyAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.calls++
	if f.calls <= f.failures {
		return tgbotapi.Message{}, errors.New("telegram unavailable")
	}
	return f.fakeAPI.Send(c)
}

func TestSend(t *testing.T) {
	t.Run("Recovers on a retry", func(t *testing.T) {
		api := &flakyAPI{failures: 1}
		bot := &Bot{api: api, retryDelay: time.Millisecond, prompts: make(map[string]prompt)}

		err := bot.Send(context.Background(), 500, "hello")
		assert.NoError(t, err)
		assert.Equal(t, 2, api.calls)
	})

	t.Run("Exhausted retries return without a trailing wait", func(t *testing.T) {
		api := &flakyAPI{failures: maxRetries}
		bot := &Bot{api: api, retryDelay: 50 * time.Millisecond, prompts: make(map[string]prompt)}

		start := time.Now()
		err := bot.Send(context.Background(), 500, "hello")
		assert.Error(t, err)
		assert.Equal(t, maxRetries, api.calls)
		// Sleeps happen between attempts only: delay, then 2x delay.
		// A sleep after the final failure would push this past 300ms.
		assert.Less(t, time.Since(start), 250*time.Millisecond)
	})
}
