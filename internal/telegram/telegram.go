package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/vlrbet/vlrbet/internal/config"
	"github.com/vlrbet/vlrbet/internal/domain"
	"github.com/vlrbet/vlrbet/internal/feed"
	"github.com/vlrbet/vlrbet/internal/service/ledgerservice"
	"github.com/vlrbet/vlrbet/internal/service/wagerservice"
)

const (
	maxRetries     = 3
	retryInterval  = time.Second
	updateTimeout  = 60
	expireInterval = 5 * time.Second
	leaderboardTop = 10
)

type Ledger interface {
	GetBalance(ctx context.Context, userID int64) (int64, error)
	Leaderboard(ctx context.Context, limit int) ([]domain.Account, error)
	Rank(ctx context.Context, userID int64) (int, int64, error)
}

type Wagers interface {
	Propose(ctx context.Context, userID int64, channelID int64, amount int64) (*wagerservice.Attempt, error)
	Confirm(ctx context.Context, attemptID string, actorID int64) (*wagerservice.Attempt, error)
	Cancel(ctx context.Context, attemptID string, actorID int64) (*wagerservice.Attempt, error)
	ChooseTeam(ctx context.Context, attemptID string, actorID int64, team string) (*wagerservice.Attempt, error)
	Get(attemptID string) (*wagerservice.Attempt, error)
	Expire(now time.Time) []*wagerservice.Attempt
}

type Feed interface {
	Upcoming(ctx context.Context) ([]feed.Match, error)
	Live(ctx context.Context) ([]feed.Match, error)
	Results(ctx context.Context) ([]feed.Match, error)
	Rankings(ctx context.Context, region string) ([]feed.TeamRank, error)
}

// API is the slice of tgbotapi.BotAPI the bot talks through.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type prompt struct {
	chatID    int64
	messageID int
}

type Bot struct {
	bot        *tgbotapi.BotAPI
	api        API
	ledger     Ledger
	wagers     Wagers
	feed       Feed
	retryDelay time.Duration

	mu      sync.Mutex
	prompts map[string]prompt
}

func New(cfg *config.Config, ledger Ledger, wagers Wagers, feedClient Feed) (*Bot, error) {
	botAPI, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return &Bot{
		bot:        botAPI,
		api:        botAPI,
		ledger:     ledger,
		wagers:     wagers,
		feed:       feedClient,
		retryDelay: retryInterval,
		prompts:    make(map[string]prompt),
	}, nil
}

func (b *Bot) Start(ctx context.Context) {
	zap.L().Info("Telegram bot started", zap.String("account", b.bot.Self.UserName))

	u := tgbotapi.NewUpdate(0)
	u.Timeout = updateTimeout
	updates := b.bot.GetUpdatesChan(u)

	go b.expireLoop(ctx)
	go func() {
		for {
			select {
			case <-ctx.Done():
				b.bot.StopReceivingUpdates()
				return
			case update := <-updates:
				b.handleUpdate(ctx, update)
			}
		}
	}()
}

// Send delivers a plain message to a channel with a small retry ladder.
// It backs the settlement watcher's Notifier.
func (b *Bot) Send(ctx context.Context, channelID int64, text string) error {
	msg := tgbotapi.NewMessage(channelID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := b.api.Send(msg); err == nil {
			return nil
		} else {
			lastErr = err
		}
		// No point waiting once the last attempt has failed.
		if attempt < maxRetries {
			time.Sleep(b.retryDelay * time.Duration(attempt))
		}
	}
	return fmt.Errorf("failed to send message after %d retries: %w", maxRetries, lastErr)
}

// Mention renders a tappable user mention for Markdown messages.
func (b *Bot) Mention(userID int64) string {
	return fmt.Sprintf("[player](tg://user?id=%d)", userID)
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil && update.Message.IsCommand():
		b.handleCommand(ctx, update.Message)
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	userID := msg.From.ID

	switch msg.Command() {
	case "balance":
		b.cmdBalance(ctx, chatID, userID)
	case "leaderboard":
		b.cmdLeaderboard(ctx, chatID)
	case "bet":
		b.cmdBet(ctx, chatID, userID, msg.CommandArguments())
	case "upcoming":
		b.cmdMatches(ctx, chatID, "Upcoming matches", b.feed.Upcoming)
	case "live":
		b.cmdMatches(ctx, chatID, "Live matches", b.feed.Live)
	case "results":
		b.cmdMatches(ctx, chatID, "Recent results", b.feed.Results)
	case "regionranks":
		b.cmdRankings(ctx, chatID, msg.CommandArguments())
	case "help":
		b.reply(chatID, helpText)
	}
}

const helpText = `/balance - your points and rank
/leaderboard - top balances
/bet <amount> - wager on the next match
/upcoming - upcoming matches
/live - matches in progress
/results - recently finished matches
/regionranks <region> - regional team rankings`

func (b *Bot) cmdBalance(ctx context.Context, chatID int64, userID int64) {
	rank, balance, err := b.ledger.Rank(ctx, userID)
	if err != nil {
		b.reply(chatID, "Could not load your balance, try again later.")
		return
	}
	b.reply(chatID, fmt.Sprintf("You have %d points (rank #%d).", balance, rank))
}

func (b *Bot) cmdLeaderboard(ctx context.Context, chatID int64) {
	accounts, err := b.ledger.Leaderboard(ctx, leaderboardTop)
	if err != nil {
		b.reply(chatID, "Could not load the leaderboard, try again later.")
		return
	}
	if len(accounts) == 0 {
		b.reply(chatID, "Nobody has played yet.")
		return
	}
	var sb strings.Builder
	sb.WriteString("Leaderboard:\n")
	for i, account := range accounts {
		fmt.Fprintf(&sb, "%d. %s - %d points\n", i+1, b.Mention(account.UserID), account.Balance)
	}
	b.reply(chatID, sb.String())
}

func (b *Bot) cmdBet(ctx context.Context, chatID int64, userID int64, args string) {
	amount, err := strconv.ParseInt(strings.TrimSpace(args), 10, 64)
	if err != nil {
		b.reply(chatID, "Usage: /bet <amount>")
		return
	}

	attempt, err := b.wagers.Propose(ctx, userID, chatID, amount)
	switch {
	case errors.Is(err, wagerservice.ErrInvalidAmount):
		b.reply(chatID, "The amount must be a positive number.")
		return
	case errors.Is(err, wagerservice.ErrNoUpcomingMatch):
		b.reply(chatID, "No upcoming match to bet on right now.")
		return
	case errors.Is(err, ledgerservice.ErrInsufficientFunds):
		b.reply(chatID, "You don't have enough points for that.")
		return
	case err != nil:
		b.reply(chatID, "Something went wrong, try again later.")
		return
	}

	text := fmt.Sprintf("Bet %d points on %s vs %s (%s)?",
		attempt.Amount, attempt.Match.Team1, attempt.Match.Team2, attempt.Match.Event)
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = confirmKeyboard(attempt.ID)
	sent, err := b.api.Send(msg)
	if err != nil {
		zap.L().Error("Failed to send wager prompt", zap.Error(err))
		return
	}
	b.trackPrompt(attempt.ID, chatID, sent.MessageID)
}

func (b *Bot) cmdMatches(ctx context.Context, chatID int64, title string, fetch func(context.Context) ([]feed.Match, error)) {
	matches, err := fetch(ctx)
	if err != nil {
		b.reply(chatID, "The match feed has no data right now.")
		return
	}
	b.reply(chatID, formatMatches(title, matches))
}

func (b *Bot) cmdRankings(ctx context.Context, chatID int64, args string) {
	region := strings.TrimSpace(args)
	if region == "" {
		b.reply(chatID, "Usage: /regionranks <region> (na, eu, ap, kr, br, ...)")
		return
	}
	ranks, err := b.feed.Rankings(ctx, region)
	if err != nil {
		b.reply(chatID, "No rankings available for that region.")
		return
	}
	b.reply(chatID, formatRankings(region, ranks))
}

// handleCallback routes "<attemptID>:<verb>" button presses through the
// wager state machine. Unauthorized clickers get an alert and the prompt
// stays as it was.
func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	attemptID, verb, ok := strings.Cut(cb.Data, ":")
	if !ok {
		b.answer(cb.ID, "")
		return
	}
	actorID := cb.From.ID

	var (
		attempt *wagerservice.Attempt
		err     error
	)
	switch verb {
	case "confirm":
		attempt, err = b.wagers.Confirm(ctx, attemptID, actorID)
	case "cancel":
		attempt, err = b.wagers.Cancel(ctx, attemptID, actorID)
	case "team1", "team2":
		attempt, err = b.chooseTeam(ctx, attemptID, actorID, verb)
	default:
		b.answer(cb.ID, "")
		return
	}

	switch {
	case errors.Is(err, wagerservice.ErrUnauthorizedActor):
		b.answer(cb.ID, "Only the requester can act on this wager.")
		return
	case errors.Is(err, wagerservice.ErrStaleAttempt):
		b.answer(cb.ID, "This wager is no longer active.")
		b.retirePrompt(attemptID, "The wager expired.")
		return
	case errors.Is(err, ledgerservice.ErrInsufficientFunds):
		b.answer(cb.ID, "")
		b.retirePrompt(attemptID, "Not enough points anymore, wager cancelled.")
		return
	case err != nil:
		b.answer(cb.ID, "Something went wrong.")
		return
	}

	b.answer(cb.ID, "")
	switch attempt.State {
	case wagerservice.StateConfirmed:
		b.editPrompt(attemptID, fmt.Sprintf("Pick a side: %s vs %s for %d points.",
			attempt.Match.Team1, attempt.Match.Team2, attempt.Amount),
			teamKeyboard(attempt.ID, attempt.Match.Team1, attempt.Match.Team2))
	case wagerservice.StateCancelled:
		b.retirePrompt(attemptID, "Wager cancelled, no points moved.")
	case wagerservice.StateCommitted:
		team := attempt.Match.Team1
		if verb == "team2" {
			team = attempt.Match.Team2
		}
		b.retirePrompt(attemptID, fmt.Sprintf("Locked in: %d points on %s. Good luck!",
			attempt.Amount, team))
	}
}

func (b *Bot) chooseTeam(ctx context.Context, attemptID string, actorID int64, verb string) (*wagerservice.Attempt, error) {
	attempt, err := b.wagers.Get(attemptID)
	if err != nil {
		return nil, err
	}
	team := attempt.Match.Team1
	if verb == "team2" {
		team = attempt.Match.Team2
	}
	return b.wagers.ChooseTeam(ctx, attemptID, actorID, team)
}

// expireLoop retires prompts for attempts whose interaction window
// closed without a click.
func (b *Bot) expireLoop(ctx context.Context) {
	ticker := time.NewTicker(expireInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			for _, attempt := range b.wagers.Expire(now) {
				b.retirePrompt(attempt.ID, "The wager timed out.")
			}
		}
	}
}

func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(msg); err != nil {
		zap.L().Error("Failed to send reply", zap.Int64("chatID", chatID), zap.Error(err))
	}
}

func (b *Bot) answer(callbackID string, text string) {
	cfg := tgbotapi.NewCallback(callbackID, text)
	cfg.ShowAlert = text != ""
	if _, err := b.api.Request(cfg); err != nil {
		zap.L().Error("Failed to answer callback", zap.Error(err))
	}
}

func (b *Bot) trackPrompt(attemptID string, chatID int64, messageID int) {
	b.mu.Lock()
	b.prompts[attemptID] = prompt{chatID: chatID, messageID: messageID}
	b.mu.Unlock()
}

func (b *Bot) editPrompt(attemptID string, text string, markup tgbotapi.InlineKeyboardMarkup) {
	b.mu.Lock()
	p, ok := b.prompts[attemptID]
	b.mu.Unlock()
	if !ok {
		return
	}
	edit := tgbotapi.NewEditMessageTextAndMarkup(p.chatID, p.messageID, text, markup)
	if _, err := b.api.Send(edit); err != nil {
		zap.L().Error("Failed to edit wager prompt", zap.Error(err))
	}
}

// retirePrompt replaces the prompt with a final text and drops the
// keyboard so stale buttons stop inviting clicks.
func (b *Bot) retirePrompt(attemptID string, text string) {
	b.mu.Lock()
	p, ok := b.prompts[attemptID]
	delete(b.prompts, attemptID)
	b.mu.Unlock()
	if !ok {
		return
	}
	edit := tgbotapi.NewEditMessageText(p.chatID, p.messageID, text)
	if _, err := b.api.Send(edit); err != nil {
		zap.L().Error("Failed to retire wager prompt", zap.Error(err))
	}
}

func confirmKeyboard(attemptID string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Yes", attemptID+":confirm"),
			tgbotapi.NewInlineKeyboardButtonData("No", attemptID+":cancel"),
		),
	)
}

func teamKeyboard(attemptID string, team1 string, team2 string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(team1, attemptID+":team1"),
			tgbotapi.NewInlineKeyboardButtonData(team2, attemptID+":team2"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Cancel", attemptID+":cancel"),
		),
	)
}

func formatMatches(title string, matches []feed.Match) string {
	if len(matches) == 0 {
		return "Nothing to show right now."
	}
	const limit = 10
	if len(matches) > limit {
		matches = matches[:limit]
	}
	var sb strings.Builder
	sb.WriteString(title + ":\n")
	for _, m := range matches {
		fmt.Fprintf(&sb, "%s %d : %d %s", m.Team1, m.Score1, m.Score2, m.Team2)
		switch {
		case m.TimeUntil != "":
			fmt.Fprintf(&sb, " (in %s)", m.TimeUntil)
		case m.TimeCompleted != "":
			fmt.Fprintf(&sb, " (%s)", m.TimeCompleted)
		case m.CurrentMap != "":
			fmt.Fprintf(&sb, " (map: %s)", m.CurrentMap)
		}
		fmt.Fprintf(&sb, "\n%s - %s\n", m.Event, m.Series)
	}
	return sb.String()
}

func formatRankings(region string, ranks []feed.TeamRank) string {
	if len(ranks) == 0 {
		return "No rankings available for that region."
	}
	const limit = 10
	if len(ranks) > limit {
		ranks = ranks[:limit]
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Top teams (%s):\n", region)
	for _, r := range ranks {
		fmt.Fprintf(&sb, "%d. %s\n", r.Rank, r.Team)
	}
	return sb.String()
}
