package domain

import "time"

// Account holds a user's points balance. Accounts are created lazily on
// first access and never deleted. LastBonusAt stays at the zero time until
// the first daily bonus is granted.
type Account struct {
	ID          int       `db:"id"`
	UserID      int64     `db:"user_id"`
	Balance     int64     `db:"balance"`
	LastBonusAt time.Time `db:"last_bonus_at"`
}

// Bet is a committed wager. Amount is already debited from the account at
// placement, so it represents points at risk, not points owed. A bet is
// immutable once Resolved is set.
type Bet struct {
	ID            int       `db:"id"`
	MatchPath     string    `db:"match_path"`
	MatchEvent    string    `db:"match_event"`
	Team1         string    `db:"team1"`
	Team2         string    `db:"team2"`
	UserID        int64     `db:"user_id"`
	TeamChosen    string    `db:"team_chosen"`
	Amount        int64     `db:"amount"`
	ChannelID     int64     `db:"channel_id"`
	StartNotified bool      `db:"start_notified"`
	Resolved      bool      `db:"resolved"`
	PlacedAt      time.Time `db:"placed_at"`
}
