package engine

import (
	"context"
	"sort"
	"strings"
	"time"
)

// SaveFunc persists a complete PlayerData. It must either store all of p or nothing.
type SaveFunc func(ctx context.Context, p *PlayerData) error

// CheckInResult describes the outcome of one ProcessCheckIn call.
// XPGained and LeveledUp describe this call only and are never stored.
type CheckInResult struct {
	Player      *PlayerData
	Date        string
	Score       int
	Grade       Grade
	XPGained    int
	LevelBefore int
	LevelAfter  int
	LeveledUp   bool
	Replaced    bool // True when an existing check-in for the same date was overwritten
}

// ValidateCheckIn checks the date and that all six ratings are within range.
func ValidateCheckIn(c DailyCheckIn, today string) error {
	date := strings.TrimSpace(c.Date)
	if date == "" {
		return ValidationError{Field: "date", Reason: "is required"}
	}
	if _, err := ParseDate(date); err != nil {
		return ValidationError{Field: "date", Value: c.Date, Reason: "must be YYYY-MM-DD"}
	}
	if today != "" && date > today {
		return ValidationError{Field: "date", Value: c.Date, Reason: "is in the future"}
	}
	for _, d := range dimensions {
		r := c.Rating(d.Key)
		if r == 0 {
			return ValidationError{Field: string(d.Key), Reason: "is missing"}
		}
		if r < MinRating || r > MaxRating {
			return ValidationError{Field: string(d.Key), Value: r, Reason: "must be between 1 and 10"}
		}
	}
	return nil
}

// ProcessCheckIn validates in, folds it into a copy of player and persists the
// copy through save. player itself is never modified; on any error it remains
// the committed state.
//
// Resubmitting a date overwrites that date's ratings. XP is banked per date and
// only topped up, so replaying the same check-in awards nothing twice.
func ProcessCheckIn(ctx context.Context, cfg Config, player *PlayerData, in DailyCheckIn, now time.Time, save SaveFunc) (*CheckInResult, error) {
	today := DateOf(now)
	if err := ValidateCheckIn(in, today); err != nil {
		return nil, err
	}
	in.Date = strings.TrimSpace(in.Date)

	if player == nil {
		player = NewPlayerData(cfg)
	}
	next := player.Clone()
	levelBefore := next.Progress.Level

	prev, replaced := next.CheckIn(in.Date)
	// CreatedAt and the XP streak are fixed by the first submission for a date.
	if in.CreatedAt.IsZero() {
		in.CreatedAt = now.UTC()
		if replaced && !prev.CreatedAt.IsZero() {
			in.CreatedAt = prev.CreatedAt
		}
	}
	in.XPAwarded = prev.XPAwarded
	next.CheckIns = upsertCheckIn(next.CheckIns, in)

	next.CurrentStreak, next.LongestStreak = UpdateStreak(next.CheckIns, today, next.LongestStreak)

	in.Streak = prev.Streak
	if !replaced || in.Streak < 1 {
		in.Streak = StreakAt(next.CheckIns, in.Date)
	}
	next.CheckIns = upsertCheckIn(next.CheckIns, in)

	score := in.Score()
	earned := CalculateXPEarned(cfg, score, in.Streak)
	gained := 0
	if earned > prev.XPAwarded {
		gained = earned - prev.XPAwarded
		in.XPAwarded = earned
		next.CheckIns = upsertCheckIn(next.CheckIns, in)
	}
	var leveledUp bool
	next.Progress, leveledUp = ApplyXP(cfg, next.Progress, gained)

	deriveVitals(cfg, next, today)

	if save != nil {
		if err := save(ctx, next); err != nil {
			return nil, PersistenceError{Err: err}
		}
	}

	return &CheckInResult{
		Player:      next,
		Date:        in.Date,
		Score:       score,
		Grade:       LetterGrade(score),
		XPGained:    gained,
		LevelBefore: levelBefore,
		LevelAfter:  next.Progress.Level,
		LeveledUp:   leveledUp,
		Replaced:    replaced,
	}, nil
}

// Refresh re-derives everything that depends on the current date: streak,
// fatigue, bars and stats. Progress is normalized against cfg.
func Refresh(cfg Config, player *PlayerData, now time.Time) *PlayerData {
	if player == nil {
		return NewPlayerData(cfg)
	}
	next := player.Clone()
	if next.CheckIns == nil {
		next.CheckIns = []DailyCheckIn{}
	}
	today := DateOf(now)
	next.CurrentStreak, next.LongestStreak = UpdateStreak(next.CheckIns, today, next.LongestStreak)
	next.Progress, _ = ApplyXP(cfg, next.Progress, 0)
	deriveVitals(cfg, next, today)
	return next
}

func deriveVitals(cfg Config, p *PlayerData, today string) {
	fatigue := ComputeFatigue(cfg, p.CheckIns, today)
	p.Bars = DeriveBars(cfg, p.CheckIns, p.Progress.Level, fatigue)
	p.Stats = DeriveStats(p.CheckIns, cfg.StatWindow, cfg.NeutralStat)
}

// upsertCheckIn replaces the entry with the same date or inserts c in date order.
func upsertCheckIn(history []DailyCheckIn, c DailyCheckIn) []DailyCheckIn {
	i := sort.Search(len(history), func(i int) bool { return history[i].Date >= c.Date })
	if i < len(history) && history[i].Date == c.Date {
		history[i] = c
		return history
	}
	history = append(history, DailyCheckIn{})
	copy(history[i+1:], history[i:])
	history[i] = c
	return history
}

// TrendPoint is one check-in reduced to what a trend chart needs.
type TrendPoint struct {
	Date  string
	Score int
	Grade Grade
}

// Trend returns the last n check-ins, oldest first.
func Trend(p *PlayerData, n int) []TrendPoint {
	recent := lastN(sortedByDate(p.CheckIns), n)
	out := make([]TrendPoint, 0, len(recent))
	for _, c := range recent {
		s := c.Score()
		out = append(out, TrendPoint{Date: c.Date, Score: s, Grade: LetterGrade(s)})
	}
	return out
}
