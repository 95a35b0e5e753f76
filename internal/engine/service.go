package engine

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lifescore/internal/storage"
)

type Service struct {
	db      *sql.DB
	players *storage.PlayerRepo
	log     *storage.CheckInLogRepo

	cfg       Config
	playerKey string
	logger    *zap.Logger
	now       func() time.Time
}

type Option func(*Service)

func WithConfig(cfg Config) Option {
	return func(s *Service) { s.cfg = cfg }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func WithPlayerKey(key string) Option {
	return func(s *Service) {
		if key != "" {
			s.playerKey = key
		}
	}
}

func NewService(db *sql.DB, opts ...Option) *Service {
	s := &Service{
		db:        db,
		players:   storage.NewPlayerRepo(db),
		log:       storage.NewCheckInLogRepo(db),
		cfg:       DefaultConfig(),
		playerKey: storage.MainPlayerKey,
		logger:    zap.NewNop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(zap.String("player", s.playerKey))
	return s
}

func (s *Service) Config() Config                  { return s.cfg }
func (s *Service) PlayerKey() string               { return s.playerKey }
func (s *Service) PlayerRepo() *storage.PlayerRepo { return s.players }

// Today is the current calendar date in the service clock's location.
func (s *Service) Today() string { return DateOf(s.now()) }

// Load returns the committed player state, refreshed for today. A player that
// has never saved gets default data; a corrupt blob is logged and replaced by
// default data (the blob itself is left in place until the next successful save).
func (s *Service) Load(ctx context.Context) (*PlayerData, error) {
	p, err := s.loadStored(ctx)
	if err != nil {
		var corrupt CorruptStateError
		if !errors.As(err, &corrupt) {
			return nil, err
		}
		s.logger.Warn("stored player data is unusable, starting from defaults", zap.Error(err))
		p = NewPlayerData(s.cfg)
	}
	return Refresh(s.cfg, p, s.now()), nil
}

func (s *Service) loadStored(ctx context.Context) (*PlayerData, error) {
	st, err := s.players.Get(ctx, s.playerKey)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return NewPlayerData(s.cfg), nil
	}
	return UnmarshalPlayer(st.Data)
}

// CheckIn processes one check-in and saves the result atomically together with
// its audit log row. On error the stored state is unchanged.
func (s *Service) CheckIn(ctx context.Context, in DailyCheckIn) (*CheckInResult, error) {
	in.Date = strings.TrimSpace(in.Date)
	p, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()

	res, err := ProcessCheckIn(ctx, s.cfg, p, in, now, func(ctx context.Context, next *PlayerData) error {
		return s.save(ctx, next, in.Date, now)
	})
	if err != nil {
		var perr PersistenceError
		if errors.As(err, &perr) {
			s.logger.Error("check-in not persisted", zap.String("date", in.Date), zap.Error(err))
		}
		return nil, err
	}

	s.logger.Info("check-in processed",
		zap.String("date", res.Date),
		zap.Int("score", res.Score),
		zap.String("grade", string(res.Grade.Rank)),
		zap.Int("xp_gained", res.XPGained),
		zap.Int("level", res.LevelAfter),
		zap.Int("streak", res.Player.CurrentStreak),
		zap.Bool("replaced", res.Replaced),
	)
	if res.LeveledUp {
		s.logger.Info("level up",
			zap.Int("from", res.LevelBefore),
			zap.Int("to", res.LevelAfter),
			zap.String("title", res.Player.Progress.Title),
		)
	}
	return res, nil
}

func (s *Service) save(ctx context.Context, p *PlayerData, date string, now time.Time) error {
	data, err := MarshalPlayer(p)
	if err != nil {
		return err
	}
	c, _ := p.CheckIn(date)
	score := c.Score()

	return storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := s.players.WithTx(tx).Put(ctx, s.playerKey, data, now.UTC()); err != nil {
			return err
		}
		_, err := s.log.WithTx(tx).Insert(ctx, storage.CheckInLogEntry{
			SubmissionID: uuid.NewString(),
			PlayerKey:    s.playerKey,
			Date:         c.Date,
			Score:        score,
			Grade:        string(LetterGrade(score).Rank),
			XPAwarded:    c.XPAwarded,
			Level:        p.Progress.Level,
			RecordedAt:   now.UTC(),
		})
		return err
	})
}

// History returns the most recent audit log rows, newest first.
func (s *Service) History(ctx context.Context, limit int) ([]storage.CheckInLogEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.log.ListRecent(ctx, s.playerKey, limit)
}

// RecentCheckIns counts submissions recorded in the last days days,
// resubmissions included.
func (s *Service) RecentCheckIns(ctx context.Context, days int) (int, error) {
	since := s.now().AddDate(0, 0, -days).UTC()
	return s.log.CountSince(ctx, s.playerKey, since)
}

// Export returns the committed state as the JSON blob format.
func (s *Service) Export(ctx context.Context) ([]byte, error) {
	p, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return MarshalPlayer(p)
}

// Badges returns the badge list for the committed state.
func (s *Service) Badges(ctx context.Context) ([]Badge, error) {
	p, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return NewBadgeChecker(p).Badges(), nil
}

// Reset deletes the stored state and audit log for this player.
func (s *Service) Reset(ctx context.Context) error {
	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		return s.players.WithTx(tx).Delete(ctx, s.playerKey)
	})
	if err != nil {
		return err
	}
	s.logger.Warn("player data reset")
	return nil
}
