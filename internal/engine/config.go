package engine

import "fmt"

// Config holds the tunable constants of the progression laws.
// Zero values are not usable; start from DefaultConfig.
type Config struct {
	// Daily XP: round(score/100*BaseDailyXP) times the streak multiplier.
	BaseDailyXP       int     `toml:"base_daily_xp"`
	StreakBonusPerDay float64 `toml:"streak_bonus_per_day"`
	StreakBonusCap    float64 `toml:"streak_bonus_cap"`

	// Level ladder: xpToNextLevel(L) = ceil(LevelXPBase * L^LevelXPExponent).
	LevelXPBase     float64 `toml:"level_xp_base"`
	LevelXPExponent float64 `toml:"level_xp_exponent"`

	FatigueMissedDay   int `toml:"fatigue_missed_day"`
	FatigueLowScore    int `toml:"fatigue_low_score"`
	FatigueRecovery    int `toml:"fatigue_recovery"`
	LowScoreThreshold  int `toml:"low_score_threshold"`
	HighScoreThreshold int `toml:"high_score_threshold"`

	HPBase     int `toml:"hp_base"`
	HPPerLevel int `toml:"hp_per_level"`
	MPMax      int `toml:"mp_max"`
	BarWindow  int `toml:"bar_window"`

	StatWindow  int `toml:"stat_window"`
	NeutralStat int `toml:"neutral_stat"`
}

func DefaultConfig() Config {
	return Config{
		BaseDailyXP:       50,
		StreakBonusPerDay: 0.02,
		StreakBonusCap:    0.50,

		LevelXPBase:     100,
		LevelXPExponent: 1.5,

		FatigueMissedDay:   10,
		FatigueLowScore:    5,
		FatigueRecovery:    10,
		LowScoreThreshold:  50,
		HighScoreThreshold: 80,

		HPBase:     100,
		HPPerLevel: 10,
		MPMax:      100,
		BarWindow:  7,

		StatWindow:  14,
		NeutralStat: 5,
	}
}

// Validate rejects values that would break leveling or decay bounds.
func (c Config) Validate() error {
	switch {
	case c.BaseDailyXP < 1:
		return fmt.Errorf("base_daily_xp must be >= 1 (got %d)", c.BaseDailyXP)
	case c.StreakBonusPerDay < 0 || c.StreakBonusCap < 0:
		return fmt.Errorf("streak bonus must be >= 0")
	case c.LevelXPBase < 1:
		return fmt.Errorf("level_xp_base must be >= 1 (got %g)", c.LevelXPBase)
	case c.LevelXPExponent < 1:
		return fmt.Errorf("level_xp_exponent must be >= 1 (got %g)", c.LevelXPExponent)
	case c.FatigueMissedDay < 0 || c.FatigueLowScore < 0 || c.FatigueRecovery < 0:
		return fmt.Errorf("fatigue increments must be >= 0")
	case c.LowScoreThreshold < 0 || c.HighScoreThreshold > 100 || c.LowScoreThreshold > c.HighScoreThreshold:
		return fmt.Errorf("score thresholds must satisfy 0 <= low <= high <= 100 (got %d, %d)", c.LowScoreThreshold, c.HighScoreThreshold)
	case c.HPBase < 1 || c.HPPerLevel < 0 || c.MPMax < 1:
		return fmt.Errorf("bar maxima must be positive")
	case c.BarWindow < 1 || c.StatWindow < 1:
		return fmt.Errorf("windows must be >= 1")
	case c.NeutralStat < MinRating || c.NeutralStat > MaxRating:
		return fmt.Errorf("neutral_stat must be within [%d,%d] (got %d)", MinRating, MaxRating, c.NeutralStat)
	}
	return nil
}
