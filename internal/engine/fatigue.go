package engine

import "math"

const MaxFatigue = 100

// ComputeFatigue replays history in date order and returns fatigue as of today.
//
// Every missed calendar day adds FatigueMissedDay, a day scoring below
// LowScoreThreshold adds FatigueLowScore and a day scoring at or above
// HighScoreThreshold recovers FatigueRecovery. Elapsed time alone never recovers.
// The value is clamped to [0, MaxFatigue] after every step.
func ComputeFatigue(cfg Config, history []DailyCheckIn, today string) int {
	fatigue := 0
	prev := ""
	for _, c := range sortedByDate(history) {
		if prev != "" {
			fatigue = clamp(fatigue+missedDays(prev, c.Date)*cfg.FatigueMissedDay, 0, MaxFatigue)
		}
		score := c.Score()
		switch {
		case score < cfg.LowScoreThreshold:
			fatigue += cfg.FatigueLowScore
		case score >= cfg.HighScoreThreshold:
			fatigue -= cfg.FatigueRecovery
		}
		fatigue = clamp(fatigue, 0, MaxFatigue)
		prev = c.Date
	}
	if prev != "" && today != "" {
		fatigue = clamp(fatigue+missedDays(prev, today)*cfg.FatigueMissedDay, 0, MaxFatigue)
	}
	return fatigue
}

// missedDays counts the empty calendar days strictly between from and to.
func missedDays(from, to string) int {
	n := daysBetween(from, to) - 1
	if n < 0 {
		return 0
	}
	return n
}

// TrailingAverageScore averages the composite score of the last n check-ins.
func TrailingAverageScore(history []DailyCheckIn, n int) (float64, bool) {
	recent := lastN(sortedByDate(history), n)
	if len(recent) == 0 {
		return 0, false
	}
	sum := 0
	for _, c := range recent {
		sum += c.Score()
	}
	return float64(sum) / float64(len(recent)), true
}

// DeriveBars maps fatigue and recent scores onto the HP/MP vitals.
// HP is linear in (100 - fatigue) and its max grows with level; MP is linear in the
// trailing average score and starts full for a player with no history.
func DeriveBars(cfg Config, history []DailyCheckIn, level int, fatigue int) Bars {
	if level < 1 {
		level = 1
	}
	fatigue = clamp(fatigue, 0, MaxFatigue)

	hpMax := cfg.HPBase + cfg.HPPerLevel*(level-1)
	hp := int(math.Round(float64(hpMax) * float64(MaxFatigue-fatigue) / MaxFatigue))

	mp := cfg.MPMax
	if avg, ok := TrailingAverageScore(history, cfg.BarWindow); ok {
		mp = int(math.Round(float64(cfg.MPMax) * avg / 100))
	}

	return Bars{
		HP:      Vital{Current: hp, Max: hpMax},
		MP:      Vital{Current: clamp(mp, 0, cfg.MPMax), Max: cfg.MPMax},
		Fatigue: fatigue,
	}
}
