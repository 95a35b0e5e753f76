package engine

import (
	"math"
)

// XPToNextLevel returns the XP needed to go from level to level+1.
// With LevelXPBase >= 1 and LevelXPExponent >= 1 the ladder is strictly increasing.
func XPToNextLevel(cfg Config, level int) int {
	if level < 1 {
		level = 1
	}
	req := cfg.LevelXPBase * math.Pow(float64(level), cfg.LevelXPExponent)
	// Use ceil to avoid making thresholds easier due to floating point rounding.
	n := int(math.Ceil(req))
	if n < 1 {
		n = 1
	}
	return n
}

// TotalXPForLevel returns the cumulative XP spent to reach level from level 1.
func TotalXPForLevel(cfg Config, level int) int {
	total := 0
	for l := 1; l < level; l++ {
		total += XPToNextLevel(cfg, l)
	}
	return total
}

// StreakMultiplier is 1 plus a linear per-day bonus, capped.
func StreakMultiplier(cfg Config, streak int) float64 {
	if streak < 0 {
		streak = 0
	}
	bonus := float64(streak) * cfg.StreakBonusPerDay
	if bonus > cfg.StreakBonusCap {
		bonus = cfg.StreakBonusCap
	}
	return 1.0 + bonus
}

// CalculateXPEarned converts a day's score and the streak it extends into XP.
func CalculateXPEarned(cfg Config, score int, currentStreak int) int {
	score = clamp(score, 0, 100)
	base := math.Round(float64(score) / 100 * float64(cfg.BaseDailyXP))
	xp := base * StreakMultiplier(cfg, currentStreak)
	// Round to nearest integer for stable results.
	return int(math.Round(xp))
}

// ApplyXP adds xpGained to p, rolling over as many levels as it covers.
// The returned progress carries the final level's title.
func ApplyXP(cfg Config, p Progress, xpGained int) (Progress, bool) {
	level := p.Level
	if level < 1 {
		level = 1
	}
	cur := p.CurrentXP
	if cur < 0 {
		cur = 0
	}
	if xpGained > 0 {
		cur += xpGained
	}

	leveledUp := false
	for need := XPToNextLevel(cfg, level); cur >= need; need = XPToNextLevel(cfg, level) {
		cur -= need
		level++
		leveledUp = true
	}
	return progressForLevel(cfg, level, cur), leveledUp
}

// LevelTitle is the display tier for a level band.
type LevelTitle struct {
	MinLevel      int
	Title         string
	Color         TitleColor
	ClassModifier string
}

// levelTitles is ordered by descending MinLevel; the last band starts at 1.
var levelTitles = []LevelTitle{
	{MinLevel: 50, Title: "Legend", Color: TitleGold, ClassModifier: "Ascendant"},
	{MinLevel: 35, Title: "Champion", Color: TitleOrange, ClassModifier: "Ascendant"},
	{MinLevel: 20, Title: "Veteran", Color: TitlePurple, ClassModifier: "Awakened"},
	{MinLevel: 10, Title: "Adept", Color: TitleBlue, ClassModifier: "Awakened"},
	{MinLevel: 5, Title: "Apprentice", Color: TitleGreen},
	{MinLevel: 1, Title: "Novice", Color: TitleGray},
}

// TitleForLevel looks up the title band containing level.
func TitleForLevel(level int) LevelTitle {
	for _, t := range levelTitles {
		if level >= t.MinLevel {
			return t
		}
	}
	return levelTitles[len(levelTitles)-1]
}

func progressForLevel(cfg Config, level int, currentXP int) Progress {
	t := TitleForLevel(level)
	return Progress{
		Level:         level,
		CurrentXP:     currentXP,
		XPToNextLevel: XPToNextLevel(cfg, level),
		Title:         t.Title,
		TitleColor:    t.Color,
		ClassModifier: t.ClassModifier,
	}
}
