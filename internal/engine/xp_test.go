package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestXPToNextLevelStrictlyIncreasing(t *testing.T) {
	cfg := DefaultConfig()
	prev := 0
	for level := 1; level <= 5000; level++ {
		need := XPToNextLevel(cfg, level)
		require.Greater(t, need, prev, "level %d", level)
		prev = need
	}
	for _, level := range []int{100_000, 1_000_000} {
		require.Greater(t, XPToNextLevel(cfg, level+1), XPToNextLevel(cfg, level))
	}

	// Flattest allowed curve still increases.
	flat := cfg
	flat.LevelXPBase = 1
	flat.LevelXPExponent = 1
	for level := 1; level <= 1000; level++ {
		require.Greater(t, XPToNextLevel(flat, level+1), XPToNextLevel(flat, level))
	}
}

func TestCalculateXPEarned(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, 0, CalculateXPEarned(cfg, 0, 0))
	require.Equal(t, 50, CalculateXPEarned(cfg, 100, 0))
	require.Equal(t, 20, CalculateXPEarned(cfg, 40, 0))
	require.Greater(t, CalculateXPEarned(cfg, 100, 0), CalculateXPEarned(cfg, 40, 0))

	// Streak bonus is linear then capped at +50%.
	require.Equal(t, 55, CalculateXPEarned(cfg, 100, 5))
	require.Equal(t, 75, CalculateXPEarned(cfg, 100, 25))
	require.Equal(t, 75, CalculateXPEarned(cfg, 100, 200))

	// A long streak never beats a perfect day by more than the cap.
	require.Less(t, CalculateXPEarned(cfg, 40, 200), CalculateXPEarned(cfg, 100, 0))
}

func TestApplyXPSingleLevel(t *testing.T) {
	cfg := DefaultConfig()
	start := NewPlayerData(cfg).Progress
	need := XPToNextLevel(cfg, 1)

	p, up := ApplyXP(cfg, start, need-1)
	require.False(t, up)
	require.Equal(t, 1, p.Level)
	require.Equal(t, need-1, p.CurrentXP)

	p, up = ApplyXP(cfg, p, 1)
	require.True(t, up)
	require.Equal(t, 2, p.Level)
	require.Equal(t, 0, p.CurrentXP)
	require.Equal(t, XPToNextLevel(cfg, 2), p.XPToNextLevel)
}

func TestApplyXPRollsOverSeveralLevels(t *testing.T) {
	cfg := DefaultConfig()
	start := NewPlayerData(cfg).Progress

	gain := TotalXPForLevel(cfg, 5) + 7
	p, up := ApplyXP(cfg, start, gain)
	require.True(t, up)
	require.Equal(t, 5, p.Level)
	require.Equal(t, 7, p.CurrentXP)
	require.Equal(t, "Apprentice", p.Title)
	require.Equal(t, TitleGreen, p.TitleColor)
	require.Empty(t, p.ClassModifier)

	p, _ = ApplyXP(cfg, start, TotalXPForLevel(cfg, 12))
	require.Equal(t, 12, p.Level)
	require.Equal(t, "Adept", p.Title)
	require.Equal(t, "Awakened", p.ClassModifier)
}

func TestApplyXPNeverLowersLevel(t *testing.T) {
	cfg := DefaultConfig()
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		level := 1 + rng.Intn(60)
		start := progressForLevel(cfg, level, rng.Intn(XPToNextLevel(cfg, level)))
		gain := rng.Intn(20_000)

		p, up := ApplyXP(cfg, start, gain)
		require.GreaterOrEqual(t, p.Level, start.Level)
		require.Equal(t, p.Level > start.Level, up)
		require.GreaterOrEqual(t, p.CurrentXP, 0)
		require.Less(t, p.CurrentXP, p.XPToNextLevel)
		require.Equal(t, TotalXPForLevel(cfg, start.Level)+start.CurrentXP+gain, TotalXPForLevel(cfg, p.Level)+p.CurrentXP)
	}
}

func TestTitleBandsAreOrdered(t *testing.T) {
	for i := 1; i < len(levelTitles); i++ {
		require.Greater(t, levelTitles[i-1].MinLevel, levelTitles[i].MinLevel)
	}
	require.Equal(t, 1, levelTitles[len(levelTitles)-1].MinLevel)
	require.Equal(t, "Novice", TitleForLevel(1).Title)
	require.Equal(t, "Legend", TitleForLevel(500).Title)
}
