package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeFatigue(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, 0, ComputeFatigue(cfg, nil, "2026-03-10"))

	// Mid scores neither hurt nor heal.
	h := []DailyCheckIn{uniform("2026-03-01", 7)}
	require.Equal(t, 0, ComputeFatigue(cfg, h, "2026-03-01"))
	require.Equal(t, 0, ComputeFatigue(cfg, h, "2026-03-02"))
	require.Equal(t, 2*cfg.FatigueMissedDay, ComputeFatigue(cfg, h, "2026-03-04"))

	// Low days add a smaller increment.
	h = append(h, uniform("2026-03-02", 2))
	require.Equal(t, cfg.FatigueLowScore, ComputeFatigue(cfg, h, "2026-03-02"))

	// A high day recovers.
	h = append(h, uniform("2026-03-03", 10))
	require.Equal(t, 0, ComputeFatigue(cfg, h, "2026-03-03"))
}

func TestFatigueIsBoundedAndNeedsGoodDaysToRecover(t *testing.T) {
	cfg := DefaultConfig()
	h := []DailyCheckIn{uniform("2025-01-01", 1)}

	f := ComputeFatigue(cfg, h, "2026-01-01")
	require.Equal(t, MaxFatigue, f)

	// Logging a mediocre day does not recover anything.
	h = append(h, uniform("2026-01-01", 6))
	require.Equal(t, MaxFatigue, ComputeFatigue(cfg, h, "2026-01-01"))

	// Logging well does.
	h = append(h, uniform("2026-01-02", 10))
	require.Equal(t, MaxFatigue-cfg.FatigueRecovery, ComputeFatigue(cfg, h, "2026-01-02"))

	// Time alone only ever adds.
	require.GreaterOrEqual(t, ComputeFatigue(cfg, h, "2026-01-05"), ComputeFatigue(cfg, h, "2026-01-02"))
}

func TestDeriveBars(t *testing.T) {
	cfg := DefaultConfig()

	fresh := DeriveBars(cfg, nil, 1, 0)
	require.Equal(t, Vital{Current: 100, Max: 100}, fresh.HP)
	require.Equal(t, Vital{Current: 100, Max: 100}, fresh.MP)

	b := DeriveBars(cfg, []DailyCheckIn{uniform("2026-03-01", 1), uniform("2026-03-02", 10)}, 3, 40)
	require.Equal(t, 120, b.HP.Max)
	require.Equal(t, 72, b.HP.Current)
	require.Equal(t, 50, b.MP.Current)
	require.Equal(t, 40, b.Fatigue)

	// HP falls linearly as fatigue rises.
	require.Greater(t, DeriveBars(cfg, nil, 1, 10).HP.Current, DeriveBars(cfg, nil, 1, 20).HP.Current)
	require.Equal(t, 0, DeriveBars(cfg, nil, 1, 100).HP.Current)
}
